package main

import (
	"fmt"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/bactogrowth/internal/config"
	"github.com/san-kum/bactogrowth/internal/growth"
	"github.com/san-kum/bactogrowth/internal/tui"
	"github.com/san-kum/bactogrowth/internal/viz"
)

var theme string

func liveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "interactive sliders, recomputed on every key press",
		RunE:  runLive,
	}
	addSimFlags(cmd)
	cmd.Flags().StringVar(&theme, "theme", viz.CurrentTheme.Name, fmt.Sprintf("colour theme %v", viz.ThemeNames()))
	return cmd
}

func runLive(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	viz.SetTheme(theme)

	m := tui.New(sess.model, sess.formatter, p, sess.policy)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("live view: %w", err)
	}
	return nil
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := sess.formatter
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tELAPSED (H)\tINTERVAL (MIN)\tINITIAL\tSAMPLES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					name,
					f.FormatScientific(growth.MinutesToHours(p.ElapsedMinutes)),
					f.FormatScientific(p.DoublingMinutes),
					f.FormatScientific(p.InitialPopulation),
					p.Samples,
				)
			}
			return w.Flush()
		},
	}
}

func initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [file]",
		Short: "write the effective configuration to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFile
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, sess.cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}
