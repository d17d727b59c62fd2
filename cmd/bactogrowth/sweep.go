package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/bactogrowth/internal/growth"
	"github.com/san-kum/bactogrowth/internal/sweep"
)

var (
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	targetKg    float64
	sweepBody   string
	saveResults bool
)

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "time to reach a reference mass across doubling intervals",
		RunE:  runSweep,
	}
	cmd.Flags().Float64Var(&sweepMin, "min", 20, "shortest doubling interval (minutes)")
	cmd.Flags().Float64Var(&sweepMax, "max", 60, "longest doubling interval (minutes)")
	cmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of intervals")
	cmd.Flags().StringVar(&sweepBody, "body", "Earth", "reference body to reach")
	cmd.Flags().Float64Var(&targetKg, "target-kg", 0, "target mass in kg (overrides --body)")
	cmd.Flags().StringVar(&initial, "initial", "", "initial population")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	target := targetKg
	label := fmt.Sprintf("%s kg", sess.formatter.FormatScientific(target))
	if !cmd.Flags().Changed("target-kg") {
		ref, ok := sess.model.Reference(sweepBody)
		if !ok {
			return fmt.Errorf("unknown reference body: %s", sweepBody)
		}
		target = ref.MassKg
		label = ref.Name
	}

	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sweep.RunSweep(ctx, sess.model, &sweep.Sweep{
		IntervalMin:       sweepMin,
		IntervalMax:       sweepMax,
		Steps:             sweepSteps,
		TargetMassKg:      target,
		InitialPopulation: p.InitialPopulation,
	})
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	f := sess.formatter
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "time to reach the mass of %s\n\n", label)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTERVAL (MIN)\tHOURS\tDAYS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			f.FormatScientific(r.DoublingMinutes),
			f.FormatScientific(growth.MinutesToHours(r.MinutesToTarget)),
			f.FormatScientific(r.DaysToTarget),
		)
	}
	return w.Flush()
}

func scenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	cmd.Flags().BoolVar(&saveResults, "save", false, "save every step, not only those with save_as")
	return cmd
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := sweep.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sweep.RunScenario(ctx, sess.model, sc)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	f := sess.formatter
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Fprintf(out, "%s\n", sc.Description)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tHOURS\tINTERVAL\tPOPULATION\tMASS (KG)\tRUN")
	for i, r := range results {
		name := r.Step.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		runID := "-"
		if r.Step.SaveAs != "" || saveResults {
			label := r.Step.SaveAs
			if label == "" {
				label = name
			}
			runID, err = saveRun(label, r.Parameters, r.Result, r.Comparisons, r.Series)
			if err != nil {
				return err
			}
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			name,
			f.FormatScientific(growth.MinutesToHours(r.Parameters.ElapsedMinutes)),
			f.FormatScientific(r.Parameters.DoublingMinutes),
			f.FormatScientific(r.Result.FinalPopulation),
			f.FormatScientific(r.Result.TotalMassKg),
			runID,
		)
	}
	return w.Flush()
}
