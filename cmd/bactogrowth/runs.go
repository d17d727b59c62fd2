package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/bactogrowth/internal/export"
	"github.com/san-kum/bactogrowth/internal/growth"
	"github.com/san-kum/bactogrowth/internal/storage"
	"github.com/san-kum/bactogrowth/internal/viz"
)

var (
	outFile   string
	stroke    string
	svgWidth  int
	svgHeight int
)

func exportCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-csv [file]",
		Short: "export the growth series to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCSV,
	}
	addSimFlags(cmd)
	return cmd
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	_, s, err := simulate(cmd)
	if err != nil {
		return err
	}

	path := export.CSVFileName
	if len(args) > 0 {
		path = args[0]
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := export.WriteCSV(file, s); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	sess.log.Infow("exported csv", "path", path, "rows", len(s))
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s\n", len(s), path)
	return nil
}

func exportSVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-svg [file]",
		Short: "export the log10 population curve to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportSVG,
	}
	addSimFlags(cmd)
	cmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	cmd.Flags().IntVar(&svgHeight, "height", 400, "image height")
	cmd.Flags().StringVar(&stroke, "stroke", "#2a9d8f", "line colour")
	return cmd
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	_, s, err := simulate(cmd)
	if err != nil {
		return err
	}

	path := "growth.svg"
	if len(args) > 0 {
		path = args[0]
	}

	svg := export.SeriesToSVG(s, svgWidth, svgHeight, stroke)
	if svg == "" {
		return fmt.Errorf("need at least 2 samples to draw a curve")
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}

	sess.log.Infow("exported svg", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", path)
	return nil
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and save it",
		RunE:  runSimulation,
	}
	addSimFlags(cmd)
	return cmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	p, s, err := simulate(cmd)
	if err != nil {
		return err
	}

	res := s[len(s)-1].Result
	cmp, err := sess.model.CompareAll(res.TotalMassKg)
	if err != nil {
		return err
	}

	runID, err := saveRun(preset, p, res, cmp, s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "samples: %d\n", len(s))
	fmt.Fprintf(out, "population: %s\n", sess.formatter.FormatScientific(res.FinalPopulation))
	fmt.Fprintf(out, "mass: %s kg\n", sess.formatter.FormatScientific(res.TotalMassKg))
	return nil
}

func saveRun(name string, p growth.Parameters, res growth.Result, cmp []growth.BodyComparison, s []growth.Sample) (string, error) {
	if err := sess.store.Init(); err != nil {
		return "", err
	}
	runID, err := sess.store.Save(storage.Run{
		Preset:      name,
		Parameters:  p,
		UnitMassKg:  sess.model.UnitMassKg(),
		Result:      res,
		Comparisons: cmp,
		Series:      s,
	})
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	sess.log.Infow("run saved", "id", runID, "dir", sess.cfg.DataDir)
	return runID, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := sess.store.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	f := sess.formatter
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPRESET\tELAPSED (H)\tINTERVAL\tPOPULATION\tMASS (KG)")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			orDash(run.Preset),
			f.FormatScientific(growth.MinutesToHours(run.Parameters.ElapsedMinutes)),
			f.FormatScientific(run.Parameters.DoublingMinutes),
			f.FormatScientific(run.Result.FinalPopulation),
			f.FormatScientific(run.Result.TotalMassKg),
		)
	}
	return w.Flush()
}

func plotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	cmd.Flags().StringVar(&metric, "metric", "population", "population or mass")
	cmd.Flags().IntVar(&height, "height", 12, "chart height")
	cmd.Flags().IntVar(&width, "width", 72, "chart width")
	return cmd
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	meta, err := sess.store.Load(runID)
	if err != nil {
		return err
	}
	s, err := sess.store.LoadSeries(runID)
	if err != nil {
		return err
	}

	m, err := viz.ParseMetric(metric)
	if err != nil {
		return err
	}
	graph, err := viz.GrowthChart(s, viz.ChartOptions{Metric: m, Height: height, Width: width})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "doubling every %s min\n\n", sess.formatter.FormatScientific(meta.Parameters.DoublingMinutes))
	fmt.Fprintln(out, graph)
	return nil
}

func exportJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	return cmd
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	meta, err := sess.store.Load(runID)
	if err != nil {
		return err
	}
	s, err := sess.store.LoadSeries(runID)
	if err != nil {
		return err
	}

	data := export.ExportData{
		ID:          meta.ID,
		Parameters:  meta.Parameters,
		Result:      meta.Result,
		Comparisons: meta.Comparisons,
		Samples:     s,
	}

	if outFile == "" {
		return export.WriteJSON(cmd.OutOrStdout(), data)
	}
	if err := export.ExportJSON(outFile, data); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", runID, outFile)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
