package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/bactogrowth/internal/growth"
	"github.com/san-kum/bactogrowth/internal/outbreak"
	"github.com/san-kum/bactogrowth/internal/viz"
)

var (
	metric      string
	height      int
	width       int
	intervals   []float64
	body        string
	startClock  string
	rows        int
	population  float64
	doublingDay float64
)

func growCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "compute population and mass after the elapsed time",
		RunE:  runGrow,
	}
	addSimFlags(cmd)
	return cmd
}

func runGrow(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	res, err := sess.model.Compute(p)
	if err != nil {
		return fmt.Errorf("compute growth: %w", err)
	}
	cmp, err := sess.model.CompareAll(res.TotalMassKg)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	sess.log.Debugw("computed", "elapsed", p.ElapsedMinutes, "interval", p.DoublingMinutes, "doublings", res.Doublings)

	fmt.Fprintln(cmd.OutOrStdout(), viz.ResultPanel(sess.formatter, p, res, cmp))
	return nil
}

func seriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "print the growth series as a table",
		RunE:  runSeries,
	}
	addSimFlags(cmd)
	return cmd
}

func simulate(cmd *cobra.Command) (growth.Parameters, []growth.Sample, error) {
	p, n, err := resolveParams(cmd)
	if err != nil {
		return p, nil, err
	}
	s, err := sess.model.GenerateSeries(p.ElapsedMinutes, p.DoublingMinutes, p.InitialPopulation, n)
	if err != nil {
		return p, nil, fmt.Errorf("generate series: %w", err)
	}
	sess.log.Debugw("series generated", "samples", len(s))
	return p, s, nil
}

func runSeries(cmd *cobra.Command, args []string) error {
	_, s, err := simulate(cmd)
	if err != nil {
		return err
	}

	f := sess.formatter
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "HOURS\tDAYS\tPOPULATION\tMASS (KG)\tDOUBLINGS\t")
	for _, sample := range s {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			f.FormatScientific(growth.MinutesToHours(sample.ElapsedMinutes)),
			f.FormatScientific(growth.MinutesToDays(sample.ElapsedMinutes)),
			f.FormatScientific(sample.FinalPopulation),
			f.FormatScientific(sample.TotalMassKg),
			f.FormatScientific(sample.Doublings),
		)
	}
	return w.Flush()
}

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "plot log10 population or mass in the terminal",
		RunE:  runChart,
	}
	addSimFlags(cmd)
	cmd.Flags().StringVar(&metric, "metric", "population", "population or mass")
	cmd.Flags().IntVar(&height, "height", 12, "chart height")
	cmd.Flags().IntVar(&width, "width", 72, "chart width")
	cmd.Flags().Float64SliceVar(&intervals, "intervals", nil, "plot one line per doubling interval, e.g. 20,30,40")
	return cmd
}

func runChart(cmd *cobra.Command, args []string) error {
	m, err := viz.ParseMetric(metric)
	if err != nil {
		return err
	}
	opts := viz.ChartOptions{Metric: m, Height: height, Width: width}

	var graph string
	if len(intervals) > 0 {
		p, n, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		lines, err := sess.model.MultiSeries(intervals, p.ElapsedMinutes, p.ElapsedMinutes/float64(n))
		if err != nil {
			return fmt.Errorf("multi series: %w", err)
		}
		graph, err = viz.MultiChart(lines, opts)
		if err != nil {
			return err
		}
	} else {
		_, s, err := simulate(cmd)
		if err != nil {
			return err
		}
		graph, err = viz.GrowthChart(s, opts)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "compare the final mass with the reference bodies",
		RunE:  runCompare,
	}
	addSimFlags(cmd)
	cmd.Flags().StringVar(&body, "body", "", "compare with a single reference body")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	res, err := sess.model.Compute(p)
	if err != nil {
		return fmt.Errorf("compute growth: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mass: %s kg\n", sess.formatter.FormatScientific(res.TotalMassKg))

	if body != "" {
		ref, ok := sess.model.Reference(body)
		if !ok {
			return fmt.Errorf("unknown reference body: %s", body)
		}
		c, err := sess.model.CompareTo(res.TotalMassKg, ref.Name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, c.Describe(sess.formatter, ref.Name))
		return nil
	}

	cmp, err := sess.model.CompareAll(res.TotalMassKg)
	if err != nil {
		return err
	}
	for _, c := range cmp {
		fmt.Fprintln(out, c.Describe(sess.formatter, c.Body.Name))
	}
	return nil
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "reference data: masses and how long the colony needs to match them",
		RunE:  runStats,
	}
	addSimFlags(cmd)
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	f := sess.formatter
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "bacterium mass: %s kg\n", f.FormatScientific(sess.model.UnitMassKg()))
	fmt.Fprintf(out, "doubling every %s min, starting from %s\n", f.FormatScientific(p.DoublingMinutes), f.FormatScientific(p.InitialPopulation))
	fmt.Fprintln(out, viz.Separator(48))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tMASS (KG)\tBACTERIA\tHOURS\tDAYS")
	for _, ref := range sess.model.References() {
		minutes, err := sess.model.TimeToReach(ref.MassKg, p.DoublingMinutes, p.InitialPopulation)
		if err != nil {
			return fmt.Errorf("time to reach %s: %w", ref.Name, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			ref.Name,
			f.FormatScientific(ref.MassKg),
			f.FormatScientific(sess.model.PopulationToMatch(ref.MassKg)),
			f.FormatScientific(growth.MinutesToHours(minutes)),
			f.FormatScientific(growth.MinutesToDays(minutes)),
		)
	}
	return w.Flush()
}

func tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "wall-clock doubling table",
		RunE:  runTable,
	}
	addSimFlags(cmd)
	cmd.Flags().StringVar(&startClock, "start", "8:00", "wall-clock time of the first row (15:04)")
	cmd.Flags().IntVar(&rows, "rows", 49, "number of rows")
	return cmd
}

func runTable(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	start, err := time.Parse("15:04", startClock)
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	step := time.Duration(p.DoublingMinutes * float64(time.Minute))

	table, err := sess.model.DoublingTable(start, step, p.InitialPopulation, rows)
	if err != nil {
		return fmt.Errorf("doubling table: %w", err)
	}

	f := sess.formatter
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tINTERVAL\tPOPULATION\tMASS (KG)")
	for _, r := range table {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Clock, r.Interval, f.FormatScientific(r.Population), f.FormatScientific(r.MassKg))
	}
	return w.Flush()
}

func outbreakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbreak",
		Short: "days for an unchecked epidemic to reach the world population",
		RunE:  runOutbreak,
	}
	cmd.Flags().Float64Var(&population, "population", outbreak.WorldPopulation, "population to reach")
	cmd.Flags().Float64Var(&doublingDay, "doubling-days", outbreak.DefaultDoublingDays, "days for the number of cases to double")
	return cmd
}

func runOutbreak(cmd *cobra.Command, args []string) error {
	est, err := outbreak.Estimates(outbreak.DefaultVariants(), population, doublingDay)
	if err != nil {
		return fmt.Errorf("outbreak: %w", err)
	}

	f := sess.formatter
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tR0\tDAYS")
	for _, e := range est {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, f.FormatScientific(e.R0), f.FormatScientific(e.Days))
	}
	return w.Flush()
}
