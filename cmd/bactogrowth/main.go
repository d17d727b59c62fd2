package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/bactogrowth/internal/config"
	"github.com/san-kum/bactogrowth/internal/growth"
	"github.com/san-kum/bactogrowth/internal/input"
	"github.com/san-kum/bactogrowth/internal/logger"
	"github.com/san-kum/bactogrowth/internal/storage"
)

var (
	configFile string
	dataDir    string
	locale     string
	logLevel   string
	lenient    bool

	elapsed  string
	unit     string
	interval string
	initial  string
	samples  int
	preset   string
)

// session is what every command shares once flags and config are resolved.
type session struct {
	cfg       *config.Config
	model     *growth.Model
	formatter *growth.Formatter
	policy    input.Policy
	log       logger.Logger
	store     *storage.Store
}

var sess *session

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		lggr := logger.Nop()
		if sess != nil {
			lggr = sess.log
		} else if l, lerr := logger.New(zapcore.ErrorLevel); lerr == nil {
			lggr = l
		}
		lggr.Errorw("command failed", "cmd", commandName(rootCmd), "err", err)
		_ = lggr.Sync()
		os.Exit(1)
	}
	if sess != nil {
		_ = sess.log.Sync()
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "bactogrowth",
		Short:             "exponential bacterial growth lab",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for saved runs")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "display locale, e.g. es-ES or en")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "coerce malformed numbers the way the classroom page does")

	rootCmd.AddCommand(
		growCmd(), seriesCmd(), chartCmd(), compareCmd(), statsCmd(), tableCmd(), outbreakCmd(),
		exportCSVCmd(), exportSVGCmd(),
		runCmd(), listCmd(), plotCmd(), exportJSONCmd(),
		sweepCmd(), scenarioCmd(), presetsCmd(), initConfigCmd(),
		liveCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	lggr, err := logger.New(level)
	if err != nil {
		return err
	}

	path := configFile
	if path == "" {
		path = config.Discover()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("locale") {
		cfg.Locale = locale
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("lenient") {
		cfg.Policy = input.Strict.String()
		if lenient {
			cfg.Policy = input.Lenient.String()
		}
	}

	f, err := growth.ParseLocale(cfg.Locale)
	if err != nil {
		return err
	}
	model, err := growth.New(cfg.Constants())
	if err != nil {
		return fmt.Errorf("invalid constants: %w", err)
	}

	policy := input.Strict
	if cfg.Policy == input.Lenient.String() {
		policy = input.Lenient
	}

	sess = &session{
		cfg:       cfg,
		model:     model,
		formatter: f,
		policy:    policy,
		log:       lggr.Named(cmd.Name()),
		store:     storage.New(cfg.DataDir),
	}
	sess.log.Debugw("session ready", "config", path, "locale", f.Locale().String(), "policy", cfg.Policy)
	return nil
}

// addSimFlags registers the flags describing one growth question.
func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&elapsed, "time", "", "elapsed time (see --unit)")
	cmd.Flags().StringVar(&unit, "unit", "minutes", "unit of --time: minutes, hours or days")
	cmd.Flags().StringVar(&interval, "interval", "", "doubling interval in minutes")
	cmd.Flags().StringVar(&initial, "initial", "", "initial population")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of series intervals")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveParams layers preset, config and changed flags, then runs the raw
// values through the input policy.
func resolveParams(cmd *cobra.Command) (growth.Parameters, int, error) {
	base := sess.cfg
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return growth.Parameters{}, 0, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		base = p
	}

	raw := input.Raw{
		Elapsed:           formatRaw(base.ElapsedMinutes),
		Unit:              input.Minutes,
		DoublingMinutes:   formatRaw(base.DoublingMinutes),
		InitialPopulation: formatRaw(base.InitialPopulation),
	}
	if cmd.Flags().Changed("time") {
		u, err := parseUnit(unit)
		if err != nil {
			return growth.Parameters{}, 0, err
		}
		raw.Elapsed = elapsed
		raw.Unit = u
	}
	if cmd.Flags().Changed("interval") {
		raw.DoublingMinutes = interval
	}
	if cmd.Flags().Changed("initial") {
		raw.InitialPopulation = initial
	}

	p, err := input.Parse(raw, sess.policy)
	if err != nil {
		return growth.Parameters{}, 0, err
	}

	n := base.Samples
	if cmd.Flags().Changed("samples") {
		n = samples
	}
	return p, n, nil
}

func parseUnit(s string) (input.TimeUnit, error) {
	switch strings.ToLower(s) {
	case "m", "min", "minute", "minutes":
		return input.Minutes, nil
	case "h", "hour", "hours":
		return input.Hours, nil
	case "d", "day", "days":
		return input.Days, nil
	}
	return input.Minutes, fmt.Errorf("unknown time unit: %s", s)
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func commandName(root *cobra.Command) string {
	cmd, _, err := root.Find(os.Args[1:])
	if err != nil || cmd == nil {
		return root.Name()
	}
	return cmd.Name()
}
