package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bactogrowth/internal/growth"
)

const (
	EnvPrefix       = "BACTOGROWTH"
	DefaultFile     = "bactogrowth.yaml"
	DefaultElapsed  = 24 * 60.0
	DefaultDoubling = growth.DefaultDoublingMinutes
	DefaultSamples  = 100
	DefaultLocale   = "es-ES"
	DefaultPolicy   = "strict"
	DefaultDataDir  = ".bactogrowth"
)

type Config struct {
	ElapsedMinutes    float64                `yaml:"elapsed_minutes" mapstructure:"elapsed_minutes"`
	DoublingMinutes   float64                `yaml:"doubling_minutes" mapstructure:"doubling_minutes"`
	InitialPopulation float64                `yaml:"initial_population" mapstructure:"initial_population"`
	Samples           int                    `yaml:"samples" mapstructure:"samples"`
	Locale            string                 `yaml:"locale" mapstructure:"locale"`
	Policy            string                 `yaml:"policy" mapstructure:"policy"`
	DataDir           string                 `yaml:"data_dir" mapstructure:"data_dir"`
	UnitMassKg        float64                `yaml:"unit_mass_kg" mapstructure:"unit_mass_kg"`
	References        []growth.ReferenceBody `yaml:"references" mapstructure:"references"`
}

func DefaultConfig() *Config {
	c := growth.DefaultConstants()
	return &Config{
		ElapsedMinutes:    DefaultElapsed,
		DoublingMinutes:   DefaultDoubling,
		InitialPopulation: growth.DefaultInitialPopulation,
		Samples:           DefaultSamples,
		Locale:            DefaultLocale,
		Policy:            DefaultPolicy,
		DataDir:           DefaultDataDir,
		UnitMassKg:        c.UnitMassKg,
		References:        c.References,
	}
}

// Load reads path (when not empty) on top of DefaultConfig and applies
// BACTOGROWTH_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover returns DefaultFile when it exists in the working directory.
func Discover() string {
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("config: samples must be at least 1, got %d", c.Samples)
	}
	switch c.Policy {
	case "strict", "lenient":
	default:
		return fmt.Errorf("config: unknown policy %q", c.Policy)
	}
	_, err := growth.New(c.Constants())
	return err
}

func (c *Config) Constants() growth.Constants {
	refs := make([]growth.ReferenceBody, len(c.References))
	copy(refs, c.References)
	return growth.Constants{UnitMassKg: c.UnitMassKg, References: refs}
}

func (c *Config) Parameters() growth.Parameters {
	return growth.Parameters{
		ElapsedMinutes:    c.ElapsedMinutes,
		DoublingMinutes:   c.DoublingMinutes,
		InitialPopulation: c.InitialPopulation,
	}
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("elapsed_minutes", d.ElapsedMinutes)
	v.SetDefault("doubling_minutes", d.DoublingMinutes)
	v.SetDefault("initial_population", d.InitialPopulation)
	v.SetDefault("samples", d.Samples)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("policy", d.Policy)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("unit_mass_kg", d.UnitMassKg)
	v.SetDefault("references", d.References)
}
