package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bactogrowth/internal/growth"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DoublingMinutes != 20 {
		t.Errorf("expected doubling 20, got %f", cfg.DoublingMinutes)
	}
	if cfg.ElapsedMinutes <= 0 {
		t.Error("elapsed should be positive")
	}
	if len(cfg.References) != 2 {
		t.Errorf("expected 2 reference bodies, got %d", len(cfg.References))
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growth.yaml")
	data := []byte(`elapsed_minutes: 120
doubling_minutes: 30
initial_population: 7
locale: en
references:
  - name: Everest
    mass_kg: 1.6e14
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.ElapsedMinutes)
	assert.Equal(t, 30.0, cfg.DoublingMinutes)
	assert.Equal(t, 7.0, cfg.InitialPopulation)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, DefaultSamples, cfg.Samples)
	assert.Equal(t, []growth.ReferenceBody{{Name: "Everest", MassKg: 1.6e14}}, cfg.References)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BACTOGROWTH_DOUBLING_MINUTES", "45")
	t.Setenv("BACTOGROWTH_POLICY", "lenient")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 45.0, cfg.DoublingMinutes)
	assert.Equal(t, "lenient", cfg.Policy)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit_mass_kg: 0\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, growth.ErrInvalidInput)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.DoublingMinutes = 33

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lab")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.InitialPopulation != 7 {
		t.Errorf("expected initial population 7, got %f", cfg.InitialPopulation)
	}
	assert.Equal(t, DefaultLocale, cfg.Locale)
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"classroom", "lab", "page", "slow"}, ListPresets())
}

func TestParameters(t *testing.T) {
	cfg := GetPreset("page")
	assert.Equal(t, growth.Parameters{ElapsedMinutes: 2880, DoublingMinutes: 20, InitialPopulation: 1}, cfg.Parameters())
}
