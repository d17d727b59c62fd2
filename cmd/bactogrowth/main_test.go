package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bactogrowth/internal/growth"
	"github.com/san-kum/bactogrowth/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestGrow(t *testing.T) {
	out, err := execute(t, "grow", "--time", "2", "--unit", "days", "--interval", "20", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "2.23e+43")
	assert.Contains(t, out, "times the mass of Earth")
}

func TestGrowStrictRejectsGarbage(t *testing.T) {
	_, err := execute(t, "grow", "--time", "abc")
	assert.ErrorIs(t, err, growth.ErrInvalidInput)
}

func TestGrowZeroInterval(t *testing.T) {
	_, err := execute(t, "grow", "--interval", "0")
	assert.ErrorIs(t, err, growth.ErrDivision)
}

func TestGrowLenientCoercesInitial(t *testing.T) {
	out, err := execute(t, "grow", "--lenient", "--time", "60", "--interval", "20", "--initial", "abc", "--locale", "en")
	require.NoError(t, err)
	assert.Regexp(t, `population\s+8\b`, out)
}

func TestSeries(t *testing.T) {
	out, err := execute(t, "series", "--preset", "page", "--locale", "en")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 12)
	assert.Contains(t, lines[0], "POPULATION")
}

func TestCompareSingleBody(t *testing.T) {
	out, err := execute(t, "compare", "--time", "1", "--unit", "days", "--body", "moon")
	require.NoError(t, err)
	assert.Contains(t, out, "% of the mass of Moon")
	assert.NotContains(t, out, "Earth")
}

func TestTable(t *testing.T) {
	out, err := execute(t, "table", "--interval", "20", "--initial", "7", "--rows", "49")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 50)
	assert.True(t, strings.HasPrefix(lines[1], "8:00"))
	assert.True(t, strings.HasPrefix(lines[49], "0:00"))
}

func TestOutbreak(t *testing.T) {
	out, err := execute(t, "outbreak", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Omicron")
	assert.Contains(t, out, "98.69")
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Earth")
	assert.Contains(t, out, "8.53e+39")
	assert.Contains(t, out, "◆")
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := execute(t, "export-csv", path, "--time", "2880", "--interval", "20", "--samples", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Tiempo (horas),Tiempo (días),Población,Masa (kg),Divisiones\n"))
	assert.Equal(t, 4, strings.Count(string(data), "\n"))
}

func TestExportSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	_, err := execute(t, "export-svg", path, "--samples", "10")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="800"`)
}

func TestRunListExport(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "run", "--data", dir, "--preset", "lab")
	require.NoError(t, err)
	require.Contains(t, out, "run id: ")

	runID := strings.TrimSpace(strings.SplitN(strings.TrimPrefix(out, "run id: "), "\n", 2)[0])

	out, err = execute(t, "list", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, runID)
	assert.Contains(t, out, "lab")

	out, err = execute(t, "plot", runID, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "log10 population")

	out, err = execute(t, "export-json", runID, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `"initial_population": 7`)
}

func TestRunIDCannotLeaveDataDir(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run", "--data", filepath.Join(dir, "runs"), "--preset", "lab")
	require.NoError(t, err)

	_, err = execute(t, "plot", "../runs", "--data", filepath.Join(dir, "runs"))
	assert.ErrorIs(t, err, storage.ErrInvalidRunID)

	_, err = execute(t, "export-json", "../../etc", "--data", filepath.Join(dir, "runs"))
	assert.ErrorIs(t, err, storage.ErrInvalidRunID)
}

func TestGrowLenientNegativeInitial(t *testing.T) {
	out, err := execute(t, "grow", "--lenient", "--time", "60", "--interval", "20", "--initial", "-5", "--locale", "en")
	require.NoError(t, err)
	assert.Regexp(t, `population\s+8\b`, out)

	_, err = execute(t, "grow", "--time", "60", "--interval", "20", "--initial", "-5")
	assert.ErrorIs(t, err, growth.ErrInvalidInput)
}

func TestListEmpty(t *testing.T) {
	out, err := execute(t, "list", "--data", filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Contains(t, out, "no runs found")
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--min", "20", "--max", "40", "--steps", "3", "--body", "moon", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "mass of Moon")
	assert.Equal(t, 5, strings.Count(strings.TrimSpace(out), "\n"))
}

func TestScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: demo
steps:
  - name: fast
    elapsed_minutes: 120
    doubling_minutes: 20
    save_as: fast
  - preset: slow
`), 0644))

	out, err := execute(t, "scenario", path, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario: demo")
	assert.Contains(t, out, "fast")
	assert.Contains(t, out, "#2")

	out, err = execute(t, "list", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "fast")
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	for _, name := range []string{"classroom", "lab", "page", "slow"} {
		assert.Contains(t, out, name)
	}
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bactogrowth.yaml")

	_, err := execute(t, "init-config", path, "--locale", "en")
	require.NoError(t, err)

	_, err = execute(t, "grow", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "en", sess.cfg.Locale)

	_, err = execute(t, "grow", "--config", path, "--locale", "fr")
	require.NoError(t, err)
	assert.Equal(t, "fr", sess.formatter.Locale().String())
}

func TestUnknownPreset(t *testing.T) {
	_, err := execute(t, "grow", "--preset", "nope")
	assert.Error(t, err)
}

func TestChartMulti(t *testing.T) {
	out, err := execute(t, "chart", "--preset", "page", "--intervals", "20,30,40", "--height", "6", "--width", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "30 min")
}
