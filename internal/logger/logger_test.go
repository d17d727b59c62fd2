package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNamed(t *testing.T) {
	lggr := Test(t).Named("growth").Named("series")
	assert.Equal(t, "growth.series", lggr.Name())
}

func TestObservedEntries(t *testing.T) {
	lggr, logs := TestObserved(t, zapcore.InfoLevel)

	lggr.Debugw("ignored")
	lggr.With("run", "r1").Infow("saved run", "samples", 11)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "saved run", entries[0].Message)
	assert.Equal(t, "r1", entries[0].ContextMap()["run"])
	assert.Equal(t, int64(11), entries[0].ContextMap()["samples"])
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	lggr, err := New(zapcore.ErrorLevel)
	require.NoError(t, err)
	lggr.Infow("not shown")
	_ = lggr.Sync()

	Nop().Errorw("discarded")
}
