package outbreak

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bactogrowth/internal/growth"
)

func TestWorldContagionDays(t *testing.T) {
	days, err := WorldContagionDays(WorldPopulation, DefaultDoublingDays)
	require.NoError(t, err)
	assert.InDelta(t, 98.69, days, 0.01)
	assert.Equal(t, 99.0, math.Round(days))
}

func TestWorldContagionDaysRejects(t *testing.T) {
	_, err := WorldContagionDays(WorldPopulation, 0)
	assert.ErrorIs(t, err, growth.ErrInvalidInput)

	_, err = WorldContagionDays(0, 3)
	assert.ErrorIs(t, err, growth.ErrInvalidInput)
}

func TestEstimates(t *testing.T) {
	est, err := Estimates(DefaultVariants(), WorldPopulation, DefaultDoublingDays)
	require.NoError(t, err)
	require.Len(t, est, 3)
	assert.Equal(t, "Delta", est[1].Name)
	assert.Equal(t, est[0].Days, est[2].Days)
}
