package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bactogrowth/internal/growth"
)

func TestParseStrict(t *testing.T) {
	p, err := Parse(Raw{Elapsed: "1.5", Unit: Days, DoublingMinutes: "20", InitialPopulation: "7"}, Strict)
	require.NoError(t, err)
	assert.Equal(t, growth.Parameters{ElapsedMinutes: 2160, DoublingMinutes: 20, InitialPopulation: 7}, p)
}

func TestParseStrictDefaultsEmptyPopulation(t *testing.T) {
	p, err := Parse(Raw{Elapsed: "90", Unit: Minutes, DoublingMinutes: "30"}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.InitialPopulation)
}

func TestParseStrictRejects(t *testing.T) {
	tests := []struct {
		name  string
		raw   Raw
		field string
	}{
		{"empty elapsed", Raw{DoublingMinutes: "20"}, "elapsed"},
		{"words", Raw{Elapsed: "ten", DoublingMinutes: "20"}, "elapsed"},
		{"nan interval", Raw{Elapsed: "10", DoublingMinutes: "NaN"}, "doubling"},
		{"bad population", Raw{Elapsed: "10", DoublingMinutes: "20", InitialPopulation: "x"}, "initial"},
		{"zero population", Raw{Elapsed: "10", DoublingMinutes: "20", InitialPopulation: "0"}, "initial"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw, Strict)
			require.Error(t, err)
			assert.ErrorIs(t, err, growth.ErrInvalidInput)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestParseLenientCoercesPopulation(t *testing.T) {
	for _, pop := range []string{"", "abc", "0", "0.4", "-5", "-0.5"} {
		p, err := Parse(Raw{Elapsed: "2", Unit: Hours, DoublingMinutes: "20.9", InitialPopulation: pop}, Lenient)
		require.NoError(t, err, "pop=%q", pop)
		assert.Equal(t, 1.0, p.InitialPopulation, "pop=%q", pop)
		assert.Equal(t, 20.0, p.DoublingMinutes)
		assert.Equal(t, 120.0, p.ElapsedMinutes)
	}

	p, err := Parse(Raw{Elapsed: "1", DoublingMinutes: "20", InitialPopulation: "12.7"}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, 12.0, p.InitialPopulation)
}

func TestParseLenientStillNeedsInterval(t *testing.T) {
	_, err := Parse(Raw{Elapsed: "1", DoublingMinutes: ""}, Lenient)
	assert.ErrorIs(t, err, growth.ErrInvalidInput)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "lenient", Lenient.String())
	assert.Equal(t, "policy(7)", Policy(7).String())
}
