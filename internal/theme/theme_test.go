package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsDark(t *testing.T) {
	assert.Equal(t, Dark, Default)
	assert.True(t, Default.IsDark())
}

func TestToggleFlips(t *testing.T) {
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Dark, Light.Toggle())
}

func TestToggleEvenTimesReturnsToStart(t *testing.T) {
	for _, start := range []Mode{Dark, Light} {
		m := start
		for i := 0; i < 10; i++ {
			m = m.Toggle()
			if i%2 == 1 {
				assert.Equal(t, start, m, "after %d toggles", i+1)
			} else {
				assert.NotEqual(t, start, m, "after %d toggles", i+1)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"dark", Dark},
		{"light", Light},
		{" LIGHT ", Light},
		{"Dark", Dark},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("sepia")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestParseOrDefault(t *testing.T) {
	assert.Equal(t, Dark, ParseOrDefault(""))
	assert.Equal(t, Dark, ParseOrDefault("purple"))
	assert.Equal(t, Light, ParseOrDefault("light"))
}

func TestToggleIcon(t *testing.T) {
	assert.Equal(t, "sun", Dark.ToggleIcon())
	assert.Equal(t, "moon", Light.ToggleIcon())
	assert.NotEqual(t, Dark.ToggleIconClass(), Light.ToggleIconClass())
}

func TestZeroModeBehavesAsDark(t *testing.T) {
	var m Mode
	assert.True(t, m.IsDark())
	assert.Equal(t, "dark", m.Class())
	assert.Equal(t, Dark.Palette(), m.Palette())
	assert.Equal(t, Light, m.Toggle())
}

func TestPalettesDiffer(t *testing.T) {
	assert.NotEqual(t, Dark.Palette().Background, Light.Palette().Background)
	assert.NotEqual(t, Dark.Palette().Text, Light.Palette().Text)
}
