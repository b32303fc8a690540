package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		level int
		want  Band
	}{
		{level: 0, want: Critical},
		{level: 20, want: Critical},
		{level: 29, want: Critical},
		{level: 30, want: Moderate},
		{level: 59, want: Moderate},
		{level: 60, want: Good},
		{level: 100, want: Good},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.level), "level %d", tt.level)
	}
}

func TestClassify_PartitionsRange(t *testing.T) {
	counts := map[Band]int{}
	prev := Critical
	for lvl := 0; lvl <= 100; lvl++ {
		band := Classify(lvl)
		counts[band]++
		assert.GreaterOrEqual(t, int(band), int(prev), "bands must not go backwards at level %d", lvl)
		prev = band
	}
	assert.Equal(t, map[Band]int{Critical: 30, Moderate: 30, Good: 41}, counts)
}

func TestClassify_PanicsOutsideRange(t *testing.T) {
	assert.Panics(t, func() { Classify(-1) })
	assert.Panics(t, func() { Classify(101) })
}

func TestBandStyles(t *testing.T) {
	assert.Equal(t, "Nível: Crítico", StatusLabel(Critical))
	assert.Equal(t, "Nível: Moderado", StatusLabel(Moderate))
	assert.Equal(t, "Nível: Bom", StatusLabel(Good))

	assert.Equal(t, Red, StatusColor(Critical))
	assert.Equal(t, RGBA(244, 162, 97, 255), StatusColor(Moderate))
	assert.Equal(t, RGBA(107, 207, 127, 255), StatusColor(Good))

	assert.Equal(t, GradientStop{Start: RGBA(231, 111, 81, 255), End: RGBA(244, 165, 132, 180)}, GradientFor(Critical))
	assert.Equal(t, GradientStop{Start: RGBA(244, 162, 97, 255), End: RGBA(255, 217, 125, 180)}, GradientFor(Moderate))
	assert.Equal(t, GradientStop{Start: RGBA(107, 207, 127, 255), End: RGBA(168, 230, 176, 180)}, GradientFor(Good))
}

func TestBandStyles_CriticalColorIsRedTinted(t *testing.T) {
	c := StatusColor(Critical)
	assert.Greater(t, c.R, c.G)
	assert.Greater(t, c.R, c.B)
}

func TestGradientFor_PanicsOnUnknownBand(t *testing.T) {
	assert.Panics(t, func() { GradientFor(Band(7)) })
	assert.Equal(t, "band(7)", Band(7).String())
}
