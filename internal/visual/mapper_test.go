package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqualand/internal/geom"
)

func newTestMapper() *Mapper {
	return NewMapper(barContainer, geom.Rect{X: 200, Y: 200, W: 600, H: 300}, 10)
}

func TestMapperPresent_DefaultLevel(t *testing.T) {
	p := newTestMapper().Present(20)

	assert.Equal(t, 20, p.Level)
	assert.Equal(t, Critical, p.Band)
	assert.Equal(t, "Nível: Crítico", p.StatusLabel)
	assert.Equal(t, Red, p.StatusColor)
	assert.Equal(t, "20%", p.PercentText)
	assert.InDelta(t, 440, p.BarFill.Y, 1e-9)
	assert.InDelta(t, 60, p.TankFill.H, 1e-9)
	assert.Equal(t, 200.0, p.TankFill.X)
	assert.Equal(t, 600.0, p.TankFill.W)

	require.Len(t, p.BarSegments, 10)
	require.Len(t, p.TankSegments, 10)
	assert.Equal(t, GradientFor(Critical).Start, p.BarSegments[0].Color)
	assert.Equal(t, RGBA(237, 138, 106, 217), p.BarSegments[5].Color)
	assert.Equal(t, WaterGradient.Start, p.TankSegments[0].Color)
}

func TestMapperPresent_BandFollowsLevel(t *testing.T) {
	m := newTestMapper()
	assert.Equal(t, Moderate, m.Present(30).Band)
	assert.Equal(t, GradientFor(Moderate), m.Present(30).Gradient)
	assert.Equal(t, Good, m.Present(60).Band)
	assert.Equal(t, "Nível: Bom", m.Present(100).StatusLabel)
}

func TestMapperPresent_TankPaletteIgnoresBand(t *testing.T) {
	m := newTestMapper()
	for _, lvl := range []int{0, 30, 100} {
		p := m.Present(lvl)
		assert.Equal(t, WaterGradient.Start, p.TankSegments[0].Color, "level %d", lvl)
	}
}

func TestMapperPresent_FullLevelMatchesContainers(t *testing.T) {
	p := newTestMapper().Present(100)
	assert.Equal(t, barContainer, p.BarFill)
	assert.Equal(t, "100%", p.PercentText)
}

func TestNewMapper_PanicsOnZeroSegments(t *testing.T) {
	assert.Panics(t, func() { NewMapper(barContainer, barContainer, 0) })
}
