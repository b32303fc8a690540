package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAt(t *testing.T, start int) *Model {
	t.Helper()
	return New(Config{Step: DefaultStep, Default: start})
}

func TestNew_StartsAtDefault(t *testing.T) {
	m := New(DefaultConfig())
	assert.Equal(t, 20, m.Snapshot())
	assert.InDelta(t, 0.2, m.Fraction(), 1e-9)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	assert.Panics(t, func() { New(Config{Step: 0, Default: 20}) })
	assert.Panics(t, func() { New(Config{Step: 10, Default: -1}) })
	assert.Panics(t, func() { New(Config{Step: 10, Default: 101}) })
}

func TestIncreaseDecrease_InteriorRoundTrip(t *testing.T) {
	for start := 10; start <= 90; start += 10 {
		m := newAt(t, start)
		m.Increase()
		m.Decrease()
		assert.Equal(t, start, m.Snapshot(), "start %d", start)
	}
}

func TestIncreaseDecrease_NotARoundTripAtBoundaries(t *testing.T) {
	top := newAt(t, 100)
	top.Increase()
	require.Equal(t, 100, top.Snapshot())
	top.Decrease()
	assert.Equal(t, 90, top.Snapshot())

	bottom := newAt(t, 0)
	bottom.Decrease()
	require.Equal(t, 0, bottom.Snapshot())
	bottom.Increase()
	assert.Equal(t, 10, bottom.Snapshot())
}

func TestIncrease_ClampsAtCeiling(t *testing.T) {
	m := newAt(t, 90)
	m.Increase()
	m.Increase()
	assert.Equal(t, 100, m.Snapshot())
}

func TestIncrease_ClampsNonAlignedLevel(t *testing.T) {
	m := newAt(t, 95)
	m.Increase()
	assert.Equal(t, 100, m.Snapshot())
}

func TestDecrease_ClampsAtFloor(t *testing.T) {
	m := newAt(t, 0)
	m.Decrease()
	assert.Equal(t, 0, m.Snapshot())

	m = newAt(t, 5)
	m.Decrease()
	assert.Equal(t, 0, m.Snapshot())
}

func TestReset_ReturnsToDefault(t *testing.T) {
	m := New(DefaultConfig())
	m.Increase()
	require.Equal(t, 30, m.Snapshot())
	m.Reset()
	assert.Equal(t, 20, m.Snapshot())
}

func TestSnapshot_HasNoSideEffects(t *testing.T) {
	m := newAt(t, 40)
	for range 3 {
		assert.Equal(t, 40, m.Snapshot())
	}
}
