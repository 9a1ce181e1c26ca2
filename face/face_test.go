package face

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
)

func TestEyes_DeadIsFinal(t *testing.T) {
	e := NewEyes(config.Default().Eyes)
	rng := rand.New(rand.NewSource(1))

	assert.True(t, e.Update(false, false, rng))
	assert.Equal(t, EyesDead, e.State)

	for i := 0; i < 10; i++ {
		assert.False(t, e.Update(true, false, rng))
		assert.Equal(t, EyesDead, e.State)
	}
}

func TestEyes_SleepAndWake(t *testing.T) {
	e := NewEyes(config.EyesConfig{})
	rng := rand.New(rand.NewSource(1))

	require.True(t, e.Update(true, true, rng))
	assert.Equal(t, EyesSleep, e.State)
	assert.True(t, e.Closed())
	assert.False(t, e.Update(true, true, rng), "staying asleep needs no redraw")

	require.True(t, e.Update(true, false, rng))
	assert.Equal(t, EyesOpen, e.State)
	assert.False(t, e.Closed())
}

func TestEyes_BlinkLastsDuration(t *testing.T) {
	e := NewEyes(config.EyesConfig{BlinkChance: 1, BlinkDuration: 2})
	rng := rand.New(rand.NewSource(1))

	require.True(t, e.Update(true, false, rng))
	require.Equal(t, EyesBlink, e.State)

	// Count goes 1, 2, 3; the eyes open once it exceeds the duration
	assert.False(t, e.Update(true, false, rng))
	assert.False(t, e.Update(true, false, rng))
	assert.True(t, e.Update(true, false, rng))
	assert.Equal(t, EyesOpen, e.State)
}

func TestEyes_NoChanceNoChange(t *testing.T) {
	e := NewEyes(config.EyesConfig{BlinkDuration: 3})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.False(t, e.Update(true, false, rng))
	}
	assert.Equal(t, 1.0, e.Gaze)
}

func TestEyes_GazeStaysInRange(t *testing.T) {
	e := NewEyes(config.EyesConfig{GazeChance: 1})
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		e.Update(true, false, rng)
		assert.GreaterOrEqual(t, e.Gaze, 0.0)
		assert.Less(t, e.Gaze, maxGaze)
	}
}

func TestLayout_Regions(t *testing.T) {
	l := NewLayout(512, 256)
	assert.Equal(t, int32(4), l.Scale)
	assert.Equal(t, Rect{0, 0, 512, 32}, l.Header)
	assert.Equal(t, Rect{0, 32, 32, 224}, l.Levels)
	assert.Equal(t, Rect{32, 32, 480, 224}, l.Face)

	left, right := l.EyeCenters()
	assert.Equal(t, Point{232, 152}, left)
	assert.Equal(t, right.X-left.X, int32(160))

	small := NewLayout(64, 32)
	assert.Equal(t, int32(1), small.Scale)
}

func TestLayout_LevelHeight(t *testing.T) {
	l := NewLayout(128, 64) // level bar is 56 px tall
	full := components.Counter{Value: 100, Max: 100, Timebase: 1}
	empty := components.Counter{Value: 0, Max: 100, Timebase: 1}
	third := components.Counter{Value: 33, Max: 100, Timebase: 1}

	assert.Equal(t, int32(56), l.LevelHeight(full))
	assert.Equal(t, int32(0), l.LevelHeight(empty))
	assert.Equal(t, int32(18), l.LevelHeight(third))
}

func TestLayout_PupilOffset(t *testing.T) {
	l := NewLayout(128, 64)
	assert.Equal(t, Point{0, 10}, l.PupilOffset(0))
}

func TestHeaderText(t *testing.T) {
	assert.Equal(t, "energy: 78", HeaderText("energy", 78))
}
