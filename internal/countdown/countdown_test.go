package countdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T, seconds int) Countdown {
	t.Helper()
	c, eff := Step(Countdown{}, Start{Seconds: seconds})
	require.Equal(t, Running, c.State())
	require.Equal(t, EffectScheduleTick, eff)
	return c
}

func TestZeroValueIsIdle(t *testing.T) {
	var c Countdown
	assert.Equal(t, Idle, c.State())
	assert.False(t, c.Active())
	assert.Equal(t, "idle", c.State().String())
}

func TestStartSetsRemainingAndShowsClock(t *testing.T) {
	c := start(t, 125)
	assert.Equal(t, 125, c.Remaining())
	assert.Equal(t, 125, c.Total())
	assert.Equal(t, "2:05", c.Display())
	assert.Equal(t, 0.0, c.Progress())
}

func TestStartIgnoresNonPositive(t *testing.T) {
	for _, d := range []int{0, -5} {
		c, eff := Step(Countdown{}, Start{Seconds: d})
		assert.Equal(t, Idle, c.State())
		assert.Equal(t, EffectNone, eff)
	}
}

func TestStartIgnoredWhileActive(t *testing.T) {
	c := start(t, 10)
	next, eff := Step(c, Start{Seconds: 99})
	assert.Equal(t, c, next)
	assert.Equal(t, EffectNone, eff)
}

func TestRunsToFlashingOnZeroTick(t *testing.T) {
	c := start(t, 5)
	want := []string{"0:04", "0:03", "0:02", "0:01"}
	for _, text := range want {
		var eff Effect
		c, eff = Step(c, Tick{Gen: c.Gen()})
		require.Equal(t, Running, c.State())
		require.Equal(t, EffectScheduleTick, eff)
		require.Equal(t, text, c.Display())
	}

	c, eff := Step(c, Tick{Gen: c.Gen()})
	assert.Equal(t, Flashing, c.State())
	assert.Equal(t, EffectScheduleReset, eff)
	assert.Equal(t, "0:00", c.Display())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, 1.0, c.Progress())

	// further ticks do nothing while flashing
	same, eff := Step(c, Tick{Gen: c.Gen()})
	assert.Equal(t, c, same)
	assert.Equal(t, EffectNone, eff)

	c, eff = Step(c, FlashDone{Gen: c.Gen()})
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, EffectNone, eff)
}

func TestRemainingNeverIncreases(t *testing.T) {
	c := start(t, 30)
	prev := c.Remaining()
	for c.State() == Running {
		c, _ = Step(c, Tick{Gen: c.Gen()})
		require.LessOrEqual(t, c.Remaining(), prev)
		prev = c.Remaining()
	}
}

func TestCancelFromRunningNeverFlashes(t *testing.T) {
	for ticks := 0; ticks < 5; ticks++ {
		c := start(t, 5)
		for i := 0; i < ticks; i++ {
			c, _ = Step(c, Tick{Gen: c.Gen()})
		}
		if c.State() != Running {
			continue
		}
		gen := c.Gen()
		c, eff := Step(c, Cancel{})
		require.Equal(t, Idle, c.State())
		require.Equal(t, EffectNone, eff)

		// the tick armed before cancelling arrives late and must be dropped
		c, eff = Step(c, Tick{Gen: gen})
		assert.Equal(t, Idle, c.State())
		assert.Equal(t, EffectNone, eff)
	}
}

func TestCancelIgnoredOutsideRunning(t *testing.T) {
	idle := Countdown{}
	next, eff := Step(idle, Cancel{})
	assert.Equal(t, idle, next)
	assert.Equal(t, EffectNone, eff)

	c := start(t, 1)
	c, _ = Step(c, Tick{Gen: c.Gen()})
	require.Equal(t, Flashing, c.State())
	next, eff = Step(c, Cancel{})
	assert.Equal(t, Flashing, next.State())
	assert.Equal(t, EffectNone, eff)
}

func TestStaleFlashDoneIgnored(t *testing.T) {
	c := start(t, 1)
	c, _ = Step(c, Tick{Gen: c.Gen()})
	require.Equal(t, Flashing, c.State())
	next, eff := Step(c, FlashDone{Gen: c.Gen() - 1})
	assert.Equal(t, Flashing, next.State())
	assert.Equal(t, EffectNone, eff)
}

func TestRestartAfterCancelUsesNewGeneration(t *testing.T) {
	c := start(t, 10)
	old := c.Gen()
	c, _ = Step(c, Cancel{})
	c, _ = Step(c, Start{Seconds: 3})
	assert.NotEqual(t, old, c.Gen())
	next, eff := Step(c, Tick{Gen: old})
	assert.Equal(t, 3, next.Remaining())
	assert.Equal(t, EffectNone, eff)
}
