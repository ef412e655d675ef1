package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/event"
)

func setup(t *testing.T) (*alien.ReactiveSystem, *clock.Clock) {
	t.Helper()
	rs := alien.CreateReactiveSystem(func(from alien.SignalAware, err error) {
		t.Errorf("unexpected error: %v", err)
	})
	return rs, clock.New(rs)
}

func TestUntriggered(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)

	clk.Advance(250)
	assert.False(t, e.Triggered())
	assert.False(t, e.TriggeredUntracked())
	assert.Zero(t, e.Time())
	assert.Zero(t, e.TimeUntracked())

	_, ok := e.TriggerTime()
	assert.False(t, ok)
}

func TestTimeIncreasesAfterTrigger(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)

	clk.Set(100)
	e.Trigger()
	require.True(t, e.Triggered())
	assert.Zero(t, e.Time())

	prev := e.Time()
	for range 5 {
		clk.Advance(16)
		now := e.Time()
		assert.Greater(t, now, prev)
		prev = now
	}
	assert.Equal(t, 80.0, prev)
}

func TestTriggerOnceIsIdempotent(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)

	clk.Set(100)
	e.TriggerOnce()
	clk.Advance(400)
	e.TriggerOnce()

	at, ok := e.TriggerTime()
	require.True(t, ok)
	assert.Equal(t, 100.0, at)
	assert.Equal(t, 400.0, e.Time())
}

func TestTriggerLastWriteWins(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)

	e.Trigger()
	clk.Advance(300)
	e.Trigger()

	at, _ := e.TriggerTime()
	assert.Equal(t, 300.0, at)
}

func TestAfterRunsEveryTick(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)

	var seen []float64
	e.After(func(elapsed float64) {
		seen = append(seen, elapsed)
	})

	clk.Advance(10)
	assert.Empty(t, seen)

	e.Trigger()
	clk.Advance(10)
	clk.Advance(10)
	assert.Equal(t, []float64{0, 10, 20}, seen)
}

func TestAfterSuppressedBy(t *testing.T) {
	rs, clk := setup(t)
	expand := event.New(rs, clk)
	shrink := event.New(rs, clk)

	calls := 0
	expand.After(func(float64) { calls++ }, shrink)

	expand.Trigger()
	clk.Advance(16)
	clk.Advance(16)
	require.Equal(t, 3, calls)

	shrink.Trigger()
	for range 10 {
		clk.Advance(16)
	}
	assert.Equal(t, 3, calls)
	assert.True(t, expand.Triggered())
}

func TestAfterSuppressedByItselfIsIgnored(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)

	calls := 0
	e.After(func(float64) { calls++ }, e)

	e.Trigger()
	clk.Advance(16)
	assert.Equal(t, 2, calls)
}

func TestAfterCallbackIsUntracked(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)
	other := alien.Signal(rs, 0)

	calls := 0
	e.After(func(float64) {
		calls++
		other.Value()
	})
	e.Trigger()
	require.Equal(t, 1, calls)

	other.SetValue(1)
	assert.Equal(t, 1, calls)
}

func TestAfterCallbackCanTriggerSuppressor(t *testing.T) {
	rs, clk := setup(t)
	expand := event.New(rs, clk)
	shrink := event.New(rs, clk)

	var expandTimes []float64
	expand.After(func(elapsed float64) {
		expandTimes = append(expandTimes, elapsed)
		if elapsed >= 30 {
			shrink.TriggerOnce()
		}
	}, shrink)

	shrinkCalls := 0
	shrink.After(func(float64) { shrinkCalls++ })

	expand.Trigger()
	for range 5 {
		clk.Advance(10)
	}
	assert.Equal(t, []float64{0, 10, 20, 30}, expandTimes)
	assert.Equal(t, 3, shrinkCalls)
}

func TestOnFiresOncePerTriggerTime(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)

	type call struct {
		at float64
		n  int
	}
	var calls []call
	e.On(func(at float64, n int) {
		calls = append(calls, call{at, n})
	})
	assert.Empty(t, calls)

	clk.Set(50)
	e.TriggerOnce()
	clk.Advance(100)
	e.TriggerOnce()
	assert.Equal(t, []call{{50, 1}}, calls)

	e.Trigger()
	assert.Equal(t, []call{{50, 1}, {150, 2}}, calls)
}

func TestOnSeesExistingTrigger(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)
	e.Trigger()

	calls := 0
	e.On(func(float64, int) { calls++ })
	clk.Advance(10)
	assert.Equal(t, 1, calls)
}

func TestFromTrigger(t *testing.T) {
	t.Run("fires on first true", func(t *testing.T) {
		rs, clk := setup(t)
		cond := alien.Signal(rs, false)
		e := event.FromTrigger(rs, cond, clk)

		clk.Set(20)
		assert.False(t, e.Triggered())

		cond.SetValue(true)
		at, ok := e.TriggerTime()
		require.True(t, ok)
		assert.Equal(t, 20.0, at)

		clk.Set(80)
		cond.SetValue(false)
		cond.SetValue(true)
		at, _ = e.TriggerTime()
		assert.Equal(t, 20.0, at)
	})

	t.Run("fires when already true", func(t *testing.T) {
		rs, clk := setup(t)
		clk.Set(5)
		cond := alien.Signal(rs, true)
		e := event.FromTrigger(rs, cond, clk)

		at, ok := e.TriggerTime()
		require.True(t, ok)
		assert.Equal(t, 5.0, at)
	})

	t.Run("derived condition", func(t *testing.T) {
		rs, clk := setup(t)
		start := event.New(rs, clk)
		late := alien.Computed(rs, func(bool) bool {
			return start.Time() > 100
		})
		e := event.FromTrigger(rs, late, clk)

		start.Trigger()
		for range 10 {
			clk.Advance(25)
		}
		at, ok := e.TriggerTime()
		require.True(t, ok)
		assert.Equal(t, 125.0, at)
	})
}

func TestTimeSince(t *testing.T) {
	rs, clk := setup(t)
	cond := alien.Signal(rs, false)
	since := event.TimeSince(rs, cond, clk)

	clk.Advance(100)
	assert.Zero(t, since.Value())

	cond.SetValue(true)
	clk.Advance(40)
	assert.Equal(t, 40.0, since.Value())

	cond.SetValue(false)
	clk.Advance(10)
	assert.Equal(t, 50.0, since.Value())
}

func TestAfterSuppressedInSameBatch(t *testing.T) {
	rs, clk := setup(t)
	expand := event.New(rs, clk)
	shrink := event.New(rs, clk)

	calls := 0
	expand.After(func(float64) { calls++ }, shrink)

	rs.Batch(func() {
		expand.Trigger()
		shrink.Trigger()
	})
	clk.Advance(16)
	assert.Zero(t, calls)

	other := event.New(rs, clk)
	stopper := event.New(rs, clk)
	otherCalls := 0
	other.After(func(float64) { otherCalls++ }, stopper)
	other.Trigger()
	require.Equal(t, 1, otherCalls)

	rs.Batch(func() {
		clk.Advance(16)
		stopper.Trigger()
	})
	clk.Advance(16)
	assert.Equal(t, 1, otherCalls)
}

func TestAfterPanicKeepsTrackingIntact(t *testing.T) {
	rs, clk := setup(t)
	e := event.New(rs, clk)
	e.After(func(float64) { panic("boom") })
	assert.Panics(t, e.Trigger)

	n := alien.Signal(rs, 0)
	runs := 0
	alien.Effect(rs, func() error {
		n.Value()
		runs++
		return nil
	})
	n.SetValue(1)
	assert.Equal(t, 2, runs)
}
