// Package clock provides the monotonic time source every animation reads.
//
// Times are float64 milliseconds. The frame clock is a single writeable
// signal: reading Now inside a computed or effect subscribes it to every
// frame, Peek reads the instantaneous value without subscribing.
package clock

import (
	"context"
	"time"

	"github.com/delaneyj/signalscene/alien"
)

// Source is a monotonically non-decreasing time source in milliseconds.
type Source interface {
	// Now returns the current time and tracks it in the running computed or effect.
	Now() float64
	// Peek returns the current time without tracking.
	Peek() float64
}

// Clock is the frame-driven process-wide clock. It only moves when told to,
// either by Set/Advance or by a frame loop calling Tick.
type Clock struct {
	rs     *alien.ReactiveSystem
	now    *alien.WriteableSignal[float64]
	origin time.Time
}

// New creates a clock reading 0 whose origin is the current wall time.
func New(rs *alien.ReactiveSystem) *Clock {
	return &Clock{
		rs:     rs,
		now:    alien.Signal(rs, 0.0),
		origin: time.Now(),
	}
}

func (c *Clock) Now() float64  { return c.now.Value() }
func (c *Clock) Peek() float64 { return c.now.Peek() }

// Set moves the clock to ms. Readings behind the current time are ignored.
func (c *Clock) Set(ms float64) {
	if ms < c.now.Peek() {
		return
	}
	c.now.SetValue(ms)
}

// Advance moves the clock forward by d milliseconds.
func (c *Clock) Advance(d float64) {
	if d <= 0 {
		return
	}
	c.Set(c.now.Peek() + d)
}

// Tick sets the clock to the wall time elapsed between its origin and t.
func (c *Clock) Tick(t time.Time) {
	c.Set(Millis(t.Sub(c.origin)))
}

// Run drives the clock from a time.Ticker until ctx is done. onFrame, if set,
// runs after every tick once the frame's effects have flushed.
func (c *Clock) Run(ctx context.Context, interval time.Duration, onFrame func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			c.Tick(now)
			if onFrame != nil {
				onFrame()
			}
		}
	}
}

// Millis converts a duration to float milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

type signalSource struct {
	r alien.Readable[float64]
}

func (s signalSource) Now() float64  { return s.r.Value() }
func (s signalSource) Peek() float64 { return s.r.Peek() }

// FromSignal adapts a derived time signal, such as a scene's local clock,
// to Source.
func FromSignal(r alien.Readable[float64]) Source {
	return signalSource{r: r}
}
