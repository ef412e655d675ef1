// Package timer implements a stopwatch over a clock that can be paused and
// resumed without losing or double counting time.
package timer

import (
	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
)

type Pausable struct {
	rs    *alien.ReactiveSystem
	clock clock.Source

	paused *alien.WriteableSignal[bool]
	// elapsed time folded in from running intervals that have ended
	banked *alien.WriteableSignal[float64]
	// clock reading when the current running interval began
	resumedAt *alien.WriteableSignal[float64]

	elapsed *alien.ReadonlySignal[float64]
}

// NewPausable creates a running timer reading 0.
func NewPausable(rs *alien.ReactiveSystem, clk clock.Source) *Pausable {
	p := &Pausable{
		rs:        rs,
		clock:     clk,
		paused:    alien.Signal(rs, false),
		banked:    alien.Signal(rs, 0.0),
		resumedAt: alien.Signal(rs, clk.Peek()),
	}
	p.elapsed = alien.Computed(rs, func(float64) float64 {
		if p.paused.Value() {
			return p.banked.Value()
		}
		return p.banked.Value() + p.clock.Now() - p.resumedAt.Value()
	})
	return p
}

// Elapsed is the running time, frozen while paused.
func (p *Pausable) Elapsed() float64 { return p.elapsed.Value() }

func (p *Pausable) ElapsedUntracked() float64 { return p.elapsed.Peek() }

func (p *Pausable) Paused() bool { return p.paused.Value() }

// Signal exposes elapsed time for binding into views.
func (p *Pausable) Signal() *alien.ReadonlySignal[float64] { return p.elapsed }

// SetPaused pauses or resumes the timer. Setting the current state is a no-op.
func (p *Pausable) SetPaused(paused bool) {
	if p.paused.Peek() == paused {
		return
	}
	now := p.clock.Peek()
	p.rs.Batch(func() {
		if paused {
			p.banked.Update(func(b float64) float64 {
				return b + now - p.resumedAt.Peek()
			})
		} else {
			p.resumedAt.SetValue(now)
		}
		p.paused.SetValue(paused)
	})
}

func (p *Pausable) Toggle() {
	p.SetPaused(!p.paused.Peek())
}
