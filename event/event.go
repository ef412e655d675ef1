// Package event provides causally ordered triggers.
//
// An Event records the time it fired on a clock. Effects hang off events
// with After and On; After lets a later event silence an earlier event's
// running effect without the earlier one knowing it was superseded.
package event

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
)

// stamp is an optional trigger time.
type stamp struct {
	at  float64
	set bool
}

type Event struct {
	rs      *alien.ReactiveSystem
	clock   clock.Source
	trigger *alien.WriteableSignal[stamp]
}

// New creates an untriggered event measured against clk.
func New(rs *alien.ReactiveSystem, clk clock.Source) *Event {
	return &Event{
		rs:      rs,
		clock:   clk,
		trigger: alien.Signal(rs, stamp{}),
	}
}

// FromTrigger creates an event that fires the first time cond is true,
// including when it is already true at creation. Later flips of cond are
// ignored.
func FromTrigger(rs *alien.ReactiveSystem, cond alien.Readable[bool], clk clock.Source) *Event {
	e := New(rs, clk)
	latched := alien.Computed(rs, func(wasTrue bool) bool {
		return wasTrue || cond.Value()
	})
	alien.Effect(rs, func() error {
		if latched.Value() {
			e.TriggerOnce()
		}
		return nil
	})
	return e
}

func (e *Event) Triggered() bool {
	return e.trigger.Value().set
}

func (e *Event) TriggeredUntracked() bool {
	return e.trigger.Peek().set
}

// TriggerTime returns the clock reading at which the event fired.
func (e *Event) TriggerTime() (float64, bool) {
	st := e.trigger.Value()
	return st.at, st.set
}

// Time is the time elapsed since the event fired, or 0 while untriggered.
func (e *Event) Time() float64 {
	st := e.trigger.Value()
	if !st.set {
		return 0
	}
	return e.clock.Now() - st.at
}

func (e *Event) TimeUntracked() float64 {
	st := e.trigger.Peek()
	if !st.set {
		return 0
	}
	return e.clock.Peek() - st.at
}

// Trigger records the current time as the trigger time, replacing any
// earlier one.
func (e *Event) Trigger() {
	e.trigger.SetValue(stamp{at: e.clock.Peek(), set: true})
}

// TriggerOnce records the current time only if the event has not fired.
func (e *Event) TriggerOnce() {
	if !e.trigger.Peek().set {
		e.Trigger()
	}
}

// After runs fn with the time elapsed since the event fired on every clock
// update, unless one of suppressedBy has fired.
//
// The suppressors are checked on every update rather than unsubscribing once,
// so the effect would resume if a suppressor were ever reset. A suppressed
// effect stops reading the clock and only wakes when a suppressor or this
// event changes. fn runs untracked.
func (e *Event) After(fn func(elapsed float64), suppressedBy ...*Event) {
	suppressors := mapset.NewThreadUnsafeSet(suppressedBy...)
	suppressors.Remove(e)

	alien.Effect(e.rs, func() error {
		st := e.trigger.Value()
		if !st.set {
			return nil
		}
		suppressed := false
		suppressors.Each(func(s *Event) bool {
			suppressed = s.Triggered()
			return suppressed
		})
		if suppressed {
			return nil
		}

		elapsed := e.clock.Now() - st.at
		e.untracked(func() { fn(elapsed) })
		return nil
	})
}

// On runs fn once for every distinct trigger time, with the trigger time and
// a count of invocations starting at 1. An event that is never re-triggered
// invokes fn at most once.
func (e *Event) On(fn func(triggerTime float64, n int)) {
	var last stamp
	count := 0

	alien.Effect(e.rs, func() error {
		st := e.trigger.Value()
		if !st.set || st == last {
			return nil
		}
		last = st
		count++

		e.untracked(func() { fn(st.at, count) })
		return nil
	})
}

func (e *Event) untracked(fn func()) {
	e.rs.PauseTracking()
	defer e.rs.ResumeTracking()
	fn()
}

// TimeSince is the time elapsed since cond first became true, or 0 before.
func TimeSince(rs *alien.ReactiveSystem, cond alien.Readable[bool], clk clock.Source) *alien.ReadonlySignal[float64] {
	e := FromTrigger(rs, cond, clk)
	return alien.Computed(rs, func(float64) float64 {
		return e.Time()
	})
}
