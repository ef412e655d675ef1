// Package scene plays a fixed list of scenes one after another.
//
// Each scene is given a local clock starting at 0 and a done callback. The
// first call to done freezes the scene's clock and advances to the next
// scene; the last scene's done only freezes its clock. Everything a scene
// creates while being set up is disposed when the next scene takes over.
package scene

import (
	"errors"
	"log"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/view"
)

var ErrNoScenes = errors.New("scene: no scenes to play")

// Scene builds the view for one activation. done may be called any number of
// times, from any effect or callback; only the first call counts.
type Scene func(done func(), local clock.Source) view.Node

type Named struct {
	Name  string
	Scene Scene
}

type TransitionKind int

const (
	Activated TransitionKind = iota
	Finished
)

func (k TransitionKind) String() string {
	switch k {
	case Activated:
		return "activated"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Transition is one entry in a sequencer's history.
type Transition struct {
	Kind  TransitionKind
	Index int
	Name  string
	// At is the clock reading when the transition happened.
	At float64
	// Local is the scene's local time at completion, 0 for activations.
	Local float64
}

type stopTime struct {
	at  float64
	set bool
}

type Sequencer struct {
	rs     *alien.ReactiveSystem
	clock  clock.Source
	scenes []Named

	active    *alien.WriteableSignal[int]
	completed *alien.WriteableSignal[bool]

	current    view.Node
	generation int
	history    []Transition
	stop       alien.ErrFn
}

// NewSequencer activates the first scene immediately.
func NewSequencer(rs *alien.ReactiveSystem, clk clock.Source, scenes ...Named) (*Sequencer, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}
	s := &Sequencer{
		rs:        rs,
		clock:     clk,
		scenes:    append([]Named(nil), scenes...),
		active:    alien.Signal(rs, 0),
		completed: alien.Signal(rs, false),
	}

	// re-runs dispose the previous activation's scope before mounting
	s.stop = alien.Effect(rs, func() error {
		idx := s.active.Value()
		alien.EffectScope(rs, func() error {
			s.current = s.activate(idx)
			return nil
		})
		return nil
	})
	return s, nil
}

func (s *Sequencer) activate(id int) view.Node {
	rs := s.rs
	named := s.scenes[id]
	last := len(s.scenes) - 1

	start := s.clock.Peek()
	stopped := alien.Signal(rs, stopTime{})
	local := alien.Computed(rs, func(float64) float64 {
		if st := stopped.Value(); st.set {
			return st.at
		}
		return s.clock.Now() - start
	})

	changedScene := false
	done := func() {
		if changedScene {
			return
		}
		changedScene = true

		rs.Batch(func() {
			at := local.Peek()
			stopped.SetValue(stopTime{at: at, set: true})

			// a scene that is no longer active only freezes its clock
			if s.active.Peek() != id {
				return
			}
			s.record(Transition{Kind: Finished, Index: id, Name: named.Name, At: s.clock.Peek(), Local: at})
			if id == last {
				s.completed.SetValue(true)
				return
			}
			s.active.SetValue(id + 1)
		})
	}

	s.generation++
	s.record(Transition{Kind: Activated, Index: id, Name: named.Name, At: start})
	return named.Scene(done, clock.FromSignal(local))
}

func (s *Sequencer) record(t Transition) {
	s.history = append(s.history, t)
	log.Printf("scene %d %q %s at %.1fms", t.Index, t.Name, t.Kind, t.At)
}

// Active is the index of the playing scene.
func (s *Sequencer) Active() int { return s.active.Value() }

func (s *Sequencer) ActiveUntracked() int { return s.active.Peek() }

// ActiveName is the name of the playing scene.
func (s *Sequencer) ActiveName() string { return s.scenes[s.active.Peek()].Name }

// View returns the active scene's view. Reading it inside an effect
// subscribes to scene changes.
func (s *Sequencer) View() view.Node {
	s.active.Value()
	return s.current
}

func (s *Sequencer) Len() int { return len(s.scenes) }

// Generation counts activations, including the first.
func (s *Sequencer) Generation() int { return s.generation }

// Completed reports whether the last scene has called done.
func (s *Sequencer) Completed() bool { return s.completed.Value() }

func (s *Sequencer) History() []Transition {
	return append([]Transition(nil), s.history...)
}

// Close disposes the active scene. The sequencer does nothing afterwards.
func (s *Sequencer) Close() error {
	return s.stop()
}
