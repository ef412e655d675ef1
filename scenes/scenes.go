// Package scenes is a catalogue of demo scenes built on the animation
// primitives.
package scenes

import (
	"errors"
	"fmt"
	"math"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/easing"
	"github.com/delaneyj/signalscene/scene"
	"github.com/delaneyj/signalscene/view"
)

var ErrUnknownScene = errors.New("unknown scene")

// Rand supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type Factory func(rs *alien.ReactiveSystem, rnd Rand) scene.Scene

type entry struct {
	name    string
	factory Factory
}

var catalogue = []entry{
	{"pulse", func(rs *alien.ReactiveSystem, _ Rand) scene.Scene { return Pulse(rs) }},
	{"burst", func(rs *alien.ReactiveSystem, _ Rand) scene.Scene { return Burst(rs, 3) }},
	{"pair", func(rs *alien.ReactiveSystem, _ Rand) scene.Scene { return Pair(Pulse(rs), Burst(rs, 3)) }},
	{"counter", func(rs *alien.ReactiveSystem, _ Rand) scene.Scene { return Counter(rs) }},
	{"bomb", Bomb},
	{"stopwatch", func(rs *alien.ReactiveSystem, _ Rand) scene.Scene { return Stopwatch(rs) }},
}

// Names lists the catalogue in play order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, e := range catalogue {
		names[i] = e.name
	}
	return names
}

// Lookup builds the named scenes in the given order. With no names the whole
// catalogue is returned.
func Lookup(rs *alien.ReactiveSystem, rnd Rand, names ...string) ([]scene.Named, error) {
	if len(names) == 0 {
		names = Names()
	}
	out := make([]scene.Named, 0, len(names))
	for _, name := range names {
		f, ok := find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
		}
		out = append(out, scene.Named{Name: name, Scene: f(rs, rnd)})
	}
	return out, nil
}

func find(name string) (Factory, bool) {
	for _, e := range catalogue {
		if e.name == name {
			return e.factory, true
		}
	}
	return nil, false
}

// ring lays count circles out evenly on a circle of radius offset.
func ring(count int, offset, radius view.Float, fill view.String) view.List {
	angle := easing.Interpolate(easing.Linear,
		easing.Range{From: 0, To: float64(count)},
		easing.Range{From: 0, To: 2 * math.Pi},
		true,
	)
	nodes := make(view.List, count)
	for i := range count {
		a := angle(float64(i))
		cos, sin := math.Cos(a), math.Sin(a)
		nodes[i] = &view.Circle{
			CX:   func() float64 { return cos * offset.Value() },
			CY:   func() float64 { return sin * offset.Value() },
			R:    radius,
			Fill: fill,
		}
	}
	return nodes
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
