package scenes

import (
	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/easing"
	"github.com/delaneyj/signalscene/event"
	"github.com/delaneyj/signalscene/scene"
	"github.com/delaneyj/signalscene/view"
)

const particleCount = 10

// Pulse grows a circle for a second, then shrinks and darkens it while a ring
// of particles flies out. The scene finishes once the circle has shrunk.
func Pulse(rs *alien.ReactiveSystem) scene.Scene {
	return func(done func(), local clock.Source) view.Node {
		var (
			started          = event.New(rs, local)
			expanded         = event.New(rs, local)
			particlesSpawned = event.New(rs, local)
			shrunk           = event.New(rs, local)
		)

		radius := alien.Signal(rs, 0.0)
		colour := alien.Signal(rs, view.HotPink)
		particleOffset := alien.Signal(rs, 0.0)
		particleRadius := alien.Signal(rs, 0.0)

		grow := easing.Interpolate(easing.EaseInOutCubic, easing.Range{From: 0, To: 1000}, easing.Range{From: 0, To: 10}, true)
		shrink := easing.Interpolate(easing.EaseInOutCubic, easing.Range{From: 0, To: 1000}, easing.Range{From: 10, To: 0}, true)
		fade := easing.Interpolate(easing.Logarithmic, easing.Range{From: 0, To: 200}, easing.Range{From: 1, To: 0}, true)

		started.After(func(t float64) {
			radius.SetValue(grow(t))
			if t >= 1000 {
				expanded.TriggerOnce()
				particlesSpawned.Trigger()
			}
		}, expanded)

		expanded.After(func(t float64) {
			radius.SetValue(shrink(t))
			if t >= 1000 {
				shrunk.TriggerOnce()
			}
		}, shrunk)

		expanded.After(func(t float64) {
			colour.SetValue(view.HotPink.Scale(fade(t)))
		}, shrunk)

		spray(particlesSpawned, particleOffset, particleRadius, shrunk)

		shrunk.On(func(float64, int) { done() })
		started.Trigger()

		return view.List{
			ring(particleCount, view.FromSignal[float64](particleOffset), view.FromSignal[float64](particleRadius), view.S("hotpink")),
			&view.Circle{
				CX:   view.F(0),
				CY:   view.F(0),
				R:    view.FromSignal[float64](radius),
				Fill: func() string { return colour.Value().String() },
			},
		}
	}
}

// spray animates a particle ring outwards once from fires, fading the
// particles out towards the end.
func spray(from *event.Event, offset, radius *alien.WriteableSignal[float64], suppressedBy ...*event.Event) {
	offsetEase := easing.Interpolate(easing.EaseOutCubic, easing.Range{From: 0, To: 500}, easing.Range{From: 8, To: 20}, true)
	radiusEase := easing.Interpolate(easing.Linear, easing.Range{From: 400, To: 500}, easing.Range{From: 2, To: 0}, true)

	from.After(func(t float64) {
		offset.SetValue(offsetEase(t))
		radius.SetValue(radiusEase(t))
	}, suppressedBy...)
}
