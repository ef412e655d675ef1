package scenes

import (
	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/event"
	"github.com/delaneyj/signalscene/scene"
	"github.com/delaneyj/signalscene/view"
)

// Burst sprays a ring of particles every second. The event driving the
// spray re-triggers itself from its own callback. The scene finishes after
// repeats bursts have played out.
func Burst(rs *alien.ReactiveSystem, repeats int) scene.Scene {
	return func(done func(), local clock.Source) view.Node {
		spawned := event.New(rs, local)
		offset := alien.Signal(rs, 0.0)
		radius := alien.Signal(rs, 0.0)

		spray(spawned, offset, radius)
		spawned.After(func(t float64) {
			if t >= 1000 {
				spawned.Trigger()
			}
		})
		spawned.On(func(_ float64, n int) {
			if n > repeats {
				done()
			}
		})
		spawned.Trigger()

		return ring(particleCount, view.FromSignal[float64](offset), view.FromSignal[float64](radius), view.S("hotpink"))
	}
}

// Pair plays two scenes side by side on the same local clock. Whichever
// finishes first finishes the pair.
func Pair(left, right scene.Scene) scene.Scene {
	return func(done func(), local clock.Source) view.Node {
		return view.List{
			&view.Group{X: view.F(-25), Children: []view.Node{left(done, local)}},
			&view.Group{X: view.F(25), Children: []view.Node{right(done, local)}},
		}
	}
}
