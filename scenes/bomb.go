package scenes

import (
	"math"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/easing"
	"github.com/delaneyj/signalscene/event"
	"github.com/delaneyj/signalscene/scene"
	"github.com/delaneyj/signalscene/ticker"
	"github.com/delaneyj/signalscene/view"
)

const (
	bombFrames    = 18
	bombExplodeAt = 9
	bombParticles = 99
)

var BombSheet = view.SpriteSheet{
	Href:        "bomb.png",
	Width:       32 * bombFrames,
	FrameWidth:  32,
	FrameHeight: 32,
}

// Bomb plays a sprite sheet fuse animation. When the explosion frame shows,
// a cloud of particles is scattered at random angles and distances; the
// scene finishes when the cloud has faded.
func Bomb(rs *alien.ReactiveSystem, rnd Rand) scene.Scene {
	activations := 0

	return func(done func(), local clock.Source) view.Node {
		clipID := view.ClipPathID("bomb", activations)
		activations++

		frame := must(ticker.TickIterate(rs, local, 100, 0, seq(bombFrames)))

		offset := alien.Signal(rs, 0.0)
		radius := alien.Signal(rs, 0.0)
		offsetEase := easing.Interpolate(easing.EaseInOutCubic, easing.Range{From: 0, To: 200}, easing.Range{From: 0, To: 1}, true)
		radiusEase := easing.Interpolate(easing.Linear, easing.Range{From: 150, To: 200}, easing.Range{From: 1, To: 0}, true)

		enlarge := event.New(rs, local)
		enlarge.After(func(t float64) {
			offset.SetValue(offsetEase(t))
			radius.SetValue(radiusEase(t))
			if t >= 200 {
				done()
			}
		})

		var particles []view.Point
		scattered := alien.Signal(rs, 0)

		explode := alien.Computed(rs, func(bool) bool {
			return frame.Value() == bombExplodeAt
		})
		event.FromTrigger(rs, explode, local).On(func(_ float64, n int) {
			particles = make([]view.Point, bombParticles)
			for i := range particles {
				angle := rnd.Float64() * 2 * math.Pi
				dist := rnd.Float64()*5 + 7
				particles[i] = view.Point{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}
			}
			scattered.SetValue(n)
			enlarge.Trigger()
		})

		cloud := &view.Dynamic{Render: func() []view.Node {
			scattered.Value()
			nodes := make([]view.Node, len(particles))
			for i, p := range particles {
				nodes[i] = &view.Circle{
					CX:   func() float64 { return p.X * offset.Value() },
					CY:   func() float64 { return p.Y * offset.Value() },
					R:    view.FromSignal[float64](radius),
					Fill: view.S("#00000022"),
				}
			}
			return nodes
		}}

		sprite := view.Sprite(BombSheet,
			view.F(-8), view.F(-8), view.F(16), view.F(16),
			frame.Value,
			clipID,
		)
		return view.List{sprite, cloud}
	}
}
