package scenes

import (
	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/scene"
	"github.com/delaneyj/signalscene/ticker"
	"github.com/delaneyj/signalscene/view"
)

const counterDots = 6

// Counter lights a row of dots one per second after a one second delay and
// finishes when the last dot lights.
func Counter(rs *alien.ReactiveSystem) scene.Scene {
	return func(done func(), local clock.Source) view.Node {
		lit := must(ticker.TickIterate(rs, local, 1000, 1000, seq(counterDots)))

		alien.Effect(rs, func() error {
			if lit.Value() == counterDots-1 {
				done()
			}
			return nil
		})

		dots := make(view.List, counterDots)
		for i := range counterDots {
			fill := alien.Computed(rs, func(string) string {
				if i <= lit.Value() {
					return "#000"
				}
				return "#555"
			})
			dots[i] = &view.Circle{
				CX:   view.F(float64(i)*5 - 12.5),
				CY:   view.F(0),
				R:    view.F(2),
				Fill: view.FromSignal[string](fill),
			}
		}
		return dots
	}
}
