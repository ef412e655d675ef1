package scenes

import (
	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/scene"
	"github.com/delaneyj/signalscene/timer"
	"github.com/delaneyj/signalscene/view"
)

// Stopwatch shows a running timer. Clicking the circle pauses and resumes
// it. It never finishes on its own.
func Stopwatch(rs *alien.ReactiveSystem) scene.Scene {
	return func(_ func(), local clock.Source) view.Node {
		t := timer.NewPausable(rs, local)
		fill := alien.Computed(rs, func(string) string {
			if t.Paused() {
				return "hotpink"
			}
			return "black"
		})

		return view.List{
			&view.Circle{
				CX:      view.F(0),
				CY:      view.F(0),
				R:       view.F(10),
				Fill:    view.FromSignal[string](fill),
				OnClick: t.Toggle,
			},
			&view.Text{
				X:       view.F(10),
				Y:       view.F(0),
				Fill:    view.S("black"),
				Content: view.Sprintf("%.0f", t.Signal()),
			},
		}
	}
}
