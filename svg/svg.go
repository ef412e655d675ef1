// Package svg renders view trees as SVG documents.
package svg

//go:generate qtc -file=svg.qtpl

import (
	"github.com/delaneyj/signalscene/view"
)

// DefaultSize is the pixel width and height of rendered documents.
const DefaultSize = 512

func fill(s view.String) string {
	if v := s.Value(); v != "" {
		return v
	}
	return "black"
}

func render(d *view.Dynamic) []view.Node {
	if d.Render == nil {
		return nil
	}
	return d.Render()
}
