package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/view"
)

func TestRGBString(t *testing.T) {
	assert.Equal(t, "rgb(255, 105, 180)", view.HotPink.String())
	assert.Equal(t, "rgb(127.5, 52.5, 90)", view.HotPink.Scale(0.5).String())
	assert.Equal(t, "rgb(0, 0, 0)", view.HotPink.Scale(0).String())
}

func TestClipPathID(t *testing.T) {
	a := view.ClipPathID("bomb", 0)
	assert.Equal(t, a, view.ClipPathID("bomb", 0))
	assert.NotEqual(t, a, view.ClipPathID("bomb", 1))
	assert.NotEqual(t, a, view.ClipPathID("pair", 0))
	assert.Regexp(t, `^clip-[0-9a-z]+$`, a)
}

func TestWalkAccumulatesTranslation(t *testing.T) {
	inner := &view.Circle{CX: view.F(1), CY: view.F(2), R: view.F(3)}
	root := view.List{
		&view.Group{
			X: view.F(-25),
			Children: []view.Node{
				&view.Group{Y: view.F(10), Children: []view.Node{inner}},
			},
		},
	}

	var origin view.Point
	count := 0
	view.Walk(root, func(n view.Node, o view.Point) bool {
		count++
		if n == inner {
			origin = o
		}
		return true
	})
	assert.Equal(t, 4, count)
	assert.Equal(t, view.Point{X: -25, Y: 10}, origin)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := &view.Group{Children: []view.Node{&view.Rect{}, &view.Rect{}}}
	count := 0
	view.Walk(root, func(view.Node, view.Point) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestDynamicRendersEveryWalk(t *testing.T) {
	rs := alien.CreateReactiveSystem(nil)
	n := alien.Signal(rs, 2)
	root := &view.Dynamic{Render: func() []view.Node {
		nodes := make([]view.Node, n.Value())
		for i := range nodes {
			nodes[i] = &view.Circle{}
		}
		return nodes
	}}

	circles := func() int {
		c := 0
		view.Walk(root, func(n view.Node, _ view.Point) bool {
			if _, ok := n.(*view.Circle); ok {
				c++
			}
			return true
		})
		return c
	}
	assert.Equal(t, 2, circles())
	n.SetValue(5)
	assert.Equal(t, 5, circles())
}

func TestSignalBinding(t *testing.T) {
	rs := alien.CreateReactiveSystem(nil)
	r := alien.Signal(rs, 1.5)
	p := view.Float(view.FromSignal[float64](r))
	txt := view.Sprintf("%.0fms", r)

	assert.Equal(t, 1.5, p.Value())
	r.SetValue(1234.4)
	assert.Equal(t, 1234.4, p.Value())
	assert.Equal(t, "1234ms", txt.Value())

	var missing view.Float
	assert.Zero(t, missing.Value())
}

func TestSprite(t *testing.T) {
	sheet := view.SpriteSheet{Href: "bomb.png", Width: 32 * 18, FrameWidth: 32, FrameHeight: 32}
	require.Equal(t, 18, sheet.Frames())

	frame := 3
	nodes := view.Sprite(sheet, view.F(-8), view.F(-8), view.F(16), view.F(16), func() int { return frame }, "clip-x")
	require.Len(t, nodes, 2)

	clip := nodes[0].(*view.ClipPath)
	img := nodes[1].(*view.Image)
	assert.Equal(t, "clip-x", clip.ID)
	assert.Same(t, clip, img.Clip)
	assert.Equal(t, -8.0-3*16, img.X.Value())
	assert.Equal(t, 18*16.0, img.Width.Value())

	frame = 0
	assert.Equal(t, -8.0, img.X.Value())
}
