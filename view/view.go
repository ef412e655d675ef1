// Package view is the drawable tree scenes return and renderers consume.
//
// Properties are functions pulled at render time, so a renderer sees plain
// numbers and strings while scenes bind them to signals.
package view

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/delaneyj/signalscene/alien"
)

type (
	Float  func() float64
	String func() string
)

func F(v float64) Float { return func() float64 { return v } }
func S(v string) String { return func() string { return v } }

// FromSignal binds a property to a signal.
func FromSignal[T any](r alien.Readable[T]) func() T {
	return r.Value
}

// Sprintf formats a signal's value as text.
func Sprintf[T any](format string, r alien.Readable[T]) String {
	return func() string { return fmt.Sprintf(format, r.Value()) }
}

// Value reads p, treating a missing property as zero.
func (p Float) Value() float64 {
	if p == nil {
		return 0
	}
	return p()
}

func (p String) Value() string {
	if p == nil {
		return ""
	}
	return p()
}

type Node interface {
	isNode()
}

// List places nodes side by side without a transform.
type List []Node

// Group translates its children.
type Group struct {
	X, Y     Float
	Children []Node
}

type Circle struct {
	CX, CY, R Float
	Fill      String
	// OnClick, if set, is invoked when a pointer press lands inside the circle.
	OnClick func()
}

type Rect struct {
	X, Y, Width, Height Float
	Fill                String
}

type Text struct {
	X, Y    Float
	Fill    String
	Content String
}

// ClipPath restricts an Image to a rectangle.
type ClipPath struct {
	ID                  string
	X, Y, Width, Height Float
}

type Image struct {
	Href                string
	X, Y, Width, Height Float
	Clip                *ClipPath
	// Pixelated asks for nearest-neighbour scaling.
	Pixelated bool
}

// Dynamic produces its children anew on every render.
type Dynamic struct {
	Render func() []Node
}

func (List) isNode()      {}
func (*Group) isNode()    {}
func (*Circle) isNode()   {}
func (*Rect) isNode()     {}
func (*Text) isNode()     {}
func (*ClipPath) isNode() {}
func (*Image) isNode()    {}
func (*Dynamic) isNode()  {}

// Point is a position in view box units.
type Point struct {
	X, Y float64
}

// Walk visits every node depth first with the translation accumulated from
// enclosing groups. Returning false from fn skips the node's children.
func Walk(root Node, fn func(n Node, origin Point) bool) {
	walk(root, Point{}, fn)
}

func walk(n Node, origin Point, fn func(Node, Point) bool) {
	if n == nil {
		return
	}
	if !fn(n, origin) {
		return
	}
	switch n := n.(type) {
	case List:
		for _, c := range n {
			walk(c, origin, fn)
		}
	case *Group:
		inner := Point{X: origin.X + n.X.Value(), Y: origin.Y + n.Y.Value()}
		for _, c := range n.Children {
			walk(c, inner, fn)
		}
	case *Dynamic:
		if n.Render == nil {
			return
		}
		for _, c := range n.Render() {
			walk(c, origin, fn)
		}
	}
}

// RGB is a colour with channels in 0..255. Channels are not clamped or
// rounded, so scaled colours print fractional values.
type RGB struct {
	R, G, B float64
}

var (
	Black   = RGB{0, 0, 0}
	HotPink = RGB{255, 105, 180}
)

func (c RGB) String() string {
	return "rgb(" + channel(c.R) + ", " + channel(c.G) + ", " + channel(c.B) + ")"
}

func channel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Scale multiplies every channel by x.
func (c RGB) Scale(x float64) RGB {
	return RGB{c.R * x, c.G * x, c.B * x}
}

// ClipPathID derives a document-unique clip path identifier for the id-th
// clip path created under name.
func ClipPathID(name string, id int) string {
	h := xxhash.New()
	h.WriteString(name)
	h.WriteString("/")
	h.WriteString(strconv.Itoa(id))
	return "clip-" + strconv.FormatUint(h.Sum64(), 36)
}
