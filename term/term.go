// Package term rasterises view trees onto a terminal with tcell.
//
// The -50..50 view box is stretched over the whole screen. Shapes cover the
// cells whose centres they contain. Clicks are hit-tested against the circles
// drawn last frame and forwarded to their OnClick.
package term

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/view"
)

const (
	viewMin  = -50.0
	viewSize = 100.0
)

var baseStyle = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)

type hit struct {
	cx, cy, r float64
	onClick   func()
}

type Renderer struct {
	screen        tcell.Screen
	width, height int

	// clickable circles from the last Draw, bottom first
	hits []hit
	// buttons held at the last mouse event
	buttons tcell.ButtonMask
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.width, r.height = screen.Size()
	return r
}

// toView maps the centre of a cell to view box coordinates.
func (r *Renderer) toView(col, row int) (float64, float64) {
	x := viewMin + (float64(col)+0.5)*viewSize/float64(r.width)
	y := viewMin + (float64(row)+0.5)*viewSize/float64(r.height)
	return x, y
}

// toCell maps a view box point to the cell containing it.
func (r *Renderer) toCell(x, y float64) (int, int) {
	col := int(math.Floor((x - viewMin) * float64(r.width) / viewSize))
	row := int(math.Floor((y - viewMin) * float64(r.height) / viewSize))
	return col, row
}

func (r *Renderer) Draw(root view.Node) {
	r.width, r.height = r.screen.Size()
	r.hits = r.hits[:0]
	r.screen.Fill(' ', baseStyle)

	view.Walk(root, func(n view.Node, o view.Point) bool {
		switch n := n.(type) {
		case *view.Circle:
			r.circle(n, o)
		case *view.Rect:
			r.fill(o.X+n.X.Value(), o.Y+n.Y.Value(), n.Width.Value(), n.Height.Value(), n.Fill.Value())
		case *view.Image:
			r.image(n, o)
		case *view.Text:
			r.text(n, o)
		}
		return true
	})
	r.screen.Show()
}

func (r *Renderer) circle(c *view.Circle, o view.Point) {
	cx, cy, rad := o.X+c.CX.Value(), o.Y+c.CY.Value(), c.R.Value()
	if c.OnClick != nil {
		r.hits = append(r.hits, hit{cx: cx, cy: cy, r: rad, onClick: c.OnClick})
	}
	if rad <= 0 {
		return
	}
	p, ok := parsePaint(c.Fill.Value())
	if !ok {
		return
	}

	c0, r0 := r.toCell(cx-rad, cy-rad)
	c1, r1 := r.toCell(cx+rad, cy+rad)
	drawn := false
	for row := max(0, r0); row <= min(r.height-1, r1); row++ {
		for col := max(0, c0); col <= min(r.width-1, c1); col++ {
			x, y := r.toView(col, row)
			if math.Hypot(x-cx, y-cy) <= rad {
				r.set(col, row, p)
				drawn = true
			}
		}
	}
	// too small to cover a cell centre
	if !drawn {
		col, row := r.toCell(cx, cy)
		r.set(col, row, p)
	}
}

func (r *Renderer) fill(x, y, w, h float64, fill string) {
	p, ok := parsePaint(fill)
	if !ok || w <= 0 || h <= 0 {
		return
	}
	c0, r0 := r.toCell(x, y)
	c1, r1 := r.toCell(x+w, y+h)
	for row := max(0, r0); row < min(r.height, r1); row++ {
		for col := max(0, c0); col < min(r.width, c1); col++ {
			r.set(col, row, p)
		}
	}
}

// image draws the visible area of a sprite as a shaded block.
func (r *Renderer) image(img *view.Image, o view.Point) {
	x, y, w, h := img.X.Value(), img.Y.Value(), img.Width.Value(), img.Height.Value()
	if clip := img.Clip; clip != nil {
		cx, cy := clip.X.Value(), clip.Y.Value()
		x1 := min(x+w, cx+clip.Width.Value())
		y1 := min(y+h, cy+clip.Height.Value())
		x, y = max(x, cx), max(y, cy)
		w, h = x1-x, y1-y
	}
	c0, r0 := r.toCell(o.X+x, o.Y+y)
	c1, r1 := r.toCell(o.X+x+w, o.Y+y+h)
	for row := max(0, r0); row < min(r.height, r1); row++ {
		for col := max(0, c0); col < min(r.width, c1); col++ {
			r.screen.SetContent(col, row, '▒', nil, baseStyle)
		}
	}
}

func (r *Renderer) text(t *view.Text, o view.Point) {
	p, ok := parsePaint(t.Fill.Value())
	if !ok {
		p = paint{color: tcell.ColorBlack}
	}
	col, row := r.toCell(o.X+t.X.Value(), o.Y+t.Y.Value())
	if row < 0 || row >= r.height {
		return
	}
	for _, ch := range t.Content.Value() {
		if col >= 0 && col < r.width {
			_, _, st, _ := r.screen.GetContent(col, row)
			_, bg, _ := st.Decompose()
			r.screen.SetContent(col, row, ch, nil, baseStyle.Background(bg).Foreground(p.color))
		}
		col++
	}
}

func (r *Renderer) set(col, row int, p paint) {
	if col < 0 || col >= r.width || row < 0 || row >= r.height {
		return
	}
	if p.translucent {
		r.screen.SetContent(col, row, '·', nil, baseStyle.Foreground(p.color))
		return
	}
	r.screen.SetContent(col, row, ' ', nil, baseStyle.Background(p.color))
}

// Click invokes the OnClick of the topmost circle under the cell, reporting
// whether one was found.
func (r *Renderer) Click(col, row int) bool {
	x, y := r.toView(col, row)
	// half a cell of slack keeps small targets clickable
	slack := max(viewSize/float64(r.width), viewSize/float64(r.height)) / 2
	for i := len(r.hits) - 1; i >= 0; i-- {
		h := r.hits[i]
		if math.Hypot(x-h.cx, y-h.cy) <= h.r+slack {
			h.onClick()
			return true
		}
	}
	return false
}

// HandleEvent applies a terminal event, reporting false when the user asked
// to quit.
func (r *Renderer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		}
	case *tcell.EventMouse:
		held := ev.Buttons()
		if held&tcell.Button1 != 0 && r.buttons&tcell.Button1 == 0 {
			r.Click(ev.Position())
		}
		r.buttons = held
	case *tcell.EventResize:
		r.screen.Sync()
		r.width, r.height = r.screen.Size()
	}
	return true
}

// Play drives clk from the wall clock and redraws root every frame until ctx
// is done or the user quits. Terminal events are applied at the start of the
// next frame, on the calling goroutine.
func (r *Renderer) Play(ctx context.Context, clk *clock.Clock, interval time.Duration, root func() view.Node) error {
	r.screen.EnableMouse()
	defer r.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := false
	r.Draw(root())
	err := clk.Run(ctx, interval, func() {
		if !r.drain(events) {
			quit = true
			cancel()
			return
		}
		r.Draw(root())
	})
	if quit {
		return nil
	}
	return err
}

// drain applies every pending event, reporting false on quit.
func (r *Renderer) drain(events <-chan tcell.Event) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok || !r.HandleEvent(ev) {
				return false
			}
		default:
			return true
		}
	}
}
