package view

// SpriteSheet is a horizontal strip of equally sized frames.
type SpriteSheet struct {
	Href        string
	Width       int // pixel width of the whole strip
	FrameWidth  int // pixel width of one frame
	FrameHeight int
}

func (s SpriteSheet) Frames() int {
	if s.FrameWidth == 0 {
		return 0
	}
	return s.Width / s.FrameWidth
}

// Sprite draws frame index of sheet at (x, y), scaled to w by h view box
// units. The sheet image is shifted left so the wanted frame lines up with
// a clip rectangle fixed at the sprite's location.
func Sprite(sheet SpriteSheet, x, y, w, h Float, index func() int, clipID string) List {
	clip := &ClipPath{ID: clipID, X: x, Y: y, Width: w, Height: h}
	img := &Image{
		Href: sheet.Href,
		X: func() float64 {
			return x.Value() - float64(index())*w.Value()
		},
		Y: y,
		Width: func() float64 {
			return float64(sheet.Width) * w.Value() / float64(sheet.FrameWidth)
		},
		Height:    h,
		Clip:      clip,
		Pixelated: true,
	}
	return List{clip, img}
}
