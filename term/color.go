package term

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// paint is a parsed fill. Translucent fills are drawn as dots instead of
// solid cells.
type paint struct {
	color       tcell.Color
	translucent bool
}

// parsePaint understands rgb(r, g, b), #rgb, #rrggbb, #rrggbbaa and the
// colour names tcell knows.
func parsePaint(s string) (paint, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "":
		return paint{color: tcell.ColorBlack}, true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return paint{}, false
		}
		var ch [3]int32
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return paint{}, false
			}
			ch[i] = int32(min(255, max(0, v+0.5)))
		}
		return paint{color: tcell.NewRGBColor(ch[0], ch[1], ch[2])}, true
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	}

	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return paint{}, false
	}
	return paint{color: c}, true
}

func parseHex(h string) (paint, bool) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	alpha := uint64(255)
	if len(h) == 8 {
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return paint{}, false
		}
		alpha, h = a, h[:6]
	}
	if len(h) != 6 {
		return paint{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return paint{}, false
	}
	return paint{
		color:       tcell.NewHexColor(int32(v)),
		translucent: alpha < 128,
	}, true
}
