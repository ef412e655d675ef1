package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestParsePaint(t *testing.T) {
	tests := []struct {
		in   string
		want paint
		ok   bool
	}{
		{"rgb(255, 105, 180)", paint{color: tcell.NewRGBColor(255, 105, 180)}, true},
		{"rgb(127.5, 52.5, 90)", paint{color: tcell.NewRGBColor(128, 53, 90)}, true},
		{"rgb(300, -4, 0)", paint{color: tcell.NewRGBColor(255, 0, 0)}, true},
		{"#555", paint{color: tcell.NewHexColor(0x555555)}, true},
		{"#ff69b4", paint{color: tcell.NewHexColor(0xff69b4)}, true},
		{"#00000022", paint{color: tcell.NewHexColor(0), translucent: true}, true},
		{"#000000ff", paint{color: tcell.NewHexColor(0)}, true},
		{"HotPink", paint{color: tcell.ColorHotPink}, true},
		{"", paint{color: tcell.ColorBlack}, true},
		{"rgb(1, 2)", paint{}, false},
		{"#12", paint{}, false},
		{"nope", paint{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parsePaint(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
