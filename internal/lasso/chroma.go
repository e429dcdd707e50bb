package lasso

import (
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// chromaKeys is the tint cycle. Each segment fades from the previous key to
// the next one.
var chromaKeys = [...]color.RGBA{
	{R: 128, G: 255, B: 255, A: 255},
	{R: 128, G: 128, B: 255, A: 255},
	{R: 255, G: 128, B: 255, A: 255},
	{R: 255, G: 128, B: 128, A: 255},
	{R: 255, G: 255, B: 128, A: 255},
	{R: 128, G: 255, B: 128, A: 255},
}

// Chroma cycles the overlay colour through chromaKeys, spending Segment on
// each fade. It is a pure function of elapsed time.
type Chroma struct {
	Segment time.Duration
}

// Period is the length of one full cycle.
func (c Chroma) Period() time.Duration { return c.Segment * time.Duration(len(chromaKeys)) }

// At returns the colour after elapsed time. Alpha is always opaque; callers
// apply their own.
func (c Chroma) At(elapsed time.Duration) color.RGBA {
	n := len(chromaKeys)
	if c.Segment <= 0 {
		return chromaKeys[n-1]
	}
	if elapsed < 0 {
		elapsed = 0
	}
	elapsed %= c.Period()
	seg := int(elapsed / c.Segment)
	t := float64(elapsed%c.Segment) / float64(c.Segment)
	from := toColorful(chromaKeys[(seg+n-1)%n])
	to := toColorful(chromaKeys[seg])
	r, g, b := from.BlendRgb(to, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func toColorful(c color.RGBA) colorful.Color {
	cf, _ := colorful.MakeColor(c)
	return cf
}
