package glyphmosaic

import (
	"github.com/wbrown/glyphmosaic/imageutil"
)

// RGB is the 8-bit color type used throughout the package.
type RGB = imageutil.RGB

// ASCIIRamp lists the density glyphs from darkest (densest) to lightest.
const ASCIIRamp = "@%#*+=-:. "

// Hybrid mode draws emoji for cells brighter than HybridHigh or darker than
// HybridLow and ASCII glyphs in between.
const (
	HybridLow  = 0.3
	HybridHigh = 0.7
)

// Family is a named reference hue with its emoji glyphs ordered from the
// glyph used for the darkest cells to the one used for the brightest.
type Family struct {
	Name   string
	Ref    RGB
	Glyphs [5]string
}

// families is ordered; the first family wins distance ties.
var families = [...]Family{
	{"red", RGB{R: 255, G: 0, B: 0}, [5]string{"🟥", "🔴", "❤️", "🍎", "🍓"}},
	{"orange", RGB{R: 255, G: 165, B: 0}, [5]string{"🟧", "🟠", "🧡", "🥕", "🍊"}},
	{"yellow", RGB{R: 255, G: 255, B: 0}, [5]string{"🟨", "🟡", "💛", "🌟", "🍋"}},
	{"green", RGB{R: 0, G: 128, B: 0}, [5]string{"🟩", "🟢", "💚", "🌳", "🥝"}},
	{"blue", RGB{R: 0, G: 0, B: 255}, [5]string{"🟦", "🔵", "💙", "🌊", "🦋"}},
	{"purple", RGB{R: 128, G: 0, B: 128}, [5]string{"🟪", "🟣", "💜", "🍇", "🔮"}},
	{"brown", RGB{R: 165, G: 42, B: 42}, [5]string{"🟫", "🟤", "🤎", "🪵", "🍫"}},
	{"black", RGB{R: 0, G: 0, B: 0}, [5]string{"⬛", "⚫", "🖤", "♠️", "📷"}},
	{"white", RGB{R: 255, G: 255, B: 255}, [5]string{"⬜", "⚪", "🤍", "☁️", "📄"}},
}

// Families returns a copy of the color family table in declaration order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families[:])
	return out
}

// rampIndex maps a brightness in [0, 1] onto floor(b * (n-1)), clamped to
// a valid index of a list of length n.
func rampIndex(b float64, n int) int {
	idx := int(b * float64(n-1))
	return max(0, min(idx, n-1))
}

// ASCIIGlyph returns the ramp character for a brightness in [0, 1].
func ASCIIGlyph(brightness float64) byte {
	return ASCIIRamp[rampIndex(brightness, len(ASCIIRamp))]
}

// NearestFamily returns the family whose reference color is closest to c.
func NearestFamily(c RGB) Family {
	best := 0
	bestDist := c.DistanceSq(families[0].Ref)
	for i := 1; i < len(families); i++ {
		if d := c.DistanceSq(families[i].Ref); d < bestDist {
			best, bestDist = i, d
		}
	}
	return families[best]
}

// EmojiGlyph picks the nearest family for c and the family glyph for the
// brightness of c.
func EmojiGlyph(c RGB) string {
	f := NearestFamily(c)
	return f.Glyphs[rampIndex(c.Brightness(), len(f.Glyphs))]
}

// UsesEmoji reports whether mode draws an emoji for a cell of color c.
func UsesEmoji(c RGB, mode Mode) bool {
	switch mode {
	case ModeEmoji:
		return true
	case ModeASCII:
		return false
	}
	b := c.Brightness()
	return b > HybridHigh || b < HybridLow
}

// SelectGlyph returns the glyph drawn for a cell of color c in the given
// mode. It is pure: equal inputs always give equal glyphs.
func SelectGlyph(c RGB, mode Mode) string {
	if UsesEmoji(c, mode) {
		return EmojiGlyph(c)
	}
	return string(ASCIIGlyph(c.Brightness()))
}
