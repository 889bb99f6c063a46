package glyphmosaic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCIIGlyphRamp(t *testing.T) {
	tests := []struct {
		brightness float64
		want       byte
	}{
		{0, '@'},
		{0.05, '@'},
		{0.12, '%'},
		{0.5, '+'},
		{0.99, '.'},
		{1, ' '},
		{-0.5, '@'},
		{1.5, ' '},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(ASCIIGlyph(tt.brightness)), "brightness %v", tt.brightness)
	}
}

func TestASCIIGlyphMonotonic(t *testing.T) {
	prev := -1
	for i := 0; i <= 1000; i++ {
		b := float64(i) / 1000
		g := ASCIIGlyph(b)
		idx := strings.IndexByte(ASCIIRamp, g)
		require.GreaterOrEqual(t, idx, 0, "glyph %q is not in the ramp", g)
		require.GreaterOrEqual(t, idx, prev, "ramp went backwards at brightness %v", b)
		prev = idx
	}
}

func TestFamiliesTable(t *testing.T) {
	fams := Families()
	require.Len(t, fams, 9)

	names := make([]string, len(fams))
	for i, f := range fams {
		names[i] = f.Name
		for _, g := range f.Glyphs {
			assert.NotEmpty(t, g, "family %s", f.Name)
		}
	}
	assert.Equal(t,
		[]string{"red", "orange", "yellow", "green", "blue", "purple", "brown", "black", "white"},
		names)

	// Families returns a copy.
	fams[0].Name = "changed"
	assert.Equal(t, "red", Families()[0].Name)
}

func TestNearestFamily(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{R: 255, G: 0, B: 0}, "red"},
		{RGB{R: 250, G: 10, B: 5}, "red"},
		{RGB{R: 255, G: 170, B: 10}, "orange"},
		{RGB{R: 0, G: 120, B: 0}, "green"},
		{RGB{R: 10, G: 10, B: 240}, "blue"},
		{RGB{R: 0, G: 0, B: 0}, "black"},
		{RGB{R: 255, G: 255, B: 255}, "white"},
		{RGB{R: 240, G: 240, B: 240}, "white"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NearestFamily(tt.c).Name, "color %v", tt.c)
	}
}

func TestNearestFamilyTieGoesToFirst(t *testing.T) {
	// (0,64,0) is exactly as far from green as from black.
	c := RGB{R: 0, G: 64, B: 0}
	require.Equal(t, c.DistanceSq(RGB{R: 0, G: 128, B: 0}), c.DistanceSq(RGB{R: 0, G: 0, B: 0}))
	assert.Equal(t, "green", NearestFamily(c).Name)

	for _, f := range Families() {
		assert.Equal(t, f.Name, NearestFamily(f.Ref).Name)
	}
}

func TestEmojiGlyphDeterministic(t *testing.T) {
	colors := []RGB{{R: 255, G: 0, B: 0}, {R: 12, G: 200, B: 77}, {R: 128, G: 128, B: 128}, {R: 255, G: 255, B: 255}, {R: 0, G: 0, B: 0}}
	for _, c := range colors {
		first := EmojiGlyph(c)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, EmojiGlyph(c), "color %v", c)
		}
		f := NearestFamily(c)
		assert.Contains(t, f.Glyphs[:], first)
	}
}

func TestEmojiGlyphBrightnessRank(t *testing.T) {
	assert.Equal(t, "⬛", EmojiGlyph(RGB{R: 0, G: 0, B: 0}))
	assert.Equal(t, "📄", EmojiGlyph(RGB{R: 255, G: 255, B: 255}))
	// Pure red has brightness 0.299, index floor(0.299*4) = 1.
	assert.Equal(t, "🔴", EmojiGlyph(RGB{R: 255, G: 0, B: 0}))
}

func TestSelectGlyphModes(t *testing.T) {
	black := RGB{R: 0, G: 0, B: 0}
	white := RGB{R: 255, G: 255, B: 255}
	gray := RGB{R: 128, G: 128, B: 128}

	// Hybrid takes the emoji path at the extremes and ASCII in between.
	assert.Equal(t, EmojiGlyph(black), SelectGlyph(black, ModeHybrid))
	assert.Equal(t, EmojiGlyph(white), SelectGlyph(white, ModeHybrid))
	assert.Equal(t, string(ASCIIGlyph(gray.Brightness())), SelectGlyph(gray, ModeHybrid))
	assert.Contains(t, ASCIIRamp, SelectGlyph(gray, ModeHybrid))

	assert.Equal(t, "@", SelectGlyph(black, ModeASCII))
	assert.Equal(t, " ", SelectGlyph(white, ModeASCII))
	assert.Equal(t, EmojiGlyph(gray), SelectGlyph(gray, ModeEmoji))
}

func TestUsesEmojiThresholds(t *testing.T) {
	assert.True(t, UsesEmoji(RGB{R: 0, G: 0, B: 0}, ModeHybrid))
	assert.True(t, UsesEmoji(RGB{R: 255, G: 255, B: 255}, ModeHybrid))
	assert.False(t, UsesEmoji(RGB{R: 128, G: 128, B: 128}, ModeHybrid))
	assert.False(t, UsesEmoji(RGB{R: 0, G: 0, B: 0}, ModeASCII))
	assert.True(t, UsesEmoji(RGB{R: 128, G: 128, B: 128}, ModeEmoji))
}

func TestUsesEmojiThresholdsAreStrict(t *testing.T) {
	tests := []struct {
		c    RGB
		luma int
		want bool
	}{
		{RGB{R: 40, G: 254, B: 153}, 178500, false}, // exactly 0.7
		{RGB{R: 40, G: 254, B: 154}, 178614, true},
		{RGB{R: 5, G: 127, B: 4}, 76500, false}, // exactly 0.3
		{RGB{R: 5, G: 127, B: 3}, 76386, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.luma, tt.c.Luma(), "color %v", tt.c)
		assert.Equal(t, tt.want, UsesEmoji(tt.c, ModeHybrid), "color %v", tt.c)
		if !tt.want {
			assert.Contains(t, ASCIIRamp, SelectGlyph(tt.c, ModeHybrid), "color %v", tt.c)
		}
	}
	assert.Equal(t, HybridHigh, RGB{R: 40, G: 254, B: 153}.Brightness())
	assert.Equal(t, HybridLow, RGB{R: 5, G: 127, B: 4}.Brightness())
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeHybrid, ModeASCII, ModeEmoji} {
		got, err := ParseMode(strings.ToUpper(m.String()))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("sepia")
	assert.ErrorIs(t, err, ErrInvalidParameters)
}
