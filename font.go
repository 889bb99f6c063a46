package glyphmosaic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/adrg/xdg"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font/gofont/gomono"
)

// FallbackFontName names the embedded face used when no candidate loads.
const FallbackFontName = "Go Mono"

// DefaultFontCandidates are tried in order by ResolveFont when the caller
// has no preference.
var DefaultFontCandidates = []string{
	"Courier New",
	"Consolas",
	"Liberation Mono",
	"DejaVu Sans Mono",
	"NotoEmoji-Regular.ttf",
	"seguiemj.ttf",
}

// FontResult is the outcome of resolving a font.
type FontResult struct {
	Font *truetype.Font
	// Name is the candidate that loaded, or FallbackFontName.
	Name string
	// Path is the file the font was read from; empty for the fallback.
	Path     string
	Fallback bool
	// Warning wraps ErrFontUnavailable when Fallback is set.
	Warning error
	// Missing lists the glyph runes the font has no outline for. They are
	// drawn as the font's missing-glyph box.
	Missing []rune
}

// DefaultFontDirs returns the platform font directories. The working
// directory is not searched; a candidate relative to it is found as a path.
func DefaultFontDirs() []string {
	return append([]string(nil), xdg.FontDirs...)
}

// ResolveFont loads the first candidate that parses. A candidate is either
// a path to a TrueType file or a font name matched against the file names
// found under dirs, ignoring case, spaces, dashes, underscores, the
// extension and a trailing "regular". When nothing loads, the embedded Go
// Mono face is returned with a warning. ResolveFont never fails.
func ResolveFont(candidates, dirs []string) FontResult {
	var index map[string]string
	var errs []error

	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		path := cand
		if _, err := os.Stat(cand); err != nil {
			if index == nil {
				index = indexFontDirs(dirs)
			}
			p, ok := index[normalizeFontName(cand)]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: not found", cand))
				continue
			}
			path = p
		}

		f, err := loadFont(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cand, err))
			continue
		}
		return FontResult{Font: f, Name: cand, Path: path, Missing: missingGlyphs(f)}
	}

	f := fallbackFont()
	warning := fmt.Errorf("%w: using %s", ErrFontUnavailable, FallbackFontName)
	if len(errs) > 0 {
		warning = fmt.Errorf("%w: using %s: %w", ErrFontUnavailable, FallbackFontName, errors.Join(errs...))
	}
	return FontResult{
		Font:     f,
		Name:     FallbackFontName,
		Fallback: true,
		Warning:  warning,
		Missing:  missingGlyphs(f),
	}
}

// loadFont loads a TrueType font from file
func loadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return freetype.ParseFont(fontBytes)
}

func fallbackFont() *truetype.Font {
	f, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		// The embedded font is part of x/image and always parses.
		panic(fmt.Sprintf("glyphmosaic: parse embedded font: %v", err))
	}
	return f
}

// indexFontDirs maps normalized file names to paths for every .ttf file
// under dirs. The first path seen for a name wins.
func indexFontDirs(dirs []string) map[string]string {
	index := make(map[string]string)
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".ttf") {
				return nil
			}
			name := normalizeFontName(d.Name())
			if _, ok := index[name]; !ok {
				index[name] = path
			}
			return nil
		})
	}
	return index
}

func normalizeFontName(name string) string {
	name = filepath.Base(name)
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".ttf") {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ToLower(name)
	name = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
	return strings.TrimSuffix(name, "regular")
}

// glyphRunes returns the runes that are drawn for glyph: the runes of its
// first grapheme cluster without variation selectors or joiners.
func glyphRunes(glyph string) []rune {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(glyph, -1)
	var out []rune
	for _, r := range cluster {
		if unicode.Is(unicode.Variation_Selector, r) || r == '\u200d' {
			continue
		}
		out = append(out, r)
	}
	return out
}

// missingGlyphs reports which runes of the ASCII ramp and the emoji table
// have no glyph in f.
func missingGlyphs(f *truetype.Font) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	check := func(r rune) {
		if seen[r] {
			return
		}
		seen[r] = true
		if f.Index(r) == 0 {
			missing = append(missing, r)
		}
	}

	for _, r := range ASCIIRamp {
		if r != ' ' {
			check(r)
		}
	}
	for _, fam := range families {
		for _, g := range fam.Glyphs {
			for _, r := range glyphRunes(g) {
				check(r)
			}
		}
	}
	return missing
}
