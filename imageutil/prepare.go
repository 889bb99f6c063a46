package imageutil

import (
	"fmt"
	"image"

	"github.com/disintegration/gift"
)

// Tone holds optional adjustments applied to a source image before it is
// sampled. The zero value leaves the image untouched.
//
// Contrast, Brightness and Saturation are percentages in [-100, 100].
// Sharpen is the sigma of an unsharp mask; 0 disables it.
type Tone struct {
	Contrast   float32 `koanf:"contrast"`
	Brightness float32 `koanf:"brightness"`
	Saturation float32 `koanf:"saturation"`
	Sharpen    float32 `koanf:"sharpen"`
}

// IsZero reports whether t applies no adjustment.
func (t Tone) IsZero() bool {
	return t == Tone{}
}

// Validate reports the first adjustment outside its range.
func (t Tone) Validate() error {
	for _, adj := range []struct {
		name string
		v    float32
	}{
		{"contrast", t.Contrast},
		{"brightness", t.Brightness},
		{"saturation", t.Saturation},
	} {
		if adj.v < -100 || adj.v > 100 {
			return fmt.Errorf("%s must be in [-100, 100], got %g", adj.name, adj.v)
		}
	}
	if t.Sharpen < 0 {
		return fmt.Errorf("sharpen must not be negative, got %g", t.Sharpen)
	}
	return nil
}

func (t Tone) filters() []gift.Filter {
	var filters []gift.Filter
	if t.Contrast != 0 {
		filters = append(filters, gift.Contrast(t.Contrast))
	}
	if t.Brightness != 0 {
		filters = append(filters, gift.Brightness(t.Brightness))
	}
	if t.Saturation != 0 {
		filters = append(filters, gift.Saturation(t.Saturation))
	}
	if t.Sharpen > 0 {
		filters = append(filters, gift.UnsharpMask(t.Sharpen, 1, 0))
	}
	return filters
}

// ApplyTone returns a copy of img with the tone adjustments applied.
func ApplyTone(img *RGBAImage, t Tone) *RGBAImage {
	filters := t.filters()
	if len(filters) == 0 {
		return img.Clone()
	}

	g := gift.New(filters...)
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img.RGBA)
	return &RGBAImage{RGBA: dst}
}

// PrepareForMosaic turns a source image into the per-cell sample raster:
// tone adjustments first, then a resize to exactly width x height pixels,
// one pixel per output cell.
func PrepareForMosaic(img *RGBAImage, width, height int, t Tone, interp Interpolation) *RGBAImage {
	src := img
	if !t.IsZero() {
		src = ApplyTone(img, t)
	}
	return Resize(src, width, height, interp)
}
