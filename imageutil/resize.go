package imageutil

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationLanczos uses a three lobe Lanczos filter. It is the
	// default and gives the sharpest downscales.
	InterpolationLanczos Interpolation = iota

	// InterpolationArea uses Catmull-Rom, the closest equivalent to
	// OpenCV's INTER_AREA.
	InterpolationArea

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method. Resizing to the current size returns a copy
// with identical pixels.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	if width == img.Width() && height == img.Height() {
		return img.Clone()
	}

	if interp == InterpolationLanczos {
		out := resize.Resize(uint(width), uint(height), img.RGBA, resize.Lanczos3)
		if rgba, ok := out.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
			return &RGBAImage{RGBA: rgba}
		}
		return RGBAImageFromImage(out)
	}

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	dst := NewRGBAImage(width, height)
	scaler.Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ScaledHeight returns round(width * srcHeight / srcWidth), the row count
// that keeps the source aspect ratio at the given column count. The result
// is never below 1.
func ScaledHeight(width, srcWidth, srcHeight int) int {
	if srcWidth <= 0 {
		return width
	}
	h := (2*width*srcHeight + srcWidth) / (2 * srcWidth)
	return max(h, 1)
}
