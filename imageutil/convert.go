package imageutil

// LumaScale is the value Luma returns for pure white.
const LumaScale = 255000

// Luma returns the BT.601 luminance 299*R + 587*G + 114*B. The weights sum
// to 1000, so the result lies in [0, LumaScale] and is exact, which keeps
// brightness comparisons free of float rounding.
func (rgb RGB) Luma() int {
	return 299*int(rgb.R) + 587*int(rgb.G) + 114*int(rgb.B)
}

// Brightness returns the luminance normalized to [0, 1]. Pure white is
// exactly 1 and pure black exactly 0.
func (rgb RGB) Brightness() float64 {
	return float64(rgb.Luma()) / LumaScale
}
