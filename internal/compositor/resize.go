package compositor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// fitUploaded scales img to fit inside maxW x maxH preserving aspect ratio,
// then upscales to exactly minW wide when the fit leaves it narrower. Small
// uploads blur from upscaling rather than render tiny; accepted trade-off.
func fitUploaded(img image.Image, maxW, maxH, minW int) *image.NRGBA {
	b := img.Bounds()
	scale := math.Min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	out := imaging.Resize(img, w, h, imaging.Lanczos)

	if w < minW {
		up := float64(minW) / float64(w)
		out = imaging.Resize(out, minW, int(float64(h)*up), imaging.Lanczos)
	}
	return out
}
