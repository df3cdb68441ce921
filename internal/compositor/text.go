package compositor

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Caption layout: lines wrap at a fixed pixel budget and start at a fixed
// offset from the top of the image.
const (
	captionWidth = 920
	captionTop   = 780
)

// wrapCaption greedily packs words into lines whose measured width stays
// within the budget. A single word wider than the budget is kept whole.
func wrapCaption(dc *gg.Context, text string) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if w, _ := dc.MeasureString(test); w <= captionWidth {
			current = test
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// drawCaption renders the wrapped caption onto img, each line centered
// horizontally. Lines advance by one line height from the fixed top offset
// with no lower bound, so very long captions run past the image bottom.
func drawCaption(img image.Image, text string, face font.Face, col color.NRGBA) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(face)
	dc.SetColor(col)

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineHeight := (m.Ascent + m.Descent).Ceil()

	width := img.Bounds().Dx()
	y := captionTop
	for _, line := range wrapCaption(dc, text) {
		if line != "" {
			lw, _ := dc.MeasureString(line)
			x := (width - int(lw)) / 2
			dc.DrawString(line, float64(x), float64(y+ascent))
		}
		y += lineHeight
	}
	return dc.Image()
}
