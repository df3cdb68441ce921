package compositor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/youruser/phototemplate/internal/fonts"
)

// Bounding box the uploaded photo is fitted into, and the minimum width it
// is upscaled to afterwards.
const (
	maxUserWidth  = 613
	maxUserHeight = 401
	minUserWidth  = 650
)

const jpegQuality = 95

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Compositor merges an uploaded photo, a template, and an optional caption
// into a single output image.
type Compositor struct {
	Fonts *fonts.Provider
}

func New(f *fonts.Provider) *Compositor {
	return &Compositor{Fonts: f}
}

// Options for one composition.
type Options struct {
	Caption string
	Lang    fonts.Language
	Color   color.NRGBA
}

// Compose flattens and fits the user photo, centers it on a white canvas
// sized to the template, draws the template on top, then the caption.
// Output dimensions always equal the template's.
func (c *Compositor) Compose(template image.Image, user image.Image, opt Options) (image.Image, error) {
	tmpl := imaging.Clone(template)
	tw := tmpl.Bounds().Dx()
	th := tmpl.Bounds().Dy()

	fitted := fitUploaded(flatten(user), maxUserWidth, maxUserHeight, minUserWidth)

	canvas := imaging.New(tw, th, white)
	uw := fitted.Bounds().Dx()
	uh := fitted.Bounds().Dy()
	canvas = imaging.Paste(canvas, fitted, image.Pt((tw-uw)/2, (th-uh)/2))

	// An opaque template pasted at the origin hides the photo entirely;
	// templates are expected to carry a transparent window. Kept as-is
	// pending product clarification.
	if tmpl.Opaque() {
		canvas = imaging.Paste(canvas, tmpl, image.Pt(0, 0))
	} else {
		canvas = imaging.Overlay(canvas, tmpl, image.Pt(0, 0), 1.0)
	}

	if opt.Caption == "" {
		return canvas, nil
	}

	face, err := c.Fonts.Face(opt.Lang)
	if err != nil {
		return nil, fmt.Errorf("load caption font: %w", err)
	}
	return drawCaption(canvas, opt.Caption, face, opt.Color), nil
}

// WriteOutput encodes img as JPEG and writes it under dir with a unique
// timestamped name. The image is encoded in memory first, so an encode
// failure leaves no artifact behind.
func WriteOutput(dir string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	name := fmt.Sprintf("processed_%s_%s.jpg", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return path, nil
}

// flatten drops the alpha band like a plain RGB conversion: stored color
// channels are kept, transparency is discarded. A transparent pixel renders
// as its stored color, not as the canvas behind it.
func flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
