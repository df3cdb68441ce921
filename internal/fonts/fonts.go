package fonts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/youruser/phototemplate/internal/util"
)

// Language tag attached to a caption after script detection.
type Language string

const (
	English   Language = "en"
	Malayalam Language = "ml"
)

// Detect returns Malayalam when the text contains a rune in the Malayalam
// Unicode block (U+0D00..U+0D7F), English otherwise.
func Detect(text string) Language {
	for _, r := range text {
		if r >= 0x0D00 && r <= 0x0D7F {
			return Malayalam
		}
	}
	return English
}

// CaptionSize is the point size every caption is rendered at.
const CaptionSize = 40

const (
	englishFontFile   = "Inter-Bold.ttf"
	malayalamFontFile = "Manjari-Bold.ttf"

	englishFontURL   = "https://github.com/rsms/inter/raw/master/docs/font-files/Inter-Bold.ttf"
	malayalamFontURL = "https://github.com/google/fonts/raw/main/ofl/manjari/Manjari-Bold.ttf"
)

// Provider hands out caption font faces by language, fetching the underlying
// font files into Dir on first use. Concurrent first uses may both download;
// last write wins, which is tolerated rather than locked.
type Provider struct {
	Dir   string
	Size  float64
	Fetch func(url string) ([]byte, error)
}

func NewProvider(dir string) *Provider {
	return &Provider{Dir: dir, Size: CaptionSize, Fetch: util.GetBytes}
}

func (p *Provider) path(lang Language) string {
	if lang == Malayalam {
		return filepath.Join(p.Dir, malayalamFontFile)
	}
	return filepath.Join(p.Dir, englishFontFile)
}

func (p *Provider) url(lang Language) string {
	if lang == Malayalam {
		return malayalamFontURL
	}
	return englishFontURL
}

// Available reports whether the font file for lang is already on disk.
func (p *Provider) Available(lang Language) bool {
	_, err := os.Stat(p.path(lang))
	return err == nil
}

// Ensure downloads the font file for lang if it is not already present.
func (p *Provider) Ensure(lang Language) error {
	if p.Available(lang) {
		return nil
	}
	b, err := p.Fetch(p.url(lang))
	if err != nil {
		return fmt.Errorf("download %s font: %w", lang, err)
	}
	if err := os.WriteFile(p.path(lang), b, 0o644); err != nil {
		return fmt.Errorf("write %s font: %w", lang, err)
	}
	return nil
}

// Face loads the font for lang, fetching it first if needed, and returns a
// face at the caption size.
func (p *Provider) Face(lang Language) (font.Face, error) {
	if err := p.Ensure(lang); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p.path(lang))
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s font: %w", lang, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: p.Size}), nil
}
