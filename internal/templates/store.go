package templates

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	captionPattern = regexp.MustCompile(`^(\d+)-(.*)$`)
	filePattern    = regexp.MustCompile(`^template(\d+)\.png$`)
)

// Text colors: the default template and template1 carry dark artwork areas,
// every other template gets light text.
var (
	Dark  = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Light = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Store resolves template images from a directory of templateN.png files.
type Store struct {
	Dir     string
	Default string // filename of the fallback template inside Dir
}

func NewStore(dir, defaultName string) *Store {
	return &Store{Dir: dir, Default: defaultName}
}

func (s *Store) DefaultPath() string {
	return filepath.Join(s.Dir, s.Default)
}

// Resolve parses the request's free-form text into a template path and a
// caption. "N-caption" selects templateN.png, falling back to the default
// when that file is absent; text without the prefix selects the default
// template with the whole text as caption.
func (s *Store) Resolve(text string) (path, caption string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.DefaultPath(), ""
	}

	m := captionPattern.FindStringSubmatch(text)
	if m == nil {
		return s.DefaultPath(), text
	}

	name := fmt.Sprintf("template%s.png", m[1])
	path = filepath.Join(s.Dir, name)
	caption = strings.TrimSpace(m[2])
	if _, err := os.Stat(path); err != nil {
		logrus.Warnf("template %s not found, using default", name)
		return s.DefaultPath(), caption
	}
	return path, caption
}

// Available lists the templates present on disk, keyed the way the API
// exposes them ("default", "template1", ...).
func (s *Store) Available() map[string]string {
	out := map[string]string{}
	if _, err := os.Stat(s.DefaultPath()); err == nil {
		out["default"] = s.DefaultPath()
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return out
	}
	for _, e := range entries {
		if m := filePattern.FindStringSubmatch(e.Name()); m != nil {
			out["template"+m[1]] = filepath.Join(s.Dir, e.Name())
		}
	}
	return out
}

// TextColor picks the caption color associated with a template path.
func (s *Store) TextColor(path string) color.NRGBA {
	name := filepath.Base(path)
	if name == s.Default || name == "template1.png" {
		return Dark
	}
	return Light
}

// ColorName names a caption color for response bodies.
func ColorName(c color.NRGBA) string {
	if c == Dark {
		return "black"
	}
	return "white"
}
