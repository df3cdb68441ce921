package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{name: "ascii", text: "Hello world", want: English},
		{name: "empty", text: "", want: English},
		{name: "malayalam", text: "നമസ്കാരം", want: Malayalam},
		{name: "mixed defaults to malayalam", text: "hello നമ", want: Malayalam},
		{name: "other non-latin stays english", text: "привет", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

// stub provider backed by the embedded Go font, no network
func newTestProvider(t *testing.T) (*Provider, *int) {
	t.Helper()
	calls := 0
	p := NewProvider(t.TempDir())
	p.Fetch = func(url string) ([]byte, error) {
		calls++
		return goregular.TTF, nil
	}
	return p, &calls
}

func TestEnsureDownloadsOnce(t *testing.T) {
	p, calls := newTestProvider(t)

	require.False(t, p.Available(English))
	require.NoError(t, p.Ensure(English))
	assert.True(t, p.Available(English))
	assert.Equal(t, 1, *calls)

	// cached on disk, no second fetch
	require.NoError(t, p.Ensure(English))
	assert.Equal(t, 1, *calls)
}

func TestEnsureFetchError(t *testing.T) {
	p := NewProvider(t.TempDir())
	p.Fetch = func(url string) ([]byte, error) {
		return nil, errors.New("network down")
	}
	err := p.Ensure(Malayalam)
	require.Error(t, err)
	assert.False(t, p.Available(Malayalam))
}

func TestFace(t *testing.T) {
	p, _ := newTestProvider(t)

	for _, lang := range []Language{English, Malayalam} {
		face, err := p.Face(lang)
		require.NoError(t, err)
		require.NotNil(t, face)
		assert.Positive(t, face.Metrics().Ascent.Ceil())
	}

	// both languages cached under distinct file names
	entries, err := os.ReadDir(p.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFaceParseError(t *testing.T) {
	p := NewProvider(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(p.Dir, "Inter-Bold.ttf"), []byte("not a font"), 0o644))

	_, err := p.Face(English)
	assert.Error(t, err)
}
