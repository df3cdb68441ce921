package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, files ...string) *Store {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("png"), 0o644))
	}
	return NewStore(dir, "template1.png")
}

func TestResolve(t *testing.T) {
	s := newTestStore(t, "template1.png", "template2.png")

	tests := []struct {
		name        string
		text        string
		wantPath    string
		wantCaption string
	}{
		{
			name:        "numbered prefix selects template",
			text:        "1-Hello",
			wantPath:    filepath.Join(s.Dir, "template1.png"),
			wantCaption: "Hello",
		},
		{
			name:        "second template",
			text:        "2-Amazing landscape view",
			wantPath:    filepath.Join(s.Dir, "template2.png"),
			wantCaption: "Amazing landscape view",
		},
		{
			name:        "no prefix uses default with full text",
			text:        "Hello",
			wantPath:    s.DefaultPath(),
			wantCaption: "Hello",
		},
		{
			name:        "missing template falls back keeping caption",
			text:        "99-Hello",
			wantPath:    s.DefaultPath(),
			wantCaption: "Hello",
		},
		{
			name:        "empty text",
			text:        "",
			wantPath:    s.DefaultPath(),
			wantCaption: "",
		},
		{
			name:        "whitespace only",
			text:        "   ",
			wantPath:    s.DefaultPath(),
			wantCaption: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, caption := s.Resolve(tt.text)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantCaption, caption)
		})
	}
}

func TestAvailable(t *testing.T) {
	s := newTestStore(t, "template1.png", "template2.png", "template10.png", "notes.txt")

	available := s.Available()
	assert.Len(t, available, 4) // default + three numbered
	assert.Contains(t, available, "default")
	assert.Contains(t, available, "template1")
	assert.Contains(t, available, "template2")
	assert.Contains(t, available, "template10")
}

func TestAvailableWithoutDefault(t *testing.T) {
	s := newTestStore(t, "template2.png")

	available := s.Available()
	assert.NotContains(t, available, "default")
	assert.Contains(t, available, "template2")
}

func TestTextColor(t *testing.T) {
	s := newTestStore(t, "template1.png", "template2.png")

	assert.Equal(t, Dark, s.TextColor(s.DefaultPath()))
	assert.Equal(t, Dark, s.TextColor(filepath.Join(s.Dir, "template1.png")))
	assert.Equal(t, Light, s.TextColor(filepath.Join(s.Dir, "template2.png")))
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "black", ColorName(Dark))
	assert.Equal(t, "white", ColorName(Light))
}
