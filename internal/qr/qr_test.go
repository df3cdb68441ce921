package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharePNG(t *testing.T) {
	b, err := SharePNG("http://localhost:8080/output/processed_20240101_000000_abcd1234.jpg", 400)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestSharePNGEmptyURL(t *testing.T) {
	_, err := SharePNG("", 400)
	assert.Error(t, err)
}
