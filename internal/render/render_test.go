package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, maxW, maxH int
		wantW, wantH           int
	}{
		{"fills height", 100, 50, 400, 20, 40, 20},
		{"clamps to width", 400, 100, 40, 40, 40, 10},
		{"portrait", 30, 60, 100, 30, 15, 30},
		{"upscales small images", 2, 2, 10, 8, 8, 8},
		{"never collapses to zero", 1000, 1, 10, 10, 10, 1},
		{"empty viewport", 10, 10, 0, 10, 0, 0},
		{"empty image", 0, 10, 10, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Fit(tt.srcW, tt.srcH, tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestFrameDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 12), B: 80, A: 255})
		}
	}

	frame := Frame(img, 30, 10)

	// 10 rows of cells is 20 pixel rows; 40x20 scaled to height 20 would be
	// 40 wide, so the width clamp to 30 wins: 30x15 pixels, 8 cell rows
	assert.Equal(t, 30, lipgloss.Width(frame))
	assert.Equal(t, 8, lipgloss.Height(frame))
	assert.Equal(t, 30*8, strings.Count(frame, halfBlock))
}

func TestFrameEmptyViewport(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Empty(t, Frame(img, 0, 5))
}

func TestHexCompositesOverWhite(t *testing.T) {
	assert.Equal(t, "#ffffff", hex(color.RGBA{}))
	assert.Equal(t, "#ff0000", hex(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, "#ff7f7f", hex(color.RGBA{R: 128, A: 128}))
}

func TestFileDecodesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 8, 4))))
	require.NoError(t, f.Close())

	frame, pic, err := File(path, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, "png", pic.Format)
	assert.Equal(t, 8, pic.Width)
	assert.Equal(t, 4, pic.Height)
	assert.NotEmpty(t, frame)
}

func TestFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0644))

	_, _, err := File(path, 10, 10)
	assert.ErrorContains(t, err, "decode image")
}
