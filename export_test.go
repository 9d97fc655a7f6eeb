package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportShapes(t *testing.T) []Shape {
	t.Helper()
	gen := newSketchGenerator()
	rect, err := createShape(gen, 10, 10, 50, 30, KindRectangle, 0, Style{BorderColor: "#000000"})
	require.NoError(t, err)
	pencil := Shape{Kind: KindPencil, Points: []Point{{5, 40}, {20, 40}}, Style: Style{BorderColor: "#e03131"}}
	return []Shape{rect, pencil}
}

func isWhite(r, g, b uint32) bool {
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestExportPNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "drawing.png")
	require.NoError(t, exportPNG(filename, exportShapes(t), 64, 48, ""))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, filetype.Is(data, "png"))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	r, g, b, _ := img.At(30, 10).RGBA()
	assert.False(t, isWhite(r, g, b), "top edge of the rectangle is inked")
	r, g, b, _ = img.At(30, 20).RGBA()
	assert.True(t, isWhite(r, g, b), "unfilled rectangle shows the background")
	r, g, b, _ = img.At(12, 40).RGBA()
	assert.True(t, r > g && r > b, "pencil stroke keeps its color")
	r, g, b, _ = img.At(60, 2).RGBA()
	assert.True(t, isWhite(r, g, b))
}

func TestRenderImageLabel(t *testing.T) {
	dc, err := renderImage(nil, 120, 40, "layer 3")
	require.NoError(t, err)
	img := dc.Image()

	inked := 0
	for y := 20; y < 40; y++ {
		for x := 0; x < 80; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if !isWhite(r, g, b) {
				inked++
			}
		}
	}
	assert.Positive(t, inked, "label is drawn in the bottom-left corner")

	dc, err = renderImage(nil, 120, 40, "")
	require.NoError(t, err)
	r, g, b, _ := dc.Image().At(10, 32).RGBA()
	assert.True(t, isWhite(r, g, b))
}

func TestExportPDF(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "drawing.pdf")
	require.NoError(t, exportPDF(filename, exportShapes(t), 64, 48))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, filetype.Is(data, "pdf"))
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportEmptySurface(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, exportPNG(filepath.Join(dir, "a.png"), nil, 0, 10, ""))
	assert.Error(t, exportPDF(filepath.Join(dir, "a.pdf"), nil, 10, 0))
	assert.NoFileExists(t, filepath.Join(dir, "a.png"))
	assert.NoFileExists(t, filepath.Join(dir, "a.pdf"))
}
