package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// renderImage paints shapes onto a white width x height raster. A non-empty
// label is written in the bottom-left corner.
func renderImage(shapes []Shape, width, height int, label string) (*gg.Context, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("render %dx%d: empty drawing surface", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	renderScene(newGGSurface(dc), shapes)

	if label != "" {
		ttfFont, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		face := truetype.NewFace(ttfFont, &truetype.Options{
			Size:    12,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetColor(color.NRGBA{R: 0x86, G: 0x8e, B: 0x96, A: 0xff})
		dc.DrawString(label, 8, float64(height)-8)
	}
	return dc, nil
}

func exportPNG(filename string, shapes []Shape, width, height int, label string) error {
	dc, err := renderImage(shapes, width, height, label)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// exportPDF writes shapes as vector paths on a single page the size of the
// canvas, one pixel per point.
func exportPDF(filename string, shapes []Shape, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("render %dx%d: empty drawing surface", width, height)
	}
	w, h := float64(width), float64(height)
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(0, 0, w, h, "F")

	renderScene(newPDFSurface(pdf), shapes)

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// copyExportPath puts the absolute path of an exported file on the system
// clipboard. Failure is logged only; the export itself already succeeded.
func copyExportPath(filename string) {
	path, err := filepath.Abs(filename)
	if err != nil {
		path = filename
	}
	if err := clipboard.WriteAll(path); err != nil {
		log.Printf("copy export path: %v", err)
	}
}
