package main

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"
)

// ggSurface paints onto a raster gg context.
type ggSurface struct {
	dc     *gg.Context
	stroke color.NRGBA
	fill   color.NRGBA
}

func newGGSurface(dc *gg.Context) *ggSurface {
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	return &ggSurface{dc: dc}
}

func (s *ggSurface) SetStrokeColor(c color.NRGBA) { s.stroke = c }
func (s *ggSurface) SetFillColor(c color.NRGBA)   { s.fill = c }
func (s *ggSurface) SetLineWidth(w float64)       { s.dc.SetLineWidth(w) }
func (s *ggSurface) MoveTo(x, y float64)          { s.dc.MoveTo(x, y) }
func (s *ggSurface) LineTo(x, y float64)          { s.dc.LineTo(x, y) }
func (s *ggSurface) ClosePath()                   { s.dc.ClosePath() }

func (s *ggSurface) Stroke() {
	s.dc.SetColor(s.stroke)
	s.dc.Stroke()
}

func (s *ggSurface) Fill() {
	s.dc.SetColor(s.fill)
	s.dc.Fill()
}

// pdfSurface paints onto the current page of a gofpdf document, one canvas
// pixel per point.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	stroke color.NRGBA
	fill   color.NRGBA
}

func newPDFSurface(pdf *gofpdf.Fpdf) *pdfSurface {
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	return &pdfSurface{pdf: pdf}
}

func (s *pdfSurface) SetStrokeColor(c color.NRGBA) { s.stroke = c }
func (s *pdfSurface) SetFillColor(c color.NRGBA)   { s.fill = c }
func (s *pdfSurface) SetLineWidth(w float64)       { s.pdf.SetLineWidth(w) }
func (s *pdfSurface) MoveTo(x, y float64)          { s.pdf.MoveTo(x, y) }
func (s *pdfSurface) LineTo(x, y float64)          { s.pdf.LineTo(x, y) }
func (s *pdfSurface) ClosePath()                   { s.pdf.ClosePath() }

func (s *pdfSurface) Stroke() {
	s.pdf.SetDrawColor(int(s.stroke.R), int(s.stroke.G), int(s.stroke.B))
	s.pdf.SetAlpha(float64(s.stroke.A)/255, "Normal")
	s.pdf.DrawPath("D")
}

func (s *pdfSurface) Fill() {
	s.pdf.SetFillColor(int(s.fill.R), int(s.fill.G), int(s.fill.B))
	s.pdf.SetAlpha(float64(s.fill.A)/255, "Normal")
	s.pdf.DrawPath("F")
}
