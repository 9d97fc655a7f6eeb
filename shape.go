package main

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jinzhu/copier"
)

var (
	ErrInvalidKind = errors.New("invalid shape kind")
	ErrNoShape     = errors.New("no such shape")
)

// createShape builds a shape of the given kind from two anchor points. The
// descriptor is regenerated from scratch on every call, so any geometry
// change must go through here rather than editing a shape's fields. Pencil
// shapes ignore x2, y2 and start as a single point.
func createShape(gen Generator, x1, y1, x2, y2 float64, kind Kind, layer int, style Style) (Shape, error) {
	if !kind.valid() {
		return Shape{}, fmt.Errorf("create %d: %w", kind, ErrInvalidKind)
	}
	if kind == KindPencil {
		return Shape{
			Kind:   KindPencil,
			Points: []Point{{X: x1, Y: y1}},
			Layer:  layer,
			Style:  Style{BorderColor: style.BorderColor},
		}, nil
	}

	s := Shape{
		Kind:  kind,
		X1:    x1,
		Y1:    y1,
		X2:    x2,
		Y2:    y2,
		Layer: layer,
		Style: style,
		Fill:  composeFill(style.FillColor, style.FillOpacity),
	}
	opts := Options{Stroke: style.BorderColor, Fill: s.Fill, FillWeight: style.FillWeight}

	switch kind {
	case KindRectangle:
		s.Descriptor = gen.Rectangle(x1, y1, x2-x1, y2-y1, opts)
	case KindSquare:
		side := squareSide(x1, y1, x2, y2)
		s.Descriptor = gen.Rectangle(x1, y1, sign(x2-x1)*side, sign(y2-y1)*side, opts)
	case KindEllipse:
		cx := math.Round(midpoint(x1, x2))
		cy := math.Round(midpoint(y1, y2))
		s.Descriptor = gen.Ellipse(cx, cy, x2-x1, y2-y1, opts)
	case KindCircle:
		cx, cy, d := circleGeometry(x1, y1, x2, y2)
		s.Descriptor = gen.Circle(cx, cy, d, opts)
	case KindLine:
		s.Fill = ""
		s.Descriptor = gen.Line(x1, y1, x2, y2, Options{Stroke: style.BorderColor})
	}
	return s, nil
}

// rebuild runs s through the factory again with new anchors and kind,
// keeping its identity, layer and style.
func (s Shape) rebuild(gen Generator, x1, y1, x2, y2 float64, kind Kind) (Shape, error) {
	out, err := createShape(gen, x1, y1, x2, y2, kind, s.Layer, s.Style)
	if err != nil {
		return Shape{}, err
	}
	out.ID = s.ID
	return out, nil
}

// composeFill appends the 2-digit opacity byte to a 6-digit fill color. An
// already composed #rrggbbaa is returned as is; anything else that does not
// parse as a color means no fill.
func composeFill(fillColor string, opacity int) string {
	if validHex(fillColor) {
		return fillColor + fmt.Sprintf("%02x", clampInt(opacity, 0, 255))
	}
	if len(fillColor) == 9 {
		if _, err := parseHexColor(fillColor); err == nil {
			return fillColor
		}
	}
	return ""
}

// opacityByte scales a 0-100 opacity from the toolbar to 0-255.
func opacityByte(percent int) int {
	return int(math.Round(float64(clampInt(percent, 0, maxOpacity)) * 255 / maxOpacity))
}

func clonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, 0, len(points))
	if err := copier.CopyWithOption(&out, points, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("clone points: %v", err)
		out = append(out[:0], points...)
	}
	return out
}

// withPoint returns a fresh point sequence with p appended; the input slice
// is never shared with the result.
func withPoint(points []Point, p Point) []Point {
	out := make([]Point, len(points), len(points)+1)
	copy(out, points)
	return append(out, p)
}

func translatePoints(points []Point, dx, dy float64) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
