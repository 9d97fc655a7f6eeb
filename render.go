package main

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Options are the style inputs a generator turns into paint: stroke is a
// 6-digit hex, fill an 8-digit hex (or empty), fillWeight the hatch width.
type Options struct {
	Stroke     string
	Fill       string
	FillWeight int
}

// Generator builds render descriptors from geometry. Descriptors are
// immutable once returned.
type Generator interface {
	Rectangle(x, y, w, h float64, opts Options) *Descriptor
	Ellipse(cx, cy, w, h float64, opts Options) *Descriptor
	Circle(cx, cy, d float64, opts Options) *Descriptor
	Line(x1, y1, x2, y2 float64, opts Options) *Descriptor
}

// Surface is anything a descriptor can be painted on.
type Surface interface {
	SetStrokeColor(c color.NRGBA)
	SetFillColor(c color.NRGBA)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()
	Fill()
}

type Verb int

const (
	VerbMove Verb = iota
	VerbLine
	VerbClose
)

type Op struct {
	Verb Verb
	X, Y float64
}

type OpSetType int

const (
	OpSetStroke OpSetType = iota
	OpSetFillSketch
)

type OpSet struct {
	Type  OpSetType
	Ops   []Op
	Color color.NRGBA
	Width float64
}

type Descriptor struct {
	Shape string
	Sets  []OpSet
}

// sketchGenerator produces hatch-filled outlines. Output is a pure function
// of the arguments.
type sketchGenerator struct {
	strokeWidth float64
}

func newSketchGenerator() *sketchGenerator {
	return &sketchGenerator{strokeWidth: 1}
}

func (g *sketchGenerator) Rectangle(x, y, w, h float64, opts Options) *Descriptor {
	poly := []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	return g.closedShape("rectangle", poly, opts)
}

func (g *sketchGenerator) Ellipse(cx, cy, w, h float64, opts Options) *Descriptor {
	return g.closedShape("ellipse", ellipsePolygon(cx, cy, math.Abs(w)/2, math.Abs(h)/2), opts)
}

func (g *sketchGenerator) Circle(cx, cy, d float64, opts Options) *Descriptor {
	r := math.Abs(d) / 2
	return g.closedShape("circle", ellipsePolygon(cx, cy, r, r), opts)
}

func (g *sketchGenerator) Line(x1, y1, x2, y2 float64, opts Options) *Descriptor {
	return &Descriptor{
		Shape: "line",
		Sets: []OpSet{{
			Type:  OpSetStroke,
			Ops:   []Op{{Verb: VerbMove, X: x1, Y: y1}, {Verb: VerbLine, X: x2, Y: y2}},
			Color: mustColor(opts.Stroke, color.NRGBA{A: 255}),
			Width: g.strokeWidth,
		}},
	}
}

func (g *sketchGenerator) closedShape(name string, poly []Point, opts Options) *Descriptor {
	d := &Descriptor{Shape: name}
	if opts.Fill != "" {
		weight := float64(clampInt(opts.FillWeight, minFillWeight, maxFillWeight))
		gap := math.Max(4, 4*weight)
		var ops []Op
		for _, seg := range hachureLines(poly, gap, hachureAngle) {
			ops = append(ops, Op{Verb: VerbMove, X: seg[0].X, Y: seg[0].Y}, Op{Verb: VerbLine, X: seg[1].X, Y: seg[1].Y})
		}
		if len(ops) > 0 {
			d.Sets = append(d.Sets, OpSet{
				Type:  OpSetFillSketch,
				Ops:   ops,
				Color: mustColor(opts.Fill, color.NRGBA{}),
				Width: weight,
			})
		}
	}
	d.Sets = append(d.Sets, OpSet{
		Type:  OpSetStroke,
		Ops:   polygonOps(poly),
		Color: mustColor(opts.Stroke, color.NRGBA{A: 255}),
		Width: g.strokeWidth,
	})
	return d
}

func polygonOps(poly []Point) []Op {
	ops := make([]Op, 0, len(poly)+1)
	for i, p := range poly {
		v := VerbLine
		if i == 0 {
			v = VerbMove
		}
		ops = append(ops, Op{Verb: v, X: p.X, Y: p.Y})
	}
	return append(ops, Op{Verb: VerbClose})
}

func ellipsePolygon(cx, cy, rx, ry float64) []Point {
	poly := make([]Point, ellipseSegments)
	for i := range poly {
		t := 2 * math.Pi * float64(i) / ellipseSegments
		poly[i] = Point{cx + rx*math.Cos(t), cy + ry*math.Sin(t)}
	}
	return poly
}

// hachureLines clips parallel lines, gap apart and tilted by angle degrees,
// against the polygon.
func hachureLines(poly []Point, gap, angle float64) [][2]Point {
	if len(poly) < 3 || gap <= 0 {
		return nil
	}
	sin, cos := math.Sincos(angle * math.Pi / 180)
	rotate := func(p Point, s float64) Point {
		return Point{p.X*cos - p.Y*s*sin, p.X*s*sin + p.Y*cos}
	}

	rotated := make([]Point, len(poly))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range poly {
		rotated[i] = rotate(p, -1)
		minY = math.Min(minY, rotated[i].Y)
		maxY = math.Max(maxY, rotated[i].Y)
	}

	var lines [][2]Point
	var xs []float64
	for y := minY + gap/2; y < maxY; y += gap {
		xs = xs[:0]
		for i := range rotated {
			a, b := rotated[i], rotated[(i+1)%len(rotated)]
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			lines = append(lines, [2]Point{rotate(Point{xs[i], y}, 1), rotate(Point{xs[i+1], y}, 1)})
		}
	}
	return lines
}

func drawDescriptor(s Surface, d *Descriptor) {
	if d == nil {
		return
	}
	for _, set := range d.Sets {
		if set.Color.A == 0 {
			continue
		}
		s.SetStrokeColor(set.Color)
		s.SetLineWidth(set.Width)
		for _, op := range set.Ops {
			switch op.Verb {
			case VerbMove:
				s.MoveTo(op.X, op.Y)
			case VerbLine:
				s.LineTo(op.X, op.Y)
			case VerbClose:
				s.ClosePath()
			}
		}
		s.Stroke()
	}
}

func paintShape(s Surface, shape Shape) {
	if shape.Kind != KindPencil {
		drawDescriptor(s, shape.Descriptor)
		return
	}
	outline := pencilOutline(shape.Points, pencilSize)
	if len(outline) == 0 {
		return
	}
	// Each polygon is filled on its own so overlapping caps never cancel
	// the body under a nonzero fill rule.
	s.SetFillColor(mustColor(shape.Style.BorderColor, color.NRGBA{A: 255}))
	for _, poly := range outline {
		for i, p := range poly {
			if i == 0 {
				s.MoveTo(p.X, p.Y)
			} else {
				s.LineTo(p.X, p.Y)
			}
		}
		s.ClosePath()
		s.Fill()
	}
}

func renderScene(s Surface, shapes []Shape) {
	for _, shape := range shapes {
		paintShape(s, shape)
	}
}

// pencilOutline converts a stroke into filled polygons: one body polygon
// offset by size/2 either side of the polyline, plus round caps at both ends.
func pencilOutline(points []Point, size float64) [][]Point {
	if len(points) == 0 {
		return nil
	}
	r := size / 2
	first, last := points[0], points[len(points)-1]
	caps := [][]Point{
		ellipsePolygon(first.X, first.Y, r, r),
	}
	if len(points) == 1 {
		return caps
	}
	caps = append(caps, ellipsePolygon(last.X, last.Y, r, r))

	left := make([]Point, 0, len(points))
	right := make([]Point, 0, len(points))
	for i, p := range points {
		var dx, dy float64
		switch {
		case i == 0:
			dx, dy = points[1].X-p.X, points[1].Y-p.Y
		case i == len(points)-1:
			dx, dy = p.X-points[i-1].X, p.Y-points[i-1].Y
		default:
			dx, dy = points[i+1].X-points[i-1].X, points[i+1].Y-points[i-1].Y
		}
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*r, dx/l*r
		left = append(left, Point{p.X + nx, p.Y + ny})
		right = append(right, Point{p.X - nx, p.Y - ny})
	}
	if len(left) == 0 {
		return caps[:1]
	}
	body := left
	for i := len(right) - 1; i >= 0; i-- {
		body = append(body, right[i])
	}
	return append([][]Point{body}, caps...)
}

// parseHexColor accepts #rrggbb and #rrggbbaa.
func parseHexColor(s string) (color.NRGBA, error) {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' || strings.Trim(s[1:], "0123456789abcdefABCDEF") != "" {
		return color.NRGBA{}, fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	c, err := colorful.Hex(s[:7])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	out := color.NRGBA{R: r, G: g, B: b, A: 255}
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		out.A = uint8(a)
	}
	return out, nil
}

func mustColor(s string, fallback color.NRGBA) color.NRGBA {
	c, err := parseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}
