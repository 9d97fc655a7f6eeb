package main

import "math"

func midpoint(a, b float64) float64 {
	return (a + b) / 2
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// sign returns -1, 0 or 1.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment is the triangle-inequality degeneracy test: p is on the segment
// a-b when the detour through p is within tolerance of the direct distance.
func onSegment(p, a, b Point, tolerance float64) bool {
	d1 := distance(p.X, p.Y, a.X, a.Y)
	d2 := distance(p.X, p.Y, b.X, b.Y)
	d := distance(a.X, a.Y, b.X, b.Y)
	return math.Abs(d1+d2-d) <= tolerance
}

// containsPoint reports whether p hits shape s. Rectangles and squares test
// the box normalized from their anchors inclusively, ellipses and circles
// test the ellipse equation over the anchor box against a slack of 1.1,
// lines and pencil strokes use onSegment.
func containsPoint(s Shape, p Point) bool {
	switch s.Kind {
	case KindRectangle, KindSquare:
		return p.X >= math.Min(s.X1, s.X2) && p.X <= math.Max(s.X1, s.X2) &&
			p.Y >= math.Min(s.Y1, s.Y2) && p.Y <= math.Max(s.Y1, s.Y2)
	case KindEllipse, KindCircle:
		cx := math.Round(midpoint(s.X1, s.X2))
		cy := math.Round(midpoint(s.Y1, s.Y2))
		a := math.Abs(s.X2-s.X1) / 2
		b := math.Abs(s.Y2-s.Y1) / 2
		if a == 0 || b == 0 {
			return false
		}
		dx := (p.X - cx) / a
		dy := (p.Y - cy) / b
		return dx*dx+dy*dy <= ellipseSlack
	case KindLine:
		return onSegment(p, Point{s.X1, s.Y1}, Point{s.X2, s.Y2}, lineTolerance)
	case KindPencil:
		for _, pt := range s.Points {
			if distance(pt.X, pt.Y, p.X, p.Y) <= pencilTolerance {
				return true
			}
		}
		for i := 0; i < len(s.Points)-1; i++ {
			if onSegment(p, s.Points[i], s.Points[i+1], pencilTolerance) {
				return true
			}
		}
	}
	return false
}

func squareSide(x1, y1, x2, y2 float64) float64 {
	return math.Min(math.Abs(x2-x1), math.Abs(y2-y1))
}

// circleGeometry returns the center and diameter of the circle that hugs the
// drag-start corner.
func circleGeometry(x1, y1, x2, y2 float64) (cx, cy, d float64) {
	d = squareSide(x1, y1, x2, y2)
	cx = math.Round(x1 + d*sign(x2-x1)/2)
	cy = math.Round(y1 + d*sign(y2-y1)/2)
	return cx, cy, d
}
