package main

import (
	"log"

	"github.com/google/uuid"
)

// Board owns the layered canvas and drives it from pointer gestures. It is
// not safe for concurrent use: gestures and undo are expected to arrive one
// at a time from a single event loop.
type Board struct {
	layers  Layers
	history []Entry
	gen     Generator

	action   Action
	layer    int // layer of the gesture in progress
	selected int // shape being drawn or moved, -1 when idle
	anchor   Point
}

func NewBoard(gen Generator) *Board {
	return &Board{
		layers:   initLayers(numLayers),
		gen:      gen,
		selected: -1,
	}
}

func (b *Board) Action() Action { return b.action }

// Selected returns the layer and index of the shape in the current gesture.
func (b *Board) Selected() (layer, index int, ok bool) {
	if b.selected < 0 {
		return 0, -1, false
	}
	return b.layer, b.selected, true
}

func (b *Board) Layers() Layers { return b.layers }

// Visible returns the shapes to render for the given 1-based layer selector.
func (b *Board) Visible(selector int, showAll bool) []Shape {
	return b.layers.Visible(layerIndex(selector), showAll)
}

// PointerDown starts a gesture. With a drawing tool a zero-size shape is
// created at p on the selected layer; with the select tool the topmost shape
// under p is picked up for moving. Either way exactly one undo entry is
// recorded. A press that hits nothing leaves the board idle.
func (b *Board) PointerDown(p Point, in Input) error {
	if b.action != ActionIdle {
		b.PointerUp()
	}
	layer := layerIndex(in.Layer)
	b.anchor = p

	if kind, ok := in.Tool.Kind(); ok {
		s, err := createShape(b.gen, p.X, p.Y, p.X, p.Y, kind, layer, in.Style)
		if err != nil {
			return err
		}
		s.ID = uuid.NewString()
		b.selected = b.layers.Append(layer, s)
		b.layer = layer
		b.action = ActionDrawing
		b.recordAction(EntryCreated, CreatedData{Layer: layer})
		log.Printf("draw %s %s on layer %d at (%.0f, %.0f)", kind, s.ID, layer+1, p.X, p.Y)
		return nil
	}

	if in.Tool != ToolSelect {
		return nil
	}
	index, ok := b.hitTest(layer, p)
	if !ok {
		return nil
	}
	s := b.layers[layer][index]
	b.recordAction(EntryModified, snapshot(layer, index, s))
	b.layer = layer
	b.selected = index
	b.action = ActionMoving
	log.Printf("select %s %s on layer %d", s.Kind, s.ID, layer+1)
	return nil
}

// hitTest returns the topmost (last drawn) shape of layer containing p.
func (b *Board) hitTest(layer int, p Point) (int, bool) {
	shapes := b.layers[layer]
	for i := len(shapes) - 1; i >= 0; i-- {
		if containsPoint(shapes[i], p) {
			return i, true
		}
	}
	return -1, false
}

// PointerMove feeds the pointer position into the current gesture. While
// drawing, pencil strokes grow by one point and other shapes are rebuilt
// with p as their second anchor, switching to square or circle while the
// modifier is held. While moving, the shape is translated by the distance
// from the previous pointer position.
func (b *Board) PointerMove(p Point, in Input) error {
	switch b.action {
	case ActionDrawing:
		return b.draw(p, in.Modifier)
	case ActionMoving:
		dx, dy := p.X-b.anchor.X, p.Y-b.anchor.Y
		b.anchor = p
		return b.move(dx, dy)
	}
	return nil
}

func (b *Board) draw(p Point, modifier bool) error {
	s, err := b.layers.At(b.layer, b.selected)
	if err != nil {
		return err
	}
	if s.Kind == KindPencil {
		s.Points = withPoint(s.Points, p)
	} else {
		s, err = s.rebuild(b.gen, s.X1, s.Y1, p.X, p.Y, s.Kind.constrained(modifier))
		if err != nil {
			return err
		}
	}
	return b.layers.Replace(b.layer, b.selected, s)
}

func (b *Board) move(dx, dy float64) error {
	s, err := b.layers.At(b.layer, b.selected)
	if err != nil {
		return err
	}
	if s.Kind == KindPencil {
		s.Points = translatePoints(s.Points, dx, dy)
	} else {
		s, err = s.rebuild(b.gen, s.X1+dx, s.Y1+dy, s.X2+dx, s.Y2+dy, s.Kind)
		if err != nil {
			return err
		}
	}
	return b.layers.Replace(b.layer, b.selected, s)
}

// PointerUp ends whatever gesture is in progress.
func (b *Board) PointerUp() {
	if b.action != ActionIdle {
		log.Printf("%s finished on layer %d", b.action, b.layer+1)
	}
	b.action = ActionIdle
	b.selected = -1
}
