package main

import "fmt"

// Layers is the fixed set of drawing layers. Shapes are only ever appended,
// replaced in place or popped off the end.
type Layers [][]Shape

func initLayers(n int) Layers {
	layers := make(Layers, n)
	for i := range layers {
		layers[i] = []Shape{}
	}
	return layers
}

// layerIndex converts the 1-based layer selector value to a 0-based index,
// clamping anything out of range onto the first or last layer.
func layerIndex(selector int) int {
	return clampInt(selector-1, 0, numLayers-1)
}

func (l Layers) valid(layer int) bool {
	return layer >= 0 && layer < len(l)
}

func (l Layers) Len(layer int) int {
	if !l.valid(layer) {
		return 0
	}
	return len(l[layer])
}

func (l Layers) At(layer, index int) (Shape, error) {
	if !l.valid(layer) || index < 0 || index >= len(l[layer]) {
		return Shape{}, fmt.Errorf("layer %d index %d: %w", layer, index, ErrNoShape)
	}
	return l[layer][index], nil
}

// Append adds s to the end of layer and returns its index.
func (l Layers) Append(layer int, s Shape) int {
	l[layer] = append(l[layer], s)
	return len(l[layer]) - 1
}

func (l Layers) Replace(layer, index int, s Shape) error {
	if _, err := l.At(layer, index); err != nil {
		return err
	}
	l[layer][index] = s
	return nil
}

// Pop removes the last shape of layer. It reports false when the layer is
// already empty.
func (l Layers) Pop(layer int) (Shape, bool) {
	n := l.Len(layer)
	if n == 0 {
		return Shape{}, false
	}
	s := l[layer][n-1]
	l[layer][n-1] = Shape{}
	l[layer] = l[layer][:n-1]
	return s, true
}

// Visible is the render projection: every layer flattened in order when
// showAll is set, otherwise only the active one. The result is a copy.
func (l Layers) Visible(active int, showAll bool) []Shape {
	if !showAll {
		if !l.valid(active) {
			return nil
		}
		return append([]Shape(nil), l[active]...)
	}
	var out []Shape
	for _, layer := range l {
		out = append(out, layer...)
	}
	return out
}

func (l Layers) Count() int {
	n := 0
	for _, layer := range l {
		n += len(layer)
	}
	return n
}
