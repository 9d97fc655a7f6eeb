package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLayers(t *testing.T) {
	layers := initLayers(numLayers)
	require.Len(t, layers, 25)
	for i, l := range layers {
		assert.NotNil(t, l, "layer %d", i)
		assert.Empty(t, l)
	}
	assert.Zero(t, layers.Count())
}

func TestLayerIndex(t *testing.T) {
	tests := []struct {
		selector, want int
	}{
		{1, 0},
		{7, 6},
		{25, 24},
		{0, 0},
		{-3, 0},
		{26, 24},
		{100, 24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, layerIndex(tt.selector), "selector %d", tt.selector)
	}
}

func TestLayersAppendReplacePop(t *testing.T) {
	layers := initLayers(numLayers)

	assert.Equal(t, 0, layers.Append(3, Shape{ID: "a"}))
	assert.Equal(t, 1, layers.Append(3, Shape{ID: "b"}))
	assert.Equal(t, 2, layers.Len(3))
	assert.Zero(t, layers.Len(4))
	assert.Zero(t, layers.Len(99))

	require.NoError(t, layers.Replace(3, 0, Shape{ID: "c"}))
	s, err := layers.At(3, 0)
	require.NoError(t, err)
	assert.Equal(t, "c", s.ID)

	err = layers.Replace(3, 2, Shape{})
	assert.True(t, errors.Is(err, ErrNoShape))
	_, err = layers.At(-1, 0)
	assert.True(t, errors.Is(err, ErrNoShape))

	s, ok := layers.Pop(3)
	require.True(t, ok)
	assert.Equal(t, "b", s.ID)
	s, ok = layers.Pop(3)
	require.True(t, ok)
	assert.Equal(t, "c", s.ID)
	_, ok = layers.Pop(3)
	assert.False(t, ok)
}

func TestLayersVisible(t *testing.T) {
	layers := initLayers(numLayers)
	layers.Append(0, Shape{ID: "a"})
	layers.Append(2, Shape{ID: "b"})
	layers.Append(2, Shape{ID: "c"})
	layers.Append(24, Shape{ID: "d"})

	ids := func(shapes []Shape) []string {
		var out []string
		for _, s := range shapes {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []string{"b", "c"}, ids(layers.Visible(2, false)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(layers.Visible(2, true)), "layer order, then draw order")
	assert.Empty(t, layers.Visible(5, false))
	assert.Nil(t, layers.Visible(30, false))

	visible := layers.Visible(2, false)
	visible[0].ID = "changed"
	s, err := layers.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "b", s.ID, "the projection is a copy")
	assert.Equal(t, 4, layers.Count())
}
