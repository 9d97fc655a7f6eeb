package main

import (
	"fmt"
	"log"
)

func (b *Board) recordAction(entryType EntryType, inverse interface{}) {
	b.history = append(b.history, Entry{
		Type:    entryType,
		Inverse: inverse,
	})
}

func snapshot(layer, index int, s Shape) ModifiedData {
	return ModifiedData{
		Layer:  layer,
		Index:  index,
		Kind:   s.Kind,
		X1:     s.X1,
		Y1:     s.Y1,
		X2:     s.X2,
		Y2:     s.Y2,
		Points: clonePoints(s.Points),
	}
}

// HistoryLen reports how many operations can still be undone.
func (b *Board) HistoryLen() int { return len(b.history) }

// Undo reverts the most recent creation or modification. It ends any gesture
// in progress first and is a no-op on an empty history. Only geometry is
// restored; a shape's style stays as it is now.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return nil
	}
	b.PointerUp()

	lastIndex := len(b.history) - 1
	entry := b.history[lastIndex]
	b.history[lastIndex] = Entry{}
	b.history = b.history[:lastIndex]

	switch entry.Type {
	case EntryCreated:
		data := entry.Inverse.(CreatedData)
		s, ok := b.layers.Pop(data.Layer)
		if !ok {
			return fmt.Errorf("undo create on layer %d: %w", data.Layer, ErrNoShape)
		}
		log.Printf("undo: removed %s %s from layer %d", s.Kind, s.ID, data.Layer+1)
	case EntryModified:
		data := entry.Inverse.(ModifiedData)
		s, err := b.layers.At(data.Layer, data.Index)
		if err != nil {
			return fmt.Errorf("undo modify: %w", err)
		}
		if s.Kind == KindPencil {
			s.Points = clonePoints(data.Points)
		} else {
			s, err = s.rebuild(b.gen, data.X1, data.Y1, data.X2, data.Y2, data.Kind)
			if err != nil {
				return fmt.Errorf("undo modify: %w", err)
			}
		}
		if err := b.layers.Replace(data.Layer, data.Index, s); err != nil {
			return fmt.Errorf("undo modify: %w", err)
		}
		log.Printf("undo: restored %s %s on layer %d", s.Kind, s.ID, data.Layer+1)
	}
	return nil
}
