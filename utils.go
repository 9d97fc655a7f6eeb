package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) canvasRows() int {
	rows := m.height - toolbarHeight - statusHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// canvasSize is the drawing surface in canvas pixels.
func (m model) canvasSize() (int, int) {
	width := m.width
	if width < 1 {
		width = 1
	}
	return width * m.config.CellWidth, m.canvasRows() * m.config.CellHeight
}

// canvasPoint converts a terminal cell to canvas coordinates at the center
// of the cell. ok is false when the cell is outside the canvas area.
func (m model) canvasPoint(x, y int) (Point, bool) {
	cy := y - toolbarHeight
	p := Point{
		X: float64(x*m.config.CellWidth + m.config.CellWidth/2),
		Y: float64(cy*m.config.CellHeight + m.config.CellHeight/2),
	}
	ok := x >= 0 && cy >= 0 && cy < m.canvasRows()
	return p, ok
}

func (m model) style() Style {
	return Style{
		BorderColor: m.borderColor,
		FillColor:   m.fillColor,
		FillOpacity: opacityByte(m.opacity),
		FillWeight:  m.weight,
	}
}

func (m model) input(shift bool) Input {
	return Input{
		Tool:     m.tool,
		Layer:    m.layer,
		Style:    m.style(),
		Modifier: shift || m.constrain,
	}
}

func (m model) visible() []Shape {
	return m.board.Visible(m.layer, m.showAllLayers)
}

func (m model) layerLabel() string {
	if m.showAllLayers {
		return "all layers"
	}
	return fmt.Sprintf("layer %d", m.layer)
}

// cycleColor steps through the palette from current. With allowNone the
// empty color (no fill) sits between the last and first palette entries.
func (m model) cycleColor(current string, step int, allowNone bool) string {
	options := m.config.Palette
	if allowNone {
		options = append([]string{""}, options...)
	}
	if len(options) == 0 {
		return current
	}
	index := -1
	for i, c := range options {
		if c == current {
			index = i
			break
		}
	}
	if index < 0 {
		if step > 0 {
			return options[0]
		}
		return options[len(options)-1]
	}
	return options[(index+step+len(options))%len(options)]
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
