package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.help = true
		return m, nil
	}

	m.clearMessages()
	if m.handleTool(key) || m.handleLayer(key) || m.handleStyle(key) {
		return m, nil
	}
	switch key {
	case "u", "ctrl+z":
		if err := m.board.Undo(); err != nil {
			m.errorMessage = err.Error()
		}
	case "x":
		m.export(false)
	case "X":
		m.export(true)
	}
	return m, nil
}

func (m *model) handleTool(key string) bool {
	switch key {
	case "s":
		m.tool = ToolSelect
	case "p":
		m.tool = ToolPencil
	case "r":
		m.tool = ToolRectangle
	case "e":
		m.tool = ToolEllipse
	case "l":
		m.tool = ToolLine
	case "esc":
		m.tool = ToolNone
	default:
		return false
	}
	return true
}

func (m *model) handleLayer(key string) bool {
	switch key {
	case "[":
		m.layer--
	case "]":
		m.layer++
	case "a":
		m.showAllLayers = !m.showAllLayers
	default:
		return false
	}
	m.layer = layerIndex(m.layer) + 1
	return true
}

func (m *model) handleStyle(key string) bool {
	switch key {
	case "f":
		m.fillColor = m.cycleColor(m.fillColor, 1, true)
	case "F":
		m.fillColor = m.cycleColor(m.fillColor, -1, true)
	case "b":
		m.borderColor = m.cycleColor(m.borderColor, 1, false)
	case "B":
		m.borderColor = m.cycleColor(m.borderColor, -1, false)
	case "o":
		m.opacity = clampInt(m.opacity-10, 0, maxOpacity)
	case "O":
		m.opacity = clampInt(m.opacity+10, 0, maxOpacity)
	case "w":
		m.weight = clampInt(m.weight-1, minFillWeight, maxFillWeight)
	case "W":
		m.weight = clampInt(m.weight+1, minFillWeight, maxFillWeight)
	case "c":
		m.constrain = !m.constrain
	default:
		return false
	}
	return true
}

func (m *model) export(pdf bool) {
	ext := ".png"
	if pdf {
		ext = ".pdf"
	}
	width, height := m.canvasSize()
	filename, err := m.config.GetSavePath(m.config.ExportName + ext)
	if err != nil {
		log.Printf("export: %v", err)
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}

	if pdf {
		err = exportPDF(filename, m.visible(), width, height)
	} else {
		label := ""
		if m.config.ExportLabel {
			label = m.layerLabel()
		}
		err = exportPNG(filename, m.visible(), width, height, label)
	}
	if err != nil {
		log.Printf("export: %v", err)
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}

	log.Printf("exported %s", filename)
	m.successMessage = "Exported " + filename
	if m.config.CopyExportPath {
		copyExportPath(filename)
	}
}
