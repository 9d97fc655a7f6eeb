package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rows above the canvas (toolbar) and below it (status line).
const (
	toolbarHeight = 1
	statusHeight  = 1
)

func main() {
	if os.Getenv("SKETCHBOARD_DEBUG") != "" {
		f, err := tea.LogToFile("sketchboard.log", "sketchboard")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	config, err := loadConfig()
	m := initialModel(config)
	if err != nil {
		log.Printf("config: %v", err)
		m.errorMessage = err.Error()
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type model struct {
	width          int
	height         int
	board          *Board
	config         *Config
	tool           Tool
	layer          int // 1-based, as shown in the toolbar
	showAllLayers  bool
	borderColor    string
	fillColor      string
	opacity        int // 0-100
	weight         int
	constrain      bool
	help           bool
	errorMessage   string
	successMessage string
}

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	return model{
		board:       NewBoard(newSketchGenerator()),
		config:      config,
		tool:        ToolNone,
		layer:       1,
		borderColor: config.BorderColor,
		fillColor:   config.FillColor,
		opacity:     config.FillOpacity,
		weight:      config.FillWeight,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		p, ok := m.canvasPoint(msg.X, msg.Y)
		if !ok {
			return m
		}
		m.clearMessages()
		if err := m.board.PointerDown(p, m.input(msg.Shift)); err != nil {
			m.errorMessage = err.Error()
		}
	case tea.MouseActionMotion:
		if m.board.Action() == ActionIdle {
			return m
		}
		p, _ := m.canvasPoint(msg.X, msg.Y)
		if err := m.board.PointerMove(p, m.input(msg.Shift)); err != nil {
			m.errorMessage = err.Error()
		}
	case tea.MouseActionRelease:
		m.board.PointerUp()
	}
	return m
}

var (
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Background(lipgloss.Color("#243141"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#868E96"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E03131"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2F9E44"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = 1
	}
	rows := m.canvasRows()

	var result strings.Builder
	result.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(m.toolbar()))
	result.WriteString("\n")

	preview := renderPreview(m.visible(), width, rows, m.config.CellWidth, m.config.CellHeight)
	for _, line := range preview {
		result.WriteString(line)
		result.WriteString("\n")
	}

	result.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(m.statusLine()))
	return result.String()
}

func (m model) toolbar() string {
	scope := "current"
	if m.showAllLayers {
		scope = "all"
	}
	fill := "none"
	if m.fillColor != "" {
		fill = swatch(m.fillColor) + " " + m.fillColor
	}
	constrain := "off"
	if m.constrain {
		constrain = "on"
	}
	parts := []string{
		activeStyle.Render(m.tool.String()),
		fmt.Sprintf("layer %d/%d (%s)", m.layer, numLayers, scope),
		"border " + swatch(m.borderColor) + " " + m.borderColor,
		"fill " + fill,
		fmt.Sprintf("opacity %d%%", m.opacity),
		fmt.Sprintf("weight %d", m.weight),
		"constrain " + constrain,
	}
	return barStyle.Render(" " + strings.Join(parts, " │ ") + " ")
}

func (m model) statusLine() string {
	switch {
	case m.errorMessage != "":
		return errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		return successStyle.Render(m.successMessage)
	}
	return dimStyle.Render(fmt.Sprintf("%s │ %d shapes │ %d undo │ ? help", m.board.Action(), m.board.Layers().Count(), m.board.HistoryLen()))
}

func (m model) helpView() string {
	help := []string{
		"sketchboard",
		"",
		"Tools:   s select   p pencil   r rectangle   e ellipse   l line   esc none",
		"Drawing: drag with the left button; hold shift (or toggle c) for squares and circles",
		"Edit:    u / ctrl+z undo the last change",
		"Layers:  [ ] previous / next layer   a show all layers",
		"Style:   f/F fill color   b/B border color   o/O opacity -/+   w/W weight -/+",
		"Export:  x PNG   X PDF",
		"",
		"q quit. Press any key to return.",
	}
	return strings.Join(help, "\n")
}
