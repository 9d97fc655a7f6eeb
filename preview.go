package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
)

// A pixel counts as ink once its coverage passes this alpha (0-65535).
const inkThreshold = 0x2800

// brailleDots maps a dot position inside a 2x4 cell to its bit in the
// Unicode braille block.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// renderPreview rasterizes shapes at 2x4 dots per terminal cell and returns
// one string per row of cells, each lit cell a braille character colored
// with the average of its inked pixels.
func renderPreview(shapes []Shape, cols, rows, cellWidth, cellHeight int) []string {
	if cols < 1 || rows < 1 {
		return nil
	}
	dc := gg.NewContext(cols*2, rows*4)
	dc.Scale(2/float64(cellWidth), 4/float64(cellHeight))
	renderScene(newGGSurface(dc), shapes)
	img := dc.Image()

	styles := make(map[string]lipgloss.Style)
	lines := make([]string, rows)
	for cy := 0; cy < rows; cy++ {
		var sb strings.Builder
		for cx := 0; cx < cols; cx++ {
			var bits rune
			var rs, gs, bs, n uint32
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					r, g, b, a := img.At(cx*2+dx, cy*4+dy).RGBA()
					if a < inkThreshold {
						continue
					}
					bits |= brailleDots[dy][dx]
					rs += r * 0xffff / a >> 8
					gs += g * 0xffff / a >> 8
					bs += b * 0xffff / a >> 8
					n++
				}
			}
			if bits == 0 {
				sb.WriteByte(' ')
				continue
			}
			hex := fmt.Sprintf("#%02x%02x%02x", rs/n, gs/n, bs/n)
			style, ok := styles[hex]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = style
			}
			sb.WriteString(style.Render(string(0x2800 + bits)))
		}
		lines[cy] = sb.String()
	}
	return lines
}
