package main // import "github.com/tonobo/snake-top"

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	SnakeIDList = []string{"a", "b", "c", "d", "e", "g", "h", "j", "k"}

	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	foodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	meStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	enemyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// gridCells lays the board out row by row with the highest y first, so the
// picture matches the engine's orientation.
func gridCells(b *Board) [][]string {
	cells := make([][]string, b.Height)
	for row := range cells {
		cells[row] = make([]string, b.Width)
		for x := range cells[row] {
			cells[row][x] = "-"
		}
	}
	set := func(p Point, s string) {
		if b.Outside(p) {
			return
		}
		cells[b.Height-1-p.Y][p.X] = s
	}
	for _, food := range b.Food {
		set(food, "F")
	}
	for i, snake := range b.Opponents() {
		id := SnakeIDList[i%len(SnakeIDList)]
		for j := len(snake.Body) - 1; j >= 0; j-- {
			if j == 0 {
				set(snake.Body[j], strings.ToUpper(id))
			} else {
				set(snake.Body[j], id)
			}
		}
	}
	if b.Me != nil {
		for j := len(b.Me.Body) - 1; j >= 0; j-- {
			if j == 0 {
				set(b.Me.Body[j], "M")
			} else {
				set(b.Me.Body[j], "m")
			}
		}
	}
	return cells
}

// PlainGrid renders the board without colours.
func PlainGrid(b *Board) string {
	var sb strings.Builder
	for _, row := range gridCells(b) {
		sb.WriteString(strings.Join(row, ""))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderGrid renders the board for a terminal.
func RenderGrid(b *Board) string {
	rows := []string{}
	for _, row := range gridCells(b) {
		var sb strings.Builder
		for _, c := range row {
			switch {
			case c == "-":
				sb.WriteString(emptyStyle.Render(c))
			case c == "F":
				sb.WriteString(foodStyle.Render(c))
			case c == "M" || c == "m":
				sb.WriteString(meStyle.Render(c))
			default:
				sb.WriteString(enemyStyle.Render(c))
			}
		}
		rows = append(rows, sb.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
