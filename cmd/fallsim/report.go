package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/fallsim"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Width(10)

	offscreenStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)

// summary renders the solver's final state as a bordered panel.
func summary(s *fallsim.Solver, vp fallsim.Viewport, elapsed float64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("t = %.3fs", elapsed)))
	b.WriteByte('\n')
	b.WriteString(row("unit size", fmt.Sprintf("%.3f px", s.UnitSize())))
	for i, body := range s.Bodies() {
		screen := s.ScreenPosition(body)
		b.WriteByte('\n')
		b.WriteString(row(fmt.Sprintf("body %d", i), formatVec(body.Current)+" u"))
		b.WriteByte('\n')
		b.WriteString(row("velocity", formatVec(body.Velocity())+" u/tick"))
		b.WriteByte('\n')
		pos := formatVec(screen) + " px"
		if !vp.Contains(screen) {
			pos += " " + offscreenStyle.Render("off screen")
		}
		b.WriteString(row("screen", pos))
	}
	return panelStyle.Render(b.String())
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func formatVec(v mgl64.Vec2) string {
	return fmt.Sprintf("(%.3f, %.3f)", v[0], v[1])
}

// countingCanvas tallies draw calls for windowless replays.
type countingCanvas struct {
	frames   int
	polygons int
}

func (c *countingCanvas) Clear(fallsim.Color) { c.frames++ }

func (c *countingCanvas) FillPolygon(fallsim.Color, []mgl64.Vec2, mgl64.Vec2) { c.polygons++ }
