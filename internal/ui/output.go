// Package ui holds the terminal look shared by the CLI and the TUI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tasks/internal/health"
)

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg))
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) string {
	return PanelStyle().Render(strings.Join(lines, "\n"))
}

func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
}

// StatusIndicator is the coloured dot standing for backend liveness.
func StatusIndicator(s health.Status) string {
	return StatusStyle(s).Render(current.SymStatus)
}

func StatusStyle(s health.Status) lipgloss.Style {
	switch s {
	case health.Healthy:
		return current.Healthy
	case health.Unhealthy:
		return current.Unhealthy
	default:
		return current.Unknown
	}
}
