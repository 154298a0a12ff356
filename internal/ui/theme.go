package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Backend status indicator colours.
const (
	healthyColor   = lipgloss.Color("#2ecc71")
	unhealthyColor = lipgloss.Color("#ff4757")
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Selected lipgloss.Style
	Healthy, Unhealthy, Unknown                    lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, SymStatus, SymBullet string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Healthy:   lipgloss.NewStyle().Foreground(healthyColor),
			Unhealthy: lipgloss.NewStyle().Foreground(unhealthyColor),
			Unknown:   lipgloss.NewStyle().Faint(true),

			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("13"),
			SymOK: "✔", SymFail: "✖", SymStatus: "●", SymBullet: "•",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Selected: plain.Reverse(true),
			Healthy: plain, Unhealthy: plain, Unknown: plain,

			Border: lipgloss.NormalBorder(), BorderColor: lipgloss.NoColor{},
			SymOK: "ok", SymFail: "x", SymStatus: "*", SymBullet: "-",
		}
	default: // classic
		current = Theme{
			Title:     lipgloss.NewStyle().Bold(true),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
			Healthy:   lipgloss.NewStyle().Foreground(healthyColor),
			Unhealthy: lipgloss.NewStyle().Foreground(unhealthyColor),
			Unknown:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
			SymOK: "✔", SymFail: "✖", SymStatus: "●", SymBullet: "•",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
