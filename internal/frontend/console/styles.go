package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles the console renders with. Styles are bound
// to a renderer for the output stream, so colors are dropped automatically
// when output is not a terminal.
type Styles struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Heading     lipgloss.Style
	Exit        lipgloss.Style
	NPC         lipgloss.Style
	Monster     lipgloss.Style
	Item        lipgloss.Style
	Number      lipgloss.Style
	Prompt      lipgloss.Style
	Info        lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Dim         lipgloss.Style
	Sheet       lipgloss.Style

	healthHigh lipgloss.Style
	healthMid  lipgloss.Style
	healthLow  lipgloss.Style
}

// NewStyles builds the console palette for output written to w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	sheet := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
	return Styles{
		Title:       r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Description: r.NewStyle().Foreground(lipgloss.Color("252")),
		Heading:     r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Exit:        r.NewStyle().Foreground(lipgloss.Color("39")),
		NPC:         r.NewStyle().Foreground(lipgloss.Color("212")),
		Monster:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Item:        r.NewStyle().Foreground(lipgloss.Color("86")),
		Number:      r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Prompt:      r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Info:        r.NewStyle().Foreground(lipgloss.Color("252")),
		Success:     r.NewStyle().Foreground(lipgloss.Color("86")),
		Warning:     r.NewStyle().Foreground(lipgloss.Color("214")),
		Error:       r.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:         r.NewStyle().Foreground(lipgloss.Color("240")),
		Sheet:       sheet,

		healthHigh: r.NewStyle().Foreground(lipgloss.Color("86")),
		healthMid:  r.NewStyle().Foreground(lipgloss.Color("214")),
		healthLow:  r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Health picks the bar color for a health percentage.
func (s Styles) Health(percent int) lipgloss.Style {
	switch {
	case percent >= 60:
		return s.healthHigh
	case percent >= 25:
		return s.healthMid
	default:
		return s.healthLow
	}
}
