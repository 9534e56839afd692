package cli

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorBorder  = lipgloss.Color("#4b5563")
	colorDimmed  = lipgloss.Color("#6b7280")
	colorBright  = lipgloss.Color("#f9fafb")
	colorAccent  = lipgloss.Color("#3b82f6")
	colorSuccess = lipgloss.Color("#16a34a")
	colorDanger  = lipgloss.Color("#dc2626")
)

const (
	labelWidth = 14
	nameWidth  = 28
	dateWidth  = 26
	placeWidth = 20
	idWidth    = 6
)

var (
	stylePanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBright)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorDimmed).
			Width(labelWidth)

	styleValue = lipgloss.NewStyle().
			Foreground(colorBright)

	styleDimmed = lipgloss.NewStyle().
			Foreground(colorDimmed)

	styleToast = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleAlert = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorDanger).
			Foreground(colorDanger).
			Padding(0, 1)
)
