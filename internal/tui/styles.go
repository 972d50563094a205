package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle       = lipgloss.NewStyle().Bold(true)
	hintStyle        = lipgloss.NewStyle().Faint(true)
	amountStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1"))
	sliderFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	sliderTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	buttonStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	buttonFocusStyle = buttonStyle.BorderForeground(lipgloss.Color("#f5c2e7")).Bold(true)
	headlineStyle    = lipgloss.NewStyle().Bold(true)
	captionStyle     = lipgloss.NewStyle().Italic(true).PaddingLeft(2)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	cursorMarker     = "▶"
)
