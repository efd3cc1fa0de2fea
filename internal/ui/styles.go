package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
)

// Terminal colours for notices, as ANSI codes understood by termenv
const (
	noticeColor   = "1" // red
	locationColor = "6" // cyan
	greetingColor = "4" // blue
)
