package main

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	red     = "#FF6188"
	orange  = "#FC9867"
	green   = "#A9DC76"
	cyan    = "#78DCE8"
	magenta = "#AB9DF2"
	comment = "#727072"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(green))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(red))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(orange))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(comment))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(magenta))
	formatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(cyan)).Width(10)
	columnStyle  = lipgloss.NewStyle().Width(12)
)
