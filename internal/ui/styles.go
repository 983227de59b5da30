package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	slugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	draftStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	footerKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)
