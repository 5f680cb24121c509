package prompt

import "github.com/charmbracelet/lipgloss"

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	highlight     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)
