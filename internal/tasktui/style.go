package tasktui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true).Padding(0, 1)
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	checkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	imageTagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
