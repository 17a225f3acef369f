package ui

import "github.com/charmbracelet/lipgloss"

var (
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	checkDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Checkbox renders a completion marker.
func Checkbox(completed bool) string {
	if completed {
		return checkDoneStyle.Render("[x]")
	}
	return "[ ]"
}

// TaskText styles a task title for display, striking out completed
// tasks.
func TaskText(text string, completed bool) string {
	if completed {
		return completedStyle.Render(text)
	}
	return text
}
