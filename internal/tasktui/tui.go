// Package tasktui implements the interactive terminal binding for the
// task list controller.
package tasktui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/wasif-mahmood1/Todo-app/task"
	"github.com/wasif-mahmood1/Todo-app/tasklist"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusWarn
	statusError
)

// StatusNotifier captures the latest notification for the status line.
// It satisfies the controller's Notifier interface.
type StatusNotifier struct {
	mu      sync.Mutex
	level   statusLevel
	message string
}

// NewStatusNotifier returns an empty status line.
func NewStatusNotifier() *StatusNotifier {
	return &StatusNotifier{}
}

func (s *StatusNotifier) Info(format string, args ...any)  { s.set(statusInfo, format, args...) }
func (s *StatusNotifier) Warn(format string, args ...any)  { s.set(statusWarn, format, args...) }
func (s *StatusNotifier) Error(format string, args ...any) { s.set(statusError, format, args...) }

func (s *StatusNotifier) set(level statusLevel, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	s.message = fmt.Sprintf(format, args...)
}

func (s *StatusNotifier) latest() (statusLevel, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level, s.message
}

type initializedMsg struct{ err error }
type actionDoneMsg struct{ err error }

type model struct {
	ctx    context.Context
	ctrl   *tasklist.Controller
	status *StatusNotifier

	width  int
	height int
	mode   mode
	cursor int
	input  textinput.Model
	editID int64
	loaded bool
}

// Run starts the interactive UI on the given controller. The notifier
// must be the one the controller was built with, so operation
// notifications land in the status line.
func Run(ctx context.Context, ctrl *tasklist.Controller, status *StatusNotifier) error {
	if ctrl == nil {
		return fmt.Errorf("controller is required")
	}
	if status == nil {
		status = NewStatusNotifier()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(ctx, ctrl, status), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, ctrl *tasklist.Controller, status *StatusNotifier) model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = task.MaxTextLength

	return model{
		ctx:    ctx,
		ctrl:   ctrl,
		status: status,
		input:  input,
	}
}

func (m model) Init() tea.Cmd {
	return m.initializeCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case initializedMsg:
		m.loaded = true
		m.clampCursor()
		return m, nil
	case actionDoneMsg:
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeList {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.ctrl.Tasks())-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		if selected, ok := m.selectedTask(); ok {
			if m.ctrl.BeginEdit(selected.ID) {
				_, draft, _ := m.ctrl.Editing()
				m.mode = modeEdit
				m.editID = selected.ID
				m.input.SetValue(draft)
				m.input.CursorEnd()
				m.input.Focus()
				return m, textinput.Blink
			}
		}
	case " ", "enter":
		if selected, ok := m.selectedTask(); ok {
			return m, m.toggleCmd(selected.ID)
		}
	case "d":
		if selected, ok := m.selectedTask(); ok {
			return m, m.removeCmd(selected.ID)
		}
	case "r":
		return m, m.reloadCmd()
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeEdit {
			m.ctrl.CancelEdit()
		}
		m.mode = modeList
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		wasEdit := m.mode == modeEdit
		editID := m.editID
		m.mode = modeList
		m.input.Blur()
		if wasEdit {
			m.ctrl.SetDraft(value)
			return m, m.saveEditCmd(editID)
		}
		return m, m.addCmd(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	remaining, completed := m.ctrl.Counts()
	b.WriteString(titleStyle.Render("todos"))
	b.WriteString("  ")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d remaining, %d done", remaining, completed)))
	b.WriteString("\n\n")

	tasks := m.ctrl.Tasks()
	if m.loaded && len(tasks) == 0 {
		b.WriteString(countStyle.Render("No todos yet. Press a to add one."))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		text := t.Text
		if t.Completed {
			check = checkStyle.Render("[x]")
			text = doneStyle.Render(text)
		}
		line := cursor + check + " " + text
		if t.HasImage() {
			line += " " + imageTagStyle.Render("[img]")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\nNew todo: " + m.input.View() + "\n")
	case modeEdit:
		b.WriteString("\nEdit todo: " + m.input.View() + "\n")
	default:
		b.WriteString("\n" + helpStyle.Render("a add · e edit · space toggle · d delete · r reload · q quit") + "\n")
	}

	if line := m.renderStatusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderStatusLine() string {
	level, message := m.status.latest()
	if level == statusNone || message == "" {
		return ""
	}
	if m.width > 0 {
		message = wordwrap.String(message, m.width)
	}
	switch level {
	case statusInfo:
		return statusInfoStyle.Render(message)
	case statusWarn:
		return statusWarnStyle.Render(message)
	default:
		return statusErrorStyle.Render(message)
	}
}

func (m *model) selectedTask() (task.Task, bool) {
	tasks := m.ctrl.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *model) clampCursor() {
	count := len(m.ctrl.Tasks())
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) initializeCmd() tea.Cmd {
	return func() tea.Msg {
		return initializedMsg{err: m.ctrl.Initialize(m.ctx)}
	}
}

func (m model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.ctrl.Reload(m.ctx)}
	}
}

func (m model) addCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.ctrl.AddTask(m.ctx, text, "")}
	}
}

func (m model) toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.ctrl.Toggle(m.ctx, id)}
	}
}

func (m model) removeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.ctrl.Remove(m.ctx, id)}
	}
}

func (m model) saveEditCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.ctrl.SaveEdit(m.ctx, id)}
	}
}
