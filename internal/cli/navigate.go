package cli

import (
	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to re-read the wizard.
type refreshViewMsg struct{}

// noticeMsg replaces the one-line action notice.
type noticeMsg struct {
	text string
}

// wizardCompleteMsg is sent when a form completes or is cancelled.
// The appModel handles it atomically: pop the form view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// busyMsg starts the spinner for a completion that was just dispatched.
type busyMsg struct {
	step domain.Step
}

// stepDoneMsg carries the result of a completion back to the UI goroutine.
type stepDoneMsg struct {
	step       domain.Step
	completion wizard.Completion
	err        error
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

// wizardCompleteOutput pops the form and shows text as the notice.
func wizardCompleteOutput(text string) tea.Msg {
	return wizardCompleteMsg{nextCmd: notice(text)}
}
