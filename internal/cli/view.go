package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID names a screen on the view stack.
type ViewID int

const (
	ViewSteps  ViewID = iota // wizard steps, the root view
	ViewReview               // plan review and save
	ViewForm                 // any embedded huh form
)

// capturesInput reports whether the view owns every key press, so the global
// q and esc bindings must not fire while it is active.
func (id ViewID) capturesInput() bool {
	return id == ViewForm
}

// View is a tea.Model that can sit on the view stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	// Title is the breadcrumb segment shown in the header.
	Title() string
}
