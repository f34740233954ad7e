package cli

import (
	"github.com/alexanderramin/stratcoach/internal/cli/formatter"
	"github.com/alexanderramin/stratcoach/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Selected is the editable outcome the plan and rewards steps work on.
	// It is seeded from the generated outcomes.
	Selected string
	Feedback domain.Feedback

	// Busy names the step whose completion is in flight.
	Busy domain.Step

	// Notice is the rendered result of the last action.
	Notice string

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{App: app, Feedback: domain.DefaultFeedback}
}

// IsBusy reports whether a completion is in flight.
func (s *SharedState) IsBusy() bool {
	return s.Busy != ""
}

// ResetSelection clears the transient inputs that live outside the session.
func (s *SharedState) ResetSelection() {
	s.Selected = ""
	s.Feedback = domain.DefaultFeedback
}

// StepsData snapshots the wizard for rendering.
func (s *SharedState) StepsData() formatter.StepsData {
	w := s.App.Wizard
	return formatter.StepsData{
		Session:  w.Snapshot(),
		Selected: s.Selected,
		Feedback: s.Feedback,
		Unlocked: w.Unlocked(),
		Review:   w.Review(s.Selected),
		Busy:     s.Busy,
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and the notice line.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
