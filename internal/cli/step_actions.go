package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/stratcoach/internal/cli/formatter"
	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/llm"
	"github.com/alexanderramin/stratcoach/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	noticeLocked     = "Please provide a valid API key to unlock the strategic planning features."
	noticeBusy       = "Please wait for the current request to finish."
	noticeKeyOK      = "API key accepted!"
	noticeGoalsSaved = "Your strategic goals have been saved."
	noticeGoalsEmpty = "Please fill in all fields for your goals."
	noticePlanAligns = "Great, the plan aligns with your goals."
	noticeReset      = "Session cleared. Your API key is kept."
)

// runStep dispatches one completion. Busy is set before the command returns
// so a second key press is refused straight away.
func runStep(state *SharedState, step domain.Step) tea.Cmd {
	if state.IsBusy() {
		return notice(formatter.Warning(noticeBusy))
	}
	w := state.App.Wizard
	selected := state.Selected
	feedback := state.Feedback

	var call func(context.Context) (wizard.Completion, error)
	switch step {
	case domain.StepOutcomes:
		call = w.GenerateOutcomes
	case domain.StepPlan:
		call = func(ctx context.Context) (wizard.Completion, error) { return w.GeneratePlan(ctx, selected) }
	case domain.StepRewards:
		call = func(ctx context.Context) (wizard.Completion, error) { return w.GenerateRewards(ctx, selected) }
	case domain.StepRefine:
		call = func(ctx context.Context) (wizard.Completion, error) { return w.RefinePlan(ctx, selected, feedback) }
	default:
		return notice(formatter.Failure(fmt.Sprintf("unknown step %q", step)))
	}

	// Guards fail without a remote call; report them without the spinner.
	if err := precheck(state, step); err != nil {
		return notice(formatter.Warning(guardMessage(err)))
	}

	state.Busy = step
	return tea.Batch(
		func() tea.Msg { return busyMsg{step: step} },
		func() tea.Msg {
			c, err := call(context.Background())
			return stepDoneMsg{step: step, completion: c, err: err}
		},
	)
}

// precheck mirrors the wizard guards that can be answered from local state.
func precheck(state *SharedState, step domain.Step) error {
	w := state.App.Wizard
	if !w.Unlocked() {
		return wizard.ErrLocked
	}
	switch step {
	case domain.StepOutcomes:
		if w.Snapshot().Goals == "" {
			return wizard.ErrGoalsRequired
		}
	case domain.StepPlan, domain.StepRewards, domain.StepRefine:
		if isBlank(state.Selected) {
			return wizard.ErrOutcomeRequired
		}
	}
	return nil
}

var stepDoneText = map[domain.Step]string{
	domain.StepOutcomes: "Outcomes generated.",
	domain.StepPlan:     "Plan generated.",
	domain.StepRewards:  "Rewards generated.",
	domain.StepRefine:   "Plan refined.",
}

// stepNotice renders the result of a completion for the notice line.
func stepNotice(msg stepDoneMsg) string {
	if msg.err == nil {
		return formatter.Success(stepDoneText[msg.step])
	}
	var rc *wizard.RemoteCallError
	if errors.As(msg.err, &rc) {
		text := msg.completion.Display()
		if errors.Is(rc, llm.ErrUnauthorized) {
			text += " (press k to enter a different key)"
		}
		return formatter.Failure(text)
	}
	return formatter.Warning(guardMessage(msg.err))
}

// guardMessage words a guard sentinel the way the page hints do.
func guardMessage(err error) string {
	switch {
	case errors.Is(err, wizard.ErrLocked):
		return noticeLocked
	case errors.Is(err, wizard.ErrGoalsRequired):
		return "Submit your goals first."
	case errors.Is(err, wizard.ErrOutcomeRequired):
		return "Select an outcome first."
	case errors.Is(err, wizard.ErrRefinementNotRequested):
		return noticePlanAligns
	case errors.Is(err, wizard.ErrSessionReset):
		return "The session was reset; that result was discarded."
	}
	return err.Error()
}

// ── form-backed actions ──────────────────────────────────────────────────────
//
// Each action pushes a form whose done callback hands the collected values to
// an apply function; the apply functions are what the wizard sees.

func credentialAction(state *SharedState) tea.Cmd {
	var key string
	return startForm(state, "API Key", credentialForm(&key), func() tea.Cmd {
		return applyCredential(state, key)
	})
}

func applyCredential(state *SharedState, key string) tea.Cmd {
	if err := state.App.Wizard.SetCredential(key); err != nil {
		return notice(formatter.Failure("Invalid API key: " + err.Error()))
	}
	return notice(formatter.Success(noticeKeyOK))
}

func goalsAction(state *SharedState) tea.Cmd {
	in := &goalInput{}
	return startForm(state, "Goals", goalsForm(in), func() tea.Cmd {
		return applyGoals(state, *in)
	})
}

func applyGoals(state *SharedState, in goalInput) tea.Cmd {
	return notice(submitGoalsNotice(state.App.Wizard.SubmitGoals(in.Goal())))
}

func submitGoalsNotice(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return formatter.Success(noticeGoalsSaved)
	case errors.As(err, &ve):
		return formatter.Failure(noticeGoalsEmpty)
	default:
		return formatter.Warning(guardMessage(err))
	}
}

func outcomeAction(state *SharedState) tea.Cmd {
	value := state.Selected
	return startForm(state, "Outcome", outcomeForm(&value), func() tea.Cmd {
		return applyOutcome(state, value)
	})
}

func applyOutcome(state *SharedState, value string) tea.Cmd {
	state.Selected = value
	return notice(formatter.Dim("Selected outcome updated."))
}

func feedbackAction(state *SharedState) tea.Cmd {
	value := state.Feedback
	return startForm(state, "Feedback", feedbackForm(&value), func() tea.Cmd {
		return applyFeedback(state, value)
	})
}

// applyFeedback records the answer; No refines the plan straight away.
func applyFeedback(state *SharedState, value domain.Feedback) tea.Cmd {
	state.Feedback = value
	if value == domain.FeedbackNo {
		return runStep(state, domain.StepRefine)
	}
	return notice(formatter.Success(noticePlanAligns))
}

func saveReportAction(state *SharedState) tea.Cmd {
	var name string
	return startForm(state, "Save", reportNameForm(&name), func() tea.Cmd {
		return applySaveReport(state, name)
	})
}

func applySaveReport(state *SharedState, name string) tea.Cmd {
	path, err := state.App.Wizard.SaveReport(state.App.ReportDir, name)
	if err != nil {
		if errors.Is(err, wizard.ErrReportIncomplete) {
			return notice(formatter.Warning("Please fill in all fields."))
		}
		return notice(formatter.Failure(err.Error()))
	}
	return notice(formatter.Success("Plan saved to " + path))
}

func resetAction(state *SharedState) tea.Cmd {
	confirmed := false
	return startForm(state, "Reset", confirmForm("Start over? Every step will be cleared.", &confirmed), func() tea.Cmd {
		return applyReset(state, confirmed)
	})
}

func applyReset(state *SharedState, confirmed bool) tea.Cmd {
	if !confirmed {
		return notice(formatter.Dim("Cancelled."))
	}
	state.App.Wizard.Reset()
	state.ResetSelection()
	return notice(formatter.Success(noticeReset))
}
