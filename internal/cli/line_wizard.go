package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/stratcoach/internal/cli/formatter"
	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/wizard"
)

const lineMenu = "\n[g]oals [o]utcomes [e]dit outcome [p]lan [r]ewards [f]eedback [l]ist [v]iew [s]ave [x] reset [k]ey [q]uit > "

var stepResultTitle = map[domain.Step]string{
	domain.StepOutcomes: "Achievable Outcomes",
	domain.StepPlan:     "Plan for Outcome",
	domain.StepRewards:  "Rewards",
	domain.StepRefine:   "Refined Plan",
}

// lineWizard runs the wizard over plain reads and writes, for pipes and
// terminals without TUI support.
type lineWizard struct {
	app      *App
	in       io.Reader
	out      io.Writer
	selected string
	feedback domain.Feedback
}

func runLineWizard(ctx context.Context, app *App) error {
	lw := &lineWizard{
		app:      app,
		in:       app.In,
		out:      app.Out,
		feedback: domain.DefaultFeedback,
	}
	err := lw.run(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (lw *lineWizard) println(s string) {
	fmt.Fprintln(lw.out, s)
}

func (lw *lineWizard) run(ctx context.Context) error {
	lw.println(formatter.Header("Strategic Planning Coach"))

	if err := lw.unlock(); err != nil {
		return err
	}

	for {
		choice, err := promptLine(lw.in, lw.out, lineMenu)
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "":
			continue
		case "g", "goals":
			err = lw.goals()
		case "o", "outcomes":
			lw.step(ctx, domain.StepOutcomes)
		case "e", "edit":
			err = lw.editOutcome()
		case "p", "plan":
			lw.step(ctx, domain.StepPlan)
		case "r", "rewards":
			lw.step(ctx, domain.StepRewards)
		case "f", "feedback":
			lw.feedbackStep(ctx)
		case "l", "list":
			fmt.Fprint(lw.out, formatter.FormatSteps(lw.stepsData()))
		case "v", "view", "review":
			lw.println(formatter.Header("Review Your Strategic Plan"))
			fmt.Fprint(lw.out, formatter.FormatReview(lw.app.Wizard.Review(lw.selected)))
		case "s", "save":
			err = lw.save()
		case "x", "reset":
			lw.reset()
		case "k", "key":
			err = lw.promptCredential()
		case "q", "quit", "exit":
			return nil
		default:
			lw.println(formatter.Warning(fmt.Sprintf("Unknown action %q.", choice)))
		}
		if err != nil {
			return err
		}
	}
}

func (lw *lineWizard) stepsData() formatter.StepsData {
	w := lw.app.Wizard
	return formatter.StepsData{
		Session:  w.Snapshot(),
		Selected: lw.selected,
		Feedback: lw.feedback,
		Unlocked: w.Unlocked(),
		Review:   w.Review(lw.selected),
	}
}

// unlock uses the configured credential when there is one and otherwise
// asks until a key is accepted.
func (lw *lineWizard) unlock() error {
	tried, err := autoUnlock(lw.app)
	if tried {
		if err == nil {
			lw.println(formatter.Success(noticeKeyOK))
			return nil
		}
		lw.println(formatter.Failure("Invalid API key: " + err.Error()))
	}

	for !lw.app.Wizard.Unlocked() {
		lw.println(formatter.Warning(noticeLocked))
		if err := lw.promptCredential(); err != nil {
			return err
		}
	}
	return nil
}

func (lw *lineWizard) promptCredential() error {
	key, err := promptLine(lw.in, lw.out, "Enter your OpenAI API key: ")
	if err != nil {
		return err
	}
	if err := lw.app.Wizard.SetCredential(key); err != nil {
		lw.println(formatter.Failure("Invalid API key: " + err.Error()))
		return nil
	}
	lw.println(formatter.Success(noticeKeyOK))
	return nil
}

func (lw *lineWizard) goals() error {
	lw.println(formatter.Header("Step 1: Define Your Strategic Goals"))

	var in goalInput
	var err error
	if in.Objective, err = promptLine(lw.in, lw.out, "Objective: What do you aim to achieve? "); err != nil {
		return err
	}
	if in.Metrics, err = promptLine(lw.in, lw.out, "Metrics: How will success be measured? "); err != nil {
		return err
	}
	if in.Timeline, err = promptLine(lw.in, lw.out, "Timeline: When do you expect results? "); err != nil {
		return err
	}
	raw, err := promptLine(lw.in, lw.out, "Category [Financial/Operational/Marketing/Other] (Financial): ")
	if err != nil {
		return err
	}
	if c, ok := domain.ParseCategory(domain.CoalesceStr(raw, string(domain.CategoryFinancial))); ok {
		in.Category = c
	}

	lw.println(submitGoalsNotice(lw.app.Wizard.SubmitGoals(in.Goal())))
	return nil
}

func (lw *lineWizard) editOutcome() error {
	if lw.selected != "" {
		lw.println(formatter.Dim("Current outcome:"))
		lw.println(lw.selected)
	}
	text, err := promptBlock(lw.in, lw.out, "Select an outcome to plan for (end with an empty line; empty keeps the current one):\n")
	if err != nil {
		return err
	}
	if text != "" {
		lw.selected = text
		lw.println(formatter.Dim("Selected outcome updated."))
	}
	return nil
}

// step runs one completion behind a spinner and prints its result.
func (lw *lineWizard) step(ctx context.Context, step domain.Step) {
	w := lw.app.Wizard

	stop := formatter.StartSpinner(lw.out, "Generating "+string(step)+"...")
	var (
		c   wizard.Completion
		err error
	)
	switch step {
	case domain.StepOutcomes:
		c, err = w.GenerateOutcomes(ctx)
	case domain.StepPlan:
		c, err = w.GeneratePlan(ctx, lw.selected)
	case domain.StepRewards:
		c, err = w.GenerateRewards(ctx, lw.selected)
	case domain.StepRefine:
		c, err = w.RefinePlan(ctx, lw.selected, lw.feedback)
	}
	stop()

	if err != nil {
		lw.println(stepNotice(stepDoneMsg{step: step, completion: c, err: err}))
		return
	}

	lw.println(formatter.Header(stepResultTitle[step]))
	lw.println(c.Text)
	if step == domain.StepOutcomes {
		lw.selected = w.Snapshot().Outcomes
		lw.println(formatter.Dim("The outcomes are now the selected outcome; press e to narrow it down."))
	}
}

func (lw *lineWizard) feedbackStep(ctx context.Context) {
	aligned := promptYesNoWithDefaultIO(lw.in, lw.out, "Does this plan align with your goals? [Y/n]: ", true)
	if aligned {
		lw.feedback = domain.FeedbackYes
		lw.println(formatter.Success(noticePlanAligns))
		return
	}
	lw.feedback = domain.FeedbackNo
	lw.step(ctx, domain.StepRefine)
}

func (lw *lineWizard) save() error {
	name, err := promptLine(lw.in, lw.out, "Save plan as (written as <name>.txt): ")
	if err != nil {
		return err
	}
	path, err := lw.app.Wizard.SaveReport(lw.app.ReportDir, name)
	switch {
	case errors.Is(err, wizard.ErrReportIncomplete):
		lw.println(formatter.Warning("Please fill in all fields."))
	case err != nil:
		lw.println(formatter.Failure(err.Error()))
	default:
		lw.println(formatter.Success("Plan saved to " + path))
	}
	return nil
}

func (lw *lineWizard) reset() {
	if !promptYesNoIO(lw.in, lw.out, "Start over? Every step will be cleared. [y/N]: ") {
		lw.println(formatter.Dim("Cancelled."))
		return
	}
	lw.app.Wizard.Reset()
	lw.selected = ""
	lw.feedback = domain.DefaultFeedback
	lw.println(formatter.Success(noticeReset))
}
