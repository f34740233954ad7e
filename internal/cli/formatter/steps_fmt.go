package formatter

import (
	"strings"

	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/wizard"
)

// StepsData is everything the five-step page shows.
type StepsData struct {
	Session  domain.Session
	Selected string
	Feedback domain.Feedback
	Unlocked bool
	Review   wizard.Review

	// Busy names the step whose completion is in flight, if any.
	Busy domain.Step
}

// FormatSteps renders the wizard page: the five steps followed by the review.
func FormatSteps(d StepsData) string {
	var b strings.Builder

	if !d.Unlocked {
		b.WriteString(Warning("Please provide a valid API key to unlock the strategic planning features."))
		b.WriteString("\n\n")
		b.WriteString(Dim("Press k to enter your OpenAI API key."))
		b.WriteString("\n")
		return b.String()
	}

	s := d.Session

	writeStep(&b, "Step 1: Define Your Strategic Goals", s.Goals != "")
	writeBody(&b, s.Goals, "g", "enter your goals")

	writeStep(&b, "Step 2: Break Down Goals into Achievable Outcomes", s.Outcomes != "")
	switch {
	case d.Busy == domain.StepOutcomes:
		b.WriteString(Dim("Generating outcomes...") + "\n")
	case s.Goals == "":
		b.WriteString(Dim("Submit your goals first.") + "\n")
	default:
		writeBody(&b, s.Outcomes, "o", "generate outcomes")
	}

	writeStep(&b, "Step 3: Plan for Each Outcome", s.Plan != "")
	b.WriteString(Bold("Selected outcome:") + "\n")
	writeBody(&b, d.Selected, "e", "edit the outcome to plan for")
	b.WriteString("\n")
	b.WriteString(Bold("Plan:") + "\n")
	switch {
	case d.Busy == domain.StepPlan || d.Busy == domain.StepRefine:
		b.WriteString(Dim("Generating plan...") + "\n")
	case strings.TrimSpace(d.Selected) == "":
		b.WriteString(Dim("Select an outcome first.") + "\n")
	default:
		writeBody(&b, s.Plan, "p", "generate a plan")
	}

	writeStep(&b, "Step 4: Define Rewards for Achieving Outcomes", s.Rewards != "")
	switch {
	case d.Busy == domain.StepRewards:
		b.WriteString(Dim("Generating rewards...") + "\n")
	case strings.TrimSpace(d.Selected) == "":
		b.WriteString(Dim("Select an outcome first.") + "\n")
	default:
		writeBody(&b, s.Rewards, "r", "generate rewards")
	}

	writeStep(&b, "Step 5: Feedback and Iteration", false)
	feedback := d.Feedback
	if feedback == "" {
		feedback = domain.DefaultFeedback
	}
	b.WriteString("Does this plan align with your goals? " + Bold(string(feedback)) + "\n")
	b.WriteString(Dim("Press f to answer; answering No refines the plan.") + "\n")

	b.WriteString("\n")
	b.WriteString(Header("Review Your Strategic Plan"))
	b.WriteString("\n")
	b.WriteString(FormatReview(d.Review))

	return b.String()
}

// FormatReview renders the final review section.
func FormatReview(r wizard.Review) string {
	if !r.Ready {
		return Warning("Complete all steps to review your strategic plan.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Bold("Your Strategic Plan"))
	b.WriteString("\n\n")
	for _, sec := range []struct{ label, body string }{
		{"Goals", r.Goals},
		{"Outcome", r.Outcome},
		{"Plan", r.Plan},
		{"Rewards", r.Rewards},
	} {
		b.WriteString(Bold(sec.label + ":"))
		b.WriteString("\n")
		if sec.body == "" {
			b.WriteString(Dim("(none)"))
		} else {
			b.WriteString(sec.body)
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeStep(b *strings.Builder, title string, filled bool) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(StepIndicator(filled) + " " + Header(title))
	b.WriteString("\n")
}

// writeBody writes multi-line text unstyled; lipgloss would pad every line
// to the widest one.
func writeBody(b *strings.Builder, text, key, action string) {
	if strings.TrimSpace(text) == "" {
		b.WriteString(Dim("Press "+key+" to "+action+".") + "\n")
		return
	}
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteString("\n")
	}
}
