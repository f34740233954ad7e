package formatter

import (
	"testing"

	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/wizard"
	"github.com/stretchr/testify/assert"
)

func TestFormatSteps_Locked(t *testing.T) {
	out := stripANSI(FormatSteps(StepsData{}))

	assert.Contains(t, out, "Please provide a valid API key to unlock the strategic planning features.")
	assert.NotContains(t, out, "STEP 1")
}

func TestFormatSteps_EmptySession(t *testing.T) {
	out := stripANSI(FormatSteps(StepsData{Unlocked: true}))

	assert.Contains(t, out, "STEP 1: DEFINE YOUR STRATEGIC GOALS")
	assert.Contains(t, out, "STEP 5: FEEDBACK AND ITERATION")
	assert.Contains(t, out, "Press g to enter your goals.")
	assert.Contains(t, out, "Submit your goals first.")
	assert.Contains(t, out, "Select an outcome first.")
	assert.Contains(t, out, "Does this plan align with your goals? Yes")
	assert.Contains(t, out, "Complete all steps to review your strategic plan.")
}

func TestFormatSteps_FilledSession(t *testing.T) {
	d := StepsData{
		Unlocked: true,
		Session: domain.Session{
			Goals:    testGoals,
			Outcomes: "A, B, C",
			Plan:     "1. Do it",
			Rewards:  "Team dinner",
		},
		Selected: "A",
		Feedback: domain.FeedbackNo,
		Review:   wizard.Review{Goals: testGoals, Outcome: "A", Plan: "1. Do it", Rewards: "Team dinner", Ready: true},
	}
	out := stripANSI(FormatSteps(d))

	assert.Contains(t, out, "Category: Financial")
	assert.Contains(t, out, "A, B, C")
	assert.Contains(t, out, "Team dinner")
	assert.Contains(t, out, "Does this plan align with your goals? No")
	assert.Contains(t, out, "Your Strategic Plan")
	assert.NotContains(t, out, "Complete all steps")
}

func TestFormatSteps_BusyStep(t *testing.T) {
	d := StepsData{
		Unlocked: true,
		Session:  domain.Session{Goals: testGoals},
		Selected: "A",
		Busy:     domain.StepRefine,
	}
	out := stripANSI(FormatSteps(d))

	assert.Contains(t, out, "Generating plan...")
	assert.NotContains(t, out, "Press p to generate a plan.")
}

func TestFormatReview_NotReady(t *testing.T) {
	out := stripANSI(FormatReview(wizard.Review{Goals: testGoals}))
	assert.Equal(t, "! Complete all steps to review your strategic plan.\n", out)
}
