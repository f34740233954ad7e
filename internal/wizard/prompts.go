package wizard

import "github.com/alexanderramin/stratcoach/internal/domain"

// SystemInstruction is sent with every completion.
const SystemInstruction = "You are a strategy planning assistant."

func outcomesPrompt(goals string) string {
	return "Based on these goals:\n" + goals + "\nHelp me break them down into smaller, achievable outcomes."
}

func planPrompt(outcome string) string {
	return "Create a step-by-step plan to achieve this outcome:\n" + outcome
}

func rewardsPrompt(outcome string) string {
	return "Suggest rewards for achieving this outcome:\n" + outcome
}

func refinePrompt(outcome string, feedback domain.Feedback) string {
	return "Refine the plan for the following feedback:\n" + outcome + "\nFeedback: " + string(feedback)
}
