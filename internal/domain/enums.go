package domain

type Category string

const (
	CategoryFinancial   Category = "Financial"
	CategoryOperational Category = "Operational"
	CategoryMarketing   Category = "Marketing"
	CategoryOther       Category = "Other"
)

// Categories lists the goal categories in display order.
var Categories = []Category{
	CategoryFinancial,
	CategoryOperational,
	CategoryMarketing,
	CategoryOther,
}

// ValidCategories is the canonical set used by form and line-mode validation.
var ValidCategories = map[Category]bool{
	CategoryFinancial:   true,
	CategoryOperational: true,
	CategoryMarketing:   true,
	CategoryOther:       true,
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if equalFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Feedback is the answer to "Does this plan align with your goals?".
type Feedback string

const (
	FeedbackYes Feedback = "Yes"
	FeedbackNo  Feedback = "No"
)

// DefaultFeedback mirrors the choice control's initial selection.
const DefaultFeedback = FeedbackYes

// ParseFeedback accepts yes/no/y/n in any case.
func ParseFeedback(s string) (Feedback, bool) {
	switch {
	case equalFold(s, "yes"), equalFold(s, "y"):
		return FeedbackYes, true
	case equalFold(s, "no"), equalFold(s, "n"):
		return FeedbackNo, true
	}
	return "", false
}

// Step identifies one stage of the wizard. Steps double as LLM task names.
type Step string

const (
	StepGoals    Step = "goals"
	StepOutcomes Step = "outcomes"
	StepPlan     Step = "plan"
	StepRewards  Step = "rewards"
	StepRefine   Step = "refine"
)
