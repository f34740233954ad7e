package domain

import (
	"fmt"
	"strings"
)

// Goal is the structured input collected by the first wizard step.
type Goal struct {
	Objective string
	Metrics   string
	Timeline  string
	Category  Category
}

// ValidationError reports which goal fields were missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill in all fields for your goals (missing: %s)", strings.Join(e.Fields, ", "))
}

// Validate checks that Objective, Metrics and Timeline are non-empty and that
// Category is one of the known values. Values are stored verbatim, so a
// whitespace-only field counts as filled in.
func (g Goal) Validate() error {
	var missing []string
	if g.Objective == "" {
		missing = append(missing, "objective")
	}
	if g.Metrics == "" {
		missing = append(missing, "metrics")
	}
	if g.Timeline == "" {
		missing = append(missing, "timeline")
	}
	if !ValidCategories[g.Category] {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Format renders the goal in the fixed four-line layout stored as Goals.
func (g Goal) Format() string {
	return fmt.Sprintf("Objective: %s\nMetrics: %s\nTimeline: %s\nCategory: %s",
		g.Objective, g.Metrics, g.Timeline, g.Category)
}
