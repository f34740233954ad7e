package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stratcoach/internal/cli/formatter"
	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// coachHuhTheme returns a huh theme using the Gruvbox palette of the formatter.
func coachHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themed(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(coachHuhTheme()).WithShowHelp(false)
}

// required rejects blank input with a message naming the field.
func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// credentialForm asks for the API key with the input masked.
func credentialForm(key *string) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter your OpenAI API key").
				EchoMode(huh.EchoModePassword).
				Value(key),
		),
	)
}

// goalInput collects the four goal fields before they become a domain.Goal.
type goalInput struct {
	Objective string
	Metrics   string
	Timeline  string
	Category  domain.Category
}

func (g goalInput) Goal() domain.Goal {
	return domain.Goal{
		Objective: g.Objective,
		Metrics:   g.Metrics,
		Timeline:  g.Timeline,
		Category:  g.Category,
	}
}

// goalsForm leaves blank fields to SubmitGoals so both surfaces report
// missing goals the same way.
func goalsForm(in *goalInput) *huh.Form {
	if in.Category == "" {
		in.Category = domain.CategoryFinancial
	}
	options := make([]huh.Option[domain.Category], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		options = append(options, huh.NewOption(string(c), c))
	}

	return themed(
		huh.NewGroup(
			huh.NewInput().Title("Objective: What do you aim to achieve?").Value(&in.Objective),
			huh.NewInput().Title("Metrics: How will success be measured?").Value(&in.Metrics),
			huh.NewInput().Title("Timeline: When do you expect results?").Value(&in.Timeline),
			huh.NewSelect[domain.Category]().
				Title("Category").
				Options(options...).
				Value(&in.Category),
		),
	)
}

// outcomeForm edits the outcome the plan and rewards steps work on.
func outcomeForm(value *string) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewText().
				Title("Select an outcome to plan for:").
				Lines(8).
				Value(value),
		),
	)
}

func feedbackForm(value *domain.Feedback) *huh.Form {
	if *value == "" {
		*value = domain.DefaultFeedback
	}
	return themed(
		huh.NewGroup(
			huh.NewSelect[domain.Feedback]().
				Title("Does this plan align with your goals?").
				Options(
					huh.NewOption("Yes", domain.FeedbackYes),
					huh.NewOption("No", domain.FeedbackNo),
				).
				Value(value),
		),
	)
}

func reportNameForm(name *string) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewInput().
				Title("Save plan as").
				Description("Written as <name>.txt").
				Placeholder("strategic_plan").
				Value(name).
				Validate(required("file name")),
		),
	)
}

func confirmForm(title string, result *bool) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}
