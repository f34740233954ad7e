package cli

import (
	"github.com/alexanderramin/stratcoach/internal/cli/formatter"
	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type stepsKeyMap struct {
	Key      key.Binding
	Goals    key.Binding
	Outcomes key.Binding
	Edit     key.Binding
	Plan     key.Binding
	Rewards  key.Binding
	Feedback key.Binding
	Review   key.Binding
	Save     key.Binding
	Reset    key.Binding
}

var stepsKeys = stepsKeyMap{
	Key:      key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "api key")),
	Goals:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goals")),
	Outcomes: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "outcomes")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit outcome")),
	Plan:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "plan")),
	Rewards:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rewards")),
	Feedback: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "feedback")),
	Review:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "review")),
	Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
}

// stepsView is the home page: all five steps and the review in a scrollable
// viewport.
type stepsView struct {
	state *SharedState
	vp    viewport.Model
}

func newStepsView(state *SharedState) *stepsView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.MouseWheelEnabled = true
	v := &stepsView{state: state, vp: vp}
	v.refresh()
	return v
}

func (v *stepsView) Init() tea.Cmd { return nil }

func (v *stepsView) refresh() {
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(formatter.FormatSteps(v.state.StepsData()))
}

func (v *stepsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg, refreshViewMsg:
		v.refresh()
		return v, nil
	case tea.KeyMsg:
		if cmd, handled := v.handleKey(msg); handled {
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *stepsView) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := v.state

	if key.Matches(msg, stepsKeys.Key) {
		if s.IsBusy() {
			return notice(formatter.Warning(noticeBusy)), true
		}
		return credentialAction(s), true
	}

	var action func() tea.Cmd
	switch {
	case key.Matches(msg, stepsKeys.Goals):
		action = func() tea.Cmd { return goalsAction(s) }
	case key.Matches(msg, stepsKeys.Outcomes):
		action = func() tea.Cmd { return runStep(s, domain.StepOutcomes) }
	case key.Matches(msg, stepsKeys.Edit):
		action = func() tea.Cmd { return outcomeAction(s) }
	case key.Matches(msg, stepsKeys.Plan):
		action = func() tea.Cmd { return runStep(s, domain.StepPlan) }
	case key.Matches(msg, stepsKeys.Rewards):
		action = func() tea.Cmd { return runStep(s, domain.StepRewards) }
	case key.Matches(msg, stepsKeys.Feedback):
		action = func() tea.Cmd { return feedbackAction(s) }
	case key.Matches(msg, stepsKeys.Review):
		return pushView(newReviewView(s)), true
	case key.Matches(msg, stepsKeys.Save):
		action = func() tea.Cmd { return saveReportAction(s) }
	case key.Matches(msg, stepsKeys.Reset):
		action = func() tea.Cmd { return resetAction(s) }
	default:
		return nil, false
	}

	if s.IsBusy() {
		return notice(formatter.Warning(noticeBusy)), true
	}
	if !s.App.Wizard.Unlocked() {
		return notice(formatter.Warning(noticeLocked)), true
	}
	return action(), true
}

func (v *stepsView) View() string {
	return v.vp.View()
}

func (v *stepsView) ID() ViewID    { return ViewSteps }
func (v *stepsView) Title() string { return "" }
func (v *stepsView) ShortHelp() []key.Binding {
	if !v.state.App.Wizard.Unlocked() {
		return []key.Binding{stepsKeys.Key}
	}
	return []key.Binding{
		stepsKeys.Goals, stepsKeys.Outcomes, stepsKeys.Edit, stepsKeys.Plan,
		stepsKeys.Rewards, stepsKeys.Feedback, stepsKeys.Review, stepsKeys.Save,
		stepsKeys.Reset,
	}
}
