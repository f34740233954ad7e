package cli

import (
	"github.com/alexanderramin/stratcoach/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// reviewView shows only the final review, for reading a long plan.
type reviewView struct {
	state *SharedState
	vp    viewport.Model
}

func newReviewView(state *SharedState) *reviewView {
	v := &reviewView{state: state, vp: viewport.New(state.Width, state.ContentHeight())}
	v.refresh()
	return v
}

func (v *reviewView) Init() tea.Cmd { return nil }

func (v *reviewView) refresh() {
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	r := v.state.App.Wizard.Review(v.state.Selected)
	v.vp.SetContent(formatter.Header("Review Your Strategic Plan") + "\n" + formatter.FormatReview(r))
}

func (v *reviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg, refreshViewMsg:
		v.refresh()
		return v, nil
	case tea.KeyMsg:
		if key.Matches(msg, stepsKeys.Save) {
			if v.state.IsBusy() {
				return v, notice(formatter.Warning(noticeBusy))
			}
			return v, saveReportAction(v.state)
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *reviewView) View() string {
	return v.vp.View()
}

func (v *reviewView) ID() ViewID    { return ViewReview }
func (v *reviewView) Title() string { return "Review" }
func (v *reviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		stepsKeys.Save,
	}
}
