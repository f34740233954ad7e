package cli

import (
	"strings"

	"github.com/alexanderramin/stratcoach/internal/cli/formatter"
	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack, the action notice and the busy spinner.
type appModel struct {
	state     *SharedState
	viewStack []View
	spinner   spinner.Model
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleYellow

	m := appModel{
		state:   state,
		spinner: sp,
	}

	if tried, err := autoUnlock(app); tried {
		if err != nil {
			state.Notice = formatter.Failure("Invalid API key: " + err.Error())
		} else {
			state.Notice = formatter.Success("API key accepted!")
		}
	}

	// Start with the steps page as the home view.
	m.viewStack = []View{newStepsView(state)}

	return m
}

// activeView returns the top view on the stack, or nil.
func (m appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Navigation messages from views
	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m.broadcast(refreshViewMsg{})

	case refreshViewMsg:
		return m.broadcast(msg)

	case noticeMsg:
		m.state.Notice = msg.text
		return m.broadcast(refreshViewMsg{})

	case wizardCompleteMsg:
		// Atomically pop the form view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, func() tea.Msg { return refreshViewMsg{} })

	case busyMsg:
		m.state.Busy = msg.step
		m.state.Notice = ""
		updated, cmd := m.broadcast(refreshViewMsg{})
		return updated, tea.Batch(cmd, m.spinner.Tick)

	case spinner.TickMsg:
		// Let the tick chain lapse once nothing is in flight.
		if !m.state.IsBusy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepDoneMsg:
		m.applyStepResult(msg)
		return m.broadcast(refreshViewMsg{})
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// broadcast sends msg to every view in the stack so underlying views
// reload after changes made by the views above them.
func (m appModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *appModel) applyStepResult(msg stepDoneMsg) {
	m.state.Busy = ""
	m.state.Notice = stepNotice(msg)
	if msg.step == domain.StepOutcomes && msg.err == nil {
		m.state.Selected = m.state.App.Wizard.Snapshot().Outcomes
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms receive every key, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m.broadcast(refreshViewMsg{})
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderNotice())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("stratcoach")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	if m.state.App.Wizard.Unlocked() {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render("unlocked") + formatter.Dim("]")
	} else {
		header += "  " + formatter.Dim("[") + formatter.StyleYellow.Render("locked") + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderNotice() string {
	if m.state.IsBusy() {
		return m.spinner.View() + " " + formatter.Dim("Waiting for the "+string(m.state.Busy)+" completion...")
	}
	return m.state.Notice
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !viewCapturesInput(m.activeView()) {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim("q: quit"))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

func viewCapturesInput(v View) bool {
	return v != nil && v.ID().capturesInput()
}

// runTUI starts the full-screen program.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithInput(app.In), tea.WithOutput(app.Out))
	_, err := p.Run()
	return err
}
