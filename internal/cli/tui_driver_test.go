package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/stratcoach/internal/config"
	"github.com/alexanderramin/stratcoach/internal/llm"
	"github.com/alexanderramin/stratcoach/internal/teatest"
	"github.com/alexanderramin/stratcoach/internal/wizard"
)

// TestDriver wraps teatest.Driver with stratcoach-specific inspection
// methods: the view stack, the shared state and the notice line.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets the terminal size and
// drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.appModel().activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	v := d.appModel().activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Notice returns the current action notice without styling.
func (d *TestDriver) Notice() string {
	return stripANSI(d.State().Notice)
}

// View returns the rendered screen without styling.
func (d *TestDriver) View() string {
	return stripANSI(d.Driver.View())
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// IsQuitting reports whether q, ctrl+c or tea.Quit was seen.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// ── test doubles ─────────────────────────────────────────────────────────────

// stubClient answers every task with a canned text, or fails with err.
type stubClient struct {
	mu        sync.Mutex
	responses map[llm.TaskType]string
	err       error
	requests  []llm.GenerateRequest
}

func newStubClient() *stubClient {
	return &stubClient{responses: map[llm.TaskType]string{
		llm.TaskOutcomes: "1. Launch EU store\n2. Open Berlin office",
		llm.TaskPlan:     "1. Hire a country lead\n2. Localize checkout",
		llm.TaskRewards:  "Team offsite in Lisbon",
		llm.TaskRefine:   "1. Partner with a local retailer",
	}}
}

func (c *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	return &llm.GenerateResponse{Text: c.responses[req.Task], Model: "stub"}, nil
}

func (c *stubClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func (c *stubClient) lastRequest() llm.GenerateRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		return llm.GenerateRequest{}
	}
	return c.requests[len(c.requests)-1]
}

// stubFactory rejects an empty key the way the OpenAI factory does.
func stubFactory(c *stubClient) llm.ClientFactory {
	return func(key string) (llm.LLMClient, error) {
		if key == "" {
			return nil, &llm.AuthError{Provider: llm.ProviderOpenAI, Err: llm.ErrMissingCredential}
		}
		return c, nil
	}
}

// newTestApp returns a locked App around client with reports going to a
// temp dir and line mode reading input.
func newTestApp(t *testing.T, client *stubClient, input string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := config.Config{
		LLM:      llm.DefaultConfig(),
		Wizard:   wizard.DefaultOptions(),
		LogLevel: "INFO",
	}
	out := &bytes.Buffer{}
	app := &App{
		Config:    &cfg,
		Wizard:    wizard.New("sess-test", stubFactory(client), cfg.Wizard),
		ReportDir: t.TempDir(),
		In:        strings.NewReader(input),
		Out:       out,
	}
	return app, out
}
