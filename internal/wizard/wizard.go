// Package wizard drives one strategic planning session: goals, outcomes,
// plan, rewards and plan refinement. Rendering layers call these operations
// and never touch the session directly.
package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/llm"
)

// Wizard owns a session and the completion client unlocked by a credential.
// The mutex is not held across remote calls, so Snapshot stays responsive
// while a completion is in flight. A result that lands after Reset is dropped.
type Wizard struct {
	mu      sync.Mutex
	session *domain.Session
	factory llm.ClientFactory
	client  llm.LLMClient
	opts    Options

	// resets is bumped by Reset; completions started before it are stale.
	resets uint64
}

// New creates a locked wizard with an empty session. An empty sessionID gets
// a fresh UUID.
func New(sessionID string, factory llm.ClientFactory, opts Options) *Wizard {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	return &Wizard{
		session: domain.NewSession(sessionID),
		factory: factory,
		opts:    opts,
	}
}

// SessionID returns the identifier of the current session.
func (w *Wizard) SessionID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.ID
}

// Unlocked reports whether a credential has been accepted.
func (w *Wizard) Unlocked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.client != nil
}

// SetCredential builds a completion client from key. On failure the previous
// lock state is kept and the error is an *llm.AuthError where the provider
// could tell.
func (w *Wizard) SetCredential(key string) error {
	if w.factory == nil {
		return fmt.Errorf("set credential: no client factory configured")
	}
	c, err := w.factory(strings.TrimSpace(key))
	if err != nil {
		return fmt.Errorf("set credential: %w", err)
	}

	w.mu.Lock()
	w.client = c
	w.mu.Unlock()
	return nil
}

// Reset clears every field and the conversation. The credential survives.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.session.Clear()
	w.resets++
}

// SubmitGoals validates goal and stores its formatted form.
func (w *Wizard) SubmitGoals(goal domain.Goal) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.client == nil {
		return ErrLocked
	}
	if err := goal.Validate(); err != nil {
		return err
	}

	text := goal.Format()
	w.session.Goals = text
	w.session.Append(text)
	return nil
}

// GenerateOutcomes breaks the stored goals into smaller outcomes.
func (w *Wizard) GenerateOutcomes(ctx context.Context) (Completion, error) {
	w.mu.Lock()
	if w.client == nil {
		w.mu.Unlock()
		return Completion{Step: domain.StepOutcomes}, ErrLocked
	}
	goals := w.session.Goals
	gen := w.resets
	w.mu.Unlock()

	if strings.TrimSpace(goals) == "" {
		return Completion{Step: domain.StepOutcomes}, ErrGoalsRequired
	}

	c := w.Complete(ctx, domain.StepOutcomes, outcomesPrompt(goals))
	return c, w.store(c, gen, func(s *domain.Session, v string) { s.Outcomes = v }, true)
}

// GeneratePlan writes a step-by-step plan for the selected outcome.
func (w *Wizard) GeneratePlan(ctx context.Context, selected string) (Completion, error) {
	gen, err := w.guardOutcome(selected)
	if err != nil {
		return Completion{Step: domain.StepPlan}, err
	}
	c := w.Complete(ctx, domain.StepPlan, planPrompt(selected))
	return c, w.store(c, gen, func(s *domain.Session, v string) { s.Plan = v }, true)
}

// GenerateRewards suggests rewards for the selected outcome. Rewards is
// overwritten on every call.
func (w *Wizard) GenerateRewards(ctx context.Context, selected string) (Completion, error) {
	gen, err := w.guardOutcome(selected)
	if err != nil {
		return Completion{Step: domain.StepRewards}, err
	}
	c := w.Complete(ctx, domain.StepRewards, rewardsPrompt(selected))
	return c, w.store(c, gen, func(s *domain.Session, v string) { s.Rewards = v }, true)
}

// RefinePlan regenerates the plan when the user says it does not align.
func (w *Wizard) RefinePlan(ctx context.Context, selected string, feedback domain.Feedback) (Completion, error) {
	gen, err := w.guardOutcome(selected)
	if err != nil {
		return Completion{Step: domain.StepRefine}, err
	}
	if feedback != domain.FeedbackNo {
		return Completion{Step: domain.StepRefine}, ErrRefinementNotRequested
	}
	c := w.Complete(ctx, domain.StepRefine, refinePrompt(selected, feedback))
	return c, w.store(c, gen, func(s *domain.Session, v string) { s.Plan = v }, w.opts.LogRefinements)
}

// Complete sends prompt as the only user turn under the fixed system
// instruction. It touches no session state.
func (w *Wizard) Complete(ctx context.Context, step domain.Step, prompt string) Completion {
	w.mu.Lock()
	client := w.client
	sessionID := w.session.ID
	w.mu.Unlock()

	result := Completion{Step: step, Prompt: prompt}
	if client == nil {
		result.Err = ErrLocked
		return result
	}

	resp, err := client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskType(step),
		SessionID:    sessionID,
		SystemPrompt: SystemInstruction,
		UserPrompt:   prompt,
	})
	if err != nil {
		result.Err = &RemoteCallError{Step: step, Err: err}
		return result
	}
	result.Text = resp.Text
	return result
}

// Snapshot returns a copy of the session for rendering.
func (w *Wizard) Snapshot() domain.Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.Copy()
}

// Review summarises the session around the selected outcome.
func (w *Wizard) Review(selected string) Review {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Review{
		Goals:   w.session.Goals,
		Outcome: selected,
		Plan:    w.session.Plan,
		Rewards: w.session.Rewards,
		Ready:   w.session.Plan != "",
	}
}

// guardOutcome checks the plan-step preconditions and returns the reset
// generation the call starts under.
func (w *Wizard) guardOutcome(selected string) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.client == nil {
		return 0, ErrLocked
	}
	if strings.TrimSpace(selected) == "" {
		return 0, ErrOutcomeRequired
	}
	return w.resets, nil
}

// store applies c to the session per the error policy and returns c.Err.
// Results from before the latest Reset are discarded with ErrSessionReset.
func (w *Wizard) store(c Completion, gen uint64, set func(*domain.Session, string), logIt bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.resets != gen {
		return ErrSessionReset
	}
	if c.Err != nil && !w.opts.ErrorsAsContent {
		return c.Err
	}

	text := c.Display()
	set(w.session, text)
	if logIt {
		w.session.Append(text)
	}
	return c.Err
}
