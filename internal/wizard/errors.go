package wizard

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/stratcoach/internal/domain"
)

var (
	// ErrLocked is returned by step operations before a credential is accepted.
	ErrLocked = errors.New("enter your api key to unlock the wizard")

	// ErrGoalsRequired guards GenerateOutcomes against an empty Goals field.
	ErrGoalsRequired = errors.New("submit your goals first")

	// ErrOutcomeRequired guards the plan and rewards steps against a blank outcome.
	ErrOutcomeRequired = errors.New("select an outcome first")

	// ErrRefinementNotRequested is returned when RefinePlan is called with
	// feedback other than No.
	ErrRefinementNotRequested = errors.New("plan refinement only runs when the plan does not align")

	// ErrSessionReset is returned when Reset ran while a completion was in
	// flight. The stale result is discarded.
	ErrSessionReset = errors.New("session was reset while the completion was running")
)

// RemoteCallError wraps a failed completion for one step.
type RemoteCallError struct {
	Step domain.Step
	Err  error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s completion failed: %v", e.Step, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }
