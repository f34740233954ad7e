package wizard

import "github.com/alexanderramin/stratcoach/internal/domain"

// Completion is the outcome of one completion call: either Text or Err is set.
type Completion struct {
	Step   domain.Step
	Prompt string
	Text   string
	Err    error
}

// OK reports whether the call produced text.
func (c Completion) OK() bool { return c.Err == nil }

// Display returns the text, or "Error: <message>" for a failed call.
func (c Completion) Display() string {
	if c.Err == nil {
		return c.Text
	}
	cause := c.Err
	if rc, ok := c.Err.(*RemoteCallError); ok && rc.Err != nil {
		cause = rc.Err
	}
	return "Error: " + cause.Error()
}

// Review is the read-only summary shown once a plan exists.
type Review struct {
	Goals   string
	Outcome string
	Plan    string
	Rewards string
	Ready   bool
}
