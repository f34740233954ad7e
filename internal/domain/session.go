package domain

// Session is the in-memory record of one user's progress through the wizard.
// Every text field is either empty or holds one complete value.
type Session struct {
	ID       string
	Goals    string
	Outcomes string
	Plan     string
	Rewards  string

	// Conversation holds every submitted or generated block in order.
	// It only grows until Clear.
	Conversation []string
}

// NewSession returns an empty session.
func NewSession(id string) *Session {
	return &Session{ID: id, Conversation: []string{}}
}

// Clear empties every field and the conversation. The ID is kept.
func (s *Session) Clear() {
	s.Goals = ""
	s.Outcomes = ""
	s.Plan = ""
	s.Rewards = ""
	s.Conversation = []string{}
}

// Append adds a block to the conversation log.
func (s *Session) Append(text string) {
	s.Conversation = append(s.Conversation, text)
}

// Copy returns a deep copy safe to hand to renderers.
func (s *Session) Copy() Session {
	c := *s
	c.Conversation = append([]string(nil), s.Conversation...)
	if c.Conversation == nil {
		c.Conversation = []string{}
	}
	return c
}
