package internal

// SessionState is the client's ambient session state: which backend session
// is current, the last analysis table, the materialized selection, and the
// queue of resume files waiting for the next analyze call. It is a single
// value object owned by the caller rather than a set of package globals, and
// it is reassigned wholesale on session load and cleared on new-chat.
type SessionState struct {
	CurrentSessionID string      `json:"current_session_id,omitempty"`
	Analysis         []Candidate `json:"analysis,omitempty"`
	Selected         []Candidate `json:"selected,omitempty"`
	Attachments      []string    `json:"attachments,omitempty"`
}

// Reset clears the state to its new-chat baseline.
func (s *SessionState) Reset() {
	*s = SessionState{}
}

// HasSession reports whether a backend session is currently active.
func (s *SessionState) HasSession() bool {
	return s.CurrentSessionID != ""
}
