package internal

import (
	"encoding/json"
	"fmt"
)

// Roles used by history turn events.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleBot       = "bot"
)

// Event types used by history events.
const (
	EventTypeTable = "table"
	EventTypeText  = "text"
)

// Session identifies a saved conversation on the backend.
type Session struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Candidate is one resume's analysis result produced by the backend.
// Candidates carry no stable identifier; they are referenced by position
// in the table they arrived in.
type Candidate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

// DisplayEmail returns the email suitable for rendering. The backend uses
// the literal "No Email" as its missing-value marker.
func (c Candidate) DisplayEmail() string {
	if c.Email == "" || c.Email == "No Email" {
		return "None"
	}
	return c.Email
}

// ScoreBand classifies a candidate score at the 80/50 cutoffs.
type ScoreBand int

const (
	ScoreLow ScoreBand = iota
	ScoreMid
	ScoreHigh
)

// BandForScore returns the band for a 0-100 score.
func BandForScore(score int) ScoreBand {
	switch {
	case score > 80:
		return ScoreHigh
	case score > 50:
		return ScoreMid
	default:
		return ScoreLow
	}
}

// HistoryEvent is one persisted unit of a session's timeline: either a
// scored-candidate table snapshot or a single chat turn. Content is kept
// raw until the event is classified, so an unexpected shape never aborts
// decoding of the surrounding history.
type HistoryEvent struct {
	Role    string          `json:"role,omitempty"`
	Type    string          `json:"type,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// IsTable reports whether the event is a table snapshot.
func (e HistoryEvent) IsTable() bool {
	return e.Type == EventTypeTable
}

// Candidates decodes the event content as an ordered candidate table.
func (e HistoryEvent) Candidates() ([]Candidate, error) {
	var cands []Candidate
	if err := json.Unmarshal(e.Content, &cands); err != nil {
		return nil, fmt.Errorf("failed to decode table content: %w", err)
	}
	return cands, nil
}

// Text decodes the event content as a chat turn's text.
func (e HistoryEvent) Text() (string, error) {
	var text string
	if err := json.Unmarshal(e.Content, &text); err != nil {
		return "", fmt.Errorf("failed to decode turn content: %w", err)
	}
	return text, nil
}
