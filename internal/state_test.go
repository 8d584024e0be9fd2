package internal

import (
	"reflect"
	"testing"
)

func TestSessionStateReset(t *testing.T) {
	state := &SessionState{
		CurrentSessionID: "s1",
		Analysis:         sampleTable(),
		Selected:         []Candidate{{Name: "Ada"}},
		Attachments:      []string{"/tmp/a.pdf"},
	}

	state.Reset()

	// Deleting the active session and "new chat" both funnel through Reset:
	// the result must equal a pristine state.
	if !reflect.DeepEqual(state, &SessionState{}) {
		t.Errorf("Reset() left residual state: %+v", state)
	}
	if state.HasSession() {
		t.Error("HasSession() = true after Reset()")
	}
}

func TestSessionStateHasSession(t *testing.T) {
	state := &SessionState{}
	if state.HasSession() {
		t.Error("HasSession() = true for empty state")
	}
	state.CurrentSessionID = "s1"
	if !state.HasSession() {
		t.Error("HasSession() = false with a session id")
	}
}
