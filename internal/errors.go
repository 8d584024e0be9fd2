package internal

import "fmt"

// APIError represents a failed backend call, either transport-level or a
// non-2xx response.
type APIError struct {
	Op     string // "list sessions", "history", "analyze", ...
	Status int    // 0 when the request never completed
	Err    error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api error: %s [%d]: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("api error: %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StoreError represents errors accessing the local state store.
type StoreError struct {
	Op  string // "open", "load", "save"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ReplayError represents a failed session rehydration.
type ReplayError struct {
	SessionID string
	Err       error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay error [%s]: %v", e.SessionID, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

// ValidationError represents a user-input validation failure. The action is
// blocked synchronously and no side effect is performed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
