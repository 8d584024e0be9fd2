package internal

import (
	"context"
	"sync/atomic"
)

// HistorySource fetches a session's persisted event history.
type HistorySource interface {
	History(ctx context.Context, sessionID string) ([]HistoryEvent, error)
}

// SelectionReader loads the persisted selection record for a session.
type SelectionReader interface {
	LoadSelection(sessionID string) []int
}

// Reconciler rebuilds transcript, table, and selection state from a
// session's persisted history. It owns the ambient SessionState and applies
// history events strictly in server order; the user-turn classification
// below depends on event adjacency.
type Reconciler struct {
	source HistorySource
	store  SelectionReader
	state  *SessionState
	gen    uint64
}

// NewReconciler creates a reconciler over the given history source,
// selection store, and ambient state.
func NewReconciler(source HistorySource, store SelectionReader, state *SessionState) *Reconciler {
	return &Reconciler{
		source: source,
		store:  store,
		state:  state,
	}
}

// State returns the ambient session state the reconciler operates on.
func (rc *Reconciler) State() *SessionState {
	return rc.state
}

// Rehydrate loads a session and replays its history into the renderer.
//
// The current session id is updated and both views are cleared (with the
// interview greeting re-seeded) before the history fetch, so a fetch failure
// leaves the views in their post-clear baseline. Each rehydration is stamped
// with a generation; a fetch that completes after a newer rehydration has
// started is discarded rather than written into now-stale state.
func (rc *Reconciler) Rehydrate(ctx context.Context, sessionID string, renderer Renderer) error {
	rc.state.CurrentSessionID = sessionID
	gen := atomic.AddUint64(&rc.gen, 1)

	renderer.ClearViews()
	renderer.InterviewGreeting()

	events, err := rc.source.History(ctx, sessionID)
	if err != nil {
		LogError("Failed to load history for session %s: %v", sessionID, err)
		return &ReplayError{SessionID: sessionID, Err: err}
	}

	if atomic.LoadUint64(&rc.gen) != gen {
		LogDebug("Discarding stale history response for session %s", sessionID)
		return nil
	}

	saved := rc.store.LoadSelection(sessionID)

	var table []Candidate
	tableLoaded := false

	for i, event := range events {
		switch {
		case event.IsTable():
			cands, err := event.Candidates()
			if err != nil {
				LogDebug("Skipping malformed table event: %v", err)
				continue
			}
			table = cands
			tableLoaded = true
			renderer.CandidateTable(cands, ClampIndices(saved, len(cands)))

		case event.Role == RoleAssistant:
			text, err := event.Text()
			if err != nil {
				LogDebug("Skipping malformed assistant turn: %v", err)
				continue
			}
			// assistant turns always belong to the interview channel
			renderer.InterviewBubble("ai", text)

		case event.Role == RoleUser:
			text, err := event.Text()
			if err != nil {
				LogDebug("Skipping malformed user turn: %v", err)
				continue
			}
			// A user turn directly followed by an assistant turn is an
			// interview answer; anything else is a one-off analysis message.
			if i+1 < len(events) && events[i+1].Role == RoleAssistant {
				renderer.InterviewBubble(RoleUser, text)
			} else {
				renderer.AnalysisMessage(RoleUser, text)
			}

		case event.Role == RoleBot && event.Type == EventTypeText:
			text, err := event.Text()
			if err != nil {
				LogDebug("Skipping malformed bot turn: %v", err)
				continue
			}
			renderer.AnalysisMessage(RoleBot, text)

		default:
			// Unknown shapes never abort the replay.
			LogDebug("Skipping unrecognized history event (role=%q type=%q)", event.Role, event.Type)
		}
	}

	rc.state.Analysis = table

	clamped := ClampIndices(saved, len(table))
	if tableLoaded && len(clamped) > 0 {
		rc.state.Selected = MaterializeSelection(table, clamped)
	} else {
		rc.state.Selected = nil
	}
	renderer.SchedulerChips(rc.state.Selected)

	return nil
}
