package internal

import "sort"

// ClampIndices returns the subset of indices that resolve against a table of
// length n, deduplicated and in ascending order. Stale indices are dropped
// silently; they are never dereferenced.
func ClampIndices(indices []int, n int) []int {
	if n <= 0 || len(indices) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(indices))
	var clamped []int
	for _, idx := range indices {
		if idx < 0 || idx >= n || seen[idx] {
			continue
		}
		seen[idx] = true
		clamped = append(clamped, idx)
	}
	sort.Ints(clamped)
	return clamped
}

// MaterializeSelection maps surviving indices to their candidates, in table
// order. Indices are clamped first, so the result never references a row
// outside the table.
func MaterializeSelection(table []Candidate, indices []int) []Candidate {
	clamped := ClampIndices(indices, len(table))
	if len(clamped) == 0 {
		return nil
	}

	selected := make([]Candidate, 0, len(clamped))
	for _, idx := range clamped {
		selected = append(selected, table[idx])
	}
	return selected
}

// CommitSelection records which rows of the current analysis table the user
// checked. The commit is rejected when no row resolves to a candidate, and
// the index set is persisted only when a backend session is active; with no
// session yet, the selection lives in memory only.
func CommitSelection(state *SessionState, store *StateStore, indices []int) error {
	selected := MaterializeSelection(state.Analysis, indices)
	if len(selected) == 0 {
		return &ValidationError{Msg: "select at least one candidate from the table"}
	}

	state.Selected = selected

	if state.HasSession() {
		clamped := ClampIndices(indices, len(state.Analysis))
		if err := store.SaveSelection(state.CurrentSessionID, clamped); err != nil {
			return err
		}
	}
	return nil
}
