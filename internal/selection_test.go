package internal

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hirelab/smarthire/testutil"
)

func sampleTable() []Candidate {
	return []Candidate{
		{Name: "Ada", Email: "ada@x.com", Score: 92, Summary: "strong systems background"},
		{Name: "Ben", Email: "ben@x.com", Score: 61, Summary: "solid generalist"},
		{Name: "Cho", Email: "No Email", Score: 34, Summary: "junior"},
	}
}

func TestClampIndices(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		n       int
		want    []int
	}{
		{name: "empty set", indices: nil, n: 3, want: nil},
		{name: "empty table", indices: []int{0, 1}, n: 0, want: nil},
		{name: "in range", indices: []int{0, 2}, n: 3, want: []int{0, 2}},
		{name: "stale indices dropped", indices: []int{0, 5, 2, 99}, n: 3, want: []int{0, 2}},
		{name: "negative dropped", indices: []int{-1, 1}, n: 3, want: []int{1}},
		{name: "ascending order", indices: []int{2, 0, 1}, n: 3, want: []int{0, 1, 2}},
		{name: "duplicates collapsed", indices: []int{1, 1, 0}, n: 3, want: []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampIndices(tt.indices, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClampIndices(%v, %d) = %v, want %v", tt.indices, tt.n, got, tt.want)
			}
		})
	}
}

func TestMaterializeSelection(t *testing.T) {
	table := sampleTable()

	selected := MaterializeSelection(table, []int{2, 0, 7})
	if len(selected) != 2 {
		t.Fatalf("MaterializeSelection() returned %d candidates, want 2", len(selected))
	}
	// Table order, not argument order.
	if selected[0].Name != "Ada" || selected[1].Name != "Cho" {
		t.Errorf("MaterializeSelection() = %v, want [Ada Cho]", selected)
	}

	if got := MaterializeSelection(nil, []int{0}); got != nil {
		t.Errorf("MaterializeSelection(nil table) = %v, want nil", got)
	}
}

func TestCommitSelectionRejectsEmpty(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store := mustOpenStore(t, filepath.Join(dir, "state.db"))

	state := &SessionState{
		CurrentSessionID: "s1",
		Analysis:         sampleTable(),
		Selected:         []Candidate{{Name: "Prior"}},
	}

	err := CommitSelection(state, store, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CommitSelection() error = %v, want ValidationError", err)
	}

	// No state change on rejection.
	if len(state.Selected) != 1 || state.Selected[0].Name != "Prior" {
		t.Errorf("Selected changed on rejected commit: %v", state.Selected)
	}
	if got := store.LoadSelection("s1"); got != nil {
		t.Errorf("selection record written on rejected commit: %v", got)
	}
}

func TestCommitSelectionStaleOnlyRejected(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store := mustOpenStore(t, filepath.Join(dir, "state.db"))

	state := &SessionState{CurrentSessionID: "s1", Analysis: sampleTable()}

	// Every index is out of range, so nothing resolves.
	err := CommitSelection(state, store, []int{7, 8})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CommitSelection() error = %v, want ValidationError", err)
	}
}

func TestCommitSelectionPersistsForActiveSession(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store := mustOpenStore(t, filepath.Join(dir, "state.db"))

	state := &SessionState{CurrentSessionID: "s1", Analysis: sampleTable()}

	if err := CommitSelection(state, store, []int{2, 0}); err != nil {
		t.Fatalf("CommitSelection() error = %v", err)
	}

	if len(state.Selected) != 2 || state.Selected[0].Name != "Ada" || state.Selected[1].Name != "Cho" {
		t.Errorf("Selected = %v, want [Ada Cho]", state.Selected)
	}
	if got := store.LoadSelection("s1"); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("LoadSelection() = %v, want [0 2]", got)
	}
}

func TestCommitSelectionWithoutSessionIsMemoryOnly(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store := mustOpenStore(t, filepath.Join(dir, "state.db"))

	state := &SessionState{Analysis: sampleTable()}

	if err := CommitSelection(state, store, []int{1}); err != nil {
		t.Fatalf("CommitSelection() error = %v", err)
	}
	if len(state.Selected) != 1 || state.Selected[0].Name != "Ben" {
		t.Errorf("Selected = %v, want [Ben]", state.Selected)
	}
	if got := store.LoadSelection(""); got != nil {
		t.Errorf("selection persisted without an active session: %v", got)
	}
}
