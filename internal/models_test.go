package internal

import (
	"encoding/json"
	"testing"
)

func TestHistoryEventClassification(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		isTable bool
	}{
		{
			name:    "table event",
			raw:     `{"type":"table","content":[{"name":"A","email":"a@x.com","score":90,"summary":"good"}]}`,
			isTable: true,
		},
		{
			name:    "user turn",
			raw:     `{"role":"user","type":"text","content":"hello"}`,
			isTable: false,
		},
		{
			name:    "assistant turn",
			raw:     `{"role":"assistant","type":"text","content":"hi"}`,
			isTable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var event HistoryEvent
			if err := json.Unmarshal([]byte(tt.raw), &event); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := event.IsTable(); got != tt.isTable {
				t.Errorf("IsTable() = %v, want %v", got, tt.isTable)
			}
		})
	}
}

func TestHistoryEventCandidates(t *testing.T) {
	var event HistoryEvent
	raw := `{"type":"table","content":[{"name":"A","email":"a@x.com","score":90,"summary":"strong"},{"name":"B","email":"No Email","score":40,"summary":"weak"}]}`
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	cands, err := event.Candidates()
	if err != nil {
		t.Fatalf("Candidates() error = %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("Candidates() returned %d candidates, want 2", len(cands))
	}
	if cands[0].Name != "A" || cands[0].Score != 90 {
		t.Errorf("Candidates()[0] = %+v, want A/90", cands[0])
	}
	if got := cands[1].DisplayEmail(); got != "None" {
		t.Errorf("DisplayEmail() = %q, want %q", got, "None")
	}
}

func TestHistoryEventCandidatesMalformed(t *testing.T) {
	event := HistoryEvent{Type: EventTypeTable, Content: json.RawMessage(`"not a table"`)}
	if _, err := event.Candidates(); err == nil {
		t.Error("Candidates() expected error for non-array content")
	}
}

func TestHistoryEventText(t *testing.T) {
	event := HistoryEvent{Role: RoleUser, Type: EventTypeText, Content: json.RawMessage(`"hello"`)}
	text, err := event.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "hello" {
		t.Errorf("Text() = %q, want %q", text, "hello")
	}

	event.Content = json.RawMessage(`{"nested":true}`)
	if _, err := event.Text(); err == nil {
		t.Error("Text() expected error for non-string content")
	}
}

func TestBandForScore(t *testing.T) {
	tests := []struct {
		score int
		want  ScoreBand
	}{
		{score: 90, want: ScoreHigh},
		{score: 81, want: ScoreHigh},
		{score: 80, want: ScoreMid},
		{score: 51, want: ScoreMid},
		{score: 50, want: ScoreLow},
		{score: 40, want: ScoreLow},
		{score: 0, want: ScoreLow},
	}

	for _, tt := range tests {
		if got := BandForScore(tt.score); got != tt.want {
			t.Errorf("BandForScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
