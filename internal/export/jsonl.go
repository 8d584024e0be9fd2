package export

import (
	"encoding/json"
	"io"

	"github.com/hirelab/smarthire/internal"
)

// JSONLExporter exports transcripts as JSON Lines, one message per line
type JSONLExporter struct{}

// Export exports a transcript to JSONL format
func (e *JSONLExporter) Export(transcript *internal.Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range transcript.Messages {
		if err := enc.Encode(msg); err != nil {
			return err
		}
	}

	for idx, cand := range transcript.Candidates {
		row := struct {
			Index     int                `json:"index"`
			Candidate internal.Candidate `json:"candidate"`
			Checked   bool               `json:"checked"`
		}{
			Index:     idx,
			Candidate: cand,
			Checked:   containsIndex(transcript.Checked, idx),
		}
		if err := enc.Encode(row); err != nil {
			return err
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}

func containsIndex(indices []int, idx int) bool {
	for _, i := range indices {
		if i == idx {
			return true
		}
	}
	return false
}
