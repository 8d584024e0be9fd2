package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/hirelab/smarthire/internal"
)

// MarkdownExporter exports transcripts as readable Markdown
type MarkdownExporter struct{}

// Export exports a transcript to Markdown format
func (e *MarkdownExporter) Export(transcript *internal.Transcript, w io.Writer) error {
	title := transcript.Title
	if title == "" {
		title = "Untitled session"
	}
	if _, err := fmt.Fprintf(w, "# %s\n\n", title); err != nil {
		return err
	}
	if transcript.SessionID != "" {
		if _, err := fmt.Fprintf(w, "Session: `%s`\n\n", transcript.SessionID); err != nil {
			return err
		}
	}

	if len(transcript.Candidates) > 0 {
		if _, err := fmt.Fprintln(w, "## Candidates"); err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Sel | Name | Email | Score | Summary |")
		fmt.Fprintln(w, "|-----|------|-------|-------|---------|")

		checked := make(map[int]bool, len(transcript.Checked))
		for _, idx := range transcript.Checked {
			checked[idx] = true
		}

		for idx, cand := range transcript.Candidates {
			mark := " "
			if checked[idx] {
				mark = "x"
			}
			summary := strings.ReplaceAll(cand.Summary, "|", "\\|")
			fmt.Fprintf(w, "| [%s] | %s | %s | %d%% | %s |\n",
				mark, cand.Name, cand.DisplayEmail(), cand.Score, summary)
		}
		fmt.Fprintln(w)
	}

	if _, err := fmt.Fprintln(w, "## Transcript"); err != nil {
		return err
	}
	fmt.Fprintln(w)

	for _, msg := range transcript.Messages {
		actor := msg.Actor
		if actor != "" {
			actor = strings.ToUpper(actor[:1]) + actor[1:]
		}
		fmt.Fprintf(w, "**%s (%s):**\n\n%s\n\n", actor, msg.Channel, msg.Content)
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
