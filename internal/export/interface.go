package export

import (
	"fmt"
	"io"

	"github.com/hirelab/smarthire/internal"
)

// Exporter exports a rehydrated session transcript in a specific format
type Exporter interface {
	// Export writes the transcript to w
	Export(transcript *internal.Transcript, w io.Writer) error
	// Extension returns the file extension for this format
	Extension() string
}

// GetExporter returns an exporter for the given format
func GetExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
