package internal

// Transcript is a normalized capture of a rehydrated session, suitable for
// export and for asserting replay behavior in tests.
type Transcript struct {
	SessionID  string            `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Title      string            `json:"title,omitempty" yaml:"title,omitempty"`
	Messages   []TranscriptEntry `json:"messages" yaml:"messages"`
	Candidates []Candidate       `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	Checked    []int             `json:"checked,omitempty" yaml:"checked,omitempty"`
	Selected   []Candidate       `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// TranscriptEntry is one rendered message in replay order.
type TranscriptEntry struct {
	Channel string `json:"channel" yaml:"channel"` // "analysis" or "interview"
	Actor   string `json:"actor" yaml:"actor"`     // "user", "bot", "ai"
	Content string `json:"content" yaml:"content"`
}

// Transcript channels.
const (
	ChannelAnalysis  = "analysis"
	ChannelInterview = "interview"
)

// TranscriptRecorder is a Renderer that accumulates view updates into a
// Transcript instead of drawing them.
type TranscriptRecorder struct {
	Transcript Transcript
	Logs       []string
}

// NewTranscriptRecorder creates an empty recorder.
func NewTranscriptRecorder() *TranscriptRecorder {
	return &TranscriptRecorder{}
}

func (r *TranscriptRecorder) ClearViews() {
	r.Transcript.Messages = nil
	r.Transcript.Candidates = nil
	r.Transcript.Checked = nil
	r.Transcript.Selected = nil
}

func (r *TranscriptRecorder) InterviewGreeting() {
	r.InterviewBubble("ai", InterviewGreetingText)
}

func (r *TranscriptRecorder) AnalysisMessage(role, content string) {
	r.Transcript.Messages = append(r.Transcript.Messages, TranscriptEntry{
		Channel: ChannelAnalysis,
		Actor:   role,
		Content: content,
	})
}

func (r *TranscriptRecorder) InterviewBubble(role, content string) {
	r.Transcript.Messages = append(r.Transcript.Messages, TranscriptEntry{
		Channel: ChannelInterview,
		Actor:   role,
		Content: content,
	})
}

func (r *TranscriptRecorder) CandidateTable(table []Candidate, checked []int) {
	r.Transcript.Candidates = table
	r.Transcript.Checked = checked
}

func (r *TranscriptRecorder) SchedulerChips(selected []Candidate) {
	r.Transcript.Selected = selected
}

func (r *TranscriptRecorder) SchedulerLogs(logs []string) {
	r.Logs = append(r.Logs, logs...)
}
