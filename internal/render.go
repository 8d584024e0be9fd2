package internal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// InterviewGreetingText seeds the interview view whenever it is cleared.
const InterviewGreetingText = "Hello! Record your answer to begin the interview. I'll ask questions based on your resume."

// WelcomeText is the analysis view's new-chat baseline message.
const WelcomeText = "Welcome to SmartHire. Attach resumes with `smarthire attach`, then tell me what you are looking for."

// Renderer receives view updates from the reconciler, strictly in replay
// order. Implementations must not reorder or batch events.
type Renderer interface {
	// ClearViews resets both transcript views to empty.
	ClearViews()
	// InterviewGreeting re-seeds the interview view with its greeting bubble.
	InterviewGreeting()
	// AnalysisMessage renders a plain analysis-chat message ("user" or "bot").
	AnalysisMessage(role, content string)
	// InterviewBubble renders an interview-style bubble ("user" or "ai").
	InterviewBubble(role, content string)
	// CandidateTable renders an analysis table with the given rows pre-checked.
	CandidateTable(table []Candidate, checked []int)
	// SchedulerChips renders the scheduler's selected-candidate summary.
	SchedulerChips(selected []Candidate)
	// SchedulerLogs renders the backend's invitation delivery log lines.
	SchedulerLogs(logs []string)
}

var (
	userTurnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	botTurnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true)

	turnBodyStyle = lipgloss.NewStyle().
			Padding(0, 2)

	tableHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	emptyChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	scoreHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	scoreMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	scoreLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	logOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	logFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// TermRenderer renders the three views as styled terminal output.
type TermRenderer struct {
	out io.Writer
}

// NewTermRenderer creates a renderer writing to out.
func NewTermRenderer(out io.Writer) *TermRenderer {
	return &TermRenderer{out: out}
}

func (r *TermRenderer) ClearViews() {
	// A terminal transcript dump has nothing to clear; each command starts
	// from an empty screen region.
}

func (r *TermRenderer) InterviewGreeting() {
	r.InterviewBubble("ai", InterviewGreetingText)
}

func (r *TermRenderer) AnalysisMessage(role, content string) {
	label := botTurnStyle.Render("AI")
	if role == RoleUser {
		label = userTurnStyle.Render("You")
	}
	fmt.Fprintln(r.out, label)
	fmt.Fprintln(r.out, turnBodyStyle.Render(content))
	fmt.Fprintln(r.out)
}

func (r *TermRenderer) InterviewBubble(role, content string) {
	label := botTurnStyle.Render("AI ◆")
	if role == RoleUser {
		label = userTurnStyle.Render("You ◆")
	}
	fmt.Fprintln(r.out, label)
	fmt.Fprintln(r.out, turnBodyStyle.Render(content))
	fmt.Fprintln(r.out)
}

func (r *TermRenderer) CandidateTable(table []Candidate, checked []int) {
	fmt.Fprintln(r.out, "Here is the analysis based on your criteria:")
	fmt.Fprintln(r.out)

	checkedSet := make(map[int]bool, len(checked))
	for _, idx := range checked {
		checkedSet[idx] = true
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, tableHeadStyle.Render("#")+"\t"+
		tableHeadStyle.Render("Sel")+"\t"+
		tableHeadStyle.Render("Name")+"\t"+
		tableHeadStyle.Render("Email")+"\t"+
		tableHeadStyle.Render("Score")+"\t"+
		tableHeadStyle.Render("Summary"))

	for idx, cand := range table {
		mark := " "
		if checkedSet[idx] {
			mark = checkedStyle.Render("✓")
		}

		summary := cand.Summary
		if len(summary) > 60 {
			summary = summary[:57] + "..."
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.Itoa(idx), mark, cand.Name, cand.DisplayEmail(),
			renderScore(cand.Score), summary)
	}
	_ = w.Flush()
	fmt.Fprintln(r.out)
}

func (r *TermRenderer) SchedulerChips(selected []Candidate) {
	if len(selected) == 0 {
		fmt.Fprintln(r.out, emptyChipStyle.Render("No candidates selected from the analysis table."))
		fmt.Fprintln(r.out)
		return
	}

	names := make([]string, 0, len(selected))
	for _, cand := range selected {
		names = append(names, chipStyle.Render("["+cand.Name+"]"))
	}
	fmt.Fprintln(r.out, "Scheduler: "+strings.Join(names, " "))
	fmt.Fprintln(r.out)
}

func (r *TermRenderer) SchedulerLogs(logs []string) {
	for _, line := range logs {
		if strings.Contains(line, "✅") {
			fmt.Fprintln(r.out, logOKStyle.Render(line))
		} else {
			fmt.Fprintln(r.out, logFailStyle.Render(line))
		}
	}
}

func renderScore(score int) string {
	text := strconv.Itoa(score) + "%"
	switch BandForScore(score) {
	case ScoreHigh:
		return scoreHighStyle.Render(text)
	case ScoreMid:
		return scoreMidStyle.Render(text)
	default:
		return scoreLowStyle.Render(text)
	}
}
