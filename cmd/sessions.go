package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
)

var (
	// Styles
	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	sessionIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	sessionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved sessions",
	Long:  `List all saved analysis sessions from the backend. The currently active session is marked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		state := store.LoadState()

		sessions, err := newClient(cfg).ListSessions(cmd.Context())
		if err != nil {
			internal.LogError("Failed to load sessions: %v", err)
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		displaySessionList(cmd.OutOrStdout(), sessions, state.CurrentSessionID)
		return nil
	},
}

func displaySessionList(out io.Writer, sessions []internal.Session, activeID string) {
	if len(sessions) == 0 {
		fmt.Fprintln(out, listHeaderStyle.Render("No sessions found"))
		return
	}

	header := listHeaderStyle.Render(fmt.Sprintf("Found %d session(s)", len(sessions)))
	fmt.Fprintln(out, header)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, columnStyle.Render(" ")+"\t"+columnStyle.Render("ID")+"\t"+columnStyle.Render("Title"))
	fmt.Fprintln(w, strings.Repeat("─", 60))

	for _, session := range sessions {
		marker := " "
		if session.ID == activeID {
			marker = activeStyle.Render("●")
		}

		title := session.Title
		if title == "" {
			title = "Untitled"
		}
		if len(title) > 50 {
			title = title[:47] + "..."
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", marker, sessionIDStyle.Render(session.ID), sessionTitleStyle.Render(title))
	}

	_ = w.Flush()
	fmt.Fprintln(out)
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
