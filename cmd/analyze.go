package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
	"github.com/hirelab/smarthire/internal/api"
)

var analyzeMessage string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [message]",
	Short: "Send queued resumes and a job description for analysis",
	Long: `Send the queued resume files together with a job description (or a
follow-up chat message) to the analysis agent. A scored candidate table or a
chat reply comes back; the first call of a conversation creates a session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(analyzeMessage)
		if text == "" {
			text = strings.TrimSpace(strings.Join(args, " "))
		}

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

		if text == "" && len(state.Attachments) == 0 {
			return &internal.ValidationError{Msg: "type a message or attach resumes first"}
		}

		renderer := internal.NewTermRenderer(cmd.OutOrStdout())
		if text != "" {
			renderer.AnalysisMessage(internal.RoleUser, text)
		}

		jobDescription := text
		if jobDescription == "" {
			jobDescription = "Analyze these resumes"
		}

		client := newClient(cfg)
		resp, err := client.Analyze(cmd.Context(), api.AnalyzeRequest{
			JobDescription: jobDescription,
			SessionID:      state.CurrentSessionID,
			ResumePaths:    state.Attachments,
		})
		if err != nil {
			renderer.AnalysisMessage(internal.RoleBot, "❌ Error connecting to the server.")
			return fmt.Errorf("analyze failed: %w", err)
		}

		if resp.SessionID != "" {
			state.CurrentSessionID = resp.SessionID
			if sessions, listErr := client.ListSessions(cmd.Context()); listErr != nil {
				internal.LogError("Failed to refresh session list: %v", listErr)
			} else {
				displaySessionList(cmd.OutOrStdout(), sessions, state.CurrentSessionID)
			}
		}

		switch {
		// A present results array wins even when empty: it still replaces
		// the table and consumes the queue.
		case resp.Results != nil:
			state.Analysis = resp.Results
			state.Selected = nil
			state.Attachments = nil
			renderer.CandidateTable(resp.Results, nil)
		case resp.Message != "":
			renderer.AnalysisMessage(internal.RoleBot, resp.Message)
		default:
			renderer.AnalysisMessage(internal.RoleBot, "Sorry, I couldn't analyze the resumes. Please try again.")
		}

		return store.SaveState(state)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeMessage, "message", "m", "", "Job description or chat message")
}
