package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
	"github.com/hirelab/smarthire/internal/api"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new chat",
	Long: `Clear the active session, the last analysis table, the resume queue,
and the scheduler selection, returning all views to their baseline.`,
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
		return startNewChat(cmd, newClient(cfg), state, store)
	},
}

// startNewChat clears all derived state and re-renders the baselines.
func startNewChat(cmd *cobra.Command, client *api.Client, state *internal.SessionState, store *internal.StateStore) error {
	state.Reset()
	if err := store.SaveState(state); err != nil {
		return err
	}

	renderer := internal.NewTermRenderer(cmd.OutOrStdout())
	renderer.AnalysisMessage(internal.RoleBot, internal.WelcomeText)
	renderer.SchedulerChips(nil)
	renderer.InterviewGreeting()

	sessions, err := client.ListSessions(cmd.Context())
	if err != nil {
		internal.LogError("Failed to refresh session list: %v", err)
		return nil
	}
	displaySessionList(cmd.OutOrStdout(), sessions, "")
	return nil
}

func init() {
	rootCmd.AddCommand(newCmd)
}
