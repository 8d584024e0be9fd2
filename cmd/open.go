package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
)

var openCmd = &cobra.Command{
	Use:   "open <session-id>",
	Short: "Open a session and rebuild its state",
	Long: `Open a saved session: replays its event history to rebuild the chat
transcripts, the last candidate table (with previously selected rows marked),
and the scheduler's selection.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

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
		client := newClient(cfg)

		// Mark the session active before the history round-trip so the list
		// reflects the choice even if the fetch fails.
		state.CurrentSessionID = sessionID
		if err := store.SaveState(state); err != nil {
			return err
		}
		if sessions, listErr := client.ListSessions(cmd.Context()); listErr != nil {
			internal.LogError("Failed to refresh session list: %v", listErr)
		} else {
			displaySessionList(cmd.OutOrStdout(), sessions, sessionID)
		}

		reconciler := internal.NewReconciler(client, store, state)
		renderer := internal.NewTermRenderer(cmd.OutOrStdout())

		if err := reconciler.Rehydrate(cmd.Context(), sessionID, renderer); err != nil {
			return fmt.Errorf("failed to open session %s: %w", sessionID, err)
		}

		return store.SaveState(state)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
