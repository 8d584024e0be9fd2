package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a saved session",
	Long: `Delete a saved session after confirmation. Deleting the currently
active session resets the client to its new-chat baseline.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		if !deleteYes && !confirm(cmd, "Delete this chat?") {
			return nil
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
		client := newClient(cfg)

		if err := client.DeleteSession(cmd.Context(), sessionID); err != nil {
			internal.LogError("Failed to delete session %s: %v", sessionID, err)
			return fmt.Errorf("error deleting session: %w", err)
		}

		if sessionID == state.CurrentSessionID {
			return startNewChat(cmd, client, state, store)
		}

		sessions, err := client.ListSessions(cmd.Context())
		if err != nil {
			internal.LogError("Failed to refresh session list: %v", err)
			return nil
		}
		displaySessionList(cmd.OutOrStdout(), sessions, state.CurrentSessionID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
