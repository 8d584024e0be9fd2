package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete ALL sessions on the backend",
	Long: `Delete all chat history server-side and reset the client to its
new-chat baseline. This is irreversible; nothing is touched if the backend
call fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes && !confirm(cmd, "Are you sure? This will delete ALL chat history permanently.") {
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

		if err := client.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		return startNewChat(cmd, client, state, store)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
