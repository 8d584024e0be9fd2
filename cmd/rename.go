package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
)

var renameTitle string

var renameCmd = &cobra.Command{
	Use:   "rename <session-id>",
	Short: "Rename a saved session",
	Long: `Rename a saved session. The list reflects the new title only after
the backend accepts it; nothing is updated optimistically.`,
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

		sessions, err := client.ListSessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		oldTitle := ""
		found := false
		for _, session := range sessions {
			if session.ID == sessionID {
				oldTitle = session.Title
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("session not found: %s", sessionID)
		}

		newTitle := strings.TrimSpace(renameTitle)
		if newTitle == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Rename chat to [%s]: ", oldTitle)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, readErr := reader.ReadString('\n')
			if readErr != nil {
				return nil
			}
			newTitle = strings.TrimSpace(answer)
		}

		if newTitle == "" || newTitle == oldTitle {
			return nil
		}

		if err := client.RenameSession(cmd.Context(), sessionID, newTitle); err != nil {
			internal.LogError("Failed to rename session %s: %v", sessionID, err)
			return fmt.Errorf("error renaming session: %w", err)
		}

		sessions, err = client.ListSessions(cmd.Context())
		if err != nil {
			internal.LogError("Failed to refresh session list: %v", err)
			return nil
		}
		displaySessionList(cmd.OutOrStdout(), sessions, state.CurrentSessionID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().StringVar(&renameTitle, "title", "", "New session title (prompted for when omitted)")
}
