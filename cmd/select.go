package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
)

var selectCmd = &cobra.Command{
	Use:   "select <index...>",
	Short: "Pick candidate rows for the scheduler",
	Long: `Commit a selection of rows from the last analysis table. The chosen
candidates move into the scheduler view; when a session is active the row
indices are also persisted so reopening the session restores the checks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indices := make([]int, 0, len(args))
		for _, arg := range args {
			idx, err := strconv.Atoi(arg)
			if err != nil {
				return &internal.ValidationError{Msg: "row indices must be integers: " + arg}
			}
			indices = append(indices, idx)
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

		if err := internal.CommitSelection(state, store, indices); err != nil {
			return err
		}

		internal.NewTermRenderer(cmd.OutOrStdout()).SchedulerChips(state.Selected)
		return store.SaveState(state)
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
