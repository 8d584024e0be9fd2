package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
)

var scheduleTime string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Send interview invitations to the selected candidates",
	Long: `Send interview invitations for the candidates currently in the
scheduler, at the given start time. The backend's per-candidate delivery log
is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if scheduleTime == "" {
			return &internal.ValidationError{Msg: "please provide a start time with --time"}
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
		if len(state.Selected) == 0 {
			return &internal.ValidationError{Msg: "no candidates selected; run `smarthire select` first"}
		}

		renderer := internal.NewTermRenderer(cmd.OutOrStdout())
		renderer.SchedulerChips(state.Selected)

		logs, err := newClient(cfg).Schedule(cmd.Context(), state.Selected, scheduleTime)
		if err != nil {
			return fmt.Errorf("failed to send invitations: %w", err)
		}

		renderer.SchedulerLogs(logs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().StringVar(&scheduleTime, "time", "", "Interview start time, e.g. 2026-09-01T10:00")
}
