package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
)

var (
	attachRemove int
)

var fileChipStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("203"))

var attachCmd = &cobra.Command{
	Use:   "attach [file...]",
	Short: "Manage the resume upload queue",
	Long: `Queue resume files for the next analyze call. Without arguments the
current queue is printed. The queue is held locally until a successful
analysis consumes it.`,
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

		if cmd.Flags().Changed("rm") {
			if attachRemove < 0 || attachRemove >= len(state.Attachments) {
				return &internal.ValidationError{
					Msg: fmt.Sprintf("no queued file at index %d", attachRemove),
				}
			}
			state.Attachments = append(state.Attachments[:attachRemove], state.Attachments[attachRemove+1:]...)
		}

		for _, arg := range args {
			path, err := filepath.Abs(arg)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", arg, err)
			}
			if _, err := os.Stat(path); err != nil {
				return &internal.ValidationError{Msg: fmt.Sprintf("file not found: %s", arg)}
			}
			state.Attachments = append(state.Attachments, path)
		}

		if err := store.SaveState(state); err != nil {
			return err
		}

		displayAttachments(cmd, state.Attachments)
		return nil
	},
}

func displayAttachments(cmd *cobra.Command, attachments []string) {
	out := cmd.OutOrStdout()
	if len(attachments) == 0 {
		fmt.Fprintln(out, "No resumes queued.")
		return
	}
	for idx, path := range attachments {
		fmt.Fprintf(out, "%d  %s\n", idx, fileChipStyle.Render(filepath.Base(path)))
	}
}

func init() {
	rootCmd.AddCommand(attachCmd)
	attachCmd.Flags().IntVar(&attachRemove, "rm", -1, "Remove the queued file at this index")
}
