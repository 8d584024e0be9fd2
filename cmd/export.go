package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
	"github.com/hirelab/smarthire/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a session transcript",
	Long: `Rehydrate a session (the current one when no id is given) and export
its transcript and candidate table in the chosen format.`,
	Args: cobra.MaximumNArgs(1),
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

		sessionID := state.CurrentSessionID
		if len(args) == 1 {
			sessionID = args[0]
		}
		if sessionID == "" {
			return &internal.ValidationError{Msg: "no session to export; open one or pass its id"}
		}

		exporter, err := export.GetExporter(exportFormat)
		if err != nil {
			return err
		}

		client := newClient(cfg)

		title := ""
		if sessions, listErr := client.ListSessions(cmd.Context()); listErr != nil {
			internal.LogWarn("Failed to resolve session title: %v", listErr)
		} else {
			for _, session := range sessions {
				if session.ID == sessionID {
					title = session.Title
					break
				}
			}
		}

		// Replay into a recorder instead of the terminal. The export works
		// from a scratch state so it never disturbs the ambient one.
		scratch := store.LoadState()
		recorder := internal.NewTranscriptRecorder()
		reconciler := internal.NewReconciler(client, store, scratch)
		if err := reconciler.Rehydrate(cmd.Context(), sessionID, recorder); err != nil {
			return fmt.Errorf("failed to export session %s: %w", sessionID, err)
		}

		transcript := recorder.Transcript
		transcript.SessionID = sessionID
		transcript.Title = title

		out := cmd.OutOrStdout()
		if exportOutput != "" {
			file, createErr := os.Create(exportOutput)
			if createErr != nil {
				return fmt.Errorf("failed to create output file: %w", createErr)
			}
			defer file.Close()
			out = file
		}

		if err := exporter.Export(&transcript, out); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		if exportOutput != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported session %s to %s\n", sessionID, exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "md", "Export format: json, jsonl, md, yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (stdout when omitted)")
}
