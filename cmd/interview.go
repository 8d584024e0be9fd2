package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
	"github.com/hirelab/smarthire/internal/api"
)

var (
	interviewAudio      string
	interviewJobDesc    string
	interviewResumeText string
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run one mock-interview turn from a recorded answer",
	Long: `Send a recorded audio answer for transcription, then get the
interviewer's next question. The spoken reply is saved as an MP3 in the
state directory; play it with your audio player of choice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if interviewAudio == "" {
			return &internal.ValidationError{Msg: "please provide a recorded answer with --audio"}
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
		renderer := internal.NewTermRenderer(cmd.OutOrStdout())

		text, err := client.Transcribe(cmd.Context(), interviewAudio)
		if err != nil {
			return fmt.Errorf("transcription failed: %w", err)
		}
		renderer.InterviewBubble(internal.RoleUser, text)

		reply, err := client.InterviewTurn(cmd.Context(), api.InterviewRequest{
			UserText:   text,
			SessionID:  state.CurrentSessionID,
			JobDesc:    interviewJobDesc,
			ResumeText: interviewResumeText,
		})
		if err != nil {
			return fmt.Errorf("interview turn failed: %w", err)
		}

		if reply.SessionID != "" {
			state.CurrentSessionID = reply.SessionID
		}

		renderer.InterviewBubble("ai", reply.AIText)

		if reply.AudioBase64 != "" {
			audio, decErr := base64.StdEncoding.DecodeString(reply.AudioBase64)
			if decErr != nil {
				internal.LogWarn("Failed to decode reply audio: %v", decErr)
			} else {
				path := filepath.Join(cfg.StateDir, fmt.Sprintf("reply_%d.mp3", time.Now().Unix()))
				if writeErr := os.WriteFile(path, audio, 0644); writeErr != nil {
					internal.LogWarn("Failed to save reply audio: %v", writeErr)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Spoken reply saved to %s\n", path)
				}
			}
		}

		return store.SaveState(state)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)
	interviewCmd.Flags().StringVar(&interviewAudio, "audio", "", "Path to the recorded audio answer")
	interviewCmd.Flags().StringVar(&interviewJobDesc, "job-desc", "General Software Engineer", "Job description for the interviewer")
	interviewCmd.Flags().StringVar(&interviewResumeText, "resume-text", "", "Resume text to ground the interviewer's questions")
}
