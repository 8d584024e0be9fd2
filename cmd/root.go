package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirelab/smarthire/internal"
	"github.com/hirelab/smarthire/internal/api"
)

var (
	verbose  bool
	apiURL   string
	stateDir string
	version  string = "dev"
	commit   string = "unknown"
	date     string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smarthire",
	Short: "Terminal client for the SmartHire recruiting assistant",
	Long: `A CLI client for the SmartHire recruiting backend.

Upload resumes for analysis, chat with the analysis agent, review the scored
candidate table, pick candidates for scheduling, send interview invitations,
and run voice-driven mock interview turns, all against a running SmartHire
backend.

Quick Start:
  smarthire sessions                      # List saved sessions
  smarthire open <session-id>             # Reload a session's full state
  smarthire attach resume.pdf             # Queue a resume for analysis
  smarthire analyze -m "Senior Go dev"    # Analyze queued resumes
  smarthire select 0 2                    # Pick table rows for scheduling
  smarthire schedule --time 2026-09-01T10:00

State (current session, last table, selection records) persists between
invocations in a local store under ~/.smarthire.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides SMARTHIRE_API_URL)")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Local state directory (overrides SMARTHIRE_STATE_DIR)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig resolves configuration from environment, with flags winning.
func loadConfig() (*internal.Config, error) {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if stateDir != "" {
		cfg.StateDir = stateDir
	}
	return cfg, nil
}

// newClient builds the backend client for the resolved config.
func newClient(cfg *internal.Config) *api.Client {
	return api.NewClient(cfg.APIURL, cfg.Timeout)
}

// openStore opens the local state store for the resolved config.
func openStore(cfg *internal.Config) (*internal.StateStore, error) {
	return internal.OpenStateStore(cfg.StatePath())
}

// confirm asks a yes/no question on the command's input stream.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
