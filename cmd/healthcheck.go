package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check configuration, local state, and backend reachability",
	Long: `Check the health of smarthire by verifying:
  • Configuration resolution
  • Local state store accessibility
  • Backend reachability
  • Session count

This command is useful for debugging connectivity and state issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sectionStyle.Render("SmartHire Health Check"))
		fmt.Fprintln(out)

		fmt.Fprintln(out, infoStyle.Render("Step 1: Resolving configuration..."))
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to resolve configuration:"), err)
			return err
		}
		fmt.Fprintln(out, successStyle.Render("✅ Configuration resolved"))
		fmt.Fprintf(out, "   API URL: %s\n   State dir: %s\n", cfg.APIURL, cfg.StateDir)
		fmt.Fprintln(out)

		fmt.Fprintln(out, infoStyle.Render("Step 2: Opening state store..."))
		store, err := openStore(cfg)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to open state store:"), err)
			return err
		}
		defer store.Close()
		state := store.LoadState()
		fmt.Fprintln(out, successStyle.Render("✅ State store accessible"))
		if state.HasSession() {
			fmt.Fprintf(out, "   Active session: %s\n", state.CurrentSessionID)
		} else {
			fmt.Fprintln(out, "   No active session")
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, infoStyle.Render("Step 3: Checking backend..."))
		sessions, err := newClient(cfg).ListSessions(cmd.Context())
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Backend unreachable:"), err)
			return err
		}
		fmt.Fprintln(out, successStyle.Render("✅ Backend reachable"))
		fmt.Fprintf(out, "   %d session(s) saved\n", len(sessions))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
