// Package cli wires the cobra command surface for the closeguard binary.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"closeguard/internal/app"
	"closeguard/internal/config"
)

var (
	flagConfigPath string
	flagAction     string
	flagConfirmKey string
	flagCancelKey  string
	flagTabs       int
	flagPanes      int

	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets build metadata from ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

var rootCmd = &cobra.Command{
	Use:   "closeguard",
	Short: "Confirmation overlay for destructive actions in a terminal workspace",
	Long: `closeguard is a confirmation overlay for quit-session, close-pane and
close-tab actions. It resolves the pane or tab that was focused before the
overlay opened and only ever targets that, no matter how late the host's
state notifications arrive.

This binary runs the overlay inside a small simulated workspace so the
resolution and confirmation flow can be exercised end to end.`,
	RunE: runOverlay,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("closeguard %s\n  commit: %s\n  built:  %s\n", buildVersion, buildCommit, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file (default: ~/.closeguard/config.yaml)")
	rootCmd.Flags().StringVar(&flagAction, "action", "", "Action to confirm: quit_session, close_pane or close_tab")
	rootCmd.Flags().StringVar(&flagConfirmKey, "confirm-key", "", "Confirm key binding (e.g. Enter, Ctrl+y)")
	rootCmd.Flags().StringVar(&flagCancelKey, "cancel-key", "", "Cancel key binding (e.g. Esc)")
	rootCmd.Flags().IntVar(&flagTabs, "tabs", 3, "Tabs in the simulated workspace")
	rootCmd.Flags().IntVar(&flagPanes, "panes", 2, "Panes per tab in the simulated workspace")

	rootCmd.AddCommand(versionCmd)
}

// options assembles the host-style key/value option map from flags. Flags
// override the config file the same way host options override it.
func options() map[string]string {
	opts := map[string]string{}
	if flagAction != "" {
		opts["action"] = flagAction
	}
	if flagConfirmKey != "" {
		opts["confirm_key"] = flagConfirmKey
	}
	if flagCancelKey != "" {
		opts["cancel_key"] = flagCancelKey
	}
	return opts
}

func runOverlay(cmd *cobra.Command, args []string) error {
	cfg := config.Load(flagConfigPath).WithOptions(options())
	logger := newLogger()

	h := app.NewSimHost(flagTabs, flagPanes, logger)
	model := app.NewModel(cfg, h, logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
