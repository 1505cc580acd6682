package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive terminal UI.

Features:
  - Translate Javanese script to Latin and English
  - Inspect tokens, parse tree, bytecode, and morphology
  - Browse and re-run past translations
  - Copy debug output and export HTML reports

Controls:
  Enter   Translate
  Tab     Sidebar menu
  Ctrl+H  Help`,
	RunE: runUnifiedTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
