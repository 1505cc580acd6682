package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanacaraka/aksara/internal/config"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the curated example sentences",
	Long: `List the curated Javanese example sentences. These are the same
examples offered by the interactive TUI; edit examples.yaml in the
config directory to customize them.`,
	RunE: runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	examples, err := config.LoadExamples(getConfigDir())
	if err != nil {
		return err
	}

	for i, ex := range examples {
		fmt.Printf("%d. %s\n   %s — %s\n", i+1, ex.Javanese, ex.Latin, ex.English)
	}
	return nil
}
