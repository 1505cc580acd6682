package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanacaraka/aksara/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize aksara configuration",
	Long: `Initialize the aksara configuration files in your config directory.

This creates:
  - config.yaml    (engine endpoint, debug default, file paths)
  - examples.yaml  (curated example sentences for the TUI)

Edit these files to point at your translation engine and to add your
own example sentences.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	if _, err := os.Stat(configDir); err == nil && !force {
		if _, err := os.Stat(configDir + "/config.yaml"); err == nil {
			return fmt.Errorf("configuration already exists in %s\nUse --force to overwrite", configDir)
		}
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fmt.Printf("Initializing aksara configuration in %s\n\n", configDir)

	if err := config.SaveConfig(configDir, config.DefaultConfig(configDir)); err != nil {
		return err
	}
	fmt.Println("  Created config.yaml")

	if err := config.SaveExamples(configDir, config.DefaultExamples()); err != nil {
		return err
	}
	fmt.Println("  Created examples.yaml")

	fmt.Println()
	fmt.Println("Configuration initialized!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Set the engine endpoint in config.yaml")
	fmt.Println("  2. Run 'aksara' to launch the interactive TUI")
	return nil
}
