// Package cmd contains all CLI commands for the aksara tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hanacaraka/aksara/internal/config"
	"github.com/hanacaraka/aksara/internal/engine"
	"github.com/hanacaraka/aksara/internal/history"
	"github.com/hanacaraka/aksara/internal/tui"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aksara",
	Short: "Interactive Javanese script translator",
	Long: `Aksara translates Javanese script (hanacaraka) into Latin
transliteration and English, using a remote translation engine.

Beyond the translation itself it can show the engine's introspection
data: the token stream, the parse tree, the compiled bytecode, and a
morphological analysis of each word.

Running 'aksara' without arguments launches the interactive TUI.`,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runUnifiedTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/aksara)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose logging")
	rootCmd.PersistentFlags().String("endpoint", "", "translation engine endpoint")

	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "aksara"))
	}

	viper.SetEnvPrefix("AKSARA")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// initLogger loads the configuration and builds the logger. The log goes to
// a file so the TUI display stays clean.
func initLogger(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()

	var err error
	cfg, err = config.LoadConfig(configDir)
	if err != nil {
		cfg = config.DefaultConfig(configDir)
	}

	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0755); err == nil {
			zc.OutputPaths = []string{cfg.LogPath}
			zc.ErrorOutputPaths = []string{cfg.LogPath}
		}
	}

	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// engineEndpoint resolves the endpoint from flag, environment, then config.
func engineEndpoint() string {
	if ep := viper.GetString("endpoint"); ep != "" {
		return ep
	}
	return cfg.Endpoint
}

// openHistory opens the history store, or returns nil when unavailable.
func openHistory() *history.Store {
	if cfg.HistoryPath == "" {
		return nil
	}
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		logger.Warn("opening history store", zap.Error(err))
		return nil
	}
	return store
}

// runUnifiedTUI launches the unified TUI application.
func runUnifiedTUI(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	examples, err := config.LoadExamples(configDir)
	if err != nil {
		logger.Warn("loading examples", zap.Error(err))
		examples = config.DefaultExamples()
	}

	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	client := engine.NewClient(engineEndpoint())

	p := tea.NewProgram(
		tui.NewApp(cfg, configDir, client, store, examples, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
