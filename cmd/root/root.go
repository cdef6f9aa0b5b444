// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"github.com/IqbalNugrahaa/HappiestStore/internal/config"
	"github.com/IqbalNugrahaa/HappiestStore/internal/container"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Catalog  string
	Format   string
	Config   string
	LogLevel string
}

var (
	// Log is the shared logger for commands. It is replaced once the
	// configuration has been loaded.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded by PersistentPreRunE.
	AppConfig *config.Config

	// AppContainer holds the components built from AppConfig.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "happiest-ingest",
		Short: "A CLI tool to import store transaction spreadsheets and match them to the product catalog.",
		Long: `happiest-ingest parses transaction spreadsheets exported as CSV, tolerating
mixed delimiters, multi-line cells and broken thousands separators. Rows are
matched against the product catalog by fuzzy name similarity and turned into
the bulk transaction payload.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to happiest-ingest!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup(SharedFlags)
		},
		SilenceUsage: true,
	}

	// SharedFlags holds the values of the persistent flags.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (or directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for batch); stdout when empty")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Catalog, "catalog", "c", "", "Product catalog file (.yaml, .yml or .csv)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json or csv")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Config, "config", "", "Config file (default searches config.yaml)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
}

// Setup loads .env and the configuration, applies flag overrides and builds
// the application container.
func Setup(flags CommonFlags) error {
	envFile, err := config.LoadEnv()
	if err != nil {
		config.Warnf("failed to load %s: %v", envFile, err)
	}

	cfg, err := config.InitializeConfig(flags.Config)
	if err != nil {
		return err
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.Format != "" {
		cfg.Output.Format = flags.Format
	}
	if flags.Catalog != "" {
		cfg.Catalog.File = flags.Catalog
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	if envFile != "" {
		Log.Debug("Environment loaded", logging.F(logging.FieldFile, envFile))
	}
	return nil
}

// GetLogger returns the configured logger.
func GetLogger() logging.Logger {
	return Log
}

// GetContainer returns the application container, or nil before Setup ran.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the loaded configuration, or nil before Setup ran.
func GetConfig() *config.Config {
	return AppConfig
}
