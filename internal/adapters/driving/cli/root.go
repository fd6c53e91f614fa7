// Package cli provides the cobra command tree for pacer.
// It is a driving adapter: commands call core services through driving ports
// injected from main with the Set* functions.
package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pacer/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Persistent flags.
var (
	verbose bool
	logFile string
)

// environment holds overrides read from PACER_* variables.
var environment Environment

// Environment holds settings read from the process environment.
type Environment struct {
	// ConfigDir overrides the configuration directory (~/.pacer).
	ConfigDir string `env:"PACER_CONFIG_DIR"`

	// Verbose enables debug logging when --verbose is not given.
	Verbose bool `env:"PACER_VERBOSE"`

	// LogFile is where read writes its log when --log-file is not given.
	LogFile string `env:"PACER_LOG_FILE"`
}

// LoadEnvironment parses PACER_* environment variables.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// SetEnvironment sets the environment used as flag defaults.
func SetEnvironment(e Environment) {
	environment = e
}

var rootCmd = &cobra.Command{
	Use:   "pacer",
	Short: "Read documents at a steady pace",
	Long: `pacer is a terminal document viewer with an auto-advance reading mode.

Pick how many seconds to spend on each page, and pacer switches to a
distraction-free full-screen view and turns the pages for you until the
document ends or you leave full screen.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if !cmd.Flags().Changed("verbose") {
			verbose = environment.Verbose
		}
		if !cmd.Flags().Changed("log-file") && environment.LogFile != "" {
			logFile = environment.LogFile
		}
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file while reading")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
