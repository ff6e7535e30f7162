package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"lima/registry"
)

var (
	// Global flags
	logLevel string
	debug    bool

	logger = zerolog.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lima",
	Short: "Dump objects through declared schemas",
	Long: `lima turns objects into plain JSON or YAML through schemas.

Schemas are declared in YAML declaration files:
  lima dump --schemas decl.yaml --schema OrderSchema order.json
  lima scaffold --package lima/store --type Order > decl.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(cmd.ErrOrStderr(), logLevel, debug)
		if err != nil {
			return err
		}

		registry.Global.SetLogger(logger)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging and dumps of parsed declarations")
}

func newLogger(out io.Writer, levelStr string, debug bool) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level: %w", err)
	}

	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
