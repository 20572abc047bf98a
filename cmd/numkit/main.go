package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numkit/internal/config"
	"numkit/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	resultsDir string

	// Resolved configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// usageError is returned when a command receives the wrong positional arguments.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "usage: " + e.usage
}

// exactArgs requires n positional arguments and reports usage otherwise.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{usage: usage}
		}
		return nil
	}
}

// newRootCmd builds the command tree. Flag variables are reset to their
// defaults on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numkit",
		Short: "Small numeric and text utilities",
		Long: `numkit bundles small file-driven utilities:

  stats      descriptive statistics of a list of numbers
  convert    two's complement binary/hex conversion
  wordcount  distinct word frequencies
  sales      total cost of sales against a price catalogue
  arraysum   chunked parallel element-wise array sum
  hotel      reservation model walkthrough

Every report is printed and, where noted, also written to the results directory.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", "", "Directory for results files (overrides config)")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newWordCountCmd())
	rootCmd.AddCommand(newSalesCmd())
	rootCmd.AddCommand(newArraySumCmd())
	rootCmd.AddCommand(newHotelCmd())
	return rootCmd
}

// setup resolves configuration and initializes logging before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if _, err := logging.Initialize(logging.Options{Level: level, Format: cfg.Logging.Format}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logging.Get(logging.CategoryBoot)
	logger.Debug("configuration resolved",
		zap.String("config", configPath),
		zap.String("results_dir", cfg.ResultsDir),
		zap.Int("bit_width", cfg.Codec.BitWidth))
	return nil
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, out io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(out, "Usage: %s\n", ue.usage)
		return 2
	}
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}
