package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numkit/internal/input"
	"numkit/internal/logging"
	"numkit/internal/report"
	"numkit/internal/stats"
	"numkit/internal/watch"
)

var watchInput bool

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <fileWithData.txt>",
		Short: "Compute count, mean, median, mode, SD.P and Variance.S of a file of numbers",
		Long: `Reads one number per line and reports descriptive statistics.

Lines that are not numbers are reported and skipped; they still count toward
Count. Mode is #N/A when no value repeats. Results are also written to the
statistics results file.`,
		Args: exactArgs(1, "numkit stats <fileWithData.txt>"),
		RunE: runStats,
	}
	cmd.Flags().BoolVar(&watchInput, "watch", false, "Recompute whenever the input file changes")
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	if err := computeStatistics(out, path); err != nil {
		return err
	}
	if !watchInput {
		return nil
	}
	return watchFile(cmd.Context(), path, func(ctx context.Context) error {
		if err := computeStatistics(out, path); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return err
		}
		return nil
	})
}

func computeStatistics(out io.Writer, path string) error {
	start := time.Now()
	log := logging.Get(logging.CategoryStats)

	lines, err := input.ReadFile(path)
	if err != nil {
		log.Error("reading input", zap.String("file", path), zap.Error(err))
		return err
	}

	sample := stats.Parse(lines)
	for _, w := range sample.Warnings {
		fmt.Fprintf(out, "Error: Invalid numeric data: '%s'\n", w.Token)
		log.Warn("skipping invalid line",
			zap.String("file", path), zap.Int("line", w.Line), zap.String("token", w.Token))
	}

	summary, err := stats.Compute(sample.Values)
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			log.Error("empty dataset", zap.String("file", path), zap.Int("lines", sample.Count))
		}
		return err
	}
	log.Debug("computed statistics",
		zap.Int("count", sample.Count), zap.Int("valid", summary.N), zap.Bool("has_mode", summary.HasMode))

	rep := stats.Report(path, sample.Count, summary, time.Since(start))
	return report.Emit(out, rep, cfg.ResultPath(cfg.Results.Statistics), true)
}

// watchFile blocks, calling rerun after every change to path, until ctx is done.
func watchFile(ctx context.Context, path string, rerun watch.RunFunc) error {
	debounce, err := cfg.GetWatchDebounce()
	if err != nil {
		return err
	}
	w, err := watch.New(path, debounce, rerun)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}
