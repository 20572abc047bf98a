package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numkit/internal/input"
	"numkit/internal/logging"
	"numkit/internal/report"
	"numkit/internal/wordfreq"
)

func newWordCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wordcount <fileWithData.txt>",
		Short: "Count distinct words and their frequencies",
		Args:  exactArgs(1, "numkit wordcount <fileWithData.txt>"),
		RunE:  runWordCount,
	}
}

func runWordCount(cmd *cobra.Command, args []string) error {
	start := time.Now()
	path := args[0]
	out := cmd.OutOrStdout()
	log := logging.Get(logging.CategoryWords)

	lines, err := input.ReadFile(path)
	if err != nil {
		log.Error("reading input", zap.String("file", path), zap.Error(err))
		return err
	}

	freq, err := wordfreq.Count(lines)
	if errors.Is(err, wordfreq.ErrNoWords) {
		fmt.Fprintln(out, "Info: File is empty or contains no valid words.")
		return nil
	}
	if err != nil {
		return err
	}
	log.Debug("counted words", zap.Int("total", freq.Total()), zap.Int("distinct", freq.Distinct()))

	resultPath := cfg.ResultPath(cfg.Results.WordCount)
	if err := report.Emit(out, freq.Report(time.Since(start)), resultPath, true); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nResults saved to %s\n", resultPath)
	return nil
}
