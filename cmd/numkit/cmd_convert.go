package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numkit/internal/input"
	"numkit/internal/logging"
	"numkit/internal/report"
	"numkit/internal/twos"
)

var (
	bitWidth       int
	convertWorkers int
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <fileWithData.txt>",
		Short: "Convert numbers to two's complement binary and hexadecimal",
		Long: `Reads one number per line and prints its two's complement binary and
hexadecimal forms at a fixed bit width (default 32, see codec.bit_width).

Values outside the signed range of the width are reported and wrapped.
Tokens that are not numbers are written as #VALUE!.`,
		Args: exactArgs(1, "numkit convert <fileWithData.txt>"),
		RunE: runConvert,
	}
	cmd.Flags().IntVar(&bitWidth, "bits", 0, "Bit width (default from config)")
	cmd.Flags().IntVar(&convertWorkers, "workers", 0, "Parallel conversions (default from config)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	start := time.Now()
	path := args[0]
	out := cmd.OutOrStdout()
	log := logging.Get(logging.CategoryCodec)

	bits := cfg.Codec.BitWidth
	if cmd.Flags().Changed("bits") {
		bits = bitWidth
	}
	workers := cfg.Codec.Workers
	if convertWorkers > 0 {
		workers = convertWorkers
	}

	lines, err := input.ReadFile(path)
	if err != nil {
		log.Error("reading input", zap.String("file", path), zap.Error(err))
		return err
	}

	records, err := twos.ConvertAll(cmd.Context(), input.Tokens(lines), bits, workers)
	if err != nil {
		return err
	}

	for _, rec := range records {
		switch {
		case rec.Err != nil:
			fmt.Fprintf(out, "Error: Invalid numeric data: '%s' -> Writing %s\n", rec.Item, twos.ValueError)
			log.Warn("invalid token", zap.String("file", path), zap.String("token", rec.Item))
		case rec.Overflow:
			fmt.Fprintf(out, "Warning: %s exceeds %d-bit range.\n", rec.Value, bits)
			log.Warn("range overflow", zap.String("value", rec.Value.String()), zap.Int("bits", bits))
		}
	}

	rep := twos.Report(path, bits, records, time.Since(start))
	return report.Emit(out, rep, cfg.ResultPath(cfg.Results.Conversion), true)
}
