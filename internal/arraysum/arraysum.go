// Package arraysum adds integer arrays element-wise, splitting the work into
// fixed-size chunks that are evaluated concurrently.
package arraysum

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"numkit/internal/report"
)

// ErrInvalidSize is returned for non-positive sizes or chunk lengths and for
// arrays of different lengths.
var ErrInvalidSize = errors.New("invalid size")

// Sum returns a[i]+b[i] for every i. Each chunk of chunk elements is summed by
// its own goroutine; at most limit chunks run at once (limit <= 0 means no limit).
func Sum(ctx context.Context, a, b []int, chunk, limit int) ([]int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: arrays have %d and %d elements", ErrInvalidSize, len(a), len(b))
	}
	if chunk <= 0 {
		return nil, fmt.Errorf("%w: chunk must be positive, got %d", ErrInvalidSize, chunk)
	}

	out := make([]int, len(a))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for start := 0; start < len(a); start += chunk {
		start := start
		end := min(start+chunk, len(a))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = a[i] + b[i]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Random returns n values in [0, 100) drawn from rng.
func Random(rng *rand.Rand, n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidSize, n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(100)
	}
	return out, nil
}

// Report shows the first preview elements of both inputs and the result.
func Report(a, b, sum []int, preview int) *report.Report {
	n := min(preview, len(sum))
	return report.New(fmt.Sprintf("First %d elements of the arrays:", n)).
		Line("Array 1: %s", join(a[:n])).
		Line("Array 2: %s", join(b[:n])).
		Line("Result:  %s", join(sum[:n]))
}

func join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
