package twos

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// ValueError is written in place of both representations for a token that is
// not a number.
const ValueError = "#VALUE!"

// ErrInvalidNumber marks a token that could not be parsed.
var ErrInvalidNumber = errors.New("invalid numeric data")

// Record is the outcome of converting one input token.
type Record struct {
	Item     string
	Value    *big.Int // nil when Err is set
	Binary   string
	Hex      string
	Overflow bool
	Err      error
}

// ParseInteger parses a decimal token. Integers are exact at any size;
// decimal fractions and exponents are truncated toward zero.
func ParseInteger(token string) (*big.Int, error) {
	if v, ok := new(big.Int).SetString(token, 10); ok {
		return v, nil
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidNumber, token)
	}
	v, _ := big.NewFloat(f).Int(nil)
	return v, nil
}

// ConvertToken parses and encodes a single token. Parse failures produce a
// record holding ValueError instead of an error return.
func ConvertToken(token string, bits int) (Record, error) {
	rec := Record{Item: token}

	v, err := ParseInteger(token)
	if err != nil {
		rec.Binary, rec.Hex, rec.Err = ValueError, ValueError, err
		return rec, nil
	}

	res, err := Encode(v, bits)
	if err != nil {
		return Record{}, err
	}
	rec.Value = v
	rec.Binary = res.Binary
	rec.Hex = res.Hex
	rec.Overflow = res.Overflow
	return rec, nil
}

// ConvertAll converts tokens with up to workers conversions in flight.
// Records are returned in input order regardless of scheduling.
func ConvertAll(ctx context.Context, tokens []string, bits, workers int) ([]Record, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, bits)
	}
	if workers < 1 {
		workers = 1
	}

	records := make([]Record, len(tokens))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tok := range tokens {
		i, tok := i, tok
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := ConvertToken(tok, bits)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
