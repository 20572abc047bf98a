// Package stats computes descriptive statistics over numeric samples read from
// newline-delimited input. The measures match the spreadsheet functions COUNTA,
// AVERAGE, MEDIAN, MODE, STDEV.P and VAR.S.
package stats

import (
	"errors"
	"math"
	"strconv"

	"numkit/internal/input"
)

// ErrNoData is returned when a sample holds no valid numeric values.
var ErrNoData = errors.New("no valid numeric data found")

// NotApplicable is reported as the mode when no value repeats.
const NotApplicable = "#N/A"

// Warning describes an input line that was skipped.
type Warning struct {
	Line  int
	Token string
}

// Sample is the parsed content of an input file.
type Sample struct {
	Count    int       // non-blank lines, valid or not
	Values   []float64 // valid values in input order
	Warnings []Warning
}

// Summary holds the computed measures of a sample.
type Summary struct {
	N              int
	Mean           float64
	Median         float64
	Mode           float64
	HasMode        bool
	PopulationSD   float64
	SampleVariance float64
}

// Parse converts input lines into a sample. Lines that are not finite decimal
// numbers are skipped with a warning but still count toward Count.
func Parse(lines []input.Line) Sample {
	var s Sample
	for _, l := range lines {
		if l.Blank() {
			continue
		}
		s.Count++
		if l.Empty() {
			continue
		}
		v, err := strconv.ParseFloat(l.Text, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			s.Warnings = append(s.Warnings, Warning{Line: l.Number, Token: l.Raw})
			continue
		}
		s.Values = append(s.Values, v)
	}
	return s
}

// Compute derives the summary of values.
func Compute(values []float64) (Summary, error) {
	n := len(values)
	if n == 0 {
		return Summary{}, ErrNoData
	}

	var total float64
	for _, v := range values {
		total += v
	}
	mean := total / float64(n)

	sorted := BubbleSort(values)
	mid := n / 2
	median := sorted[mid]
	if n%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}

	var variance float64
	if n > 1 {
		variance = sumSq / float64(n-1)
	}

	mode, ok := Mode(values)
	return Summary{
		N:              n,
		Mean:           mean,
		Median:         median,
		Mode:           mode,
		HasMode:        ok,
		PopulationSD:   math.Sqrt(sumSq / float64(n)),
		SampleVariance: variance,
	}, nil
}

// Mode returns the most frequent value. Ties go to the value seen first in
// input order. ok is false when no value occurs more than once.
func Mode(values []float64) (mode float64, ok bool) {
	counts := make(map[float64]int, len(values))
	maxFreq := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > maxFreq {
			maxFreq = counts[v]
		}
	}
	if maxFreq < 2 {
		return 0, false
	}
	for _, v := range values {
		if counts[v] == maxFreq {
			return v, true
		}
	}
	return 0, false
}

// BubbleSort returns an ascending copy of values.
func BubbleSort(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	for i := 0; i < len(out); i++ {
		swapped := false
		for j := 0; j < len(out)-i-1; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return out
}

// ModeString formats the mode for reports.
func (s Summary) ModeString() string {
	if !s.HasMode {
		return NotApplicable
	}
	return strconv.FormatFloat(s.Mode, 'f', -1, 64)
}
