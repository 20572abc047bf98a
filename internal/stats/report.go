package stats

import (
	"fmt"
	"strconv"
	"time"

	"numkit/internal/report"
)

const labelWidth = 12

// Report renders the statistics report for source.
func Report(source string, count int, s Summary, elapsed time.Duration) *report.Report {
	f4 := func(v float64) string { return fmt.Sprintf("%.4f", v) }

	return report.New("Results for "+source).
		Rule(30).
		Field("Count:", labelWidth, strconv.Itoa(count)).
		Field("Mean:", labelWidth, f4(s.Mean)).
		Field("Median:", labelWidth, f4(s.Median)).
		Field("Mode:", labelWidth, s.ModeString()).
		Field("SD.P:", labelWidth, f4(s.PopulationSD)).
		Field("Variance.S:", labelWidth, f4(s.SampleVariance)).
		Field("Time:", labelWidth, fmt.Sprintf("%.6f seconds", elapsed.Seconds()))
}
