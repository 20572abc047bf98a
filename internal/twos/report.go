package twos

import (
	"fmt"
	"time"

	"numkit/internal/report"
)

var columnWidths = []int{15, 20, 15}

// Report renders the conversion table for source.
func Report(source string, bits int, records []Record, elapsed time.Duration) *report.Report {
	r := report.New(fmt.Sprintf("Results for %s (%d-bit Two's Complement)", source, bits)).
		Rule(60).
		Columns(columnWidths, "ITEM", "BINARY", "HEXADECIMAL").
		Rule(60)
	for _, rec := range records {
		r.Columns(columnWidths, rec.Item, rec.Binary, rec.Hex)
	}
	return r.Blank().Line("Total Execution Time: %.6f seconds", elapsed.Seconds())
}
