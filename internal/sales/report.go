package sales

import (
	"time"

	"github.com/dustin/go-humanize"

	"numkit/internal/report"
)

// FormatMoney renders an amount as $1,234.56.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// Report renders the sales summary.
func Report(total float64, elapsed time.Duration) *report.Report {
	return report.New("Sales Report").
		Rule(30).
		Line("Total Cost: %s", FormatMoney(total)).
		Line("Execution Time: %.6f seconds", elapsed.Seconds()).
		Rule(30)
}
