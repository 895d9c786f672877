package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// reportLocation is the timezone used when formatting ledger timestamps for
// reports. Falls back to the process-local zone if the tzdata is missing.
var reportLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.Local
	}
	return loc
}()

// FormatMoney renders an amount as fixed two-decimal text.
// Example: 12.5 -> "12.50".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatReportDate renders a date as DD/MM/YYYY.
func FormatReportDate(t time.Time) string {
	return t.In(reportLocation).Format("02/01/2006")
}

// FormatReportDateTime renders a timestamp as "DD/MM/YYYY - HH:mm".
func FormatReportDateTime(t time.Time) string {
	return t.In(reportLocation).Format("02/01/2006 - 15:04")
}

// LocalDayBounds returns the local-midnight boundaries [start, end) of the
// day containing t. Used for "today's sales" queries.
func LocalDayBounds(t time.Time) (time.Time, time.Time) {
	local := t.Local()
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return start, start.AddDate(0, 0, 1)
}
