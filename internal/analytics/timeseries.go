package analytics

import (
	"fmt"
	"time"

	"rupeerise/internal/core"
)

// DefaultWindowSize is the number of months shown on trend charts.
const DefaultWindowSize = 6

// MonthlyBucket aggregates one calendar month of the ledger. Key is a
// stable YYYY-MM identity; Label is the short display form.
type MonthlyBucket struct {
	Key      string
	Label    string
	Spending core.Money
	Income   core.Money
}

// BuildMonthlyWindow returns exactly windowSize buckets for the calendar
// months ending at the month containing now, oldest first. Months with
// no transactions produce zero-valued buckets; the fixed length is a
// hard contract for chart rendering.
func BuildMonthlyWindow(txs []core.Transaction, now time.Time, windowSize int) []MonthlyBucket {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	buckets := make([]MonthlyBucket, 0, windowSize)
	for i := windowSize - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())

		var spending, income int64
		for _, tx := range txs {
			if !sameMonth(tx.Date, month) {
				continue
			}
			switch tx.Type {
			case core.Expense:
				spending += tx.Amount.Paise
			case core.Income:
				income += tx.Amount.Paise
			}
		}

		buckets = append(buckets, MonthlyBucket{
			Key:      fmt.Sprintf("%04d-%02d", month.Year(), int(month.Month())),
			Label:    month.Format("Jan 06"),
			Spending: core.Money{Paise: spending},
			Income:   core.Money{Paise: income},
		})
	}
	return buckets
}

// MonthOverMonthChange returns the percentage change in spending between
// the last two buckets of a window. Zero when fewer than two buckets or
// when the previous month had no spending.
func MonthOverMonthChange(window []MonthlyBucket) float64 {
	if len(window) < 2 {
		return 0
	}
	current := window[len(window)-1].Spending.Paise
	previous := window[len(window)-2].Spending.Paise
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
