package payment

import (
	"time"

	"github.com/trezcool/tutordesk/core"
)

type Summary struct {
	TotalEarnings   float64 `json:"total_earnings"`
	PendingPayments float64 `json:"pending_payments"`
	ThisMonth       float64 `json:"this_month"`
	LastMonth       float64 `json:"last_month"`
	Growth          float64 `json:"growth"` // percent, one decimal place
}

// Summarize computes the payment summary of a teacher as of `now`.
func Summarize(txs []Transaction, totalEarnings float64, now time.Time) Summary {
	s := Summary{TotalEarnings: totalEarnings}
	lastMonth := PreviousMonth(now)
	for _, tx := range txs {
		switch tx.Status {
		case StatusPending:
			s.PendingPayments += tx.Amount
		case StatusCompleted:
			if tx.InMonth(now) {
				s.ThisMonth += tx.Amount
			} else if tx.InMonth(lastMonth) {
				s.LastMonth += tx.Amount
			}
		}
	}
	s.Growth = Growth(s.ThisMonth, s.LastMonth)
	return s
}

// MonthlyCompleted sums the completed amounts dated in the month of `t`.
func MonthlyCompleted(txs []Transaction, t time.Time) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.Status == StatusCompleted && tx.InMonth(t) {
			sum += tx.Amount
		}
	}
	return sum
}

// Growth is the percent change from `last` to `current`; 0 when there is nothing to compare to.
func Growth(current, last float64) float64 {
	if last <= 0 {
		return 0
	}
	return core.Round((current-last)/last*100, 1)
}

// PreviousMonth returns the first day of the month before `t`.
func PreviousMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0)
}
