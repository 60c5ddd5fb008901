// internal/model/report.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportQuery is an inclusive calendar-date range for a period report.
type ReportQuery struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Range returns the timestamp bounds of the query. The end date's day is
// extended to its final instant so the range is date-inclusive regardless
// of the time-of-day stored on each record.
func (q ReportQuery) Range() (time.Time, time.Time) {
	start := time.Date(q.StartDate.Year(), q.StartDate.Month(), q.StartDate.Day(),
		0, 0, 0, 0, q.StartDate.Location())
	end := time.Date(q.EndDate.Year(), q.EndDate.Month(), q.EndDate.Day(),
		23, 59, 59, 999999999, q.EndDate.Location())
	return start, end
}

// ReportResult aggregates the sales of a period. TotalProfit may be
// negative. ProfitMargin is profit over sales as a percentage rounded to
// two decimals, zero when there are no sales.
type ReportResult struct {
	TotalModal        int64           `json:"total_modal"`
	TotalSell         int64           `json:"total_sell"`
	TotalProfit       int64           `json:"total_profit"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
	TotalTransactions int             `json:"total_transactions"`
	Transactions      []*SaleRecord   `json:"transactions"`
}
