// internal/service/report_service.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/model"
	"github.com/arifrahmanandika/kangserpis/internal/repository"
)

// ReportService aggregates completed sales into period reports.
type ReportService struct {
	transactionRepo repository.TransactionRepository
	logger          *zap.Logger
}

// NewReportService creates a new report service.
func NewReportService(transactionRepo repository.TransactionRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// GenerateReport sums modal, sale and profit totals over the query period.
// The end date is extended to the last instant of its day so a single-day
// query covers the whole day. An empty period yields zero totals and no
// transactions, which is still a printable report.
func (s *ReportService) GenerateReport(ctx context.Context, query model.ReportQuery) (*model.ReportResult, error) {
	from, to := query.Range()

	transactions, err := s.transactionRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	result := &model.ReportResult{
		Transactions:      transactions,
		TotalTransactions: len(transactions),
	}

	for _, tx := range transactions {
		result.TotalModal += tx.TotalModal()
		result.TotalSell += tx.TotalSell()
	}
	result.TotalProfit = result.TotalSell - result.TotalModal

	result.ProfitMargin = decimal.Zero
	if result.TotalSell != 0 {
		result.ProfitMargin = decimal.NewFromInt(result.TotalProfit).
			Div(decimal.NewFromInt(result.TotalSell)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	s.logger.Debug("Report generated",
		zap.Time("period_start", from),
		zap.Time("period_end", to),
		zap.Int("transactions", result.TotalTransactions),
		zap.Int64("total_sell", result.TotalSell),
	)

	return result, nil
}
