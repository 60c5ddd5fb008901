// internal/service/report_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/model"
)

type stubTransactionRepo struct {
	byID    map[string]*model.SaleRecord
	listed  []*model.SaleRecord
	listErr error

	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubTransactionRepo) GetByID(ctx context.Context, id string) (*model.SaleRecord, error) {
	record, ok := s.byID[id]
	if !ok {
		return nil, errors.New("transaction not found: " + id)
	}
	return record, nil
}

func (s *stubTransactionRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]*model.SaleRecord, error) {
	s.gotFrom, s.gotTo = from, to
	return s.listed, s.listErr
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestGenerateReportAggregatesTotals(t *testing.T) {
	repo := &stubTransactionRepo{listed: []*model.SaleRecord{
		{
			ID: "tx-1",
			Services: []model.ServiceLine{
				{Name: "Ganti LCD", ModalPrice: 150000, SellPrice: 230000},
			},
		},
		{
			ID: "tx-2",
			Services: []model.ServiceLine{
				{Name: "Ganti Baterai", ModalPrice: 50000, SellPrice: 90000},
				{Name: "Jasa Pasang", ModalPrice: 0, SellPrice: 30000},
			},
		},
	}}
	svc := NewReportService(repo, zap.NewNop())

	result, err := svc.GenerateReport(context.Background(), model.ReportQuery{
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 31),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(200000), result.TotalModal)
	assert.Equal(t, int64(350000), result.TotalSell)
	assert.Equal(t, int64(150000), result.TotalProfit)
	assert.Equal(t, 2, result.TotalTransactions)
	assert.Equal(t, "42.86", result.ProfitMargin.StringFixed(2))
}

func TestGenerateReportEmptyPeriod(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := NewReportService(repo, zap.NewNop())

	result, err := svc.GenerateReport(context.Background(), model.ReportQuery{
		StartDate: date(2025, time.January, 1),
		EndDate:   date(2025, time.January, 7),
	})

	require.NoError(t, err)
	assert.Zero(t, result.TotalModal)
	assert.Zero(t, result.TotalSell)
	assert.Zero(t, result.TotalProfit)
	assert.True(t, result.ProfitMargin.IsZero())
	assert.Zero(t, result.TotalTransactions)
	assert.Empty(t, result.Transactions)
}

func TestGenerateReportExtendsEndDate(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := NewReportService(repo, zap.NewNop())

	_, err := svc.GenerateReport(context.Background(), model.ReportQuery{
		StartDate: date(2025, time.June, 10),
		EndDate:   date(2025, time.June, 10),
	})

	require.NoError(t, err)
	assert.Equal(t, date(2025, time.June, 10), repo.gotFrom)
	assert.Equal(t, 23, repo.gotTo.Hour())
	assert.Equal(t, 59, repo.gotTo.Minute())
	assert.Equal(t, 10, repo.gotTo.Day())
}

func TestGenerateReportRepositoryFault(t *testing.T) {
	repo := &stubTransactionRepo{listErr: errors.New("connection reset")}
	svc := NewReportService(repo, zap.NewNop())

	_, err := svc.GenerateReport(context.Background(), model.ReportQuery{
		StartDate: date(2025, time.June, 1),
		EndDate:   date(2025, time.June, 2),
	})

	assert.Error(t, err)
}

func TestGenerateReportNegativeProfit(t *testing.T) {
	repo := &stubTransactionRepo{listed: []*model.SaleRecord{
		{
			ID: "tx-loss",
			Services: []model.ServiceLine{
				{Name: "Garansi Ulang", ModalPrice: 120000, SellPrice: 100000},
			},
		},
	}}
	svc := NewReportService(repo, zap.NewNop())

	result, err := svc.GenerateReport(context.Background(), model.ReportQuery{
		StartDate: date(2025, time.May, 1),
		EndDate:   date(2025, time.May, 31),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(-20000), result.TotalProfit)
	assert.Equal(t, "-20.00", result.ProfitMargin.StringFixed(2))
}
