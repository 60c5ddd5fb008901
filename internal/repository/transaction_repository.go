// internal/repository/transaction_repository.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/database"
	"github.com/arifrahmanandika/kangserpis/internal/model"
)

// transactionRepository implements TransactionRepository against the
// ledger's transactions table. The services column is jsonb with the
// legacy name/modalPrice/sellPrice keys.
type transactionRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *database.DB, logger *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves one sale record.
func (r *transactionRepository) GetByID(ctx context.Context, id string) (*model.SaleRecord, error) {
	query := `
		SELECT id, customer_name, device_type, services, COALESCE(notes, ''), created_at
		FROM transactions WHERE id = $1
	`

	record, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction not found: %s", id)
	}
	if err != nil {
		r.logger.Error("Failed to get transaction", zap.Error(err), zap.String("transaction_id", id))
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return record, nil
}

// ListByPeriod retrieves sale records in the timestamp range, in stored
// order. Callers extend the end bound to the final instant of its day.
func (r *transactionRepository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*model.SaleRecord, error) {
	query := `
		SELECT id, customer_name, device_type, services, COALESCE(notes, ''), created_at
		FROM transactions
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		r.logger.Error("Failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var records []*model.SaleRecord
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return records, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *transactionRepository) scanRecord(row rowScanner) (*model.SaleRecord, error) {
	record := &model.SaleRecord{}
	var servicesJSON []byte

	err := row.Scan(
		&record.ID, &record.CustomerName, &record.DeviceType,
		&servicesJSON, &record.Notes, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(servicesJSON, &record.Services); err != nil {
		return nil, fmt.Errorf("failed to decode services for %s: %w", record.ID, err)
	}

	return record, nil
}
