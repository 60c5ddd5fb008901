// internal/repository/interfaces.go
package repository

import (
	"context"
	"time"

	"github.com/arifrahmanandika/kangserpis/internal/model"
)

// SettingsRepository reads the store profile maintained by the ledger's
// settings screen. A missing profile is not an error: callers receive an
// empty profile and render without a header or footer.
type SettingsRepository interface {
	GetProfile(ctx context.Context) (*model.StoreProfile, error)
}

// TransactionRepository reads completed sales from the ledger store.
// This service never writes transactions.
type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (*model.SaleRecord, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*model.SaleRecord, error)
}
