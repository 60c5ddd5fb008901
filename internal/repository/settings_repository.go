// internal/repository/settings_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/database"
	"github.com/arifrahmanandika/kangserpis/internal/model"
)

// settingsRepository implements SettingsRepository against the ledger's
// settings table.
type settingsRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *database.DB, logger *zap.Logger) SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile reads the single store profile row. No row yields an empty
// profile, not an error; receipts then print without header and footer.
func (r *settingsRepository) GetProfile(ctx context.Context) (*model.StoreProfile, error) {
	query := `
		SELECT COALESCE(store_name, ''), COALESCE(store_address, ''),
			   COALESCE(store_phone, ''), COALESCE(header_note, ''),
			   COALESCE(footer_note, '')
		FROM settings
		LIMIT 1
	`

	profile := &model.StoreProfile{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&profile.StoreName, &profile.StoreAddress, &profile.StorePhone,
		&profile.HeaderNote, &profile.FooterNote,
	)

	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug("No store profile configured, printing without header")
		return &model.StoreProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store profile: %w", err)
	}

	return profile, nil
}
