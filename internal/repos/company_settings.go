package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/types"
)

type CompanySettingsRepo interface {
	// Get returns the single settings row, or nil when none is configured.
	Get(ctx context.Context, tx *gorm.DB) (*types.CompanySettings, error)
}

type companySettingsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompanySettingsRepo(db *gorm.DB, baseLog *logger.Logger) CompanySettingsRepo {
	repoLog := baseLog.With("repo", "CompanySettingsRepo")
	return &companySettingsRepo{db: db, log: repoLog}
}

func (r *companySettingsRepo) Get(ctx context.Context, tx *gorm.DB) (*types.CompanySettings, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.CompanySettings
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
