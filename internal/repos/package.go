package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/types"
)

type PackageRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Package, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Package, error)
}

type packageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPackageRepo(db *gorm.DB, baseLog *logger.Logger) PackageRepo {
	repoLog := baseLog.With("repo", "PackageRepo")
	return &packageRepo{db: db, log: repoLog}
}

func (r *packageRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Package, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Package
	if err := transaction.WithContext(ctx).
		Order("departure_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *packageRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Package, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Package
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
