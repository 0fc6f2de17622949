package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/rooming"
	"github.com/safarnesia/umrah-backend/internal/types"
)

type JamaahRepo interface {
	ListByPackage(ctx context.Context, tx *gorm.DB, packageID uuid.UUID) ([]*types.Jamaah, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Jamaah, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Jamaah, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Jamaah, error)
	BulkUpdateRooms(ctx context.Context, tx *gorm.DB, batch rooming.MutationBatch) error
}

type jamaahRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJamaahRepo(db *gorm.DB, baseLog *logger.Logger) JamaahRepo {
	repoLog := baseLog.With("repo", "JamaahRepo")
	return &jamaahRepo{db: db, log: repoLog}
}

func (r *jamaahRepo) ListByPackage(ctx context.Context, tx *gorm.DB, packageID uuid.UUID) ([]*types.Jamaah, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Jamaah
	if err := transaction.WithContext(ctx).
		Preload("Package").
		Where("package_id = ?", packageID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *jamaahRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Jamaah, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Jamaah
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Package").
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *jamaahRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Jamaah, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Jamaah
	if err := transaction.WithContext(ctx).
		Preload("Package").
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *jamaahRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Jamaah, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 100
	}

	var results []*types.Jamaah
	if err := transaction.WithContext(ctx).
		Preload("Package").
		Order("created_at ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// BulkUpdateRooms applies a room mutation batch. Updates go through a map so
// nil assignment values reach postgres as NULL instead of being skipped as
// zero values.
func (r *jamaahRepo) BulkUpdateRooms(ctx context.Context, tx *gorm.DB, batch rooming.MutationBatch) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(batch) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).Transaction(func(innerTx *gorm.DB) error {
		for _, update := range batch {
			values := map[string]interface{}{
				"room_number": update.Data.RoomNumber,
				"room_type":   update.Data.RoomType,
			}
			if err := innerTx.Model(&types.Jamaah{}).
				Where("id = ?", update.ID).
				Updates(values).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
