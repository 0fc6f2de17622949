package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/types"
)

type TransactionRepo interface {
	// ListIncomeByJamaah returns the payment history oldest-first, the order
	// billing documents are numbered in.
	ListIncomeByJamaah(ctx context.Context, tx *gorm.DB, jamaahID uuid.UUID) ([]*types.Transaction, error)
}

type transactionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTransactionRepo(db *gorm.DB, baseLog *logger.Logger) TransactionRepo {
	repoLog := baseLog.With("repo", "TransactionRepo")
	return &transactionRepo{db: db, log: repoLog}
}

func (r *transactionRepo) ListIncomeByJamaah(ctx context.Context, tx *gorm.DB, jamaahID uuid.UUID) ([]*types.Transaction, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Transaction
	if err := transaction.WithContext(ctx).
		Where("jamaah_id = ? AND type = ?", jamaahID, types.TransactionTypeIncome).
		Order("transaction_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
