package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/billing"
	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/repos"
)

type TransactionService interface {
	// PaymentHistory returns the jamaah's income ledger as payment lines,
	// oldest-first.
	PaymentHistory(ctx context.Context, jamaahID uuid.UUID) ([]billing.PaymentRecord, error)
}

type transactionService struct {
	db           *gorm.DB
	log          *logger.Logger
	transactions repos.TransactionRepo
}

func NewTransactionService(db *gorm.DB, baseLog *logger.Logger, transactionRepo repos.TransactionRepo) TransactionService {
	return &transactionService{
		db:           db,
		log:          baseLog.With("service", "TransactionService"),
		transactions: transactionRepo,
	}
}

func (s *transactionService) PaymentHistory(ctx context.Context, jamaahID uuid.UUID) ([]billing.PaymentRecord, error) {
	txs, err := s.transactions.ListIncomeByJamaah(ctx, nil, jamaahID)
	if err != nil {
		return nil, err
	}
	return billing.PaymentsFromTransactions(txs), nil
}
