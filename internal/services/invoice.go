package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/billing"
	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/repos"
	"github.com/safarnesia/umrah-backend/internal/sse"
	"github.com/safarnesia/umrah-backend/internal/types"
)

type InvoiceProgress struct {
	BatchID   uuid.UUID `json:"batch_id"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

// InvoiceService generates billing documents for one or many jamaah. Batch
// runs stream progress over SSE per settled chunk and report per-id failures
// instead of aborting, so the dashboard can say "generated 18 of 20".
// operatorID names the staff member issuing the documents; their name is the
// sender when the request leaves the field blank.
type InvoiceService interface {
	GenerateBatch(ctx context.Context, batchID uuid.UUID, jamaahIDs []uuid.UUID, operatorID *uuid.UUID, sender, receiver string) (*billing.BatchJob, error)
	Preview(ctx context.Context, jamaahID uuid.UUID, operatorID *uuid.UUID, sender, receiver string) (*billing.BillingDocument, error)
	Letterhead(ctx context.Context) (*types.CompanySettings, error)
}

type invoiceService struct {
	db           *gorm.DB
	log          *logger.Logger
	jamaah       repos.JamaahRepo
	transactions repos.TransactionRepo
	company      repos.CompanySettingsRepo
	users        repos.UserRepo
	pipeline     *billing.Pipeline
	notify       Notifier
}

func NewInvoiceService(
	db *gorm.DB,
	baseLog *logger.Logger,
	jamaahRepo repos.JamaahRepo,
	transactionRepo repos.TransactionRepo,
	companyRepo repos.CompanySettingsRepo,
	userRepo repos.UserRepo,
	pipeline *billing.Pipeline,
	notify Notifier,
) InvoiceService {
	return &invoiceService{
		db:           db,
		log:          baseLog.With("service", "InvoiceService"),
		jamaah:       jamaahRepo,
		transactions: transactionRepo,
		company:      companyRepo,
		users:        userRepo,
		pipeline:     pipeline,
		notify:       notify,
	}
}

func (s *invoiceService) GenerateBatch(ctx context.Context, batchID uuid.UUID, jamaahIDs []uuid.UUID, operatorID *uuid.UUID, sender, receiver string) (*billing.BatchJob, error) {
	if len(jamaahIDs) == 0 {
		return nil, fmt.Errorf("no jamaah selected")
	}

	sender, err := s.resolveSender(ctx, sender, operatorID)
	if err != nil {
		return nil, err
	}

	// One roster snapshot for the whole run; documents must not see edits
	// made while the batch is in flight.
	roster, err := s.jamaah.GetByIDs(ctx, nil, jamaahIDs)
	if err != nil {
		return nil, fmt.Errorf("load roster snapshot: %w", err)
	}
	byID := make(map[uuid.UUID]*types.Jamaah, len(roster))
	for _, j := range roster {
		byID[j.ID] = j
	}

	deps := billing.RunDeps{
		Lookup: func(id uuid.UUID) (*types.Jamaah, bool) {
			j, ok := byID[id]
			return j, ok
		},
		FetchPayments: s.fetchPayments,
		Sender:        sender,
		Receiver:      receiver,
		OnProgress: func(completed, total int) {
			s.notifyProgress(ctx, batchID, completed, total)
		},
	}

	job, err := s.pipeline.Run(ctx, jamaahIDs, deps)
	if err != nil {
		s.log.Warn("Invoice batch stopped early", "batch_id", batchID, "completed", job.Completed, "total", job.Total, "error", err)
		return job, err
	}

	s.log.Info("Invoice batch finished",
		"batch_id", batchID,
		"generated", len(job.Results),
		"failed", len(job.Failures),
		"total", job.Total,
	)
	s.notifyFinished(ctx, batchID, job)
	return job, nil
}

// Preview composes a single document. The payment history is fetched once up
// front and handed to the pipeline as resident data, so the run itself does
// no further I/O.
func (s *invoiceService) Preview(ctx context.Context, jamaahID uuid.UUID, operatorID *uuid.UUID, sender, receiver string) (*billing.BillingDocument, error) {
	sender, err := s.resolveSender(ctx, sender, operatorID)
	if err != nil {
		return nil, err
	}

	j, err := s.jamaah.GetByID(ctx, nil, jamaahID)
	if err != nil {
		return nil, fmt.Errorf("load jamaah: %w", err)
	}
	payments, err := s.fetchPayments(ctx, jamaahID)
	if err != nil {
		return nil, err
	}

	deps := billing.RunDeps{
		Lookup: func(id uuid.UUID) (*types.Jamaah, bool) {
			if id == j.ID {
				return j, true
			}
			return nil, false
		},
		Resident: map[uuid.UUID][]billing.PaymentRecord{jamaahID: payments},
		Sender:   sender,
		Receiver: receiver,
	}

	job, err := s.pipeline.Run(ctx, []uuid.UUID{jamaahID}, deps)
	if err != nil {
		return nil, err
	}
	if len(job.Results) != 1 {
		if itemErr, ok := job.Failures[jamaahID]; ok {
			return nil, itemErr
		}
		return nil, fmt.Errorf("preview produced no document")
	}
	return job.Results[0], nil
}

func (s *invoiceService) Letterhead(ctx context.Context) (*types.CompanySettings, error) {
	settings, err := s.company.Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load company settings: %w", err)
	}
	if settings == nil {
		settings = &types.CompanySettings{Name: "Perusahaan Anda"}
	}
	return settings, nil
}

func (s *invoiceService) fetchPayments(ctx context.Context, jamaahID uuid.UUID) ([]billing.PaymentRecord, error) {
	txs, err := s.transactions.ListIncomeByJamaah(ctx, nil, jamaahID)
	if err != nil {
		return nil, err
	}
	return billing.PaymentsFromTransactions(txs), nil
}

// resolveSender picks the document sender: an explicit value wins, then the
// issuing operator's name, then the company letterhead. An operator id that
// no longer resolves falls through rather than failing the run.
func (s *invoiceService) resolveSender(ctx context.Context, sender string, operatorID *uuid.UUID) (string, error) {
	if sender != "" {
		return sender, nil
	}
	if operatorID != nil && s.users != nil {
		operator, err := s.users.GetByID(ctx, nil, *operatorID)
		if err != nil {
			s.log.Warn("Operator lookup failed, using letterhead sender", "error", err, "operator_id", *operatorID)
		} else if operator.Name != "" {
			return operator.Name, nil
		}
	}
	settings, err := s.Letterhead(ctx)
	if err != nil {
		return "", err
	}
	return settings.Name, nil
}

func (s *invoiceService) notifyProgress(ctx context.Context, batchID uuid.UUID, completed, total int) {
	if s.notify == nil {
		return
	}
	s.notify.Notify(ctx, sse.SSEMessage{
		Channel: sse.BatchChannel(batchID),
		Event:   sse.SSEEventInvoiceProgress,
		Data:    InvoiceProgress{BatchID: batchID, Completed: completed, Total: total},
	})
}

func (s *invoiceService) notifyFinished(ctx context.Context, batchID uuid.UUID, job *billing.BatchJob) {
	if s.notify == nil {
		return
	}
	s.notify.Notify(ctx, sse.SSEMessage{
		Channel: sse.BatchChannel(batchID),
		Event:   sse.SSEEventInvoiceFinished,
		Data: map[string]any{
			"batch_id":  batchID,
			"generated": len(job.Results),
			"failed":    len(job.Failures),
			"failures":  job.FailureMessages(),
		},
	})
}
