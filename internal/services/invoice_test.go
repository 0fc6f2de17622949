package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/billing"
	"github.com/safarnesia/umrah-backend/internal/types"
)

type fakeTransactionRepo struct {
	mu       sync.Mutex
	byJamaah map[uuid.UUID][]*types.Transaction
	failFor  map[uuid.UUID]error
	calls    int
}

func (r *fakeTransactionRepo) ListIncomeByJamaah(ctx context.Context, tx *gorm.DB, jamaahID uuid.UUID) ([]*types.Transaction, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if err, ok := r.failFor[jamaahID]; ok {
		return nil, err
	}
	return r.byJamaah[jamaahID], nil
}

type fakeCompanyRepo struct {
	settings *types.CompanySettings
}

func (r *fakeCompanyRepo) Get(ctx context.Context, tx *gorm.DB) (*types.CompanySettings, error) {
	return r.settings, nil
}

type fakeUserRepo struct {
	byID map[uuid.UUID]*types.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func payingJamaah(name string) *types.Jamaah {
	return &types.Jamaah{
		ID:          uuid.New(),
		Name:        name,
		TotalAmount: "30000000.00",
		PaidAmount:  "10000000.00",
	}
}

func incomeRow(jamaahID uuid.UUID, amount, discount string) *types.Transaction {
	id := jamaahID
	return &types.Transaction{
		ID:       uuid.New(),
		Type:     types.TransactionTypeIncome,
		Amount:   amount,
		Discount: discount,
		JamaahID: &id,
	}
}

func newInvoiceFixture(t *testing.T, txRepo *fakeTransactionRepo, roster ...*types.Jamaah) (InvoiceService, *fakeUserRepo) {
	t.Helper()
	log := testLogger(t)
	repo := newFakeJamaahRepo(roster...)
	company := &fakeCompanyRepo{settings: &types.CompanySettings{Name: "Safarnesia Tour"}}
	users := &fakeUserRepo{byID: make(map[uuid.UUID]*types.User)}
	pipeline := billing.NewPipeline(billing.DefaultFetchWidth, log)
	svc := NewInvoiceService(nil, log, repo, txRepo, company, users, pipeline, nil)
	return svc, users
}

func TestGenerateBatchComposesAllSelected(t *testing.T) {
	a := payingJamaah("Ahmad")
	b := payingJamaah("Budi")
	txRepo := &fakeTransactionRepo{byJamaah: map[uuid.UUID][]*types.Transaction{
		a.ID: {incomeRow(a.ID, "5000000", "0"), incomeRow(a.ID, "5000000", "250000")},
		b.ID: {incomeRow(b.ID, "10000000", "0")},
	}}
	svc, _ := newInvoiceFixture(t, txRepo, a, b)

	job, err := svc.GenerateBatch(context.Background(), uuid.New(), []uuid.UUID{a.ID, b.ID}, nil, "Kasir", "Penerima")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if len(job.Results) != 2 || len(job.Failures) != 0 {
		t.Fatalf("results=%d failures=%d, want 2/0", len(job.Results), len(job.Failures))
	}
	if job.Results[0].Traveler.ID != a.ID || job.Results[1].Traveler.ID != b.ID {
		t.Fatalf("results out of input order")
	}
	if job.Results[0].TotalDiscount != 250000 {
		t.Fatalf("discount=%v, want 250000", job.Results[0].TotalDiscount)
	}
}

func TestGenerateBatchIsolatesFetchFailure(t *testing.T) {
	a := payingJamaah("Ahmad")
	b := payingJamaah("Budi")
	fetchErr := errors.New("ledger unavailable")
	txRepo := &fakeTransactionRepo{
		byJamaah: map[uuid.UUID][]*types.Transaction{a.ID: {incomeRow(a.ID, "100", "0")}},
		failFor:  map[uuid.UUID]error{b.ID: fetchErr},
	}
	svc, _ := newInvoiceFixture(t, txRepo, a, b)

	job, err := svc.GenerateBatch(context.Background(), uuid.New(), []uuid.UUID{a.ID, b.ID}, nil, "Kasir", "")
	if err != nil {
		t.Fatalf("one failing jamaah must not abort the batch: %v", err)
	}
	if len(job.Results) != 1 || job.Results[0].Traveler.ID != a.ID {
		t.Fatalf("surviving document missing")
	}
	if got := job.Failures[b.ID]; !errors.Is(got, fetchErr) {
		t.Fatalf("failure=%v, want %v", got, fetchErr)
	}
}

func TestGenerateBatchRecordsUnknownID(t *testing.T) {
	a := payingJamaah("Ahmad")
	ghost := uuid.New()
	txRepo := &fakeTransactionRepo{byJamaah: map[uuid.UUID][]*types.Transaction{a.ID: nil}}
	svc, _ := newInvoiceFixture(t, txRepo, a)

	job, err := svc.GenerateBatch(context.Background(), uuid.New(), []uuid.UUID{a.ID, ghost}, nil, "Kasir", "")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if _, ok := job.Failures[ghost]; !ok {
		t.Fatalf("unknown id not recorded as failure")
	}
	if len(job.Results) != 1 {
		t.Fatalf("results=%d, want 1", len(job.Results))
	}
}

func TestGenerateBatchRejectsEmptySelection(t *testing.T) {
	svc, _ := newInvoiceFixture(t, &fakeTransactionRepo{})
	if _, err := svc.GenerateBatch(context.Background(), uuid.New(), nil, nil, "", ""); err == nil {
		t.Fatalf("empty selection must be rejected before any work")
	}
}

func TestGenerateBatchDefaultsSenderToCompany(t *testing.T) {
	a := payingJamaah("Ahmad")
	txRepo := &fakeTransactionRepo{byJamaah: map[uuid.UUID][]*types.Transaction{a.ID: nil}}
	svc, _ := newInvoiceFixture(t, txRepo, a)

	job, err := svc.GenerateBatch(context.Background(), uuid.New(), []uuid.UUID{a.ID}, nil, "", "Penerima")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if job.Results[0].Sender != "Safarnesia Tour" {
		t.Fatalf("sender=%q, want company default", job.Results[0].Sender)
	}
}

func TestGenerateBatchSenderFallsBackToOperator(t *testing.T) {
	a := payingJamaah("Ahmad")
	txRepo := &fakeTransactionRepo{byJamaah: map[uuid.UUID][]*types.Transaction{a.ID: nil}}
	svc, users := newInvoiceFixture(t, txRepo, a)

	operator := &types.User{ID: uuid.New(), Name: "Siti Operator"}
	users.byID[operator.ID] = operator

	job, err := svc.GenerateBatch(context.Background(), uuid.New(), []uuid.UUID{a.ID}, &operator.ID, "", "Penerima")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if job.Results[0].Sender != "Siti Operator" {
		t.Fatalf("sender=%q, want operator name", job.Results[0].Sender)
	}

	// An operator that no longer exists must not fail the run; the
	// letterhead name steps in.
	ghost := uuid.New()
	job, err = svc.GenerateBatch(context.Background(), uuid.New(), []uuid.UUID{a.ID}, &ghost, "", "Penerima")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if job.Results[0].Sender != "Safarnesia Tour" {
		t.Fatalf("sender=%q, want company fallback", job.Results[0].Sender)
	}

	// An explicit sender always wins.
	job, err = svc.GenerateBatch(context.Background(), uuid.New(), []uuid.UUID{a.ID}, &operator.ID, "Kasir", "Penerima")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if job.Results[0].Sender != "Kasir" {
		t.Fatalf("sender=%q, want explicit value", job.Results[0].Sender)
	}
}

func TestPreviewUsesResidentPayments(t *testing.T) {
	a := payingJamaah("Ahmad")
	txRepo := &fakeTransactionRepo{byJamaah: map[uuid.UUID][]*types.Transaction{
		a.ID: {incomeRow(a.ID, "100", "10"), incomeRow(a.ID, "200", "20")},
	}}
	svc, _ := newInvoiceFixture(t, txRepo, a)

	doc, err := svc.Preview(context.Background(), a.ID, nil, "Kasir", "Ahmad")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if txRepo.calls != 1 {
		t.Fatalf("ledger fetched %d times, want exactly once", txRepo.calls)
	}
	if doc.TotalDiscount != 30 {
		t.Fatalf("discount=%v, want 30", doc.TotalDiscount)
	}
	if doc.Payments[1].Number != 2 {
		t.Fatalf("payments not renumbered")
	}
}
