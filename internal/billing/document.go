package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/types"
)

// PaymentRecord is one line of a jamaah's payment history, already parsed
// out of the ledger row. Number is assigned 1..N at composition time.
type PaymentRecord struct {
	ID            uuid.UUID `json:"id"`
	Number        int       `json:"number"`
	Date          time.Time `json:"date"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Discount      float64   `json:"discount"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
}

// TravelerSnapshot is the display-ready projection of a jamaah at the moment
// a document was composed. It owns its values; later edits to the jamaah
// record do not reach documents already built.
type TravelerSnapshot struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	PackageLabel    string     `json:"package_label"`
	DepartureDate   *time.Time `json:"departure_date"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	TotalAmount     float64    `json:"total_amount"`
	PaidAmount      float64    `json:"paid_amount"`
	RemainingAmount float64    `json:"remaining_amount"`
}

// BillingDocument is the renderer-ready record of one jamaah's payment
// history. It is immutable once composed; the print/export layer turns it
// into a page without further lookups.
type BillingDocument struct {
	Traveler      TravelerSnapshot `json:"traveler"`
	Payments      []PaymentRecord  `json:"payments"`
	TotalDiscount float64          `json:"total_discount"`
	Sender        string           `json:"sender"`
	Receiver      string           `json:"receiver"`
	ComposedAt    time.Time        `json:"composed_at"`
}

// BatchJob is the transient state of one pipeline run.
type BatchJob struct {
	RequestedIDs []uuid.UUID          `json:"requested_ids"`
	Completed    int                  `json:"completed"`
	Total        int                  `json:"total"`
	Results      []*BillingDocument   `json:"results"`
	Failures     map[uuid.UUID]error  `json:"-"`
}

// FailureMessages flattens Failures for JSON responses.
func (b *BatchJob) FailureMessages() map[string]string {
	if len(b.Failures) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(b.Failures))
	for id, err := range b.Failures {
		out[id.String()] = err.Error()
	}
	return out
}

// PaymentsFromTransactions converts income ledger rows, assumed oldest-first,
// into payment lines. Numbering happens later in Compose.
func PaymentsFromTransactions(txs []*types.Transaction) []PaymentRecord {
	out := make([]PaymentRecord, 0, len(txs))
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		out = append(out, PaymentRecord{
			ID:            tx.ID,
			Date:          tx.TransactionDate,
			Category:      tx.IncomeCategory,
			Amount:        tx.AmountValue(),
			Discount:      tx.DiscountValue(),
			PaymentMethod: tx.PaymentMethod,
			Notes:         tx.Notes,
		})
	}
	return out
}
