package billing

import (
	"time"

	"github.com/safarnesia/umrah-backend/internal/types"
)

// Compose builds the billing document for one jamaah from its payment
// history. Payments are renumbered 1..N in the order received; the caller
// guarantees chronological order from the source. The result copies every
// value it needs, so mutating the jamaah or the payments slice afterwards
// cannot change a document already handed to a renderer.
func Compose(j *types.Jamaah, payments []PaymentRecord, sender, receiver string) *BillingDocument {
	lines := make([]PaymentRecord, len(payments))
	copy(lines, payments)

	totalDiscount := 0.0
	for i := range lines {
		lines[i].Number = i + 1
		totalDiscount += lines[i].Discount
	}

	snapshot := TravelerSnapshot{
		ID:              j.ID,
		Name:            j.Name,
		Phone:           j.Phone,
		Address:         j.Address,
		TotalAmount:     j.TotalAmountValue(),
		PaidAmount:      j.PaidAmountValue(),
		RemainingAmount: j.RemainingAmountValue(),
	}
	if j.Package != nil {
		snapshot.PackageLabel = j.Package.Label()
		if j.Package.DepartureDate != nil {
			d := *j.Package.DepartureDate
			snapshot.DepartureDate = &d
		}
	}

	return &BillingDocument{
		Traveler:      snapshot,
		Payments:      lines,
		TotalDiscount: totalDiscount,
		Sender:        sender,
		Receiver:      receiver,
		ComposedAt:    time.Now(),
	}
}
