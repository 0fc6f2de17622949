package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/types"
)

func testJamaah(name string) *types.Jamaah {
	dep := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &types.Jamaah{
		ID:              uuid.New(),
		Name:            name,
		Phone:           "08123456789",
		Address:         "Jl. Merdeka 1",
		TotalAmount:     "35000000.00",
		PaidAmount:      "20000000.00",
		RemainingAmount: "15000000.00",
		Package: &types.Package{
			Name:          "Umroh Ramadhan",
			Code:          "UMR-26",
			DepartureDate: &dep,
		},
	}
}

func TestComposeNumbersPaymentsInOrder(t *testing.T) {
	payments := []PaymentRecord{
		{ID: uuid.New(), Category: "dp", Amount: 5000000},
		{ID: uuid.New(), Category: "cicilan", Amount: 10000000},
		{ID: uuid.New(), Category: "cicilan", Amount: 5000000},
	}

	doc := Compose(testJamaah("Ahmad"), payments, "Kasir", "Ahmad")

	for i, line := range doc.Payments {
		if line.Number != i+1 {
			t.Fatalf("payment %d numbered %d, want %d", i, line.Number, i+1)
		}
	}
}

func TestComposeSumsDiscounts(t *testing.T) {
	cases := []struct {
		name      string
		discounts []float64
		want      float64
	}{
		{name: "single_discount", discounts: []float64{0, 50000, 0}, want: 50000},
		{name: "no_discounts", discounts: []float64{0, 0}, want: 0},
		{name: "multiple", discounts: []float64{100000, 250000}, want: 350000},
		{name: "no_payments", discounts: nil, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payments := make([]PaymentRecord, 0, len(tc.discounts))
			for _, d := range tc.discounts {
				payments = append(payments, PaymentRecord{ID: uuid.New(), Discount: d})
			}
			doc := Compose(testJamaah("Ahmad"), payments, "", "")
			if doc.TotalDiscount != tc.want {
				t.Fatalf("TotalDiscount=%v, want %v", doc.TotalDiscount, tc.want)
			}
		})
	}
}

func TestComposeProjectsSnapshot(t *testing.T) {
	j := testJamaah("Siti Aminah")

	doc := Compose(j, nil, "Kasir", "Siti")

	snap := doc.Traveler
	if snap.Name != "Siti Aminah" {
		t.Fatalf("name=%q", snap.Name)
	}
	if snap.PackageLabel != "Umroh Ramadhan (UMR-26)" {
		t.Fatalf("package label=%q", snap.PackageLabel)
	}
	if snap.TotalAmount != 35000000 || snap.PaidAmount != 20000000 || snap.RemainingAmount != 15000000 {
		t.Fatalf("amounts not parsed: %+v", snap)
	}
	if doc.Sender != "Kasir" || doc.Receiver != "Siti" {
		t.Fatalf("sender/receiver lost")
	}
}

func TestComposeIsImmuneToLaterMutation(t *testing.T) {
	j := testJamaah("Ahmad")
	payments := []PaymentRecord{{ID: uuid.New(), Amount: 1000, Discount: 10}}

	doc := Compose(j, payments, "Kasir", "Ahmad")

	j.Name = "Renamed"
	j.PaidAmount = "0"
	*j.Package.DepartureDate = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	payments[0].Amount = 999999

	if doc.Traveler.Name != "Ahmad" {
		t.Fatalf("snapshot name changed after source mutation")
	}
	if doc.Traveler.PaidAmount != 20000000 {
		t.Fatalf("snapshot amount changed after source mutation")
	}
	if doc.Traveler.DepartureDate.Year() != 2026 {
		t.Fatalf("snapshot departure date aliases the package record")
	}
	if doc.Payments[0].Amount != 1000 {
		t.Fatalf("payment line aliases the caller's slice")
	}
}
