package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransactionTypeIncome  = "pemasukan"
	TransactionTypeExpense = "pengeluaran"
)

// Transaction is one ledger row. Income rows referencing a jamaah form that
// jamaah's payment history; oldest-first order is the contract the billing
// composer relies on.
type Transaction struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Type string    `gorm:"not null;column:type" json:"type"`

	IncomeCategory  string `gorm:"column:income_category" json:"income_category"`
	ExpenseCategory string `gorm:"column:expense_category" json:"expense_category"`

	Amount   string `gorm:"type:numeric(15,2);not null;column:amount" json:"amount"`
	Discount string `gorm:"type:numeric(15,2);default:0;column:discount" json:"discount"`

	PackageID *uuid.UUID `gorm:"type:uuid;column:package_id" json:"package_id"`
	JamaahID  *uuid.UUID `gorm:"type:uuid;column:jamaah_id" json:"jamaah_id"`

	PaymentMethod   string `gorm:"column:payment_method" json:"payment_method"`
	ReferenceNumber string `gorm:"column:reference_number" json:"reference_number"`
	BankName        string `gorm:"column:bank_name" json:"bank_name"`
	Description     string `gorm:"column:description" json:"description"`
	Notes           string `gorm:"column:notes" json:"notes"`

	TransactionDate time.Time `gorm:"not null;default:now();column:transaction_date" json:"transaction_date"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) AmountValue() float64   { return parseAmount(t.Amount) }
func (t *Transaction) DiscountValue() float64 { return parseAmount(t.Discount) }
