package types

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Jamaah is a registered pilgrim belonging to a travel package. Room fields
// are nullable on purpose: NULL is the canonical "not assigned" state, and
// the room list core only ever mutates them through a MutationBatch.
type Jamaah struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name   string    `gorm:"not null;column:name" json:"name"`
	Gender string    `gorm:"column:gender" json:"gender"`

	NIK            string     `gorm:"column:nik" json:"nik"`
	PassportNumber string     `gorm:"column:passport_number" json:"passport_number"`
	PassportExpiry *time.Time `gorm:"column:passport_expiry" json:"passport_expiry"`
	Phone          string     `gorm:"column:phone" json:"phone"`
	Email          string     `gorm:"column:email" json:"email"`
	Address        string     `gorm:"column:address" json:"address"`

	PackageID  *uuid.UUID `gorm:"type:uuid;column:package_id" json:"package_id"`
	Package    *Package   `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	SeatNumber *int       `gorm:"column:seat_number" json:"seat_number"`

	RoomType   *string `gorm:"column:room_type" json:"room_type"`
	RoomNumber *string `gorm:"column:room_number" json:"room_number"`

	// Money columns are numeric(15,2) in postgres and travel as strings,
	// matching the upstream API contract. Parse on read only.
	TotalAmount     string `gorm:"type:numeric(15,2);not null;column:total_amount" json:"total_amount"`
	PaidAmount      string `gorm:"type:numeric(15,2);not null;default:0;column:paid_amount" json:"paid_amount"`
	RemainingAmount string `gorm:"type:numeric(15,2);column:remaining_amount" json:"remaining_amount"`

	PaymentStatus string `gorm:"column:payment_status;default:pending" json:"payment_status"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Jamaah) TableName() string {
	return "jamaah"
}

// Assigned reports whether the jamaah currently occupies a room. Legacy rows
// sometimes hold "" instead of NULL; both count as unassigned.
func (j *Jamaah) Assigned() bool {
	return j.RoomNumber != nil && *j.RoomNumber != ""
}

func (j *Jamaah) TotalAmountValue() float64     { return parseAmount(j.TotalAmount) }
func (j *Jamaah) PaidAmountValue() float64      { return parseAmount(j.PaidAmount) }
func (j *Jamaah) RemainingAmountValue() float64 { return parseAmount(j.RemainingAmount) }

func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
