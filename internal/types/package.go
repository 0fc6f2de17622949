package types

import (
	"time"

	"github.com/google/uuid"
)

type Package struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string     `gorm:"not null;column:name" json:"name"`
	Code          string     `gorm:"uniqueIndex;not null;column:code" json:"code"`
	DepartureDate *time.Time `gorm:"column:departure_date" json:"departure_date"`
	ReturnDate    *time.Time `gorm:"column:return_date" json:"return_date"`
	Quota         int        `gorm:"column:quota;default:0" json:"quota"`
	Price         string     `gorm:"type:numeric(15,2);column:price" json:"price"`
	Status        string     `gorm:"column:status;default:active" json:"status"`
	CreatedAt     time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Package) TableName() string {
	return "packages"
}

// Label is the display name used on billing documents, e.g. "Umroh Ramadhan (UMR-24)".
func (p *Package) Label() string {
	if p == nil {
		return ""
	}
	if p.Code == "" {
		return p.Name
	}
	return p.Name + " (" + p.Code + ")"
}
