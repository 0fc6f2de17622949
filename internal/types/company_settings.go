package types

import (
	"time"

	"github.com/google/uuid"
)

// CompanySettings is the single-row letterhead record printed on billing
// documents and used as the default sender identity.
type CompanySettings struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name    string    `gorm:"not null;column:name" json:"name"`
	Address string    `gorm:"column:address" json:"address"`
	City    string    `gorm:"column:city" json:"city"`
	Phone   string    `gorm:"column:phone" json:"phone"`
	Email   string    `gorm:"column:email" json:"email"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (CompanySettings) TableName() string {
	return "company_settings"
}
