package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel is the GORM-specific struct for the 'merchants' table.
//
// The (owner, name) pair is the application-level natural key but carries
// no unique constraint: de-duplication is a check-then-insert in the
// service layer, and concurrent identical creates are allowed to race into
// a duplicate row. A DB constraint would silently change that documented
// behavior.
type MerchantModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null;index:idx_merchants_on_owner_name,priority:2"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_merchants_on_owner;index:idx_merchants_on_owner_name,priority:1"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
