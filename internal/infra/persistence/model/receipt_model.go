package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReceiptModel is the GORM-specific struct for the 'receipts' table.
//
// purchase_date is stored as the raw "YYYY-MM-DD" string; the zero-padded
// format makes lexicographic column order chronological, which listing
// relies on. merchant_id carries no foreign key: the service trusts the
// caller to supply an id from its own merchant list, and a dead reference
// degrades to a fallback name at read time.
type ReceiptModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	MerchantID   uuid.UUID                   `gorm:"type:uuid;not null;index:idx_receipts_on_merchant"`
	PurchaseDate string                      `gorm:"type:varchar(10);not null;index:idx_receipts_on_owner_date,priority:2"`
	InvoiceTotal float64                     `gorm:"type:numeric(12,2);not null"`
	ImageIDs     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	OwnerUserID  uuid.UUID                   `gorm:"type:uuid;not null;index:idx_receipts_on_owner;index:idx_receipts_on_owner_date,priority:1"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReceiptModel) TableName() string {
	return "receipts"
}
