package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is a single recorded purchase. It references a Merchant owned
// by the same user and carries the blob ids of any photographed receipt
// images.
//
// PurchaseDate is deliberately a plain "YYYY-MM-DD" string rather than a
// time.Time: listing orders receipts by the raw column value (zero-padded
// ISO strings sort chronologically) while free-text search matches against
// the raw string, so the wire format is the storage format.
type Receipt struct {
	ID           uuid.UUID // Unique identifier for the receipt.
	MerchantID   uuid.UUID // The merchant this purchase was made at. Not FK-enforced; a dead reference degrades at read time.
	PurchaseDate string    // Calendar date of the purchase, "YYYY-MM-DD".
	InvoiceTotal float64   // Total amount on the invoice.
	ImageIDs     []string  // Ordered blob ids of photographed receipt images.
	OwnerUserID  uuid.UUID // The user this receipt belongs to.
	CreatedAt    time.Time // Timestamp of when this receipt was recorded.
}
