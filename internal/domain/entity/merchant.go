// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant is a store or vendor a user has recorded purchases from.
// Merchants are private to their owner; the stored name acts as a
// natural key within that owner's scope (exact, case-sensitive).
type Merchant struct {
	ID          uuid.UUID // Unique identifier for the merchant.
	Name        string    // Display name, stored exactly as the user typed it.
	OwnerUserID uuid.UUID // The user this merchant record belongs to.
	CreatedAt   time.Time // Timestamp of when this merchant was first recorded.
}
