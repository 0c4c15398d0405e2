package models

import (
	"time"
)

// AuditLogEntry is an immutable record of a security-relevant action.
// Entries are append-only: there is no update or delete path.
type AuditLogEntry struct {
	ID uint64 `gorm:"primaryKey" json:"ID"`
	// Action is a free-text category, e.g. "login" or "create-admin".
	Action string `gorm:"size:255;not null" json:"action"`
	// Status records the outcome reported by the caller.
	Status string `gorm:"size:100" json:"status"`
	// UserEmail is the account the action relates to.
	UserEmail string `gorm:"size:255;index" json:"userEmail"`
	// Timestamp is when the action happened, as reported by the caller.
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
