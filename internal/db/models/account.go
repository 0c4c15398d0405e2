// Package models contains database model definitions.
package models

import (
	"time"
)

const (
	// RoleAdmin is the role assigned to provisioned admin accounts.
	RoleAdmin = "Admin"

	// VerifiedYes marks an account that completed its registration.
	VerifiedYes = "Y"
	// VerifiedNo marks a provisional account with a pending registration link.
	VerifiedNo = "N"
)

// Account represents a user/admin record with credentials and lifecycle state.
//
// Accounts are created by admin provisioning with an empty password hash and
// Verified = "N", then activated by the password reset flow. The password
// hash is never serialized.
type Account struct {
	// ID is the unique identifier for the account.
	ID uint64 `gorm:"primaryKey" json:"ID"`
	// Email is the unique login identity. Lookups are exact and case-sensitive.
	Email string `gorm:"unique;size:255;not null" json:"UserEmail"`
	// FullName is the account holder's display name.
	FullName string `gorm:"size:255;not null" json:"FullName"`
	// CompanyName and the address fields are organizational metadata.
	CompanyName         string `gorm:"size:255" json:"CompanyName"`
	PhoneNumber         string `gorm:"size:50" json:"PhoneNumber"`
	CompanyAddressLine1 string `gorm:"size:255" json:"CompanyAddressLine1"`
	CompanyAddressLine2 string `gorm:"size:255" json:"CompanyAddressLine2"`
	State               string `gorm:"size:100" json:"State"`
	Country             string `gorm:"size:100" json:"Country"`
	ZipCode             string `gorm:"size:20" json:"ZipCode"`
	// UserLimit is the seat limit configured for the organization.
	UserLimit string `gorm:"size:20" json:"UserLimit"`
	// ImagePath references the stored profile image, empty if none was uploaded.
	ImagePath string `gorm:"size:255" json:"ImagePath"`
	// Password is the bcrypt hash. Empty string until registration completes.
	Password string `gorm:"size:255" json:"-"`
	// Role is the account role.
	Role string `gorm:"size:50;not null" json:"UserRole"`
	// Verified persists as single-char "Y"/"N".
	Verified string `gorm:"type:varchar(1);not null;default:'N'" json:"Verified"`
	// ResetPasswordExpires bounds the registration/reset link validity.
	ResetPasswordExpires time.Time `json:"ResetPasswordExpires"`
	// CreatedAt is the timestamp when the account was created (managed by GORM).
	CreatedAt time.Time `json:"CreatedAt"`
	// UpdatedAt is the timestamp when the account was last updated (managed by GORM).
	UpdatedAt time.Time `json:"UpdatedAt"`
}

// IsVerified reports whether the account completed registration.
func (a *Account) IsVerified() bool {
	return a.Verified == VerifiedYes
}
