// Package account implements the credential and account-lifecycle workflow:
// login, admin provisioning with provisional accounts, and password reset
// with an expiring registration window.
package account

import (
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/db/models"
	"github.com/vida-hq/vida-admin/internal/password"
)

// RegistrationWindow is the fixed validity period for unverified
// registration/reset links.
const RegistrationWindow = 2 * time.Hour

const emailQueryPattern = "email = ?"

// Service orchestrates account lifecycle operations against the store.
type Service struct {
	db *gorm.DB

	// now is swapped in tests to pin the registration window.
	now func() time.Time
}

// NewService creates a new account service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Login authenticates an account by email and plaintext password.
// It is side-effect-free and returns the matching account on success.
func (s *Service) Login(email, plaintext string) (*models.Account, error) {
	var acc models.Account

	result := s.db.Where(emailQueryPattern, email).First(&acc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}

		return nil, pkgerrors.Wrap(result.Error, "login lookup failed")
	}

	match, err := password.Verify(plaintext, acc.Password)
	if err != nil {
		// hasher details stay server-side
		log.Error().Err(err).Str("email", email).Msg("password verification failed")
		return nil, pkgerrors.Wrap(err, "password verification failed")
	}

	if !match {
		return nil, ErrInvalidCredentials
	}

	return &acc, nil
}

// CreateAdminParams holds the profile fields for admin provisioning.
// Email and FullName are required, the rest is optional organizational
// metadata.
type CreateAdminParams struct {
	Email               string
	FullName            string
	CompanyName         string
	PhoneNumber         string
	CompanyAddressLine1 string
	CompanyAddressLine2 string
	State               string
	Country             string
	ZipCode             string
	UserLimit           string
	ImagePath           string
}

// CreateAdmin provisions a new admin account. The account starts with an
// empty password hash, Verified = "N", role Admin and a registration link
// valid for RegistrationWindow from now.
func (s *Service) CreateAdmin(p CreateAdminParams) (*models.Account, error) {
	if p.Email == "" {
		return nil, ErrEmailRequired
	}

	if p.FullName == "" {
		return nil, ErrFullNameRequired
	}

	acc := models.Account{
		Email:                p.Email,
		FullName:             p.FullName,
		CompanyName:          p.CompanyName,
		PhoneNumber:          p.PhoneNumber,
		CompanyAddressLine1:  p.CompanyAddressLine1,
		CompanyAddressLine2:  p.CompanyAddressLine2,
		State:                p.State,
		Country:              p.Country,
		ZipCode:              p.ZipCode,
		UserLimit:            p.UserLimit,
		ImagePath:            p.ImagePath,
		Password:             "",
		Role:                 models.RoleAdmin,
		Verified:             models.VerifiedNo,
		ResetPasswordExpires: s.now().Add(RegistrationWindow),
	}

	if result := s.db.Create(&acc); result.Error != nil {
		return nil, pkgerrors.Wrap(result.Error, "failed to create admin account")
	}

	return &acc, nil
}

// ValidateResetLink checks whether the registration/reset link for the given
// email is still usable. Unknown, already verified and expired accounts all
// yield ErrLinkExpired.
func (s *Service) ValidateResetLink(email string) error {
	var acc models.Account

	result := s.db.Where("email = ? AND verified = ?", email, models.VerifiedNo).First(&acc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrLinkExpired
		}

		return pkgerrors.Wrap(result.Error, "reset link lookup failed")
	}

	if s.now().After(acc.ResetPasswordExpires) {
		return ErrLinkExpired
	}

	return nil
}

// ResetPassword sets a new password for the account and marks it verified.
// For accounts that have not completed registration yet the registration
// window is enforced here as well, so a stale link can not set a password
// even when the separate validation step was skipped.
func (s *Service) ResetPassword(email, newPlaintext string) error {
	var acc models.Account

	result := s.db.Where(emailQueryPattern, email).First(&acc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}

		return pkgerrors.Wrap(result.Error, "reset password lookup failed")
	}

	if !acc.IsVerified() && s.now().After(acc.ResetPasswordExpires) {
		return ErrLinkExpired
	}

	hashed, err := password.Hash(newPlaintext)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to hash new password")
	}

	updates := map[string]interface{}{
		"password": hashed,
		"verified": models.VerifiedYes,
	}

	if result := s.db.Model(&models.Account{}).Where(emailQueryPattern, email).Updates(updates); result.Error != nil {
		return pkgerrors.Wrap(result.Error, "failed to update password")
	}

	return nil
}

// List returns all accounts.
func (s *Service) List() ([]models.Account, error) {
	var accounts []models.Account

	if result := s.db.Find(&accounts); result.Error != nil {
		return nil, pkgerrors.Wrap(result.Error, "failed to list accounts")
	}

	return accounts, nil
}
