// Package settings manages the singleton SMTP system setting record.
package settings

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vida-hq/vida-admin/internal/db/models"
	"github.com/vida-hq/vida-admin/internal/password"
)

// ErrSettingNotFound is returned when no system setting row exists yet.
var ErrSettingNotFound = errors.New("system setting not found")

// UpsertResult reports whether an upsert inserted or updated the row.
type UpsertResult string

const (
	// Inserted means the singleton row did not exist before.
	Inserted UpsertResult = "inserted"
	// Updated means an existing row was overwritten.
	Updated UpsertResult = "updated"
)

// Service provides access to the singleton system setting.
type Service struct {
	db *gorm.DB
}

// NewService creates a new settings service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Upsert hashes the SMTP password and writes the singleton row in one
// conflict-resolving statement, so concurrent upserts can not produce a
// second row.
func (s *Service) Upsert(smtpEmail, smtpPlaintextPassword string) (UpsertResult, error) {
	hashed, err := password.Hash(smtpPlaintextPassword)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to hash smtp password")
	}

	outcome := Inserted

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SystemSetting

		result := tx.First(&existing, models.SystemSettingID)
		switch {
		case result.Error == nil:
			outcome = Updated
		case !errors.Is(result.Error, gorm.ErrRecordNotFound):
			return result.Error
		}

		setting := models.SystemSetting{
			ID:               models.SystemSettingID,
			SMTPEmailAddress: smtpEmail,
			SMTPPassword:     hashed,
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&setting).Error
	})
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to upsert system setting")
	}

	return outcome, nil
}

// Get returns the singleton system setting.
func (s *Service) Get() (*models.SystemSetting, error) {
	var setting models.SystemSetting

	result := s.db.First(&setting, models.SystemSettingID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, pkgerrors.Wrap(result.Error, "failed to read system setting")
	}

	return &setting, nil
}
