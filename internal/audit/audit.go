// Package audit provides the append-only log of security-relevant actions.
package audit

import (
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/db/models"
)

// ListLimit bounds how many entries List returns.
const ListLimit = 100

// Service records and retrieves audit log entries.
type Service struct {
	db *gorm.DB
}

// NewService creates a new audit service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Record appends one immutable entry.
func (s *Service) Record(action, status, userEmail string, timestamp time.Time) error {
	entry := models.AuditLogEntry{
		Action:    action,
		Status:    status,
		UserEmail: userEmail,
		Timestamp: timestamp,
	}

	if result := s.db.Create(&entry); result.Error != nil {
		return pkgerrors.Wrap(result.Error, "failed to record audit log entry")
	}

	return nil
}

// List returns up to ListLimit entries, newest first.
func (s *Service) List() ([]models.AuditLogEntry, error) {
	var entries []models.AuditLogEntry

	result := s.db.Order("timestamp DESC").Limit(ListLimit).Find(&entries)
	if result.Error != nil {
		return nil, pkgerrors.Wrap(result.Error, "failed to fetch audit log entries")
	}

	return entries, nil
}
