// Package auditlog provides the audit log REST endpoints.
package auditlog

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/audit"
	"github.com/vida-hq/vida-admin/internal/config"
	"github.com/vida-hq/vida-admin/internal/web/handler"
)

const (
	// RecordPath is the path of the record endpoint.
	RecordPath = handler.APIBasePath + "/audit-log"
	// ViewPath is the path of the retrieval endpoint.
	ViewPath = handler.APIBasePath + "/view-audit-log"
)

// Service is the audit log handler service.
type Service struct {
	cfg       *config.Config
	audit     *audit.Service
	validator *validator.Validate
}

// Handler is the audit log handler.
var Handler = Service{}

// Details carries the per-action metadata of a record request.
type Details struct {
	UserEmail string `json:"userEmail"`
}

// Request is the record request body.
type Request struct {
	Action    string  `json:"action" validate:"required"`
	Status    string  `json:"status"`
	Details   Details `json:"details"`
	Timestamp string  `json:"timestamp" validate:"required"`
}

// Init initializes the audit log handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.audit = audit.NewService(db)
	s.validator = validator.New()

	app.Post(RecordPath, s.Post)
	app.Get(ViewPath, s.Get)

	return nil
}

// Post appends one audit log entry.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := s.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "action and timestamp are required",
		})
	}

	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid timestamp",
		})
	}

	if err := s.audit.Record(req.Action, req.Status, req.Details.UserEmail, ts); err != nil {
		log.Error().Err(err).Msg("failed to record audit log entry")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record log entry",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Log entry recorded",
	})
}

// Get returns the newest entries, capped by the audit service.
func (s *Service) Get(c *fiber.Ctx) error {
	entries, err := s.audit.List()
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch audit log entries")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch audit logs",
		})
	}

	return c.JSON(entries)
}

// parseTimestamp accepts RFC3339 strings and unix epoch milliseconds.
func parseTimestamp(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return time.UnixMilli(millis).UTC(), nil
}
