// Package systemsetting provides the SMTP system setting REST endpoint.
package systemsetting

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/config"
	"github.com/vida-hq/vida-admin/internal/settings"
	"github.com/vida-hq/vida-admin/internal/web/handler"
)

const (
	// Path is the path of the system setting endpoint.
	Path = handler.APIBasePath + "/SystemSetting"
)

// Service is the system setting handler service.
type Service struct {
	cfg       *config.Config
	settings  *settings.Service
	validator *validator.Validate
}

// Handler is the system setting handler.
var Handler = Service{}

// Request is the upsert request body. Field names match the admin frontend.
type Request struct {
	SMTPEmailAddress string `json:"SMTPEmailAddress" validate:"required,email"`
	SMTPPassword     string `json:"SMTPPassword" validate:"required"`
}

// Init initializes the system setting handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.settings = settings.NewService(db)
	s.validator = validator.New()

	app.Post(Path, s.Post)

	return nil
}

// Post upserts the singleton SMTP setting.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := s.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "SMTPEmailAddress and SMTPPassword are required",
		})
	}

	result, err := s.settings.Upsert(req.SMTPEmailAddress, req.SMTPPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to upsert system setting")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": handler.MsgInternalError,
		})
	}

	message := "SMTP Details Inserted"
	if result == settings.Updated {
		message = "SMTP Details Updated"
	}

	return c.JSON(fiber.Map{
		"message": message,
		"result":  result,
	})
}
