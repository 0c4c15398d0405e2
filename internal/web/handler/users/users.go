// Package users provides the account listing REST endpoint.
package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/account"
	"github.com/vida-hq/vida-admin/internal/config"
	"github.com/vida-hq/vida-admin/internal/web/handler"
)

const (
	// Path is the path of the users endpoint.
	Path = handler.APIBasePath + "/users"
)

// Service is the users handler service.
type Service struct {
	cfg      *config.Config
	accounts *account.Service
}

// Handler is the users handler.
var Handler = Service{}

// Init initializes the users handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.accounts = account.NewService(db)

	app.Get(Path, s.Get)

	return nil
}

// Get returns all accounts. Password hashes are excluded by the serializer.
func (s *Service) Get(c *fiber.Ctx) error {
	accounts, err := s.accounts.List()
	if err != nil {
		log.Error().Err(err).Msg("failed to list accounts")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": handler.MsgInternalError,
		})
	}

	return c.JSON(accounts)
}
