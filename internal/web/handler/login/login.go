// Package login provides the login REST endpoint.
package login

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
	// Path is the path of the login endpoint.
	Path = handler.APIBasePath + "/login"
)

// Service is the login handler service.
type Service struct {
	cfg      *config.Config
	accounts *account.Service
}

// Handler is the login handler.
var Handler = Service{}

// Request is the login request body.
type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.accounts = account.NewService(db)

	app.Post(Path, s.Post)

	return nil
}

// Post handles the login request.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	acc, err := s.accounts.Login(req.Email, req.Password)

	switch {
	case err == nil:
		// the account serializer excludes the password hash
		return c.JSON(fiber.Map{
			"message": "Login successful",
			"user":    acc,
		})
	case errors.Is(err, account.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	case errors.Is(err, account.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	default:
		log.Error().Err(err).Msg("login failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": handler.MsgInternalError,
		})
	}
}
