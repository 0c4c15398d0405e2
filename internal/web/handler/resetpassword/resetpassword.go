// Package resetpassword provides the password reset and reset link
// validation REST endpoints.
package resetpassword

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/account"
	"github.com/vida-hq/vida-admin/internal/config"
	"github.com/vida-hq/vida-admin/internal/web/handler"
)

const (
	// ResetPath is the path of the reset endpoint.
	ResetPath = handler.APIBasePath + "/reset-password"
	// ValidatePath is the path of the link validation endpoint.
	ValidatePath = handler.APIBasePath + "/validate-reset-link"
)

// Service is the reset password handler service.
type Service struct {
	cfg       *config.Config
	accounts  *account.Service
	validator *validator.Validate
}

// Handler is the reset password handler.
var Handler = Service{}

// Request is the reset request body.
type Request struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// Init initializes the reset password handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.accounts = account.NewService(db)
	s.validator = validator.New()

	app.Post(ResetPath, s.Post)
	app.Get(ValidatePath, s.GetValidate)

	return nil
}

// Post sets a new password and marks the account verified. The registration
// window is enforced for accounts that have not completed registration.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := s.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "email and newPassword are required",
		})
	}

	err := s.accounts.ResetPassword(req.Email, req.NewPassword)

	switch {
	case err == nil:
		return c.JSON(fiber.Map{
			"message": "Password updated successfully.",
		})
	case errors.Is(err, account.ErrLinkExpired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Link is invalid or has expired.",
		})
	case errors.Is(err, account.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	default:
		log.Error().Err(err).Msg("failed to reset password")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating password.",
		})
	}
}

// GetValidate checks whether the reset link for ?email= is still usable.
// Unknown and expired links are indistinguishable.
func (s *Service) GetValidate(c *fiber.Ctx) error {
	email := c.Query("email")

	err := s.accounts.ValidateResetLink(email)

	switch {
	case err == nil:
		return c.JSON(fiber.Map{
			"message": "Link is valid.",
		})
	case errors.Is(err, account.ErrLinkExpired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Link is invalid or has expired.",
		})
	default:
		log.Error().Err(err).Msg("failed to validate reset link")

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Link is invalid or has expired.",
		})
	}
}
