// Package createadmin provides the admin provisioning REST endpoint.
package createadmin

import (
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/account"
	"github.com/vida-hq/vida-admin/internal/config"
	"github.com/vida-hq/vida-admin/internal/notify"
	"github.com/vida-hq/vida-admin/internal/uploads"
	"github.com/vida-hq/vida-admin/internal/web/handler"
)

const (
	// Path is the path of the createadmin endpoint.
	Path = handler.APIBasePath + "/createadmin"

	// ImageFormField is the multipart field carrying the optional profile image.
	ImageFormField = "imageFile"
)

// Service is the createadmin handler service.
type Service struct {
	cfg        *config.Config
	accounts   *account.Service
	store      *uploads.Store
	dispatcher *notify.Dispatcher
	validator  *validator.Validate
}

// Handler is the createadmin handler.
var Handler = Service{}

// Form is the multipart form of the provisioning request. Field names match
// the admin frontend.
type Form struct {
	FullName            string `form:"FullName" validate:"required"`
	Email               string `form:"Email" validate:"required,email"`
	CompanyName         string `form:"CompanyName"`
	PhoneNumber         string `form:"PhoneNumber"`
	CompanyAddressLine1 string `form:"CompanyAddressLine1"`
	CompanyAddressLine2 string `form:"CompanyAddressLine2"`
	State1              string `form:"State1"`
	Country             string `form:"Country"`
	ZipCode             string `form:"ZipCode"`
	UserLimit           string `form:"UserLimit"`
}

// Init initializes the createadmin handler.
func (s *Service) Init(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	store *uploads.Store,
	dispatcher *notify.Dispatcher,
) error {
	if app == nil || cfg == nil || db == nil || store == nil || dispatcher == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.accounts = account.NewService(db)
	s.store = store
	s.dispatcher = dispatcher
	s.validator = validator.New()

	app.Post(Path, s.Post)

	return nil
}

// Post provisions a new admin account. The insert is authoritative, the
// registration email is dispatched in the background and never fails the
// response.
func (s *Service) Post(c *fiber.Ctx) error {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid form data",
		})
	}

	if err := s.validator.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "FullName and a valid Email are required",
		})
	}

	imagePath, err := s.saveImage(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to store uploaded image")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": handler.MsgInternalError,
		})
	}

	acc, err := s.accounts.CreateAdmin(account.CreateAdminParams{
		Email:               form.Email,
		FullName:            form.FullName,
		CompanyName:         form.CompanyName,
		PhoneNumber:         form.PhoneNumber,
		CompanyAddressLine1: form.CompanyAddressLine1,
		CompanyAddressLine2: form.CompanyAddressLine2,
		State:               form.State1,
		Country:             form.Country,
		ZipCode:             form.ZipCode,
		UserLimit:           form.UserLimit,
		ImagePath:           imagePath,
	})
	if err != nil {
		log.Error().Err(err).Str("email", form.Email).Msg("failed to create admin")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": handler.MsgInternalError,
		})
	}

	s.dispatcher.Dispatch(
		acc.Email,
		notify.RegistrationSubject,
		notify.RegistrationBody(s.cfg.Webserver.URL, acc.Email),
	)

	return c.JSON(fiber.Map{
		"message": "Admin created and email sent",
		"result":  acc,
	})
}

// saveImage stores the optional multipart image and returns its reference,
// or "" when no image was sent.
func (s *Service) saveImage(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile(ImageFormField)
	if err != nil {
		// no file in the form
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return s.store.Save(fileHeader.Filename, data)
}
