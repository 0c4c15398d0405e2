package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/config"
	"github.com/vida-hq/vida-admin/internal/db/models"
	"github.com/vida-hq/vida-admin/internal/password"
)

func seed(cfg *config.Config, db *gorm.DB) {
	// Seed a default admin if the accounts table is empty, so a fresh
	// deployment can be logged into. Change the password after first login.

	var count int64
	db.Model(&models.Account{}).Count(&count)
	if count == 0 {
		hashed, err := password.Hash("changeme")
		if err != nil {
			log.Error().Err(err).Msg("failed to hash seed password")
			return
		}

		db.Create(
			&models.Account{
				Email:                "admin@" + cfg.Webserver.Domain,
				FullName:             "Default Admin",
				Password:             hashed,
				Role:                 models.RoleAdmin,
				Verified:             models.VerifiedYes,
				ResetPasswordExpires: time.Now(),
			},
		)

		log.Warn().Str("email", "admin@"+cfg.Webserver.Domain).Msg("seeded default admin account")
	}
}
