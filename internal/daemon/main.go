// Package daemon wires the database, storage and web service together.
package daemon

import (
	"fmt"

	blobmysql "github.com/gofiber/storage/mysql/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/config"
	"github.com/vida-hq/vida-admin/internal/db/dsn"
	"github.com/vida-hq/vida-admin/internal/db/models"
	"github.com/vida-hq/vida-admin/internal/notify"
	"github.com/vida-hq/vida-admin/internal/uploads"
	"github.com/vida-hq/vida-admin/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	dbDriver := gormmysql.Open(dsn.Create(cfg)) // open db with gorm mysql driver

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	if err = db.AutoMigrate(
		&models.Account{},
		&models.AuditLogEntry{},
		&models.SystemSetting{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	seed(cfg, db)

	// profile image blob storage shares the relational store
	blobStorage := blobmysql.New(blobmysql.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         cfg.Uploads.Table,
	})

	store := uploads.NewStore(blobStorage)
	dispatcher := notify.NewDispatcher(notify.NewSMTPSender(cfg.Email))

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, store, dispatcher),
	}
}
