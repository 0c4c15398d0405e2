package config

import (
	"github.com/vida-hq/vida-admin/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Email     Email
	Log       logger.Log
	Title     string
	Uploads   Uploads
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CORSOrigins    string // comma separated list of allowed origins for CORS
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url embedded into registration/reset links
}

// Email holds the SMTP transport settings used for transactional mail.
type Email struct {
	Host string // SMTP host
	Port int    // SMTP port
	User string // SMTP username
	Pass string // SMTP password
	From string // From address for outgoing mail
}

// Uploads holds settings for the profile image blob store.
type Uploads struct {
	Table string // database table backing the blob store
}
