// Package main provides the entry point for the Vida admin backend.
// It runs a REST API built on the Fiber framework for user authentication,
// admin account provisioning, password reset with expiring registration
// links, SMTP system settings, and an append-only audit log. The application
// uses gorm for data persistence and sends transactional email in the
// background.
package main
