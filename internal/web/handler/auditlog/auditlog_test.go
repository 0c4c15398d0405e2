package auditlog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/config"
	"github.com/vida-hq/vida-admin/internal/db/models"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.AuditLogEntry{}); err != nil {
		t.Fatalf("failed to migrate audit log model: %v", err)
	}

	app := fiber.New()

	var s Service
	if err := s.Init(app, &config.Config{}, db); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	return app, db
}

func postRecord(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, RecordPath, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestPostRecordsEntry(t *testing.T) {
	app, db := setupApp(t)

	resp := postRecord(t, app, Request{
		Action:    "Login",
		Status:    "Success",
		Details:   Details{UserEmail: "bob@x.com"},
		Timestamp: "2026-08-30T10:00:00Z",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var entry models.AuditLogEntry
	if result := db.First(&entry); result.Error != nil {
		t.Fatalf("failed to load entry: %v", result.Error)
	}

	if entry.Action != "Login" || entry.Status != "Success" || entry.UserEmail != "bob@x.com" {
		t.Errorf("stored entry = %+v", entry)
	}

	want := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if !entry.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", entry.Timestamp, want)
	}
}

func TestPostEpochMillisTimestamp(t *testing.T) {
	app, db := setupApp(t)

	resp := postRecord(t, app, Request{
		Action:    "Logout",
		Timestamp: "1756500000000",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var entry models.AuditLogEntry
	if result := db.First(&entry); result.Error != nil {
		t.Fatalf("failed to load entry: %v", result.Error)
	}

	if !entry.Timestamp.Equal(time.UnixMilli(1756500000000).UTC()) {
		t.Errorf("timestamp = %v", entry.Timestamp)
	}
}

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name string
		body Request
	}{
		{name: "missing action", body: Request{Timestamp: "2026-08-30T10:00:00Z"}},
		{name: "missing timestamp", body: Request{Action: "Login"}},
		{name: "bad timestamp", body: Request{Action: "Login", Timestamp: "yesterday"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			app, _ := setupApp(t)

			resp := postRecord(t, app, test.body)

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestGetNewestFirst(t *testing.T) {
	app, db := setupApp(t)

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		result := db.Create(&models.AuditLogEntry{
			Action:    "Action",
			UserEmail: "bob@x.com",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if result.Error != nil {
			t.Fatalf("failed to create entry: %v", result.Error)
		}
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, ViewPath, nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var entries []models.AuditLogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Errorf("entries not ordered newest first at index %d", i)
		}
	}
}
