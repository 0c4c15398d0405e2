package settings

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/vida-hq/vida-admin/internal/db/models"
	"github.com/vida-hq/vida-admin/internal/password"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.SystemSetting{}); err != nil {
		t.Fatalf("failed to migrate system setting model: %v", err)
	}

	return db
}

func TestUpsertInsertThenUpdate(t *testing.T) {
	db := newTestDB(t)
	s := NewService(db)

	res, err := s.Upsert("smtp@x.com", "pass1")
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if res != Inserted {
		t.Errorf("first Upsert() = %q, want %q", res, Inserted)
	}

	res, err = s.Upsert("smtp2@x.com", "pass2")
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	if res != Updated {
		t.Errorf("second Upsert() = %q, want %q", res, Updated)
	}

	// singleton: still exactly one row
	var count int64
	db.Model(&models.SystemSetting{}).Count(&count)

	if count != 1 {
		t.Errorf("system settings row count = %d, want 1", count)
	}

	setting, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if setting.SMTPEmailAddress != "smtp2@x.com" {
		t.Errorf("SMTPEmailAddress = %q, want smtp2@x.com", setting.SMTPEmailAddress)
	}
}

func TestUpsertHashesPassword(t *testing.T) {
	db := newTestDB(t)
	s := NewService(db)

	if _, err := s.Upsert("smtp@x.com", "plain-secret"); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	setting, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if setting.SMTPPassword == "plain-secret" || setting.SMTPPassword == "" {
		t.Fatalf("stored password must be a hash, got %q", setting.SMTPPassword)
	}

	match, err := password.Verify("plain-secret", setting.SMTPPassword)
	if err != nil || !match {
		t.Errorf("stored hash must verify the plaintext, match=%v err=%v", match, err)
	}
}

func TestGetWithoutRow(t *testing.T) {
	s := NewService(newTestDB(t))

	if _, err := s.Get(); !errors.Is(err, ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}
