package models

// SystemSettingID is the primary key of the singleton settings row.
const SystemSettingID uint64 = 1

// SystemSetting is the singleton-per-deployment SMTP configuration record.
// At most one row exists; writes go through an atomic upsert keyed on
// SystemSettingID.
type SystemSetting struct {
	ID uint64 `gorm:"primaryKey" json:"ID"`
	// SMTPEmailAddress is the configured sender address.
	SMTPEmailAddress string `gorm:"size:255;not null" json:"SMTPEmailAddress"`
	// SMTPPassword is the bcrypt hash of the configured SMTP password.
	SMTPPassword string `gorm:"size:255;not null" json:"-"`
}
