package models

import "time"

// Activity types recorded by the kiosk features.
const (
	ActivitySignup        = "signup"
	ActivityLogin         = "login"
	ActivityLegalQuery    = "legal_query"
	ActivityLicenseSearch = "license_search"
	ActivityFAQView       = "faq_view"
)

// Activity is one logged user-initiated action. Rows are append-only. UserID
// is a plain reference with no foreign-key constraint: orphaned references
// are tolerated.
type Activity struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"column:user_id;index" json:"userId"`
	Type        string    `gorm:"column:activity_type;not null" json:"type"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;index;autoCreateTime" json:"timestamp"`
}
