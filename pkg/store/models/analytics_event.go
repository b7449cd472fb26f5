package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Analytics event types. They mirror activity types but are namespaced
// independently for admin reporting.
const (
	EventUserSignup    = "user_signup"
	EventUserLogin     = "user_login"
	EventLegalQuery    = "legal_query"
	EventLicenseSearch = "license_search"
	EventFAQView       = "faq_view"
)

// Attributes is an arbitrary JSON document attached to an analytics event,
// stored as serialized text in the embedded database.
type Attributes map[string]any

// Value implements driver.Valuer.
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal attributes: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (a *Attributes) Scan(src any) error {
	if src == nil {
		*a = Attributes{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported attributes source %T", src)
	}
	if len(raw) == 0 {
		*a = Attributes{}
		return nil
	}
	return json.Unmarshal(raw, a)
}

// AnalyticsEvent is one aggregate usage record, decoupled from a specific
// user's activity trail. Rows are append-only.
type AnalyticsEvent struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string     `gorm:"column:event_type;index;not null" json:"type"`
	Data      Attributes `gorm:"type:text" json:"data"`
	CreatedAt time.Time  `gorm:"column:created_at;index;autoCreateTime" json:"timestamp"`
}
