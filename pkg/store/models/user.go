package models

import "time"

// User is the registered visitor identity. The stored Password is a
// fingerprint, never plaintext. IsAdmin is computed once at insert time from
// the fixed administrator email and is never re-derived afterwards; there is
// no supported promotion path.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"column:first_name;not null" json:"firstName"`
	LastName  string    `gorm:"column:last_name;not null" json:"lastName"`
	Email     string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"index" json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false" json:"isAdmin"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
