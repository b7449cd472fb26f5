package store

import "strings"

// IsUniqueViolation reports whether the provided error references a sqlite
// unique constraint failure. When column is provided, the helper looks for
// the qualified column name in the error message.
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	if column == "" {
		return true
	}
	return strings.Contains(msg, column)
}
