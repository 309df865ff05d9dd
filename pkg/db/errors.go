package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// constraint violation. Works for the message text both drivers emit; when
// constraintName is provided, the helper looks for that text instead.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
