// Package audit implements the login audit log: an append-only history of
// successful authentications. Entries are never mutated or removed, and
// repeated logins produce repeated entries.
package audit

import "time"

// LoginRecord captures a single successful login event.
type LoginRecord struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress"`
}
