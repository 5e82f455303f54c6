package models

import "time"

// Session is the bookkeeping row for an issued session token: created at
// login, deleted at logout. Token validity itself is decided by the JWT
// signature and expiry, not by this row.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}
