package repository

import "time"

// User represents a users row.
type User struct {
	ID        int
	UID       string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
