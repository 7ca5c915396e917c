package model

import "time"

// User represents a platform account row.
type User struct {
	ID          int
	Firstname   string
	Lastname    string
	Email       string
	Password    string
	NocTransfer string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
