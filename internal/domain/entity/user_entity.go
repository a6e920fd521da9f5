package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// PasswordHash is nil for accounts created by an external identity provider;
// such accounts cannot log in with a local password.
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
