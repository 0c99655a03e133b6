package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered guest account.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsVerified reports whether the email address has been confirmed.
func (u *User) IsVerified() bool {
	return u != nil && u.EmailVerifiedAt != nil
}
