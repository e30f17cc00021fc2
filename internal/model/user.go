package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Confirmed    bool
	ConfirmedAt  *time.Time
	CreatedAt    time.Time
}

// AdminUser has no email and no confirmation flow.
type AdminUser struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// AuthUser is the identity attached to a request after the auth middleware
// has validated the bearer token.
type AuthUser struct {
	ID   uuid.UUID
	Role string
	JTI  string
}

func (u *User) ToDict() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"email":     u.Email,
		"confirmed": u.Confirmed,
	}
}
