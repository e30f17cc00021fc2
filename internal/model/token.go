package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenRecord is the persisted blacklist row for a minted token. One row is
// written per token at issuance time and flipped to revoked at logout; rows
// are kept until expiry-based cleanup.
type TokenRecord struct {
	ID           uuid.UUID
	JTI          string
	TokenType    string
	UserIdentity string
	Revoked      bool
	Expires      time.Time
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
