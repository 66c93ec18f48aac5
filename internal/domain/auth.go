package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrTokenInvalid = errors.New("token is invalid or expired")
	ErrUnauthorized = errors.New("unauthorized")
)

type User struct {
	ID        string
	Email     string
	Name      *string
	Type      string // role discriminator; only session presence is enforced today
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MagicToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Session is the identity resolved from a verified bearer token for the
// duration of one request. Handlers receive it explicitly; nothing reads
// an ambient current-session global.
type Session struct {
	UserID string
	Email  string
	Name   string // empty when the token carries no name claim
	Type   string
}
