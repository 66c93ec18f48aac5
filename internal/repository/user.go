package repository

import (
	"context"
	"time"

	"github.com/weiyuzhang/dealerhub/internal/domain"
)

type UserRepository interface {
	FindOrCreate(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Upsert records an externally-issued identity so protected routes
	// always have a backing users row.
	Upsert(ctx context.Context, id, email string) error
	CreateMagicToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	ClaimMagicToken(ctx context.Context, tokenHash string) (*domain.MagicToken, error)
	PurgeExpiredTokens(ctx context.Context, before time.Time) (int, error)
}
