package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weiyuzhang/dealerhub/internal/domain"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindOrCreate(ctx context.Context, email string) (*domain.User, error) {
	query := `
		INSERT INTO users (email)
		VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id, email, name, user_type, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, email)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, name, user_type, created_at, updated_at FROM users WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	return scanUser(row)
}

func (r *UserRepository) Upsert(ctx context.Context, id, email string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET updated_at = NOW()`,
		id, email,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) CreateMagicToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO magic_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		userID, tokenHash, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("create magic token: %w", err)
	}
	return nil
}

func (r *UserRepository) ClaimMagicToken(ctx context.Context, tokenHash string) (*domain.MagicToken, error) {
	// Single-use: the UPDATE only matches unclaimed, unexpired tokens, so
	// concurrent claims of the same token cannot both succeed.
	query := `
		UPDATE magic_tokens
		SET    used_at = NOW()
		WHERE  token_hash = $1
		  AND  used_at IS NULL
		  AND  expires_at > NOW()
		RETURNING id, user_id, token_hash, expires_at, used_at, created_at`

	var mt domain.MagicToken
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(
		&mt.ID, &mt.UserID, &mt.TokenHash, &mt.ExpiresAt, &mt.UsedAt, &mt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("claim magic token: %w", err)
	}
	return &mt, nil
}

func (r *UserRepository) PurgeExpiredTokens(ctx context.Context, before time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM magic_tokens WHERE expires_at < $1 OR used_at IS NOT NULL`,
		before,
	)
	if err != nil {
		return 0, fmt.Errorf("purge expired tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Type, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
