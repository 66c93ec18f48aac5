package repository

import (
	"context"

	"github.com/weiyuzhang/dealerhub/internal/domain"
)

type DealerRepository interface {
	// List returns every dealer ordered by name ascending. Ordering is
	// the store's default collation; callers must not assume more.
	List(ctx context.Context) ([]*domain.Dealer, error)
}
