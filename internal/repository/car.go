package repository

import (
	"context"

	"github.com/weiyuzhang/dealerhub/internal/domain"
)

// UseCase depends on interfaces, not concrete implementations, so the
// store can be swapped and tests can pass fakes.
type CarRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Car, error)

	// GetWithDealer reads the car and its dealer in one joined query.
	// Returns (car, nil, nil) when the car exists but has no dealer;
	// domain.ErrCarNotFound when the car is absent.
	GetWithDealer(ctx context.Context, id string) (*domain.Car, *domain.Dealer, error)
}
