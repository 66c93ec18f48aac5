package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/weiyuzhang/dealerhub/internal/domain"
	"github.com/weiyuzhang/dealerhub/internal/repository"
)

type CatalogUsecase struct {
	cars    repository.CarRepository
	dealers repository.DealerRepository
}

func NewCatalogUsecase(cars repository.CarRepository, dealers repository.DealerRepository) *CatalogUsecase {
	return &CatalogUsecase{cars: cars, dealers: dealers}
}

func (u *CatalogUsecase) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	car, err := u.cars.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return car, nil
}

// GetCarDealer resolves the dealer linked to a car. The two absence cases
// stay distinct: domain.ErrCarNotFound when the car does not exist,
// domain.ErrCarNoDealer when it exists without a dealer.
func (u *CatalogUsecase) GetCarDealer(ctx context.Context, carID string) (*domain.Dealer, error) {
	_, dealer, err := u.cars.GetWithDealer(ctx, carID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, domain.ErrCarNoDealer
	}
	return dealer, nil
}

// DealerSummary is the directory projection of a dealer.
type DealerSummary struct {
	ID           string
	Name         string
	BusinessName string
	Location     string
}

// ListDealers returns all dealers ordered by name, with businessName
// falling back to name and location built from the non-empty address
// segments.
func (u *CatalogUsecase) ListDealers(ctx context.Context) ([]DealerSummary, error) {
	dealers, err := u.dealers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dealers: %w", err)
	}

	summaries := make([]DealerSummary, len(dealers))
	for i, d := range dealers {
		businessName := d.Name
		if d.BusinessName != nil && *d.BusinessName != "" {
			businessName = *d.BusinessName
		}
		summaries[i] = DealerSummary{
			ID:           d.ID,
			Name:         d.Name,
			BusinessName: businessName,
			Location:     joinLocation(d.Address, d.City, d.Province),
		}
	}
	return summaries, nil
}

// joinLocation joins the non-empty segments with ", ". All-empty input
// yields "".
func joinLocation(segments ...*string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != nil && *s != "" {
			parts = append(parts, *s)
		}
	}
	return strings.Join(parts, ", ")
}
