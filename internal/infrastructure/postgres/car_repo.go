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

type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `
		SELECT id, name, base_price, description, thumbnail, default_color,
		       status, dealer_id, created_at, updated_at
		FROM cars
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	return scanCar(row)
}

// GetWithDealer reads the car and its dealer atomically in one query.
// A car without a dealer comes back as (car, nil, nil).
func (r *CarRepository) GetWithDealer(ctx context.Context, id string) (*domain.Car, *domain.Dealer, error) {
	query := `
		SELECT c.id, c.name, c.base_price, c.description, c.thumbnail, c.default_color,
		       c.status, c.dealer_id, c.created_at, c.updated_at,
		       d.id, d.name, d.business_name, d.logo, d.address, d.city, d.province,
		       d.postal_code, d.business_hours, d.description, d.phone,
		       d.created_at, d.updated_at
		FROM cars c
		LEFT JOIN dealers d ON d.id = c.dealer_id
		WHERE c.id = $1`

	var (
		c domain.Car
		// Dealer columns scanned into pointers: all NULL when the LEFT
		// JOIN finds no row.
		dID, dName, dBusinessName, dLogo, dAddress, dCity, dProvince *string
		dPostalCode, dBusinessHours, dDescription, dPhone            *string
		dCreatedAt, dUpdatedAt                                       *time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.BasePrice, &c.Description, &c.Thumbnail, &c.DefaultColor,
		&c.Status, &c.DealerID, &c.CreatedAt, &c.UpdatedAt,
		&dID, &dName, &dBusinessName, &dLogo, &dAddress, &dCity, &dProvince,
		&dPostalCode, &dBusinessHours, &dDescription, &dPhone,
		&dCreatedAt, &dUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrCarNotFound
		}
		return nil, nil, fmt.Errorf("get car with dealer: %w", err)
	}

	if dID == nil {
		return &c, nil, nil
	}

	d := domain.Dealer{
		ID:            *dID,
		Name:          *dName,
		BusinessName:  dBusinessName,
		Logo:          dLogo,
		Address:       dAddress,
		City:          dCity,
		Province:      dProvince,
		PostalCode:    dPostalCode,
		BusinessHours: dBusinessHours,
		Description:   dDescription,
		Phone:         *dPhone,
		CreatedAt:     *dCreatedAt,
		UpdatedAt:     *dUpdatedAt,
	}
	return &c, &d, nil
}

func scanCar(row pgx.Row) (*domain.Car, error) {
	var c domain.Car
	err := row.Scan(
		&c.ID, &c.Name, &c.BasePrice, &c.Description, &c.Thumbnail, &c.DefaultColor,
		&c.Status, &c.DealerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("scan car: %w", err)
	}
	return &c, nil
}
