package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weiyuzhang/dealerhub/internal/domain"
)

type DealerRepository struct {
	pool *pgxpool.Pool
}

func NewDealerRepository(pool *pgxpool.Pool) *DealerRepository {
	return &DealerRepository{pool: pool}
}

func (r *DealerRepository) List(ctx context.Context) ([]*domain.Dealer, error) {
	query := `
		SELECT id, name, business_name, logo, address, city, province,
		       postal_code, business_hours, description, phone,
		       created_at, updated_at
		FROM dealers
		ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list dealers: %w", err)
	}
	defer rows.Close()

	var dealers []*domain.Dealer
	for rows.Next() {
		d, err := scanDealer(rows)
		if err != nil {
			return nil, err
		}
		dealers = append(dealers, d)
	}
	return dealers, rows.Err()
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDealer(row rowScanner) (*domain.Dealer, error) {
	var d domain.Dealer
	err := row.Scan(
		&d.ID, &d.Name, &d.BusinessName, &d.Logo, &d.Address, &d.City, &d.Province,
		&d.PostalCode, &d.BusinessHours, &d.Description, &d.Phone,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDealerNotFound
		}
		return nil, fmt.Errorf("scan dealer: %w", err)
	}
	return &d, nil
}
