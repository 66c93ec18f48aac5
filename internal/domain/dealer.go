package domain

import (
	"errors"
	"time"
)

var ErrDealerNotFound = errors.New("dealer not found")

type Dealer struct {
	ID            string
	Name          string
	BusinessName  *string
	Logo          *string
	Address       *string
	City          *string
	Province      *string
	PostalCode    *string
	BusinessHours *string
	Description   *string
	Phone         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
