package domain

import (
	"errors"
	"time"
)

var (
	ErrCarNotFound = errors.New("car not found")
	// ErrCarNoDealer means the car exists but has no dealer linked.
	// Kept separate from ErrCarNotFound: both surface as 404 with
	// different messages.
	ErrCarNoDealer = errors.New("car has no associated dealer")
)

type CarStatus string

const (
	CarStatusActive   CarStatus = "active"
	CarStatusDraft    CarStatus = "draft"
	CarStatusArchived CarStatus = "archived"
)

type Car struct {
	ID           string
	Name         string
	BasePrice    float64
	Description  *string
	Thumbnail    *string
	DefaultColor *string
	Status       CarStatus
	DealerID     *string // nil when no dealer is linked
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
