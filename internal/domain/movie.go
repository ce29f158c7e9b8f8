package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID          string
	Title       string
	Genre       string
	Language    string
	Duration    string
	Image       string
	Trailer     string
	Price       decimal.Decimal
	Rating      decimal.Decimal
	Theater     string
	Address     string
	Description string
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	// Update replaces every listed field of the stored record. Callers are
	// expected to resend the full field set.
	Update(ctx context.Context, movie *Movie) error
	// Delete removes the record with the given id. Deleting an id that does
	// not exist is a no-op success.
	Delete(ctx context.Context, id string) error
}
