package mocks

import (
	"context"

	"github.com/TejaBandari20/moviemagic/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc         func(ctx context.Context, booking *domain.Booking) error
	GetByPurchaserFunc func(ctx context.Context, email string) ([]*domain.Booking, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) GetByPurchaser(ctx context.Context, email string) ([]*domain.Booking, error) {
	return m.GetByPurchaserFunc(ctx, email)
}
