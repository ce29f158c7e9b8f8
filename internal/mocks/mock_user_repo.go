package mocks

import (
	"context"

	"github.com/TejaBandari20/moviemagic/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CreateFunc        func(ctx context.Context, user *domain.User) error
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, email, name string, update domain.ProfileUpdate) error
	SetAdminFunc      func(ctx context.Context, email string) error
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, email, name string, update domain.ProfileUpdate) error {
	return m.UpdateProfileFunc(ctx, email, name, update)
}

func (m *MockUserRepo) SetAdmin(ctx context.Context, email string) error {
	return m.SetAdminFunc(ctx, email)
}
