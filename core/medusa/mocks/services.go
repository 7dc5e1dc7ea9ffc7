package mocks

import (
	"context"

	"backend-doctor/core/medusa"

	"github.com/stretchr/testify/mock"
)

// Services is a mock implementation of medusa.UserQuery, medusa.UserModule and
// medusa.StoreModule.
type Services struct {
	mock.Mock
}

func (m *Services) ListUsers(ctx context.Context) ([]medusa.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]medusa.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Services) CreateUsers(ctx context.Context, inputs []medusa.CreateUserInput) ([]medusa.User, error) {
	args := m.Called(ctx, inputs)
	if users, ok := args.Get(0).([]medusa.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Services) ListStores(ctx context.Context) ([]medusa.Store, error) {
	args := m.Called(ctx)
	if stores, ok := args.Get(0).([]medusa.Store); ok {
		return stores, args.Error(1)
	}
	return nil, args.Error(1)
}

// Bundle exposes the mock as every capability of medusa.Services.
func (m *Services) Bundle() medusa.Services {
	return medusa.Services{Query: m, Users: m, Stores: m}
}
