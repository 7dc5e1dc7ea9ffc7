package medusa_test

import (
	"context"
	"errors"
	"testing"

	"backend-doctor/core/medusa"
	"backend-doctor/core/medusa/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminUsers(t *testing.T) {
	users := []medusa.User{
		{Email: "a@shop.test", Role: "admin"},
		{Email: "b@shop.test", Role: "member"},
		{Email: "c@shop.test", Role: "Admin"},
		{Email: "d@shop.test", Role: "admin"},
	}

	admins := medusa.AdminUsers(users)
	assert.Len(t, admins, 2)
	assert.Equal(t, "a@shop.test", admins[0].Email)
	assert.Equal(t, "d@shop.test", admins[1].Email)

	assert.Empty(t, medusa.AdminUsers(nil))
}

func TestFirstStore(t *testing.T) {
	ctx := context.Background()

	t.Run("First Of Many", func(t *testing.T) {
		m := new(mocks.Services)
		m.On("ListStores", mock.Anything).Return([]medusa.Store{{ID: "store_1", Name: "Main"}, {ID: "store_2"}}, nil)

		store, err := medusa.FirstStore(ctx, m)
		assert.NoError(t, err)
		assert.Equal(t, "store_1", store.ID)
	})

	t.Run("None", func(t *testing.T) {
		m := new(mocks.Services)
		m.On("ListStores", mock.Anything).Return([]medusa.Store{}, nil)

		_, err := medusa.FirstStore(ctx, m)
		assert.ErrorIs(t, err, medusa.ErrNoStore)
	})

	t.Run("Query Error", func(t *testing.T) {
		m := new(mocks.Services)
		m.On("ListStores", mock.Anything).Return(nil, errors.New("boom"))

		_, err := medusa.FirstStore(ctx, m)
		assert.EqualError(t, err, "boom")
	})
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	connErr := errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
	services := medusa.Unavailable(connErr)

	_, err := services.Query.ListUsers(ctx)
	assert.ErrorIs(t, err, connErr)

	_, err = services.Users.CreateUsers(ctx, []medusa.CreateUserInput{{Email: "a@b.test"}})
	assert.ErrorIs(t, err, connErr)

	_, err = medusa.FirstStore(ctx, services.Stores)
	assert.ErrorIs(t, err, connErr)
}

func TestConfig(t *testing.T) {
	t.Run("Flags Require Exact True", func(t *testing.T) {
		assert.True(t, medusa.Config{DisableAdmin: "true"}.AdminDisabled())
		assert.False(t, medusa.Config{DisableAdmin: "TRUE"}.AdminDisabled())
		assert.False(t, medusa.Config{DisableAdmin: "1"}.AdminDisabled())
		assert.True(t, medusa.Config{CreateAdminUser: "true"}.ShouldCreateAdmin())
		assert.False(t, medusa.Config{}.ShouldCreateAdmin())
	})

	t.Run("SeedEmail", func(t *testing.T) {
		assert.Equal(t, medusa.DefaultAdminEmail, medusa.Config{}.SeedEmail())
		assert.Equal(t, "ops@shop.test", medusa.Config{AdminEmail: "ops@shop.test"}.SeedEmail())
	})

	t.Run("Environment Order", func(t *testing.T) {
		env := medusa.Config{Port: "9000", AdminCORS: "http://localhost:7001"}.Environment()
		names := make([]string, 0, len(env))
		for _, e := range env {
			names = append(names, e.Name)
		}
		assert.Equal(t, []string{
			"DISABLE_MEDUSA_ADMIN", "MEDUSA_BACKEND_URL", "ADMIN_CORS",
			"MEDUSA_CREATE_ADMIN_USER", "MEDUSA_ADMIN_EMAIL", "PORT",
		}, names)
		assert.Equal(t, "http://localhost:7001", env[2].Value)
		assert.Equal(t, "9000", env[5].Value)
	})

	t.Run("ServerPort Defaults Only For The Probe", func(t *testing.T) {
		cfg := medusa.Config{}
		assert.Equal(t, medusa.DefaultPort, cfg.ServerPort())
		assert.Equal(t, "", cfg.Environment()[5].Value)
		assert.Equal(t, "9100", medusa.Config{Port: "9100"}.ServerPort())
	})
}
