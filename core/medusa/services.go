package medusa

import (
	"context"
	"errors"
)

// ErrNoStore is returned by FirstStore when the store module has no rows.
var ErrNoStore = errors.New("no store configured")

// UserFields is the projection requested from the user registry.
var UserFields = []string{"id", "email", "first_name", "last_name", "role"}

// UserQuery fetches users with the UserFields projection.
type UserQuery interface {
	ListUsers(ctx context.Context) ([]User, error)
}

// UserModule creates users in the registry.
type UserModule interface {
	CreateUsers(ctx context.Context, inputs []CreateUserInput) ([]User, error)
}

// StoreModule lists stores.
type StoreModule interface {
	ListStores(ctx context.Context) ([]Store, error)
}

// Services is the set of backend capabilities a diagnostic runs against.
type Services struct {
	Query  UserQuery
	Users  UserModule
	Stores StoreModule
}

// NewServices wires every capability to the same repository.
func NewServices(repo *Repository) Services {
	return Services{Query: repo, Users: repo, Stores: repo}
}

// AdminUsers returns the users holding the admin role.
func AdminUsers(users []User) []User {
	var admins []User
	for _, u := range users {
		if u.IsAdmin() {
			admins = append(admins, u)
		}
	}
	return admins
}

// FirstStore returns the first store, the only one a backend is expected to have.
func FirstStore(ctx context.Context, stores StoreModule) (Store, error) {
	list, err := stores.ListStores(ctx)
	if err != nil {
		return Store{}, err
	}
	if len(list) == 0 {
		return Store{}, ErrNoStore
	}
	return list[0], nil
}

// Unavailable returns Services whose every call fails with err. Checks run against it
// report the database failure in place of their result.
func Unavailable(err error) Services {
	u := unavailable{err: err}
	return Services{Query: u, Users: u, Stores: u}
}

type unavailable struct {
	err error
}

func (u unavailable) ListUsers(context.Context) ([]User, error) {
	return nil, u.err
}

func (u unavailable) CreateUsers(context.Context, []CreateUserInput) ([]User, error) {
	return nil, u.err
}

func (u unavailable) ListStores(context.Context) ([]Store, error) {
	return nil, u.err
}
