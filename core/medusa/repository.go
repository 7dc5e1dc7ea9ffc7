package medusa

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Repository reads and seeds users and stores directly in the backend database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListUsers returns every live user with the UserFields projection.
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := r.db.WithContext(ctx).Select(UserFields).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}

// CreateUsers inserts one user per input inside a single transaction.
func (r *Repository) CreateUsers(ctx context.Context, inputs []CreateUserInput) ([]User, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	users := make([]User, 0, len(inputs))
	for _, in := range inputs {
		users = append(users, User{
			ID:        NewUserID(),
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Role:      in.Role,
		})
	}

	if err := r.db.WithContext(ctx).Create(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to create users: %w", err)
	}
	return users, nil
}

// ListStores returns every live store.
func (r *Repository) ListStores(ctx context.Context) ([]Store, error) {
	var stores []Store
	if err := r.db.WithContext(ctx).Select("id", "name").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	return stores, nil
}

// NewUserID returns a prefixed ULID in the format the backend uses for user ids.
func NewUserID() string {
	return "user_" + ulid.Make().String()
}
