package medusa

import (
	"time"

	"gorm.io/gorm"
)

// RoleAdmin is the role value of users allowed into the admin panel.
const RoleAdmin = "admin"

// User is a row of the backend's user registry.
type User struct {
	ID        string         `gorm:"column:id;primaryKey;type:text" json:"id"`
	Email     string         `gorm:"column:email;type:text" json:"email"`
	FirstName string         `gorm:"column:first_name;type:text" json:"first_name"`
	LastName  string         `gorm:"column:last_name;type:text" json:"last_name"`
	Role      string         `gorm:"column:role" json:"role"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at" json:"-"`
}

// TableName overrides the table name for users.
func (User) TableName() string {
	return "user"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Store is a row of the store module. A backend runs exactly one.
type Store struct {
	ID        string         `gorm:"column:id;primaryKey;type:text" json:"id"`
	Name      string         `gorm:"column:name;type:text" json:"name"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at" json:"-"`
}

// TableName overrides the table name for stores.
func (Store) TableName() string {
	return "store"
}

// CreateUserInput carries the fields accepted when seeding a user.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
}
