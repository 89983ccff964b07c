package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access. Lookups that can
// miss return (nil, nil) so callers can distinguish absence from store faults.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailContaining(ctx context.Context, fragment string) ([]*User, error)
	FindByBirthdateBefore(ctx context.Context, date time.Time) ([]*User, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	CreateUser(ctx context.Context, user *User) (*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, user *User) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	SearchUsersByEmail(ctx context.Context, fragment string) ([]*User, error)
	SearchUsersByAgeGreaterThan(ctx context.Context, age int) ([]*User, error)
	FindUsersOlderThan(ctx context.Context, date time.Time) ([]*User, error)
}
