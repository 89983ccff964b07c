package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user exists for a given ID.
var ErrUserNotFound = errors.New("user not found")

// User represents a tracked user
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FirstName string    `json:"firstName" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Birthdate time.Time `json:"birthdate" gorm:"type:date;not null"`
	Email     string    `json:"email" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// NewUser creates a new user with a generated ID
func NewUser(firstName, lastName string, birthdate time.Time, email string) *User {
	return &User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Birthdate: birthdate,
		Email:     email,
	}
}
