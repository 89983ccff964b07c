package user

import "github.com/google/uuid"

// UserDTO is the transport representation of a User
type UserDTO struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	FirstName string     `json:"firstName" validate:"required"`
	LastName  string     `json:"lastName" validate:"required"`
	Birthdate Date       `json:"birthdate" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
}

// ToDTO projects a stored user onto its transport shape.
func ToDTO(u *User) UserDTO {
	id := u.ID
	return UserDTO{
		ID:        &id,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Birthdate: Date{Time: u.Birthdate},
		Email:     u.Email,
	}
}

// ToDTOs maps a slice of users.
func ToDTOs(users []*User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, ToDTO(u))
	}
	return dtos
}

// ToEntity builds a new, unidentified user from a DTO. Any ID carried by the
// DTO is dropped: identities are assigned on create and forced on update.
func ToEntity(dto UserDTO) *User {
	return &User{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Birthdate: dto.Birthdate.Time,
		Email:     dto.Email,
	}
}
