package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"
	"github.com/wojciech1000000/FitnessTracker/pkg/logger"

	"github.com/google/uuid"
)

// userService implements the user.UserService interface
type userService struct {
	userRepo user.UserRepository
	now      func() time.Time
}

// NewUserService creates a new user service
func NewUserService(userRepo user.UserRepository) user.UserService {
	return &userService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// GetAllUsers returns a snapshot of all users, no guaranteed order.
func (s *userService) GetAllUsers(ctx context.Context) ([]*user.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user %s: %v", id, err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// CreateUser persists a new user; the identity is assigned here, never taken
// from the input.
func (s *userService) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	u.ID = uuid.New()

	if err := s.userRepo.Create(ctx, u); err != nil {
		logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User created with ID: %s", u.ID)
	return u, nil
}

// UpdateUser replaces all mutable fields of the stored record. The stored ID
// always remains the path ID, regardless of any ID carried by the input.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, data *user.User) (*user.User, error) {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user %s for update: %v", id, err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, user.ErrUserNotFound
	}

	existing.FirstName = data.FirstName
	existing.LastName = data.LastName
	existing.Birthdate = data.Birthdate
	existing.Email = data.Email

	if err := s.userRepo.Update(ctx, existing); err != nil {
		logger.Error("Failed to update user %s: %v", id, err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.Info("User updated with ID: %s", existing.ID)
	return existing, nil
}

// DeleteUser removes a user. Related trainings are untouched.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	exists, err := s.userRepo.ExistsByID(ctx, id)
	if err != nil {
		logger.Error("Failed to check user %s for deletion: %v", id, err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !exists {
		return user.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete user %s: %v", id, err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logger.Info("User deleted with ID: %s", id)
	return nil
}

// SearchUsersByEmail returns users whose email contains the fragment,
// case-insensitively. An empty fragment matches all users.
func (s *userService) SearchUsersByEmail(ctx context.Context, fragment string) ([]*user.User, error) {
	users, err := s.userRepo.FindByEmailContaining(ctx, fragment)
	if err != nil {
		logger.Error("Failed to search users by email: %v", err)
		return nil, fmt.Errorf("failed to search users by email: %w", err)
	}
	return users, nil
}

// SearchUsersByAgeGreaterThan returns users born strictly before
// now minus the given number of years. The cutoff is computed at call time.
func (s *userService) SearchUsersByAgeGreaterThan(ctx context.Context, age int) ([]*user.User, error) {
	cutoff := s.now().AddDate(-age, 0, 0)
	users, err := s.userRepo.FindByBirthdateBefore(ctx, cutoff)
	if err != nil {
		logger.Error("Failed to search users by age: %v", err)
		return nil, fmt.Errorf("failed to search users by age: %w", err)
	}
	return users, nil
}

// FindUsersOlderThan returns users born strictly before the given date.
func (s *userService) FindUsersOlderThan(ctx context.Context, date time.Time) ([]*user.User, error) {
	users, err := s.userRepo.FindByBirthdateBefore(ctx, date)
	if err != nil {
		logger.Error("Failed to find users older than %s: %v", date, err)
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}
