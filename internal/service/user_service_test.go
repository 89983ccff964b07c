package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/repository"

	"github.com/google/uuid"
)

func newUserFixture(firstName, lastName, email string, birthdate time.Time) *user.User {
	return &user.User{
		FirstName: firstName,
		LastName:  lastName,
		Birthdate: birthdate,
		Email:     email,
	}
}

func TestUserService_CreateAndGetUser(t *testing.T) {
	userService := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	created, err := userService.CreateUser(ctx, newUserFixture("Alice", "Liddell", "alice@example.com",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Expected created user to have an assigned ID")
	}

	found, err := userService.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found.FirstName != "Alice" || found.LastName != "Liddell" || found.Email != "alice@example.com" {
		t.Errorf("Stored user fields do not match input: %+v", found)
	}
	if !found.Birthdate.Equal(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected birthdate 1990-01-01, got %v", found.Birthdate)
	}
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	userService := NewUserService(repository.NewMemoryUserRepository())

	_, err := userService.GetUserByID(context.Background(), uuid.New())
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateUserForcesID(t *testing.T) {
	userService := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	created, err := userService.CreateUser(ctx, newUserFixture("Alice", "Liddell", "alice@example.com",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The update payload carries a foreign ID; the stored ID must win.
	data := newUserFixture("Alicia", "Hargreaves", "alicia@example.com",
		time.Date(1991, 2, 2, 0, 0, 0, 0, time.UTC))
	data.ID = uuid.New()

	updated, err := userService.UpdateUser(ctx, created.ID, data)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Expected updated ID %s, got %s", created.ID, updated.ID)
	}
	if updated.FirstName != "Alicia" || updated.Email != "alicia@example.com" {
		t.Errorf("Expected mutable fields replaced, got %+v", updated)
	}

	found, err := userService.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found.FirstName != "Alicia" {
		t.Errorf("Expected persisted first name Alicia, got %s", found.FirstName)
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	userService := NewUserService(repository.NewMemoryUserRepository())

	_, err := userService.UpdateUser(context.Background(), uuid.New(),
		newUserFixture("Nobody", "Here", "nobody@example.com", time.Now()))
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	userService := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	created, err := userService.CreateUser(ctx, newUserFixture("Alice", "Liddell", "alice@example.com",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := userService.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = userService.GetUserByID(ctx, created.ID)
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound after delete, got %v", err)
	}

	if err := userService.DeleteUser(ctx, created.ID); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound on double delete, got %v", err)
	}
}

func TestUserService_SearchUsersByEmail(t *testing.T) {
	userService := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	for _, fixture := range []*user.User{
		newUserFixture("Alice", "Liddell", "alice@example.com", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)),
		newUserFixture("Bob", "Wilson", "bob@other.org", time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC)),
	} {
		if _, err := userService.CreateUser(ctx, fixture); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	// Case-insensitive substring match.
	users, err := userService.SearchUsersByEmail(ctx, "ALICE")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(users) != 1 || users[0].Email != "alice@example.com" {
		t.Errorf("Expected only alice@example.com, got %d users", len(users))
	}

	// Empty fragment matches everyone.
	users, err = userService.SearchUsersByEmail(ctx, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(users) != 2 {
		t.Errorf("Expected 2 users for empty fragment, got %d", len(users))
	}

	users, err = userService.SearchUsersByEmail(ctx, "nomatch")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Expected no users, got %d", len(users))
	}
}

func TestUserService_SearchUsersByAgeGreaterThan(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	for _, fixture := range []*user.User{
		newUserFixture("Old", "Timer", "old@example.com", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)),
		newUserFixture("Young", "Gun", "young@example.com", time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)),
	} {
		if _, err := svc.CreateUser(ctx, fixture); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	// Pin "today" so the cutoff is deterministic.
	svc.(*userService).now = func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	users, err := svc.SearchUsersByAgeGreaterThan(ctx, 20)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(users) != 1 || users[0].Email != "old@example.com" {
		t.Errorf("Expected only the 1990 user, got %d users", len(users))
	}
}

func TestUserService_FindUsersOlderThan(t *testing.T) {
	userService := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	if _, err := userService.CreateUser(ctx, newUserFixture("Alice", "Liddell", "alice@example.com",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Strictly before: the boundary date itself matches nothing.
	users, err := userService.FindUsersOlderThan(ctx, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Expected no users at boundary, got %d", len(users))
	}

	users, err = userService.FindUsersOlderThan(ctx, time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(users) != 1 {
		t.Errorf("Expected 1 user past boundary, got %d", len(users))
	}
}
