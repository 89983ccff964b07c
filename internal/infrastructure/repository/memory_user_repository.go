package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"

	"github.com/google/uuid"
)

// memoryUserRepository is an in-memory implementation of user.UserRepository
// backing the "memory" database driver and the test suites. Lookups are
// linear scans over a map guarded by an RWMutex; copies are handed out so
// callers never alias stored records.
type memoryUserRepository struct {
	users map[uuid.UUID]user.User
	mutex sync.RWMutex
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() user.UserRepository {
	return &memoryUserRepository{
		users: make(map[uuid.UUID]user.User),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = *u
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	users := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		u := u
		users = append(users, &u)
	}
	return users, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, u *user.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[u.ID]; !exists {
		return user.ErrUserNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[id]; !exists {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.users[id]
	return exists, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByEmailContaining(ctx context.Context, fragment string) ([]*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	fragment = strings.ToLower(fragment)
	var users []*user.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Email), fragment) {
			u := u
			users = append(users, &u)
		}
	}
	return users, nil
}

func (r *memoryUserRepository) FindByBirthdateBefore(ctx context.Context, date time.Time) ([]*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var users []*user.User
	for _, u := range r.users {
		if u.Birthdate.Before(date) {
			u := u
			users = append(users, &u)
		}
	}
	return users, nil
}
