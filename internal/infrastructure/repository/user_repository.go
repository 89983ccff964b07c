package repository

import (
	"context"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements user.UserRepository using GORM. The predicate
// lookups are backed by indexed queries whose result sets match the linear
// scan semantics of the in-memory implementation.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM user repository
func NewUserRepository(db *gorm.DB) user.UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	var users []*user.User
	err := r.db.WithContext(ctx).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&user.User{}, "id = ?", id).Error
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByEmail matches the exact email, first match wins.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmailContaining matches emails containing the fragment,
// case-insensitively. An empty fragment matches every user.
func (r *UserRepository) FindByEmailContaining(ctx context.Context, fragment string) ([]*user.User, error) {
	var users []*user.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) LIKE LOWER(?)", "%"+fragment+"%").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindByBirthdateBefore matches users born strictly before the given date.
func (r *UserRepository) FindByBirthdateBefore(ctx context.Context, date time.Time) ([]*user.User, error) {
	var users []*user.User
	err := r.db.WithContext(ctx).
		Where("birthdate < ?", date).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
