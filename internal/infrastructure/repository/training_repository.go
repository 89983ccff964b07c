package repository

import (
	"context"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/training"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingRepository implements training.TrainingRepository using GORM.
// All reads preload the associated user so callers always see the full
// resolved reference.
type TrainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a new GORM training repository
func NewTrainingRepository(db *gorm.DB) training.TrainingRepository {
	return &TrainingRepository{
		db: db,
	}
}

func (r *TrainingRepository) Create(ctx context.Context, t *training.Training) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TrainingRepository) GetByID(ctx context.Context, id uuid.UUID) (*training.Training, error) {
	var t training.Training
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&t, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TrainingRepository) GetAll(ctx context.Context) ([]*training.Training, error) {
	var trainings []*training.Training
	err := r.db.WithContext(ctx).
		Preload("User").
		Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *TrainingRepository) Update(ctx context.Context, t *training.Training) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TrainingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*training.Training, error) {
	var trainings []*training.Training
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *TrainingRepository) FindByActivityType(ctx context.Context, activityType training.ActivityType) ([]*training.Training, error) {
	var trainings []*training.Training
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("activity_type = ?", activityType).
		Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

// FindByEndTimeAfter matches trainings finished strictly after the given time.
func (r *TrainingRepository) FindByEndTimeAfter(ctx context.Context, after time.Time) ([]*training.Training, error) {
	var trainings []*training.Training
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("end_time > ?", after).
		Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}
