package repository

import (
	"context"
	"sync"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/training"

	"github.com/google/uuid"
)

// memoryTrainingRepository is an in-memory implementation of
// training.TrainingRepository. Same conventions as the user counterpart.
type memoryTrainingRepository struct {
	trainings map[uuid.UUID]training.Training
	mutex     sync.RWMutex
}

// NewMemoryTrainingRepository creates an empty in-memory training repository
func NewMemoryTrainingRepository() training.TrainingRepository {
	return &memoryTrainingRepository{
		trainings: make(map[uuid.UUID]training.Training),
	}
}

func (r *memoryTrainingRepository) Create(ctx context.Context, t *training.Training) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.trainings[t.ID] = *t
	return nil
}

func (r *memoryTrainingRepository) GetByID(ctx context.Context, id uuid.UUID) (*training.Training, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	t, exists := r.trainings[id]
	if !exists {
		return nil, nil
	}
	return &t, nil
}

func (r *memoryTrainingRepository) GetAll(ctx context.Context) ([]*training.Training, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	trainings := make([]*training.Training, 0, len(r.trainings))
	for _, t := range r.trainings {
		t := t
		trainings = append(trainings, &t)
	}
	return trainings, nil
}

func (r *memoryTrainingRepository) Update(ctx context.Context, t *training.Training) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.trainings[t.ID]; !exists {
		return training.ErrTrainingNotFound
	}
	t.UpdatedAt = time.Now()
	r.trainings[t.ID] = *t
	return nil
}

func (r *memoryTrainingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*training.Training, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var trainings []*training.Training
	for _, t := range r.trainings {
		if t.UserID == userID {
			t := t
			trainings = append(trainings, &t)
		}
	}
	return trainings, nil
}

func (r *memoryTrainingRepository) FindByActivityType(ctx context.Context, activityType training.ActivityType) ([]*training.Training, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var trainings []*training.Training
	for _, t := range r.trainings {
		if t.ActivityType == activityType {
			t := t
			trainings = append(trainings, &t)
		}
	}
	return trainings, nil
}

func (r *memoryTrainingRepository) FindByEndTimeAfter(ctx context.Context, after time.Time) ([]*training.Training, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var trainings []*training.Training
	for _, t := range r.trainings {
		if t.EndTime.After(after) {
			t := t
			trainings = append(trainings, &t)
		}
	}
	return trainings, nil
}
