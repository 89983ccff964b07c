package training

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TrainingRepository defines the interface for training data access.
// GetByID returns (nil, nil) when no training matches.
type TrainingRepository interface {
	Create(ctx context.Context, training *Training) error
	GetByID(ctx context.Context, id uuid.UUID) (*Training, error)
	GetAll(ctx context.Context) ([]*Training, error)
	Update(ctx context.Context, training *Training) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Training, error)
	FindByActivityType(ctx context.Context, activityType ActivityType) ([]*Training, error)
	FindByEndTimeAfter(ctx context.Context, after time.Time) ([]*Training, error)
}

// TrainingService defines the interface for training business logic
type TrainingService interface {
	GetAllTrainings(ctx context.Context) ([]*Training, error)
	GetTrainingsByUser(ctx context.Context, userID uuid.UUID) ([]*Training, error)
	GetTrainingsByActivityType(ctx context.Context, activityType ActivityType) ([]*Training, error)
	GetFinishedTrainingsAfter(ctx context.Context, after time.Time) ([]*Training, error)
	CreateTraining(ctx context.Context, training *Training) (*Training, error)
	UpdateTraining(ctx context.Context, id uuid.UUID, data *Training) (*Training, error)
}
