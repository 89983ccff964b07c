package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/training"
	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"
	"github.com/wojciech1000000/FitnessTracker/pkg/logger"

	"github.com/google/uuid"
)

// trainingService implements the training.TrainingService interface. It holds
// the user repository as well: training creation cross-references it to
// validate the user foreign key before any write.
type trainingService struct {
	trainingRepo training.TrainingRepository
	userRepo     user.UserRepository
}

// NewTrainingService creates a new training service
func NewTrainingService(trainingRepo training.TrainingRepository, userRepo user.UserRepository) training.TrainingService {
	return &trainingService{
		trainingRepo: trainingRepo,
		userRepo:     userRepo,
	}
}

// GetAllTrainings returns all trainings, unordered.
func (s *trainingService) GetAllTrainings(ctx context.Context) ([]*training.Training, error) {
	trainings, err := s.trainingRepo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to list trainings: %v", err)
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}
	return trainings, nil
}

// GetTrainingsByUser returns the trainings referencing the given user.
// An unknown user yields an empty list, not an error.
func (s *trainingService) GetTrainingsByUser(ctx context.Context, userID uuid.UUID) ([]*training.Training, error) {
	trainings, err := s.trainingRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to get trainings for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to get trainings for user: %w", err)
	}
	return trainings, nil
}

// GetTrainingsByActivityType returns trainings with that exact activity type.
func (s *trainingService) GetTrainingsByActivityType(ctx context.Context, activityType training.ActivityType) ([]*training.Training, error) {
	trainings, err := s.trainingRepo.FindByActivityType(ctx, activityType)
	if err != nil {
		logger.Error("Failed to get trainings by activity type %s: %v", activityType, err)
		return nil, fmt.Errorf("failed to get trainings by activity type: %w", err)
	}
	return trainings, nil
}

// GetFinishedTrainingsAfter returns trainings whose end time is strictly
// after the given time.
func (s *trainingService) GetFinishedTrainingsAfter(ctx context.Context, after time.Time) ([]*training.Training, error) {
	trainings, err := s.trainingRepo.FindByEndTimeAfter(ctx, after)
	if err != nil {
		logger.Error("Failed to get finished trainings after %s: %v", after, err)
		return nil, fmt.Errorf("failed to get finished trainings: %w", err)
	}
	return trainings, nil
}

// CreateTraining resolves the referenced user before any write. When the user
// does not exist the training store is never touched. The persisted training
// carries the full resolved user, not just its id.
func (s *trainingService) CreateTraining(ctx context.Context, t *training.Training) (*training.Training, error) {
	owner, err := s.userRepo.GetByID(ctx, t.UserID)
	if err != nil {
		logger.Error("Failed to resolve user %s for training: %v", t.UserID, err)
		return nil, fmt.Errorf("failed to resolve training user: %w", err)
	}
	if owner == nil {
		return nil, training.ErrReferencedUserNotFound
	}

	t.ID = uuid.New()
	t.User = *owner

	if err := s.trainingRepo.Create(ctx, t); err != nil {
		logger.Error("Failed to create training: %v", err)
		return nil, fmt.Errorf("failed to create training: %w", err)
	}

	logger.Info("Training created with ID: %s for user %s", t.ID, t.UserID)
	return t, nil
}

// UpdateTraining replaces start/end time, activity type, distance and average
// speed on the stored record. The user reference is preserved from the
// existing record, never taken from the input.
func (s *trainingService) UpdateTraining(ctx context.Context, id uuid.UUID, data *training.Training) (*training.Training, error) {
	existing, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get training %s for update: %v", id, err)
		return nil, fmt.Errorf("failed to get training: %w", err)
	}
	if existing == nil {
		return nil, training.ErrTrainingNotFound
	}

	existing.StartTime = data.StartTime
	existing.EndTime = data.EndTime
	existing.ActivityType = data.ActivityType
	existing.Distance = data.Distance
	existing.AverageSpeed = data.AverageSpeed

	if err := s.trainingRepo.Update(ctx, existing); err != nil {
		logger.Error("Failed to update training %s: %v", id, err)
		return nil, fmt.Errorf("failed to update training: %w", err)
	}

	logger.Info("Training updated with ID: %s", existing.ID)
	return existing, nil
}
