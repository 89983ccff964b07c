package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/training"
	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/repository"

	"github.com/google/uuid"
)

func newTrainingFixtures(t *testing.T) (training.TrainingService, training.TrainingRepository, *user.User) {
	t.Helper()

	userRepo := repository.NewMemoryUserRepository()
	trainingRepo := repository.NewMemoryTrainingRepository()
	ctx := context.Background()

	owner := user.NewUser("Emma", "Johansson", time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC), "emma@example.com")
	if err := userRepo.Create(ctx, owner); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	return NewTrainingService(trainingRepo, userRepo), trainingRepo, owner
}

func runFixture(userID uuid.UUID, start, end time.Time) *training.Training {
	return &training.Training{
		UserID:       userID,
		StartTime:    start,
		EndTime:      end,
		ActivityType: training.ActivityRunning,
		Distance:     10.0,
		AverageSpeed: 10.0,
	}
}

func TestTrainingService_CreateTraining_UnknownUser(t *testing.T) {
	trainingService, trainingRepo, _ := newTrainingFixtures(t)
	ctx := context.Background()

	_, err := trainingService.CreateTraining(ctx, runFixture(uuid.New(), time.Now(), time.Now().Add(time.Hour)))
	if !errors.Is(err, training.ErrReferencedUserNotFound) {
		t.Fatalf("Expected ErrReferencedUserNotFound, got %v", err)
	}

	// The training store must not have been touched.
	all, err := trainingRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected empty training store, got %d records", len(all))
	}
}

func TestTrainingService_CreateTraining_ResolvesFullUser(t *testing.T) {
	trainingService, _, owner := newTrainingFixtures(t)
	ctx := context.Background()

	created, err := trainingService.CreateTraining(ctx, runFixture(owner.ID, time.Now(), time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Expected created training to have an assigned ID")
	}
	if created.User.ID != owner.ID || created.User.Email != owner.Email {
		t.Errorf("Expected resolved user %s, got %+v", owner.Email, created.User)
	}
}

func TestTrainingService_UpdateTrainingPreservesUser(t *testing.T) {
	trainingService, _, owner := newTrainingFixtures(t)
	ctx := context.Background()

	created, err := trainingService.CreateTraining(ctx, runFixture(owner.ID, time.Now(), time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The update payload carries a different user; the stored one must win.
	data := &training.Training{
		UserID:       uuid.New(),
		StartTime:    created.StartTime,
		EndTime:      created.EndTime.Add(time.Hour),
		ActivityType: training.ActivityWalking,
		Distance:     5.0,
		AverageSpeed: 4.0,
	}

	updated, err := trainingService.UpdateTraining(ctx, created.ID, data)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.UserID != owner.ID {
		t.Errorf("Expected preserved user %s, got %s", owner.ID, updated.UserID)
	}
	if updated.ActivityType != training.ActivityWalking {
		t.Errorf("Expected activity type WALKING, got %s", updated.ActivityType)
	}
	if updated.Distance != 5.0 || updated.AverageSpeed != 4.0 {
		t.Errorf("Expected replaced numeric fields, got %+v", updated)
	}
}

func TestTrainingService_UpdateTraining_NotFound(t *testing.T) {
	trainingService, _, owner := newTrainingFixtures(t)

	_, err := trainingService.UpdateTraining(context.Background(), uuid.New(),
		runFixture(owner.ID, time.Now(), time.Now().Add(time.Hour)))
	if !errors.Is(err, training.ErrTrainingNotFound) {
		t.Fatalf("Expected ErrTrainingNotFound, got %v", err)
	}
}

func TestTrainingService_GetTrainingsByUser(t *testing.T) {
	trainingService, _, owner := newTrainingFixtures(t)
	ctx := context.Background()

	if _, err := trainingService.CreateTraining(ctx, runFixture(owner.ID, time.Now(), time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	trainings, err := trainingService.GetTrainingsByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(trainings) != 1 {
		t.Errorf("Expected 1 training, got %d", len(trainings))
	}

	// An unknown user is an empty list, not an error.
	trainings, err = trainingService.GetTrainingsByUser(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(trainings) != 0 {
		t.Errorf("Expected no trainings, got %d", len(trainings))
	}
}

func TestTrainingService_GetFinishedTrainingsAfter_Strict(t *testing.T) {
	trainingService, _, owner := newTrainingFixtures(t)
	ctx := context.Background()

	boundary := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	if _, err := trainingService.CreateTraining(ctx,
		runFixture(owner.ID, boundary.Add(-time.Hour), boundary)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	later, err := trainingService.CreateTraining(ctx,
		runFixture(owner.ID, boundary, boundary.Add(time.Hour)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Strictly after: a training ending exactly at the boundary is excluded.
	trainings, err := trainingService.GetFinishedTrainingsAfter(ctx, boundary)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(trainings) != 1 || trainings[0].ID != later.ID {
		t.Errorf("Expected only the later training, got %d", len(trainings))
	}
}

func TestTrainingService_GetTrainingsByActivityType(t *testing.T) {
	trainingService, _, owner := newTrainingFixtures(t)
	ctx := context.Background()

	run := runFixture(owner.ID, time.Now(), time.Now().Add(time.Hour))
	if _, err := trainingService.CreateTraining(ctx, run); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	swim := runFixture(owner.ID, time.Now(), time.Now().Add(time.Hour))
	swim.ActivityType = training.ActivitySwimming
	if _, err := trainingService.CreateTraining(ctx, swim); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	trainings, err := trainingService.GetTrainingsByActivityType(ctx, training.ActivitySwimming)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(trainings) != 1 || trainings[0].ActivityType != training.ActivitySwimming {
		t.Errorf("Expected 1 swimming training, got %d", len(trainings))
	}
}
