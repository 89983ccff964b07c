package training

import (
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"

	"github.com/google/uuid"
)

// UserRef carries the user foreign key on incoming training payloads.
type UserRef struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// CreateTrainingRequest is the transport shape for POST /v1/trainings.
// The nested user carries only an id; the service resolves it to the full
// stored user before persisting.
type CreateTrainingRequest struct {
	User         UserRef   `json:"user" validate:"required"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	ActivityType string    `json:"activityType" validate:"required"`
	Distance     float64   `json:"distance"`
	AverageSpeed float64   `json:"averageSpeed"`
}

// UpdateTrainingRequest is the transport shape for PUT /v1/trainings/:id.
// Any user reference in the payload is ignored; the stored one is preserved.
type UpdateTrainingRequest struct {
	User         *UserRef  `json:"user,omitempty"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	ActivityType string    `json:"activityType" validate:"required"`
	Distance     float64   `json:"distance"`
	AverageSpeed float64   `json:"averageSpeed"`
}

// TrainingDTO is the transport representation of a Training, nesting the
// full user projection.
type TrainingDTO struct {
	ID           uuid.UUID    `json:"id"`
	User         user.UserDTO `json:"user"`
	StartTime    time.Time    `json:"startTime"`
	EndTime      time.Time    `json:"endTime"`
	ActivityType ActivityType `json:"activityType"`
	Distance     float64      `json:"distance"`
	AverageSpeed float64      `json:"averageSpeed"`
}

// ToDTO projects a stored training onto its transport shape.
func ToDTO(t *Training) TrainingDTO {
	return TrainingDTO{
		ID:           t.ID,
		User:         user.ToDTO(&t.User),
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		ActivityType: t.ActivityType,
		Distance:     t.Distance,
		AverageSpeed: t.AverageSpeed,
	}
}

// ToDTOs maps a slice of trainings.
func ToDTOs(trainings []*Training) []TrainingDTO {
	dtos := make([]TrainingDTO, 0, len(trainings))
	for _, t := range trainings {
		dtos = append(dtos, ToDTO(t))
	}
	return dtos
}
