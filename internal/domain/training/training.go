package training

import (
	"errors"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"

	"github.com/google/uuid"
)

var (
	// ErrTrainingNotFound is returned when no training exists for a given ID.
	ErrTrainingNotFound = errors.New("training not found")

	// ErrReferencedUserNotFound is returned when a training references a user
	// that does not exist in the store.
	ErrReferencedUserNotFound = errors.New("referenced user not found")
)

// Training represents a timed physical activity of a single user.
//
// The user reference is required and resolved at creation time. There is no
// cross-field validation: EndTime may precede StartTime.
type Training struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID    `json:"-" gorm:"type:uuid;not null;index"`
	User         user.User    `json:"user" gorm:"foreignKey:UserID"`
	StartTime    time.Time    `json:"startTime"`
	EndTime      time.Time    `json:"endTime" gorm:"index"`
	ActivityType ActivityType `json:"activityType" gorm:"type:text;not null;index"`
	Distance     float64      `json:"distance"`
	AverageSpeed float64      `json:"averageSpeed"`
	CreatedAt    time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}
