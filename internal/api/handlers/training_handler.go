package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/training"
	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"
	"github.com/wojciech1000000/FitnessTracker/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrainingHandler handles training-related HTTP requests
type TrainingHandler struct {
	trainingService training.TrainingService
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(trainingService training.TrainingService) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
	}
}

// GetAllTrainings handles GET /v1/trainings
func (h *TrainingHandler) GetAllTrainings(c *gin.Context) {
	trainings, err := h.trainingService.GetAllTrainings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, training.ToDTOs(trainings))
}

// GetTrainingsByUser handles GET /v1/trainings/:userId. An unknown user
// yields an empty list.
func (h *TrainingHandler) GetTrainingsByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid user ID format"})
		return
	}

	trainings, err := h.trainingService.GetTrainingsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, training.ToDTOs(trainings))
}

// GetFinishedTrainingsAfter handles GET /v1/trainings/finished/:afterDate
func (h *TrainingHandler) GetFinishedTrainingsAfter(c *gin.Context) {
	after, err := time.Parse(user.DateFormat, c.Param("afterDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid date, expected yyyy-mm-dd"})
		return
	}

	trainings, err := h.trainingService.GetFinishedTrainingsAfter(c.Request.Context(), after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, training.ToDTOs(trainings))
}

// GetTrainingsByActivityType handles GET /v1/trainings/activityType?activityType=
func (h *TrainingHandler) GetTrainingsByActivityType(c *gin.Context) {
	activityType, err := training.ParseActivityType(c.Query("activityType"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	trainings, err := h.trainingService.GetTrainingsByActivityType(c.Request.Context(), activityType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, training.ToDTOs(trainings))
}

// CreateTraining handles POST /v1/trainings. A body referencing an unknown
// user is a client error: the id arrives in the payload, so this maps to 400
// rather than 404.
func (h *TrainingHandler) CreateTraining(c *gin.Context) {
	var req training.CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Errors: err.Error()})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	activityType, err := training.ParseActivityType(req.ActivityType)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	created, err := h.trainingService.CreateTraining(c.Request.Context(), &training.Training{
		UserID:       req.User.ID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ActivityType: activityType,
		Distance:     req.Distance,
		AverageSpeed: req.AverageSpeed,
	})
	if err != nil {
		if errors.Is(err, training.ErrReferencedUserNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, training.ToDTO(created))
}

// UpdateTraining handles PUT /v1/trainings/:trainingId. The stored user
// reference is preserved; any user in the payload is ignored.
func (h *TrainingHandler) UpdateTraining(c *gin.Context) {
	id, err := uuid.Parse(c.Param("trainingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid training ID format"})
		return
	}

	var req training.UpdateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Errors: err.Error()})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	activityType, err := training.ParseActivityType(req.ActivityType)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	updated, err := h.trainingService.UpdateTraining(c.Request.Context(), id, &training.Training{
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ActivityType: activityType,
		Distance:     req.Distance,
		AverageSpeed: req.AverageSpeed,
	})
	if err != nil {
		if errors.Is(err, training.ErrTrainingNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, training.ToDTO(updated))
}
