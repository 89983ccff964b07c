package router

import (
	"github.com/wojciech1000000/FitnessTracker/internal/api/handlers"
	"github.com/wojciech1000000/FitnessTracker/internal/api/middleware"
	"github.com/wojciech1000000/FitnessTracker/internal/domain/training"
	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/cache"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/repository"
	"github.com/wojciech1000000/FitnessTracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers into a gin engine.
// A nil db selects the in-memory repositories; a nil redisCache disables
// idempotency replay.
func NewRouter(db *gorm.DB, redisCache *cache.RedisCache) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.Logger())
	r.Use(cors.Default())
	r.Use(gin.Recovery())

	var userRepo user.UserRepository
	var trainingRepo training.TrainingRepository
	if db != nil {
		userRepo = repository.NewUserRepository(db)
		trainingRepo = repository.NewTrainingRepository(db)
	} else {
		userRepo = repository.NewMemoryUserRepository()
		trainingRepo = repository.NewMemoryTrainingRepository()
	}

	userService := service.NewUserService(userRepo)
	trainingService := service.NewTrainingService(trainingRepo, userRepo)

	userHandler := handlers.NewUserHandler(userService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	healthHandler := handlers.NewHealthHandler(db, redisCache)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/ready", healthHandler.ReadinessCheck)
	r.GET("/live", healthHandler.LivenessCheck)

	v1 := r.Group("/v1")
	if redisCache != nil {
		v1.Use(middleware.Idempotency(redisCache))
	}

	users := v1.Group("/users")
	{
		users.GET("", userHandler.GetAllUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUserByID)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.GET("/email", userHandler.SearchUsersByEmail)
		users.GET("/search/email", userHandler.SearchUsersByEmail)
		users.GET("/search/age", userHandler.SearchUsersByAge)
		users.GET("/older/:date", userHandler.FindUsersOlderThan)
	}

	trainings := v1.Group("/trainings")
	{
		trainings.GET("", trainingHandler.GetAllTrainings)
		trainings.POST("", trainingHandler.CreateTraining)
		trainings.GET("/:userId", trainingHandler.GetTrainingsByUser)
		trainings.PUT("/:trainingId", trainingHandler.UpdateTraining)
		trainings.GET("/finished/:afterDate", trainingHandler.GetFinishedTrainingsAfter)
		trainings.GET("/activityType", trainingHandler.GetTrainingsByActivityType)
	}

	return r
}
