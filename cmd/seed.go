package cmd

import (
	"context"
	"os"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/config"
	"github.com/wojciech1000000/FitnessTracker/internal/domain/training"
	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/database"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/repository"
	"github.com/wojciech1000000/FitnessTracker/internal/service"
	"github.com/wojciech1000000/FitnessTracker/pkg/logger"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample users and trainings",
	Long: `Insert a small set of sample users and trainings through the
service layer, against the store selected by database.driver.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSeed()
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed() {
	cfg := config.Get()

	var userRepo user.UserRepository
	var trainingRepo training.TrainingRepository
	if cfg.Database.Driver == "postgres" {
		db, err := database.NewConnection(database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.Username,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Error("Failed to connect to database: %v", err)
			os.Exit(1)
		}
		userRepo = repository.NewUserRepository(db)
		trainingRepo = repository.NewTrainingRepository(db)
	} else {
		logger.Warn("Seeding the in-memory store only affects this process")
		userRepo = repository.NewMemoryUserRepository()
		trainingRepo = repository.NewMemoryTrainingRepository()
	}

	userService := service.NewUserService(userRepo)
	trainingService := service.NewTrainingService(trainingRepo, userRepo)

	ctx := context.Background()

	sampleUsers := []*user.User{
		user.NewUser("Emma", "Johansson", time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC), "emma.johansson@example.com"),
		user.NewUser("Piotr", "Nowak", time.Date(1985, 11, 2, 0, 0, 0, 0, time.UTC), "piotr.nowak@example.com"),
		user.NewUser("Ana", "Silva", time.Date(2001, 7, 30, 0, 0, 0, 0, time.UTC), "ana.silva@example.com"),
	}

	created := make([]*user.User, 0, len(sampleUsers))
	for _, u := range sampleUsers {
		saved, err := userService.CreateUser(ctx, u)
		if err != nil {
			logger.Error("Failed to seed user %s: %v", u.Email, err)
			os.Exit(1)
		}
		created = append(created, saved)
	}

	now := time.Now().UTC()
	sampleTrainings := []*training.Training{
		{
			UserID:       created[0].ID,
			StartTime:    now.Add(-26 * time.Hour),
			EndTime:      now.Add(-25 * time.Hour),
			ActivityType: training.ActivityRunning,
			Distance:     10.5,
			AverageSpeed: 10.5,
		},
		{
			UserID:       created[1].ID,
			StartTime:    now.Add(-50 * time.Hour),
			EndTime:      now.Add(-48 * time.Hour),
			ActivityType: training.ActivityCycling,
			Distance:     42.0,
			AverageSpeed: 21.0,
		},
		{
			UserID:       created[0].ID,
			StartTime:    now.Add(-3 * time.Hour),
			EndTime:      now.Add(-2 * time.Hour),
			ActivityType: training.ActivityTennis,
			Distance:     0,
			AverageSpeed: 0,
		},
	}

	for _, t := range sampleTrainings {
		if _, err := trainingService.CreateTraining(ctx, t); err != nil {
			logger.Error("Failed to seed training for user %s: %v", t.UserID, err)
			os.Exit(1)
		}
	}

	logger.Info("Seeded %d users and %d trainings", len(created), len(sampleTrainings))
}
