package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/api/router"
	"github.com/wojciech1000000/FitnessTracker/internal/config"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/cache"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/database"
	"github.com/wojciech1000000/FitnessTracker/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var port string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server exposing the user and training APIs.
The backing store is selected by database.driver: "postgres" for the
durable store, "memory" for an in-process one.`,
	Run: func(cmd *cobra.Command, args []string) {
		startServer()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port for the server to listen on")
}

func startServer() {
	cfg := config.Get()
	if port != "8080" {
		cfg.Server.Port = port
	}

	var db *gorm.DB
	if cfg.Database.Driver == "postgres" {
		var err error
		db, err = database.NewConnection(database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.Username,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Fatal("Failed to connect to database: %v", err)
		}
	} else {
		logger.Warn("Using in-memory store, data will not survive a restart")
	}

	var redisCache *cache.RedisCache
	if cfg.Cache.Enabled {
		redisCache = cache.NewRedisCache(
			fmt.Sprintf("%s:%d", cfg.Cache.Host, cfg.Cache.Port),
			cfg.Cache.Password,
			cfg.Cache.DB,
		)
		defer redisCache.Close()
	}

	r := router.NewRouter(db, redisCache)

	srv := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        r,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
