package handlers

import (
	"net/http"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/config"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/cache"
	"github.com/wojciech1000000/FitnessTracker/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check requests. db and redisCache may be nil
// when the corresponding backend is not configured.
type HealthHandler struct {
	db         *gorm.DB
	redisCache *cache.RedisCache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, redisCache *cache.RedisCache) *HealthHandler {
	return &HealthHandler{
		db:         db,
		redisCache: redisCache,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	cfg := config.Get()

	status := "healthy"
	services := make(map[string]string)

	if h.db != nil {
		if err := database.HealthCheck(h.db); err != nil {
			services["database"] = "unhealthy"
			status = "degraded"
		} else {
			services["database"] = "healthy"
		}
	} else {
		services["database"] = "memory"
	}

	if h.redisCache != nil {
		if err := h.redisCache.Health(c.Request.Context()); err != nil {
			services["cache"] = "unhealthy"
			status = "degraded"
		} else {
			services["cache"] = "healthy"
		}
	} else {
		services["cache"] = "disabled"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Services:  services,
	})
}

// ReadinessCheck handles GET /ready
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if h.db != nil {
		if err := database.HealthCheck(h.db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false, "timestamp": time.Now()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ready": true, "timestamp": time.Now()})
}

// LivenessCheck handles GET /live
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}
