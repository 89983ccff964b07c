package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wojciech1000000/FitnessTracker/pkg/logger"

	"github.com/gin-gonic/gin"
)

const idempotencyTTL = 24 * time.Hour

// KeyValueStore is the slice of the cache the idempotency middleware needs.
// Get returns "" with a nil error when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for POST requests that repeat an
// Idempotency-Key header. Only successful responses are recorded; a store
// fault degrades to normal processing.
func Idempotency(store KeyValueStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := "idempotency:" + c.FullPath() + ":" + key

		if val, err := store.Get(c.Request.Context(), cacheKey); err != nil {
			logger.Warn("Idempotency lookup failed for key %s: %v", key, err)
		} else if val != "" {
			var stored storedResponse
			if err := json.Unmarshal([]byte(val), &stored); err == nil {
				c.Header("Idempotency-Replayed", "true")
				c.Data(stored.Status, stored.ContentType, stored.Body)
				c.Abort()
				return
			}
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		data, err := json.Marshal(storedResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := store.Set(c.Request.Context(), cacheKey, string(data), idempotencyTTL); err != nil {
			logger.Warn("Failed to store idempotent response for key %s: %v", key, err)
		}
	}
}
