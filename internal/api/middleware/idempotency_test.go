package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type memoryStore struct {
	mutex  sync.Mutex
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.values[key], nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.values[key] = value
	return nil
}

func newIdempotencyRig(store KeyValueStore) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)

	calls := 0
	r := gin.New()
	r.Use(Idempotency(store))
	r.POST("/things", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"call": strconv.Itoa(calls)})
	})
	return r, &calls
}

func postThings(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	r, calls := newIdempotencyRig(newMemoryStore())

	first := postThings(r, "abc")
	if first.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", first.Code)
	}
	if first.Header().Get("Idempotency-Replayed") != "" {
		t.Error("Expected first response not to be marked as replayed")
	}

	second := postThings(r, "abc")
	if second.Code != http.StatusCreated {
		t.Fatalf("Expected status 201 on replay, got %d", second.Code)
	}
	if second.Header().Get("Idempotency-Replayed") != "true" {
		t.Error("Expected replayed response to be marked")
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("Expected identical bodies, got %q and %q", first.Body.String(), second.Body.String())
	}
	if *calls != 1 {
		t.Errorf("Expected handler to run once, ran %d times", *calls)
	}
}

func TestIdempotencyDistinctKeys(t *testing.T) {
	r, calls := newIdempotencyRig(newMemoryStore())

	postThings(r, "abc")
	postThings(r, "def")
	if *calls != 2 {
		t.Errorf("Expected handler to run twice for distinct keys, ran %d times", *calls)
	}
}

func TestIdempotencyWithoutKeyIsPassthrough(t *testing.T) {
	r, calls := newIdempotencyRig(newMemoryStore())

	postThings(r, "")
	postThings(r, "")
	if *calls != 2 {
		t.Errorf("Expected handler to run on every keyless request, ran %d times", *calls)
	}
}
