package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func healthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthCheckMiddleware())
	return router
}

func TestHealthCheckConcurrentRequests(t *testing.T) {
	router := healthRouter()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "status")
		}()
	}
	wg.Wait()
}

func TestUpdateHealthStatusInvalidatesCache(t *testing.T) {
	router := healthRouter()

	UpdateHealthStatus("ok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	// The cached body must not outlive a status change.
	UpdateHealthStatus("degraded")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
