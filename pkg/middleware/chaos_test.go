package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func chaosRouter(cfg ChaosConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ChaosMiddleware(cfg))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestChaosInertByDefault(t *testing.T) {
	r := chaosRouter(ChaosConfig{})

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d failed with %d, chaos should be inert", i, w.Code)
		}
	}
}

func TestChaosAlwaysFailsAtFullRate(t *testing.T) {
	r := chaosRouter(ChaosConfig{ErrorRate: 1})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestChaosWriteRateOnlyHitsWrites(t *testing.T) {
	r := chaosRouter(ChaosConfig{WriteRate: 1})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ok", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("POST status = %d, want 500", w.Code)
	}
}

func TestChaosDelayApplies(t *testing.T) {
	r := chaosRouter(ChaosConfig{MinDelay: 20 * time.Millisecond, MaxDelay: 30 * time.Millisecond})

	start := time.Now()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("request returned after %v, want at least 20ms", elapsed)
	}
}
