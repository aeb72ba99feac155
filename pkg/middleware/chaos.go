package middleware

import (
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"talentflow/pkg/utils"
)

// ChaosConfig drives the simulated-network middleware: every request sleeps
// a random delay in [MinDelay, MaxDelay] and fails with a 500 at the given
// rate. WriteRate applies to mutating methods instead of ErrorRate when it
// is higher, mirroring the flakier write path of the demo profile.
type ChaosConfig struct {
	ErrorRate float64
	WriteRate float64
	MinDelay  time.Duration
	MaxDelay  time.Duration
}

// ChaosConfigFromEnv reads CHAOS_ERROR_RATE, CHAOS_WRITE_ERROR_RATE,
// CHAOS_MIN_DELAY_MS and CHAOS_MAX_DELAY_MS. All default to zero, so the
// middleware is inert unless explicitly enabled.
func ChaosConfigFromEnv() ChaosConfig {
	rate := func(key string) float64 {
		v, err := strconv.ParseFloat(os.Getenv(key), 64)
		if err != nil || v < 0 {
			return 0
		}
		return v
	}
	ms := func(key string) time.Duration {
		v, err := strconv.Atoi(os.Getenv(key))
		if err != nil || v < 0 {
			return 0
		}
		return time.Duration(v) * time.Millisecond
	}
	return ChaosConfig{
		ErrorRate: rate("CHAOS_ERROR_RATE"),
		WriteRate: rate("CHAOS_WRITE_ERROR_RATE"),
		MinDelay:  ms("CHAOS_MIN_DELAY_MS"),
		MaxDelay:  ms("CHAOS_MAX_DELAY_MS"),
	}
}

// ChaosMiddleware simulates an unreliable network in front of the handlers
// so the UI's retry and optimistic-rollback paths can be exercised locally.
func ChaosMiddleware(cfg ChaosConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MaxDelay > cfg.MinDelay {
			delay := cfg.MinDelay + time.Duration(rand.Int63n(int64(cfg.MaxDelay-cfg.MinDelay)))
			time.Sleep(delay)
		} else if cfg.MinDelay > 0 {
			time.Sleep(cfg.MinDelay)
		}

		rate := cfg.ErrorRate
		if isWrite(c.Request.Method) && cfg.WriteRate > rate {
			rate = cfg.WriteRate
		}
		if rate > 0 && rand.Float64() < rate {
			utils.RespondError(c, http.StatusInternalServerError, "A random network error occurred!")
			c.Abort()
			return
		}

		c.Next()
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
