package controllers

import (
	"net/http"

	"github.com/kishanta/rightstore-backend/api/responses"
	"github.com/kishanta/rightstore-backend/pkg/config"
	"github.com/kishanta/rightstore-backend/pkg/logger"
	"github.com/kishanta/rightstore-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RightStore-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness including the session store backend. With no
// redis configured the in-memory store is always ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisClient redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RightStore-Env", cfg.App.Env)

		sessionStore := "memory"
		if redisClient != nil {
			sessionStore = "redis"
			if err := redisClient.Ping(r.Context()); err != nil {
				if logg != nil {
					logg.Error(r.Context(), "readiness redis ping failed", err)
				}
				responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, map[string]string{
					"status":        "degraded",
					"session_store": sessionStore,
				})
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{
			"status":        "ready",
			"session_store": sessionStore,
		})
	}
}
