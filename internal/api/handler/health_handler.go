package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 3 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes. Liveness answers as
// long as the process runs; readiness also requires the session store and
// the ordering API to respond.
type HealthHandler struct {
	sessionStore Pinger
	backend      Pinger
}

func NewHealthHandler(sessionStore, backend Pinger) *HealthHandler {
	return &HealthHandler{sessionStore: sessionStore, backend: backend}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{"session_store": "ok", "backend": "ok"}
	status := http.StatusOK

	if err := h.sessionStore.Ping(ctx); err != nil {
		checks["session_store"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.backend.Ping(ctx); err != nil {
		checks["backend"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, checks)
}
