package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"clinicdesk/internal/api/dto"
)

// ReadyCheck is a named dependency check for /readyz.
type ReadyCheck struct {
	Name  string
	Check func(context.Context) error
}

type HealthHandler struct {
	checks []ReadyCheck
	now    func() time.Time
}

func NewHealthHandler(checks ...ReadyCheck) *HealthHandler {
	return &HealthHandler{checks: checks, now: time.Now}
}

// Healthcheck godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /rpc/healthcheck [get]
func (h *HealthHandler) Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
	})
}

// Ready godoc
// @Summary Readiness probe
// @Description Pings the database and, when configured, Redis
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {string} string
// @Router /readyz [get]
func (h *HealthHandler) Ready(c echo.Context) error {
	var failures []string
	for _, check := range h.checks {
		if check.Check == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		err := check.Check(ctx)
		cancel()
		if err != nil {
			name := check.Name
			if name == "" {
				name = "dependency"
			}
			failures = append(failures, name+": "+err.Error())
		}
	}

	if len(failures) > 0 {
		return c.String(http.StatusServiceUnavailable, strings.Join(failures, "; "))
	}
	return c.String(http.StatusOK, "ok")
}
