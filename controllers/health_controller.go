package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// ReadyCheck is a named dependency check for /readyz
type ReadyCheck struct {
	Name  string
	Check func(context.Context) error
}

const readyCheckTimeout = 2 * time.Second

// HealthController serves liveness and readiness probes
type HealthController struct {
	serviceName string
	checks      []ReadyCheck
}

// NewHealthController creates a new health controller
func NewHealthController(serviceName string, checks ...ReadyCheck) *HealthController {
	return &HealthController{
		serviceName: serviceName,
		checks:      checks,
	}
}

// Health handles GET /health
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": c.serviceName,
	})
}

// Ready handles GET /readyz
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	var failures []string
	for _, check := range c.checks {
		if check.Check == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
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

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if len(failures) > 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(strings.Join(failures, "; ")))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
