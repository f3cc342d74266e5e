// Package health reports readiness of the assistant API based on the state
// of the medicine knowledge base.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/peacematcher/assistant-api/data"
)

// Checker derives a health status from the catalog container.
type Checker struct {
	store     *data.Container
	freshness time.Duration
}

// NewChecker creates a health checker with injected dependencies.
func NewChecker(store *data.Container, freshness time.Duration) *Checker {
	return &Checker{store: store, freshness: freshness}
}

// Check returns the health status, a detail map, and the HTTP status to
// report. An empty catalog means the service cannot answer anything and is
// unhealthy; a stale catalog is degraded but still serving.
func (c *Checker) Check() (status string, data map[string]any, httpStatus int) {
	medicines := c.store.GetMedicines()
	symptoms := c.store.GetAllSymptoms()
	lastLoaded := c.store.GetLastLoaded()
	reloading := c.store.IsReloading()
	dataAge := time.Since(lastLoaded)

	switch {
	case len(medicines) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 12*c.freshness:
		status = "degraded"
		httpStatus = http.StatusOK

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"last_loaded":    lastLoaded.Format(time.RFC3339),
		"data_age_min":   math.Round(dataAge.Minutes()*10) / 10,
		"medicines":      len(medicines),
		"symptoms":       len(symptoms),
		"is_reloading":   reloading,
		"uptime_seconds": math.Round(time.Since(c.store.GetServerStartTime()).Seconds()),
	}

	return status, data, httpStatus
}
