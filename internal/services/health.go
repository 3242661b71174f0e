package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/localnerve/realtydash/internal/store"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status        string         `json:"status"`
	InstanceID    string         `json:"instanceId"`
	UptimeSeconds int64          `json:"uptimeSeconds"`
	Collections   map[string]int `json:"collections"`
}

// HealthCheck reports service liveness plus per-collection record counts.
// The store is process-local, so a missing seed means construction failed
// somewhere upstream.
func HealthCheck(s *store.Store, instanceID string, startedAt time.Time) HealthCheckResult {
	result := HealthCheckResult{
		Status:        "healthy",
		InstanceID:    instanceID,
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
		Collections:   s.Counts(),
	}

	if result.Collections["users"] == 0 {
		result.Status = "unhealthy"
		log.Warn().Msg("health check failed - seed users missing")
	}

	return result
}
