package api

import (
	"net/http"

	"flosscast.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// HealthResponse represents the aggregated component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: ports.StatusHealthy, Components: components}
	statusCode := http.StatusOK
	for _, status := range components {
		if status.Status != ports.StatusHealthy {
			response.Status = ports.StatusUnhealthy
			statusCode = http.StatusServiceUnavailable
			break
		}
	}
	c.JSON(statusCode, response)
}
