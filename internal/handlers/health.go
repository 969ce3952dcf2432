package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamedrive/sales-service/internal/database"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
	PoolSize int32  `json:"poolSize,omitempty"`
}

// HealthCheck reports service liveness and database reachability
func HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:  "ok",
		Service: "sales-service",
	}

	if database.Pool() == nil {
		response.Database = "not configured"
		c.JSON(http.StatusOK, response)
		return
	}

	if err := database.Status(c.Request.Context()); err != nil {
		response.Status = "degraded"
		response.Database = "disconnected"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response.Database = "connected"
	if stats := database.Stats(); stats != nil {
		response.PoolSize = stats.TotalConns()
	}

	c.JSON(http.StatusOK, response)
}
