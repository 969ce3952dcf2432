package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamedrive/sales-service/internal/database"
	"github.com/gamedrive/sales-service/internal/scheduling"
)

// ListPlatformsResponse represents the response for listing platforms
type ListPlatformsResponse struct {
	Platforms []database.Platform `json:"platforms" jsonschema:"required"`
	Total     int                 `json:"total" jsonschema:"required"`
}

// ListPlatforms returns all platforms and their cooldown rules
// GET /internal/platforms
func ListPlatforms(c *gin.Context) {
	platforms, err := database.ListPlatforms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch platforms"})
		return
	}

	c.JSON(http.StatusOK, ListPlatformsResponse{Platforms: platforms, Total: len(platforms)})
}

// GetPlatform returns a single platform by ID
// GET /internal/platforms/:platformId
func GetPlatform(c *gin.Context) {
	platformID := c.Param("platformId")

	platform, err := database.GetPlatform(c.Request.Context(), platformID)
	if err != nil {
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, platform)
}

// GetPlatformCooldown reports the cooldown figures a sale ending on the
// given date would trigger on this platform
// GET /internal/platforms/:platformId/cooldown?endDate=2026-05-01
func GetPlatformCooldown(c *gin.Context) {
	platformID := c.Param("platformId")
	endDate := c.Query("endDate")
	if endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate is required"})
		return
	}

	end, err := scheduling.ParseDate(endDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platform, err := database.GetPlatform(c.Request.Context(), platformID)
	if err != nil {
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"platform":     platform.Name,
		"cooldownDays": platform.CooldownDays,
		"cooldownEnd":  scheduling.FormatDate(scheduling.CooldownEnd(end, platform.CooldownDays)),
	})
}
