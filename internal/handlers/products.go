package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamedrive/sales-service/internal/catalog"
	"github.com/gamedrive/sales-service/internal/database"
)

// SearchProductsRequest represents query parameters for product search
type SearchProductsRequest struct {
	Query string `form:"q" binding:"required,min=2"`
	Limit int    `form:"limit" binding:"min=0,max=100"`
}

// SearchProductsResponse represents the response for product search
type SearchProductsResponse struct {
	Products []database.Product `json:"products" jsonschema:"required"`
	Total    int                `json:"total" jsonschema:"required"`
}

// SearchProducts finds products by normalized title match
// GET /internal/products/search?q=nebula
func SearchProducts(c *gin.Context) {
	var req SearchProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	normalized := catalog.NormalizeTitle(req.Query)
	if normalized == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query normalizes to empty string"})
		return
	}

	products, err := database.SearchProducts(c.Request.Context(), normalized, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
		return
	}

	c.JSON(http.StatusOK, SearchProductsResponse{Products: products, Total: len(products)})
}
