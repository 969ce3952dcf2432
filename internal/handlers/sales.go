package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gamedrive/sales-service/internal/database"
	"github.com/gamedrive/sales-service/internal/scheduling"
)

// ListSalesRequest represents query parameters for listing sales
type ListSalesRequest struct {
	ProductID  string `form:"productId"`
	PlatformID string `form:"platformId"`
	Status     string `form:"status"` // Comma-separated status list
	StartAfter string `form:"startAfter"`
	EndBefore  string `form:"endBefore"`
	Limit      int    `form:"limit" binding:"min=0,max=500"`
	Offset     int    `form:"offset" binding:"min=0"`
}

// ListSalesResponse represents the response for listing sales
type ListSalesResponse struct {
	Sales []database.SaleRecord `json:"sales" jsonschema:"required"`
	Total int                   `json:"total" jsonschema:"required"`
}

// CreateSaleRequest represents the payload for scheduling a new sale
type CreateSaleRequest struct {
	ProductID   string  `json:"productId" binding:"required" jsonschema:"required"`
	PlatformID  string  `json:"platformId" binding:"required" jsonschema:"required"`
	StartDate   string  `json:"startDate" binding:"required" jsonschema:"required,format=date"`
	EndDate     string  `json:"endDate" binding:"required" jsonschema:"required,format=date"`
	SaleType    string  `json:"saleType,omitempty"`
	DiscountPct *int    `json:"discountPct,omitempty" jsonschema:"minimum=0,maximum=100"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateSaleRequest is the explicit patch payload for editing a sale.
// Absent fields stay unchanged; there is no free-form field bag.
type UpdateSaleRequest struct {
	StartDate   *string `json:"startDate,omitempty" jsonschema:"format=date"`
	EndDate     *string `json:"endDate,omitempty" jsonschema:"format=date"`
	SaleType    *string `json:"saleType,omitempty"`
	Status      *string `json:"status,omitempty" jsonschema:"enum=draft,enum=scheduled,enum=active,enum=completed,enum=rejected,enum=cancelled"`
	DiscountPct *int    `json:"discountPct,omitempty" jsonschema:"minimum=0,maximum=100"`
	Notes       *string `json:"notes,omitempty"`
}

// ListSales returns sales matching the typed filter
// GET /internal/sales?productId=&platformId=&status=scheduled,active
func ListSales(c *gin.Context) {
	var req ListSalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := database.SaleFilter{
		ProductID:  req.ProductID,
		PlatformID: req.PlatformID,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	if req.Status != "" {
		for _, s := range strings.Split(req.Status, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, s)
			}
		}
	}
	if req.StartAfter != "" {
		d, err := scheduling.ParseDate(req.StartAfter)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.StartAfter = &d
	}
	if req.EndBefore != "" {
		d, err := scheduling.ParseDate(req.EndBefore)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.EndBefore = &d
	}

	sales, err := database.ListSales(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}

	c.JSON(http.StatusOK, ListSalesResponse{Sales: sales, Total: len(sales)})
}

// GetSale returns a single sale with its product, game, and platform
// GET /internal/sales/:saleId
func GetSale(c *gin.Context) {
	saleID := c.Param("saleId")

	sale, err := database.GetSale(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, database.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale"})
		return
	}

	c.JSON(http.StatusOK, sale)
}

// CreateSale validates and schedules a new sale. An invalid placement is
// rejected with the verdict attached so the caller can show the conflicts.
// POST /internal/sales
func CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	check := ValidateSaleRequest{
		ProductID:  req.ProductID,
		PlatformID: req.PlatformID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		SaleType:   req.SaleType,
	}
	proposal, err := check.proposal()
	if err != nil {
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}

	rec := &database.SaleRecord{
		ProductID:   proposal.ProductID,
		PlatformID:  proposal.PlatformID,
		StartDate:   proposal.Start,
		EndDate:     proposal.End,
		SaleType:    string(proposal.Type),
		DiscountPct: req.DiscountPct,
		Notes:       req.Notes,
	}

	created, verdict, err := database.CreateSale(c.Request.Context(), detector, rec)
	if err != nil {
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}
	if created == nil {
		platform, perr := database.GetPlatform(c.Request.Context(), proposal.PlatformID)
		if perr != nil {
			c.JSON(validationStatus(perr), gin.H{"error": perr.Error()})
			return
		}
		c.JSON(http.StatusConflict, scheduling.FormatVerdict(*verdict, platform.Policy()))
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateSale applies a typed patch to a sale, re-validating the schedule
// when dates or sale type change
// PATCH /internal/sales/:saleId
func UpdateSale(c *gin.Context) {
	saleID := c.Param("saleId")

	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := database.SalePatch{
		SaleType:    req.SaleType,
		Status:      req.Status,
		DiscountPct: req.DiscountPct,
		Notes:       req.Notes,
	}

	var err error
	patch.StartDate, err = parseOptionalDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch.EndDate, err = parseOptionalDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, verdict, err := database.UpdateSale(c.Request.Context(), detector, saleID, patch)
	if err != nil {
		if errors.Is(err, database.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}
	if updated == nil {
		current, gerr := database.GetSale(c.Request.Context(), saleID)
		if gerr != nil || current.Platform == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "sale placement conflicts with existing schedule"})
			return
		}
		c.JSON(http.StatusConflict, scheduling.FormatVerdict(*verdict, current.Platform.Policy()))
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateSaleStatusRequest represents a lifecycle status change
type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required" jsonschema:"required,enum=draft,enum=scheduled,enum=active,enum=completed,enum=rejected,enum=cancelled"`
}

// UpdateSaleStatus advances a sale's lifecycle status. Bringing a sale
// back from a terminal state re-validates its slot, so the response can be
// a conflict verdict.
// POST /internal/sales/:saleId/status
func UpdateSaleStatus(c *gin.Context) {
	saleID := c.Param("saleId")

	var req UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !scheduling.SaleStatus(req.Status).Known() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + req.Status})
		return
	}

	updated, verdict, err := database.UpdateSale(c.Request.Context(), detector, saleID, database.SalePatch{
		Status: &req.Status,
	})
	if err != nil {
		if errors.Is(err, database.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}
	if updated == nil {
		current, gerr := database.GetSale(c.Request.Context(), saleID)
		if gerr != nil || current.Platform == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "sale placement conflicts with existing schedule"})
			return
		}
		c.JSON(http.StatusConflict, scheduling.FormatVerdict(*verdict, current.Platform.Policy()))
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteSale removes a sale from the schedule
// DELETE /internal/sales/:saleId
func DeleteSale(c *gin.Context) {
	saleID := c.Param("saleId")

	deleted, err := database.DeleteSale(c.Request.Context(), saleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": saleID})
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := scheduling.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
