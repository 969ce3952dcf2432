package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/gamedrive/sales-service/internal/database"
	"github.com/gamedrive/sales-service/internal/scheduling"
)

var detector = scheduling.NewDetector()

// ValidateSaleRequest describes a proposed sale placement to check
type ValidateSaleRequest struct {
	ProductID     string `json:"productId" binding:"required" jsonschema:"required"`
	PlatformID    string `json:"platformId" binding:"required" jsonschema:"required"`
	StartDate     string `json:"startDate" binding:"required" jsonschema:"required,format=date"`
	EndDate       string `json:"endDate" binding:"required" jsonschema:"required,format=date"`
	SaleType      string `json:"saleType,omitempty" jsonschema:"example=regular"`
	ExcludeSaleID string `json:"excludeSaleId,omitempty"`
}

// BulkValidateRequest carries multiple proposals to check in one call
type BulkValidateRequest struct {
	Proposals []ValidateSaleRequest `json:"proposals" binding:"required,min=1,max=50" jsonschema:"required"`
}

// BulkValidateResponse returns one verdict per proposal, in request order
type BulkValidateResponse struct {
	Results []scheduling.ValidationResult `json:"results" jsonschema:"required"`
}

// proposal converts the request into an engine proposal, surfacing
// malformed dates and inverted ranges before any database work.
func (r *ValidateSaleRequest) proposal() (scheduling.Proposal, error) {
	start, err := scheduling.ParseDate(r.StartDate)
	if err != nil {
		return scheduling.Proposal{}, err
	}
	end, err := scheduling.ParseDate(r.EndDate)
	if err != nil {
		return scheduling.Proposal{}, err
	}

	saleType := scheduling.SaleType(r.SaleType)
	if r.SaleType == "" {
		saleType = scheduling.SaleTypeRegular
	}

	p := scheduling.Proposal{
		ProductID:     r.ProductID,
		PlatformID:    r.PlatformID,
		Start:         start,
		End:           end,
		Type:          saleType,
		ExcludeSaleID: r.ExcludeSaleID,
	}
	if err := p.Validate(); err != nil {
		return scheduling.Proposal{}, err
	}
	return p, nil
}

// validationStatus maps engine errors to HTTP status codes
func validationStatus(err error) int {
	switch {
	case errors.Is(err, scheduling.ErrMalformedDate), errors.Is(err, scheduling.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, scheduling.ErrPlatformNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ValidateSale checks a proposed sale against the existing schedule
// POST /internal/sales/validate
func ValidateSale(c *gin.Context) {
	var req ValidateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal, err := req.proposal()
	if err != nil {
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}

	verdict, platform, err := database.ValidateProposal(c.Request.Context(), detector, proposal)
	if err != nil {
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scheduling.FormatVerdict(*verdict, platform.Policy()))
}

// ValidateSalesBulk checks a batch of proposals concurrently
// POST /internal/sales/validate/bulk
func ValidateSalesBulk(c *gin.Context) {
	var req BulkValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposals := make([]scheduling.Proposal, len(req.Proposals))
	for i := range req.Proposals {
		p, err := req.Proposals[i].proposal()
		if err != nil {
			c.JSON(validationStatus(err), gin.H{"error": err.Error()})
			return
		}
		proposals[i] = p
	}

	ctx := c.Request.Context()
	results := make([]scheduling.ValidationResult, len(proposals))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := range proposals {
		g.Go(func() error {
			verdict, platform, err := database.ValidateProposal(gctx, detector, proposals[i])
			if err != nil {
				return err
			}
			results[i] = scheduling.FormatVerdict(*verdict, platform.Policy())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.JSON(validationStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, BulkValidateResponse{Results: results})
}
