package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedrive/sales-service/internal/scheduling"
)

func validateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/internal/sales/validate", ValidateSale)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Input rejection happens before any database access, so these paths are
// testable without a backing store.

func TestValidateSaleMissingFields(t *testing.T) {
	router := validateRouter()

	w := postJSON(t, router, "/internal/sales/validate", gin.H{
		"productId": "prod-1",
		// platformId, startDate, endDate missing
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateSaleMalformedDate(t *testing.T) {
	router := validateRouter()

	tests := []struct {
		name      string
		startDate string
		endDate   string
	}{
		{name: "garbage start", startDate: "not-a-date", endDate: "2026-03-15"},
		{name: "garbage end", startDate: "2026-03-10", endDate: "nope"},
		{name: "truncated", startDate: "2026-03", endDate: "2026-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/internal/sales/validate", ValidateSaleRequest{
				ProductID:  "prod-1",
				PlatformID: "plat-1",
				StartDate:  tt.startDate,
				EndDate:    tt.endDate,
			})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "malformed date")
		})
	}
}

func TestValidateSaleInvertedRange(t *testing.T) {
	router := validateRouter()

	w := postJSON(t, router, "/internal/sales/validate", ValidateSaleRequest{
		ProductID:  "prod-1",
		PlatformID: "plat-1",
		StartDate:  "2026-03-15",
		EndDate:    "2026-03-10",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "end date before start date")
}

func TestValidateSaleRequestProposal(t *testing.T) {
	req := ValidateSaleRequest{
		ProductID:  "prod-1",
		PlatformID: "plat-1",
		StartDate:  "2026-03-10T00:00:00Z",
		EndDate:    "2026-03-15",
	}

	p, err := req.proposal()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", scheduling.FormatDate(p.Start))
	assert.Equal(t, "2026-03-15", scheduling.FormatDate(p.End))
	assert.Equal(t, scheduling.SaleTypeRegular, p.Type, "empty saleType defaults to regular")
}
