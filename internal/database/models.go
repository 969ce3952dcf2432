package database

import (
	"time"

	"github.com/gamedrive/sales-service/internal/scheduling"
)

// Game represents a game title in the catalog.
type Game struct {
	ID        string    `json:"id"`        // UUID
	Title     string    `json:"title"`     // Display title
	Developer *string   `json:"developer"` // Optional developer name
	Publisher *string   `json:"publisher"` // Optional publisher name
	CreatedAt time.Time `json:"created_at"`
}

// Product represents a sellable edition of a game (standard, deluxe, DLC
// bundle). Game is filled at read time so joined rows carry the full chain
// with non-optional fields instead of loosely typed lookups.
type Product struct {
	ID        string    `json:"id"`         // UUID
	GameID    string    `json:"game_id"`    // FK to games.id
	Name      string    `json:"name"`       // Edition name
	SKU       *string   `json:"sku"`        // Optional store SKU
	BasePrice *int      `json:"base_price"` // List price in cents
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Game Game `json:"game"` // Populated on joined reads
}

// Platform represents a distribution storefront and its sale timing rules.
type Platform struct {
	ID                             string    `json:"id"`   // UUID
	Name                           string    `json:"name"` // Steam, GOG, Epic, etc.
	CooldownDays                   int       `json:"cooldown_days"`
	SpecialSalesExemptFromCooldown bool      `json:"special_sales_exempt_from_cooldown"`
	CreatedAt                      time.Time `json:"created_at"`
	UpdatedAt                      time.Time `json:"updated_at"`
}

// Policy converts a platform row into the engine's policy value.
func (p *Platform) Policy() scheduling.PlatformPolicy {
	return scheduling.PlatformPolicy{
		PlatformID:         p.ID,
		Name:               p.Name,
		CooldownDays:       p.CooldownDays,
		SpecialSalesExempt: p.SpecialSalesExemptFromCooldown,
	}
}

// SaleRecord represents a persisted sale event. StartDate and EndDate are
// inclusive calendar dates stored as DATE columns.
type SaleRecord struct {
	ID          string    `json:"id"`           // UUID
	ProductID   string    `json:"product_id"`   // FK to products.id
	PlatformID  string    `json:"platform_id"`  // FK to platforms.id
	StartDate   time.Time `json:"start_date"`   // First day of the sale (inclusive)
	EndDate     time.Time `json:"end_date"`     // Last day of the sale (inclusive)
	SaleType    string    `json:"sale_type"`    // regular, seasonal, special, custom labels
	Status      string    `json:"status"`       // draft, scheduled, active, completed, rejected, cancelled
	DiscountPct *int      `json:"discount_pct"` // Optional discount percentage
	Notes       *string   `json:"notes"`        // Optional planner notes
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Product  *Product  `json:"product,omitempty"`  // Populated on joined reads
	Platform *Platform `json:"platform,omitempty"` // Populated on joined reads
}

// Snapshot converts a sale row into the engine's read-only sale value.
func (s *SaleRecord) Snapshot() scheduling.Sale {
	return scheduling.Sale{
		ID:         s.ID,
		ProductID:  s.ProductID,
		PlatformID: s.PlatformID,
		Start:      scheduling.NormalizeDate(s.StartDate),
		End:        scheduling.NormalizeDate(s.EndDate),
		Type:       scheduling.SaleType(s.SaleType),
		Status:     scheduling.SaleStatus(s.Status),
	}
}
