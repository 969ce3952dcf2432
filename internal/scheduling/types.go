package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// SaleType classifies a sale for cooldown purposes. Platforms may exempt
// seasonal/special events from their cooldown rules; any other label is
// treated as a regular sale.
type SaleType string

const (
	SaleTypeRegular  SaleType = "regular"
	SaleTypeSeasonal SaleType = "seasonal"
	SaleTypeSpecial  SaleType = "special"
)

// ExemptEligible reports whether this type can be exempted from cooldown
// when the platform's exemption flag is set.
func (t SaleType) ExemptEligible() bool {
	switch SaleType(strings.ToLower(string(t))) {
	case SaleTypeSeasonal, SaleTypeSpecial:
		return true
	}
	return false
}

// SaleStatus is the lifecycle state of a sale. Terminal states (rejected,
// cancelled) are excluded from conflict candidate sets by the caller.
type SaleStatus string

const (
	SaleStatusDraft     SaleStatus = "draft"
	SaleStatusScheduled SaleStatus = "scheduled"
	SaleStatusActive    SaleStatus = "active"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusRejected  SaleStatus = "rejected"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Terminal reports whether the status removes a sale from scheduling
// consideration.
func (s SaleStatus) Terminal() bool {
	return s == SaleStatusRejected || s == SaleStatusCancelled
}

// Known reports whether s is one of the lifecycle states.
func (s SaleStatus) Known() bool {
	switch s {
	case SaleStatusDraft, SaleStatusScheduled, SaleStatusActive,
		SaleStatusCompleted, SaleStatusRejected, SaleStatusCancelled:
		return true
	}
	return false
}

// Sale is a read-only snapshot of a scheduled sale event. Start and End are
// inclusive calendar dates, Start <= End.
type Sale struct {
	ID         string     // UUID sale identifier
	ProductID  string     // Product the sale applies to
	PlatformID string     // Platform the sale runs on
	Start      time.Time  // First day of the sale (inclusive)
	End        time.Time  // Last day of the sale (inclusive)
	Type       SaleType   // Cooldown classification
	Status     SaleStatus // Lifecycle state
}

// PlatformPolicy carries the timing rules a platform imposes on sales for
// a single product.
type PlatformPolicy struct {
	PlatformID          string // UUID platform identifier
	Name                string // Human-readable platform name
	CooldownDays        int    // Minimum gap after a sale ends, >= 0
	SpecialSalesExempt  bool   // Whether seasonal/special sales skip the cooldown
}

// Proposal describes a sale placement to be validated against the existing
// schedule for its product+platform scope.
type Proposal struct {
	ProductID     string    // Product the sale applies to
	PlatformID    string    // Platform the sale runs on
	Start         time.Time // Proposed first day (inclusive)
	End           time.Time // Proposed last day (inclusive)
	Type          SaleType  // Cooldown classification
	ExcludeSaleID string    // Sale to ignore when re-validating an edit ("" = none)
}

// Validate checks the proposal's own range before it is handed to the
// detector. The detector assumes well-formed input.
func (p *Proposal) Validate() error {
	if p.ProductID == "" || p.PlatformID == "" {
		return fmt.Errorf("proposal requires productId and platformId")
	}
	if dayAfter(p.Start, p.End) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange, FormatDate(p.Start), FormatDate(p.End))
	}
	return nil
}

// Duration returns the sale length in whole days (a one-day sale is 1).
func (p *Proposal) Duration() int {
	return DaysBetween(NormalizeDate(p.Start), NormalizeDate(p.End))
}
