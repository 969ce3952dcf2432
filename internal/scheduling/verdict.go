package scheduling

import (
	"fmt"
	"time"
)

// Verdict is the detector's raw finding for one proposal. Constructed
// fresh per call, never persisted.
type Verdict struct {
	Valid             bool      // No direct or cooldown conflicts found
	DirectConflicts   []Sale    // Existing sales whose range overlaps the proposal
	CooldownConflicts []Sale    // Existing sales whose cooldown window collides with the proposal
	CooldownEnd       time.Time // Expiry of the cooldown the proposal itself would trigger
}

// SaleRef is the transport shape of a conflicting sale.
type SaleRef struct {
	ID         string     `json:"id" jsonschema:"required"`
	ProductID  string     `json:"productId" jsonschema:"required"`
	PlatformID string     `json:"platformId" jsonschema:"required"`
	StartDate  string     `json:"startDate" jsonschema:"required"`
	EndDate    string     `json:"endDate" jsonschema:"required"`
	SaleType   SaleType   `json:"saleType,omitempty"`
	Status     SaleStatus `json:"status,omitempty"`
}

// ConflictGroups separates direct date overlaps from cooldown violations.
type ConflictGroups struct {
	Direct   []SaleRef `json:"direct" jsonschema:"required"`
	Cooldown []SaleRef `json:"cooldown" jsonschema:"required"`
}

// ValidationResult is the serializable verdict returned to the API layer.
type ValidationResult struct {
	Valid        bool           `json:"valid" jsonschema:"required"`
	Conflicts    ConflictGroups `json:"conflicts" jsonschema:"required"`
	CooldownEnd  string         `json:"cooldownEnd" jsonschema:"required"`
	Platform     string         `json:"platform" jsonschema:"required"`
	CooldownDays int            `json:"cooldownDays" jsonschema:"required,minimum=0"`
	Message      string         `json:"message,omitempty"`
}

// FormatVerdict shapes a verdict for transport without altering the
// decision.
func FormatVerdict(v Verdict, policy PlatformPolicy) ValidationResult {
	result := ValidationResult{
		Valid: v.Valid,
		Conflicts: ConflictGroups{
			Direct:   saleRefs(v.DirectConflicts),
			Cooldown: saleRefs(v.CooldownConflicts),
		},
		CooldownEnd:  FormatDate(v.CooldownEnd),
		Platform:     policy.Name,
		CooldownDays: policy.CooldownDays,
	}
	if !v.Valid {
		result.Message = conflictMessage(len(v.DirectConflicts), len(v.CooldownConflicts), policy.Name)
	}
	return result
}

func saleRefs(sales []Sale) []SaleRef {
	refs := make([]SaleRef, 0, len(sales))
	for _, s := range sales {
		refs = append(refs, SaleRef{
			ID:         s.ID,
			ProductID:  s.ProductID,
			PlatformID: s.PlatformID,
			StartDate:  FormatDate(s.Start),
			EndDate:    FormatDate(s.End),
			SaleType:   s.Type,
			Status:     s.Status,
		})
	}
	return refs
}

func conflictMessage(direct, cooldown int, platform string) string {
	switch {
	case direct > 0 && cooldown > 0:
		return fmt.Sprintf("%d overlapping sale(s) and %d cooldown violation(s) on %s", direct, cooldown, platform)
	case direct > 0:
		return fmt.Sprintf("%d overlapping sale(s) on %s", direct, platform)
	default:
		return fmt.Sprintf("%d cooldown violation(s) on %s", cooldown, platform)
	}
}
