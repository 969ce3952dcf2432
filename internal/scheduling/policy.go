package scheduling

import "time"

// EffectiveCooldown resolves the cooldown length that applies to a sale of
// the given type under this policy. Seasonal/special sales drop to 0 when
// the platform exempts them; exemption never relaxes direct-overlap rules.
func (p PlatformPolicy) EffectiveCooldown(t SaleType) int {
	if p.SpecialSalesExempt && t.ExemptEligible() {
		return 0
	}
	return p.CooldownDays
}

// CooldownBoundary returns the day the quiet window following a sale
// ending on end closes. The end-of-sale day counts as day zero, so the
// boundary sits at end + (days - 1). Starts strictly between the sale's
// end and the boundary violate the cooldown; starting on the boundary day
// itself, or later, is permitted. With days=1 a new sale may start the
// very next calendar day.
func CooldownBoundary(end time.Time, days int) time.Time {
	return ShiftDays(end, days-1)
}

// CooldownEnd returns the full, unadjusted cooldown expiry for a sale
// ending on end. This is the "next available date" figure reported to
// callers for display; conflict classification uses CooldownBoundary.
func CooldownEnd(end time.Time, days int) time.Time {
	return ShiftDays(end, days)
}
