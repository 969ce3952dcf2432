package scheduling

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Detector classifies a proposed sale against the existing schedule for
// its product+platform scope. It is a pure computation over its inputs:
// no I/O, no shared state, safe for concurrent use.
type Detector struct {
	metrics *MetricsRecorder
	logger  zerolog.Logger
}

// NewDetector creates a new conflict detector.
func NewDetector() *Detector {
	return &Detector{
		metrics: NewMetricsRecorder(),
		logger:  log.With().Str("component", "conflict_detector").Logger(),
	}
}

// Validate checks a proposal against the existing sales for the same
// product and platform under the platform's policy and returns a verdict.
//
// Classification per candidate, in order:
//  1. Scope filter: candidates for another product or platform, or the
//     sale named by ExcludeSaleID, are skipped.
//  2. Direct conflict: inclusive ranges sharing at least one calendar day.
//     Touching endpoints conflict. A direct conflict is never also counted
//     as a cooldown conflict.
//  3. Forward cooldown: the proposal starts after the candidate ends but
//     before the candidate's cooldown boundary.
//  4. Reverse cooldown: the candidate starts after the proposal ends but
//     before the proposal's own cooldown boundary. This protects the
//     placement from a follow-on sale already on the books, independent of
//     insertion order.
//
// The cooldown boundary day itself is allowed (starting exactly on it is
// not a conflict) while overlap is boundary-inclusive; the two rules
// differ on purpose. An effective cooldown of 0 skips checks 3 and 4
// entirely.
//
// Callers guarantee Start <= End and a resolved policy; for well-formed
// input every call has a deterministic, total answer.
func (d *Detector) Validate(proposal Proposal, existing []Sale, policy PlatformPolicy) Verdict {
	startTime := time.Now()
	defer func() {
		d.metrics.RecordValidationDuration(time.Since(startTime))
	}()

	pStart := NormalizeDate(proposal.Start)
	pEnd := NormalizeDate(proposal.End)
	cooldown := policy.EffectiveCooldown(proposal.Type)

	verdict := Verdict{
		DirectConflicts:   []Sale{},
		CooldownConflicts: []Sale{},
		// Reported for display, full unadjusted length. The boundary used
		// for classification below is the adjusted one.
		CooldownEnd: CooldownEnd(pEnd, policy.CooldownDays),
	}

	candidates := 0
	for _, candidate := range existing {
		if candidate.ProductID != proposal.ProductID || candidate.PlatformID != proposal.PlatformID {
			continue
		}
		if proposal.ExcludeSaleID != "" && candidate.ID == proposal.ExcludeSaleID {
			continue
		}
		candidates++

		cStart := NormalizeDate(candidate.Start)
		cEnd := NormalizeDate(candidate.End)

		if Overlaps(pStart, pEnd, cStart, cEnd) {
			verdict.DirectConflicts = append(verdict.DirectConflicts, candidate)
			continue
		}

		if cooldown <= 0 {
			continue
		}

		if dayAfter(pStart, cEnd) && dayBefore(pStart, CooldownBoundary(cEnd, cooldown)) {
			verdict.CooldownConflicts = append(verdict.CooldownConflicts, candidate)
			continue
		}

		if dayAfter(cStart, pEnd) && dayBefore(cStart, CooldownBoundary(pEnd, cooldown)) {
			verdict.CooldownConflicts = append(verdict.CooldownConflicts, candidate)
		}
	}

	verdict.Valid = len(verdict.DirectConflicts) == 0 && len(verdict.CooldownConflicts) == 0

	d.metrics.RecordCandidateCount(candidates)
	d.metrics.RecordVerdict(verdict)

	if !verdict.Valid {
		d.logger.Debug().
			Str("product_id", proposal.ProductID).
			Str("platform_id", proposal.PlatformID).
			Str("start", FormatDate(pStart)).
			Str("end", FormatDate(pEnd)).
			Int("direct", len(verdict.DirectConflicts)).
			Int("cooldown", len(verdict.CooldownConflicts)).
			Msg("Sale placement rejected")
	}

	return verdict
}
