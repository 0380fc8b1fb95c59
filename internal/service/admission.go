package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RupeshP0713/roomrent-backend/internal/config"
	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

// admissionPolicy is the immutable parameter set of the admission check.
type admissionPolicy struct {
	pairPolicy       config.PairPolicy
	pairCooldown     time.Duration
	activeWindow     time.Duration
	maxActivePending int
}

func newAdmissionPolicy(cfg config.RateLimitConfig) admissionPolicy {
	return admissionPolicy{
		pairPolicy:       cfg.PairPolicy,
		pairCooldown:     cfg.PairCooldown(),
		activeWindow:     cfg.ActiveWindow(),
		maxActivePending: cfg.MaxActivePending,
	}
}

// evaluateAdmission decides whether a new request may be admitted, given a
// snapshot of the store: the pair's reference request (latest for the
// cooldown policy, latest Pending for the single-pending policy) and the
// owner's Pending requests oldest-first. It returns nil to admit. The
// function has no side effects; the caller re-queries the store on every
// admission attempt rather than maintaining counters.
func evaluateAdmission(p admissionPolicy, now time.Time, pairRef *domain.RentRequest, pending []domain.RentRequest) *domain.AdmissionError {
	// Check 1: pairwise cooldown. First failing check wins.
	switch p.pairPolicy {
	case config.PairPolicySinglePending:
		if pairRef != nil {
			return &domain.AdmissionError{
				Reason: "a request to this tenant is already pending",
			}
		}
	default:
		if pairRef != nil {
			next := pairRef.CreatedAt.Add(p.pairCooldown)
			if next.After(now) {
				return &domain.AdmissionError{
					Reason:         "a request was sent to this tenant recently",
					HoursRemaining: ceilHours(next.Sub(now)),
					NextAttemptAt:  next,
				}
			}
		}
	}

	// Check 2: per-owner quota over the active window. Only Pending requests
	// count; the wait time is derived from the oldest Pending request overall,
	// not the oldest active one.
	windowStart := now.Add(-p.activeWindow)
	active := 0
	for _, req := range pending {
		if req.CreatedAt.After(windowStart) {
			active++
		}
	}
	if active >= p.maxActivePending {
		oldest := pending[0]
		next := oldest.CreatedAt.Add(p.activeWindow)
		return &domain.AdmissionError{
			Reason:         fmt.Sprintf("maximum %d pending requests allowed", p.maxActivePending),
			HoursRemaining: ceilHours(next.Sub(now)),
			NextAttemptAt:  next,
		}
	}

	return nil
}

// ceilHours rounds a duration up to whole hours, so any remaining fraction of
// an hour reports as a full hour. Non-positive durations report zero.
func ceilHours(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	hours := int(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

// newRequestID builds a time-based id with a random suffix, unique for all
// practical purposes.
func newRequestID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("REQ_%d_%s", now.UnixMilli(), suffix)
}
