// Package entitlement resolves a student's subscription tier and gates
// session creation behind the tier's daily limit.
package entitlement

import "context"

// Tier is a subscription level.
type Tier string

const (
	TierFree    Tier = "free"
	TierPlus    Tier = "plus"
	TierPremium Tier = "premium"
)

// Status is the tier-derived permission set.
type Status struct {
	Tier            Tier
	SessionsPerDay  int
	DetailedResults bool
	AISummary       bool
}

// StatusFor maps a tier to its permissions. Unknown tiers resolve to free —
// a student is never blocked from reading a default state.
func StatusFor(t Tier) Status {
	switch t {
	case TierPlus:
		return Status{Tier: TierPlus, SessionsPerDay: 10, DetailedResults: true}
	case TierPremium:
		return Status{Tier: TierPremium, SessionsPerDay: 25, DetailedResults: true, AISummary: true}
	default:
		return Status{Tier: TierFree, SessionsPerDay: 3}
	}
}

// Provider is the subscription collaborator contract.
type Provider interface {
	// FetchTier resolves the student's current tier.
	FetchTier(ctx context.Context, studentID string) (Tier, error)

	// CountCompletedSessionsToday counts sessions the student completed
	// since local midnight.
	CountCompletedSessionsToday(ctx context.Context, studentID string) (int, error)
}
