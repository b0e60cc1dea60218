package entitlement

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	tier       Tier
	tierErr    error
	tierCalls  int
	today      int
	countErr   error
	countCalls int
}

func (p *fakeProvider) FetchTier(_ context.Context, _ string) (Tier, error) {
	p.tierCalls++
	return p.tier, p.tierErr
}

func (p *fakeProvider) CountCompletedSessionsToday(_ context.Context, _ string) (int, error) {
	p.countCalls++
	return p.today, p.countErr
}

func TestCheckSessionLimit_UnderLimit(t *testing.T) {
	p := &fakeProvider{tier: TierFree, today: 1}
	g := NewGate(p)

	lim := g.CheckSessionLimit(context.Background(), "s1")
	if !lim.CanStart {
		t.Error("CanStart = false, want true")
	}
	if lim.SessionLimit != 3 || lim.SessionsToday != 1 || lim.Remaining != 2 {
		t.Errorf("limit = %+v, want 3/1/2", lim)
	}
}

func TestCheckSessionLimit_AtLimit(t *testing.T) {
	p := &fakeProvider{tier: TierFree, today: 3}
	g := NewGate(p)

	lim := g.CheckSessionLimit(context.Background(), "s1")
	if lim.CanStart {
		t.Error("CanStart = true, want false after 3 completed sessions")
	}
	if lim.SessionLimit != 3 || lim.Remaining != 0 {
		t.Errorf("limit = %+v, want limit 3, remaining 0", lim)
	}
}

func TestCheckSessionLimit_CachedWithinTTL(t *testing.T) {
	p := &fakeProvider{tier: TierPlus, today: 2}
	g := NewGate(p)

	ctx := context.Background()
	g.CheckSessionLimit(ctx, "s1")
	g.CheckSessionLimit(ctx, "s1")

	if p.countCalls != 1 {
		t.Errorf("count queries = %d, want 1 (second check served from cache)", p.countCalls)
	}
}

func TestInvalidateLimit_ForcesRecount(t *testing.T) {
	p := &fakeProvider{tier: TierFree, today: 2}
	g := NewGate(p)

	ctx := context.Background()
	lim := g.CheckSessionLimit(ctx, "s1")
	if !lim.CanStart {
		t.Fatal("expected session allowed at 2/3")
	}

	// A session completes: the count moves and the cache is invalidated.
	p.today = 3
	g.InvalidateLimit("s1")

	lim = g.CheckSessionLimit(ctx, "s1")
	if lim.CanStart {
		t.Error("CanStart = true, want false right after invalidation")
	}
	if p.countCalls != 2 {
		t.Errorf("count queries = %d, want 2", p.countCalls)
	}
}

func TestCheckSessionLimit_FailsOpenOnCountError(t *testing.T) {
	p := &fakeProvider{tier: TierFree, countErr: errors.New("db down")}
	g := NewGate(p)

	lim := g.CheckSessionLimit(context.Background(), "s1")
	if !lim.CanStart {
		t.Error("CanStart = false, want true when the count query fails")
	}
}

func TestCheckSessionLimit_CountErrorNotCached(t *testing.T) {
	p := &fakeProvider{tier: TierFree, countErr: errors.New("db down")}
	g := NewGate(p)

	ctx := context.Background()
	g.CheckSessionLimit(ctx, "s1")

	// Provider recovers; the next check must see real numbers.
	p.countErr = nil
	p.today = 3
	lim := g.CheckSessionLimit(ctx, "s1")
	if lim.CanStart {
		t.Error("CanStart = true, want false once the provider recovers")
	}
}

func TestStatus_FailsOpenToFreeTier(t *testing.T) {
	p := &fakeProvider{tierErr: errors.New("lookup failed")}
	g := NewGate(p)

	st := g.Status(context.Background(), "s1")
	if st.Tier != TierFree {
		t.Errorf("tier = %s, want free on lookup error", st.Tier)
	}
	if st.SessionsPerDay != 3 {
		t.Errorf("sessions per day = %d, want 3", st.SessionsPerDay)
	}
}

func TestStatus_TierCacheSurvivesLimitInvalidation(t *testing.T) {
	p := &fakeProvider{tier: TierPremium, today: 0}
	g := NewGate(p)

	ctx := context.Background()
	g.CheckSessionLimit(ctx, "s1")
	g.InvalidateLimit("s1")
	g.CheckSessionLimit(ctx, "s1")

	if p.tierCalls != 1 {
		t.Errorf("tier lookups = %d, want 1 (limit invalidation keeps the tier cache)", p.tierCalls)
	}
}

func TestStatusFor_Permissions(t *testing.T) {
	tests := []struct {
		tier      Tier
		perDay    int
		detailed  bool
		aiSummary bool
	}{
		{TierFree, 3, false, false},
		{TierPlus, 10, true, false},
		{TierPremium, 25, true, true},
		{Tier("unknown"), 3, false, false},
	}

	for _, tt := range tests {
		st := StatusFor(tt.tier)
		if st.SessionsPerDay != tt.perDay || st.DetailedResults != tt.detailed || st.AISummary != tt.aiSummary {
			t.Errorf("StatusFor(%s) = %+v", tt.tier, st)
		}
	}
}
