package entitlement

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ananya/practiq/internal/cache"
)

// Default cache windows. Tier changes are rare, so status lives for minutes;
// the limit snapshot goes stale within seconds of a completed session, so it
// lives for tens of seconds and is invalidated explicitly on session create
// and complete.
const (
	DefaultStatusTTL = 5 * time.Minute
	DefaultLimitTTL  = 30 * time.Second
)

// Limit is the daily-limit snapshot for a student.
type Limit struct {
	Tier          Tier
	SessionsToday int
	SessionLimit  int
	Remaining     int
	CanStart      bool
}

// Gate decides whether a student may start a new session. Both lookups fail
// open: a transient provider failure never locks a student out of practicing.
type Gate struct {
	provider Provider
	status   *cache.Cache[string, Status]
	limit    *cache.Cache[string, Limit]
}

// GateOption customizes a Gate.
type GateOption func(*gateConfig)

type gateConfig struct {
	statusTTL time.Duration
	limitTTL  time.Duration
}

// WithStatusTTL overrides the tier status cache window.
func WithStatusTTL(d time.Duration) GateOption {
	return func(c *gateConfig) { c.statusTTL = d }
}

// WithLimitTTL overrides the limit snapshot cache window.
func WithLimitTTL(d time.Duration) GateOption {
	return func(c *gateConfig) { c.limitTTL = d }
}

// NewGate creates a Gate over the subscription provider.
func NewGate(p Provider, opts ...GateOption) *Gate {
	cfg := gateConfig{statusTTL: DefaultStatusTTL, limitTTL: DefaultLimitTTL}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Gate{provider: p}
	g.status = cache.New(cfg.statusTTL, g.fetchStatus)
	g.limit = cache.New(cfg.limitTTL, g.fetchLimit)
	return g
}

// Status resolves the student's tier permissions, serving a cached value
// when fresh. Lookup errors resolve to the free tier.
func (g *Gate) Status(ctx context.Context, studentID string) Status {
	st, err := g.status.Get(ctx, studentID)
	if err != nil {
		// fetchStatus fails open, so this branch is unreachable today;
		// keep the default anyway.
		return StatusFor(TierFree)
	}
	return st
}

// CheckSessionLimit returns the current daily-limit snapshot for the student.
func (g *Gate) CheckSessionLimit(ctx context.Context, studentID string) Limit {
	lim, err := g.limit.Get(ctx, studentID)
	if err != nil {
		st := g.Status(ctx, studentID)
		return Limit{
			Tier:         st.Tier,
			SessionLimit: st.SessionsPerDay,
			Remaining:    st.SessionsPerDay,
			CanStart:     true,
		}
	}
	return lim
}

// InvalidateLimit drops the cached limit snapshot so the very next check
// reflects the new session count. Must be called synchronously after any
// session creation or completion. The longer-lived tier cache is untouched.
func (g *Gate) InvalidateLimit(studentID string) {
	g.limit.Invalidate(studentID)
}

func (g *Gate) fetchStatus(ctx context.Context, studentID string) (Status, error) {
	tier, err := g.provider.FetchTier(ctx, studentID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: tier lookup for %s failed, defaulting to free: %v\n", studentID, err)
		return StatusFor(TierFree), nil
	}
	return StatusFor(tier), nil
}

func (g *Gate) fetchLimit(ctx context.Context, studentID string) (Limit, error) {
	st, err := g.status.Get(ctx, studentID)
	if err != nil {
		st = StatusFor(TierFree)
	}

	today, err := g.provider.CountCompletedSessionsToday(ctx, studentID)
	if err != nil {
		// Fail open: availability over strict enforcement. Don't cache the
		// fallback so the next check retries the count.
		fmt.Fprintf(os.Stderr, "warning: session count for %s failed, allowing session: %v\n", studentID, err)
		return Limit{}, err
	}

	remaining := st.SessionsPerDay - today
	if remaining < 0 {
		remaining = 0
	}
	return Limit{
		Tier:          st.Tier,
		SessionsToday: today,
		SessionLimit:  st.SessionsPerDay,
		Remaining:     remaining,
		CanStart:      today < st.SessionsPerDay,
	}, nil
}
