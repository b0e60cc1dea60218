package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ananya/practiq/ent"
	"github.com/ananya/practiq/ent/practicesession"
	"github.com/ananya/practiq/ent/studenttier"
	"github.com/ananya/practiq/internal/entitlement"
)

// TierStore implements entitlement.Provider over the tier and session tables.
type TierStore struct {
	client *ent.Client
}

var _ entitlement.Provider = (*TierStore)(nil)

// FetchTier returns the student's tier. A student without a row is free.
func (s *TierStore) FetchTier(ctx context.Context, studentID string) (entitlement.Tier, error) {
	row, err := s.client.StudentTier.Query().
		Where(studenttier.StudentID(studentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return entitlement.TierFree, nil
		}
		return "", fmt.Errorf("query tier: %w", err)
	}
	return entitlement.Tier(row.Tier), nil
}

// CountCompletedSessionsToday counts sessions completed since local midnight.
func (s *TierStore) CountCompletedSessionsToday(ctx context.Context, studentID string) (int, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	n, err := s.client.PracticeSession.Query().
		Where(
			practicesession.StudentID(studentID),
			practicesession.CompletedAtNotNil(),
			practicesession.CompletedAtGTE(midnight),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return n, nil
}

// SetTier upserts the student's tier assignment.
func (s *TierStore) SetTier(ctx context.Context, studentID string, tier entitlement.Tier) error {
	n, err := s.client.StudentTier.Update().
		Where(studenttier.StudentID(studentID)).
		SetTier(string(tier)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update tier: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = s.client.StudentTier.Create().
		SetStudentID(studentID).
		SetTier(string(tier)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create tier: %w", err)
	}
	return nil
}
