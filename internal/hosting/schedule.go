// Package hosting computes the calendar-month hosting-duty rotation. The
// schedule is a pure function of the clock and the current roster: nothing is
// persisted and there is no rotation memory between calls.
package hosting

import (
	"context"
	"time"

	"veteranapp.org/internal/roster"
)

const (
	// hostCount caps how many members carry the duty in one period.
	hostCount = 3

	dateLayout = "2006-01-02"

	// DefaultContribution is the per-period amount when configuration
	// supplies none.
	DefaultContribution = 100.0
)

// Schedule is one hosting-duty period for an organization.
type Schedule struct {
	ID                 string          `json:"id"`
	StartDate          string          `json:"startDate"`
	EndDate            string          `json:"endDate"`
	Hosts              []roster.Member `json:"hosts"`
	AllMembers         []roster.Member `json:"allMembers"`
	ContributionAmount float64         `json:"contributionAmount"`
}

// Scheduler derives hosting periods from the roster store.
type Scheduler struct {
	store        roster.Store
	contribution float64
	now          func() time.Time
}

// Option configures Scheduler behavior.
type Option func(*Scheduler)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) Option {
	return func(s *Scheduler) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewScheduler builds a scheduler over the given store. contribution is the
// fixed policy amount attached to every period; zero or negative falls back
// to DefaultContribution.
func NewScheduler(store roster.Store, contribution float64, opts ...Option) *Scheduler {
	if contribution <= 0 {
		contribution = DefaultContribution
	}
	s := &Scheduler{store: store, contribution: contribution, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the period covering the present calendar month.
func (s *Scheduler) Current(ctx context.Context, orgID string) (Schedule, error) {
	return s.build(ctx, orgID, false)
}

// Next returns the period covering the following calendar month.
func (s *Scheduler) Next(ctx context.Context, orgID string) (Schedule, error) {
	return s.build(ctx, orgID, true)
}

func (s *Scheduler) build(ctx context.Context, orgID string, next bool) (Schedule, error) {
	members, err := s.store.MembersByOrg(ctx, orgID)
	if err != nil {
		return Schedule{}, err
	}
	if len(members) == 0 {
		return Schedule{}, roster.ErrNotFound
	}

	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if next {
		start = start.AddDate(0, 1, 0)
	}
	// Anchoring on the first of the month makes AddDate exact across
	// 28/29/30/31-day months and year rollover.
	end := start.AddDate(0, 1, -1)

	id := "schedule-current"
	if next {
		id = "schedule-next"
	}

	return Schedule{
		ID:                 id,
		StartDate:          start.Format(dateLayout),
		EndDate:            end.Format(dateLayout),
		Hosts:              selectHosts(members),
		AllMembers:         members,
		ContributionAmount: s.contribution,
	}, nil
}

// selectHosts takes the first qualifying members in roster order: status
// active and dues paid. Deliberately stateless; rerunning with an unchanged
// roster picks the same hosts.
func selectHosts(members []roster.Member) []roster.Member {
	hosts := make([]roster.Member, 0, hostCount)
	for _, m := range members {
		if m.Status != roster.StatusActive || !m.IsPaid {
			continue
		}
		hosts = append(hosts, m)
		if len(hosts) == hostCount {
			break
		}
	}
	return hosts
}
