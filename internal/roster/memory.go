package roster

import (
	"context"
	"sync"
)

// Memory implements Store with in-process concurrency safety. Reads hand out
// copies; the payment update is a read-modify-write executed entirely under
// the write lock, so concurrent updates to one member never lose writes.
type Memory struct {
	mu            sync.RWMutex
	orgs          []Organization
	members       []Member
	officials     []Official
	news          []News
	meetings      []Meeting
	constitutions map[string]Constitution
	matches       []SoccerMatch
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{constitutions: make(map[string]Constitution)}
}

func (s *Memory) Organizations(ctx context.Context) ([]Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Organization, len(s.orgs))
	copy(out, s.orgs)
	return out, nil
}

func (s *Memory) OrganizationByID(ctx context.Context, id string) (Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, org := range s.orgs {
		if org.ID == id {
			return org, nil
		}
	}
	return Organization{}, ErrNotFound
}

func (s *Memory) OrganizationsByIDs(ctx context.Context, ids []string) ([]Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var out []Organization
	for _, org := range s.orgs {
		if _, ok := wanted[org.ID]; ok {
			out = append(out, org)
		}
	}
	return out, nil
}

func (s *Memory) MembersByOrg(ctx context.Context, orgID string) ([]Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Member
	for _, m := range s.members {
		if m.OrganizationID == orgID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Memory) MemberByID(ctx context.Context, id, orgID string) (Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id && m.OrganizationID == orgID {
			return m, nil
		}
	}
	return Member{}, ErrNotFound
}

func (s *Memory) UpdateMemberPaid(ctx context.Context, id, orgID string, paid bool) (Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id && s.members[i].OrganizationID == orgID {
			s.members[i].IsPaid = paid
			return s.members[i], nil
		}
	}
	return Member{}, ErrNotFound
}

func (s *Memory) MeetingsByOrg(ctx context.Context, orgID string) ([]Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Meeting
	for _, m := range s.meetings {
		if m.OrganizationID == orgID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Memory) MeetingByID(ctx context.Context, id, orgID string) (Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.meetings {
		if m.ID == id && m.OrganizationID == orgID {
			return m, nil
		}
	}
	return Meeting{}, ErrNotFound
}

func (s *Memory) NewsByOrg(ctx context.Context, orgID string) ([]News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []News
	for _, n := range s.news {
		if n.OrganizationID == orgID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Memory) OfficialsByOrg(ctx context.Context, orgID string) ([]Official, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Official
	for _, o := range s.officials {
		if o.OrganizationID == orgID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Memory) ConstitutionByOrg(ctx context.Context, orgID string) (Constitution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.constitutions[orgID]
	if !ok {
		return Constitution{}, ErrNotFound
	}
	return c, nil
}

func (s *Memory) CurrentMatch(ctx context.Context) (SoccerMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.matches) == 0 {
		return SoccerMatch{}, ErrNotFound
	}
	return s.matches[len(s.matches)-1], nil
}

func (s *Memory) MatchHistory(ctx context.Context) ([]SoccerMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SoccerMatch, len(s.matches))
	copy(out, s.matches)
	return out, nil
}

// AddMembers appends members preserving insert order. Roster order matters:
// host selection takes the first qualifying members in this order.
func (s *Memory) AddMembers(members ...Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, members...)
}

// AddOrganizations appends organizations.
func (s *Memory) AddOrganizations(orgs ...Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs = append(s.orgs, orgs...)
}

// AddOfficials appends officials.
func (s *Memory) AddOfficials(officials ...Official) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.officials = append(s.officials, officials...)
}

// AddNews appends news items.
func (s *Memory) AddNews(items ...News) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.news = append(s.news, items...)
}

// AddMeetings appends meetings.
func (s *Memory) AddMeetings(meetings ...Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = append(s.meetings, meetings...)
}

// SetConstitution stores the governing document for its organization.
func (s *Memory) SetConstitution(c Constitution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.constitutions[c.OrganizationID] = c
}

// AddMatches appends match reports; the last one added is the current match.
func (s *Memory) AddMatches(matches ...SoccerMatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = append(s.matches, matches...)
}
