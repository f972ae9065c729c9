package roster

import "context"

// Store describes the read/write contract the rest of the system holds
// against storage. All reads filter on an organization id; nothing defaults
// the scope.
type Store interface {
	Organizations(ctx context.Context) ([]Organization, error)
	OrganizationByID(ctx context.Context, id string) (Organization, error)
	OrganizationsByIDs(ctx context.Context, ids []string) ([]Organization, error)

	MembersByOrg(ctx context.Context, orgID string) ([]Member, error)
	MemberByID(ctx context.Context, id, orgID string) (Member, error)
	// UpdateMemberPaid flips the payment flag under the store's write lock
	// and returns the updated record. Idempotent: repeated calls with the
	// same value converge with no further state change.
	UpdateMemberPaid(ctx context.Context, id, orgID string, paid bool) (Member, error)

	MeetingsByOrg(ctx context.Context, orgID string) ([]Meeting, error)
	MeetingByID(ctx context.Context, id, orgID string) (Meeting, error)

	NewsByOrg(ctx context.Context, orgID string) ([]News, error)
	OfficialsByOrg(ctx context.Context, orgID string) ([]Official, error)
	ConstitutionByOrg(ctx context.Context, orgID string) (Constitution, error)

	CurrentMatch(ctx context.Context) (SoccerMatch, error)
	MatchHistory(ctx context.Context) ([]SoccerMatch, error)
}
