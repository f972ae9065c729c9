package roster

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PG implements Store using PostgreSQL through database/sql (pgx stdlib
// driver). Roster order is the seed insert order, preserved by the seq
// column. Nested structures (action points, fines, articles, match detail)
// live in jsonb columns.
type PG struct {
	db *sql.DB
}

var _ Store = (*PG)(nil)

// NewPG wraps an open database handle.
func NewPG(db *sql.DB) *PG {
	return &PG{db: db}
}

func (s *PG) Organizations(ctx context.Context) ([]Organization, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, name, location from organizations order by id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Organization
	for rows.Next() {
		var org Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Location); err != nil {
			return nil, err
		}
		res = append(res, org)
	}
	return res, rows.Err()
}

func (s *PG) OrganizationByID(ctx context.Context, id string) (Organization, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, name, location from organizations where id=$1`, id)
	var org Organization
	if err := row.Scan(&org.ID, &org.Name, &org.Location); err != nil {
		if err == sql.ErrNoRows {
			return Organization{}, ErrNotFound
		}
		return Organization{}, err
	}
	return org, nil
}

func (s *PG) OrganizationsByIDs(ctx context.Context, ids []string) ([]Organization, error) {
	all, err := s.Organizations(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var res []Organization
	for _, org := range all {
		if _, ok := wanted[org.ID]; ok {
			res = append(res, org)
		}
	}
	return res, nil
}

func (s *PG) MembersByOrg(ctx context.Context, orgID string) ([]Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, organization_id, name, location, is_paid, status, role, service
		   from members where organization_id=$1 order by seq`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.Name, &m.Location, &m.IsPaid, &m.Status, &m.Role, &m.Service); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (s *PG) MemberByID(ctx context.Context, id, orgID string) (Member, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, organization_id, name, location, is_paid, status, role, service
		   from members where id=$1 and organization_id=$2`, id, orgID)
	var m Member
	if err := row.Scan(&m.ID, &m.OrganizationID, &m.Name, &m.Location, &m.IsPaid, &m.Status, &m.Role, &m.Service); err != nil {
		if err == sql.ErrNoRows {
			return Member{}, ErrNotFound
		}
		return Member{}, err
	}
	return m, nil
}

func (s *PG) UpdateMemberPaid(ctx context.Context, id, orgID string, paid bool) (Member, error) {
	row := s.db.QueryRowContext(ctx,
		`update members set is_paid=$3 where id=$1 and organization_id=$2
		 returning id, organization_id, name, location, is_paid, status, role, service`,
		id, orgID, paid)
	var m Member
	if err := row.Scan(&m.ID, &m.OrganizationID, &m.Name, &m.Location, &m.IsPaid, &m.Status, &m.Role, &m.Service); err != nil {
		if err == sql.ErrNoRows {
			return Member{}, ErrNotFound
		}
		return Member{}, err
	}
	return m, nil
}

func (s *PG) MeetingsByOrg(ctx context.Context, orgID string) ([]Meeting, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, organization_id, title, date, venue, attendance, minutes, action_points, fines
		   from meetings where organization_id=$1 order by seq`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (s *PG) MeetingByID(ctx context.Context, id, orgID string) (Meeting, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, organization_id, title, date, venue, attendance, minutes, action_points, fines
		   from meetings where id=$1 and organization_id=$2`, id, orgID)
	m, err := scanMeeting(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Meeting{}, ErrNotFound
		}
		return Meeting{}, err
	}
	return m, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row scanner) (Meeting, error) {
	var (
		m            Meeting
		actionPoints []byte
		fines        []byte
	)
	if err := row.Scan(&m.ID, &m.OrganizationID, &m.Title, &m.Date, &m.Venue, &m.Attendance, &m.Minutes, &actionPoints, &fines); err != nil {
		return Meeting{}, err
	}
	_ = json.Unmarshal(actionPoints, &m.ActionPoints)
	_ = json.Unmarshal(fines, &m.Fines)
	return m, nil
}

func (s *PG) NewsByOrg(ctx context.Context, orgID string) ([]News, error) {
	rows, err := s.db.QueryContext(ctx,
		`select organization_id, title, description, date, category, coalesce(image_url, '')
		   from news where organization_id=$1 order by seq`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []News
	for rows.Next() {
		var n News
		if err := rows.Scan(&n.OrganizationID, &n.Title, &n.Description, &n.Date, &n.Category, &n.ImageURL); err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, rows.Err()
}

func (s *PG) OfficialsByOrg(ctx context.Context, orgID string) ([]Official, error) {
	rows, err := s.db.QueryContext(ctx,
		`select organization_id, name, role, service, coalesce(image_url, '')
		   from officials where organization_id=$1 order by seq`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Official
	for rows.Next() {
		var o Official
		if err := rows.Scan(&o.OrganizationID, &o.Name, &o.Role, &o.Service, &o.ImageURL); err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func (s *PG) ConstitutionByOrg(ctx context.Context, orgID string) (Constitution, error) {
	row := s.db.QueryRowContext(ctx,
		`select organization_id, organization_name, articles, adopted_date, last_amended
		   from constitutions where organization_id=$1`, orgID)
	var (
		c        Constitution
		articles []byte
	)
	if err := row.Scan(&c.OrganizationID, &c.OrganizationName, &articles, &c.AdoptedDate, &c.LastAmended); err != nil {
		if err == sql.ErrNoRows {
			return Constitution{}, ErrNotFound
		}
		return Constitution{}, err
	}
	_ = json.Unmarshal(articles, &c.Articles)
	return c, nil
}

func (s *PG) CurrentMatch(ctx context.Context) (SoccerMatch, error) {
	row := s.db.QueryRowContext(ctx,
		`select payload from matches order by seq desc limit 1`)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return SoccerMatch{}, ErrNotFound
		}
		return SoccerMatch{}, err
	}
	var match SoccerMatch
	if err := json.Unmarshal(payload, &match); err != nil {
		return SoccerMatch{}, err
	}
	return match, nil
}

func (s *PG) MatchHistory(ctx context.Context) ([]SoccerMatch, error) {
	rows, err := s.db.QueryContext(ctx, `select payload from matches order by seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []SoccerMatch
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var match SoccerMatch
		if err := json.Unmarshal(payload, &match); err != nil {
			return nil, err
		}
		res = append(res, match)
	}
	return res, rows.Err()
}
