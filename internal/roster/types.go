// Package roster is the resource store for organization-scoped records:
// members, meetings, news, officials, governing documents and match reports.
// The rest of the system reaches storage only through the Store interface, so
// the in-memory seed and the Postgres implementation are interchangeable.
package roster

import "errors"

// ErrNotFound indicates the entity is absent for the given id and scope.
var ErrNotFound = errors.New("roster: not found")

// Member status values. Payment status is tracked separately in IsPaid.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusDismissed = "dismissed"
)

// Organization is a tenant.
type Organization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Member is an organization member. Mutated in place by payment updates.
type Member struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	IsPaid         bool   `json:"isPaid"`
	Status         string `json:"status"`
	Role           string `json:"role"`
	Service        string `json:"service"`
}

// Official is an office holder listed on the organization page.
type Official struct {
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Service        string `json:"service"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// News is a dated announcement.
type News struct {
	OrganizationID string `json:"organizationId"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	Category       string `json:"category"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// Meeting is a recorded meeting with minutes, action points and fines.
type Meeting struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organizationId"`
	Title          string        `json:"title"`
	Date           string        `json:"date"`
	Venue          string        `json:"venue"`
	Attendance     int           `json:"attendance"`
	Minutes        string        `json:"minutes"`
	ActionPoints   []ActionPoint `json:"actionPoints"`
	Fines          []Fine        `json:"fines"`
}

// ActionPoint is a task assigned during a meeting.
type ActionPoint struct {
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
}

// Fine is a penalty recorded against a member during a meeting.
type Fine struct {
	MemberName string  `json:"memberName"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason"`
}

// Constitution is an organization's governing document.
type Constitution struct {
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	Articles         []Article `json:"articles"`
	AdoptedDate      string    `json:"adoptedDate"`
	LastAmended      string    `json:"lastAmended"`
}

// Article groups numbered sections of a constitution.
type Article struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is one numbered clause.
type Section struct {
	Number  string `json:"number"`
	Content string `json:"content"`
}

// SoccerMatch is a match report for the association team.
type SoccerMatch struct {
	MatchDay          string      `json:"matchDay"`
	HomeTeam          string      `json:"homeTeam"`
	AwayTeam          string      `json:"awayTeam"`
	HomeScore         int         `json:"homeScore"`
	AwayScore         int         `json:"awayScore"`
	Referee           string      `json:"referee"`
	AssistantReferee1 string      `json:"assistantReferee1"`
	AssistantReferee2 string      `json:"assistantReferee2"`
	Goals             []MatchGoal `json:"goals"`
	Assists           []MatchGoal `json:"assists"`
	YellowCards       []MatchCard `json:"yellowCards"`
	RedCards          []MatchCard `json:"redCards"`
}

// MatchGoal records a goal or an assist.
type MatchGoal struct {
	PlayerName string `json:"playerName"`
	Minute     string `json:"minute"`
	Team       string `json:"team"`
}

// MatchCard records a booking.
type MatchCard struct {
	PlayerName string `json:"playerName"`
	Minute     string `json:"minute"`
	Team       string `json:"team"`
	Reason     string `json:"reason"`
}
