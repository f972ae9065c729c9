package roster

// NewMemorySeeded returns an in-memory store loaded with the development
// dataset: three organizations with rosters, officials, news, meetings and
// constitutions, plus one recorded match.
func NewMemorySeeded() *Memory {
	s := NewMemory()

	s.AddOrganizations(
		Organization{ID: "org1", Name: "Veterans United", Location: "New York, NY"},
		Organization{ID: "org2", Name: "Heroes Association", Location: "Los Angeles, CA"},
		Organization{ID: "org3", Name: "Freedom Veterans", Location: "Chicago, IL"},
	)

	s.AddMembers(
		Member{ID: "1", OrganizationID: "org1", Name: "John Smith", Location: "New York, NY", IsPaid: true, Status: StatusActive, Role: "Member", Service: "U.S. Army"},
		Member{ID: "2", OrganizationID: "org1", Name: "Jane Doe", Location: "Brooklyn, NY", IsPaid: true, Status: StatusActive, Role: "Member", Service: "U.S. Navy"},
		Member{ID: "3", OrganizationID: "org1", Name: "Michael Brown", Location: "Queens, NY", IsPaid: false, Status: StatusActive, Role: "Member", Service: "U.S. Air Force"},
		Member{ID: "4", OrganizationID: "org1", Name: "Sarah Wilson", Location: "Manhattan, NY", IsPaid: true, Status: StatusSuspended, Role: "Member", Service: "U.S. Marine Corps"},
		Member{ID: "5", OrganizationID: "org1", Name: "David Lee", Location: "Bronx, NY", IsPaid: false, Status: StatusDismissed, Role: "Former Member", Service: "U.S. Army"},
		Member{ID: "6", OrganizationID: "org1", Name: "Emily Davis", Location: "Staten Island, NY", IsPaid: true, Status: StatusActive, Role: "Member", Service: "U.S. Coast Guard"},
		Member{ID: "7", OrganizationID: "org1", Name: "James Martinez", Location: "Long Island, NY", IsPaid: true, Status: StatusActive, Role: "Senior Member", Service: "U.S. Army"},
		Member{ID: "8", OrganizationID: "org1", Name: "Lisa Anderson", Location: "Yonkers, NY", IsPaid: false, Status: StatusActive, Role: "Member", Service: "U.S. Air Force"},
		Member{ID: "9", OrganizationID: "org1", Name: "Robert Taylor", Location: "White Plains, NY", IsPaid: true, Status: StatusActive, Role: "Member", Service: "U.S. Navy"},
		Member{ID: "10", OrganizationID: "org1", Name: "Jennifer Thomas", Location: "New Rochelle, NY", IsPaid: true, Status: StatusActive, Role: "Member", Service: "U.S. Marine Corps"},
		Member{ID: "11", OrganizationID: "org2", Name: "William Garcia", Location: "Los Angeles, CA", IsPaid: true, Status: StatusActive, Role: "Member", Service: "U.S. Army"},
		Member{ID: "12", OrganizationID: "org2", Name: "Maria Rodriguez", Location: "Hollywood, CA", IsPaid: true, Status: StatusActive, Role: "Member", Service: "U.S. Navy"},
		Member{ID: "13", OrganizationID: "org3", Name: "Christopher White", Location: "Chicago, IL", IsPaid: true, Status: StatusActive, Role: "Member", Service: "U.S. Air Force"},
	)

	s.AddOfficials(
		Official{OrganizationID: "org1", Name: "Gen. James Mitchell", Role: "President", Service: "U.S. Army", ImageURL: "https://example.com/james.jpg"},
		Official{OrganizationID: "org1", Name: "Col. Sarah Johnson", Role: "Vice President", Service: "U.S. Air Force"},
		Official{OrganizationID: "org1", Name: "Cdr. Michael Chen", Role: "Secretary", Service: "U.S. Navy"},
		Official{OrganizationID: "org1", Name: "Maj. David Williams", Role: "Treasurer", Service: "U.S. Marine Corps"},
		Official{OrganizationID: "org1", Name: "Sgt. Robert Davis", Role: "Organizing Secretary", Service: "U.S. Army"},
		Official{OrganizationID: "org1", Name: "Lt. Emily Rodriguez", Role: "Social Secretary", Service: "U.S. Air Force"},
		Official{OrganizationID: "org1", Name: "Capt. Thomas Anderson", Role: "Provost", Service: "U.S. Navy"},
		Official{OrganizationID: "org2", Name: "Gen. Patricia Moore", Role: "President", Service: "U.S. Army"},
		Official{OrganizationID: "org2", Name: "Col. William Taylor", Role: "Vice President", Service: "U.S. Marine Corps"},
		Official{OrganizationID: "org2", Name: "Cdr. Jennifer Lee", Role: "Secretary", Service: "U.S. Navy"},
		Official{OrganizationID: "org3", Name: "Gen. Charles Brown", Role: "President", Service: "U.S. Air Force"},
		Official{OrganizationID: "org3", Name: "Col. Lisa Martinez", Role: "Vice President", Service: "U.S. Army"},
	)

	s.AddNews(
		News{OrganizationID: "org1", Title: "Annual Gala Dinner", Description: "Join us for our annual gala dinner celebrating our veterans", Date: "Mar 15, 2026", Category: "Event", ImageURL: "https://example.com/gala.jpg"},
		News{OrganizationID: "org1", Title: "Scholarship Program Launch", Description: "New scholarship program for veterans' children", Date: "Feb 28, 2026", Category: "Announcement"},
		News{OrganizationID: "org1", Title: "Community Outreach Success", Description: "Our community outreach program helped 500 veterans this month", Date: "Feb 20, 2026", Category: "Achievement"},
		News{OrganizationID: "org1", Title: "Monthly Meeting Notice", Description: "Next monthly meeting scheduled for March 10th at 6 PM", Date: "Feb 15, 2026", Category: "Meeting"},
		News{OrganizationID: "org1", Title: "Health Fair Announcement", Description: "Free health screenings for all members on March 25th", Date: "Feb 10, 2026", Category: "Event"},
		News{OrganizationID: "org2", Title: "Veterans Day Parade", Description: "Annual parade planning committee meeting", Date: "Mar 10, 2026", Category: "Event"},
		News{OrganizationID: "org2", Title: "New Member Orientation", Description: "Welcome session for new members", Date: "Mar 05, 2026", Category: "Meeting"},
		News{OrganizationID: "org3", Title: "Fundraising Campaign", Description: "Spring fundraising campaign kicks off", Date: "Mar 08, 2026", Category: "Announcement"},
	)

	updateDB := ActionPoint{Description: "Update membership database", AssignedTo: "Secretary", Deadline: "Mar 01, 2026", Status: "In Progress"}
	planGala := ActionPoint{Description: "Plan annual gala", AssignedTo: "Social Secretary", Deadline: "Mar 15, 2026", Status: "Not Started"}
	s.AddMeetings(
		Meeting{
			ID: "1", OrganizationID: "org1", Title: "Monthly General Meeting", Date: "Feb 12, 2026",
			Venue: "Veterans Hall, 123 Main St", Attendance: 45,
			Minutes:      "Meeting called to order at 6:00 PM. President welcomed all members...",
			ActionPoints: []ActionPoint{updateDB, planGala},
			Fines: []Fine{
				{MemberName: "John Smith", Amount: 25.00, Reason: "Late arrival"},
				{MemberName: "Jane Doe", Amount: 50.00, Reason: "Missed previous meeting"},
			},
		},
		Meeting{
			ID: "2", OrganizationID: "org1", Title: "Executive Committee Meeting", Date: "Feb 05, 2026",
			Venue: "Conference Room A", Attendance: 7,
			Minutes:      "Executive committee reviewed budget proposals...",
			ActionPoints: []ActionPoint{updateDB},
		},
		Meeting{
			ID: "3", OrganizationID: "org2", Title: "Planning Committee", Date: "Feb 10, 2026",
			Venue: "Community Center", Attendance: 15,
			Minutes: "Committee discussed upcoming events...",
		},
	)

	nameAndPurpose := Article{
		Title: "Article I: Name and Purpose",
		Sections: []Section{
			{Number: "1.1", Content: "The name of this organization shall be Veterans United."},
			{Number: "1.2", Content: "The organization is a non-profit entity dedicated to serving veterans."},
		},
	}
	membership := Article{
		Title: "Article II: Membership",
		Sections: []Section{
			{Number: "2.1", Content: "Membership is open to all honorably discharged veterans."},
			{Number: "2.2", Content: "Annual dues shall be determined by the general assembly."},
		},
	}
	s.SetConstitution(Constitution{
		OrganizationID: "org1", OrganizationName: "Veterans United",
		Articles:    []Article{nameAndPurpose, membership},
		AdoptedDate: "Jan 15, 2020", LastAmended: "Dec 10, 2025",
	})
	s.SetConstitution(Constitution{
		OrganizationID: "org2", OrganizationName: "Heroes Association",
		Articles:    []Article{nameAndPurpose},
		AdoptedDate: "Mar 20, 2019", LastAmended: "Nov 15, 2024",
	})

	s.AddMatches(SoccerMatch{
		MatchDay: "Feb 12, 2026", HomeTeam: "Veterans FC", AwayTeam: "Heroes United",
		HomeScore: 3, AwayScore: 2,
		Referee: "Referee John Smith", AssistantReferee1: "Assistant Ref Mike Johnson", AssistantReferee2: "Assistant Ref Sarah Williams",
		Goals: []MatchGoal{
			{PlayerName: "James Mitchell", Minute: "15'", Team: "Home"},
			{PlayerName: "David Lee", Minute: "28'", Team: "Away"},
			{PlayerName: "Robert Davis", Minute: "45+2'", Team: "Home"},
			{PlayerName: "Michael Chen", Minute: "67'", Team: "Away"},
			{PlayerName: "Thomas Anderson", Minute: "82'", Team: "Home"},
		},
		Assists: []MatchGoal{
			{PlayerName: "Michael Chen", Minute: "15'", Team: "Home"},
			{PlayerName: "Thomas Anderson", Minute: "28'", Team: "Away"},
			{PlayerName: "James Mitchell", Minute: "45+2'", Team: "Home"},
			{PlayerName: "Robert Davis", Minute: "67'", Team: "Away"},
			{PlayerName: "David Williams", Minute: "82'", Team: "Home"},
		},
		YellowCards: []MatchCard{
			{PlayerName: "David Williams", Minute: "33'", Team: "Home", Reason: "Unsporting behavior"},
			{PlayerName: "Emily Rodriguez", Minute: "58'", Team: "Away", Reason: "Tactical foul"},
		},
	})

	return s
}
