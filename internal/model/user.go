package model

import "time"

// User represents a user account together with the denormalized mirrors of
// its club and event relationships.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Hash      *string   `json:"-"` // Never expose password hash
	Avatar    string    `json:"avatar,omitempty"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`

	// RegisteredClubs holds ids of clubs where membership is confirmed.
	RegisteredClubs []string `json:"registered_clubs"`
	// PendingClubRequests holds ids of clubs awaiting manager approval.
	// A club id never appears in both RegisteredClubs and PendingClubRequests.
	PendingClubRequests []string `json:"pending_club_requests"`
	// CreatedClubs holds ids of clubs this user manages.
	CreatedClubs []string `json:"created_clubs"`
	// RegisteredEvents holds ids of events this user is enrolled in.
	RegisteredEvents []string `json:"registered_events"`
}

// HasRegisteredClub reports whether the user is a confirmed member of the club.
func (u *User) HasRegisteredClub(clubID string) bool {
	return containsID(u.RegisteredClubs, clubID)
}

// HasPendingClub reports whether the user has an open join request for the club.
func (u *User) HasPendingClub(clubID string) bool {
	return containsID(u.PendingClubRequests, clubID)
}

// HasCreatedClub reports whether the user manages the club.
func (u *User) HasCreatedClub(clubID string) bool {
	return containsID(u.CreatedClubs, clubID)
}

// HasRegisteredEvent reports whether the user is enrolled in the event.
func (u *User) HasRegisteredEvent(eventID string) bool {
	return containsID(u.RegisteredEvents, eventID)
}

// AddRegisteredClub inserts the club id if absent.
func (u *User) AddRegisteredClub(clubID string) {
	u.RegisteredClubs = appendID(u.RegisteredClubs, clubID)
}

// AddPendingClub inserts the club id if absent.
func (u *User) AddPendingClub(clubID string) {
	u.PendingClubRequests = appendID(u.PendingClubRequests, clubID)
}

// AddCreatedClub inserts the club id if absent.
func (u *User) AddCreatedClub(clubID string) {
	u.CreatedClubs = appendID(u.CreatedClubs, clubID)
}

// AddRegisteredEvent inserts the event id if absent.
func (u *User) AddRegisteredEvent(eventID string) {
	u.RegisteredEvents = appendID(u.RegisteredEvents, eventID)
}

// RemoveRegisteredClub removes the club id, reporting whether it was present.
func (u *User) RemoveRegisteredClub(clubID string) bool {
	var removed bool
	u.RegisteredClubs, removed = removeID(u.RegisteredClubs, clubID)
	return removed
}

// RemovePendingClub removes the club id, reporting whether it was present.
func (u *User) RemovePendingClub(clubID string) bool {
	var removed bool
	u.PendingClubRequests, removed = removeID(u.PendingClubRequests, clubID)
	return removed
}

// RemoveCreatedClub removes the club id, reporting whether it was present.
func (u *User) RemoveCreatedClub(clubID string) bool {
	var removed bool
	u.CreatedClubs, removed = removeID(u.CreatedClubs, clubID)
	return removed
}

// RemoveRegisteredEvent removes the event id, reporting whether it was present.
func (u *User) RemoveRegisteredEvent(eventID string) bool {
	var removed bool
	u.RegisteredEvents, removed = removeID(u.RegisteredEvents, eventID)
	return removed
}

// containsID reports whether id is present in ids.
func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// appendID appends id unless already present. Insertions are check-then-skip
// so a retried operation converges instead of duplicating entries.
func appendID(ids []string, id string) []string {
	if containsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

// removeID removes id from ids, reporting whether it was present. Removing an
// absent id leaves the slice untouched.
func removeID(ids []string, id string) ([]string, bool) {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
