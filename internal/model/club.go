package model

import "time"

// ClubMember is a confirmed membership entry on the club side of the
// relationship.
type ClubMember struct {
	UserID   string    `json:"user"`
	JoinedOn time.Time `json:"joined_on"`
}

// JoinRequest is an unconfirmed join request awaiting manager approval or
// user cancellation.
type JoinRequest struct {
	UserID      string    `json:"user"`
	RequestedOn time.Time `json:"requested_on"`
}

// Club represents a poker club with a single manager, a member roster, a
// pending-join-request queue and owned events.
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	// Manager is set at creation and never changes.
	Manager   string    `json:"manager"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`

	// Members and PendingRequests are mutually exclusive per user.
	Members         []ClubMember  `json:"members"`
	PendingRequests []JoinRequest `json:"pending_requests"`
	// Events is the authoritative list of events owned by this club.
	Events []string `json:"events"`
}

// Business constraints
const (
	MaxClubNameLength = 100
	MaxClubDescLength = 500
)

// IsManagedBy reports whether userID manages this club.
func (c *Club) IsManagedBy(userID string) bool {
	return c.Manager == userID
}

// HasMember reports whether userID is on the member roster.
func (c *Club) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// HasPendingRequest reports whether userID has an open join request.
func (c *Club) HasPendingRequest(userID string) bool {
	for _, r := range c.PendingRequests {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// AddMember appends a roster entry unless the user is already on it.
func (c *Club) AddMember(userID string, joinedOn time.Time) {
	if c.HasMember(userID) {
		return
	}
	c.Members = append(c.Members, ClubMember{UserID: userID, JoinedOn: joinedOn})
}

// AddPendingRequest appends a queue entry unless the user already has one.
func (c *Club) AddPendingRequest(userID string, requestedOn time.Time) {
	if c.HasPendingRequest(userID) {
		return
	}
	c.PendingRequests = append(c.PendingRequests, JoinRequest{UserID: userID, RequestedOn: requestedOn})
}

// RemoveMember removes the roster entry for userID, reporting whether it was
// present.
func (c *Club) RemoveMember(userID string) bool {
	for i, m := range c.Members {
		if m.UserID == userID {
			c.Members = append(c.Members[:i], c.Members[i+1:]...)
			return true
		}
	}
	return false
}

// RemovePendingRequest removes the queue entry for userID, reporting whether
// it was present.
func (c *Club) RemovePendingRequest(userID string) bool {
	for i, r := range c.PendingRequests {
		if r.UserID == userID {
			c.PendingRequests = append(c.PendingRequests[:i], c.PendingRequests[i+1:]...)
			return true
		}
	}
	return false
}

// HasEvent reports whether eventID is owned by this club.
func (c *Club) HasEvent(eventID string) bool {
	return containsID(c.Events, eventID)
}

// AddEvent inserts the event id if absent.
func (c *Club) AddEvent(eventID string) {
	c.Events = appendID(c.Events, eventID)
}

// RemoveEvent removes the event id, reporting whether it was present.
func (c *Club) RemoveEvent(eventID string) bool {
	var removed bool
	c.Events, removed = removeID(c.Events, eventID)
	return removed
}

// CreateClubRequest represents a request to create a club.
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// UpdateClubRequest represents a request to update a club. The manager field
// is deliberately absent.
type UpdateClubRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}
