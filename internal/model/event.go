package model

import "time"

// EventType distinguishes the two supported game formats.
type EventType string

const (
	EventTypeCashGame   EventType = "cash_game"
	EventTypeTournament EventType = "tournament"
)

// IsValid returns true if the event type is supported.
func (t EventType) IsValid() bool {
	return t == EventTypeCashGame || t == EventTypeTournament
}

// PlayerStatus values for event roster entries.
const (
	PlayerStatusRegistered = "registered"
	PlayerStatusWaitlisted = "waitlisted"
)

// EventPlayer is a roster entry on the event side of the registration
// relationship.
type EventPlayer struct {
	UserID       string    `json:"user"`
	Status       string    `json:"status"`
	RegisteredOn time.Time `json:"registered_on"`
}

// Location describes where an event takes place.
type Location struct {
	StreetNumber string `json:"street_number,omitempty"`
	Street       string `json:"street,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country"`
	Lat          string `json:"lat,omitempty"`
	Lng          string `json:"lng,omitempty"`
}

// CashGameConfig holds blind and buy-in settings for cash game events.
type CashGameConfig struct {
	SmallBlind float64 `json:"small_blind,omitempty"`
	BigBlind   float64 `json:"big_blind,omitempty"`
	MinBuyin   float64 `json:"min_buyin,omitempty"`
	MaxBuyin   float64 `json:"max_buyin,omitempty"`
}

// TournamentConfig holds structure settings for tournament events.
type TournamentConfig struct {
	BuyIn          float64 `json:"buy_in,omitempty"`
	StartingChips  int     `json:"starting_chips,omitempty"`
	SmallBlind     float64 `json:"small_blind,omitempty"`
	BigBlind       float64 `json:"big_blind,omitempty"`
	Ante           float64 `json:"ante,omitempty"`
	TimePerLevel   string  `json:"time_per_level,omitempty"`
	RegisterUntil  string  `json:"register_until,omitempty"`
	ReentriesLimit int     `json:"reentries_limit,omitempty"`
}

// Event represents a scheduled game owned by exactly one club.
type Event struct {
	ID string `json:"id"`
	// ClubID is the owning club and never changes after creation.
	ClubID      string    `json:"club"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Location    Location  `json:"location"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	CreatedOn   time.Time `json:"created_on"`

	Type            EventType         `json:"type"`
	GameType        string            `json:"game_type"`
	PlayersPerTable int               `json:"players_per_table"`
	NumberOfTables  int               `json:"number_of_tables,omitempty"`
	Currency        string            `json:"currency,omitempty"`
	CashGame        *CashGameConfig   `json:"cash_game,omitempty"`
	Tournament      *TournamentConfig `json:"tournament,omitempty"`

	// Players lists registered users; each entry mirrors an id in that
	// user's RegisteredEvents.
	Players []EventPlayer `json:"players"`
	// DateUpdated is an append-only audit log of modification timestamps.
	DateUpdated []time.Time `json:"date_updated"`
}

// DefaultCurrency is applied when an event omits its currency.
const DefaultCurrency = "ILS"

// HasPlayer reports whether userID is on the roster.
func (e *Event) HasPlayer(userID string) bool {
	for _, p := range e.Players {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// AddPlayer appends a roster entry unless the user is already on it.
func (e *Event) AddPlayer(userID, status string, registeredOn time.Time) {
	if e.HasPlayer(userID) {
		return
	}
	e.Players = append(e.Players, EventPlayer{UserID: userID, Status: status, RegisteredOn: registeredOn})
}

// RemovePlayer removes the roster entry for userID, reporting whether it was
// present.
func (e *Event) RemovePlayer(userID string) bool {
	for i, p := range e.Players {
		if p.UserID == userID {
			e.Players = append(e.Players[:i], e.Players[i+1:]...)
			return true
		}
	}
	return false
}

// TouchUpdated appends a modification timestamp to the audit log.
func (e *Event) TouchUpdated(at time.Time) {
	e.DateUpdated = append(e.DateUpdated, at)
}

// CreateEventRequest represents a request to create an event under a club.
type CreateEventRequest struct {
	Name            string            `json:"name"`
	Date            string            `json:"date"`
	Location        Location          `json:"location"`
	Description     string            `json:"description,omitempty"`
	Logo            string            `json:"logo,omitempty"`
	Type            EventType         `json:"type"`
	GameType        string            `json:"game_type"`
	PlayersPerTable int               `json:"players_per_table"`
	NumberOfTables  int               `json:"number_of_tables,omitempty"`
	Currency        string            `json:"currency,omitempty"`
	CashGame        *CashGameConfig   `json:"cash_game,omitempty"`
	Tournament      *TournamentConfig `json:"tournament,omitempty"`
}

// UpdateEventRequest represents a request to update an event. The owning club
// cannot be changed.
type UpdateEventRequest struct {
	Name            *string           `json:"name,omitempty"`
	Date            *string           `json:"date,omitempty"`
	Location        *Location         `json:"location,omitempty"`
	Description     *string           `json:"description,omitempty"`
	Logo            *string           `json:"logo,omitempty"`
	GameType        *string           `json:"game_type,omitempty"`
	PlayersPerTable *int              `json:"players_per_table,omitempty"`
	NumberOfTables  *int              `json:"number_of_tables,omitempty"`
	Currency        *string           `json:"currency,omitempty"`
	CashGame        *CashGameConfig   `json:"cash_game,omitempty"`
	Tournament      *TournamentConfig `json:"tournament,omitempty"`
}
