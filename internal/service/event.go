package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/clubdeck/api/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Save(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	ListByClub(ctx context.Context, clubID string) ([]*model.Event, error)
}

// EventService handles event lifecycle and the player roster. Every write
// path is gated on club state: lifecycle by the manager guard, registration
// by club membership.
type EventService struct {
	eventRepo EventRepository
	clubRepo  ClubRepository
	userRepo  UserRepository
	logger    *slog.Logger
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository, clubRepo ClubRepository, userRepo UserRepository, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{eventRepo: eventRepo, clubRepo: clubRepo, userRepo: userRepo, logger: logger}
}

// CreateEvent creates an event under a club and records it on the club's
// owned-events list. Manager only.
func (s *EventService) CreateEvent(ctx context.Context, userID, clubID string, req *model.CreateEventRequest) (*model.Event, error) {
	club, err := requireManager(ctx, s.clubRepo, userID, clubID)
	if err != nil {
		return nil, err
	}
	if err := validateEventRequest(req); err != nil {
		return nil, err
	}

	event := &model.Event{
		ClubID:          club.ID,
		Name:            strings.TrimSpace(req.Name),
		Date:            req.Date,
		Location:        req.Location,
		Description:     strings.TrimSpace(req.Description),
		Logo:            req.Logo,
		Type:            req.Type,
		GameType:        req.GameType,
		PlayersPerTable: req.PlayersPerTable,
		NumberOfTables:  req.NumberOfTables,
		Currency:        req.Currency,
		CashGame:        req.CashGame,
		Tournament:      req.Tournament,
	}
	if event.Currency == "" {
		event.Currency = model.DefaultCurrency
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	club.AddEvent(event.ID)
	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// ListClubEvents retrieves all events owned by a club.
func (s *EventService) ListClubEvents(ctx context.Context, clubID string) ([]*model.Event, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return s.eventRepo.ListByClub(ctx, club.ID)
}

// ListVisibleEvents retrieves the events of every club the user manages or
// belongs to.
func (s *EventService) ListVisibleEvents(ctx context.Context, userID string) ([]*model.Event, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	seen := make(map[string]bool)
	events := make([]*model.Event, 0)
	for _, clubID := range slices.Concat(user.CreatedClubs, user.RegisteredClubs) {
		if seen[clubID] {
			continue
		}
		seen[clubID] = true

		clubEvents, err := s.eventRepo.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		events = append(events, clubEvents...)
	}
	return events, nil
}

// UpdateEvent applies partial updates to an event's descriptive and game
// fields and appends a modification timestamp to the audit log. Manager
// only; the owning club can never be reassigned.
func (s *EventService) UpdateEvent(ctx context.Context, userID, eventID string, req *model.UpdateEventRequest) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if _, err := requireManager(ctx, s.clubRepo, userID, event.ClubID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEventNameRequired
		}
		event.Name = strings.TrimSpace(*req.Name)
	}
	if req.Date != nil {
		if *req.Date == "" {
			return nil, ErrEventDateRequired
		}
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = strings.TrimSpace(*req.Description)
	}
	if req.Logo != nil {
		event.Logo = *req.Logo
	}
	if req.GameType != nil {
		event.GameType = *req.GameType
	}
	if req.PlayersPerTable != nil {
		event.PlayersPerTable = *req.PlayersPerTable
	}
	if req.NumberOfTables != nil {
		event.NumberOfTables = *req.NumberOfTables
	}
	if req.Currency != nil {
		event.Currency = *req.Currency
	}
	if req.CashGame != nil {
		event.CashGame = req.CashGame
	}
	if req.Tournament != nil {
		event.Tournament = req.Tournament
	}

	event.TouchUpdated(time.Now().UTC())

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent tears down a single event. Manager only. Registered players
// are detached best-effort, the owning club's events list is updated, and
// the event record is deleted last.
func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	club, err := requireManager(ctx, s.clubRepo, userID, event.ClubID)
	if err != nil {
		return err
	}
	return s.cascadeDelete(ctx, event, club, true)
}

// CascadeDeleteClubEvents tears down every event the club owns as part of
// club deletion. The club record is about to be deleted, so it is never
// re-saved here; roster entries on the club side die with it.
func (s *EventService) CascadeDeleteClubEvents(ctx context.Context, club *model.Club) error {
	events, err := s.eventRepo.ListByClub(ctx, club.ID)
	if err != nil {
		return err
	}
	for _, event := range events {
		if err := s.cascadeDelete(ctx, event, club, false); err != nil {
			return err
		}
	}
	return nil
}

// cascadeDelete detaches every registered player from the event, updates the
// owning club when it survives the teardown, and deletes the event record.
// Player detach failures are logged and skipped; the delete itself aborts on
// storage failure.
func (s *EventService) cascadeDelete(ctx context.Context, event *model.Event, club *model.Club, persistClub bool) error {
	for _, p := range event.Players {
		s.detachPlayer(ctx, p.UserID, event.ID)
	}

	if club.RemoveEvent(event.ID) && persistClub {
		if err := s.clubRepo.Save(ctx, club); err != nil {
			return err
		}
	}

	return s.eventRepo.Delete(ctx, event.ID)
}

// detachPlayer removes the event from a user's registered-events list. Best
// effort: failures are logged, not returned.
func (s *EventService) detachPlayer(ctx context.Context, userID, eventID string) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		s.logger.Warn("event teardown: user lookup failed",
			"event_id", eventID, "user_id", userID, "error", err)
		return
	}
	if !user.RemoveRegisteredEvent(eventID) {
		return
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Warn("event teardown: user detach failed",
			"event_id", eventID, "user_id", userID, "error", err)
	}
}

// Register adds the caller to the event roster. The gate is the caller's
// registered-clubs list and nothing else: it is checked before the roster
// itself, so a non-member is refused even when a stale roster entry already
// carries their id. Managing the owning club grants no bypass.
func (s *EventService) Register(ctx context.Context, userID, eventID string) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.HasRegisteredClub(event.ClubID) {
		return nil, ErrNotClubMember
	}
	if event.HasPlayer(userID) {
		return nil, ErrAlreadyRegistered
	}

	event.AddPlayer(userID, model.PlayerStatusRegistered, time.Now().UTC())
	user.AddRegisteredEvent(event.ID)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Unregister removes the caller from the event roster.
func (s *EventService) Unregister(ctx context.Context, userID, eventID string) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if !event.HasPlayer(userID) {
		return nil, ErrRegistrationNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	event.RemovePlayer(userID)
	user.RemoveRegisteredEvent(event.ID)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func validateEventRequest(req *model.CreateEventRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEventNameRequired
	}
	if req.Date == "" {
		return ErrEventDateRequired
	}
	if !req.Type.IsValid() {
		return ErrInvalidEventType
	}
	return nil
}
