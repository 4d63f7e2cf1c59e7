package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/clubdeck/api/internal/model"
)

// EventCascader is the slice of the event service that club deletion needs:
// tearing down every event a dying club owns without re-saving the club.
type EventCascader interface {
	CascadeDeleteClubEvents(ctx context.Context, club *model.Club) error
}

// ClubService handles club lifecycle and manager-side operations
type ClubService struct {
	clubRepo ClubRepository
	userRepo UserRepository
	events   EventCascader
	logger   *slog.Logger
}

// NewClubService creates a new club service
func NewClubService(clubRepo ClubRepository, userRepo UserRepository, events EventCascader, logger *slog.Logger) *ClubService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClubService{clubRepo: clubRepo, userRepo: userRepo, events: events, logger: logger}
}

// requireManager loads the club and rejects callers other than its manager.
// A missing club is reported before any authorization decision so probing a
// nonexistent id yields not-found rather than forbidden.
func requireManager(ctx context.Context, clubs ClubRepository, userID, clubID string) (*model.Club, error) {
	club, err := clubs.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	if !club.IsManagedBy(userID) {
		return nil, ErrNotClubManager
	}
	return club, nil
}

// CreateClub creates a club with the caller as its immutable manager and
// records the club on the caller's created-clubs list.
func (s *ClubService) CreateClub(ctx context.Context, userID string, req *model.CreateClubRequest) (*model.Club, error) {
	if err := validateClubName(req.Name); err != nil {
		return nil, err
	}
	if len(req.Description) > model.MaxClubDescLength {
		return nil, ErrClubDescTooLong
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	club := &model.Club{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Logo:        req.Logo,
		Manager:     userID,
	}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	user.AddCreatedClub(club.ID)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return club, nil
}

// GetClub retrieves a club by ID
func (s *ClubService) GetClub(ctx context.Context, clubID string) (*model.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return club, nil
}

// GetManagedClubs retrieves the clubs managed by the given user.
func (s *ClubService) GetManagedClubs(ctx context.Context, userID string) ([]*model.Club, error) {
	return s.clubRepo.GetByManager(ctx, userID)
}

// ListClubs retrieves clubs the given user does not manage, for browsing and
// join requests.
func (s *ClubService) ListClubs(ctx context.Context, userID string) ([]*model.Club, error) {
	return s.clubRepo.ListOthers(ctx, userID)
}

// UpdateClub applies partial updates to a club's descriptive fields. Manager
// only; the manager itself can never be reassigned.
func (s *ClubService) UpdateClub(ctx context.Context, userID, clubID string, req *model.UpdateClubRequest) (*model.Club, error) {
	club, err := requireManager(ctx, s.clubRepo, userID, clubID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validateClubName(*req.Name); err != nil {
			return nil, err
		}
		club.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		if len(*req.Description) > model.MaxClubDescLength {
			return nil, ErrClubDescTooLong
		}
		club.Description = strings.TrimSpace(*req.Description)
	}
	if req.Logo != nil {
		club.Logo = *req.Logo
	}

	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// DeleteClub tears down a club and everything that references it. Manager
// only. Order matters: events cascade first (each detaching its registered
// players), then every member and pending requester is detached, then the
// manager's created-clubs entry is dropped, and the club record is deleted
// last. Per-user detach failures are logged and skipped so one bad record
// cannot strand the teardown; failure to delete the club itself aborts.
func (s *ClubService) DeleteClub(ctx context.Context, userID, clubID string) error {
	club, err := requireManager(ctx, s.clubRepo, userID, clubID)
	if err != nil {
		return err
	}

	if err := s.events.CascadeDeleteClubEvents(ctx, club); err != nil {
		return err
	}

	for _, m := range club.Members {
		s.detachUserFromClub(ctx, m.UserID, club, "member")
	}
	for _, req := range club.PendingRequests {
		s.detachUserFromClub(ctx, req.UserID, club, "pending")
	}
	s.detachUserFromClub(ctx, club.Manager, club, "manager")

	return s.clubRepo.Delete(ctx, club.ID)
}

// detachUserFromClub removes every reference the user holds to the dying
// club and saves the user. Best effort: failures are logged, not returned.
func (s *ClubService) detachUserFromClub(ctx context.Context, userID string, club *model.Club, role string) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		s.logger.Warn("club teardown: user lookup failed",
			"club_id", club.ID, "user_id", userID, "role", role, "error", err)
		return
	}

	changed := user.RemoveRegisteredClub(club.ID)
	changed = user.RemovePendingClub(club.ID) || changed
	changed = user.RemoveCreatedClub(club.ID) || changed
	if !changed {
		return
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Warn("club teardown: user detach failed",
			"club_id", club.ID, "user_id", userID, "role", role, "error", err)
	}
}

func validateClubName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrClubNameRequired
	}
	if len(name) > model.MaxClubNameLength {
		return ErrClubNameTooLong
	}
	return nil
}
