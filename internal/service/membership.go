package service

import (
	"context"
	"time"

	"github.com/clubdeck/api/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

// ClubRepository defines the interface for club storage
type ClubRepository interface {
	Create(ctx context.Context, club *model.Club) error
	GetByID(ctx context.Context, id string) (*model.Club, error)
	Save(ctx context.Context, club *model.Club) error
	Delete(ctx context.Context, id string) error
	GetByManager(ctx context.Context, managerID string) ([]*model.Club, error)
	ListOthers(ctx context.Context, userID string) ([]*model.Club, error)
}

// MembershipService governs the membership state machine for a (user, club)
// pair: none -> pending -> member, with pending -> none (decline/cancel) and
// member -> none (leave/remove) also legal. There is no direct none -> member
// transition; approval always goes through the pending queue.
type MembershipService struct {
	userRepo UserRepository
	clubRepo ClubRepository
}

// NewMembershipService creates a new membership service
func NewMembershipService(userRepo UserRepository, clubRepo ClubRepository) *MembershipService {
	return &MembershipService{userRepo: userRepo, clubRepo: clubRepo}
}

// RequestJoin transitions (user, club) from none to pending. The club manager
// cannot request to join their own club, and a user that is already a member
// or already pending is rejected with a conflict.
func (s *MembershipService) RequestJoin(ctx context.Context, userID, clubID string) (*model.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	if club.IsManagedBy(userID) {
		return nil, ErrManagerJoin
	}
	if club.HasMember(userID) {
		return nil, ErrAlreadyMember
	}
	if club.HasPendingRequest(userID) {
		return nil, ErrAlreadyRequested
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	attachPending(user, club, time.Now().UTC())

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// ApproveJoin moves (user, club) from pending to member. Manager only.
func (s *MembershipService) ApproveJoin(ctx context.Context, managerID, clubID, userID string) (*model.Club, error) {
	club, err := s.requireManagedClub(ctx, managerID, clubID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !detachPending(user, club) {
		return nil, ErrRequestNotFound
	}
	attachMember(user, club, time.Now().UTC())

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// DeclineJoin removes a pending request without granting membership. Manager
// only.
func (s *MembershipService) DeclineJoin(ctx context.Context, managerID, clubID, userID string) (*model.Club, error) {
	club, err := s.requireManagedClub(ctx, managerID, clubID)
	if err != nil {
		return nil, err
	}
	return s.removePending(ctx, club, userID)
}

// CancelRequest removes the caller's own pending request. Self-service
// counterpart of DeclineJoin.
func (s *MembershipService) CancelRequest(ctx context.Context, userID, clubID string) (*model.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return s.removePending(ctx, club, userID)
}

// Leave removes the caller from the club's member roster. Self-service.
func (s *MembershipService) Leave(ctx context.Context, userID, clubID string) (*model.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return s.removeMembership(ctx, club, userID)
}

// RemoveMember removes a user from the club's member roster. Manager only.
func (s *MembershipService) RemoveMember(ctx context.Context, managerID, clubID, userID string) (*model.Club, error) {
	club, err := s.requireManagedClub(ctx, managerID, clubID)
	if err != nil {
		return nil, err
	}
	return s.removeMembership(ctx, club, userID)
}

// removePending drops the pending pair from both sides and persists both
// entities, user first. Removal of an entry that is not pending is reported
// as not found without touching either record.
func (s *MembershipService) removePending(ctx context.Context, club *model.Club, userID string) (*model.Club, error) {
	if !club.HasPendingRequest(userID) {
		return nil, ErrRequestNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detachPending(user, club)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// removeMembership drops the member pair from both sides and persists both
// entities, user first.
func (s *MembershipService) removeMembership(ctx context.Context, club *model.Club, userID string) (*model.Club, error) {
	if !club.HasMember(userID) {
		return nil, ErrMembershipNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detachMember(user, club)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// requireManagedClub loads the club and verifies the acting user manages it.
func (s *MembershipService) requireManagedClub(ctx context.Context, managerID, clubID string) (*model.Club, error) {
	return requireManager(ctx, s.clubRepo, managerID, clubID)
}

// Pair mutation helpers. Every membership transition mutates BOTH the
// user-side and the club-side collection through one of these, never one
// without the other. They operate on in-memory entities; callers persist
// both records afterwards.

// attachPending records a pending join request on both sides, date-stamped.
func attachPending(user *model.User, club *model.Club, now time.Time) {
	user.AddPendingClub(club.ID)
	club.AddPendingRequest(user.ID, now)
}

// detachPending removes the pending pair from both sides, reporting whether
// any side held it.
func detachPending(user *model.User, club *model.Club) bool {
	userHad := user.RemovePendingClub(club.ID)
	clubHad := club.RemovePendingRequest(user.ID)
	return userHad || clubHad
}

// attachMember records a confirmed membership on both sides, date-stamped.
func attachMember(user *model.User, club *model.Club, now time.Time) {
	user.AddRegisteredClub(club.ID)
	club.AddMember(user.ID, now)
}

// detachMember removes the membership pair from both sides, reporting whether
// any side held it.
func detachMember(user *model.User, club *model.Club) bool {
	userHad := user.RemoveRegisteredClub(club.ID)
	clubHad := club.RemoveMember(user.ID)
	return userHad || clubHad
}
