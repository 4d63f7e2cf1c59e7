package handler

import (
	"context"
	"net/http"

	"github.com/clubdeck/api/internal/middleware"
	"github.com/clubdeck/api/internal/model"
	"github.com/clubdeck/api/internal/service"
)

// ClubHandler handles club and membership HTTP requests
type ClubHandler struct {
	clubs      *service.ClubService
	membership *service.MembershipService
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubs *service.ClubService, membership *service.MembershipService) *ClubHandler {
	return &ClubHandler{clubs: clubs, membership: membership}
}

// Create handles POST /v1/clubs - create a new club
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateClubRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	club, err := h.clubs.CreateClub(ctx, userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, club, nil)
}

// ListManaged handles GET /v1/clubs/managed - clubs the caller manages
func (h *ClubHandler) ListManaged(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubs, err := h.clubs.GetManagedClubs(ctx, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, clubs, nil)
}

// List handles GET /v1/clubs - clubs the caller can browse and join
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubs, err := h.clubs.ListClubs(ctx, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, clubs, nil)
}

// Get handles GET /v1/clubs/{clubId} - get club details
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	if clubID == "" {
		WriteError(w, model.NewBadRequestError("club ID required"))
		return
	}

	club, err := h.clubs.GetClub(ctx, clubID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, club, nil)
}

// Update handles PATCH /v1/clubs/{clubId} - update a club
func (h *ClubHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	if clubID == "" {
		WriteError(w, model.NewBadRequestError("club ID required"))
		return
	}

	var req model.UpdateClubRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	club, err := h.clubs.UpdateClub(ctx, userID, clubID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, club, nil)
}

// Delete handles DELETE /v1/clubs/{clubId} - delete a club and its events
func (h *ClubHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	if clubID == "" {
		WriteError(w, model.NewBadRequestError("club ID required"))
		return
	}

	if err := h.clubs.DeleteClub(ctx, userID, clubID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// ===== Membership =====

// Join handles POST /v1/clubs/{clubId}/join - request to join a club
func (h *ClubHandler) Join(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, h.membership.RequestJoin)
}

// CancelJoin handles DELETE /v1/clubs/{clubId}/join - cancel own request
func (h *ClubHandler) CancelJoin(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, h.membership.CancelRequest)
}

// Leave handles POST /v1/clubs/{clubId}/leave - leave a club
func (h *ClubHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, h.membership.Leave)
}

// Approve handles POST /v1/clubs/{clubId}/requests/{userId}/approve
func (h *ClubHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.managerAction(w, r, h.membership.ApproveJoin)
}

// Decline handles DELETE /v1/clubs/{clubId}/requests/{userId}
func (h *ClubHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.managerAction(w, r, h.membership.DeclineJoin)
}

// RemoveMember handles DELETE /v1/clubs/{clubId}/members/{userId}
func (h *ClubHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	h.managerAction(w, r, h.membership.RemoveMember)
}

// selfAction runs a membership transition the caller performs on themselves.
func (h *ClubHandler) selfAction(w http.ResponseWriter, r *http.Request, fn func(context.Context, string, string) (*model.Club, error)) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	if clubID == "" {
		WriteError(w, model.NewBadRequestError("club ID required"))
		return
	}

	club, err := fn(ctx, userID, clubID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, club, nil)
}

// managerAction runs a membership transition the manager performs on another
// user named in the path.
func (h *ClubHandler) managerAction(w http.ResponseWriter, r *http.Request, fn func(context.Context, string, string, string) (*model.Club, error)) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	targetID := r.PathValue("userId")
	if clubID == "" || targetID == "" {
		WriteError(w, model.NewBadRequestError("club ID and user ID required"))
		return
	}

	club, err := fn(ctx, userID, clubID, targetID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, club, nil)
}
