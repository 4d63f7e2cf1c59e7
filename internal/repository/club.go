package repository

import (
	"context"
	"errors"

	"github.com/clubdeck/api/internal/database"
	"github.com/clubdeck/api/internal/model"
)

// ClubRepository handles club data access
type ClubRepository struct {
	db database.Database
}

// NewClubRepository creates a new club repository
func NewClubRepository(db database.Database) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create creates a new club with the given manager
func (r *ClubRepository) Create(ctx context.Context, club *model.Club) error {
	query := `
		CREATE club CONTENT {
			name: $name,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			logo: IF $logo IS NOT NULL THEN $logo ELSE NONE END,
			manager: $manager,
			members: [],
			pending_requests: [],
			events: [],
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":        club.Name,
		"description": nilIfEmpty(club.Description),
		"logo":        nilIfEmpty(club.Logo),
		"manager":     club.Manager,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created := &model.Club{}
	if err := parseCreated(result, created); err != nil {
		return err
	}

	club.ID = created.ID
	club.CreatedOn = created.CreatedOn
	club.UpdatedOn = created.UpdatedOn
	club.Members = []model.ClubMember{}
	club.PendingRequests = []model.JoinRequest{}
	club.Events = []string{}
	return nil
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(ctx context.Context, id string) (*model.Club, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var club model.Club
	if err := parseRecord(result, &club); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

// Save persists the club's mutable fields, including the roster, the pending
// queue and the owned-events list, as a whole-document update. The manager
// field is never written after creation.
func (r *ClubRepository) Save(ctx context.Context, club *model.Club) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			description = IF $description IS NOT NULL THEN $description ELSE NONE END,
			logo = IF $logo IS NOT NULL THEN $logo ELSE NONE END,
			members = $members,
			pending_requests = $pending_requests,
			events = $events,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":               club.ID,
		"name":             club.Name,
		"description":      nilIfEmpty(club.Description),
		"logo":             nilIfEmpty(club.Logo),
		"members":          memberDocs(club.Members),
		"pending_requests": requestDocs(club.PendingRequests),
		"events":           stringList(club.Events),
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a club
func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// GetByManager retrieves all clubs managed by the given user
func (r *ClubRepository) GetByManager(ctx context.Context, managerID string) ([]*model.Club, error) {
	query := `SELECT * FROM club WHERE manager = $manager`
	vars := map[string]interface{}{"manager": managerID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return collectClubs(results)
}

// ListOthers retrieves all clubs NOT managed by the given user
func (r *ClubRepository) ListOthers(ctx context.Context, userID string) ([]*model.Club, error) {
	query := `SELECT * FROM club WHERE manager != $user`
	vars := map[string]interface{}{"user": userID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return collectClubs(results)
}

func collectClubs(results []interface{}) ([]*model.Club, error) {
	clubs := make([]*model.Club, 0)
	err := parseRecords(results, func(data map[string]interface{}) error {
		var club model.Club
		if err := unmarshalRecordMap(data, &club); err != nil {
			return err
		}
		clubs = append(clubs, &club)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clubs, nil
}

// memberDocs converts roster entries into plain maps for query vars.
func memberDocs(members []model.ClubMember) []interface{} {
	out := make([]interface{}, 0, len(members))
	for _, m := range members {
		out = append(out, map[string]interface{}{
			"user":      m.UserID,
			"joined_on": timestampVar(m.JoinedOn),
		})
	}
	return out
}

// requestDocs converts pending-queue entries into plain maps for query vars.
func requestDocs(requests []model.JoinRequest) []interface{} {
	out := make([]interface{}, 0, len(requests))
	for _, req := range requests {
		out = append(out, map[string]interface{}{
			"user":         req.UserID,
			"requested_on": timestampVar(req.RequestedOn),
		})
	}
	return out
}
