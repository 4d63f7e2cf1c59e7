package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubdeck/api/internal/database"
	"github.com/clubdeck/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			hash: IF $hash IS NOT NULL THEN $hash ELSE NONE END,
			avatar: IF $avatar IS NOT NULL THEN $avatar ELSE NONE END,
			registered_clubs: [],
			pending_club_requests: [],
			created_clubs: [],
			registered_events: [],
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":   user.Name,
		"email":  user.Email,
		"hash":   ptrToNone(user.Hash),
		"avatar": nilIfEmpty(user.Avatar),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created := &model.User{}
	if err := parseCreated(result, created); err != nil {
		return err
	}

	user.ID = created.ID
	user.CreatedOn = created.CreatedOn
	user.UpdatedOn = created.UpdatedOn
	user.RegisteredClubs = []string{}
	user.PendingClubRequests = []string{}
	user.CreatedClubs = []string{}
	user.RegisteredEvents = []string{}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUser(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUser(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Save persists the user's mutable fields, including the denormalized
// relationship lists, as a whole-document update.
func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			avatar = IF $avatar IS NOT NULL THEN $avatar ELSE NONE END,
			registered_clubs = $registered_clubs,
			pending_club_requests = $pending_club_requests,
			created_clubs = $created_clubs,
			registered_events = $registered_events,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":                    user.ID,
		"name":                  user.Name,
		"avatar":                nilIfEmpty(user.Avatar),
		"registered_clubs":      stringList(user.RegisteredClubs),
		"pending_club_requests": stringList(user.PendingClubRequests),
		"created_clubs":         stringList(user.CreatedClubs),
		"registered_events":     stringList(user.RegisteredEvents),
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// Helper functions

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func ptrToNone(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// stringList copies ids into a plain slice for query vars, mapping nil to an
// empty list so the stored field never becomes NONE.
func stringList(ids []string) []interface{} {
	out := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}

// parseCreated extracts the record produced by a CREATE query.
func parseCreated(result []interface{}, out interface{}) error {
	if len(result) == 0 {
		return database.ErrNotFound
	}
	return parseRecord(result[0], out)
}

// parseUser unmarshals a user record, pulling the password hash out of the
// raw map first since User.Hash is excluded from JSON.
func parseUser(result interface{}) (*model.User, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		return nil, err
	}

	var hash *string
	if h, ok := data["hash"].(string); ok {
		hash = &h
	}

	var user model.User
	if err := unmarshalRecordMap(data, &user); err != nil {
		return nil, err
	}
	user.Hash = hash
	return &user, nil
}
