package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/clubdeck/api/internal/database"
	"github.com/clubdeck/api/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event under its owning club
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `
		CREATE event CONTENT {
			club: $club,
			name: $name,
			date: $date,
			location: $location,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			logo: IF $logo IS NOT NULL THEN $logo ELSE NONE END,
			type: $type,
			game_type: $game_type,
			players_per_table: $players_per_table,
			number_of_tables: $number_of_tables,
			currency: $currency,
			cash_game: IF $cash_game IS NOT NULL THEN $cash_game ELSE NONE END,
			tournament: IF $tournament IS NOT NULL THEN $tournament ELSE NONE END,
			players: [],
			date_updated: [],
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"club":              event.ClubID,
		"name":              event.Name,
		"date":              event.Date,
		"location":          toDoc(event.Location),
		"description":       nilIfEmpty(event.Description),
		"logo":              nilIfEmpty(event.Logo),
		"type":              string(event.Type),
		"game_type":         event.GameType,
		"players_per_table": event.PlayersPerTable,
		"number_of_tables":  event.NumberOfTables,
		"currency":          event.Currency,
		"cash_game":         toDocPtr(event.CashGame),
		"tournament":        toDocPtr(event.Tournament),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created := &model.Event{}
	if err := parseCreated(result, created); err != nil {
		return err
	}

	event.ID = created.ID
	event.CreatedOn = created.CreatedOn
	event.Players = []model.EventPlayer{}
	event.DateUpdated = []time.Time{}
	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var event model.Event
	if err := parseRecord(result, &event); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// Save persists the event's mutable fields, including the player roster and
// the modification audit log, as a whole-document update. The owning club
// reference is never written after creation.
func (r *EventRepository) Save(ctx context.Context, event *model.Event) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			date = $date,
			location = $location,
			description = IF $description IS NOT NULL THEN $description ELSE NONE END,
			logo = IF $logo IS NOT NULL THEN $logo ELSE NONE END,
			game_type = $game_type,
			players_per_table = $players_per_table,
			number_of_tables = $number_of_tables,
			currency = $currency,
			cash_game = IF $cash_game IS NOT NULL THEN $cash_game ELSE NONE END,
			tournament = IF $tournament IS NOT NULL THEN $tournament ELSE NONE END,
			players = $players,
			date_updated = $date_updated
	`
	vars := map[string]interface{}{
		"id":                event.ID,
		"name":              event.Name,
		"date":              event.Date,
		"location":          toDoc(event.Location),
		"description":       nilIfEmpty(event.Description),
		"logo":              nilIfEmpty(event.Logo),
		"game_type":         event.GameType,
		"players_per_table": event.PlayersPerTable,
		"number_of_tables":  event.NumberOfTables,
		"currency":          event.Currency,
		"cash_game":         toDocPtr(event.CashGame),
		"tournament":        toDocPtr(event.Tournament),
		"players":           playerDocs(event.Players),
		"date_updated":      timestampDocs(event.DateUpdated),
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes an event
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// ListByClub retrieves all events owned by the given club
func (r *EventRepository) ListByClub(ctx context.Context, clubID string) ([]*model.Event, error) {
	query := `SELECT * FROM event WHERE club = $club`
	vars := map[string]interface{}{"club": clubID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	events := make([]*model.Event, 0)
	err = parseRecords(results, func(data map[string]interface{}) error {
		var event model.Event
		if err := unmarshalRecordMap(data, &event); err != nil {
			return err
		}
		events = append(events, &event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// playerDocs converts roster entries into plain maps for query vars.
func playerDocs(players []model.EventPlayer) []interface{} {
	out := make([]interface{}, 0, len(players))
	for _, p := range players {
		out = append(out, map[string]interface{}{
			"user":          p.UserID,
			"status":        p.Status,
			"registered_on": timestampVar(p.RegisteredOn),
		})
	}
	return out
}

// timestampDocs converts the audit log into query vars.
func timestampDocs(stamps []time.Time) []interface{} {
	out := make([]interface{}, 0, len(stamps))
	for _, ts := range stamps {
		out = append(out, timestampVar(ts))
	}
	return out
}

// toDoc converts a struct into a plain map via a JSON round trip so it can be
// passed as a query variable.
func toDoc(v interface{}) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{})
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}

// toDocPtr is toDoc for optional configs, preserving nil.
func toDocPtr(v interface{}) interface{} {
	switch cfg := v.(type) {
	case *model.CashGameConfig:
		if cfg == nil {
			return nil
		}
		return toDoc(cfg)
	case *model.TournamentConfig:
		if cfg == nil {
			return nil
		}
		return toDoc(cfg)
	default:
		return nil
	}
}
