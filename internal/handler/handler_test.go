package handler_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clubdeck/api/internal/handler"
	"github.com/clubdeck/api/internal/middleware"
	"github.com/clubdeck/api/internal/model"
	"github.com/clubdeck/api/internal/service"
	"github.com/clubdeck/api/pkg/jwt"
)

// ============================================================================
// In-Memory Repositories
// ============================================================================

// The fakes store deep copies so that a handler only observes state that was
// explicitly saved, the same contract the SurrealDB repositories provide.

type memUserRepo struct {
	seq    int
	users  map[string]*model.User
	emails map[string]string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User), emails: make(map[string]string)}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user:%d", r.seq)
	user.CreatedOn = time.Now().UTC()
	user.UpdatedOn = user.CreatedOn
	r.users[user.ID] = cloneUser(user)
	r.emails[user.Email] = user.ID
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	id, ok := r.emails[email]
	if !ok {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *memUserRepo) Save(ctx context.Context, user *model.User) error {
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type memClubRepo struct {
	seq   int
	clubs map[string]*model.Club
}

func newMemClubRepo() *memClubRepo {
	return &memClubRepo{clubs: make(map[string]*model.Club)}
}

func (r *memClubRepo) Create(ctx context.Context, club *model.Club) error {
	r.seq++
	club.ID = fmt.Sprintf("club:%d", r.seq)
	club.CreatedOn = time.Now().UTC()
	club.UpdatedOn = club.CreatedOn
	r.clubs[club.ID] = cloneClub(club)
	return nil
}

func (r *memClubRepo) GetByID(ctx context.Context, id string) (*model.Club, error) {
	club, ok := r.clubs[id]
	if !ok {
		return nil, nil
	}
	return cloneClub(club), nil
}

func (r *memClubRepo) Save(ctx context.Context, club *model.Club) error {
	r.clubs[club.ID] = cloneClub(club)
	return nil
}

func (r *memClubRepo) Delete(ctx context.Context, id string) error {
	delete(r.clubs, id)
	return nil
}

func (r *memClubRepo) GetByManager(ctx context.Context, managerID string) ([]*model.Club, error) {
	var result []*model.Club
	for _, club := range r.clubs {
		if club.Manager == managerID {
			result = append(result, cloneClub(club))
		}
	}
	return result, nil
}

func (r *memClubRepo) ListOthers(ctx context.Context, userID string) ([]*model.Club, error) {
	var result []*model.Club
	for _, club := range r.clubs {
		if club.Manager != userID {
			result = append(result, cloneClub(club))
		}
	}
	return result, nil
}

type memEventRepo struct {
	seq    int
	events map[string]*model.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]*model.Event)}
}

func (r *memEventRepo) Create(ctx context.Context, event *model.Event) error {
	r.seq++
	event.ID = fmt.Sprintf("event:%d", r.seq)
	event.CreatedOn = time.Now().UTC()
	r.events[event.ID] = cloneEvent(event)
	return nil
}

func (r *memEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	return cloneEvent(event), nil
}

func (r *memEventRepo) Save(ctx context.Context, event *model.Event) error {
	r.events[event.ID] = cloneEvent(event)
	return nil
}

func (r *memEventRepo) Delete(ctx context.Context, id string) error {
	delete(r.events, id)
	return nil
}

func (r *memEventRepo) ListByClub(ctx context.Context, clubID string) ([]*model.Event, error) {
	var result []*model.Event
	for _, event := range r.events {
		if event.ClubID == clubID {
			result = append(result, cloneEvent(event))
		}
	}
	return result, nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.RegisteredClubs = slices.Clone(u.RegisteredClubs)
	c.PendingClubRequests = slices.Clone(u.PendingClubRequests)
	c.CreatedClubs = slices.Clone(u.CreatedClubs)
	c.RegisteredEvents = slices.Clone(u.RegisteredEvents)
	return &c
}

func cloneClub(club *model.Club) *model.Club {
	c := *club
	c.Members = slices.Clone(club.Members)
	c.PendingRequests = slices.Clone(club.PendingRequests)
	c.Events = slices.Clone(club.Events)
	return &c
}

func cloneEvent(e *model.Event) *model.Event {
	c := *e
	c.Players = slices.Clone(e.Players)
	c.DateUpdated = slices.Clone(e.DateUpdated)
	return &c
}

// ============================================================================
// Test Environment
// ============================================================================

// env wires the real services, handlers and auth middleware over in-memory
// repositories, with the same route table the server registers.
type env struct {
	router http.Handler
	users  *memUserRepo
	clubs  *memClubRepo
	events *memEventRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	jwtService := jwt.NewTestService(privateKey, "test-issuer", 15*time.Minute)

	users := newMemUserRepo()
	clubs := newMemClubRepo()
	events := newMemEventRepo()

	logger := slog.New(slog.DiscardHandler)
	authService := service.NewAuthService(users, jwtService)
	membershipService := service.NewMembershipService(users, clubs)
	eventService := service.NewEventService(events, clubs, users, logger)
	clubService := service.NewClubService(clubs, users, eventService, logger)

	authHandler := handler.NewAuthHandler(authService)
	clubHandler := handler.NewClubHandler(clubService, membershipService)
	eventHandler := handler.NewEventHandler(eventService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	auth := middleware.Auth(authService)
	mux.Handle("GET /v1/auth/me", auth(http.HandlerFunc(authHandler.Me)))

	mux.Handle("GET /v1/clubs", auth(http.HandlerFunc(clubHandler.List)))
	mux.Handle("POST /v1/clubs", auth(http.HandlerFunc(clubHandler.Create)))
	mux.Handle("GET /v1/clubs/managed", auth(http.HandlerFunc(clubHandler.ListManaged)))
	mux.Handle("GET /v1/clubs/{clubId}", auth(http.HandlerFunc(clubHandler.Get)))
	mux.Handle("PATCH /v1/clubs/{clubId}", auth(http.HandlerFunc(clubHandler.Update)))
	mux.Handle("DELETE /v1/clubs/{clubId}", auth(http.HandlerFunc(clubHandler.Delete)))

	mux.Handle("POST /v1/clubs/{clubId}/join", auth(http.HandlerFunc(clubHandler.Join)))
	mux.Handle("DELETE /v1/clubs/{clubId}/join", auth(http.HandlerFunc(clubHandler.CancelJoin)))
	mux.Handle("POST /v1/clubs/{clubId}/leave", auth(http.HandlerFunc(clubHandler.Leave)))
	mux.Handle("POST /v1/clubs/{clubId}/requests/{userId}/approve", auth(http.HandlerFunc(clubHandler.Approve)))
	mux.Handle("DELETE /v1/clubs/{clubId}/requests/{userId}", auth(http.HandlerFunc(clubHandler.Decline)))
	mux.Handle("DELETE /v1/clubs/{clubId}/members/{userId}", auth(http.HandlerFunc(clubHandler.RemoveMember)))

	mux.Handle("GET /v1/events", auth(http.HandlerFunc(eventHandler.List)))
	mux.Handle("POST /v1/clubs/{clubId}/events", auth(http.HandlerFunc(eventHandler.Create)))
	mux.Handle("GET /v1/clubs/{clubId}/events", auth(http.HandlerFunc(eventHandler.ListByClub)))
	mux.Handle("GET /v1/events/{eventId}", auth(http.HandlerFunc(eventHandler.Get)))
	mux.Handle("PATCH /v1/events/{eventId}", auth(http.HandlerFunc(eventHandler.Update)))
	mux.Handle("DELETE /v1/events/{eventId}", auth(http.HandlerFunc(eventHandler.Delete)))
	mux.Handle("POST /v1/events/{eventId}/register", auth(http.HandlerFunc(eventHandler.Register)))
	mux.Handle("DELETE /v1/events/{eventId}/register", auth(http.HandlerFunc(eventHandler.Unregister)))

	return &env{router: mux, users: users, clubs: clubs, events: events}
}

// do issues a request against the router. An empty token sends no
// Authorization header.
func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// authResponse mirrors the register/login response envelope.
type authResponse struct {
	User  model.User `json:"user"`
	Token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	} `json:"token"`
}

// register creates an account through the API and returns the user together
// with a usable access token.
func (e *env) register(t *testing.T, name, email string) (model.User, string) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	resp := decodeData[authResponse](t, rec)
	require.NotEmpty(t, resp.User.ID)
	require.NotEmpty(t, resp.Token.AccessToken)
	return resp.User, resp.Token.AccessToken
}

// createClub creates a club through the API and returns it.
func (e *env) createClub(t *testing.T, token, name string) model.Club {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/v1/clubs", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code, "create club failed: %s", rec.Body.String())
	return decodeData[model.Club](t, rec)
}

// decodeData unwraps the {"data": ...} envelope.
func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

// decodeProblem unwraps an RFC 9457 error body.
func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) model.ProblemDetails {
	t.Helper()

	var problem model.ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}
