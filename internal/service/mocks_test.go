package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clubdeck/api/internal/model"
)

// Mock implementations

type mockUserRepo struct {
	users      map[string]*model.User
	emailIndex map[string]*model.User
	nextID     int
	createErr  error
	getErr     error
	saveErr    error
	// saveErrFor fails Save only for the named user ids.
	saveErrFor map[string]error
	saveCount  int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:      make(map[string]*model.User),
		emailIndex: make(map[string]*model.User),
		saveErrFor: make(map[string]error),
	}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	user.ID = fmt.Sprintf("user:%d", m.nextID)
	user.CreatedOn = time.Now()
	user.UpdatedOn = time.Now()
	if user.RegisteredClubs == nil {
		user.RegisteredClubs = []string{}
	}
	if user.PendingClubRequests == nil {
		user.PendingClubRequests = []string{}
	}
	if user.CreatedClubs == nil {
		user.CreatedClubs = []string{}
	}
	if user.RegisteredEvents == nil {
		user.RegisteredEvents = []string{}
	}
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.emailIndex[email], nil
}

func (m *mockUserRepo) Save(ctx context.Context, user *model.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if err := m.saveErrFor[user.ID]; err != nil {
		return err
	}
	m.saveCount++
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if user, ok := m.users[id]; ok {
		delete(m.emailIndex, user.Email)
		delete(m.users, id)
	}
	return nil
}

// add seeds a user directly, bypassing Create side effects.
func (m *mockUserRepo) add(user *model.User) *model.User {
	if user.RegisteredClubs == nil {
		user.RegisteredClubs = []string{}
	}
	if user.PendingClubRequests == nil {
		user.PendingClubRequests = []string{}
	}
	if user.CreatedClubs == nil {
		user.CreatedClubs = []string{}
	}
	if user.RegisteredEvents == nil {
		user.RegisteredEvents = []string{}
	}
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user
	return user
}

type mockClubRepo struct {
	clubs     map[string]*model.Club
	nextID    int
	createErr error
	getErr    error
	saveErr   error
	deleteErr error
	deleted   []string
}

func newMockClubRepo() *mockClubRepo {
	return &mockClubRepo{clubs: make(map[string]*model.Club)}
}

func (m *mockClubRepo) Create(ctx context.Context, club *model.Club) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	club.ID = fmt.Sprintf("club:%d", m.nextID)
	club.CreatedOn = time.Now()
	club.UpdatedOn = time.Now()
	club.Members = []model.ClubMember{}
	club.PendingRequests = []model.JoinRequest{}
	club.Events = []string{}
	m.clubs[club.ID] = club
	return nil
}

func (m *mockClubRepo) GetByID(ctx context.Context, id string) (*model.Club, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.clubs[id], nil
}

func (m *mockClubRepo) Save(ctx context.Context, club *model.Club) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.clubs[club.ID] = club
	return nil
}

func (m *mockClubRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	delete(m.clubs, id)
	return nil
}

func (m *mockClubRepo) GetByManager(ctx context.Context, managerID string) ([]*model.Club, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make([]*model.Club, 0)
	for _, c := range m.clubs {
		if c.Manager == managerID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockClubRepo) ListOthers(ctx context.Context, userID string) ([]*model.Club, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make([]*model.Club, 0)
	for _, c := range m.clubs {
		if c.Manager != userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockClubRepo) add(club *model.Club) *model.Club {
	if club.Members == nil {
		club.Members = []model.ClubMember{}
	}
	if club.PendingRequests == nil {
		club.PendingRequests = []model.JoinRequest{}
	}
	if club.Events == nil {
		club.Events = []string{}
	}
	m.clubs[club.ID] = club
	return club
}

type mockEventRepo struct {
	events    map[string]*model.Event
	nextID    int
	createErr error
	getErr    error
	saveErr   error
	deleteErr error
	deleted   []string
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	event.ID = fmt.Sprintf("event:%d", m.nextID)
	event.CreatedOn = time.Now()
	event.Players = []model.EventPlayer{}
	event.DateUpdated = []time.Time{}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.events[id], nil
}

func (m *mockEventRepo) Save(ctx context.Context, event *model.Event) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	delete(m.events, id)
	return nil
}

func (m *mockEventRepo) ListByClub(ctx context.Context, clubID string) ([]*model.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make([]*model.Event, 0)
	for _, e := range m.events {
		if e.ClubID == clubID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEventRepo) add(event *model.Event) *model.Event {
	if event.Players == nil {
		event.Players = []model.EventPlayer{}
	}
	if event.DateUpdated == nil {
		event.DateUpdated = []time.Time{}
	}
	m.events[event.ID] = event
	return event
}
