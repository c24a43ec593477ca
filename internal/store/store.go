package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/ozank/plank/internal/model"
)

// maxActivities bounds the activity log; the oldest entry is evicted first.
const maxActivities = 50

// Store is the single source of truth for the project collection and the
// activity log. It is constructor-injected wherever state is needed and owns
// both lists for the lifetime of the process; nothing persists across
// restarts, so a fresh process always starts from the fixture seed.
//
// All operations are synchronous and called from the single UI event loop,
// so no locking discipline is needed. Operations on unknown IDs are silent
// no-ops rather than errors; the UI is written against that contract.
type Store struct {
	projects   []model.Project
	activities []model.Activity
	users      []model.User
	teams      []model.Team

	now   func() time.Time
	newID func() string
}

// New returns a store seeded with the built-in fixture data.
func New() *Store {
	s := Empty()
	s.projects = fixtureProjects()
	return s
}

// Empty returns a store with no projects, for callers that seed explicitly.
func Empty() *Store {
	return &Store{
		users: fixtureUsers(),
		teams: fixtureTeams(),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Projects returns the project list, newest-created first.
func (s *Store) Projects() []model.Project {
	out := make([]model.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// Activities returns the activity log, newest first.
func (s *Store) Activities() []model.Activity {
	return append([]model.Activity(nil), s.activities...)
}

// Users returns the fixture user directory.
func (s *Store) Users() []model.User {
	return append([]model.User(nil), s.users...)
}

// Teams returns the fixture team directory.
func (s *Store) Teams() []model.Team {
	return append([]model.Team(nil), s.teams...)
}

// Find returns a copy of the project with the given ID, or false.
func (s *Store) Find(id string) (model.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return model.Project{}, false
}

// Len returns the number of projects.
func (s *Store) Len() int { return len(s.projects) }

func (s *Store) logActivity(typ model.ActivityType, projectID, projectName, description string) {
	a := model.Activity{
		ID:          s.newID(),
		Type:        typ,
		ProjectID:   projectID,
		ProjectName: projectName,
		Timestamp:   s.now(),
		Description: description,
	}
	s.activities = append([]model.Activity{a}, s.activities...)
	if len(s.activities) > maxActivities {
		s.activities = s.activities[:maxActivities]
	}
}
