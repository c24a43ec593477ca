package store

import (
	"fmt"
	"time"

	"github.com/ozank/plank/internal/model"
)

// ProjectUpdate is a partial-update patch: nil fields are left untouched,
// set fields replace the project's value wholesale (slices included — tasks
// are never deep-merged).
type ProjectUpdate struct {
	Name          *string
	Client        *string
	TypeLabel     *string
	DurationLabel *string
	Status        *model.Status
	Priority      *model.Priority
	Tags          *[]string
	StartDate     *time.Time
	EndDate       *time.Time
	Progress      *int
	TaskCount     *int
	Members       *[]string
	Tasks         *[]model.Task
}

func (u ProjectUpdate) applyTo(p *model.Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Client != nil {
		p.Client = *u.Client
	}
	if u.TypeLabel != nil {
		p.TypeLabel = *u.TypeLabel
	}
	if u.DurationLabel != nil {
		p.DurationLabel = *u.DurationLabel
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Priority != nil {
		p.Priority = *u.Priority
	}
	if u.Tags != nil {
		p.Tags = append([]string(nil), *u.Tags...)
	}
	if u.StartDate != nil {
		p.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		p.EndDate = *u.EndDate
	}
	if u.Progress != nil {
		p.Progress = *u.Progress
	}
	if u.TaskCount != nil {
		p.TaskCount = *u.TaskCount
	}
	if u.Members != nil {
		p.Members = append([]string(nil), *u.Members...)
	}
	if u.Tasks != nil {
		p.Tasks = append([]model.Task(nil), *u.Tasks...)
	}
}

// AddProject prepends the project (most-recent-first is the store's ordering
// convention) and logs a create activity. The ID is taken as-is; the store
// never deduplicates.
func (s *Store) AddProject(p model.Project) {
	s.projects = append([]model.Project{p.Clone()}, s.projects...)
	s.logActivity(model.ActivityCreate, p.ID, p.Name, fmt.Sprintf("Created project %q", p.Name))
}

// UpdateProject shallow-merges the patch into the matching project and logs
// an update activity carrying the pre-merge name. No-op on unknown IDs.
func (s *Store) UpdateProject(id string, patch ProjectUpdate) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		name := s.projects[i].Name
		patch.applyTo(&s.projects[i])
		s.logActivity(model.ActivityUpdate, id, name, fmt.Sprintf("Updated project %q", name))
		return
	}
}

// DeleteProject removes the matching project, logging a delete activity with
// the name captured before removal. No-op on unknown IDs.
func (s *Store) DeleteProject(id string) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		name := s.projects[i].Name
		s.projects = append(s.projects[:i], s.projects[i+1:]...)
		s.logActivity(model.ActivityDelete, id, name, fmt.Sprintf("Deleted project %q", name))
		return
	}
}

// DuplicateProject prepends a clone of the matching project with a fresh ID,
// name suffixed " (Copy)", progress reset and tasks cleared. Every other
// field, TaskCount included, is copied from the source at duplication time.
// The logged create activity names the source project, not the copy. No-op
// on unknown IDs.
func (s *Store) DuplicateProject(id string) {
	src, ok := s.Find(id)
	if !ok {
		return
	}
	clone := src.Clone()
	clone.ID = s.newID()
	clone.Name = src.Name + " (Copy)"
	clone.Progress = 0
	clone.Tasks = []model.Task{}
	s.projects = append([]model.Project{clone}, s.projects...)
	s.logActivity(model.ActivityCreate, clone.ID, clone.Name, fmt.Sprintf("Duplicated project %q", src.Name))
}

// ToggleStarProject flips the starred flag and logs a star activity whose
// description reflects the new state. No-op on unknown IDs.
func (s *Store) ToggleStarProject(id string) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		p.Starred = !p.Starred
		verb := "Unstarred"
		if p.Starred {
			verb = "Starred"
		}
		s.logActivity(model.ActivityStar, id, p.Name, fmt.Sprintf("%s project %q", verb, p.Name))
		return
	}
}

// ToggleArchiveProject flips the archived flag and logs an archive activity
// whose description reflects the new state. No-op on unknown IDs.
func (s *Store) ToggleArchiveProject(id string) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		p.Archived = !p.Archived
		verb := "Unarchived"
		if p.Archived {
			verb = "Archived"
		}
		s.logActivity(model.ActivityArchive, id, p.Name, fmt.Sprintf("%s project %q", verb, p.Name))
		return
	}
}

// NewID mints a fresh opaque project ID.
func (s *Store) NewID() string { return s.newID() }
