package model

import "time"

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusBacklog   Status = "backlog"
	StatusPlanned   Status = "planned"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Statuses lists all statuses in board-column order.
var Statuses = []Status{StatusBacklog, StatusPlanned, StatusActive, StatusCancelled, StatusCompleted}

// IsClosed reports whether the status counts as a closed project
// (hidden unless "show closed projects" is enabled).
func (s Status) IsClosed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Priority represents project priority level.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var Priorities = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

// Task is a work item embedded in a project.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Assignee  string    `json:"assignee,omitempty"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Project is the central work-tracking entity.
//
// ID uniqueness is the caller's responsibility; the store never rejects
// collisions. TaskCount is denormalized and deliberately NOT derived from
// len(Tasks): quick create sets 0, the guided wizard sets 3 when starter
// tasks are requested, both with an empty Tasks slice. No invariant relates
// StartDate and EndDate, and Progress is not clamped to 0-100.
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Client        string    `json:"client,omitempty"`
	TypeLabel     string    `json:"typeLabel,omitempty"`
	DurationLabel string    `json:"durationLabel,omitempty"`
	Status        Status    `json:"status"`
	Priority      Priority  `json:"priority"`
	Tags          []string  `json:"tags"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Progress      int       `json:"progress"`
	TaskCount     int       `json:"taskCount"`
	Members       []string  `json:"members"`
	Tasks         []Task    `json:"tasks"`
	Starred       bool      `json:"starred,omitempty"`
	Archived      bool      `json:"archived,omitempty"`
}

// Clone returns a deep copy so pipeline output and duplicates never alias
// the store's slices.
func (p Project) Clone() Project {
	c := p
	c.Tags = append([]string(nil), p.Tags...)
	c.Members = append([]string(nil), p.Members...)
	c.Tasks = append([]Task(nil), p.Tasks...)
	return c
}

// ActivityType classifies a mutating store operation.
type ActivityType string

const (
	ActivityCreate   ActivityType = "create"
	ActivityUpdate   ActivityType = "update"
	ActivityDelete   ActivityType = "delete"
	ActivityComplete ActivityType = "complete"
	ActivityArchive  ActivityType = "archive"
	ActivityStar     ActivityType = "star"
)

// Activity is one immutable audit-log record. ProjectID is a weak reference:
// deleting the project does not cascade, and ProjectName is the name captured
// when the event was emitted.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	ProjectID   string       `json:"projectId"`
	ProjectName string       `json:"projectName"`
	Timestamp   time.Time    `json:"timestamp"`
	Description string       `json:"description"`
}

// FilterChip is one atomic (dimension, value) filter constraint. Chips with
// the same key OR together; chips across keys AND together.
type FilterChip struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ViewType selects which rendering mode consumes the derived project list.
type ViewType string

const (
	ViewList     ViewType = "list"
	ViewBoard    ViewType = "board"
	ViewTimeline ViewType = "timeline"
)

// Ordering values recognized by the pipeline. Anything else leaves store
// insertion order.
type Ordering string

const (
	OrderDefault      Ordering = "default"
	OrderAlphabetical Ordering = "alphabetical"
	OrderDate         Ordering = "date"
)

// ViewOptions configures the derived view. Never persisted; every session
// starts from DefaultViewOptions.
type ViewOptions struct {
	ViewType           ViewType
	Ordering           Ordering
	ShowClosedProjects bool
}

func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		ViewType:           ViewList,
		Ordering:           OrderDefault,
		ShowClosedProjects: false,
	}
}

// User is an entry in the fixture user directory, used to resolve member
// display names during project creation.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Team is a named group from the fixture directory.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
}
