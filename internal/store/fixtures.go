package store

import (
	"time"

	"github.com/ozank/plank/internal/model"
)

// Fixture seed data. The store is rebuilt from these on every process start;
// there is intentionally no durable project storage.

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixtureProjects() []model.Project {
	return []model.Project{
		{
			ID:            "proj-1",
			Name:          "Website Redesign",
			Client:        "Acme Corp",
			TypeLabel:     "MVP",
			DurationLabel: "8 weeks",
			Status:        model.StatusActive,
			Priority:      model.PriorityHigh,
			Tags:          []string{"frontend", "design"},
			StartDate:     d(2026, time.June, 1),
			EndDate:       d(2026, time.July, 27),
			Progress:      62,
			TaskCount:     14,
			Members:       []string{"Jason Duong", "Mitch Sato", "Mike Wilson"},
			Tasks: []model.Task{
				{ID: "task-1-1", Name: "Design system audit", Assignee: "Mitch Sato", Status: "done", StartDate: d(2026, time.June, 1), EndDate: d(2026, time.June, 12)},
				{ID: "task-1-2", Name: "Homepage rebuild", Assignee: "Mike Wilson", Status: "in_progress", StartDate: d(2026, time.June, 15), EndDate: d(2026, time.July, 10)},
			},
		},
		{
			ID:            "proj-2",
			Name:          "Mobile App Launch",
			Client:        "Northwind",
			TypeLabel:     "Launch",
			DurationLabel: "12 weeks",
			Status:        model.StatusActive,
			Priority:      model.PriorityUrgent,
			Tags:          []string{"mobile", "frontend"},
			StartDate:     d(2026, time.May, 4),
			EndDate:       d(2026, time.August, 14),
			Progress:      38,
			TaskCount:     21,
			Members:       []string{"Harrold Peterson", "Sarah Chen", "Emily Davis"},
			Tasks: []model.Task{
				{ID: "task-2-1", Name: "Push notification service", Assignee: "Sarah Chen", Status: "in_progress", StartDate: d(2026, time.June, 8), EndDate: d(2026, time.July, 3)},
			},
		},
		{
			ID:            "proj-3",
			Name:          "Data Warehouse Migration",
			Client:        "Acme Corp",
			TypeLabel:     "Infrastructure",
			DurationLabel: "16 weeks",
			Status:        model.StatusPlanned,
			Priority:      model.PriorityMedium,
			Tags:          []string{"backend", "data"},
			StartDate:     d(2026, time.September, 1),
			EndDate:       d(2026, time.December, 18),
			Progress:      0,
			TaskCount:     8,
			Members:       []string{"Sarah Chen", "Alex Morgan"},
			Tasks:         []model.Task{},
		},
		{
			ID:            "proj-4",
			Name:          "Brand Guidelines",
			Client:        "Fresco Studio",
			TypeLabel:     "Design",
			DurationLabel: "4 weeks",
			Status:        model.StatusCompleted,
			Priority:      model.PriorityLow,
			Tags:          []string{"design"},
			StartDate:     d(2026, time.March, 2),
			EndDate:       d(2026, time.March, 27),
			Progress:      100,
			TaskCount:     6,
			Members:       []string{"Mitch Sato", "Jason Duong"},
			Tasks:         []model.Task{},
		},
		{
			ID:            "proj-5",
			Name:          "Internal API Gateway",
			TypeLabel:     "Infrastructure",
			DurationLabel: "6 weeks",
			Status:        model.StatusBacklog,
			Priority:      model.PriorityMedium,
			Tags:          []string{"backend", "infra"},
			StartDate:     d(2026, time.October, 5),
			EndDate:       d(2026, time.November, 13),
			Progress:      0,
			TaskCount:     0,
			Members:       []string{"Alex Morgan"},
			Tasks:         []model.Task{},
		},
		{
			ID:            "proj-6",
			Name:          "Customer Portal v2",
			Client:        "Northwind",
			TypeLabel:     "MVP",
			DurationLabel: "10 weeks",
			Status:        model.StatusActive,
			Priority:      model.PriorityHigh,
			Tags:          []string{"frontend", "backend"},
			StartDate:     d(2026, time.June, 22),
			EndDate:       d(2026, time.September, 4),
			Progress:      24,
			TaskCount:     17,
			Members:       []string{"James Boarnd", "Mike Wilson", "Emily Davis"},
			Tasks: []model.Task{
				{ID: "task-6-1", Name: "Auth flow", Assignee: "Mike Wilson", Status: "in_progress", StartDate: d(2026, time.June, 22), EndDate: d(2026, time.July, 17)},
				{ID: "task-6-2", Name: "Billing dashboard", Assignee: "Emily Davis", Status: "todo", StartDate: d(2026, time.July, 20), EndDate: d(2026, time.August, 21)},
			},
		},
		{
			ID:            "proj-7",
			Name:          "Legacy CRM Sunset",
			Client:        "Acme Corp",
			TypeLabel:     "Ops",
			DurationLabel: "TBD",
			Status:        model.StatusCancelled,
			Priority:      model.PriorityLow,
			Tags:          []string{"ops"},
			StartDate:     d(2026, time.February, 2),
			EndDate:       d(2026, time.April, 3),
			Progress:      15,
			TaskCount:     4,
			Members:       []string{"James Boarnd"},
			Tasks:         []model.Task{},
		},
		{
			ID:            "proj-8",
			Name:          "Q4 Marketing Site",
			Client:        "Fresco Studio",
			TypeLabel:     "Quick",
			DurationLabel: "2-week",
			Status:        model.StatusPlanned,
			Priority:      model.PriorityUrgent,
			Tags:          []string{"frontend", "marketing"},
			StartDate:     d(2026, time.September, 14),
			EndDate:       d(2026, time.September, 28),
			Progress:      0,
			TaskCount:     0,
			Members:       []string{"Jason Duong"},
			Tasks:         []model.Task{},
			Starred:       true,
		},
	}
}

func fixtureUsers() []model.User {
	return []model.User{
		{ID: "user-1", Name: "Jason Duong", Email: "jason.duong@mail.com", Avatar: "/avatar-profile.jpg", Role: "Product Designer"},
		{ID: "user-2", Name: "Harrold Peterson", Email: "harrold.p@mail.com", Role: "Senior Developer"},
		{ID: "user-3", Name: "James Boarnd", Email: "james.b@mail.com", Role: "Project Manager"},
		{ID: "user-4", Name: "Mitch Sato", Email: "mitch.s@mail.com", Role: "UX Designer"},
		{ID: "user-5", Name: "Sarah Chen", Email: "sarah.c@mail.com", Role: "Backend Developer"},
		{ID: "user-6", Name: "Mike Wilson", Email: "mike.w@mail.com", Role: "Frontend Developer"},
		{ID: "user-7", Name: "Emily Davis", Email: "emily.d@mail.com", Role: "QA Engineer"},
		{ID: "user-8", Name: "Alex Morgan", Email: "alex.m@mail.com", Role: "DevOps Engineer"},
	}
}

func fixtureTeams() []model.Team {
	return []model.Team{
		{ID: "team-1", Name: "Engineering Team", MemberCount: 12},
		{ID: "team-2", Name: "Design Team", MemberCount: 5},
		{ID: "team-3", Name: "Product Team", MemberCount: 8},
		{ID: "team-4", Name: "Marketing Team", MemberCount: 6},
	}
}
