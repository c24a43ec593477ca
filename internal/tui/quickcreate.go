package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

var sprintTypes = []string{"1-week", "2-week", "4-week"}

var quickTags = []string{"frontend", "backend", "design", "mobile", "data", "ops", "marketing"}

// quickModel is the one-screen shortcut form: a single huh group with the
// guided wizard's most common fields pre-filled.
type quickModel struct {
	form *huh.Form

	title       string
	description string
	owner       string
	startDate   string
	client      string
	status      string
	sprintType  string
	priority    string
	tag         string
}

func newQuickModel(users []model.User) *quickModel {
	q := &quickModel{
		status:     string(model.StatusPlanned),
		sprintType: "2-week",
		priority:   string(model.PriorityMedium),
		tag:        "frontend",
	}
	if len(users) > 0 {
		q.owner = users[0].Name
	}

	userOptions := make([]huh.Option[string], len(users))
	for i, u := range users {
		userOptions[i] = huh.NewOption(u.Name, u.Name)
	}
	tagOptions := make([]huh.Option[string], len(quickTags))
	for i, t := range quickTags {
		tagOptions[i] = huh.NewOption(t, t)
	}
	sprintOptions := make([]huh.Option[string], len(sprintTypes))
	for i, s := range sprintTypes {
		sprintOptions[i] = huh.NewOption(s, s)
	}

	q.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project title").Placeholder("e.g. Redesign mobile app").Value(&q.title),
			huh.NewText().Title("Brief description").Value(&q.description),
			huh.NewSelect[string]().Title("Owner").Options(userOptions...).Value(&q.owner),
			huh.NewInput().Title("Start date (YYYY-MM-DD, blank = today)").Value(&q.startDate),
			huh.NewInput().Title("Client").Value(&q.client),
			huh.NewSelect[string]().Title("Status").Options(
				huh.NewOption("Backlog", string(model.StatusBacklog)),
				huh.NewOption("Planned", string(model.StatusPlanned)),
				huh.NewOption("Active", string(model.StatusActive)),
			).Value(&q.status),
			huh.NewSelect[string]().Title("Sprint").Options(sprintOptions...).Value(&q.sprintType),
			huh.NewSelect[string]().Title("Priority").Options(
				huh.NewOption("urgent", string(model.PriorityUrgent)),
				huh.NewOption("high", string(model.PriorityHigh)),
				huh.NewOption("medium", string(model.PriorityMedium)),
				huh.NewOption("low", string(model.PriorityLow)),
			).Value(&q.priority),
			huh.NewSelect[string]().Title("Tag").Options(tagOptions...).Value(&q.tag),
		).Title("Quick Create"),
	).WithShowHelp(true).WithShowErrors(true)

	return q
}

func (q *quickModel) init() tea.Cmd {
	return q.form.Init()
}

func (q *quickModel) update(msg tea.Msg) (tea.Cmd, bool) {
	form, cmd := q.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		q.form = f
	}
	return cmd, q.form.State == huh.StateCompleted
}

// project materializes the quick form. A blank title becomes "Untitled
// Project"; the end date is always two weeks after the start; the task
// count starts at zero.
func (q *quickModel) project(id string, now time.Time) model.Project {
	name := q.title
	if name == "" {
		name = "Untitled Project"
	}

	start, ok := parseDate(q.startDate)
	if !ok {
		start = now
	}

	var members []string
	if q.owner != "" {
		members = []string{q.owner}
	}

	return model.Project{
		ID:            id,
		Name:          name,
		Client:        q.client,
		TypeLabel:     "Quick",
		DurationLabel: q.sprintType,
		Status:        model.Status(q.status),
		Priority:      model.Priority(q.priority),
		Tags:          []string{q.tag},
		StartDate:     start,
		EndDate:       start.Add(14 * 24 * time.Hour),
		Progress:      0,
		TaskCount:     0,
		Members:       members,
		Tasks:         []model.Task{},
	}
}

func (q *quickModel) view(width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Quick Create Project"),
		"",
		q.form.View(),
	)
	return activePanelStyle.Width(width - 4).Render(content)
}
