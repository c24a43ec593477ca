package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

var projectTypes = []string{"MVP", "Launch", "Design", "Infrastructure", "Ops", "Quick"}

// wizardModel drives the five-step guided project setup. Each huh group is
// one step; huh handles next/back between groups, esc aborts the whole
// wizard and discards the uncommitted form state.
type wizardModel struct {
	form  *huh.Form
	users []model.User

	name        string
	description string
	client      string
	projectType string
	startDate   string
	endDate     string

	successType string
	goal        string

	owners       []string
	contributors []string
	stakeholders []string

	workflow     string
	starterTasks bool
	status       string
	priority     string
	tags         string

	confirmed bool
}

func newWizardModel(users []model.User) *wizardModel {
	w := &wizardModel{
		users:       users,
		projectType: "MVP",
		successType: "not-defined",
		workflow:    "linear",
		status:      string(model.StatusPlanned),
		priority:    string(model.PriorityMedium),
		confirmed:   true,
	}

	userOptions := make([]huh.Option[string], len(users))
	for i, u := range users {
		userOptions[i] = huh.NewOption(u.Name+" — "+u.Role, u.Name)
	}
	typeOptions := make([]huh.Option[string], len(projectTypes))
	for i, t := range projectTypes {
		typeOptions[i] = huh.NewOption(t, t)
	}
	statusOptions := []huh.Option[string]{
		huh.NewOption("Backlog", string(model.StatusBacklog)),
		huh.NewOption("Planned", string(model.StatusPlanned)),
		huh.NewOption("Active", string(model.StatusActive)),
	}
	priorityOptions := make([]huh.Option[string], len(model.Priorities))
	for i, p := range model.Priorities {
		priorityOptions[i] = huh.NewOption(string(p), string(p))
	}

	w.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project name").Placeholder("e.g. Redesign mobile app").Value(&w.name),
			huh.NewText().Title("Description").Value(&w.description),
			huh.NewInput().Title("Client").Value(&w.client),
			huh.NewSelect[string]().Title("Project type").Options(typeOptions...).Value(&w.projectType),
			huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(&w.startDate),
			huh.NewInput().Title("End date (YYYY-MM-DD)").Value(&w.endDate),
		).Title("Project intent"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("How is success defined?").Options(
				huh.NewOption("A concrete deliverable", "deliverable"),
				huh.NewOption("A measurable metric", "metric"),
				huh.NewOption("Not defined yet", "not-defined"),
			).Value(&w.successType),
			huh.NewText().Title("Goal").Value(&w.goal),
		).Title("Outcome & success"),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Owners").Options(userOptions...).Value(&w.owners),
			huh.NewMultiSelect[string]().Title("Contributors").Options(userOptions...).Value(&w.contributors),
			huh.NewMultiSelect[string]().Title("Stakeholders").Options(userOptions...).Value(&w.stakeholders),
		).Title("Ownership"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Workflow").Options(
				huh.NewOption("Linear", "linear"),
				huh.NewOption("Milestones", "milestone"),
				huh.NewOption("Multiple workstreams", "multi-stream"),
			).Value(&w.workflow),
			huh.NewConfirm().Title("Add starter tasks?").Value(&w.starterTasks),
			huh.NewSelect[string]().Title("Status").Options(statusOptions...).Value(&w.status),
			huh.NewSelect[string]().Title("Priority").Options(priorityOptions...).Value(&w.priority),
			huh.NewInput().Title("Tags (comma-separated)").Value(&w.tags),
		).Title("Work structure"),
		huh.NewGroup(
			huh.NewConfirm().Title("Create this project?").Value(&w.confirmed),
		).Title("Review & create"),
	).WithShowHelp(true).WithShowErrors(true)

	return w
}

func (w *wizardModel) init() tea.Cmd {
	return w.form.Init()
}

func (w *wizardModel) update(msg tea.Msg) (tea.Cmd, bool) {
	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}
	return cmd, w.form.State == huh.StateCompleted
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// project materializes the form into a Project. Defaults mirror the guided
// setup: start defaults to now, end to thirty days out, duration stays TBD,
// and choosing starter tasks sets the denormalized task count to three while
// the embedded task list stays empty.
func (w *wizardModel) project(id string, now time.Time) model.Project {
	start, ok := parseDate(w.startDate)
	if !ok {
		start = now
	}
	end, ok := parseDate(w.endDate)
	if !ok {
		end = now.Add(30 * 24 * time.Hour)
	}

	taskCount := 0
	if w.starterTasks {
		taskCount = 3
	}

	members := append(append(append([]string(nil), w.owners...), w.contributors...), w.stakeholders...)

	tags := splitTags(w.tags)
	if tags == nil {
		tags = []string{}
	}

	return model.Project{
		ID:            id,
		Name:          w.name,
		Client:        w.client,
		TypeLabel:     w.projectType,
		DurationLabel: "TBD",
		Status:        model.Status(w.status),
		Priority:      model.Priority(w.priority),
		Tags:          tags,
		StartDate:     start,
		EndDate:       end,
		Progress:      0,
		TaskCount:     taskCount,
		Members:       members,
		Tasks:         []model.Task{},
	}
}

func (w *wizardModel) view(width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("New Project — Guided Setup"),
		"",
		w.form.View(),
	)
	return activePanelStyle.Width(width - 4).Render(content)
}
