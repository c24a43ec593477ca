package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

// detailsModel is the per-project drill-down: an overview panel plus the
// project's tasks grouped into workstreams by task status. Workstreams are
// a presentation grouping only; the store knows nothing about them.
type detailsModel struct {
	project model.Project
	width   int
	height  int
}

func (d *detailsModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d detailsModel) view() string {
	w := d.width - 4
	p := d.project

	star := ""
	if p.Starred {
		star = " " + starStyle.Render("★")
	}
	title := titleStyle.Render(p.Name) + star
	if p.Archived {
		title += mutedStyle.Render("  (archived)")
	}

	var overview []string
	overview = append(overview, title)
	overview = append(overview, "")
	overview = append(overview, "  "+statusBadge(p.Status)+"   "+priorityBadge(p.Priority)+"   "+progressBar(p.Progress, 16))
	overview = append(overview, "")
	if p.Client != "" {
		overview = append(overview, kv("Client", p.Client))
	}
	if p.TypeLabel != "" {
		overview = append(overview, kv("Type", p.TypeLabel))
	}
	if p.DurationLabel != "" {
		overview = append(overview, kv("Duration", p.DurationLabel))
	}
	overview = append(overview, kv("Dates", dateRange(p)))
	overview = append(overview, kv("Tasks", fmt.Sprintf("%d", p.TaskCount)))
	if len(p.Members) > 0 {
		overview = append(overview, kv("Members", strings.Join(p.Members, ", ")))
	}
	if len(p.Tags) > 0 {
		overview = append(overview, kv("Tags", strings.Join(p.Tags, ", ")))
	}

	body := strings.Join(overview, "\n") + "\n\n" + d.renderWorkstreams()
	body += "\n\n" + mutedStyle.Render("  esc: back  s: star  a: archive  c: duplicate  d: delete")

	return activePanelStyle.Width(w).Render(body)
}

func kv(label, value string) string {
	return "  " + subtitleStyle.Render(fmt.Sprintf("%-10s", label)) + normalItemStyle.Render(value)
}

func dateRange(p model.Project) string {
	start, end := "—", "—"
	if !p.StartDate.IsZero() {
		start = p.StartDate.Format("Jan 02, 2006")
	}
	if !p.EndDate.IsZero() {
		end = p.EndDate.Format("Jan 02, 2006")
	}
	return start + " → " + end
}

// workstreamOrder fixes the rendering order of the task-status groups.
var workstreamOrder = []string{"in_progress", "todo", "done"}

var workstreamLabels = map[string]string{
	"in_progress": "In Progress",
	"todo":        "Up Next",
	"done":        "Done",
}

func (d detailsModel) renderWorkstreams() string {
	if len(d.project.Tasks) == 0 {
		return mutedStyle.Render("  No tasks in this project yet.")
	}

	groups := map[string][]model.Task{}
	var extras []string
	for _, t := range d.project.Tasks {
		if _, known := workstreamLabels[t.Status]; !known {
			if len(groups[t.Status]) == 0 {
				extras = append(extras, t.Status)
			}
		}
		groups[t.Status] = append(groups[t.Status], t)
	}

	order := append(append([]string(nil), workstreamOrder...), extras...)

	var sections []string
	for _, status := range order {
		tasks := groups[status]
		if len(tasks) == 0 {
			continue
		}
		label := workstreamLabels[status]
		if label == "" {
			label = status
		}
		var lines []string
		lines = append(lines, highlightStyle.Render("  "+label)+mutedStyle.Render(fmt.Sprintf(" (%d)", len(tasks))))
		for _, t := range tasks {
			assignee := ""
			if t.Assignee != "" {
				assignee = mutedStyle.Render("  — " + t.Assignee)
			}
			lines = append(lines, "    • "+normalItemStyle.Render(t.Name)+assignee)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
