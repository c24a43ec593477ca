package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

// listModel renders the derived project list as rows with a cursor. It holds
// no authoritative state: the app pushes a fresh slice after every pipeline
// run.
type listModel struct {
	projects []model.Project
	cursor   int
	width    int
	height   int
}

func (l *listModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

func (l *listModel) setProjects(projects []model.Project) {
	l.projects = projects
	if l.cursor >= len(l.projects) {
		l.cursor = max(0, len(l.projects)-1)
	}
}

func (l listModel) selected() (model.Project, bool) {
	if l.cursor < 0 || l.cursor >= len(l.projects) {
		return model.Project{}, false
	}
	return l.projects[l.cursor], true
}

func (l listModel) update(msg tea.Msg) (listModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if l.cursor > 0 {
				l.cursor--
			}
		case key.Matches(msg, keys.Down):
			if l.cursor < len(l.projects)-1 {
				l.cursor++
			}
		}
	}
	return l, nil
}

func (l listModel) view() string {
	w := l.width - 4

	if len(l.projects) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Projects"),
			"",
			mutedStyle.Render("No projects match. Press n to create one or F to clear filters."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Projects"))
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-2s %-28s %-12s %-8s %-16s %-12s %s",
		"", "Name", "Status", "Priority", "Progress", "Due", "Tags"))
	rows = append(rows, header)

	visible := l.projects
	start := 0
	maxRows := l.height - 8
	if maxRows > 0 && len(visible) > maxRows {
		if l.cursor >= maxRows {
			start = l.cursor - maxRows + 1
		}
		end := min(start+maxRows, len(visible))
		visible = visible[start:end]
	}

	for i, p := range visible {
		idx := start + i
		cursor := "  "
		style := normalItemStyle
		if idx == l.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		star := " "
		if p.Starred {
			star = starStyle.Render("★")
		}
		name := truncate(p.Name, 28)
		if p.Archived {
			name = mutedStyle.Render(name + " (archived)")
		} else {
			name = style.Render(fmt.Sprintf("%-28s", name))
		}
		due := "—"
		if !p.EndDate.IsZero() {
			due = p.EndDate.Format("Jan 02, 2006")
		}
		row := fmt.Sprintf("%s%s %s %-22s %-8s %s  %-12s %s",
			style.Render(cursor),
			star,
			name,
			statusBadge(p.Status),
			priorityBadge(p.Priority),
			progressBar(p.Progress, 10),
			due,
			badgeStyle.Render(strings.Join(p.Tags, ", ")),
		)
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: open  s: star  a: archive  c: duplicate  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
