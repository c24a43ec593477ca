package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

// timelineModel renders each project as a bar spanning its start and end
// dates over the combined range of the derived list, plus a monthly
// completion-load chart underneath.
type timelineModel struct {
	projects []model.Project
	cursor   int
	width    int
	height   int

	chart barchart.Model
}

func newTimelineModel() timelineModel {
	return timelineModel{chart: barchart.New(60, 8)}
}

func (t *timelineModel) setSize(w, h int) {
	t.width = w
	t.height = h
	t.buildChart()
}

func (t *timelineModel) setProjects(projects []model.Project) {
	t.projects = projects
	if t.cursor >= len(t.projects) {
		t.cursor = max(0, len(t.projects)-1)
	}
	t.buildChart()
}

func (t timelineModel) selected() (model.Project, bool) {
	if t.cursor < 0 || t.cursor >= len(t.projects) {
		return model.Project{}, false
	}
	return t.projects[t.cursor], true
}

func (t timelineModel) update(msg tea.Msg) (timelineModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.projects)-1 {
				t.cursor++
			}
		}
	}
	return t, nil
}

// span returns the earliest start and latest end across the list, defaulting
// to a one-month window when dates are missing.
func (t timelineModel) span() (time.Time, time.Time) {
	var from, to time.Time
	for _, p := range t.projects {
		if !p.StartDate.IsZero() && (from.IsZero() || p.StartDate.Before(from)) {
			from = p.StartDate
		}
		if !p.EndDate.IsZero() && p.EndDate.After(to) {
			to = p.EndDate
		}
	}
	if from.IsZero() || !to.After(from) {
		now := time.Now().UTC()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	}
	return from, to
}

func (t *timelineModel) buildChart() {
	chartWidth := t.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	t.chart = barchart.New(chartWidth, 8)

	if len(t.projects) == 0 {
		t.chart.Draw()
		return
	}

	// Projects ending per month across the span.
	from, to := t.span()
	first := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)

	var bars []barchart.BarData
	for m := first; !m.After(to); m = m.AddDate(0, 1, 0) {
		count := 0
		for _, p := range t.projects {
			if p.EndDate.IsZero() {
				continue
			}
			if p.EndDate.Year() == m.Year() && p.EndDate.Month() == m.Month() {
				count++
			}
		}
		style := lipgloss.NewStyle().Foreground(th.Primary)
		if count == 0 {
			style = lipgloss.NewStyle().Foreground(th.Subtle)
		}
		bars = append(bars, barchart.BarData{
			Label: m.Format("Jan"),
			Values: []barchart.BarValue{
				{Name: "ending", Value: float64(count), Style: style},
			},
		})
	}

	t.chart.PushAll(bars)
	t.chart.Draw()
}

func (t timelineModel) view() string {
	w := t.width - 4

	if len(t.projects) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Timeline"),
			"",
			mutedStyle.Render("No projects match the current filters."),
		)
		return panelStyle.Width(w).Render(content)
	}

	from, to := t.span()
	total := to.Sub(from)
	barWidth := w - 36
	if barWidth < 12 {
		barWidth = 12
	}

	var rows []string
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Timeline"), "  ",
		mutedStyle.Render(fmt.Sprintf("%s — %s", from.Format("Jan 02, 2006"), to.Format("Jan 02, 2006"))),
	))
	rows = append(rows, "")

	for i, p := range t.projects {
		style := normalItemStyle
		prefix := "  "
		if i == t.cursor {
			style = selectedItemStyle
			prefix = "> "
		}
		rows = append(rows, style.Render(prefix+fmt.Sprintf("%-26s", truncate(p.Name, 26)))+t.renderBar(p, from, total, barWidth))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  Projects ending per month"))
	rows = append(rows, t.chart.View())

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (t timelineModel) renderBar(p model.Project, from time.Time, total time.Duration, width int) string {
	if p.StartDate.IsZero() || p.EndDate.IsZero() || !p.EndDate.After(p.StartDate) || total <= 0 {
		return mutedStyle.Render(strings.Repeat("·", width))
	}

	lead := int(float64(p.StartDate.Sub(from)) / float64(total) * float64(width))
	span := int(float64(p.EndDate.Sub(p.StartDate)) / float64(total) * float64(width))
	if lead < 0 {
		lead = 0
	}
	if span < 1 {
		span = 1
	}
	if lead+span > width {
		span = width - lead
	}
	if span < 1 {
		lead, span = width-1, 1
	}

	bar := strings.Repeat("·", lead) +
		lipgloss.NewStyle().Foreground(statusColor(p.Status)).Render(strings.Repeat("█", span)) +
		strings.Repeat("·", width-lead-span)
	return mutedStyle.Render(bar)
}
