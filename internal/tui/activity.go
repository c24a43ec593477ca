package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

// activityModel renders the store's bounded activity log, newest first.
type activityModel struct {
	activities []model.Activity
	scroll     int
	width      int
	height     int
}

func (a *activityModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

func (a *activityModel) setActivities(activities []model.Activity) {
	a.activities = activities
	if a.scroll > max(0, len(a.activities)-1) {
		a.scroll = max(0, len(a.activities)-1)
	}
}

func (a activityModel) update(msg tea.Msg) (activityModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if a.scroll > 0 {
				a.scroll--
			}
		case key.Matches(msg, keys.Down):
			if a.scroll < max(0, len(a.activities)-1) {
				a.scroll++
			}
		}
	}
	return a, nil
}

func activityGlyph(t model.ActivityType) string {
	switch t {
	case model.ActivityCreate:
		return successStyle.Render("+")
	case model.ActivityDelete:
		return errorStyle.Render("✕")
	case model.ActivityUpdate:
		return highlightStyle.Render("~")
	case model.ActivityStar:
		return starStyle.Render("★")
	case model.ActivityArchive:
		return mutedStyle.Render("▣")
	case model.ActivityComplete:
		return successStyle.Render("✓")
	}
	return " "
}

func (a activityModel) view() string {
	w := a.width - 4

	if len(a.activities) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Activity"),
			"",
			mutedStyle.Render("No activity yet. Changes to projects show up here."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Activity"))
	rows = append(rows, "")

	now := time.Now()
	visible := a.activities
	maxRows := a.height - 8
	if maxRows > 0 && len(visible) > maxRows {
		start := min(a.scroll, len(visible)-maxRows)
		visible = visible[start : start+maxRows]
	}

	for _, act := range visible {
		rows = append(rows, "  "+activityGlyph(act.Type)+" "+
			normalItemStyle.Render(act.Description)+"  "+
			mutedStyle.Render(relativeTime(act.Timestamp, now)))
	}

	rows = append(rows, "")
	label := "actions"
	if len(a.activities) == 1 {
		label = "action"
	}
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  Showing last %d %s", len(a.activities), label)))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
