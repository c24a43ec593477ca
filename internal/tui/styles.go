package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

// Theme is a named palette. The active theme comes from the preference
// store; applyTheme rebuilds every style from it.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Fg        lipgloss.Color
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
}

var themes = map[string]Theme{
	"midnight": {
		Name:      "midnight",
		Primary:   lipgloss.Color("#6C63FF"),
		Secondary: lipgloss.Color("#2EC4B6"),
		Accent:    lipgloss.Color("#FF6B6B"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#2ECC71"),
		Warning:   lipgloss.Color("#F39C12"),
		Error:     lipgloss.Color("#E74C3C"),
		Fg:        lipgloss.Color("#C0CAF5"),
		Subtle:    lipgloss.Color("#414868"),
		Highlight: lipgloss.Color("#7AA2F7"),
	},
	"paper": {
		Name:      "paper",
		Primary:   lipgloss.Color("#5A54D4"),
		Secondary: lipgloss.Color("#1F9E92"),
		Accent:    lipgloss.Color("#D4524E"),
		Muted:     lipgloss.Color("#8A8A8A"),
		Success:   lipgloss.Color("#1E8449"),
		Warning:   lipgloss.Color("#B9770E"),
		Error:     lipgloss.Color("#C0392B"),
		Fg:        lipgloss.Color("#2C2C2C"),
		Subtle:    lipgloss.Color("#C9C9C9"),
		Highlight: lipgloss.Color("#2E5AAC"),
	},
}

// ThemeNames lists the selectable themes.
var ThemeNames = []string{"midnight", "paper"}

var accentColors = []string{"#6C63FF", "#2EC4B6", "#FF6B6B", "#F39C12", "#2ECC71", "#3498DB", "#9B59B6"}

var th = themes["midnight"]

// Styles, rebuilt by applyTheme.
var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	titleStyle        lipgloss.Style
	subtitleStyle     lipgloss.Style
	mutedStyle        lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
	chipStyle         lipgloss.Style
	badgeStyle        lipgloss.Style
	starStyle         lipgloss.Style
)

func init() {
	applyTheme("midnight", "")
}

// applyTheme switches the active palette. An empty or unknown theme name
// keeps midnight; an accent override replaces the palette's primary.
func applyTheme(name, accent string) {
	t, ok := themes[name]
	if !ok {
		t = themes["midnight"]
	}
	if accent != "" {
		t.Primary = lipgloss.Color(accent)
	}
	th = t

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Primary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(th.Primary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(th.Muted).
		Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Subtle).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Primary).
		Padding(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(th.Fg)
	subtitleStyle = lipgloss.NewStyle().Foreground(th.Muted)
	mutedStyle = lipgloss.NewStyle().Foreground(th.Muted)
	successStyle = lipgloss.NewStyle().Foreground(th.Success)
	warningStyle = lipgloss.NewStyle().Foreground(th.Warning)
	errorStyle = lipgloss.NewStyle().Foreground(th.Error)
	highlightStyle = lipgloss.NewStyle().Foreground(th.Highlight)
	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(th.Muted).Padding(0, 1)
	selectedItemStyle = lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	normalItemStyle = lipgloss.NewStyle().Foreground(th.Fg)
	chipStyle = lipgloss.NewStyle().Foreground(th.Highlight)
	badgeStyle = lipgloss.NewStyle().Foreground(th.Muted)
	starStyle = lipgloss.NewStyle().Foreground(th.Warning)
}

func statusColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusActive:
		return th.Success
	case model.StatusPlanned:
		return th.Highlight
	case model.StatusBacklog:
		return th.Muted
	case model.StatusCompleted:
		return th.Secondary
	case model.StatusCancelled:
		return th.Error
	}
	return th.Fg
}

func priorityColor(p model.Priority) lipgloss.Color {
	switch p {
	case model.PriorityUrgent:
		return th.Error
	case model.PriorityHigh:
		return th.Warning
	case model.PriorityMedium:
		return th.Highlight
	case model.PriorityLow:
		return th.Muted
	}
	return th.Fg
}

func statusBadge(s model.Status) string {
	return lipgloss.NewStyle().Foreground(statusColor(s)).Render("● " + string(s))
}

func priorityBadge(p model.Priority) string {
	return lipgloss.NewStyle().Foreground(priorityColor(p)).Render(string(p))
}
