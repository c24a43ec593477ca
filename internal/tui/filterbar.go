package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/filter"
	"github.com/ozank/plank/internal/model"
)

// chipInputModel is the small overlay for typing a new filter chip as
// key=value (status, priority, tag, pic/member).
type chipInputModel struct {
	input textinput.Model
}

func newChipInputModel() *chipInputModel {
	ti := textinput.New()
	ti.Placeholder = "key=value, e.g. status=active or tag=frontend"
	ti.Prompt = "filter: "
	ti.CharLimit = 64
	ti.Focus()
	return &chipInputModel{input: ti}
}

// update returns the parsed chip on enter; ok stays false until then.
func (c *chipInputModel) update(msg tea.Msg) (tea.Cmd, model.FilterChip, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Enter) {
			raw := strings.TrimSpace(c.input.Value())
			k, v, found := strings.Cut(raw, "=")
			k = strings.TrimSpace(k)
			v = strings.TrimSpace(v)
			if !found || k == "" || v == "" {
				return nil, model.FilterChip{}, false
			}
			return nil, model.FilterChip{Key: k, Value: v}, true
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd, model.FilterChip{}, false
}

func (c *chipInputModel) view(width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Add Filter"),
		"",
		c.input.View(),
		"",
		mutedStyle.Render("  keys: status, priority, tag, pic/member  ·  enter: add  esc: cancel"),
	)
	return activePanelStyle.Width(width - 4).Render(content)
}

// renderFilterBar shows the active chips, view options and count badges
// above the content area.
func renderFilterBar(chips []model.FilterChip, opts model.ViewOptions, showArchived bool, counts filter.Counts, width int) string {
	var parts []string

	if len(chips) == 0 {
		parts = append(parts, mutedStyle.Render("no filters"))
	}
	for _, c := range chips {
		parts = append(parts, chipStyle.Render(fmt.Sprintf("[%s=%s]", c.Key, c.Value)))
	}

	ordering := string(opts.Ordering)
	if ordering == "" {
		ordering = string(model.OrderDefault)
	}
	parts = append(parts, badgeStyle.Render("· order:"+ordering))
	if opts.ShowClosedProjects {
		parts = append(parts, badgeStyle.Render("· closed:on"))
	}
	if showArchived {
		parts = append(parts, badgeStyle.Render("· archived:on"))
	}

	line1 := " " + strings.Join(parts, " ")
	line2 := " " + renderCountBadges(counts)

	bar := lipgloss.JoinVertical(lipgloss.Left, line1, line2)
	return lipgloss.NewStyle().Width(width).Render(bar)
}

// renderCountBadges summarizes the per-dimension tallies of what is shown.
func renderCountBadges(counts filter.Counts) string {
	var parts []string

	parts = append(parts, subtitleStyle.Render(fmt.Sprintf("%d shown", counts.Total())))

	for _, s := range model.Statuses {
		if n := counts.Status[s]; n > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(statusColor(s)).Render(fmt.Sprintf("%s:%d", s, n)))
		}
	}
	for _, p := range model.Priorities {
		if n := counts.Priority[p]; n > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(priorityColor(p)).Render(fmt.Sprintf("%s:%d", p, n)))
		}
	}

	tags := make([]string, 0, len(counts.Tag))
	for t := range counts.Tag {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	for _, t := range tags {
		parts = append(parts, badgeStyle.Render(fmt.Sprintf("#%s:%d", t, counts.Tag[t])))
	}

	members := make([]string, 0, len(counts.Member))
	for m := range counts.Member {
		members = append(members, m)
	}
	sort.Strings(members)
	for _, m := range members {
		parts = append(parts, badgeStyle.Render(fmt.Sprintf("@%s:%d", m, counts.Member[m])))
	}

	return strings.Join(parts, "  ")
}
