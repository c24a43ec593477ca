package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

// paletteAction identifies what a palette entry does when selected.
type paletteAction int

const (
	actionNone paletteAction = iota
	actionCreate
	actionExport
	actionToggleArchived
	actionToggleClosed
	actionClearFilters
	actionOpenProject
)

type paletteItem struct {
	label     string
	action    paletteAction
	projectID string
}

// paletteModel is the command palette: a text input over a merged list of
// commands and projects, filtered by case-insensitive substring match.
type paletteModel struct {
	input  textinput.Model
	items  []paletteItem
	cursor int
}

func newPaletteModel(projects []model.Project) *paletteModel {
	ti := textinput.New()
	ti.Placeholder = "Type a command or project name…"
	ti.Prompt = "» "
	ti.CharLimit = 64
	ti.Focus()

	items := []paletteItem{
		{label: "Create New Project", action: actionCreate},
		{label: "Export Projects", action: actionExport},
		{label: "Toggle Archived Projects", action: actionToggleArchived},
		{label: "Toggle Closed Projects", action: actionToggleClosed},
		{label: "Clear Filters", action: actionClearFilters},
	}
	for _, p := range projects {
		items = append(items, paletteItem{
			label:     "Open: " + p.Name,
			action:    actionOpenProject,
			projectID: p.ID,
		})
	}

	return &paletteModel{input: ti, items: items}
}

func (pm *paletteModel) filtered() []paletteItem {
	q := strings.ToLower(strings.TrimSpace(pm.input.Value()))
	if q == "" {
		return pm.items
	}
	var out []paletteItem
	for _, it := range pm.items {
		if strings.Contains(strings.ToLower(it.label), q) {
			out = append(out, it)
		}
	}
	return out
}

// update handles one message; the second return is the chosen item, with
// action == actionNone until the user confirms a selection.
func (pm *paletteModel) update(msg tea.Msg) (tea.Cmd, paletteItem) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if pm.cursor > 0 {
				pm.cursor--
			}
			return nil, paletteItem{}
		case key.Matches(msg, keys.Down):
			if pm.cursor < len(pm.filtered())-1 {
				pm.cursor++
			}
			return nil, paletteItem{}
		case key.Matches(msg, keys.Enter):
			items := pm.filtered()
			if pm.cursor < len(items) {
				return nil, items[pm.cursor]
			}
			return nil, paletteItem{}
		}
	}

	var cmd tea.Cmd
	pm.input, cmd = pm.input.Update(msg)
	// Keep the cursor in range as the query narrows.
	if n := len(pm.filtered()); pm.cursor >= n {
		pm.cursor = max(0, n-1)
	}
	return cmd, paletteItem{}
}

func (pm *paletteModel) view(width int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Command Palette"))
	rows = append(rows, "")
	rows = append(rows, pm.input.View())
	rows = append(rows, "")

	items := pm.filtered()
	if len(items) == 0 {
		rows = append(rows, mutedStyle.Render("  No matches"))
	}
	// Scroll a 10-row window with the cursor so the selection stays visible.
	const maxRows = 10
	start := 0
	if pm.cursor >= maxRows {
		start = pm.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(items) {
		end = len(items)
	}
	for i := start; i < end; i++ {
		cursor := "  "
		style := normalItemStyle
		if i == pm.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+items[i].label))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: run  esc: close"))

	return activePanelStyle.Width(width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
