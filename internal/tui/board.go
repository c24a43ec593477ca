package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/model"
)

// boardModel renders the derived list as status columns. Column membership
// is recomputed from the pushed slice; the board never reorders projects
// itself, so pipeline ordering carries through within each column.
type boardModel struct {
	columns [][]model.Project
	col     int
	row     int
	width   int
	height  int
}

func newBoardModel() boardModel {
	return boardModel{columns: make([][]model.Project, len(model.Statuses))}
}

func (b *boardModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b *boardModel) setProjects(projects []model.Project) {
	cols := make([][]model.Project, len(model.Statuses))
	index := map[model.Status]int{}
	for i, s := range model.Statuses {
		index[s] = i
	}
	for _, p := range projects {
		i, ok := index[p.Status]
		if !ok {
			continue
		}
		cols[i] = append(cols[i], p)
	}
	b.columns = cols
	b.clampCursor()
}

func (b *boardModel) clampCursor() {
	if b.col >= len(b.columns) {
		b.col = max(0, len(b.columns)-1)
	}
	if b.col < 0 {
		b.col = 0
	}
	if len(b.columns) == 0 {
		b.row = 0
		return
	}
	if b.row >= len(b.columns[b.col]) {
		b.row = max(0, len(b.columns[b.col])-1)
	}
}

func (b boardModel) selected() (model.Project, bool) {
	if b.col < 0 || b.col >= len(b.columns) {
		return model.Project{}, false
	}
	col := b.columns[b.col]
	if b.row < 0 || b.row >= len(col) {
		return model.Project{}, false
	}
	return col[b.row], true
}

func (b boardModel) update(msg tea.Msg) (boardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Left):
			if b.col > 0 {
				b.col--
				b.clampCursor()
			}
		case key.Matches(msg, keys.Right):
			if b.col < len(b.columns)-1 {
				b.col++
				b.clampCursor()
			}
		case key.Matches(msg, keys.Up):
			if b.row > 0 {
				b.row--
			}
		case key.Matches(msg, keys.Down):
			if b.col < len(b.columns) && b.row < len(b.columns[b.col])-1 {
				b.row++
			}
		}
	}
	return b, nil
}

func (b boardModel) view() string {
	colWidth := (b.width - 6) / len(model.Statuses)
	if colWidth < 14 {
		colWidth = 14
	}
	inner := colWidth - 4

	var rendered []string
	for i, status := range model.Statuses {
		var lines []string
		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(statusColor(status)).
			Render(fmt.Sprintf("%s (%d)", status, len(b.columns[i])))
		lines = append(lines, header, "")

		if len(b.columns[i]) == 0 {
			lines = append(lines, mutedStyle.Render("—"))
		}
		for j, p := range b.columns[i] {
			style := normalItemStyle
			prefix := "  "
			if i == b.col && j == b.row {
				style = selectedItemStyle
				prefix = "> "
			}
			star := ""
			if p.Starred {
				star = starStyle.Render("★") + " "
			}
			lines = append(lines, style.Render(prefix+star+truncate(p.Name, inner-3)))
			lines = append(lines, mutedStyle.Render("  "+priorityBadge(p.Priority)+" "+fmt.Sprintf("%d%%", p.Progress)))
		}

		box := panelStyle
		if i == b.col {
			box = activePanelStyle
		}
		rendered = append(rendered, box.Width(colWidth).Render(strings.Join(lines, "\n")))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
