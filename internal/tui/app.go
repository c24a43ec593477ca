package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/export"
	"github.com/ozank/plank/internal/filter"
	"github.com/ozank/plank/internal/model"
	"github.com/ozank/plank/internal/prefs"
	"github.com/ozank/plank/internal/store"
	"github.com/ozank/plank/internal/urlfilter"
)

// App is the root Bubble Tea model. It owns the filter chips and view
// options, derives the visible project list from the store, and routes
// input to the active tab or overlay.
type App struct {
	store *store.Store
	prefs *prefs.Prefs

	width  int
	height int

	activeView viewState
	showHelp   bool

	chips        []model.FilterChip
	viewOptions  model.ViewOptions
	showArchived bool
	lastQuery    string

	derived []model.Project
	counts  filter.Counts

	list     listModel
	board    boardModel
	timeline timelineModel
	activity activityModel
	settings settingsModel

	// Overlays. Non-nil means active; pointer models keep huh field
	// bindings stable across updates.
	wizard    *wizardModel
	quick     *quickModel
	palette   *paletteModel
	details   *detailsModel
	chipInput *chipInputModel

	createPicking bool
	createCursor  int
	exportPicking bool
	exportCursor  int

	confirmDeleteID   string
	confirmDeleteName string

	help   help.Model
	status string
}

func NewApp(s *store.Store, p *prefs.Prefs, chips []model.FilterChip) App {
	applyTheme(p.Get(prefs.KeyTheme, "midnight"), p.Get(prefs.KeyAccent, ""))

	h := help.New()
	h.ShowAll = false

	a := App{
		store:       s,
		prefs:       p,
		activeView:  viewList,
		chips:       chips,
		viewOptions: model.DefaultViewOptions(),
		board:       newBoardModel(),
		timeline:    newTimelineModel(),
		settings:    newSettingsModel(p),
		help:        h,
	}
	a.recompute()
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

// recompute re-derives the visible list from the store and pushes it into
// every view model. Called after any mutation or filter change.
func (a *App) recompute() {
	a.derived = filter.Apply(a.store.Projects(), a.chips, a.viewOptions, a.showArchived)
	a.counts = filter.CountProjects(a.derived)
	a.lastQuery = urlfilter.Encode(a.chips)

	a.list.setProjects(a.derived)
	a.board.setProjects(a.derived)
	a.timeline.setProjects(a.derived)
	a.activity.setActivities(a.store.Activities())
}

// setChips replaces the chip set unless it encodes to the query already
// applied, so a round-tripped share string is a no-op.
func (a *App) setChips(chips []model.FilterChip) {
	if urlfilter.Encode(chips) == a.lastQuery {
		return
	}
	a.chips = chips
	a.recompute()
}

func (a *App) setSizes() {
	a.help.Width = a.width
	contentHeight := a.height - 6 // header + filter bar + footer
	a.list.setSize(a.width, contentHeight)
	a.board.setSize(a.width, contentHeight)
	a.timeline.setSize(a.width, contentHeight)
	a.activity.setSize(a.width, contentHeight)
	a.settings.setSize(a.width, contentHeight)
	if a.details != nil {
		a.details.setSize(a.width, contentHeight)
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.setSizes()
		return a, nil

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	return a.updateOverlayOrView(msg)
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture input before anything else.
	switch {
	case a.chipInput != nil:
		if key.Matches(msg, keys.Back) {
			a.chipInput = nil
			return a, nil
		}
		return a.updateChipInput(msg)
	case a.palette != nil:
		if key.Matches(msg, keys.Back) {
			a.palette = nil
			return a, nil
		}
		return a.updatePalette(msg)
	case a.wizard != nil:
		if key.Matches(msg, keys.Back) {
			a.wizard = nil
			return a, nil
		}
		return a.updateWizard(msg)
	case a.quick != nil:
		if key.Matches(msg, keys.Back) {
			a.quick = nil
			return a, nil
		}
		return a.updateQuick(msg)
	case a.createPicking:
		return a.updateCreatePicker(msg)
	case a.exportPicking:
		return a.updateExportPicker(msg)
	case a.confirmDeleteID != "":
		return a.updateConfirmDelete(msg)
	case a.details != nil:
		return a.updateDetails(msg)
	}

	if a.activeView == viewSettings && a.settings.formActive {
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil

	case key.Matches(msg, keys.New):
		a.createPicking = true
		a.createCursor = 0
		return a, nil

	case key.Matches(msg, keys.Palette):
		a.palette = newPaletteModel(a.derived)
		return a, nil

	case key.Matches(msg, keys.Export):
		a.exportPicking = true
		a.exportCursor = 0
		return a, nil

	case key.Matches(msg, keys.Filter):
		a.chipInput = newChipInputModel()
		return a, nil

	case key.Matches(msg, keys.ClearChips):
		a.setChips(nil)
		a.status = "Filters cleared"
		return a, nil

	case key.Matches(msg, keys.Order):
		switch a.viewOptions.Ordering {
		case model.OrderDefault:
			a.viewOptions.Ordering = model.OrderAlphabetical
		case model.OrderAlphabetical:
			a.viewOptions.Ordering = model.OrderDate
		default:
			a.viewOptions.Ordering = model.OrderDefault
		}
		a.recompute()
		a.status = "Ordering: " + string(a.viewOptions.Ordering)
		return a, nil

	case key.Matches(msg, keys.Closed):
		a.viewOptions.ShowClosedProjects = !a.viewOptions.ShowClosedProjects
		a.recompute()
		return a, nil

	case key.Matches(msg, keys.Archived):
		a.showArchived = !a.showArchived
		a.recompute()
		return a, nil

	case key.Matches(msg, keys.Share):
		q := urlfilter.Encode(a.chips)
		if q == "" {
			a.status = "Share: no filters active"
		} else {
			a.status = "Share: ?" + q
		}
		return a, nil

	case key.Matches(msg, keys.Star):
		if p, ok := a.selectedProject(); ok {
			a.store.ToggleStarProject(p.ID)
			a.recompute()
		}
		return a, nil

	case key.Matches(msg, keys.Archive):
		if p, ok := a.selectedProject(); ok {
			a.store.ToggleArchiveProject(p.ID)
			a.recompute()
		}
		return a, nil

	case key.Matches(msg, keys.Duplicate):
		if p, ok := a.selectedProject(); ok {
			a.store.DuplicateProject(p.ID)
			a.recompute()
			a.status = fmt.Sprintf("Duplicated %q", p.Name)
		}
		return a, nil

	case key.Matches(msg, keys.Delete):
		if p, ok := a.selectedProject(); ok {
			a.confirmDeleteID = p.ID
			a.confirmDeleteName = p.Name
		}
		return a, nil

	case key.Matches(msg, keys.Enter):
		if p, ok := a.selectedProject(); ok {
			a.openDetails(p.ID)
		}
		return a, nil

	case key.Matches(msg, keys.Tab1):
		a.switchTab(viewList)
		return a, nil
	case key.Matches(msg, keys.Tab2):
		a.switchTab(viewBoard)
		return a, nil
	case key.Matches(msg, keys.Tab3):
		a.switchTab(viewTimeline)
		return a, nil
	case key.Matches(msg, keys.Tab4):
		a.switchTab(viewActivity)
		return a, nil
	case key.Matches(msg, keys.Tab5):
		a.switchTab(viewSettings)
		return a, nil
	case key.Matches(msg, keys.Tab):
		a.switchTab((a.activeView + 1) % 5)
		return a, nil
	}

	return a.updateOverlayOrView(msg)
}

// switchTab changes the active tab; the first three tabs also set the
// derived view type.
func (a *App) switchTab(v viewState) {
	a.activeView = v
	switch v {
	case viewList:
		a.viewOptions.ViewType = model.ViewList
	case viewBoard:
		a.viewOptions.ViewType = model.ViewBoard
	case viewTimeline:
		a.viewOptions.ViewType = model.ViewTimeline
	}
}

// selectedProject asks the active view for its cursor position.
func (a App) selectedProject() (model.Project, bool) {
	switch a.activeView {
	case viewList:
		return a.list.selected()
	case viewBoard:
		return a.board.selected()
	case viewTimeline:
		return a.timeline.selected()
	}
	return model.Project{}, false
}

func (a *App) openDetails(id string) {
	p, ok := a.store.Find(id)
	if !ok {
		return
	}
	d := &detailsModel{project: p}
	d.setSize(a.width, a.height-6)
	a.details = d
}

func (a App) updateOverlayOrView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case a.chipInput != nil:
		return a.updateChipInput(msg)
	case a.palette != nil:
		return a.updatePalette(msg)
	case a.wizard != nil:
		return a.updateWizard(msg)
	case a.quick != nil:
		return a.updateQuick(msg)
	}

	switch a.activeView {
	case viewList:
		a.list, cmd = a.list.update(msg)
	case viewBoard:
		a.board, cmd = a.board.update(msg)
	case viewTimeline:
		a.timeline, cmd = a.timeline.update(msg)
	case viewActivity:
		a.activity, cmd = a.activity.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

// --- Overlay updates ---

func (a App) updateChipInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, chip, ok := a.chipInput.update(msg)
	if ok {
		a.chipInput = nil
		a.setChips(append(append([]model.FilterChip{}, a.chips...), chip))
		a.status = fmt.Sprintf("Filter added: %s=%s", chip.Key, chip.Value)
		return a, nil
	}
	return a, cmd
}

func (a App) updatePalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, item := a.palette.update(msg)
	if item.action == actionNone {
		return a, cmd
	}
	a.palette = nil

	switch item.action {
	case actionCreate:
		a.createPicking = true
		a.createCursor = 0
	case actionExport:
		a.exportPicking = true
		a.exportCursor = 0
	case actionToggleArchived:
		a.showArchived = !a.showArchived
		a.recompute()
	case actionToggleClosed:
		a.viewOptions.ShowClosedProjects = !a.viewOptions.ShowClosedProjects
		a.recompute()
	case actionClearFilters:
		a.setChips(nil)
		a.status = "Filters cleared"
	case actionOpenProject:
		a.openDetails(item.projectID)
	}
	return a, nil
}

func (a App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, done := a.wizard.update(msg)
	if !done {
		return a, cmd
	}
	w := a.wizard
	a.wizard = nil
	if !w.confirmed {
		a.status = "Project creation cancelled"
		return a, nil
	}
	p := w.project(a.store.NewID(), time.Now())
	a.store.AddProject(p)
	a.recompute()
	a.status = fmt.Sprintf("Created %q", p.Name)
	return a, nil
}

func (a App) updateQuick(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, done := a.quick.update(msg)
	if !done {
		return a, cmd
	}
	q := a.quick
	a.quick = nil
	p := q.project(a.store.NewID(), time.Now())
	a.store.AddProject(p)
	a.recompute()
	a.status = fmt.Sprintf("Created %q", p.Name)
	return a, nil
}

func (a App) updateCreatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.createCursor > 0 {
			a.createCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.createCursor < 1 {
			a.createCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.createPicking = false
		if a.createCursor == 0 {
			a.wizard = newWizardModel(a.store.Users())
			return a, a.wizard.init()
		}
		a.quick = newQuickModel(a.store.Users())
		return a, a.quick.init()
	case key.Matches(msg, keys.Back):
		a.createPicking = false
	}
	return a, nil
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		format := export.FormatCSV
		if a.exportCursor == 1 {
			format = export.FormatJSON
		}
		// Snapshot here, on the event loop: the store is unsynchronized
		// and the returned cmd runs on another goroutine.
		return a, doExport(format, a.store.Projects())
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		name := a.confirmDeleteName
		a.store.DeleteProject(a.confirmDeleteID)
		a.confirmDeleteID = ""
		a.confirmDeleteName = ""
		a.recompute()
		a.status = fmt.Sprintf("Deleted %q", name)
	case key.Matches(msg, keys.Back):
		a.confirmDeleteID = ""
		a.confirmDeleteName = ""
	}
	return a, nil
}

func (a App) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := a.details.project.ID
	switch {
	case key.Matches(msg, keys.Back):
		a.details = nil
	case key.Matches(msg, keys.Star):
		a.store.ToggleStarProject(id)
		a.recompute()
		a.openDetails(id)
	case key.Matches(msg, keys.Archive):
		a.store.ToggleArchiveProject(id)
		a.recompute()
		a.openDetails(id)
	case key.Matches(msg, keys.Duplicate):
		a.store.DuplicateProject(id)
		a.recompute()
		a.status = fmt.Sprintf("Duplicated %q", a.details.project.Name)
	case key.Matches(msg, keys.Delete):
		a.confirmDeleteID = id
		a.confirmDeleteName = a.details.project.Name
		a.details = nil
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

// doExport serializes an already-captured snapshot. It deliberately takes a
// slice rather than the store: the closure runs off the event loop and must
// not touch shared state.
func doExport(format export.Format, projects []model.Project) tea.Cmd {
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		path := filepath.Join(home, export.DefaultFilename(format, time.Now()))
		if err := export.To(format, projects, path); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}

// --- Rendering ---

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	filterBar := renderFilterBar(a.chips, a.viewOptions, a.showArchived, a.counts, a.width)
	footer := a.renderFooter()

	var content string
	switch {
	case a.chipInput != nil:
		content = a.chipInput.view(a.width)
	case a.palette != nil:
		content = a.palette.view(a.width)
	case a.wizard != nil:
		content = a.wizard.view(a.width)
	case a.quick != nil:
		content = a.quick.view(a.width)
	case a.createPicking:
		content = a.renderCreatePicker()
	case a.exportPicking:
		content = a.renderExportPicker()
	case a.confirmDeleteID != "":
		content = a.renderConfirmDelete()
	case a.details != nil:
		content = a.details.view()
	default:
		switch a.activeView {
		case viewList:
			content = a.list.view()
		case viewBoard:
			content = a.board.view()
		case viewTimeline:
			content = a.timeline.view()
		case viewActivity:
			content = a.activity.view()
		case viewSettings:
			content = a.settings.view()
		}
	}

	headerHeight := lipgloss.Height(header)
	barHeight := lipgloss.Height(filterBar)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - barHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, filterBar, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(th.Primary).Render("plank")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderCreatePicker() string {
	title := titleStyle.Render("New Project")
	options := []string{"Guided setup", "Quick create"}
	var rows []string
	rows = append(rows, title, "")
	for i, opt := range options {
		cursor := "  "
		style := normalItemStyle
		if i == a.createCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+opt))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: continue  esc: cancel"))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: export  esc: cancel"))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) renderConfirmDelete() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render("Delete project?"),
		"",
		titleStyle.Render("  "+a.confirmDeleteName),
		"",
		mutedStyle.Render("  enter: delete  esc: cancel"),
	)
	return activePanelStyle.Width(a.width - 4).Render(content)
}
