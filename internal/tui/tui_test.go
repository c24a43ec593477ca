package tui

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ozank/plank/internal/export"
	"github.com/ozank/plank/internal/filter"
	"github.com/ozank/plank/internal/model"
	"github.com/ozank/plank/internal/prefs"
	"github.com/ozank/plank/internal/store"
)

func newTestApp(t *testing.T, s *store.Store, chips []model.FilterChip) App {
	t.Helper()
	p, err := prefs.OpenMemory()
	if err != nil {
		t.Fatalf("open memory prefs: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return NewApp(s, p, chips)
}

func testProject(id, name string, status model.Status) model.Project {
	return model.Project{
		ID:       id,
		Name:     name,
		Status:   status,
		Priority: model.PriorityMedium,
	}
}

// ============================================================
// Root app
// ============================================================

func TestNewAppDerivesFromChips(t *testing.T) {
	s := store.Empty()
	s.AddProject(testProject("p1", "Alpha", model.StatusActive))
	s.AddProject(testProject("p2", "Beta", model.StatusPlanned))

	a := newTestApp(t, s, []model.FilterChip{{Key: "status", Value: "active"}})

	if len(a.derived) != 1 || a.derived[0].ID != "p1" {
		t.Fatalf("expected derived [p1], got %v", a.derived)
	}
	if a.counts.Total() != 1 {
		t.Fatalf("counts must follow the derived list, got %d", a.counts.Total())
	}
}

func TestAppRecomputeAfterMutation(t *testing.T) {
	s := store.Empty()
	s.AddProject(testProject("p1", "Alpha", model.StatusActive))

	a := newTestApp(t, s, nil)
	if len(a.derived) != 1 {
		t.Fatalf("expected 1 derived project, got %d", len(a.derived))
	}

	s.DeleteProject("p1")
	a.recompute()
	if len(a.derived) != 0 {
		t.Fatalf("expected empty derived list after delete, got %d", len(a.derived))
	}
}

func TestAppSetChipsEchoGuard(t *testing.T) {
	s := store.Empty()
	a := newTestApp(t, s, []model.FilterChip{
		{Key: "status", Value: "active"},
		{Key: "tag", Value: "frontend"},
	})

	before := append([]model.FilterChip(nil), a.chips...)

	// Same multiset in a different order encodes identically and is dropped.
	a.setChips([]model.FilterChip{
		{Key: "tag", Value: "frontend"},
		{Key: "status", Value: "active"},
	})
	if !reflect.DeepEqual(a.chips, before) {
		t.Fatal("an echoed chip set must not replace the applied one")
	}

	a.setChips([]model.FilterChip{{Key: "status", Value: "planned"}})
	if len(a.chips) != 1 || a.chips[0].Value != "planned" {
		t.Fatalf("a genuinely new chip set must apply, got %v", a.chips)
	}
}

func TestAppSwitchTabSetsViewType(t *testing.T) {
	s := store.Empty()
	a := newTestApp(t, s, nil)

	a.switchTab(viewBoard)
	if a.activeView != viewBoard || a.viewOptions.ViewType != model.ViewBoard {
		t.Fatalf("board tab must set board view type, got %v/%v", a.activeView, a.viewOptions.ViewType)
	}

	a.switchTab(viewSettings)
	if a.viewOptions.ViewType != model.ViewBoard {
		t.Fatal("ancillary tabs must not change the view type")
	}
}

// The export cmd runs off the event loop, so it must serialize the snapshot
// it was handed, never re-read the unsynchronized store.
func TestExportUsesCapturedSnapshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s := store.Empty()
	s.AddProject(testProject("p1", "Before", model.StatusActive))

	cmd := doExport(export.FormatCSV, s.Projects())

	renamed := "After"
	s.UpdateProject("p1", store.ProjectUpdate{Name: &renamed})

	msg, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatalf("expected exportDoneMsg, got %T", msg)
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"Before"`) {
		t.Fatalf("artifact must hold the snapshot taken at export time, got %s", data)
	}
	if strings.Contains(string(data), `"After"`) {
		t.Fatal("artifact must not see mutations made after the snapshot")
	}
}

// ============================================================
// List and board models
// ============================================================

func TestListModelSelection(t *testing.T) {
	var l listModel
	if _, ok := l.selected(); ok {
		t.Fatal("empty list must have no selection")
	}

	l.setProjects([]model.Project{
		testProject("p1", "Alpha", model.StatusActive),
		testProject("p2", "Beta", model.StatusActive),
	})
	p, ok := l.selected()
	if !ok || p.ID != "p1" {
		t.Fatalf("expected first project selected, got %v", p.ID)
	}

	// Cursor clamps when the list shrinks under it.
	l.cursor = 1
	l.setProjects([]model.Project{testProject("p1", "Alpha", model.StatusActive)})
	p, ok = l.selected()
	if !ok || p.ID != "p1" {
		t.Fatalf("cursor must clamp to the shrunk list, got %v", p.ID)
	}
}

func TestBoardModelColumns(t *testing.T) {
	b := newBoardModel()
	b.setProjects([]model.Project{
		testProject("p1", "Alpha", model.StatusActive),
		testProject("p2", "Beta", model.StatusActive),
		testProject("p3", "Gamma", model.StatusBacklog),
	})

	if len(b.columns) != len(model.Statuses) {
		t.Fatalf("expected one column per status, got %d", len(b.columns))
	}
	if len(b.columns[0]) != 1 { // backlog
		t.Fatalf("expected 1 backlog project, got %d", len(b.columns[0]))
	}
	if len(b.columns[2]) != 2 { // active
		t.Fatalf("expected 2 active projects, got %d", len(b.columns[2]))
	}

	p, ok := b.selected()
	if !ok || p.ID != "p3" {
		t.Fatalf("expected first column's project selected, got %v", p.ID)
	}
}

// ============================================================
// Palette
// ============================================================

func TestPaletteFiltering(t *testing.T) {
	pm := newPaletteModel([]model.Project{
		testProject("p1", "Atlas Redesign", model.StatusActive),
		testProject("p2", "Billing Revamp", model.StatusActive),
	})

	// No query shows commands plus one entry per project.
	if got := len(pm.filtered()); got != 7 {
		t.Fatalf("expected 5 commands + 2 projects, got %d", got)
	}

	pm.input.SetValue("atlas")
	items := pm.filtered()
	if len(items) != 1 || items[0].action != actionOpenProject || items[0].projectID != "p1" {
		t.Fatalf("expected the Atlas open entry, got %v", items)
	}

	pm.input.SetValue("export")
	items = pm.filtered()
	if len(items) != 1 || items[0].action != actionExport {
		t.Fatalf("expected the export command, got %v", items)
	}
}

func TestPaletteViewScrollsWithCursor(t *testing.T) {
	projects := make([]model.Project, 15)
	for i := range projects {
		projects[i] = testProject(fmt.Sprintf("p%d", i+1), fmt.Sprintf("Project %02d", i+1), model.StatusActive)
	}
	pm := newPaletteModel(projects)
	pm.input.SetValue("open:") // narrows to the 15 project entries

	pm.cursor = 12
	out := pm.view(80)

	if !strings.Contains(out, "> Open: Project 13") {
		t.Fatalf("selected row must stay visible when the cursor passes the window:\n%s", out)
	}
	if strings.Contains(out, "Open: Project 01") {
		t.Fatal("rows above the scrolled window must not render")
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsSavePersists(t *testing.T) {
	p, err := prefs.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { p.Close() })

	sm := newSettingsModel(p)
	*sm.theme = "paper"

	msg, ok := sm.save()().(statusMsg)
	if !ok || msg.isError {
		t.Fatalf("expected success status, got %+v", msg)
	}
	if msg.text != "Preferences saved" {
		t.Fatalf("unexpected status %q", msg.text)
	}
	if got := p.Get(prefs.KeyTheme, ""); got != "paper" {
		t.Fatalf("theme not persisted, got %q", got)
	}
}

func TestSettingsSaveReportsWriteFailure(t *testing.T) {
	p, err := prefs.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	sm := newSettingsModel(p)
	p.Close() // every Set from here on fails

	msg, ok := sm.save()().(statusMsg)
	if !ok {
		t.Fatalf("expected a status message, got %T", msg)
	}
	if !msg.isError {
		t.Fatal("a failed write must not report success")
	}
	if !strings.Contains(msg.text, "Could not save preferences") {
		t.Fatalf("unexpected status %q", msg.text)
	}
}

// ============================================================
// Filter bar
// ============================================================

func TestCountBadgesIncludeMembers(t *testing.T) {
	c := filter.CountProjects([]model.Project{
		{ID: "a", Status: model.StatusActive, Priority: model.PriorityMedium, Members: []string{"Sarah Chen"}},
		{ID: "b", Status: model.StatusActive, Priority: model.PriorityMedium, Members: []string{"Sarah Chen", "Marcus Rodriguez"}},
	})

	out := renderCountBadges(c)
	if !strings.Contains(out, "@Sarah Chen:2") {
		t.Fatalf("member tallies must render, got %q", out)
	}
	if !strings.Contains(out, "@Marcus Rodriguez:1") {
		t.Fatalf("member tallies must render, got %q", out)
	}
}

// ============================================================
// Project creation forms
// ============================================================

func TestWizardProjectDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := newWizardModel(nil)
	w.name = "New Initiative"

	p := w.project("id-1", now)

	if p.ID != "id-1" || p.Name != "New Initiative" {
		t.Fatalf("unexpected identity: %+v", p)
	}
	if !p.StartDate.Equal(now) {
		t.Fatalf("blank start date must default to now, got %v", p.StartDate)
	}
	if !p.EndDate.Equal(now.Add(30 * 24 * time.Hour)) {
		t.Fatalf("blank end date must default 30 days out, got %v", p.EndDate)
	}
	if p.DurationLabel != "TBD" || p.Progress != 0 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.TaskCount != 0 || len(p.Tasks) != 0 {
		t.Fatalf("no starter tasks requested: %+v", p)
	}
}

func TestWizardStarterTasksSetCountOnly(t *testing.T) {
	w := newWizardModel(nil)
	w.name = "Seeded"
	w.starterTasks = true

	p := w.project("id-1", time.Now())

	if p.TaskCount != 3 {
		t.Fatalf("starter tasks must set the count to 3, got %d", p.TaskCount)
	}
	if len(p.Tasks) != 0 {
		t.Fatalf("the embedded task list must stay empty, got %d", len(p.Tasks))
	}
}

func TestWizardMembersConcatenateRoles(t *testing.T) {
	w := newWizardModel(nil)
	w.owners = []string{"Ada"}
	w.contributors = []string{"Grace", "Edsger"}
	w.stakeholders = []string{"Barbara"}

	p := w.project("id-1", time.Now())
	want := []string{"Ada", "Grace", "Edsger", "Barbara"}
	if !reflect.DeepEqual(p.Members, want) {
		t.Fatalf("expected %v, got %v", want, p.Members)
	}
}

func TestQuickProjectDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	q := newQuickModel([]model.User{{Name: "Sarah Chen"}})

	p := q.project("id-1", now)

	if p.Name != "Untitled Project" {
		t.Fatalf("blank title must become Untitled Project, got %q", p.Name)
	}
	if p.TypeLabel != "Quick" || p.DurationLabel != "2-week" {
		t.Fatalf("unexpected labels: %+v", p)
	}
	if !p.EndDate.Equal(p.StartDate.Add(14 * 24 * time.Hour)) {
		t.Fatalf("end must be 14 days after start, got %v", p.EndDate)
	}
	if p.TaskCount != 0 {
		t.Fatalf("quick create starts with no tasks, got %d", p.TaskCount)
	}
	if !reflect.DeepEqual(p.Members, []string{"Sarah Chen"}) {
		t.Fatalf("expected the default owner as sole member, got %v", p.Members)
	}
	if !reflect.DeepEqual(p.Tags, []string{"frontend"}) {
		t.Fatalf("expected the default tag, got %v", p.Tags)
	}
}

func TestQuickProjectExplicitStartDate(t *testing.T) {
	q := newQuickModel(nil)
	q.startDate = "2025-07-01"

	p := q.project("id-1", time.Now())
	want := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	if !p.StartDate.Equal(want) {
		t.Fatalf("expected parsed start date %v, got %v", want, p.StartDate)
	}
}

// ============================================================
// Helpers
// ============================================================

func TestParseDate(t *testing.T) {
	if _, ok := parseDate(""); ok {
		t.Fatal("blank input must not parse")
	}
	if _, ok := parseDate("07/01/2025"); ok {
		t.Fatal("non-ISO input must not parse")
	}
	got, ok := parseDate(" 2025-07-01 ")
	if !ok || !got.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected trimmed ISO date to parse, got %v", got)
	}
}

func TestSplitTags(t *testing.T) {
	got := splitTags(" frontend, design ,,mobile ")
	want := []string{"frontend", "design", "mobile"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if splitTags("  ") != nil {
		t.Fatal("blank input must yield nil")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("short strings pass through, got %q", got)
	}
	if got := truncate("a very long project name", 10); got != "a very lo…" {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{49 * time.Hour, "2d ago"},
	}
	for _, c := range cases {
		if got := relativeTime(now.Add(-c.ago), now); got != c.want {
			t.Fatalf("relativeTime(-%v) = %q, want %q", c.ago, got, c.want)
		}
	}
}
