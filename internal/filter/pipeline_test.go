package filter

import (
	"reflect"
	"testing"
	"time"

	"github.com/ozank/plank/internal/model"
)

func proj(id, name string, status model.Status, opts ...func(*model.Project)) model.Project {
	p := model.Project{
		ID:       id,
		Name:     name,
		Status:   status,
		Priority: model.PriorityMedium,
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

func withPriority(pr model.Priority) func(*model.Project) {
	return func(p *model.Project) { p.Priority = pr }
}

func withTags(tags ...string) func(*model.Project) {
	return func(p *model.Project) { p.Tags = tags }
}

func withMembers(members ...string) func(*model.Project) {
	return func(p *model.Project) { p.Members = members }
}

func withEnd(t time.Time) func(*model.Project) {
	return func(p *model.Project) { p.EndDate = t }
}

func starred(p *model.Project) { p.Starred = true }

func archived(p *model.Project) { p.Archived = true }

func ids(projects []model.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func opts(mut ...func(*model.ViewOptions)) model.ViewOptions {
	o := model.DefaultViewOptions()
	for _, m := range mut {
		m(&o)
	}
	return o
}

func showClosed(o *model.ViewOptions) { o.ShowClosedProjects = true }

func ordered(ord model.Ordering) func(*model.ViewOptions) {
	return func(o *model.ViewOptions) { o.Ordering = ord }
}

// ============================================================
// Gates
// ============================================================

func TestApplyHidesClosedByDefault(t *testing.T) {
	projects := []model.Project{
		proj("a", "Active", model.StatusActive),
		proj("b", "Done", model.StatusCompleted),
		proj("c", "Dropped", model.StatusCancelled),
	}

	got := Apply(projects, nil, opts(), false)
	if !reflect.DeepEqual(ids(got), []string{"a"}) {
		t.Fatalf("expected [a], got %v", ids(got))
	}

	got = Apply(projects, nil, opts(showClosed), false)
	if !reflect.DeepEqual(ids(got), []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c] with closed shown, got %v", ids(got))
	}
}

func TestApplyArchivedGate(t *testing.T) {
	projects := []model.Project{
		proj("a", "Live", model.StatusActive),
		proj("b", "Shelved", model.StatusActive, archived),
	}

	got := Apply(projects, nil, opts(), false)
	if !reflect.DeepEqual(ids(got), []string{"a"}) {
		t.Fatalf("expected archived hidden, got %v", ids(got))
	}

	got = Apply(projects, nil, opts(), true)
	if !reflect.DeepEqual(ids(got), []string{"a", "b"}) {
		t.Fatalf("expected archived shown, got %v", ids(got))
	}
}

func TestApplyArchivedGateRunsBeforeChips(t *testing.T) {
	projects := []model.Project{
		proj("a", "Shelved", model.StatusActive, archived, withTags("frontend")),
	}
	chips := []model.FilterChip{{Key: "tag", Value: "frontend"}}

	if got := Apply(projects, chips, opts(), false); len(got) != 0 {
		t.Fatalf("archived project must not survive via matching chips, got %v", ids(got))
	}
}

// ============================================================
// Chip semantics
// ============================================================

func TestApplyStatusChipsORWithin(t *testing.T) {
	projects := []model.Project{
		proj("a", "One", model.StatusActive),
		proj("b", "Two", model.StatusPlanned),
		proj("c", "Three", model.StatusBacklog),
	}
	chips := []model.FilterChip{
		{Key: "status", Value: "active"},
		{Key: "status", Value: "planned"},
	}

	got := Apply(projects, chips, opts(), false)
	if !reflect.DeepEqual(ids(got), []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", ids(got))
	}
}

func TestApplyChipsANDAcrossDimensions(t *testing.T) {
	projects := []model.Project{
		proj("a", "One", model.StatusActive, withTags("frontend")),
		proj("b", "Two", model.StatusActive, withTags("backend")),
		proj("c", "Three", model.StatusPlanned, withTags("frontend")),
	}
	chips := []model.FilterChip{
		{Key: "status", Value: "active"},
		{Key: "tag", Value: "frontend"},
	}

	got := Apply(projects, chips, opts(), false)
	if !reflect.DeepEqual(ids(got), []string{"a"}) {
		t.Fatalf("status AND tag should leave [a], got %v", ids(got))
	}
}

func TestApplyChipKeysAreCaseInsensitivePrefixes(t *testing.T) {
	projects := []model.Project{
		proj("a", "One", model.StatusActive, withPriority(model.PriorityUrgent)),
		proj("b", "Two", model.StatusActive),
	}
	chips := []model.FilterChip{{Key: "Priorities", Value: "URGENT"}}

	got := Apply(projects, chips, opts(), false)
	if !reflect.DeepEqual(ids(got), []string{"a"}) {
		t.Fatalf("prefix key and mixed-case value must match, got %v", ids(got))
	}
}

func TestApplyMemberChipSubstringMatch(t *testing.T) {
	projects := []model.Project{
		proj("a", "One", model.StatusActive, withMembers("Sarah Chen")),
		proj("b", "Two", model.StatusActive, withMembers("Marcus Rodriguez")),
	}

	for _, key := range []string{"pic", "member", "members"} {
		chips := []model.FilterChip{{Key: key, Value: "sarah"}}
		got := Apply(projects, chips, opts(), false)
		if !reflect.DeepEqual(ids(got), []string{"a"}) {
			t.Fatalf("key %q: expected substring member match [a], got %v", key, ids(got))
		}
	}
}

func TestApplyUnknownChipKeyIgnored(t *testing.T) {
	projects := []model.Project{proj("a", "One", model.StatusActive)}
	chips := []model.FilterChip{{Key: "flavor", Value: "vanilla"}}

	got := Apply(projects, chips, opts(), false)
	if !reflect.DeepEqual(ids(got), []string{"a"}) {
		t.Fatalf("unknown chip keys must not filter anything, got %v", ids(got))
	}
}

// ============================================================
// Ordering and starred partition
// ============================================================

func TestApplyAlphabeticalOrdering(t *testing.T) {
	projects := []model.Project{
		proj("b", "banana", model.StatusActive),
		proj("a", "Apple", model.StatusActive),
		proj("c", "cherry", model.StatusActive),
	}

	got := Apply(projects, nil, opts(ordered(model.OrderAlphabetical)), false)
	if !reflect.DeepEqual(ids(got), []string{"a", "b", "c"}) {
		t.Fatalf("expected case-insensitive alphabetical [a b c], got %v", ids(got))
	}
}

func TestApplyDateOrderingZeroFirst(t *testing.T) {
	projects := []model.Project{
		proj("late", "Late", model.StatusActive, withEnd(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))),
		proj("early", "Early", model.StatusActive, withEnd(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))),
		proj("none", "Undated", model.StatusActive),
	}

	got := Apply(projects, nil, opts(ordered(model.OrderDate)), false)
	if !reflect.DeepEqual(ids(got), []string{"none", "early", "late"}) {
		t.Fatalf("missing end date must sort first, got %v", ids(got))
	}
}

func TestApplyStarredFirstIsStable(t *testing.T) {
	projects := []model.Project{
		proj("a", "Zulu", model.StatusActive),
		proj("b", "Alpha", model.StatusActive, starred),
		proj("c", "Mike", model.StatusActive),
		proj("d", "Bravo", model.StatusActive, starred),
	}

	// Default ordering: starred keep insertion order, then the rest.
	got := Apply(projects, nil, opts(), false)
	if !reflect.DeepEqual(ids(got), []string{"b", "d", "a", "c"}) {
		t.Fatalf("expected stable starred-first [b d a c], got %v", ids(got))
	}

	// Starred-first applies after alphabetical ordering too.
	got = Apply(projects, nil, opts(ordered(model.OrderAlphabetical)), false)
	if !reflect.DeepEqual(ids(got), []string{"b", "d", "c", "a"}) {
		t.Fatalf("expected alphabetical within each half [b d c a], got %v", ids(got))
	}
}

func TestApplyIsPureAndIdempotent(t *testing.T) {
	projects := []model.Project{
		proj("a", "Zulu", model.StatusActive, starred),
		proj("b", "Alpha", model.StatusCompleted),
		proj("c", "Mike", model.StatusActive, withTags("frontend")),
	}
	chips := []model.FilterChip{{Key: "status", Value: "active"}}
	o := opts(ordered(model.OrderAlphabetical))

	input := append([]model.Project(nil), projects...)

	first := Apply(projects, chips, o, false)
	second := Apply(projects, chips, o, false)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs must produce identical output")
	}
	if !reflect.DeepEqual(projects, input) {
		t.Fatal("Apply must not mutate its input slice")
	}

	// Re-applying to its own output changes nothing.
	again := Apply(first, chips, o, false)
	if !reflect.DeepEqual(first, again) {
		t.Fatal("Apply must be idempotent on its own output")
	}
}
