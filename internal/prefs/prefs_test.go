package prefs

import (
	"path/filepath"
	"testing"
)

func newTestPrefs(t *testing.T) *Prefs {
	t.Helper()
	p, err := OpenMemory()
	if err != nil {
		t.Fatalf("open memory prefs: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestMigrateSeedsDefaults(t *testing.T) {
	p := newTestPrefs(t)

	var version int
	p.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}

	if got := p.Get(KeyTheme, ""); got != "midnight" {
		t.Fatalf("expected seeded theme 'midnight', got %q", got)
	}
	if got := p.Get(KeyAccent, ""); got != "#6C63FF" {
		t.Fatalf("expected seeded accent, got %q", got)
	}
}

func TestGetFallback(t *testing.T) {
	p := newTestPrefs(t)
	if got := p.Get("nonexistent", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for unset key, got %q", got)
	}
}

func TestSetUpserts(t *testing.T) {
	p := newTestPrefs(t)

	if err := p.Set(KeyTheme, "paper"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := p.Get(KeyTheme, ""); got != "paper" {
		t.Fatalf("expected 'paper', got %q", got)
	}

	if err := p.Set(KeyTheme, "midnight"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := p.Get(KeyTheme, ""); got != "midnight" {
		t.Fatalf("expected overwrite to 'midnight', got %q", got)
	}
}

func TestAll(t *testing.T) {
	p := newTestPrefs(t)
	p.Set("custom", "value")

	all, err := p.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if all[KeyTheme] != "midnight" || all["custom"] != "value" {
		t.Fatalf("unexpected prefs map: %v", all)
	}
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "plank.db")

	p, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := p.Set(KeyTheme, "paper"); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	p2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer p2.Close()
	if got := p2.Get(KeyTheme, ""); got != "paper" {
		t.Fatalf("expected persisted theme 'paper', got %q", got)
	}
}

func TestOpenRefusesSecondInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plank.db")

	p, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer p.Close()

	if _, err := Open(path); err == nil {
		t.Fatal("second open on the same path must fail while the lock is held")
	}
}
