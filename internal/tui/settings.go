package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozank/plank/internal/prefs"
)

// settingsModel edits the persisted preferences. Theme changes apply
// immediately and survive restarts; everything else in the app resets with
// the process.
type settingsModel struct {
	prefs  *prefs.Prefs
	width  int
	height int

	formActive bool
	form       *huh.Form

	theme  *string
	accent *string
}

func newSettingsModel(p *prefs.Prefs) settingsModel {
	theme := p.Get(prefs.KeyTheme, "midnight")
	accent := p.Get(prefs.KeyAccent, accentColors[0])
	return settingsModel{
		prefs:  p,
		theme:  &theme,
		accent: &accent,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	themeOptions := make([]huh.Option[string], len(ThemeNames))
	for i, name := range ThemeNames {
		themeOptions[i] = huh.NewOption(name, name)
	}
	accentOptions := make([]huh.Option[string], len(accentColors))
	for i, c := range accentColors {
		accentOptions[i] = huh.NewOption("● "+c, c)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").Options(themeOptions...).Value(s.theme),
			huh.NewSelect[string]().Title("Accent").Options(accentOptions...).Value(s.accent),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.save()
	}

	return s, cmd
}

// save persists the chosen theme and accent. The theme still applies for the
// session when the write fails, but the status must not claim success.
func (s settingsModel) save() tea.Cmd {
	err := s.prefs.Set(prefs.KeyTheme, *s.theme)
	if err2 := s.prefs.Set(prefs.KeyAccent, *s.accent); err == nil {
		err = err2
	}
	applyTheme(*s.theme, *s.accent)

	if err != nil {
		return func() tea.Msg {
			return statusMsg{text: "Could not save preferences: " + err.Error(), isError: true}
		}
	}
	return func() tea.Msg {
		return statusMsg{text: "Preferences saved"}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Settings"),
			"",
			s.form.View(),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")
	rows = append(rows, kv("Theme", *s.theme))
	rows = append(rows, kv("Accent", *s.accent))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  Preferences persist across restarts; project data always"))
	rows = append(rows, mutedStyle.Render("  resets to the seed catalog."))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: edit"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
