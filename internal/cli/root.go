// Package cli wires the cobra command tree. A bare invocation starts the
// interactive dashboard; subcommands exist for scripting (headless export).
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ozank/plank/internal/export"
	"github.com/ozank/plank/internal/filter"
	"github.com/ozank/plank/internal/model"
	"github.com/ozank/plank/internal/prefs"
	"github.com/ozank/plank/internal/store"
	"github.com/ozank/plank/internal/tui"
	"github.com/ozank/plank/internal/urlfilter"
)

var version = "dev"

// NewRootCmd builds the plank command tree.
func NewRootCmd() *cobra.Command {
	var filterQuery string

	cmd := &cobra.Command{
		Use:          "plank",
		Short:        "Terminal project-management dashboard",
		SilenceUsage: true,
		Example: `  # Start the dashboard
  plank

  # Start with filters applied (same syntax as the share string)
  plank --filter "status=active&tag=frontend"

  # Headless export
  plank export --format csv --out projects.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(filterQuery)
		},
	}

	cmd.PersistentFlags().StringVar(&filterQuery, "filter", "", "initial filter chips as a query string")

	cmd.AddCommand(newExportCmd(&filterQuery))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the plank version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "plank "+version)
		},
	})

	return cmd
}

func runDashboard(filterQuery string) error {
	s := store.New()

	// Preferences are best effort: a broken config dir must not keep the
	// dashboard from starting.
	var pr *prefs.Prefs
	if path, err := prefs.DefaultPath(); err == nil {
		if opened, err := prefs.Open(path); err == nil {
			pr = opened
		}
	}
	if pr == nil {
		mem, err := prefs.OpenMemory()
		if err != nil {
			return fmt.Errorf("open preferences: %w", err)
		}
		pr = mem
	}
	defer pr.Close()

	chips := urlfilter.Decode(filterQuery)

	app := tui.NewApp(s, pr, chips)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func newExportCmd(filterQuery *string) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the project catalog to JSON or CSV without the TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := export.Format(format)
			if f != export.FormatJSON && f != export.FormatCSV {
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}

			s := store.New()
			projects := s.Projects()
			if *filterQuery != "" {
				chips := urlfilter.Decode(*filterQuery)
				opts := model.DefaultViewOptions()
				opts.ShowClosedProjects = true
				projects = filter.Apply(projects, chips, opts, true)
			}

			path := out
			if path == "" {
				path = export.DefaultFilename(f, nowFunc())
			}
			if err := export.To(f, projects, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d projects to %s\n", len(projects), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "export format: json or csv")
	cmd.Flags().StringVar(&out, "out", "", "output path (default projects-export-<date>.<format>)")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
