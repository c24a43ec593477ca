package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ozank/plank/internal/model"
)

// JSON renders the full project array pretty-printed. Dates serialize as
// RFC 3339 via time.Time's default marshalling.
func JSON(projects []model.Project) ([]byte, error) {
	if projects == nil {
		projects = []model.Project{}
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal projects: %w", err)
	}
	return data, nil
}

// ToJSON writes the export artifact to path.
func ToJSON(projects []model.Project, path string) error {
	data, err := JSON(projects)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// Format is an export format selector.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// DefaultFilename returns the dated artifact name, e.g.
// projects-export-2026-08-28.json.
func DefaultFilename(format Format, now time.Time) string {
	return fmt.Sprintf("projects-export-%s.%s", now.Format("2006-01-02"), format)
}

// To writes the project list to path in the given format.
func To(format Format, projects []model.Project, path string) error {
	switch format {
	case FormatCSV:
		return ToCSV(projects, path)
	default:
		return ToJSON(projects, path)
	}
}

func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
