package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ozank/plank/internal/model"
)

// csvHeader is the fixed export contract; consumers key on these columns.
var csvHeader = []string{"ID", "Name", "Status", "Priority", "Progress", "Client", "Start Date", "End Date"}

// CSV renders one double-quoted row per project under the fixed header row.
// An empty list yields exactly the header, no trailing newline. Every data
// field is quoted, including empty ones, which is why this does not go
// through encoding/csv (it only quotes fields that need it).
func CSV(projects []model.Project) string {
	lines := make([]string, 0, len(projects)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, p := range projects {
		row := []string{
			p.ID,
			p.Name,
			string(p.Status),
			string(p.Priority),
			fmt.Sprintf("%d%%", p.Progress),
			p.Client,
			isoDate(p.StartDate),
			isoDate(p.EndDate),
		}
		for j, cell := range row {
			row[j] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

// WriteCSV writes the CSV rendering to w.
func WriteCSV(w io.Writer, projects []model.Project) error {
	_, err := io.WriteString(w, CSV(projects))
	return err
}

// ToCSV writes the export artifact to path.
func ToCSV(projects []model.Project, path string) error {
	if err := os.WriteFile(path, []byte(CSV(projects)), 0o644); err != nil {
		return fmt.Errorf("write csv file: %w", err)
	}
	return nil
}
