package tui

import (
	"fmt"
	"time"
)

// viewState represents the currently active tab. The first three map onto
// ViewOptions.ViewType; activity and settings are ancillary tabs.
type viewState int

const (
	viewList viewState = iota
	viewBoard
	viewTimeline
	viewActivity
	viewSettings
)

var viewNames = []string{"Projects", "Board", "Timeline", "Activity", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func truncate(s string, n int) string {
	if n <= 1 || len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// progressBar renders a fixed-width bar like ▰▰▰▱▱▱▱▱▱▱ 30%.
func progressBar(percent, width int) string {
	if width < 1 {
		width = 1
	}
	filled := percent * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "▰"
		} else {
			bar += "▱"
		}
	}
	return fmt.Sprintf("%s %3d%%", bar, percent)
}
