// Package filter derives the rendered project list from the store's output.
// It owns no state: the same inputs always produce the same ordering, and the
// input slice is never mutated.
package filter

import (
	"sort"
	"strings"

	"github.com/ozank/plank/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator gives locale-aware alphabetical ordering, the analog of a
// localeCompare sort. Und with case folding keeps it deterministic across
// host locales.
var collator = collate.New(language.Und, collate.IgnoreCase)

// buckets partitions filter chips by key prefix. Keys are matched
// case-insensitively and values are lower-cased for comparison.
type buckets struct {
	status   map[string]bool
	priority map[string]bool
	tag      map[string]bool
	member   []string
}

func bucketize(chips []model.FilterChip) buckets {
	b := buckets{
		status:   map[string]bool{},
		priority: map[string]bool{},
		tag:      map[string]bool{},
	}
	for _, c := range chips {
		k := strings.ToLower(strings.TrimSpace(c.Key))
		v := strings.ToLower(strings.TrimSpace(c.Value))
		switch {
		case strings.HasPrefix(k, "status"):
			b.status[v] = true
		case strings.HasPrefix(k, "priority"):
			b.priority[v] = true
		case strings.HasPrefix(k, "tag"):
			b.tag[v] = true
		case k == "pic" || strings.HasPrefix(k, "member"):
			b.member = append(b.member, v)
		}
	}
	return b
}

func (b buckets) matches(p model.Project) bool {
	if len(b.status) > 0 && !b.status[strings.ToLower(string(p.Status))] {
		return false
	}
	if len(b.priority) > 0 && !b.priority[strings.ToLower(string(p.Priority))] {
		return false
	}
	if len(b.tag) > 0 {
		hit := false
		for _, t := range p.Tags {
			if b.tag[strings.ToLower(t)] {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if len(b.member) > 0 {
		// Substring match against display names, so "sarah" finds
		// "Sarah Chen" without an exact chip.
		hit := false
		for _, m := range p.Members {
			lm := strings.ToLower(m)
			for _, want := range b.member {
				if strings.Contains(lm, want) {
					hit = true
					break
				}
			}
			if hit {
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Apply runs the full pipeline: archived gate, closed gate, chip buckets
// (AND across dimensions, OR within one), ordering, then a stable
// starred-first partition that preserves relative order inside each half.
func Apply(projects []model.Project, chips []model.FilterChip, opts model.ViewOptions, showArchived bool) []model.Project {
	list := make([]model.Project, 0, len(projects))
	b := bucketize(chips)

	for _, p := range projects {
		if !showArchived && p.Archived {
			continue
		}
		if !opts.ShowClosedProjects && p.Status.IsClosed() {
			continue
		}
		if !b.matches(p) {
			continue
		}
		list = append(list, p)
	}

	switch opts.Ordering {
	case model.OrderAlphabetical:
		sort.SliceStable(list, func(i, j int) bool {
			return collator.CompareString(list[i].Name, list[j].Name) < 0
		})
	case model.OrderDate:
		// A zero end date sorts first, matching "missing date = epoch 0".
		sort.SliceStable(list, func(i, j int) bool {
			return endMillis(list[i]) < endMillis(list[j])
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Starred && !list[j].Starred
	})
	return list
}

func endMillis(p model.Project) int64 {
	if p.EndDate.IsZero() {
		return 0
	}
	return p.EndDate.UnixMilli()
}
