package filter

import "github.com/ozank/plank/internal/model"

// Counts holds per-dimension tallies for the filter UI badges. They are
// computed over the fully filtered list, so each badge reflects what is
// currently shown rather than what adding the filter would show.
type Counts struct {
	Status   map[model.Status]int
	Priority map[model.Priority]int
	Tag      map[string]int
	Member   map[string]int
}

// CountProjects tallies every filter dimension of the given list. Tags and
// member names count once per project each time they appear, so a duplicated
// tag on one project counts twice — the model does not deduplicate tags and
// neither do the badges.
func CountProjects(projects []model.Project) Counts {
	c := Counts{
		Status:   map[model.Status]int{},
		Priority: map[model.Priority]int{},
		Tag:      map[string]int{},
		Member:   map[string]int{},
	}
	for _, p := range projects {
		c.Status[p.Status]++
		c.Priority[p.Priority]++
		for _, t := range p.Tags {
			c.Tag[t]++
		}
		for _, m := range p.Members {
			c.Member[m]++
		}
	}
	return c
}

// Total returns the number of projects counted, taken from the status
// dimension (every project has exactly one status).
func (c Counts) Total() int {
	n := 0
	for _, v := range c.Status {
		n += v
	}
	return n
}
