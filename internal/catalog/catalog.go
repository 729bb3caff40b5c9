// Package catalog holds the static skill reference data and the
// prerequisite-name resolver that reads against it.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the immutable set of known skills with precomputed indexes.
type Catalog struct {
	skills []Skill
	byID   map[string]*Skill
	byPath map[string][]Skill
	paths  []string
	names  map[string]bool // normalized skill names
}

// New constructs a catalog from a slice of skills.
// It rejects duplicate (path, name) pairs.
func New(skills []Skill) (*Catalog, error) {
	c := &Catalog{
		skills: skills,
		byID:   make(map[string]*Skill, len(skills)),
		byPath: make(map[string][]Skill),
		names:  make(map[string]bool, len(skills)),
	}

	var errs []string
	for i := range c.skills {
		s := &c.skills[i]
		id := s.Key().ID()
		if _, dup := c.byID[id]; dup {
			errs = append(errs, fmt.Sprintf("duplicate skill: %q on path %q", s.Name, s.Path))
			continue
		}
		c.byID[id] = s
		c.byPath[Normalize(s.Path)] = append(c.byPath[Normalize(s.Path)], *s)
		c.names[Normalize(s.Name)] = true
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(errs, "; "))
	}

	// Stable path listing: original display casing, sorted case-insensitively.
	seen := make(map[string]string)
	for _, s := range c.skills {
		if _, ok := seen[Normalize(s.Path)]; !ok {
			seen[Normalize(s.Path)] = s.Path
		}
	}
	for _, display := range seen {
		c.paths = append(c.paths, display)
	}
	sort.Slice(c.paths, func(i, j int) bool {
		return strings.ToLower(c.paths[i]) < strings.ToLower(c.paths[j])
	})

	return c, nil
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.skills)
}

// Paths returns all path names in display order.
func (c *Catalog) Paths() []string {
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// SkillsForPath returns the skills on a path, sorted by tier then name.
func (c *Catalog) SkillsForPath(path string) []Skill {
	skills := c.byPath[Normalize(path)]
	out := make([]Skill, len(skills))
	copy(out, skills)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Lookup finds a skill by its (path, name) pair.
func (c *Catalog) Lookup(path, name string) (Skill, bool) {
	s, ok := c.byID[Key{Path: path, Name: name}.ID()]
	if !ok {
		return Skill{}, false
	}
	return *s, true
}

// HasName reports whether any catalog skill has the given name,
// compared after normalization.
func (c *Catalog) HasName(name string) bool {
	return c.names[Normalize(name)]
}
