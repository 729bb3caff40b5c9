// Package character holds the mutable session state for one character build:
// identity, attended events, purchased skills, and milestone flags. The
// engine operates on a *Character passed in by the caller; there is no
// package-level state.
package character

import (
	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/ledger"
	"github.com/ashvale/pathbound/internal/uses"
)

// PurchasedSkill is one entry in the build. Tier is copied from the catalog
// at purchase time; Free marks a zero-cost grant exempt from pricing.
type PurchasedSkill struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Tier int    `json:"tier"`
	Free bool   `json:"free,omitempty"`
}

// Key returns the purchase's identity key.
func (p PurchasedSkill) Key() catalog.Key {
	return catalog.Key{Path: p.Path, Name: p.Name}
}

// Enhancement records one applied post-purchase enhancement assignment.
type Enhancement struct {
	SourcePath string `json:"sourcePath"`
	SourceName string `json:"sourceName"`
	TargetPath string `json:"targetPath"`
	TargetName string `json:"targetName"`
	Effect     string `json:"effect"`
}

// Character is the session document. Its zero value is a blank sheet.
type Character struct {
	Name          string   `json:"name"`
	Player        string   `json:"player"`
	MainPath      string   `json:"mainPath"`
	Faction       string   `json:"faction"`
	Organizations []string `json:"organizations,omitempty"`

	Purchased []PurchasedSkill `json:"purchased"`
	Events    []ledger.Event   `json:"events"`

	// Milestones is keyed by normalized path name; only milestone-tracked
	// paths are meaningful.
	Milestones map[string]uses.MilestoneFlags `json:"milestones,omitempty"`

	Enhancements []Enhancement `json:"enhancements,omitempty"`
}

// New returns a blank character.
func New() *Character {
	return &Character{}
}

// HasPurchased reports whether the (path, name) pair is already in the build.
func (c *Character) HasPurchased(path, name string) bool {
	id := (catalog.Key{Path: path, Name: name}).ID()
	for _, p := range c.Purchased {
		if p.Key().ID() == id {
			return true
		}
	}
	return false
}

// AddPurchase appends a purchase to the build. Callers are expected to have
// run the admission gates first.
func (c *Character) AddPurchase(p PurchasedSkill) {
	c.Purchased = append(c.Purchased, p)
}

// RemovePurchase deletes the matching purchase, reporting whether it existed.
// Dependents that listed the skill as a prerequisite are left alone; they are
// only re-validated at their next purchase attempt.
func (c *Character) RemovePurchase(path, name string) bool {
	id := (catalog.Key{Path: path, Name: name}).ID()
	for i, p := range c.Purchased {
		if p.Key().ID() == id {
			c.Purchased = append(c.Purchased[:i], c.Purchased[i+1:]...)
			return true
		}
	}
	return false
}

// PurchasedNames returns the normalized names of every purchased skill,
// for prerequisite matching (path is not part of the match).
func (c *Character) PurchasedNames() map[string]bool {
	names := make(map[string]bool, len(c.Purchased))
	for _, p := range c.Purchased {
		names[catalog.Normalize(p.Name)] = true
	}
	return names
}

// MilestonesFor returns the milestone flags for a path.
func (c *Character) MilestonesFor(path string) uses.MilestoneFlags {
	return c.Milestones[catalog.Normalize(path)]
}

// SetMilestone flags milestone level 2 or 3 for a path. Level 1 is implicit;
// other levels are ignored.
func (c *Character) SetMilestone(path string, level int, reached bool) {
	if level != 2 && level != 3 {
		return
	}
	if c.Milestones == nil {
		c.Milestones = make(map[string]uses.MilestoneFlags)
	}
	key := catalog.Normalize(path)
	flags := c.Milestones[key]
	if level == 2 {
		flags.Milestone2 = reached
	} else {
		flags.Milestone3 = reached
	}
	c.Milestones[key] = flags
}

// Recompute refreshes the event log's derived points and returns the totals.
func (c *Character) Recompute() ledger.Totals {
	return ledger.Recompute(c.Events)
}
