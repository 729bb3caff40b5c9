package catalog

import "strings"

// Skill is one immutable catalog entry, identified by its (path, name) pair.
type Skill struct {
	Path        string
	Name        string
	Tier        int
	Description string
	Limitations string
	PhysRep     string

	// Prerequisite is the free-form prose the resolver extracts
	// requirement names from.
	Prerequisite string

	Uses UsageParams
}

// UsageParams holds the usage-scaling parameters for a skill.
type UsageParams struct {
	BasePerDay     float64
	PerExtraTier   float64
	ScaleStartTier int
	Periodicity    string
	PerMilestone1  bool
	PerMilestone2  bool
}

// Key identifies a skill by its (path, name) pair.
type Key struct {
	Path string
	Name string
}

// KeyOf returns the identity key for a skill.
func (s Skill) Key() Key {
	return Key{Path: s.Path, Name: s.Name}
}

// ID returns the normalized "path::name" form used for map keys and
// equality checks.
func (k Key) ID() string {
	return Normalize(k.Path) + "::" + Normalize(k.Name)
}

// Normalize lowercases a skill or path name, trims surrounding whitespace,
// and strips trailing punctuation. Every name comparison in the builder goes
// through this function; nothing compares raw strings.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.TrimRight(n, ".,;:!?")
}

// ProfessionNames is the fixed set of profession tracks. Professions are
// open to any main path once tier 3 is reached, and their tiers must be
// bought in unbroken sequence per path.
var ProfessionNames = []string{"Artificer", "Bard", "Scholar"}

// IsProfession reports whether path names one of the profession tracks.
func IsProfession(path string) bool {
	p := Normalize(path)
	for _, name := range ProfessionNames {
		if Normalize(name) == p {
			return true
		}
	}
	return false
}

// MilestonePaths lists the tracks that carry milestone flags. Only skills on
// these paths react to the per-milestone usage flags.
var MilestonePaths = []string{"Artificer", "Bard"}

// IsMilestonePath reports whether path is one of the milestone-tracked tracks.
func IsMilestonePath(path string) bool {
	p := Normalize(path)
	for _, name := range MilestonePaths {
		if Normalize(name) == p {
			return true
		}
	}
	return false
}
