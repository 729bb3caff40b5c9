package engine

import (
	"fmt"
	"strings"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
)

// RejectionError is an expected, user-facing admission failure. The build is
// always left unchanged; the reason is shown to the player verbatim.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

func reject(format string, args ...any) error {
	return &RejectionError{Reason: fmt.Sprintf(format, args...)}
}

// PathClass classifies a skill's path relative to the main path.
type PathClass int

const (
	ClassMainPath PathClass = iota
	ClassProfession
	ClassSecondary
)

// Classify places a path into exactly one class. The main path wins over the
// profession set when they coincide.
func Classify(path, mainPath string) PathClass {
	switch {
	case mainPath != "" && catalog.Normalize(path) == catalog.Normalize(mainPath):
		return ClassMainPath
	case catalog.IsProfession(path):
		return ClassProfession
	default:
		return ClassSecondary
	}
}

// secondaryTierAllowance maps the character tier to the highest secondary
// skill tier that may be purchased. Below tier 2 secondary paths are locked
// out entirely.
func secondaryTierAllowance(tier int) int {
	switch {
	case tier < 2:
		return 0
	case tier <= 3:
		return 1
	case tier <= 5:
		return 2
	default:
		return 3
	}
}

// Admit evaluates the admission gates in order; the first failure wins.
// A nil return means the purchase is legal at this moment. free exempts the
// skill from pricing but not from tier or prerequisite gates.
func (e *Engine) Admit(c *character.Character, skill catalog.Skill, free bool) error {
	if c.HasPurchased(skill.Path, skill.Name) {
		return reject("You already have %s (%s).", skill.Name, skill.Path)
	}

	if strings.TrimSpace(c.MainPath) == "" {
		return reject("Choose your main Path before buying skills.")
	}

	totals := c.Recompute()
	tier := totals.Tier

	switch Classify(skill.Path, c.MainPath) {
	case ClassProfession:
		if tier < 3 {
			return reject("Profession skills unlock at Tier 3; you are Tier %d.", tier)
		}
		if skill.Tier > tier {
			return reject("%s is a Tier %d skill; you are Tier %d.", skill.Name, skill.Tier, tier)
		}
		if skill.Tier > 1 && !e.ownsTierOnPath(c, skill.Path, skill.Tier-1) {
			return reject("Profession tiers must be bought in order: you need a Tier %d %s skill first.",
				skill.Tier-1, skill.Path)
		}

	case ClassMainPath:
		if skill.Tier > tier {
			return reject("%s is a Tier %d skill; you are Tier %d.", skill.Name, skill.Tier, tier)
		}

	case ClassSecondary:
		allowed := secondaryTierAllowance(tier)
		if allowed == 0 {
			return reject("You cannot choose skills from other paths until Tier 2.")
		}
		if skill.Tier > allowed {
			return reject("At Tier %d, skills from other paths are limited to Tier %d.", tier, allowed)
		}
	}

	if missing := e.MissingPrerequisites(c, skill); len(missing) > 0 {
		return reject("Missing prerequisite: %s.", strings.Join(missing, ", "))
	}

	cost := e.CostOf(c.MainPath, character.PurchasedSkill{
		Path: skill.Path,
		Name: skill.Name,
		Tier: skill.Tier,
		Free: free,
	})
	if available := e.AvailablePoints(c); cost > available {
		return reject("Not enough skill points: %s costs %d, you have %d.", skill.Name, cost, available)
	}

	return nil
}

// MissingPrerequisites resolves the skill's prerequisite prose and returns
// the required names not yet covered by a purchased skill. An empty
// requirement set never blocks a purchase.
func (e *Engine) MissingPrerequisites(c *character.Character, skill catalog.Skill) []string {
	required := e.resolver.Requirements(skill.Prerequisite)
	if len(required) == 0 {
		return nil
	}
	owned := c.PurchasedNames()
	var missing []string
	for _, name := range required {
		if !owned[catalog.Normalize(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}

// ownsTierOnPath reports whether the build holds a skill of exactly tier on
// the given path.
func (e *Engine) ownsTierOnPath(c *character.Character, path string, tier int) bool {
	p := catalog.Normalize(path)
	for _, owned := range c.Purchased {
		if catalog.Normalize(owned.Path) == p && owned.Tier == tier {
			return true
		}
	}
	return false
}
