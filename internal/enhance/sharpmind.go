// Package enhance holds opt-in post-purchase extensions. The only one today
// is Sharp Mind, a Scholar skill that retroactively enhances one purchased
// main-path skill.
package enhance

import (
	"regexp"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
)

// EffectSharpMind is the effect label recorded on Sharp Mind assignments.
const EffectSharpMind = "Sharp Mind"

var sharpMindName = regexp.MustCompile(`(?i)\bsharp mind\b`)

// IsSharpMind reports whether a purchase is the Sharp Mind Scholar skill.
func IsSharpMind(p character.PurchasedSkill) bool {
	return catalog.Normalize(p.Path) == "scholar" && sharpMindName.MatchString(p.Name)
}

// NewAssignment builds the enhancement record for applying source to target.
func NewAssignment(source, target character.PurchasedSkill) character.Enhancement {
	return character.Enhancement{
		SourcePath: source.Path,
		SourceName: source.Name,
		TargetPath: target.Path,
		TargetName: target.Name,
		Effect:     EffectSharpMind,
	}
}

// Selector picks a target from the eligible purchases, or declines.
// The TUI prompts; the CLI takes a flag; tests supply a fixed choice.
type Selector func(targets []character.PurchasedSkill) (int, bool)

// SharpMind is an engine hook that fires when a Scholar skill named Sharp
// Mind is purchased. Eligible targets are main-path purchases that are not
// already enhanced and whose tier does not exceed the character's highest
// owned Scholar tier. If no target is eligible, or the selector declines,
// nothing is recorded.
type SharpMind struct {
	selectTarget Selector
}

// NewSharpMind creates the hook with the given target selector.
func NewSharpMind(sel Selector) *SharpMind {
	return &SharpMind{selectTarget: sel}
}

// AfterPurchase implements engine.Hook.
func (h *SharpMind) AfterPurchase(c *character.Character, purchased character.PurchasedSkill) *character.Enhancement {
	if h.selectTarget == nil {
		return nil
	}
	if !IsSharpMind(purchased) {
		return nil
	}

	targets := EligibleTargets(c)
	if len(targets) == 0 {
		return nil
	}

	i, ok := h.selectTarget(targets)
	if !ok || i < 0 || i >= len(targets) {
		return nil
	}
	assignment := NewAssignment(purchased, targets[i])
	return &assignment
}

// EligibleTargets lists the purchases Sharp Mind may be applied to:
// main-path skills, at most once each, capped at the highest owned Scholar
// tier when one exists.
func EligibleTargets(c *character.Character) []character.PurchasedSkill {
	if c.MainPath == "" {
		return nil
	}

	scholarTier := 0
	for _, p := range c.Purchased {
		if catalog.Normalize(p.Path) == "scholar" && p.Tier > scholarTier {
			scholarTier = p.Tier
		}
	}

	boosted := make(map[string]bool, len(c.Enhancements))
	for _, e := range c.Enhancements {
		boosted[(catalog.Key{Path: e.TargetPath, Name: e.TargetName}).ID()] = true
	}

	mainNorm := catalog.Normalize(c.MainPath)
	var targets []character.PurchasedSkill
	for _, p := range c.Purchased {
		if catalog.Normalize(p.Path) != mainNorm {
			continue
		}
		if boosted[p.Key().ID()] {
			continue
		}
		if scholarTier > 0 && p.Tier > scholarTier {
			continue
		}
		targets = append(targets, p)
	}
	return targets
}
