// Package engine decides whether a skill purchase is legal and what it
// costs. All decisions are pure functions over the session state passed in;
// the engine itself holds only the catalog, the prerequisite resolver, and
// the registered post-purchase hooks.
package engine

import (
	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/ledger"
)

// Hook is a post-purchase extension point. After each successful admission
// the engine invokes every registered hook, in registration order, with the
// new purchase. A hook may return an enhancement assignment to record on the
// character, or nil to do nothing.
type Hook interface {
	AfterPurchase(c *character.Character, purchased character.PurchasedSkill) *character.Enhancement
}

// Engine evaluates purchases against the catalog.
type Engine struct {
	catalog  *catalog.Catalog
	resolver catalog.Resolver
	hooks    []Hook
}

// New creates an engine over cat. A nil resolver defaults to the catalog's
// text resolver.
func New(cat *catalog.Catalog, resolver catalog.Resolver) *Engine {
	if resolver == nil {
		resolver = catalog.NewResolver(cat)
	}
	return &Engine{catalog: cat, resolver: resolver}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// RegisterHook appends a post-purchase hook.
func (e *Engine) RegisterHook(h Hook) {
	e.hooks = append(e.hooks, h)
}

// Purchase admits the skill, commits it to the build, and runs the
// post-purchase hooks. On rejection the build is left unchanged.
func (e *Engine) Purchase(c *character.Character, skill catalog.Skill, free bool) (int, error) {
	if err := e.Admit(c, skill, free); err != nil {
		return 0, err
	}

	p := character.PurchasedSkill{
		Path: skill.Path,
		Name: skill.Name,
		Tier: skill.Tier,
		Free: free,
	}
	c.AddPurchase(p)

	for _, h := range e.hooks {
		if enh := h.AfterPurchase(c, p); enh != nil {
			c.Enhancements = append(c.Enhancements, *enh)
		}
	}

	return e.CostOf(c.MainPath, p), nil
}

// Remove unconditionally deletes the matching purchase. Skills that listed
// it as a prerequisite stay; they are re-validated only at their next
// purchase attempt.
func (e *Engine) Remove(c *character.Character, path, name string) bool {
	return c.RemovePurchase(path, name)
}

// AvailablePoints recomputes the ledger and returns earned points minus the
// re-priced cost of the purchased set, clamped at zero.
func (e *Engine) AvailablePoints(c *character.Character) int {
	totals := c.Recompute()
	return ledger.Available(totals.TotalPoints, e.TotalCost(c))
}
