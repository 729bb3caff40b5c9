package engine

import (
	"sort"
	"strings"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
)

// CostOf prices one purchase relative to the given main path. Costs are
// never cached: a main-path change re-prices the whole build on the next
// evaluation.
func (e *Engine) CostOf(mainPath string, p character.PurchasedSkill) int {
	if p.Free {
		return 0
	}
	switch Classify(p.Path, mainPath) {
	case ClassMainPath, ClassProfession:
		if p.Tier <= 0 {
			return 0
		}
		return p.Tier
	default:
		if p.Tier <= 0 {
			return 1
		}
		return p.Tier * 2
	}
}

// TotalCost sums the purchased set's cost under the character's current
// main path.
func (e *Engine) TotalCost(c *character.Character) int {
	total := 0
	for _, p := range c.Purchased {
		total += e.CostOf(c.MainPath, p)
	}
	return total
}

// SortedPurchases returns the build in display order: main-path skills
// first, then other paths case-insensitively by path name, tier ascending
// and name within each path.
func (e *Engine) SortedPurchases(c *character.Character) []character.PurchasedSkill {
	out := make([]character.PurchasedSkill, len(c.Purchased))
	copy(out, c.Purchased)

	mainNorm := catalog.Normalize(c.MainPath)
	sort.SliceStable(out, func(i, j int) bool {
		iMain := catalog.Normalize(out[i].Path) == mainNorm
		jMain := catalog.Normalize(out[j].Path) == mainNorm
		if iMain != jMain {
			return iMain
		}
		if !iMain {
			pi, pj := strings.ToLower(out[i].Path), strings.ToLower(out[j].Path)
			if pi != pj {
				return pi < pj
			}
		}
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
