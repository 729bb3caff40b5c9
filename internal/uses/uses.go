// Package uses computes how many times per period a skill may be used at the
// character's current tier and milestones. It is a read-only projection for
// display; it never rejects input.
package uses

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ashvale/pathbound/internal/catalog"
)

// MilestoneFlags records the reached milestones for one milestone-tracked
// path. Milestone 1 is implicit and always counted.
type MilestoneFlags struct {
	Milestone2 bool `json:"milestone2"`
	Milestone3 bool `json:"milestone3"`
}

// Count returns the number of reached milestones including the baseline.
func (f MilestoneFlags) Count() int {
	n := 1
	if f.Milestone2 {
		n++
	}
	if f.Milestone3 {
		n++
	}
	return n
}

// Result describes a skill's computed uses.
type Result struct {
	Display     string
	Value       float64 // +Inf for unlimited
	Periodicity string
}

// Unlimited reports whether the skill has no usage cap.
func (r Result) Unlimited() bool {
	return math.IsInf(r.Value, 1)
}

const defaultMilestonePeriod = "Per Event Day"

// Compute derives the uses of skill at the given tier. flags are the
// milestone flags for the skill's own path; they only matter when the skill
// is per-milestone flagged and its path is milestone-tracked.
func Compute(skill catalog.Skill, tier int, flags MilestoneFlags) Result {
	p := skill.Uses

	unscaled := p.BasePerDay == 0 && p.PerExtraTier == 0 && p.ScaleStartTier == 0 &&
		!p.PerMilestone1 && !p.PerMilestone2
	if strings.Contains(strings.ToLower(p.Periodicity), "unlimited") || unscaled {
		display := "∞"
		if strings.TrimSpace(p.Periodicity) != "" {
			display = p.Periodicity
		}
		return Result{Display: display, Value: math.Inf(1), Periodicity: p.Periodicity}
	}

	if (p.PerMilestone1 || p.PerMilestone2) && catalog.IsMilestonePath(skill.Path) {
		base := p.BasePerDay
		if base == 0 {
			base = 1
		}
		count := flags.Count()
		var value float64
		if p.PerMilestone1 {
			// Per-milestone-1 skills scale linearly with reached milestones,
			// whether or not milestone 2 also applies.
			value = base * float64(count)
		} else {
			// Milestone-2-only skills gain a single extra use.
			value = base
			if count > 1 {
				value++
			}
		}
		period := p.Periodicity
		if strings.TrimSpace(period) == "" {
			period = defaultMilestonePeriod
		}
		return Result{
			Display:     fmt.Sprintf("%s × %s", formatCount(value), period),
			Value:       value,
			Periodicity: p.Periodicity,
		}
	}

	value := p.BasePerDay
	if tier > p.ScaleStartTier && p.PerExtraTier != 0 {
		value += float64(tier-p.ScaleStartTier) * p.PerExtraTier
	}
	if value > 0 {
		// Tolerate float noise from fractional per-tier increments.
		value = math.Floor(value + 1e-9)
	} else {
		value = 0
	}

	display := formatCount(value)
	if strings.TrimSpace(p.Periodicity) != "" {
		display = fmt.Sprintf("%s × %s", display, p.Periodicity)
	}
	return Result{Display: display, Value: value, Periodicity: p.Periodicity}
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
