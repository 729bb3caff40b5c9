// Package render produces the printable character sheet as styled text.
// The section inventory mirrors the printed sheet: basic information,
// secondary paths and professions, organizations, milestones, and the
// sorted skill table with costs and uses.
package render

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/engine"
	"github.com/ashvale/pathbound/internal/uses"
	"github.com/ashvale/pathbound/internal/ui/theme"
)

// Sheet renders the full character sheet.
func Sheet(e *engine.Engine, c *character.Character) string {
	totals := c.Recompute()
	available := e.AvailablePoints(c)

	var b strings.Builder

	name := c.Name
	if name == "" {
		name = "Unnamed Character"
	}
	b.WriteString(theme.Title.Render(name) + "\n")
	b.WriteString(theme.Subtitle.Render("Character Sheet") + "\n\n")

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	field := func(k, v string) string {
		if v == "" {
			v = "—"
		}
		return label.Render(fmt.Sprintf("%-14s", k)) + value.Render(v) + "\n"
	}

	b.WriteString(field("Player", c.Player))
	b.WriteString(field("Path", c.MainPath))
	b.WriteString(field("Faction", c.Faction))
	b.WriteString(field("Tier", fmt.Sprintf("%d", totals.Tier)))
	b.WriteString(field("Skill Points", fmt.Sprintf("%d earned, %d available", totals.TotalPoints, available)))
	b.WriteString(field("Secondary", strings.Join(secondaryPaths(c), ", ")))
	b.WriteString(field("Professions", strings.Join(professionPaths(c), ", ")))
	b.WriteString(field("Organizations", strings.Join(c.Organizations, ", ")))

	b.WriteString("\n" + milestoneBox(c) + "\n")
	b.WriteString("\n" + skillTable(e, c, totals.Tier))

	if len(c.Enhancements) > 0 {
		b.WriteString("\n" + theme.Title.Render("Enhancements") + "\n")
		for _, enh := range c.Enhancements {
			b.WriteString(value.Render(fmt.Sprintf("  %s (%s) → %s (%s)",
				enh.SourceName, enh.SourcePath, enh.TargetName, enh.TargetPath)) + "\n")
		}
	}

	if len(c.Events) > 0 {
		b.WriteString("\n" + theme.Title.Render("Attended Events") + "\n")
		for _, ev := range c.Events {
			evName := ev.Name
			if evName == "" {
				evName = "(unnamed)"
			}
			date := ev.Date
			if date == "" {
				date = "—"
			}
			b.WriteString(value.Render(fmt.Sprintf("  %-24s %-12s %-12s %2d SP", evName, date, ev.Type, ev.SkillPoints)) + "\n")
		}
	}

	return b.String()
}

// milestoneBox renders a milestone checkbox group per profession track,
// matching the printed sheet's layout. Only the milestone-tracked paths can
// have levels 2 and 3 set; the rest stay at the baseline.
func milestoneBox(c *character.Character) string {
	var lines []string
	lines = append(lines, theme.Title.Render("Milestones"))
	for _, path := range catalog.ProfessionNames {
		flags := c.MilestonesFor(path)
		lines = append(lines, fmt.Sprintf("  %-10s %s 1   %s 2   %s 3",
			path, box(true), box(flags.Milestone2), box(flags.Milestone3)))
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}

func box(checked bool) string {
	if checked {
		return "☑"
	}
	return "☐"
}

// skillTable renders the sorted purchased skills with cost and uses.
func skillTable(e *engine.Engine, c *character.Character, tier int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Skills") + "\n")

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	row := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(header.Render(fmt.Sprintf("  %-4s %-12s %-26s %-5s %s", "Tier", "Path", "Skill", "Cost", "Uses")) + "\n")

	for _, p := range e.SortedPurchases(c) {
		cost := fmt.Sprintf("%d", e.CostOf(c.MainPath, p))
		if p.Free {
			cost = "free"
		}

		usesText := "—"
		if sk, ok := e.Catalog().Lookup(p.Path, p.Name); ok {
			usesText = uses.Compute(sk, tier, c.MilestonesFor(sk.Path)).Display
		}

		b.WriteString(row.Render(fmt.Sprintf("  %-4d %-12s %-26s %-5s %s", p.Tier, p.Path, p.Name, cost, usesText)) + "\n")
	}

	if len(c.Purchased) == 0 {
		b.WriteString(theme.Hint.Render("  No skills purchased yet.") + "\n")
	}
	return b.String()
}

// secondaryPaths lists the distinct purchased paths that are neither the
// main path nor professions, alphabetically.
func secondaryPaths(c *character.Character) []string {
	return distinctPaths(c, func(path string) bool {
		return engine.Classify(path, c.MainPath) == engine.ClassSecondary
	})
}

// professionPaths lists the distinct purchased profession tracks.
func professionPaths(c *character.Character) []string {
	return distinctPaths(c, func(path string) bool {
		return engine.Classify(path, c.MainPath) == engine.ClassProfession
	})
}

func distinctPaths(c *character.Character, keep func(string) bool) []string {
	seen := make(map[string]string)
	for _, p := range c.Purchased {
		if keep(p.Path) {
			seen[catalog.Normalize(p.Path)] = p.Path
		}
	}
	var out []string
	for _, display := range seen {
		out = append(out, display)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
