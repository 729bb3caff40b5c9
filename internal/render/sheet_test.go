package render

import (
	"strings"
	"testing"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/engine"
	"github.com/ashvale/pathbound/internal/ledger"
)

func sheetEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cat, err := catalog.New([]catalog.Skill{
		{Path: "Warrior", Name: "Shield Wall", Tier: 1,
			Uses: catalog.UsageParams{BasePerDay: 2, Periodicity: "Per Day"}},
		{Path: "Healer", Name: "First Aid", Tier: 0,
			Uses: catalog.UsageParams{Periodicity: "Unlimited"}},
		{Path: "Scholar", Name: "Lore", Tier: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return engine.New(cat, nil)
}

func sheetCharacter() *character.Character {
	c := character.New()
	c.Name = "Brennor"
	c.Player = "Alex"
	c.MainPath = "Warrior"
	c.Faction = "Northern Reach"
	c.Organizations = []string{"Miners Guild"}
	c.Purchased = []character.PurchasedSkill{
		{Path: "Warrior", Name: "Shield Wall", Tier: 1},
		{Path: "Healer", Name: "First Aid", Tier: 0, Free: true},
		{Path: "Scholar", Name: "Lore", Tier: 1},
	}
	c.Events = []ledger.Event{
		{Name: "Spring Gathering", Date: "2026-04-12", Type: "Main Event"},
	}
	return c
}

func TestSheetSections(t *testing.T) {
	out := Sheet(sheetEngine(t), sheetCharacter())

	for _, want := range []string{
		"Brennor",
		"Alex",
		"Northern Reach",
		"Miners Guild",
		"Milestones",
		"Skills",
		"Shield Wall",
		"Attended Events",
		"Spring Gathering",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sheet missing %q", want)
		}
	}
}

func TestSheetClassifiesPaths(t *testing.T) {
	out := Sheet(sheetEngine(t), sheetCharacter())

	// Healer is a secondary path, Scholar a profession; both appear in the
	// summary fields but never as the main path.
	if !strings.Contains(out, "Healer") {
		t.Error("secondary path missing from sheet")
	}
	if !strings.Contains(out, "Scholar") {
		t.Error("profession missing from sheet")
	}
}

func TestSheetFreeSkillShowsNoCost(t *testing.T) {
	out := Sheet(sheetEngine(t), sheetCharacter())
	if !strings.Contains(out, "free") {
		t.Error("free purchase should render as \"free\"")
	}
}

func TestSheetMilestoneBoxListsEveryProfession(t *testing.T) {
	// The box prints a checkbox group for each profession track even on a
	// blank sheet, like the printed layout.
	out := Sheet(sheetEngine(t), character.New())

	milestones := out[strings.Index(out, "Milestones"):]
	for _, track := range []string{"Artificer", "Bard", "Scholar"} {
		if !strings.Contains(milestones, track) {
			t.Errorf("milestone box missing %s", track)
		}
	}
}

func TestSheetEmptyBuild(t *testing.T) {
	out := Sheet(sheetEngine(t), character.New())
	if !strings.Contains(out, "Unnamed Character") {
		t.Error("blank sheet should use the placeholder name")
	}
	if !strings.Contains(out, "No skills purchased yet.") {
		t.Error("blank sheet should note the empty skill table")
	}
}
