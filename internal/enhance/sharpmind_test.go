package enhance

import (
	"testing"

	"github.com/ashvale/pathbound/internal/character"
)

func pickFirst(targets []character.PurchasedSkill) (int, bool) {
	return 0, true
}

func decline([]character.PurchasedSkill) (int, bool) {
	return 0, false
}

func sharpMindPurchase() character.PurchasedSkill {
	return character.PurchasedSkill{Path: "Scholar", Name: "Sharp Mind", Tier: 2}
}

func testCharacter() *character.Character {
	c := character.New()
	c.MainPath = "Warrior"
	c.Purchased = []character.PurchasedSkill{
		{Path: "Warrior", Name: "Shield Wall", Tier: 1},
		{Path: "Warrior", Name: "Iron Will", Tier: 2},
		{Path: "Warrior", Name: "Juggernaut", Tier: 3},
		{Path: "Ranger", Name: "Longshot", Tier: 1},
		{Path: "Scholar", Name: "Sharp Mind", Tier: 2},
	}
	return c
}

func TestSharpMindAppliesToMainPath(t *testing.T) {
	h := NewSharpMind(pickFirst)

	enh := h.AfterPurchase(testCharacter(), sharpMindPurchase())
	if enh == nil {
		t.Fatal("expected an enhancement assignment")
	}
	if enh.TargetPath != "Warrior" || enh.TargetName != "Shield Wall" {
		t.Errorf("target = %s/%s, want Warrior/Shield Wall", enh.TargetPath, enh.TargetName)
	}
	if enh.SourceName != "Sharp Mind" || enh.Effect != EffectSharpMind {
		t.Errorf("source/effect wrong: %+v", enh)
	}
}

func TestSharpMindIgnoresOtherSkills(t *testing.T) {
	h := NewSharpMind(pickFirst)

	if enh := h.AfterPurchase(testCharacter(), character.PurchasedSkill{Path: "Scholar", Name: "Lore", Tier: 1}); enh != nil {
		t.Error("non-Sharp-Mind purchases should not fire the hook")
	}
	if enh := h.AfterPurchase(testCharacter(), character.PurchasedSkill{Path: "Warrior", Name: "Sharp Mind", Tier: 2}); enh != nil {
		t.Error("Sharp Mind off the Scholar track should not fire the hook")
	}
}

func TestSharpMindSelectorDeclines(t *testing.T) {
	h := NewSharpMind(decline)
	if enh := h.AfterPurchase(testCharacter(), sharpMindPurchase()); enh != nil {
		t.Error("a declined selection should record nothing")
	}
}

func TestEligibleTargetsScholarTierCap(t *testing.T) {
	c := testCharacter()

	// Highest owned Scholar tier is 2: Juggernaut (tier 3) is out of reach.
	targets := EligibleTargets(c)
	for _, p := range targets {
		if p.Name == "Juggernaut" {
			t.Error("tier-3 target should exceed the Scholar tier cap")
		}
		if p.Path != "Warrior" {
			t.Errorf("non-main-path target %s/%s", p.Path, p.Name)
		}
	}
	if len(targets) != 2 {
		t.Errorf("got %d targets, want 2 (Shield Wall, Iron Will)", len(targets))
	}
}

func TestEligibleTargetsExcludeAlreadyBoosted(t *testing.T) {
	c := testCharacter()
	c.Enhancements = []character.Enhancement{{
		SourcePath: "Scholar", SourceName: "Sharp Mind",
		TargetPath: "Warrior", TargetName: "Shield Wall",
		Effect: EffectSharpMind,
	}}

	for _, p := range EligibleTargets(c) {
		if p.Name == "Shield Wall" {
			t.Error("already-boosted skill should not be eligible again")
		}
	}
}

func TestEligibleTargetsWithoutMainPath(t *testing.T) {
	c := testCharacter()
	c.MainPath = ""
	if targets := EligibleTargets(c); targets != nil {
		t.Errorf("no main path should mean no targets, got %v", targets)
	}
}
