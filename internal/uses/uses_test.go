package uses

import (
	"testing"

	"github.com/ashvale/pathbound/internal/catalog"
)

func TestComputeUnlimited(t *testing.T) {
	// All scaling parameters zero and no milestone flags means unlimited.
	skill := catalog.Skill{Path: "Warrior", Name: "Stance"}
	got := Compute(skill, 4, MilestoneFlags{})
	if !got.Unlimited() {
		t.Fatalf("Value = %v, want +Inf", got.Value)
	}
	if got.Display != "∞" {
		t.Errorf("Display = %q, want ∞", got.Display)
	}
}

func TestComputeUnlimitedLabel(t *testing.T) {
	skill := catalog.Skill{
		Path: "Warrior",
		Name: "Stance",
		Uses: catalog.UsageParams{BasePerDay: 3, Periodicity: "Unlimited while in camp"},
	}
	got := Compute(skill, 1, MilestoneFlags{})
	if !got.Unlimited() {
		t.Fatalf("Value = %v, want +Inf for unlimited label", got.Value)
	}
	if got.Display != "Unlimited while in camp" {
		t.Errorf("Display = %q, want the literal label", got.Display)
	}
}

func TestComputeTierScaling(t *testing.T) {
	skill := catalog.Skill{
		Path: "Warrior",
		Name: "Shield Wall",
		Uses: catalog.UsageParams{BasePerDay: 2, PerExtraTier: 1, ScaleStartTier: 1, Periodicity: "Per Day"},
	}

	tests := []struct {
		tier int
		want float64
	}{
		{0, 2},
		{1, 2},
		{2, 3},
		{5, 6},
	}
	for _, tt := range tests {
		got := Compute(skill, tt.tier, MilestoneFlags{})
		if got.Value != tt.want {
			t.Errorf("tier %d: Value = %v, want %v", tt.tier, got.Value, tt.want)
		}
	}

	if got := Compute(skill, 2, MilestoneFlags{}); got.Display != "3 × Per Day" {
		t.Errorf("Display = %q, want %q", got.Display, "3 × Per Day")
	}
}

func TestComputeFloorsFloatNoise(t *testing.T) {
	skill := catalog.Skill{
		Path: "Healer",
		Name: "Mend",
		Uses: catalog.UsageParams{BasePerDay: 1, PerExtraTier: 0.5, ScaleStartTier: 1},
	}
	// tier 4: 1 + 3*0.5 = 2.5, floored to 2.
	if got := Compute(skill, 4, MilestoneFlags{}); got.Value != 2 {
		t.Errorf("Value = %v, want 2 (floored)", got.Value)
	}
	// tier 2: 1 + 0.5 = 1.5, floored to 1.
	if got := Compute(skill, 2, MilestoneFlags{}); got.Value != 1 {
		t.Errorf("Value = %v, want 1", got.Value)
	}
}

func TestComputeNegativeClampsToZero(t *testing.T) {
	skill := catalog.Skill{
		Path: "Healer",
		Name: "Mend",
		Uses: catalog.UsageParams{BasePerDay: 1, PerExtraTier: -2, ScaleStartTier: 0},
	}
	if got := Compute(skill, 3, MilestoneFlags{}); got.Value != 0 {
		t.Errorf("Value = %v, want 0", got.Value)
	}
}

func TestComputeMilestone2Scaling(t *testing.T) {
	skill := catalog.Skill{
		Path: "Bard",
		Name: "Encore",
		Uses: catalog.UsageParams{BasePerDay: 1, PerMilestone2: true, Periodicity: "Per Event Day"},
	}

	// Only the implicit milestone 1 reached.
	got := Compute(skill, 3, MilestoneFlags{})
	if got.Value != 1 {
		t.Errorf("Value = %v, want 1 with baseline milestone only", got.Value)
	}

	// Milestone 2 flagged adds exactly one use.
	got = Compute(skill, 3, MilestoneFlags{Milestone2: true})
	if got.Value != 2 {
		t.Errorf("Value = %v, want 2 with milestone 2 reached", got.Value)
	}
	if got.Display != "2 × Per Event Day" {
		t.Errorf("Display = %q", got.Display)
	}

	// Milestone 3 does not add more for milestone-2-only skills.
	got = Compute(skill, 3, MilestoneFlags{Milestone2: true, Milestone3: true})
	if got.Value != 2 {
		t.Errorf("Value = %v, want 2 (milestone-2-only gains a single use)", got.Value)
	}
}

func TestComputeMilestone1Scaling(t *testing.T) {
	skill := catalog.Skill{
		Path: "Artificer",
		Name: "Tinker",
		Uses: catalog.UsageParams{PerMilestone1: true},
	}

	// Base defaults to 1 and scales with the milestone count; empty
	// periodicity defaults for display.
	got := Compute(skill, 3, MilestoneFlags{Milestone2: true, Milestone3: true})
	if got.Value != 3 {
		t.Errorf("Value = %v, want 3", got.Value)
	}
	if got.Display != "3 × Per Event Day" {
		t.Errorf("Display = %q", got.Display)
	}
}

func TestComputeMilestoneFlagsIgnoredOffTrack(t *testing.T) {
	// Scholar is not milestone-tracked, so the flags fall through to
	// ordinary tier scaling.
	skill := catalog.Skill{
		Path: "Scholar",
		Name: "Recall",
		Uses: catalog.UsageParams{BasePerDay: 2, PerMilestone2: true},
	}
	got := Compute(skill, 3, MilestoneFlags{Milestone2: true})
	if got.Value != 2 {
		t.Errorf("Value = %v, want 2 (ordinary scaling)", got.Value)
	}
}

func TestMilestoneCount(t *testing.T) {
	if (MilestoneFlags{}).Count() != 1 {
		t.Error("baseline count should be 1")
	}
	if (MilestoneFlags{Milestone2: true}).Count() != 2 {
		t.Error("milestone 2 should count")
	}
	if (MilestoneFlags{Milestone2: true, Milestone3: true}).Count() != 3 {
		t.Error("both milestones should count")
	}
}
