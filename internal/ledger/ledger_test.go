package ledger

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		qualifying int
		want       int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 2},
		{6, 3},
		{9, 3},
		{10, 4},
		{14, 4},
		{15, 5},
	}
	for _, tt := range tests {
		if got := TierFor(tt.qualifying); got != tt.want {
			t.Errorf("TierFor(%d) = %d, want %d", tt.qualifying, got, tt.want)
		}
	}
}

func TestTierForMonotonic(t *testing.T) {
	prev := 0
	for q := 0; q <= 100; q++ {
		tier := TierFor(q)
		if tier < prev {
			t.Fatalf("tier decreased: TierFor(%d) = %d after %d", q, tier, prev)
		}
		// Tier T holds exactly while T(T+1)/2 <= q < (T+1)(T+2)/2.
		lower := tier * (tier + 1) / 2
		upper := (tier + 1) * (tier + 2) / 2
		if q < lower || q >= upper {
			t.Errorf("TierFor(%d) = %d outside [%d, %d)", q, tier, lower, upper)
		}
		prev = tier
	}
}

func TestRecompute(t *testing.T) {
	events := []Event{
		{Type: "Main Event"},                                    // 3, qualifying
		{Type: "day event", NPC: true},                          // 3, qualifying (case-insensitive)
		{Type: "Workday", MerchantOT: true, BonusSP: 2},         // 4
		{Type: "Something Unrecognized", NPC: true, BonusSP: 1}, // 2, base degrades to 0
	}

	totals := Recompute(events)

	if totals.TotalPoints != 12 {
		t.Errorf("TotalPoints = %d, want 12", totals.TotalPoints)
	}
	if totals.QualifyingCount != 2 {
		t.Errorf("QualifyingCount = %d, want 2", totals.QualifyingCount)
	}
	if totals.Tier != 1 {
		t.Errorf("Tier = %d, want 1", totals.Tier)
	}

	// Derived points are written back onto the events.
	wantPoints := []int{3, 3, 4, 2}
	for i, want := range wantPoints {
		if events[i].SkillPoints != want {
			t.Errorf("events[%d].SkillPoints = %d, want %d", i, events[i].SkillPoints, want)
		}
	}
}

func TestRecomputeEmpty(t *testing.T) {
	totals := Recompute(nil)
	if totals.TotalPoints != 0 || totals.QualifyingCount != 0 || totals.Tier != 0 {
		t.Errorf("Recompute(nil) = %+v, want zero totals", totals)
	}
}

func TestAvailable(t *testing.T) {
	if got := Available(10, 4); got != 6 {
		t.Errorf("Available(10, 4) = %d, want 6", got)
	}
	if got := Available(3, 3); got != 0 {
		t.Errorf("Available(3, 3) = %d, want 0", got)
	}
	// Clamped, never negative.
	if got := Available(2, 5); got != 0 {
		t.Errorf("Available(2, 5) = %d, want 0", got)
	}
}

func TestTypeForUnrecognized(t *testing.T) {
	typ := TypeFor("Bake Sale")
	if typ.BasePoints != 0 || typ.Qualifying {
		t.Errorf("unrecognized type = %+v, want 0 points, non-qualifying", typ)
	}
}
