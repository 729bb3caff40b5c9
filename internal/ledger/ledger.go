// Package ledger derives tier and spendable skill points from the log of
// attended events.
package ledger

// Totals is the result of recomputing the event log.
type Totals struct {
	TotalPoints     int
	QualifyingCount int
	Tier            int
}

// Recompute refreshes every event's derived skill points in place and
// returns the log's totals. Unrecognized event types degrade to 0 base
// points; there is no failure path.
func Recompute(events []Event) Totals {
	var t Totals
	for i := range events {
		events[i].SkillPoints = events[i].points()
		t.TotalPoints += events[i].SkillPoints
		if TypeFor(events[i].Type).Qualifying {
			t.QualifyingCount++
		}
	}
	t.Tier = TierFor(t.QualifyingCount)
	return t
}

// TierFor derives the tier from a qualifying-event count. Each tier costs one
// more qualifying event than the last, so tier T needs T*(T+1)/2 events in
// total: tier 1 after 1, tier 2 after 3, tier 3 after 6.
func TierFor(qualifying int) int {
	tier := 0
	needed := 1
	remaining := qualifying
	for remaining >= needed {
		remaining -= needed
		needed++
		tier++
	}
	return tier
}

// Available returns the spendable point balance, clamped at zero.
// spent is the re-priced cost of the purchased set under the current main
// path; callers must recompute it before every admission decision.
func Available(totalPoints, spent int) int {
	if remaining := totalPoints - spent; remaining > 0 {
		return remaining
	}
	return 0
}
