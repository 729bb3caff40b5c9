package ledger

import "strings"

// EventType describes one kind of attended event: how many base skill points
// it awards and whether it counts toward tier advancement.
type EventType struct {
	Label      string
	BasePoints int
	Qualifying bool
}

// The fixed event-type table. Labels outside this table award 0 points and
// never qualify.
var eventTypes = []EventType{
	{Label: "Main Event", BasePoints: 3, Qualifying: true},
	{Label: "Day Event", BasePoints: 2, Qualifying: true},
	{Label: "Workday", BasePoints: 1, Qualifying: false},
	{Label: "Social", BasePoints: 1, Qualifying: false},
	{Label: "Donation", BasePoints: 1, Qualifying: false},
}

// EventTypes returns the event-type table in display order.
func EventTypes() []EventType {
	out := make([]EventType, len(eventTypes))
	copy(out, eventTypes)
	return out
}

// TypeFor looks up an event type by label, case-insensitively.
// Unrecognized labels return a zero-valued type rather than an error.
func TypeFor(label string) EventType {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, t := range eventTypes {
		if strings.ToLower(t.Label) == l {
			return t
		}
	}
	return EventType{Label: label}
}

// Event is one attended-event record in the progression log.
type Event struct {
	Name       string `json:"name"`
	Date       string `json:"date"` // ISO calendar date, may be empty
	Type       string `json:"type"`
	NPC        bool   `json:"npc"`
	MerchantOT bool   `json:"merchantOT"`
	BonusSP    int    `json:"bonusSP"`

	// SkillPoints is derived by Recompute, never a source of truth.
	SkillPoints int `json:"skillPoints"`
}

// points derives the event's skill-point award from its inputs.
func (e Event) points() int {
	total := TypeFor(e.Type).BasePoints + e.BonusSP
	if e.NPC {
		total++
	}
	if e.MerchantOT {
		total++
	}
	return total
}
