// Package events lists attended events and edits the progression log.
package events

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashvale/pathbound/internal/app/state"
	"github.com/ashvale/pathbound/internal/ledger"
	"github.com/ashvale/pathbound/internal/router"
	"github.com/ashvale/pathbound/internal/store"
	"github.com/ashvale/pathbound/internal/ui/components"
	"github.com/ashvale/pathbound/internal/ui/layout"
	"github.com/ashvale/pathbound/internal/ui/theme"
)

// add-wizard steps, in order.
const (
	stepName = iota
	stepDate
	stepType
	stepNPC
	stepMerchant
	stepBonus
	stepCount
)

// EventsScreen shows the event log and hosts the add-event wizard.
type EventsScreen struct {
	session *state.Session
	cursor  int

	adding    bool
	step      int
	draft     ledger.Event
	typeIndex int
	input     components.TextInput
}

var _ router.Screen = (*EventsScreen)(nil)

// New creates the event log screen.
func New(session *state.Session) *EventsScreen {
	return &EventsScreen{session: session}
}

// Init implements router.Screen.
func (s *EventsScreen) Init() tea.Cmd {
	return nil
}

// Update implements router.Screen.
func (s *EventsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if s.adding {
		return s.updateWizard(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	events := s.session.Character.Events
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(events)-1 {
			s.cursor++
		}
	case "a":
		s.adding = true
		s.step = stepName
		s.draft = ledger.Event{}
		s.typeIndex = 0
		s.input = components.NewTextInput("Event name", false, 48)
		return s, s.input.Init()
	case "d":
		if len(events) > 0 {
			s.session.Character.Events = append(events[:s.cursor], events[s.cursor+1:]...)
			if s.cursor >= len(s.session.Character.Events) && s.cursor > 0 {
				s.cursor--
			}
			s.session.Changed(store.ActionEvent, "", "removed event", 0)
		}
	}
	return s, nil
}

func (s *EventsScreen) updateWizard(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if isKey {
		switch kmsg.String() {
		case "esc":
			s.adding = false
			return s, nil
		case "enter":
			return s, s.advance()
		}
	}

	switch s.step {
	case stepType:
		if isKey {
			types := ledger.EventTypes()
			switch kmsg.String() {
			case "up", "k":
				if s.typeIndex > 0 {
					s.typeIndex--
				}
			case "down", "j":
				if s.typeIndex < len(types)-1 {
					s.typeIndex++
				}
			}
		}
	case stepNPC, stepMerchant:
		if isKey {
			v := kmsg.String() == "y"
			if kmsg.String() == "y" || kmsg.String() == "n" {
				if s.step == stepNPC {
					s.draft.NPC = v
				} else {
					s.draft.MerchantOT = v
				}
				return s, s.advance()
			}
		}
	default:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// advance commits the current step and moves to the next, appending the
// event after the last one.
func (s *EventsScreen) advance() tea.Cmd {
	switch s.step {
	case stepName:
		s.draft.Name = s.input.Value()
		s.input = components.NewTextInput("YYYY-MM-DD (optional)", false, 10)
	case stepDate:
		s.draft.Date = s.input.Value()
	case stepType:
		s.draft.Type = ledger.EventTypes()[s.typeIndex].Label
	case stepBonus:
		if n, err := s.input.NumericValue(); err == nil {
			s.draft.BonusSP = n
		}
	}

	s.step++
	if s.step == stepBonus {
		s.input = components.NewTextInput("Bonus SP (0 if none)", true, 4)
	}
	if s.step >= stepCount {
		s.session.Character.Events = append(s.session.Character.Events, s.draft)
		s.session.Character.Recompute()
		s.session.Changed(store.ActionEvent, "", s.draft.Type, 0)
		s.adding = false
	}
	return nil
}

// View implements router.Screen.
func (s *EventsScreen) View(width, height int) string {
	if s.adding {
		return s.viewWizard(width, height)
	}

	c := s.session.Character
	totals := c.Recompute()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"%d events   •   %d qualifying   •   Tier %d   •   %d SP earned",
		len(c.Events), totals.QualifyingCount, totals.Tier, totals.TotalPoints)) + "\n\n")

	if len(c.Events) == 0 {
		b.WriteString(theme.Hint.Render("No events yet. Press A to add one."))
	}

	for i, ev := range c.Events {
		name := ev.Name
		if name == "" {
			name = "(unnamed)"
		}
		date := ev.Date
		if date == "" {
			date = "—"
		}
		var extras []string
		if ev.NPC {
			extras = append(extras, "NPC")
		}
		if ev.MerchantOT {
			extras = append(extras, "Merchant OT")
		}
		if ev.BonusSP != 0 {
			extras = append(extras, fmt.Sprintf("%+d bonus", ev.BonusSP))
		}
		line := fmt.Sprintf("%-24s %-12s %-12s %2d SP  %s",
			name, date, ev.Type, ev.SkillPoints, strings.Join(extras, ", "))
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (s *EventsScreen) viewWizard(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Add Event") + "\n\n")

	switch s.step {
	case stepName, stepDate, stepBonus:
		prompts := map[int]string{
			stepName:  "Event name:",
			stepDate:  "Date:",
			stepBonus: "Bonus skill points:",
		}
		b.WriteString(theme.Body.Render(prompts[s.step]) + "\n")
		b.WriteString(s.input.View())
	case stepType:
		b.WriteString(theme.Body.Render("Event type:") + "\n")
		for i, t := range ledger.EventTypes() {
			qual := ""
			if t.Qualifying {
				qual = theme.Good.Render(" (counts toward tier)")
			}
			line := fmt.Sprintf("%s — %d SP%s", t.Label, t.BasePoints, qual)
			if i == s.typeIndex {
				b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
			} else {
				b.WriteString(theme.Unselected.Render("    "+line) + "\n")
			}
		}
	case stepNPC:
		b.WriteString(theme.Body.Render("Did you NPC this event? (y/n)"))
	case stepMerchant:
		b.WriteString(theme.Body.Render("Merchant overtime? (y/n)"))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(b.String()))
}

// Title implements router.Screen.
func (s *EventsScreen) Title() string {
	return "Event Log"
}

// CapturesEsc keeps esc on this screen while the add wizard is open so it
// cancels the wizard rather than leaving the event log.
func (s *EventsScreen) CapturesEsc() bool {
	return s.adding
}

// KeyHints implements router.KeyHintProvider.
func (s *EventsScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}
