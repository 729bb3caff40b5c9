package builder

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashvale/pathbound/internal/app/state"
	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/enhance"
	"github.com/ashvale/pathbound/internal/router"
	"github.com/ashvale/pathbound/internal/store"
	"github.com/ashvale/pathbound/internal/ui/layout"
	"github.com/ashvale/pathbound/internal/ui/theme"
	"github.com/ashvale/pathbound/internal/uses"
)

// skillScreen lists one path's skills and handles purchase and refund.
type skillScreen struct {
	session *state.Session
	path    string
	skills  []catalog.Skill
	cursor  int

	status   string
	statusOK bool
}

var _ router.Screen = (*skillScreen)(nil)

func newSkillScreen(session *state.Session, path string) *skillScreen {
	return &skillScreen{
		session: session,
		path:    path,
		skills:  session.Engine.Catalog().SkillsForPath(path),
	}
}

// Init implements router.Screen.
func (s *skillScreen) Init() tea.Cmd {
	return nil
}

// Update implements router.Screen.
func (s *skillScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.skills) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.skills)-1 {
			s.cursor++
		}
	case "enter":
		return s, s.buy(false)
	case "f":
		return s, s.buy(true)
	case "d":
		s.refund()
	}
	return s, nil
}

// buy attempts the purchase and reports the engine's verdict. Buying Sharp
// Mind with eligible targets pushes the target picker.
func (s *skillScreen) buy(free bool) tea.Cmd {
	sk := s.skills[s.cursor]
	c := s.session.Character

	if c.HasPurchased(sk.Path, sk.Name) {
		s.status, s.statusOK = fmt.Sprintf("You already have %s.", sk.Name), false
		return nil
	}

	cost, err := s.session.Engine.Purchase(c, sk, free)
	if err != nil {
		s.status, s.statusOK = err.Error(), false
		return nil
	}

	s.status, s.statusOK = fmt.Sprintf("Bought %s for %d SP.", sk.Name, cost), true
	s.session.Changed(store.ActionBuy, sk.Path, sk.Name, cost)

	p := character.PurchasedSkill{Path: sk.Path, Name: sk.Name, Tier: sk.Tier, Free: free}
	if enhance.IsSharpMind(p) {
		if targets := enhance.EligibleTargets(c); len(targets) > 0 {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newTargetScreen(s.session, p, targets)}
			}
		}
	}
	return nil
}

// refund removes an owned skill; unknown skills are ignored.
func (s *skillScreen) refund() {
	sk := s.skills[s.cursor]
	if !s.session.Engine.Remove(s.session.Character, sk.Path, sk.Name) {
		s.status, s.statusOK = fmt.Sprintf("%s is not in your build.", sk.Name), false
		return
	}
	s.status, s.statusOK = fmt.Sprintf("Removed %s.", sk.Name), true
	s.session.Changed(store.ActionRemove, sk.Path, sk.Name, 0)
}

// View implements router.Screen.
func (s *skillScreen) View(width, height int) string {
	c := s.session.Character
	totals := c.Recompute()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s — %d SP available", s.path, s.session.Engine.AvailablePoints(c))) + "\n\n")

	for i, sk := range s.skills {
		owned := c.HasPurchased(sk.Path, sk.Name)

		cost := s.session.Engine.CostOf(c.MainPath, character.PurchasedSkill{
			Path: sk.Path, Name: sk.Name, Tier: sk.Tier,
		})
		use := uses.Compute(sk, totals.Tier, c.MilestonesFor(sk.Path))

		line := fmt.Sprintf("T%d  %-26s %2d SP   %s", sk.Tier, sk.Name, cost, use.Display)
		switch {
		case i == s.cursor:
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		case owned:
			b.WriteString(theme.Good.Render("  ✓ "+line) + "\n")
		default:
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	if s.cursor < len(s.skills) {
		sk := s.skills[s.cursor]
		var detail []string
		if sk.Description != "" {
			detail = append(detail, sk.Description)
		}
		if sk.Prerequisite != "" {
			detail = append(detail, "Prerequisite: "+sk.Prerequisite)
		}
		if sk.Limitations != "" {
			detail = append(detail, "Limitations: "+sk.Limitations)
		}
		if len(detail) > 0 {
			b.WriteString("\n" + theme.Hint.Render(strings.Join(detail, "\n")) + "\n")
		}
	}

	if s.status != "" {
		b.WriteString("\n")
		if s.statusOK {
			b.WriteString(theme.Good.Render(s.status))
		} else {
			b.WriteString(theme.Bad.Render(s.status))
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

// Title implements router.Screen.
func (s *skillScreen) Title() string {
	return s.path + " Skills"
}

// KeyHints implements router.KeyHintProvider.
func (s *skillScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Buy"},
		{Key: "F", Description: "Buy free"},
		{Key: "D", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}
