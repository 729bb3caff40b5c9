package builder

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashvale/pathbound/internal/app/state"
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/enhance"
	"github.com/ashvale/pathbound/internal/router"
	"github.com/ashvale/pathbound/internal/ui/layout"
	"github.com/ashvale/pathbound/internal/ui/theme"
)

// targetScreen picks which main-path skill a Sharp Mind purchase enhances.
// Backing out leaves the purchase sound but unassigned.
type targetScreen struct {
	session *state.Session
	source  character.PurchasedSkill
	targets []character.PurchasedSkill
	cursor  int
}

var _ router.Screen = (*targetScreen)(nil)

func newTargetScreen(session *state.Session, source character.PurchasedSkill, targets []character.PurchasedSkill) *targetScreen {
	return &targetScreen{session: session, source: source, targets: targets}
}

// Init implements router.Screen.
func (s *targetScreen) Init() tea.Cmd {
	return nil
}

// Update implements router.Screen.
func (s *targetScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.targets)-1 {
			s.cursor++
		}
	case "enter":
		target := s.targets[s.cursor]
		s.session.Character.Enhancements = append(s.session.Character.Enhancements,
			enhance.NewAssignment(s.source, target))
		if s.session.Autosave != nil {
			s.session.Autosave()
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// View implements router.Screen.
func (s *targetScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Choose a skill for %s to enhance", s.source.Name)) + "\n\n")

	for i, t := range s.targets {
		line := fmt.Sprintf("%s (Tier %d)", t.Name, t.Tier)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	b.WriteString("\n" + theme.Hint.Render("It cannot be applied to the same skill twice,\nnor to a skill above your Scholar tier."))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

// Title implements router.Screen.
func (s *targetScreen) Title() string {
	return "Sharp Mind"
}

// KeyHints implements router.KeyHintProvider.
func (s *targetScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Apply"},
		{Key: "Esc", Description: "Skip"},
	}
}
