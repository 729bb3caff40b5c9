// Package sheet shows the rendered character sheet inside the TUI.
package sheet

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashvale/pathbound/internal/app/state"
	"github.com/ashvale/pathbound/internal/render"
	"github.com/ashvale/pathbound/internal/router"
	"github.com/ashvale/pathbound/internal/ui/layout"
)

// SheetScreen is a scrollable view over the plain-text character sheet.
type SheetScreen struct {
	session *state.Session
	offset  int
}

var _ router.Screen = (*SheetScreen)(nil)

// New creates the sheet screen.
func New(session *state.Session) *SheetScreen {
	return &SheetScreen{session: session}
}

// Init implements router.Screen.
func (s *SheetScreen) Init() tea.Cmd {
	return nil
}

// Update implements router.Screen.
func (s *SheetScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	case "home", "g":
		s.offset = 0
	}
	return s, nil
}

// View implements router.Screen.
func (s *SheetScreen) View(width, height int) string {
	lines := strings.Split(render.Sheet(s.session.Engine, s.session.Character), "\n")

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}

	end := s.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[s.offset:end], "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top).
		Padding(1, 0).
		Render(body)
}

// Title implements router.Screen.
func (s *SheetScreen) Title() string {
	return "Character Sheet"
}

// KeyHints implements router.KeyHintProvider.
func (s *SheetScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
