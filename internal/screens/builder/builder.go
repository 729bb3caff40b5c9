// Package builder is the purchase flow: browse paths, inspect skills, buy or
// refund them, with the engine's verdict shown inline.
package builder

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashvale/pathbound/internal/app/state"
	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/engine"
	"github.com/ashvale/pathbound/internal/router"
	"github.com/ashvale/pathbound/internal/ui/layout"
	"github.com/ashvale/pathbound/internal/ui/theme"
)

// PathScreen lists the catalog's paths.
type PathScreen struct {
	session *state.Session
	paths   []string
	cursor  int
}

var _ router.Screen = (*PathScreen)(nil)

// New creates the path browser.
func New(session *state.Session) *PathScreen {
	return &PathScreen{
		session: session,
		paths:   session.Engine.Catalog().Paths(),
	}
}

// Init implements router.Screen.
func (s *PathScreen) Init() tea.Cmd {
	return nil
}

// Update implements router.Screen.
func (s *PathScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
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
		if s.cursor < len(s.paths)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.paths) == 0 {
			return s, nil
		}
		path := s.paths[s.cursor]
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: newSkillScreen(s.session, path)}
		}
	case "m":
		if len(s.paths) == 0 {
			return s, nil
		}
		path := s.paths[s.cursor]
		// Professions are open to every build and cannot be the main path.
		if !catalog.IsProfession(path) {
			s.session.Character.MainPath = path
			if s.session.Autosave != nil {
				s.session.Autosave()
			}
		}
	}
	return s, nil
}

// View implements router.Screen.
func (s *PathScreen) View(width, height int) string {
	c := s.session.Character

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Choose a path to browse") + "\n\n")

	for i, path := range s.paths {
		marker := pathMarker(s.session, path)
		line := fmt.Sprintf("%s %s", path, marker)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	if c.MainPath == "" {
		b.WriteString("\n" + theme.Bad.Render("  Choose your main Path before buying skills."))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

// Title implements router.Screen.
func (s *PathScreen) Title() string {
	return "Build Skills"
}

// KeyHints implements router.KeyHintProvider.
func (s *PathScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Browse"},
		{Key: "M", Description: "Set main path"},
		{Key: "Esc", Description: "Back"},
	}
}

// pathMarker annotates a path relative to the character's main path.
func pathMarker(session *state.Session, path string) string {
	switch engine.Classify(path, session.Character.MainPath) {
	case engine.ClassMainPath:
		return theme.Good.Render("(main path)")
	case engine.ClassProfession:
		return theme.Hint.Render("(profession)")
	default:
		return ""
	}
}
