// Package home is the landing screen: character summary plus navigation.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashvale/pathbound/internal/app/state"
	"github.com/ashvale/pathbound/internal/router"
	"github.com/ashvale/pathbound/internal/screens/builder"
	"github.com/ashvale/pathbound/internal/screens/events"
	"github.com/ashvale/pathbound/internal/screens/sheet"
	"github.com/ashvale/pathbound/internal/ui/components"
	"github.com/ashvale/pathbound/internal/ui/theme"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	session *state.Session
	menu    components.Menu
	mode    theme.Mode
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates the home screen over the shared session.
func New(session *state.Session) *HomeScreen {
	h := &HomeScreen{session: session, mode: theme.FromEnv()}
	theme.Apply(h.mode)

	items := []components.MenuItem{
		{Label: "BUILD SKILLS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: builder.New(session)}
			}
		}},
		{Label: "EVENT LOG", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: events.New(session)}
			}
		}},
		{Label: "CHARACTER SHEET", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sheet.New(session)}
			}
		}},
		{Label: "TOGGLE THEME", Action: func() tea.Cmd {
			h.toggleTheme()
			return nil
		}},
		{Label: "SAVE & EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) toggleTheme() {
	if h.mode == theme.ModeFantasy {
		h.mode = theme.ModeModern
	} else {
		h.mode = theme.ModeFantasy
	}
	theme.Apply(h.mode)
}

// Init implements router.Screen.
func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Update implements router.Screen.
func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// View implements router.Screen.
func (h *HomeScreen) View(width, height int) string {
	c := h.session.Character
	totals := c.Recompute()
	available := h.session.Engine.AvailablePoints(c)

	name := c.Name
	if name == "" {
		name = "Unnamed Character"
	}
	path := c.MainPath
	if path == "" {
		path = "no path chosen"
	}

	summary := theme.Card.Render(strings.Join([]string{
		theme.Title.Render(name),
		theme.Subtitle.Render(path),
		"",
		theme.Body.Render(fmt.Sprintf("Tier %d   •   %d SP available   •   %d skills",
			totals.Tier, available, len(c.Purchased))),
	}, "\n"))

	content := summary + "\n\n" + h.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Title implements router.Screen.
func (h *HomeScreen) Title() string {
	return "Home"
}
