package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// stubScreen is a minimal Screen for router tests.
type stubScreen struct {
	title string
}

func (s *stubScreen) Init() tea.Cmd                       { return nil }
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd)    { return s, nil }
func (s *stubScreen) View(width, height int) string       { return s.title }
func (s *stubScreen) Title() string                       { return s.title }

func TestPushPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Fatal("Active should be the initial screen")
	}

	builder := &stubScreen{title: "builder"}
	r.Push(builder)
	if r.Depth() != 2 || r.Active() != builder {
		t.Fatalf("after push: depth %d, active %v", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 || r.Active() != home {
		t.Fatalf("after pop: depth %d", r.Depth())
	}

	// Popping the last screen is a no-op.
	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("pop below depth 1: depth %d", r.Depth())
	}
}

func TestUpdateHandlesNavigationMsgs(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "events"}})
	if r.Active().Title() != "events" {
		t.Fatalf("active = %q, want events", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("active = %q, want home", r.Active().Title())
	}
}
