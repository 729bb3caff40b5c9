// Package state carries the shared session dependencies handed to each
// screen: the rules engine, the character being edited, and the persistence
// callbacks.
package state

import (
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/engine"
)

// Recorder appends one history entry; action is a store action constant.
type Recorder func(action, path, name string, cost int)

// Session is the shared state for one editing session.
type Session struct {
	Engine    *engine.Engine
	Character *character.Character

	// Record and Autosave may be nil when no store is attached.
	Record   Recorder
	Autosave func()
}

// Changed notes a build mutation: records it and autosaves.
func (s *Session) Changed(action, path, name string, cost int) {
	if s.Record != nil {
		s.Record(action, path, name, cost)
	}
	if s.Autosave != nil {
		s.Autosave()
	}
}
