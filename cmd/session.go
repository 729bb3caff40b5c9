package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/engine"
	"github.com/ashvale/pathbound/internal/store"
)

// session bundles everything a subcommand needs to operate on one saved
// character.
type session struct {
	store     *store.Store
	engine    *engine.Engine
	character *character.Character
	saveName  string
}

func (s *session) close() {
	_ = s.store.Close()
}

// save writes the character document back to the store.
func (s *session) save(ctx context.Context) error {
	var buf bytes.Buffer
	if err := s.character.Save(&buf); err != nil {
		return fmt.Errorf("encode character: %w", err)
	}
	return s.store.SaveCharacter(ctx, s.saveName, buf.Bytes())
}

// record appends one history entry, ignoring failures so a history hiccup
// never blocks a build change.
func (s *session) record(ctx context.Context, action, path, skill string, cost int) {
	err := s.store.AppendHistory(ctx, store.HistoryEntry{
		Character: s.saveName,
		Action:    action,
		Path:      path,
		Skill:     skill,
		Cost:      cost,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadCatalog reads the skill catalog CSV and builds the rules engine.
func loadCatalog(cmd *cobra.Command) (*engine.Engine, error) {
	path := resolveCatalogPath(cmd)
	if path == "" {
		return nil, errors.New("no skill catalog configured; pass --catalog or set PATHBOUND_CATALOG")
	}
	cat, err := catalog.LoadCSVFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return engine.New(cat, nil), nil
}

// saveName resolves which saved character a command operates on: the
// --character flag if given, otherwise the most recently updated save.
func saveName(cmd *cobra.Command, st *store.Store) (string, error) {
	if name, _ := cmd.Flags().GetString("character"); name != "" {
		return name, nil
	}
	saves, err := st.ListCharacters(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(saves) == 0 {
		return "", errors.New("no saved characters; create one with: pathbound new <name>")
	}
	return saves[0].Name, nil
}

// openSession opens the store, loads the catalog, and loads the selected
// character document.
func openSession(cmd *cobra.Command) (*session, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	eng, err := loadCatalog(cmd)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	name, err := saveName(cmd, st)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	raw, err := st.LoadCharacter(cmd.Context(), name)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	c, err := character.Parse(raw)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("saved character %q: %w", name, err)
	}
	c.Recompute()

	return &session{store: st, engine: eng, character: c, saveName: name}, nil
}
