package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/app"
	"github.com/ashvale/pathbound/internal/app/state"
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/store"
)

// runApp opens the store, loads the catalog and character, and launches the
// TUI. With no saves yet it starts a fresh sheet under the --character name.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eng, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	name, c, err := loadOrCreate(cmd, st)
	if err != nil {
		return err
	}

	sess := &session{store: st, engine: eng, character: c, saveName: name}
	ctx := cmd.Context()

	ui := &state.Session{
		Engine:    eng,
		Character: c,
		Record: func(action, path, skill string, cost int) {
			sess.record(ctx, action, path, skill, cost)
		},
		Autosave: func() {
			if err := sess.save(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "autosave failed:", err)
			}
		},
	}

	if err := app.Run(ui); err != nil {
		return err
	}
	return sess.save(ctx)
}

func loadOrCreate(cmd *cobra.Command, st *store.Store) (string, *character.Character, error) {
	name, err := saveName(cmd, st)
	if err != nil {
		// No saves yet: start a blank sheet under the flag name.
		name, _ = cmd.Flags().GetString("character")
		if name == "" {
			name = "adventurer"
		}
		c := character.New()
		c.Name = name
		return name, c, nil
	}

	raw, err := st.LoadCharacter(cmd.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		c := character.New()
		c.Name = name
		return name, c, nil
	}
	if err != nil {
		return "", nil, err
	}

	c, err := character.Parse(raw)
	if err != nil {
		return "", nil, fmt.Errorf("saved character %q: %w", name, err)
	}
	c.Recompute()
	return name, c, nil
}
