package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadCharacter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := []byte(`{"purchased": [], "events": []}`)
	if err := s.SaveCharacter(ctx, "Maelis", doc); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadCharacter(ctx, "Maelis")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(doc) {
		t.Errorf("loaded document = %s", got)
	}

	// Upsert replaces.
	doc2 := []byte(`{"name": "Maelis", "purchased": [], "events": []}`)
	if err := s.SaveCharacter(ctx, "Maelis", doc2); err != nil {
		t.Fatal(err)
	}
	got, err = s.LoadCharacter(ctx, "Maelis")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(doc2) {
		t.Errorf("upsert did not replace: %s", got)
	}
}

func TestLoadCharacterNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LoadCharacter(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveCharacterRequiresName(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveCharacter(context.Background(), "", []byte(`{}`)); err == nil {
		t.Error("expected error for empty save name")
	}
}

func TestListAndDeleteCharacters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Maelis", "Brann"} {
		if err := s.SaveCharacter(ctx, name, []byte(`{"purchased": [], "events": []}`)); err != nil {
			t.Fatal(err)
		}
	}

	saves, err := s.ListCharacters(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(saves) != 2 {
		t.Fatalf("got %d saves, want 2", len(saves))
	}

	if err := s.DeleteCharacter(ctx, "Brann"); err != nil {
		t.Fatal(err)
	}
	saves, err = s.ListCharacters(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(saves) != 1 || saves[0].Name != "Maelis" {
		t.Errorf("saves after delete = %v", saves)
	}
}

func TestHistoryAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entries := []HistoryEntry{
		{Character: "Maelis", Action: ActionBuy, Path: "Warrior", Skill: "Shield Wall", Cost: 1},
		{Character: "Maelis", Action: ActionBuy, Path: "Ranger", Skill: "Track", Cost: 1},
		{Character: "Maelis", Action: ActionRemove, Path: "Ranger", Skill: "Track"},
		{Character: "Brann", Action: ActionBuy, Path: "Bard", Skill: "Rallying Song", Cost: 1},
	}
	for _, e := range entries {
		if err := s.AppendHistory(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.History(ctx, "Maelis", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for _, e := range got {
		if e.Character != "Maelis" {
			t.Errorf("foreign entry in history: %+v", e)
		}
		if e.ID == "" {
			t.Error("entry missing generated id")
		}
	}

	limited, err := s.History(ctx, "Maelis", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d entries", len(limited))
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveCharacter(ctx, "Maelis", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendHistory(ctx, HistoryEntry{Character: "Maelis", Action: ActionBuy}); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	saves, err := s.ListCharacters(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(saves) != 0 {
		t.Errorf("saves remain after reset: %v", saves)
	}
}
