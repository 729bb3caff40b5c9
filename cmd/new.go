package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/store"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if _, err := st.LoadCharacter(cmd.Context(), name); err == nil {
			return fmt.Errorf("character %q already exists", name)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		c := character.New()
		c.Name = name
		c.Player, _ = cmd.Flags().GetString("player")
		c.MainPath, _ = cmd.Flags().GetString("path")
		c.Faction, _ = cmd.Flags().GetString("faction")
		c.Organizations, _ = cmd.Flags().GetStringSlice("org")

		var buf bytes.Buffer
		if err := c.Save(&buf); err != nil {
			return fmt.Errorf("encode character: %w", err)
		}
		if err := st.SaveCharacter(cmd.Context(), name, buf.Bytes()); err != nil {
			return err
		}

		fmt.Printf("Created %s.\n", name)
		return nil
	},
}

func init() {
	newCmd.Flags().String("player", "", "Player name")
	newCmd.Flags().String("path", "", "Main path")
	newCmd.Flags().String("faction", "", "Faction")
	newCmd.Flags().StringSlice("org", nil, "Organization membership (repeatable)")
}
