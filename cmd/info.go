package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "List saved characters and show the selected one",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}

		saves, err := st.ListCharacters(cmd.Context())
		_ = st.Close()
		if err != nil {
			return err
		}
		if len(saves) == 0 {
			fmt.Println("No saved characters. Create one with: pathbound new <name>")
			return nil
		}

		selected, _ := cmd.Flags().GetString("character")
		if selected == "" {
			selected = saves[0].Name
		}

		for _, s := range saves {
			marker := " "
			if s.Name == selected {
				marker = "*"
			}
			fmt.Printf("%s %-24s updated %s\n", marker, s.Name, s.UpdatedAt.Format("2006-01-02 15:04"))
		}

		sess, err := openSession(cmd)
		if err != nil {
			// Catalog may be unconfigured; the save list above is still useful.
			fmt.Fprintln(cmd.ErrOrStderr(), "note:", err)
			return nil
		}
		defer sess.close()

		c := sess.character
		totals := c.Recompute()
		available := sess.engine.AvailablePoints(c)

		fmt.Println()
		fmt.Printf("%s (%s)\n", c.Name, orDash(c.MainPath))
		fmt.Printf("Player: %s   Faction: %s\n", orDash(c.Player), orDash(c.Faction))
		if len(c.Organizations) > 0 {
			fmt.Printf("Organizations: %s\n", strings.Join(c.Organizations, ", "))
		}
		fmt.Printf("Tier %d   %d SP available   %d skills   %d events (%d qualifying)\n",
			totals.Tier, available, len(c.Purchased), len(c.Events), totals.QualifyingCount)
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
