package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the build history for a character",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		name, err := saveName(cmd, st)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := st.History(cmd.Context(), name, limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Printf("No history for %s yet.\n", name)
			return nil
		}

		fmt.Printf("History for %s:\n", name)
		for _, e := range entries {
			when := e.CreatedAt.Format("2006-01-02 15:04")
			switch e.Action {
			case store.ActionBuy:
				fmt.Printf("%s  bought %s (%s) for %d SP\n", when, e.Skill, e.Path, e.Cost)
			case store.ActionRemove:
				fmt.Printf("%s  removed %s (%s)\n", when, e.Skill, e.Path)
			default:
				fmt.Printf("%s  %s %s\n", when, e.Action, e.Skill)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 50, "Maximum entries to show (0 for all)")
}
