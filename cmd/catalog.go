package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/uses"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [path]",
	Short: "Browse the skill catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		cat := eng.Catalog()

		if len(args) == 0 {
			for _, path := range cat.Paths() {
				kind := ""
				if catalog.IsProfession(path) {
					kind = "  (profession)"
				}
				fmt.Printf("%-24s %d skills%s\n", path, len(cat.SkillsForPath(path)), kind)
			}
			return nil
		}

		skills := cat.SkillsForPath(args[0])
		if len(skills) == 0 {
			return fmt.Errorf("no path %q in the catalog", args[0])
		}

		for _, s := range skills {
			u := uses.Compute(s, s.Tier, uses.MilestoneFlags{})
			line := fmt.Sprintf("T%d  %-32s %s", s.Tier, s.Name, u.Display)
			if s.Prerequisite != "" {
				line += "  [requires: " + s.Prerequisite + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}
