package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/store"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone [path] [2|3]",
	Short: "Show or set milestone progress on tracked paths",
	Long: "Milestone 1 is implicit once a tracked path has any purchases; " +
		"levels 2 and 3 are recorded here and scale the uses of milestone-driven skills.",
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		c := sess.character
		if len(args) == 0 {
			for _, path := range catalog.MilestonePaths {
				flags := c.MilestonesFor(path)
				fmt.Printf("%-16s milestone 2: %s   milestone 3: %s\n",
					path, yesNo(flags.Milestone2), yesNo(flags.Milestone3))
			}
			return nil
		}
		if len(args) != 2 {
			return fmt.Errorf("usage: pathbound milestone <path> <2|3>")
		}

		path := args[0]
		if !catalog.IsMilestonePath(path) {
			return fmt.Errorf("%q is not a milestone-tracked path", path)
		}
		level, err := strconv.Atoi(args[1])
		if err != nil || (level != 2 && level != 3) {
			return fmt.Errorf("milestone level must be 2 or 3, got %q", args[1])
		}

		unset, _ := cmd.Flags().GetBool("unset")
		c.SetMilestone(path, level, !unset)

		sess.record(cmd.Context(), store.ActionEvent, path, fmt.Sprintf("milestone %d", level), 0)
		if err := sess.save(cmd.Context()); err != nil {
			return err
		}

		state := "reached"
		if unset {
			state = "cleared"
		}
		fmt.Printf("Milestone %d %s for %s.\n", level, state, path)
		return nil
	},
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func init() {
	milestoneCmd.Flags().Bool("unset", false, "Clear the milestone instead of setting it")
}
