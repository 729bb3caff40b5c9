package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/catalog"
	"github.com/ashvale/pathbound/internal/character"
	"github.com/ashvale/pathbound/internal/engine"
	"github.com/ashvale/pathbound/internal/enhance"
	"github.com/ashvale/pathbound/internal/store"
)

var buyCmd = &cobra.Command{
	Use:   "buy <path> <skill>",
	Short: "Purchase a skill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		path, name := args[0], args[1]
		skill, ok := sess.engine.Catalog().Lookup(path, name)
		if !ok {
			return fmt.Errorf("no skill %q on path %q in the catalog", name, path)
		}

		// A Sharp Mind purchase may come with an enhancement target.
		if target, _ := cmd.Flags().GetString("target"); target != "" {
			sess.engine.RegisterHook(enhance.NewSharpMind(targetSelector(target)))
		}

		free, _ := cmd.Flags().GetBool("free")
		cost, err := sess.engine.Purchase(sess.character, skill, free)
		var rejection *engine.RejectionError
		if errors.As(err, &rejection) {
			return errors.New(rejection.Reason)
		}
		if err != nil {
			return err
		}

		sess.record(cmd.Context(), store.ActionBuy, skill.Path, skill.Name, cost)
		if err := sess.save(cmd.Context()); err != nil {
			return err
		}

		remaining := sess.engine.AvailablePoints(sess.character)
		if free {
			fmt.Printf("Added %s (%s) for free. %d SP remaining.\n", skill.Name, skill.Path, remaining)
		} else {
			fmt.Printf("Bought %s (%s) for %d SP. %d SP remaining.\n", skill.Name, skill.Path, cost, remaining)
		}

		for _, e := range sess.character.Enhancements {
			if e.SourceName == skill.Name && e.SourcePath == skill.Path {
				fmt.Printf("%s applied to %s (%s).\n", e.Effect, e.TargetName, e.TargetPath)
			}
		}
		return nil
	},
}

// targetSelector picks the enhancement target whose name matches the flag
// value. Declines when nothing matches so the purchase still goes through.
func targetSelector(name string) enhance.Selector {
	want := catalog.Normalize(name)
	return func(targets []character.PurchasedSkill) (int, bool) {
		for i, t := range targets {
			if catalog.Normalize(t.Name) == want {
				return i, true
			}
		}
		return 0, false
	}
}

func init() {
	buyCmd.Flags().Bool("free", false, "Record the skill as a free grant (no point cost)")
	buyCmd.Flags().String("target", "", "Main-path skill to enhance when buying Sharp Mind")
}
