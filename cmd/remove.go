package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/store"
)

var removeCmd = &cobra.Command{
	Use:   "remove <path> <skill>",
	Short: "Remove a purchased skill and refund its cost",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		path, name := args[0], args[1]
		if !sess.engine.Remove(sess.character, path, name) {
			return fmt.Errorf("%s (%s) is not in the build", name, path)
		}

		sess.record(cmd.Context(), store.ActionRemove, path, name, 0)
		if err := sess.save(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Removed %s (%s). %d SP available.\n",
			name, path, sess.engine.AvailablePoints(sess.character))
		return nil
	},
}
