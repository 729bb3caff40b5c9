package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/render"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Print the character sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		fmt.Println(render.Sheet(sess.engine, sess.character))
		return nil
	},
}
