package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a character, or every save with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset deletes saved data; re-run with --force to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if all, _ := cmd.Flags().GetBool("all"); all {
			if err := st.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("All saved characters and history deleted.")
			return nil
		}

		name, err := saveName(cmd, st)
		if err != nil {
			return err
		}
		if err := st.DeleteCharacter(cmd.Context(), name); err != nil {
			return err
		}
		fmt.Printf("Deleted %s.\n", name)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Delete every save, not just the selected character")
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
