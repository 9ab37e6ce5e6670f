package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this erases your profile, progress, and history; re-run with --yes to confirm")
		}

		a, closer, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = closer() }()

		if err := a.ResetState(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All learner data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
