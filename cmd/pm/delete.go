package main

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <entry>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := a.entries(cmd)
			s, name, err := a.openEntry(uc, args[0])
			if err != nil {
				return err
			}

			next, err := uc.Delete(s, name, force)
			if err != nil {
				return err
			}
			if next.Equal(s) {
				return nil
			}
			return a.save(next)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
