package main

import (
	"github.com/spf13/cobra"
)

func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <entry>",
		Short: "Edit an entry",
		Long:  "Prompt for each field of an entry. An empty answer keeps the current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := a.entries(cmd)
			s, name, err := a.openEntry(uc, args[0])
			if err != nil {
				return err
			}

			next, err := uc.Edit(s, name)
			if err != nil {
				return err
			}
			if next.Equal(s) {
				return nil
			}
			return a.save(next)
		},
	}

	return cmd
}
