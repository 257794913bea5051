package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <entry>",
		Short: "Show an entry, including its password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := a.entries(cmd)
			s, name, err := a.openEntry(uc, args[0])
			if err != nil {
				return err
			}
			return uc.Show(s, name)
		},
	}

	return cmd
}
