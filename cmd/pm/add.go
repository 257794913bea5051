package main

import (
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		Long:  "Prompt for the name, username, password and notes of a new entry and save it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := a.entries(cmd)
			s, err := uc.Open(a.file)
			if err != nil {
				return err
			}

			next, err := uc.Add(s)
			if err != nil {
				return err
			}
			return a.save(next)
		},
	}

	return cmd
}
