package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/choplin/pm/internal/clipboard"
)

// newClipboard is a test seam for the system clipboard.
var newClipboard = func() clipboard.Sink { return clipboard.System{} }

func newClipCmd(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "clip <entry>",
		Short: "Copy an entry's password to the clipboard",
		Long: `Copy an entry's password to the clipboard and print its username.

The command then waits and clears the clipboard, unless something else has
been copied in the meantime. Interrupting the wait clears it immediately.
A negative --timeout leaves the password on the clipboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := a.entries(cmd)
			s, name, err := a.openEntry(uc, args[0])
			if err != nil {
				return err
			}

			wait := a.cfg.ClipTimeout
			if cmd.Flags().Changed("timeout") {
				wait = timeout
			}
			return uc.Clip(cmd.Context(), s, name, newClipboard(), wait)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "How long the password stays on the clipboard (default from config, else 10s)")

	return cmd
}
