package main

import (
	"github.com/spf13/cobra"

	"github.com/choplin/pm/internal/mcp"
	"github.com/choplin/pm/internal/store"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Serve read-only Model Context Protocol tools for the entries file over stdio.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Fail early on a missing or malformed file.
			if _, err := store.Load(a.file); err != nil {
				return err
			}

			server := mcp.NewServer(a.file, version, a.log)
			return server.Run(cmd.Context())
		},
	}

	return cmd
}
