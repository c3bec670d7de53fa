package mcp

import (
	"github.com/ka2n/mealdb/api"
	"github.com/spf13/cobra"
)

// Command returns the MCP server command. newClient is called once the flags are parsed.
func Command(newClient func() *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Serve the TheMealDB lookups as Model Context Protocol tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServer(newClient()).Run()
		},
	}
}
