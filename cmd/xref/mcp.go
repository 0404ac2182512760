package main

import (
	"context"

	"github.com/panbanda/xref/internal/mcpserver"
	"github.com/urfave/cli/v2"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes xref's detectors
as tools that LLMs can invoke against a repository map.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "xref": {
        "command": "xref",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - find_unused_exports          Exports nothing imports
  - find_orphaned_infrastructure Unused service classes and factories
  - find_circular_dependencies   Circular import chains
  - dependency_graph             File dependency graph (mermaid/dot)
  - graph_metrics                PageRank and connectivity metrics
  - find_usages                  Files using a specific symbol`,
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	server := mcpserver.NewServer(version)
	return server.Run(context.Background())
}
