package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers all xref analysis tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all xref tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "xref",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds all xref tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_unused_exports",
		Description: describeUnusedExports(),
	}, handleFindUnusedExports)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_orphaned_infrastructure",
		Description: describeOrphans(),
	}, handleFindOrphans)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_circular_dependencies",
		Description: describeCycles(),
	}, handleFindCycles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "dependency_graph",
		Description: describeGraph(),
	}, handleDependencyGraph)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "graph_metrics",
		Description: describeMetrics(),
	}, handleGraphMetrics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_usages",
		Description: describeUsages(),
	}, handleFindUsages)
}
