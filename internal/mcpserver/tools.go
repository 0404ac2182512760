package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/panbanda/xref/internal/analyzer"
	"github.com/panbanda/xref/internal/output"
	"github.com/panbanda/xref/internal/repomap"
	"github.com/panbanda/xref/pkg/models"
	toon "github.com/toon-format/toon-go"
)

// Common input structures for tools

// MapInput is the base input for all xref tools.
type MapInput struct {
	MapPath string `json:"map_path,omitempty" jsonschema:"Path to the repository map JSON file. Defaults to repomap.json."`
	Format  string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// UnusedInput adds unused-export detection options.
type UnusedInput struct {
	MapInput
	EntryPoints []string `json:"entry_points,omitempty" jsonschema:"Basenames whose exports are never reported. Defaults to index, main, app, server, cli, bin."`
}

// OrphanInput adds orphan detection options.
type OrphanInput struct {
	MapInput
	InfraSuffixes   []string `json:"infra_suffixes,omitempty" jsonschema:"Class name suffixes that mark infrastructure. Defaults to the standard 20 suffixes."`
	FactoryPrefixes []string `json:"factory_prefixes,omitempty" jsonschema:"Function name prefixes that mark factories. Defaults to create, make, build, new, init, setup, connect."`
}

// GraphInput adds graph rendering options.
type GraphInput struct {
	MapInput
	Render string `json:"render,omitempty" jsonschema:"Graph rendering: mermaid or dot. Omit for structured node/edge output."`
}

// UsagesInput locates usages of a single exported symbol.
type UsagesInput struct {
	MapInput
	File   string `json:"file" jsonschema:"File that exports the symbol, as it appears in the map."`
	Symbol string `json:"symbol" jsonschema:"Exported symbol name to look up."`
}

// Helper functions

func getMapPath(input MapInput) string {
	if input.MapPath == "" {
		return "repomap.json"
	}
	return input.MapPath
}

func getFormat(input MapInput) output.Format {
	switch input.Format {
	case "json":
		return output.FormatJSON
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatTOON
	}
}

func formatOutput(data any, format output.Format) (string, error) {
	out, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return "", err
	}
	if format == output.FormatMarkdown {
		return "```\n" + string(out) + "\n```", nil
	}
	return string(out), nil
}

func toolResult(data any, format output.Format) (*mcp.CallToolResult, any, error) {
	text, err := formatOutput(data, format)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

func loadMap(input MapInput) (*models.RepoMap, error) {
	repo, _, err := repomap.Load(getMapPath(input))
	return repo, err
}

// Tool handlers

func handleFindUnusedExports(ctx context.Context, req *mcp.CallToolRequest, input UnusedInput) (*mcp.CallToolResult, any, error) {
	repo, err := loadMap(input.MapInput)
	if err != nil {
		return toolError(err.Error())
	}

	var opts []analyzer.UnusedOption
	if len(input.EntryPoints) > 0 {
		opts = append(opts, analyzer.WithEntryPoints(input.EntryPoints))
	}

	result := analyzer.NewUnusedAnalyzer(opts...).Analyze(repo, nil)
	return toolResult(result, getFormat(input.MapInput))
}

func handleFindOrphans(ctx context.Context, req *mcp.CallToolRequest, input OrphanInput) (*mcp.CallToolResult, any, error) {
	repo, err := loadMap(input.MapInput)
	if err != nil {
		return toolError(err.Error())
	}

	var opts []analyzer.OrphanOption
	if len(input.InfraSuffixes) > 0 {
		opts = append(opts, analyzer.WithInfraSuffixes(input.InfraSuffixes))
	}
	if len(input.FactoryPrefixes) > 0 {
		opts = append(opts, analyzer.WithFactoryPrefixes(input.FactoryPrefixes))
	}

	result := analyzer.NewOrphanAnalyzer(opts...).Analyze(repo, nil)
	return toolResult(result, getFormat(input.MapInput))
}

func handleFindCycles(ctx context.Context, req *mcp.CallToolRequest, input MapInput) (*mcp.CallToolResult, any, error) {
	repo, err := loadMap(input)
	if err != nil {
		return toolError(err.Error())
	}

	result := analyzer.NewGraphAnalyzer().FindCycles(repo)
	return toolResult(result, getFormat(input))
}

func handleDependencyGraph(ctx context.Context, req *mcp.CallToolRequest, input GraphInput) (*mcp.CallToolResult, any, error) {
	repo, err := loadMap(input.MapInput)
	if err != nil {
		return toolError(err.Error())
	}

	graph := analyzer.NewGraphAnalyzer().BuildGraph(repo)

	switch input.Render {
	case "mermaid":
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: graph.ToMermaid()}},
		}, nil, nil
	case "dot":
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: graph.ToDOT()}},
		}, nil, nil
	}

	return toolResult(graph, getFormat(input.MapInput))
}

func handleGraphMetrics(ctx context.Context, req *mcp.CallToolRequest, input MapInput) (*mcp.CallToolResult, any, error) {
	repo, err := loadMap(input)
	if err != nil {
		return toolError(err.Error())
	}

	graph := analyzer.NewGraphAnalyzer().BuildGraph(repo)
	result := analyzer.NewMetricsAnalyzer().Calculate(graph)
	return toolResult(result, getFormat(input))
}

func handleFindUsages(ctx context.Context, req *mcp.CallToolRequest, input UsagesInput) (*mcp.CallToolResult, any, error) {
	if input.File == "" || input.Symbol == "" {
		return toolError("file and symbol are required")
	}

	repo, err := loadMap(input.MapInput)
	if err != nil {
		return toolError(err.Error())
	}

	ua := analyzer.NewUsageAnalyzer()
	idx := ua.BuildIndex(repo)
	usages := ua.FindUsages(idx, input.File, input.Symbol)

	result := struct {
		File   string   `json:"file" toon:"file"`
		Symbol string   `json:"symbol" toon:"symbol"`
		Usages []string `json:"usages" toon:"usages"`
	}{input.File, input.Symbol, usages}
	return toolResult(result, getFormat(input.MapInput))
}
