package models

import (
	"fmt"
	"strings"
)

// GraphEdge is a file-to-file dependency: From imports To.
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DependencyGraph is the full file dependency graph. Nodes lists every file
// in the repo map, including isolated ones. Edges carries one entry per
// resolved import occurrence, so duplicates are possible and consumers
// filtering edges must expect them.
type DependencyGraph struct {
	Nodes []string    `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		Nodes: make([]string, 0),
		Edges: make([]GraphEdge, 0),
	}
}

// AddNode adds a node to the graph.
func (g *DependencyGraph) AddNode(file string) {
	g.Nodes = append(g.Nodes, file)
}

// AddEdge adds an edge to the graph.
func (g *DependencyGraph) AddEdge(from, to string) {
	g.Edges = append(g.Edges, GraphEdge{From: from, To: to})
}

// ToMermaid generates Mermaid diagram syntax from the graph.
func (g *DependencyGraph) ToMermaid() string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		b.WriteString("    " + sanitizeMermaidID(node) + "[\"" + node + "\"]\n")
	}

	for _, edge := range g.Edges {
		b.WriteString("    " + sanitizeMermaidID(edge.From) + " --> " + sanitizeMermaidID(edge.To) + "\n")
	}

	return b.String()
}

// ToDOT generates Graphviz DOT syntax from the graph.
func (g *DependencyGraph) ToDOT() string {
	var b strings.Builder
	b.WriteString("digraph dependencies {\n")
	b.WriteString("    rankdir=LR;\n")

	for _, node := range g.Nodes {
		fmt.Fprintf(&b, "    %q;\n", node)
	}
	for _, edge := range g.Edges {
		fmt.Fprintf(&b, "    %q -> %q;\n", edge.From, edge.To)
	}

	b.WriteString("}\n")
	return b.String()
}

// sanitizeMermaidID makes an ID safe for Mermaid.
func sanitizeMermaidID(id string) string {
	var b strings.Builder
	for _, c := range id {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			b.WriteRune(c)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// GraphMetrics holds centrality and structure metrics for the file graph.
type GraphMetrics struct {
	NodeMetrics []NodeMetric `json:"node_metrics"`
	Summary     GraphSummary `json:"summary"`
}

// NodeMetric is the computed metrics for a single file node.
type NodeMetric struct {
	File      string  `json:"file"`
	PageRank  float64 `json:"pagerank"`
	InDegree  int     `json:"in_degree"`
	OutDegree int     `json:"out_degree"`
}

// GraphSummary provides aggregate graph statistics.
type GraphSummary struct {
	TotalNodes        int     `json:"total_nodes"`
	TotalEdges        int     `json:"total_edges"`
	AvgDegree         float64 `json:"avg_degree"`
	Density           float64 `json:"density"`
	Components        int     `json:"components"`
	StronglyConnected int     `json:"strongly_connected"`
}
