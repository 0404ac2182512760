package analyzer

import (
	"sort"

	"github.com/panbanda/xref/pkg/models"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

const (
	pageRankDamping   = 0.85
	pageRankTolerance = 1e-6
)

// MetricsAnalyzer computes centrality and structure metrics over a built
// dependency graph. Cycle enumeration stays with GraphAnalyzer; Tarjan SCC
// here only feeds the summary count.
type MetricsAnalyzer struct{}

// NewMetricsAnalyzer creates a metrics analyzer.
func NewMetricsAnalyzer() *MetricsAnalyzer {
	return &MetricsAnalyzer{}
}

// gonumGraph holds the gonum representation and ID mappings.
type gonumGraph struct {
	directed   *simple.DirectedGraph
	undirected *simple.UndirectedGraph
	fileToID   map[string]int64
}

// toGonumGraph converts the dependency graph to gonum graph types.
// Self-loops are skipped because gonum's simple graphs reject them; they
// still count toward the strongly-connected summary via the DFS cycle
// detector's output, not here.
func toGonumGraph(graph *models.DependencyGraph) *gonumGraph {
	g := &gonumGraph{
		directed:   simple.NewDirectedGraph(),
		undirected: simple.NewUndirectedGraph(),
		fileToID:   make(map[string]int64, len(graph.Nodes)),
	}

	for i, node := range graph.Nodes {
		id := int64(i)
		g.fileToID[node] = id
		g.directed.AddNode(simple.Node(id))
		g.undirected.AddNode(simple.Node(id))
	}

	for _, edge := range graph.Edges {
		fromID, okFrom := g.fileToID[edge.From]
		toID, okTo := g.fileToID[edge.To]
		if !okFrom || !okTo || fromID == toID {
			continue
		}
		g.directed.SetEdge(simple.Edge{F: simple.Node(fromID), T: simple.Node(toID)})
		g.undirected.SetEdge(simple.Edge{F: simple.Node(fromID), T: simple.Node(toID)})
	}

	return g
}

// Calculate computes PageRank, degree counts, density, weakly connected
// components, and the number of nontrivial strongly connected components
// for the given graph.
func (a *MetricsAnalyzer) Calculate(graph *models.DependencyGraph) *models.GraphMetrics {
	metrics := &models.GraphMetrics{
		NodeMetrics: make([]models.NodeMetric, 0, len(graph.Nodes)),
	}
	metrics.Summary.TotalNodes = len(graph.Nodes)
	metrics.Summary.TotalEdges = len(graph.Edges)
	if len(graph.Nodes) == 0 {
		return metrics
	}

	inDegree := make(map[string]int, len(graph.Nodes))
	outDegree := make(map[string]int, len(graph.Nodes))
	for _, edge := range graph.Edges {
		outDegree[edge.From]++
		inDegree[edge.To]++
	}

	gGraph := toGonumGraph(graph)
	rank := network.PageRank(gGraph.directed, pageRankDamping, pageRankTolerance)

	for _, node := range graph.Nodes {
		metrics.NodeMetrics = append(metrics.NodeMetrics, models.NodeMetric{
			File:      node,
			PageRank:  rank[gGraph.fileToID[node]],
			InDegree:  inDegree[node],
			OutDegree: outDegree[node],
		})
	}
	sort.Slice(metrics.NodeMetrics, func(i, j int) bool {
		mi, mj := metrics.NodeMetrics[i], metrics.NodeMetrics[j]
		if mi.PageRank != mj.PageRank {
			return mi.PageRank > mj.PageRank
		}
		return mi.File < mj.File
	})

	n := float64(len(graph.Nodes))
	metrics.Summary.AvgDegree = float64(len(graph.Edges)) / n
	if len(graph.Nodes) > 1 {
		metrics.Summary.Density = float64(len(graph.Edges)) / (n * (n - 1))
	}

	metrics.Summary.Components = len(topo.ConnectedComponents(gGraph.undirected))

	for _, scc := range topo.TarjanSCC(gGraph.directed) {
		if len(scc) > 1 {
			metrics.Summary.StronglyConnected++
		}
	}

	return metrics
}
