package analyzer

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/panbanda/xref/pkg/models"
)

// GraphAnalyzer builds the file dependency graph and enumerates import
// cycles.
type GraphAnalyzer struct {
	resolver *Resolver
}

// GraphOption is a functional option for configuring GraphAnalyzer.
type GraphOption func(*GraphAnalyzer)

// WithGraphResolver sets the import resolver used during graph building.
func WithGraphResolver(r *Resolver) GraphOption {
	return func(a *GraphAnalyzer) {
		if r != nil {
			a.resolver = r
		}
	}
}

// NewGraphAnalyzer creates a graph analyzer with a default resolver.
func NewGraphAnalyzer(opts ...GraphOption) *GraphAnalyzer {
	a := &GraphAnalyzer{resolver: NewResolver()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildGraph constructs the directed file graph: every repo map key becomes
// a node (isolated files included) and every resolved import becomes an
// edge. Unresolved (external) imports produce no edge. Nodes are emitted in
// sorted order so output is deterministic.
func (a *GraphAnalyzer) BuildGraph(repo *models.RepoMap) *models.DependencyGraph {
	graph := models.NewDependencyGraph()
	if repo == nil {
		return graph
	}

	for _, file := range repo.FileKeys() {
		graph.AddNode(file)
	}
	for _, importer := range repo.FileKeys() {
		for _, imp := range repo.Files[importer].Imports {
			if target, ok := a.resolver.Resolve(repo, importer, imp.Source); ok {
				graph.AddEdge(importer, target)
			}
		}
	}

	return graph
}

// FindCycles enumerates import cycles with a depth-first search carrying an
// explicit recursion stack. Each cycle is reported as the path slice from
// the first occurrence of the closing node through the current tail, with
// the closing node appended once more, so the loop-back is explicit:
// a self-import reads [f, f], a mutual import reads [a, b, a].
//
// Nodes are never re-explored once visited, but cycle membership is tested
// against the recursion stack, not the visited set, so cycles reachable
// only through already-visited territory are still caught. The search
// starts from every unvisited node in sorted order to cover disconnected
// components.
func (a *GraphAnalyzer) FindCycles(repo *models.RepoMap) *models.CycleAnalysis {
	analysis := &models.CycleAnalysis{Cycles: make([][]string, 0)}
	graph := a.BuildGraph(repo)

	ids := make(map[string]uint32, len(graph.Nodes))
	for i, node := range graph.Nodes {
		ids[node] = uint32(i)
	}
	adjacency := make(map[string][]string, len(graph.Nodes))
	for _, edge := range graph.Edges {
		adjacency[edge.From] = append(adjacency[edge.From], edge.To)
	}

	visited := roaring.New()
	onStack := roaring.New()
	path := make([]string, 0, len(graph.Nodes))

	var walk func(node string)
	walk = func(node string) {
		id := ids[node]
		visited.Add(id)
		onStack.Add(id)
		path = append(path, node)

		for _, next := range adjacency[node] {
			nextID := ids[next]
			if !visited.Contains(nextID) {
				walk(next)
			} else if onStack.Contains(nextID) {
				analysis.Cycles = append(analysis.Cycles, closeCycle(path, next))
			}
		}

		onStack.Remove(id)
		path = path[:len(path)-1]
	}

	for _, node := range graph.Nodes {
		if !visited.Contains(ids[node]) {
			walk(node)
		}
	}

	analysis.CalculateSummary()
	return analysis
}

// closeCycle copies the path from the first occurrence of closing to the
// tail and appends closing again.
func closeCycle(path []string, closing string) []string {
	start := 0
	for i, node := range path {
		if node == closing {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-start+1)
	cycle = append(cycle, path[start:]...)
	return append(cycle, closing)
}
