package mcpserver

// Tool descriptions with interpretation guidance for LLMs.
// Each description explains what the tool does, when to use it,
// and how to interpret results.

func describeUnusedExports() string {
	return `Finds exported symbols that no other file in the repository map imports.

USE WHEN:
- Cleaning up a codebase before a refactor
- Auditing a module's public surface after feature removal
- Deciding whether an export can be made private or deleted

INTERPRETING RESULTS:
- MEDIUM certainty: the symbol is unused AND no file imports the defining
  file at all. Strong removal candidate.
- LOW certainty: the symbol is unused but the file is imported elsewhere
  (a namespace import or another symbol). Verify before removing.
- Entry point files (index, main, app, server, cli, bin) are skipped
  entirely since external callers consume their exports.

METRICS RETURNED:
- Findings: file, symbol name, line, export kind, certainty
- Summary: total count, counts by certainty, counts by file

Note: dynamic access and consumers outside the map cause false positives.`
}

func describeOrphans() string {
	return `Finds exported infrastructure classes and factory functions that nothing uses.

USE WHEN:
- Hunting abandoned service/provider/manager classes after a migration
- Finding factory helpers left behind by deleted features

INTERPRETING RESULTS:
- All findings are HIGH certainty: the symbol has zero recorded usages
  AND the defining file has zero dependents.
- Classes match on infrastructure suffixes (Client, Service, Provider,
  Manager, Repository, Handler, and similar).
- Functions match on factory prefixes (create, make, build, new, init,
  setup, connect) followed by an uppercase letter.

METRICS RETURNED:
- Findings: file, symbol name, line, orphan type (infrastructure or factory)
- Summary: total count, counts by certainty, counts by file`
}

func describeCycles() string {
	return `Detects circular import chains between files in the repository map.

USE WHEN:
- Debugging initialization-order problems or undefined-at-import errors
- Untangling modules before extracting a package

INTERPRETING RESULTS:
- Each cycle is a file path list where the last element repeats the
  first: [a.js, b.js, a.js] means a imports b and b imports a.
- A self-import appears as [f.js, f.js].
- Cycle size is the number of distinct files involved.

METRICS RETURNED:
- Cycles: list of closed file paths
- Summary: total cycles, largest cycle size, distinct files involved`
}

func describeGraph() string {
	return `Builds the file-level dependency graph from the repository map.

USE WHEN:
- Visualizing module structure (render as mermaid or dot)
- Feeding downstream tooling with the raw node/edge list

INTERPRETING RESULTS:
- Nodes are every file in the map, sorted; isolated files are included.
- Each resolved import contributes one directed edge from importer to
  imported file. Unresolvable specifiers (packages, bad paths) are skipped.

METRICS RETURNED:
- Structured output: nodes and edges
- render=mermaid or render=dot returns a ready-to-paste diagram instead`
}

func describeMetrics() string {
	return `Computes centrality and connectivity metrics over the dependency graph.

USE WHEN:
- Ranking files by structural importance before a risky change
- Measuring how tangled or fragmented a codebase is

INTERPRETING RESULTS:
- PageRank: higher means more of the graph depends on this file,
  directly or transitively. The top entries are the load-bearing files.
- In-degree / out-degree: direct dependents and direct dependencies.
- Components: connected clusters when edge direction is ignored.
- StronglyConnected: clusters of mutually reachable files; anything
  above zero means import cycles exist.

METRICS RETURNED:
- Per-file: pagerank, in_degree, out_degree (sorted by pagerank)
- Summary: node/edge counts, average degree, density, components,
  strongly connected component count`
}

func describeUsages() string {
	return `Lists every file that uses a specific exported symbol.

USE WHEN:
- Assessing blast radius before renaming or changing a signature
- Confirming a symbol is safe to delete

INTERPRETING RESULTS:
- Returns the sorted list of files with a recorded usage of the symbol.
- An empty list means no file-level usage was attributed; namespace
  imports of the defining file do not appear here.

METRICS RETURNED:
- File, symbol, and the list of using files`
}
