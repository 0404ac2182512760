package main

import (
	"fmt"

	"github.com/panbanda/xref/internal/analyzer"
	"github.com/panbanda/xref/internal/output"
	"github.com/panbanda/xref/pkg/models"
	"github.com/urfave/cli/v2"
)

func graphCmd() *cli.Command {
	return &cli.Command{
		Name:      "graph",
		Aliases:   []string{"dag"},
		Usage:     "Build the file dependency graph",
		ArgsUsage: "[map.json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "mermaid",
				Usage: "Emit a Mermaid diagram",
			},
			&cli.BoolFlag{
				Name:  "dot",
				Usage: "Emit Graphviz DOT",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Include PageRank and connectivity metrics",
			},
		},
		Action: runGraphCmd,
	}
}

func runGraphCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repo, _, err := loadRepoMap(c)
	if err != nil {
		return err
	}

	ga := analyzer.NewGraphAnalyzer(analyzer.WithGraphResolver(newResolver(cfg)))
	graph := ga.BuildGraph(repo)

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if c.Bool("mermaid") {
		fmt.Fprintln(formatter.Writer(), "```mermaid")
		fmt.Fprint(formatter.Writer(), graph.ToMermaid())
		fmt.Fprintln(formatter.Writer(), "```")
		return nil
	}
	if c.Bool("dot") {
		fmt.Fprint(formatter.Writer(), graph.ToDOT())
		return nil
	}

	if c.Bool("metrics") {
		metrics := analyzer.NewMetricsAnalyzer().Calculate(graph)

		if formatter.Format() != output.FormatText && formatter.Format() != output.FormatMarkdown {
			return formatter.Output(struct {
				Graph   *models.DependencyGraph `json:"graph" toon:"graph"`
				Metrics *models.GraphMetrics    `json:"metrics" toon:"metrics"`
			}{graph, metrics})
		}

		var rows [][]string
		for _, nm := range metrics.NodeMetrics {
			rows = append(rows, []string{
				nm.File,
				fmt.Sprintf("%.4f", nm.PageRank),
				fmt.Sprintf("%d", nm.InDegree),
				fmt.Sprintf("%d", nm.OutDegree),
			})
		}

		table := output.NewTable(
			"Dependency Graph Metrics",
			[]string{"File", "PageRank", "In", "Out"},
			rows,
			[]string{
				fmt.Sprintf("Nodes: %d", metrics.Summary.TotalNodes),
				fmt.Sprintf("Edges: %d", metrics.Summary.TotalEdges),
				fmt.Sprintf("Density: %.4f", metrics.Summary.Density),
				fmt.Sprintf("SCCs: %d", metrics.Summary.StronglyConnected),
			},
			metrics,
		)
		return formatter.Output(table)
	}

	var rows [][]string
	for _, edge := range graph.Edges {
		rows = append(rows, []string{edge.From, edge.To})
	}

	table := output.NewTable(
		"Dependency Graph",
		[]string{"From", "To"},
		rows,
		[]string{
			fmt.Sprintf("Nodes: %d", len(graph.Nodes)),
			fmt.Sprintf("Edges: %d", len(graph.Edges)),
		},
		graph,
	)
	return formatter.Output(table)
}
