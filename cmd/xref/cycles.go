package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/panbanda/xref/internal/analyzer"
	"github.com/panbanda/xref/internal/output"
	"github.com/urfave/cli/v2"
)

func cyclesCmd() *cli.Command {
	return &cli.Command{
		Name:      "cycles",
		Aliases:   []string{"circular"},
		Usage:     "Detect circular import chains",
		ArgsUsage: "[map.json]",
		Action:    runCyclesCmd,
	}
}

func runCyclesCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repo, _, err := loadRepoMap(c)
	if err != nil {
		return err
	}

	ga := analyzer.NewGraphAnalyzer(analyzer.WithGraphResolver(newResolver(cfg)))
	analysis := ga.FindCycles(repo)

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if analysis.Summary.Total == 0 && formatter.Format() == output.FormatText {
		color.Green("No circular dependencies found in %d files", repo.Len())
		return nil
	}

	var rows [][]string
	for i, cycle := range analysis.Cycles {
		size := len(cycle) - 1
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", size),
			strings.Join(cycle, " -> "),
		})
	}

	table := output.NewTable(
		"Circular Dependencies",
		[]string{"#", "Size", "Cycle"},
		rows,
		[]string{
			fmt.Sprintf("Total: %d", analysis.Summary.Total),
			fmt.Sprintf("Largest: %d", analysis.Summary.LargestCycle),
			fmt.Sprintf("Files Involved: %d", analysis.Summary.FilesInvolved),
		},
		analysis,
	)

	return formatter.Output(table)
}
