package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/panbanda/xref/internal/analyzer"
	"github.com/panbanda/xref/internal/output"
	"github.com/urfave/cli/v2"
)

func unusedCmd() *cli.Command {
	return &cli.Command{
		Name:      "unused",
		Aliases:   []string{"ue"},
		Usage:     "Find exported symbols nothing imports",
		ArgsUsage: "[map.json]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "entry-points",
				Usage: "Override entry point basenames whose exports are skipped",
			},
			&cli.BoolFlag{
				Name:  "git-age",
				Usage: "Annotate findings with the last commit date of each file",
			},
			&cli.StringFlag{
				Name:  "repo",
				Value: ".",
				Usage: "Repository root for --git-age",
			},
		},
		Action: runUnusedCmd,
	}
}

func runUnusedCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repo, _, err := loadRepoMap(c)
	if err != nil {
		return err
	}

	entryPoints := cfg.Detectors.EntryPoints
	if eps := c.StringSlice("entry-points"); len(eps) > 0 {
		entryPoints = eps
	}

	ua := newUsageAnalyzer(cfg)
	unused := analyzer.NewUnusedAnalyzer(
		analyzer.WithEntryPoints(entryPoints),
		analyzer.WithUnusedUsageAnalyzer(ua),
	)
	analysis := unused.Analyze(repo, nil)

	withAge := c.Bool("git-age")
	if withAge {
		if err := annotateGitAge(analysis.Findings, c.String("repo")); err != nil {
			return err
		}
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if analysis.Summary.Total == 0 && formatter.Format() == output.FormatText {
		color.Green("No unused exports found in %d files", repo.Len())
		return nil
	}

	headers := []string{"Location", "Symbol", "Kind", "Certainty"}
	if withAge {
		headers = append(headers, "Last Commit")
	}

	table := output.NewTable(
		"Unused Exports",
		headers,
		findingRows(analysis.Findings, withAge),
		[]string{
			fmt.Sprintf("Total: %d", analysis.Summary.Total),
			fmt.Sprintf("Medium: %d", analysis.Summary.ByCertainty["MEDIUM"]),
			fmt.Sprintf("Low: %d", analysis.Summary.ByCertainty["LOW"]),
			"",
		},
		analysis,
	)

	return formatter.Output(table)
}
