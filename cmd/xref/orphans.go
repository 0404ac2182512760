package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/panbanda/xref/internal/analyzer"
	"github.com/panbanda/xref/internal/output"
	"github.com/panbanda/xref/pkg/models"
	"github.com/urfave/cli/v2"
)

func orphansCmd() *cli.Command {
	return &cli.Command{
		Name:      "orphans",
		Aliases:   []string{"oi"},
		Usage:     "Find orphaned infrastructure classes and factory functions",
		ArgsUsage: "[map.json]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "infra-suffixes",
				Usage: "Override infrastructure class name suffixes",
			},
			&cli.StringSliceFlag{
				Name:  "factory-prefixes",
				Usage: "Override factory function name prefixes",
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
		Action: runOrphansCmd,
	}
}

func runOrphansCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repo, _, err := loadRepoMap(c)
	if err != nil {
		return err
	}

	suffixes := cfg.Detectors.InfraSuffixes
	if s := c.StringSlice("infra-suffixes"); len(s) > 0 {
		suffixes = s
	}
	prefixes := cfg.Detectors.FactoryPrefixes
	if p := c.StringSlice("factory-prefixes"); len(p) > 0 {
		prefixes = p
	}

	orphans := analyzer.NewOrphanAnalyzer(
		analyzer.WithInfraSuffixes(suffixes),
		analyzer.WithFactoryPrefixes(prefixes),
		analyzer.WithOrphanUsageAnalyzer(newUsageAnalyzer(cfg)),
	)
	analysis := orphans.Analyze(repo, nil)

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
		color.Green("No orphaned infrastructure found in %d files", repo.Len())
		return nil
	}

	infraCount := 0
	factoryCount := 0
	for _, f := range analysis.Findings {
		switch f.Type {
		case models.OrphanInfrastructure:
			infraCount++
		case models.OrphanFactory:
			factoryCount++
		}
	}

	headers := []string{"Location", "Symbol", "Type", "Certainty"}
	if withAge {
		headers = append(headers, "Last Commit")
	}

	table := output.NewTable(
		"Orphaned Infrastructure",
		headers,
		findingRows(analysis.Findings, withAge),
		[]string{
			fmt.Sprintf("Total: %d", analysis.Summary.Total),
			fmt.Sprintf("Classes: %d", infraCount),
			fmt.Sprintf("Factories: %d", factoryCount),
			"",
		},
		analysis,
	)

	return formatter.Output(table)
}
