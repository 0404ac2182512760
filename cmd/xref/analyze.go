package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/panbanda/xref/internal/analyzer"
	"github.com/panbanda/xref/internal/cache"
	"github.com/panbanda/xref/internal/output"
	"github.com/panbanda/xref/internal/progress"
	"github.com/panbanda/xref/pkg/models"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"all"},
		Usage:     "Run all detectors and generate a combined report",
		ArgsUsage: "[map.json]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Detectors to exclude: unused, orphans, cycles, metrics",
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
		Action: runAnalyzeCmd,
	}
}

// fullAnalysis bundles every detector's result for the combined report.
type fullAnalysis struct {
	Unused  *models.UnusedExportAnalysis `json:"unused,omitempty"`
	Orphans *models.OrphanAnalysis       `json:"orphans,omitempty"`
	Cycles  *models.CycleAnalysis        `json:"cycles,omitempty"`
	Metrics *models.GraphMetrics         `json:"metrics,omitempty"`
}

func runAnalyzeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repo, raw, err := loadRepoMap(c)
	if err != nil {
		return err
	}

	excludeSet := make(map[string]bool)
	for _, e := range c.StringSlice("exclude") {
		excludeSet[e] = true
	}

	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cfg.Cache.Enabled && !c.Bool("no-cache"))
	if err != nil {
		return err
	}

	cacheKey := "analyze:" + strings.Join(c.StringSlice("exclude"), ",")
	mapHash := cache.HashBytes(raw)

	var results fullAnalysis
	if data, ok := store.Get(cacheKey, mapHash); ok {
		if err := json.Unmarshal(data, &results); err == nil {
			return renderAnalysis(c, repo, &results)
		}
		// Fall through and recompute on a corrupt entry.
	}

	startTime := time.Now()

	resolver := newResolver(cfg)

	tracker := progress.NewTracker("Building usage index...", repo.Len())
	ua := analyzer.NewUsageAnalyzer(
		analyzer.WithUsageResolver(resolver),
		analyzer.WithUsageProgress(tracker.Tick),
	)
	idx := ua.BuildIndex(repo)
	tracker.FinishSuccess()

	p := pool.New().WithMaxGoroutines(runtime.NumCPU())

	if !excludeSet["unused"] {
		p.Go(func() {
			unused := analyzer.NewUnusedAnalyzer(
				analyzer.WithEntryPoints(cfg.Detectors.EntryPoints),
			)
			results.Unused = unused.Analyze(repo, idx)
		})
	}
	if !excludeSet["orphans"] {
		p.Go(func() {
			orphans := analyzer.NewOrphanAnalyzer(
				analyzer.WithInfraSuffixes(cfg.Detectors.InfraSuffixes),
				analyzer.WithFactoryPrefixes(cfg.Detectors.FactoryPrefixes),
			)
			results.Orphans = orphans.Analyze(repo, idx)
		})
	}
	if !excludeSet["cycles"] || !excludeSet["metrics"] {
		p.Go(func() {
			ga := analyzer.NewGraphAnalyzer(analyzer.WithGraphResolver(resolver))
			if !excludeSet["cycles"] {
				results.Cycles = ga.FindCycles(repo)
			}
			if !excludeSet["metrics"] {
				results.Metrics = analyzer.NewMetricsAnalyzer().Calculate(ga.BuildGraph(repo))
			}
		})
	}
	p.Wait()

	if c.Bool("git-age") {
		repoPath := c.String("repo")
		if results.Unused != nil {
			if err := annotateGitAge(results.Unused.Findings, repoPath); err != nil {
				return err
			}
		}
		if results.Orphans != nil {
			if err := annotateGitAge(results.Orphans.Findings, repoPath); err != nil {
				return err
			}
		}
	}

	if data, err := json.Marshal(&results); err == nil {
		// Cache write failures are not fatal.
		_ = store.Set(cacheKey, mapHash, data)
	}

	if c.Bool("verbose") {
		fmt.Printf("Analysis of %d files completed in %s\n\n",
			repo.Len(), time.Since(startTime).Round(time.Millisecond))
	}

	return renderAnalysis(c, repo, &results)
}

func renderAnalysis(c *cli.Context, repo *models.RepoMap, results *fullAnalysis) error {
	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() != output.FormatText && formatter.Format() != output.FormatMarkdown {
		return formatter.Output(results)
	}

	report := &output.Report{
		Title: "Cross-Reference Report",
		Data:  results,
	}

	if results.Unused != nil {
		report.Sections = append(report.Sections, output.NewTable(
			"Unused Exports",
			[]string{"Location", "Symbol", "Kind", "Certainty"},
			findingRows(results.Unused.Findings, false),
			[]string{fmt.Sprintf("Total: %d", results.Unused.Summary.Total), "", "", ""},
			nil,
		))
	}

	if results.Orphans != nil {
		report.Sections = append(report.Sections, output.NewTable(
			"Orphaned Infrastructure",
			[]string{"Location", "Symbol", "Type", "Certainty"},
			findingRows(results.Orphans.Findings, false),
			[]string{fmt.Sprintf("Total: %d", results.Orphans.Summary.Total), "", "", ""},
			nil,
		))
	}

	if results.Cycles != nil {
		var rows [][]string
		for i, cycle := range results.Cycles.Cycles {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				strings.Join(cycle, " -> "),
			})
		}
		report.Sections = append(report.Sections, output.NewTable(
			"Circular Dependencies",
			[]string{"#", "Cycle"},
			rows,
			[]string{
				fmt.Sprintf("Total: %d", results.Cycles.Summary.Total),
				fmt.Sprintf("Largest: %d", results.Cycles.Summary.LargestCycle),
			},
			nil,
		))
	}

	if results.Metrics != nil {
		top := results.Metrics.NodeMetrics
		if len(top) > 10 {
			top = top[:10]
		}
		var rows [][]string
		for _, nm := range top {
			rows = append(rows, []string{
				nm.File,
				fmt.Sprintf("%.4f", nm.PageRank),
				fmt.Sprintf("%d", nm.InDegree),
				fmt.Sprintf("%d", nm.OutDegree),
			})
		}
		report.Sections = append(report.Sections, output.NewTable(
			"Top Files by PageRank",
			[]string{"File", "PageRank", "In", "Out"},
			rows,
			[]string{
				fmt.Sprintf("Nodes: %d", results.Metrics.Summary.TotalNodes),
				fmt.Sprintf("Edges: %d", results.Metrics.Summary.TotalEdges),
				fmt.Sprintf("Density: %.4f", results.Metrics.Summary.Density),
				fmt.Sprintf("SCCs: %d", results.Metrics.Summary.StronglyConnected),
			},
			nil,
		))
	}

	if len(report.Sections) == 0 {
		color.Yellow("All detectors excluded; nothing to report for %d files", repo.Len())
		return nil
	}

	return formatter.Output(report)
}
