package main

import (
	"fmt"
	"time"

	"github.com/panbanda/xref/internal/analyzer"
	"github.com/panbanda/xref/internal/output"
	"github.com/panbanda/xref/internal/progress"
	"github.com/panbanda/xref/internal/repomap"
	"github.com/panbanda/xref/internal/vcs"
	"github.com/panbanda/xref/pkg/config"
	"github.com/panbanda/xref/pkg/models"
	"github.com/urfave/cli/v2"
)

// getMapPath returns the map path from the first positional arg,
// defaulting to repomap.json.
func getMapPath(c *cli.Context) string {
	if c.Args().Len() > 0 {
		return c.Args().First()
	}
	return "repomap.json"
}

// loadConfig loads the config named by --config or searches the standard
// locations.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

// loadRepoMap validates and parses the repository map, returning the raw
// bytes alongside for cache keying.
func loadRepoMap(c *cli.Context) (*models.RepoMap, []byte, error) {
	path := getMapPath(c)
	repo, raw, err := repomap.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load repository map %s: %w", path, err)
	}
	return repo, raw, nil
}

func newFormatter(c *cli.Context) (*output.Formatter, error) {
	return output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), true)
}

// newResolver builds a resolver from config.
func newResolver(cfg *config.Config) *analyzer.Resolver {
	if len(cfg.Resolver.Extensions) == 0 {
		return analyzer.NewResolver()
	}
	return analyzer.NewResolver(analyzer.WithExtensions(cfg.Resolver.Extensions))
}

// newUsageAnalyzer builds a usage analyzer wired to the configured resolver.
func newUsageAnalyzer(cfg *config.Config) *analyzer.UsageAnalyzer {
	return analyzer.NewUsageAnalyzer(analyzer.WithUsageResolver(newResolver(cfg)))
}

// annotateGitAge fills LastCommit on findings from the repository's commit
// history. Files absent from the log keep a nil LastCommit.
func annotateGitAge(findings []models.Finding, repoPath string) error {
	spinner := progress.NewSpinner("Reading git history...")
	touched, err := vcs.LastTouched(repoPath, nil)
	spinner.FinishSuccess()
	if err != nil {
		return fmt.Errorf("failed to read git history (is %s a git repository?): %w", repoPath, err)
	}
	for i := range findings {
		if when, ok := touched[findings[i].File]; ok {
			t := when
			findings[i].LastCommit = &t
		}
	}
	return nil
}

// findingRows builds table rows for findings, shared by the unused and
// orphans commands.
func findingRows(findings []models.Finding, withAge bool) [][]string {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		kind := f.Kind
		if f.Type != "" {
			kind = f.Type
		}
		row := []string{
			fmt.Sprintf("%s:%d", f.File, f.Line),
			f.Name,
			kind,
			output.SeverityColor(string(f.Certainty), string(f.Certainty)),
		}
		if withAge {
			age := "-"
			if f.LastCommit != nil {
				age = f.LastCommit.Format(time.DateOnly)
			}
			row = append(row, age)
		}
		rows = append(rows, row)
	}
	return rows
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
