package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/panbanda/xref/internal/output"
	"github.com/urfave/cli/v2"
)

func usagesCmd() *cli.Command {
	return &cli.Command{
		Name:      "usages",
		Aliases:   []string{"who-uses"},
		Usage:     "List files that use an exported symbol",
		ArgsUsage: "<map.json> <file> <symbol>",
		Action:    runUsagesCmd,
	}
}

func runUsagesCmd(c *cli.Context) error {
	if c.Args().Len() < 3 {
		return fmt.Errorf("expected arguments: <map.json> <file> <symbol>")
	}
	file := c.Args().Get(1)
	symbol := c.Args().Get(2)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repo, _, err := loadRepoMap(c)
	if err != nil {
		return err
	}

	ua := newUsageAnalyzer(cfg)
	idx := ua.BuildIndex(repo)
	usages := ua.FindUsages(idx, file, symbol)

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if len(usages) == 0 && formatter.Format() == output.FormatText {
		color.Yellow("No usages of %s:%s recorded", file, symbol)
		return nil
	}

	rows := make([][]string, len(usages))
	for i, u := range usages {
		rows[i] = []string{u}
	}

	table := output.NewTable(
		fmt.Sprintf("Usages of %s (%s)", symbol, file),
		[]string{"File"},
		rows,
		[]string{fmt.Sprintf("Total: %d", len(usages))},
		struct {
			File   string   `json:"file" toon:"file"`
			Symbol string   `json:"symbol" toon:"symbol"`
			Usages []string `json:"usages" toon:"usages"`
		}{file, symbol, usages},
	)
	return formatter.Output(table)
}
