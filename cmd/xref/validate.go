package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/panbanda/xref/internal/repomap"
	"github.com/urfave/cli/v2"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a repository map against the schema",
		ArgsUsage: "[map.json]",
		Action:    runValidateCmd,
	}
}

func runValidateCmd(c *cli.Context) error {
	path := getMapPath(c)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := repomap.Validate(data); err != nil {
		return fmt.Errorf("%s is not a valid repository map: %w", path, err)
	}

	repo, err := repomap.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	color.Green("%s is valid (%d files)", path, repo.Len())
	return nil
}
