package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/irbuild"
	"github.com/wictorwilen/cocogen-sub001/sample"
	"github.com/wictorwilen/cocogen-sub001/schemafile"
)

func sampleCommand() *cli.Command {
	return &cli.Command{
		Name:      "sample",
		Usage:     "Synthesize fixture data for a schema file",
		ArgsUsage: "<schema file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "input format (csv, json, yaml, rest, custom)",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of records",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default: stdout)",
			},
		},
		Action: runSample,
	}
}

func runSample(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.Bool("verbose"))
	defer func() { _ = logger.Sync() }()

	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one schema file, got %d", cmd.Args().Len())
	}

	cfg := loadConfig()
	format := cocogen.InputFormat(firstNonEmpty(cmd.String("format"), cfgFormat(cfg), string(cocogen.FormatCSV)))

	count := int(cmd.Int("count"))
	if count == 0 && cfg != nil {
		count = cfg.Sample.Count
	}

	var overrides map[string]string
	if cfg != nil {
		overrides = cfg.Sample.Overrides
	}

	g, err := schemafile.Load(cmd.Args().First())
	if err != nil {
		return err
	}

	ir, err := irbuild.Build(g, irbuild.Options{Format: format, Logger: logger})
	if err != nil {
		return err
	}

	fixture, err := sample.Synthesize(ir, sample.Options{Count: count, Overrides: overrides})
	if err != nil {
		return err
	}

	out := os.Stdout

	if path := cmd.String("out"); path != "" {
		f, err := os.Create(path) //nolint:gosec
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		out = f
	}

	return fixture.Write(out)
}
