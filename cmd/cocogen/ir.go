package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/irbuild"
	"github.com/wictorwilen/cocogen-sub001/schemafile"
)

func irCommand() *cli.Command {
	return &cli.Command{
		Name:      "ir",
		Usage:     "Print the connector IR for a schema file as JSON",
		ArgsUsage: "<schema file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "input format (csv, json, yaml, rest, custom)",
			},
		},
		Action: runIR,
	}
}

func runIR(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.Bool("verbose"))
	defer func() { _ = logger.Sync() }()

	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one schema file, got %d", cmd.Args().Len())
	}

	cfg := loadConfig()
	format := cocogen.InputFormat(firstNonEmpty(cmd.String("format"), cfgFormat(cfg), string(cocogen.FormatCSV)))

	g, err := schemafile.Load(cmd.Args().First())
	if err != nil {
		return err
	}

	ir, err := irbuild.Build(g, irbuild.Options{Format: format, Logger: logger})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(ir)
}
