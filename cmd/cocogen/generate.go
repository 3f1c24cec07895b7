package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/boyter/gocodewalker"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/graphtypes"
	"github.com/wictorwilen/cocogen-sub001/irbuild"
	"github.com/wictorwilen/cocogen-sub001/render"
	"github.com/wictorwilen/cocogen-sub001/schemafile"
)

// Generate command errors.
var (
	ErrNoSchemaFiles = errors.New("no .schema.yaml files found")
	ErrUnknownTarget = errors.New("unknown target")
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate connector code from schema files",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "input format (csv, json, yaml, rest, custom)",
			},
			&cli.StringSliceFlag{
				Name:    "target",
				Aliases: []string{"t"},
				Usage:   "output targets (typescript, csharp)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory (default: same as input file)",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.Bool("verbose"))
	defer func() { _ = logger.Sync() }()

	cfg := loadConfig()

	format := cocogen.InputFormat(firstNonEmpty(cmd.String("format"), cfgFormat(cfg), string(cocogen.FormatCSV)))

	targets := cmd.StringSlice("target")
	if len(targets) == 0 && cfg != nil {
		targets = cfg.Generate.Targets
	}

	if len(targets) == 0 {
		targets = []string{cocogen.TargetTypeScript, cocogen.TargetCSharp}
	}

	outDir := firstNonEmpty(cmd.String("out"), cfgOut(cfg))

	args := cmd.Args().Slice()
	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := discoverSchemaFiles(args)
	if err != nil {
		return fmt.Errorf("discovering schema files: %w", err)
	}

	if len(files) == 0 {
		return ErrNoSchemaFiles
	}

	snap := graphtypes.DefaultSnapshot()

	var written []string

	for _, file := range files {
		out := outDir
		if out == "" {
			out = filepath.Dir(file)
		}

		paths, err := generateFile(file, out, format, targets, snap, logger)
		if err != nil {
			return err
		}

		written = append(written, paths...)
	}

	printSummary(written)

	return nil
}

// generateFile runs the whole pipeline for one schema file and writes one
// data bag per target.
func generateFile(file, outDir string, format cocogen.InputFormat, targets []string, snap *graphtypes.Snapshot, logger *zap.Logger) ([]string, error) {
	g, err := schemafile.Load(file)
	if err != nil {
		return nil, err
	}

	ir, err := irbuild.Build(g, irbuild.Options{Format: format, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	types, err := graphtypes.Resolve(ir, snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	base := schemaBase(file)

	var written []string

	for _, name := range targets {
		target := render.Get(name)
		if target == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownTarget, name, render.RegisteredTargets())
		}

		values, err := render.New(target, ir, types).PropertyValues()
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", file, name, err)
		}

		bag := templateBag{
			Connection:   ir.Connection,
			Item:         ir.Item,
			GraphVersion: string(ir.GraphVersion()),
			Types:        types.OrderedTypeNames(),
			Properties:   values,
		}

		outPath := filepath.Join(outDir, base+"."+name+".json")

		data, err := json.MarshalIndent(bag, "", "  ")
		if err != nil {
			return nil, err
		}

		if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil { //nolint:gosec
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		logger.Debug("wrote template data", zap.String("path", outPath))

		written = append(written, outPath)
	}

	return written, nil
}

// templateBag is the per-target JSON payload project templates consume.
type templateBag struct {
	Connection   cocogen.Connection `json:"connection"`
	Item         cocogen.Item       `json:"item"`
	GraphVersion string             `json:"graphVersion"`
	Types        []string           `json:"types"`
	Properties   map[string]string  `json:"properties"`
}

// schemaBase strips the .schema.yaml / .schema.yml suffix.
func schemaBase(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, ".yaml")
	base = strings.TrimSuffix(base, ".yml")

	return strings.TrimSuffix(base, ".schema")
}

// discoverSchemaFiles finds *.schema.yaml files under the given paths,
// respecting .gitignore.
func discoverSchemaFiles(args []string) ([]string, error) {
	var (
		files []string
		mu    sync.Mutex
	)

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if isSchemaFile(arg) {
				files = append(files, arg)
			}

			continue
		}

		if err := walkDir(arg, func(path string) {
			mu.Lock()
			files = append(files, path)
			mu.Unlock()
		}); err != nil {
			return nil, err
		}
	}

	return files, nil
}

func isSchemaFile(path string) bool {
	return strings.HasSuffix(path, ".schema.yaml") || strings.HasSuffix(path, ".schema.yml")
}

// walkDir walks a directory for schema files, respecting .gitignore.
func walkDir(root string, callback func(path string)) error {
	fileListQueue := make(chan *gocodewalker.File, 100)

	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	fileWalker.AllowListExtensions = []string{"yaml", "yml"}

	var walkErr error

	fileWalker.SetErrorHandler(func(e error) bool {
		walkErr = e
		return true
	})

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		for f := range fileListQueue {
			if isSchemaFile(f.Location) {
				callback(f.Location)
			}
		}
	}()

	if err := fileWalker.Start(); err != nil {
		return err
	}

	wg.Wait()

	return walkErr
}

func cfgFormat(cfg *cocogen.Config) string {
	if cfg == nil {
		return ""
	}

	return string(cfg.Format)
}

func cfgOut(cfg *cocogen.Config) string {
	if cfg == nil {
		return ""
	}

	return cfg.Generate.Out
}
