// Command cocogen generates connector projects from schema files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cocogen "github.com/wictorwilen/cocogen-sub001"

	// Register code-generation targets.
	_ "github.com/wictorwilen/cocogen-sub001/render/csharp"
	_ "github.com/wictorwilen/cocogen-sub001/render/typescript"
)

func main() {
	cmd := &cli.Command{
		Name:  "cocogen",
		Usage: "Generate connector projects from schema files",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			generateCommand(),
			irCommand(),
			sampleCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cocogen:", err)
		os.Exit(1)
	}
}

// newLogger builds the console logger; debug level with --verbose.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// loadConfig finds the nearest project config; missing config is fine, the
// commands fall back to flags and defaults.
func loadConfig() *cocogen.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}

	cfg, err := cocogen.LoadConfig(cwd)
	if err != nil {
		return nil
	}

	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
