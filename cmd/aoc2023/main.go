// The aoc2023 command solves the Advent of Code 2023 puzzles.
//
// Inputs are read from input/<day>.input next to this file unless
// configured otherwise.
package main

import (
	"embed"
	"fmt"
	"os"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/config"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "aoc2023:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "aoc2023",
		Usage: "Solve the Advent of Code 2023 puzzles",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "day", Aliases: []string{"d"}, Usage: "day to run; 0 runs every day", EnvVars: []string{"AOC_DAY"}},
			&cli.StringFlag{Name: "part", Aliases: []string{"p"}, Usage: "part to run"},
			&cli.BoolFlag{Name: "sample", Usage: "only run samples"},
			&cli.BoolFlag{Name: "skip-sample", Usage: "skip samples"},
			&cli.BoolFlag{Name: "debug", Usage: "debug mode", EnvVars: []string{"AOC_DEBUG"}},
			&cli.BoolFlag{Name: "fetch", Usage: "download missing inputs", EnvVars: []string{"AOC_FETCH"}},
			&cli.StringFlag{Name: "input-dir", Usage: "directory holding <day>.input files", EnvVars: []string{"AOC_INPUT_DIR"}},
			&cli.StringFlag{Name: "session-file", Usage: "file holding the adventofcode.com session cookie", EnvVars: []string{"AOC_SESSION_FILE"}},
			&cli.StringFlag{Name: "config", Value: config.FileName, Usage: "config file"},
		},
		Action: run,
	}
	// Errors are reported by main.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// loadConfig loads the config file and applies the flags set on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("input-dir") {
		cfg.InputDir = c.String("input-dir")
	}
	if c.IsSet("session-file") {
		cfg.SessionFile = c.String("session-file")
	}
	if c.IsSet("fetch") {
		cfg.Fetch = c.Bool("fetch")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	return cfg, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	lc := zap.NewProductionConfig()
	if debug {
		lc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return lc.Build()
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return aoc.Run(2023, source, &solver{}, aoc.Options{
		Day:         c.Int("day"),
		Part:        c.String("part"),
		OnlySample:  c.Bool("sample"),
		SkipSample:  c.Bool("skip-sample"),
		InputDir:    aoc.Path(aoc.Or(cfg.InputDir, "input")),
		Fetch:       cfg.Fetch,
		SessionFile: cfg.SessionFile,
		Logger:      logger,
		Out:         c.App.Writer,
	})
}
