// SPDX-License-Identifier: MIT

// Command almanac resolves seed values through the stage chain of an
// almanac file.
//
//	almanac lowest input.txt --mode ranges
//	almanac trace input.txt 79 14 55 13
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/katalvlaran/stagemap/almanac"
	"github.com/katalvlaran/stagemap/internal/config"
	"github.com/katalvlaran/stagemap/pipeline"
)

// CLI is the root command.
type CLI struct {
	Config   string `name:"config" short:"c" help:"YAML run configuration (default: ./stagemap.yaml if present)" type:"path"`
	LogLevel string `name:"log-level" help:"Override logging.level (debug, info, warn, error)"`
	Workers  int    `name:"workers" help:"Override pipeline.workers (0 = GOMAXPROCS)" default:"-1"`

	Lowest LowestCmd `cmd:"" help:"Print the lowest final value over all seeds"`
	Trace  TraceCmd  `cmd:"" help:"Print the final value of each seed"`
}

// app is bound into every command's Run.
type app struct {
	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

// LowestCmd prints the minimum final value.
type LowestCmd struct {
	File     string `arg:"" help:"Almanac file" type:"existingfile"`
	Mode     string `name:"mode" short:"m" help:"Seed line reading (values, ranges)"`
	Strategy string `name:"strategy" short:"s" help:"Evaluation strategy (auto, interval, scalar)"`
}

func (c *LowestCmd) Run(a *app) error {
	alm, err := readAlmanac(c.File)
	if err != nil {
		return err
	}

	mode, err := a.cfg.SeedMode()
	if c.Mode != "" {
		mode, err = almanac.ParseSeedMode(c.Mode)
	}
	if err != nil {
		return err
	}
	strategy, err := a.cfg.Strategy()
	if c.Strategy != "" {
		strategy, err = pipeline.ParseStrategy(c.Strategy)
	}
	if err != nil {
		return err
	}

	seeds, err := alm.SeedIntervals(mode)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	runner, err := a.runner(alm)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lowest, ok, err := runner.Lowest(ctx, seeds, strategy)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "no seeds")
		return nil
	}
	fmt.Fprintln(a.out, lowest)

	return nil
}

// TraceCmd prints the image of each seed value.
type TraceCmd struct {
	File  string   `arg:"" help:"Almanac file" type:"existingfile"`
	Seeds []uint64 `arg:"" optional:"" help:"Seed values (default: the file's seed line)"`
}

func (c *TraceCmd) Run(a *app) error {
	alm, err := readAlmanac(c.File)
	if err != nil {
		return err
	}
	runner, err := a.runner(alm)
	if err != nil {
		return err
	}

	seeds := c.Seeds
	if len(seeds) == 0 {
		seeds = alm.Seeds
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	finals, err := runner.TraceAll(ctx, seeds)
	if err != nil {
		return err
	}
	for i, v := range finals {
		fmt.Fprintf(a.out, "%d -> %d\n", seeds[i], v)
	}

	return nil
}

func (a *app) runner(alm *almanac.Almanac) (*pipeline.Runner, error) {
	chain, err := alm.Chain(a.cfg.Pipeline.Stages)
	if err != nil {
		return nil, err
	}

	return pipeline.NewRunner(chain, a.cfg.RunnerOptions(a.log)...), nil
}

func readAlmanac(path string) (*almanac.Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open almanac: %w", err)
	}
	defer f.Close()

	alm, err := almanac.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return alm, nil
}

// run parses args, loads the configuration and dispatches the command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("almanac"),
		kong.Description("Staged interval remapping over almanac files"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var cfg *config.Config
	if cli.Config != "" {
		cfg, err = config.LoadFile(cli.Config)
	} else {
		cfg, err = config.Load(config.DefaultPath)
	}
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.Workers >= 0 {
		cfg.Pipeline.Workers = cli.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return kctx.Run(&app{cfg: cfg, log: logger, out: stdout})
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "almanac:", err)
		os.Exit(1)
	}
}
