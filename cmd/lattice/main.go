// Command lattice solves grid and bitmask puzzles read from a file or stdin.
//
// Usage:
//
//	lattice -puzzle crucible -part 2 -input day17.txt
//	lattice -puzzle beam -workers 8 -v < day16.txt
//	lattice -puzzle patrol -part 2 < day06.txt
//
// The answer is printed to stdout as a single integer; everything else goes
// to stderr through the logger.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lattice/grid"
)

var log = logrus.New()

// config carries the parsed command line into the solvers.
type config struct {
	puzzle  string
	part    int
	input   string
	workers int
	verbose bool
	profile string
}

func (c config) Fields() logrus.Fields {
	return logrus.Fields{
		"puzzle":  c.puzzle,
		"part":    c.part,
		"input":   c.input,
		"workers": c.workers,
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lattice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.puzzle, "puzzle", "", "puzzle to solve: "+puzzleNames())
	fs.IntVar(&cfg.part, "part", 1, "puzzle part (1 or 2)")
	fs.StringVar(&cfg.input, "input", "", "input file (stdin when empty)")
	fs.IntVar(&cfg.workers, "workers", 0, "parallel workers (0 means GOMAXPROCS)")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	fs.StringVar(&cfg.profile, "profile", "", "write a CPU profile into this directory")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if _, err := lookup(cfg.puzzle, cfg.part); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func setupLogging(cfg config) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

func readInput(path string) ([]string, error) {
	if path == "" {
		return grid.ReadLines(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.ReadLines(f)
}

// run solves one puzzle and returns its answer.
func run(ctx context.Context, cfg config, lines []string) (int, error) {
	solve, err := lookup(cfg.puzzle, cfg.part)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, fmt.Errorf("%s part %d: %w", cfg.puzzle, cfg.part, errNoInput)
	}
	start := time.Now()
	answer, err := solve(ctx, lines, cfg)
	if err != nil {
		return 0, fmt.Errorf("%s part %d: %w", cfg.puzzle, cfg.part, err)
	}
	log.WithFields(cfg.Fields()).WithField("elapsed", time.Since(start)).Debug("solved")
	return answer, nil
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// execute runs the command. Deferred cleanups finish before main exits.
func execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("bad arguments: %w", err)
	}
	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	if cfg.profile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.profile), profile.Quiet).Stop()
	}

	lines, err := readInput(cfg.input)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	answer, err := run(ctx, cfg, lines)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}
