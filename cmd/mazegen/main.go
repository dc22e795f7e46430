// Command mazegen carves a perfect maze and prints it for inspection.
//
// Usage:
//
//	mazegen [-width N] [-length N] [-seed S] [-format ints|letters|ascii]
//	        [-verify] [-solve] [-color=false] [-log-level debug] [-env-file F]
//
// Settings default from MAZEGEN_* environment variables, then from the
// env file (default .env). Flags win over both.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/katalvlaran/mazegen/bfs"
	"github.com/katalvlaran/mazegen/internal/config"
	"github.com/katalvlaran/mazegen/maze"
	"github.com/katalvlaran/mazegen/render"
	"github.com/katalvlaran/mazegen/verify"
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

// envKeys maps each settings flag to the environment key it overrides.
var envKeys = map[string]string{
	"width":     config.EnvWidth,
	"length":    config.EnvLength,
	"seed":      config.EnvSeed,
	"format":    config.EnvFormat,
	"log-level": config.EnvLogLevel,
	"color":     config.EnvColor,
}

// options holds everything the command line sets.
type options struct {
	cfg     config.Config
	verify  bool
	solve   bool
	envFile string
}

// parseFlags parses args over defaults and also reports which settings
// flags were given explicitly.
func parseFlags(args []string, defaults config.Config, out io.Writer) (*options, []string, error) {
	o := &options{cfg: defaults}
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&o.cfg.Width, "width", defaults.Width, "maze columns (x extent)")
	fs.IntVar(&o.cfg.Length, "length", defaults.Length, "maze rows (y extent)")
	fs.Int64Var(&o.cfg.Seed, "seed", defaults.Seed, "carving seed, 0 seeds from the clock")
	fs.StringVar(&o.cfg.Format, "format", defaults.Format, "output: ints, letters or ascii")
	fs.StringVar(&o.cfg.LogLevel, "log-level", defaults.LogLevel, "log level")
	fs.BoolVar(&o.cfg.Color, "color", defaults.Color, "colour ascii output on terminals")
	fs.BoolVar(&o.verify, "verify", false, "audit the maze before printing")
	fs.BoolVar(&o.solve, "solve", false, "draw the route from entrance to finish (ascii)")
	fs.StringVar(&o.envFile, "env-file", ".env", "optional file of MAZEGEN_* settings")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	var given []string
	fs.Visit(func(f *flag.Flag) {
		if key, ok := envKeys[f.Name]; ok {
			given = append(given, key)
		}
	})

	return o, given, nil
}

// run executes the command and returns the process exit code. env supplies
// the MAZEGEN_* settings; flags given on the command line replace them.
func run(args []string, env config.LookupFunc, stdout, stderr io.Writer) int {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// 1. Flags first, so an explicit flag hides a bad environment value
	cli, given, err := parseFlags(args, config.Default(), stderr)
	if err != nil {
		return 2
	}

	// 2. Environment and env file for everything the flags left unset
	lookup, err := config.Lookup(env, cli.envFile)
	if err != nil {
		logger.WithError(err).Error("loading configuration")
		return 1
	}
	base, err := config.FromLookup(config.Without(lookup, given...))
	if err != nil {
		logger.WithError(err).Error("loading configuration")
		return 1
	}

	// 3. Flags again, now over the environment values
	if cli, _, err = parseFlags(args, base, io.Discard); err != nil {
		return 2
	}
	cfg := cli.cfg
	if err = cfg.Validate(); err != nil {
		logger.WithError(err).Error("invalid flags")
		return 2
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Error("invalid log level")
		return 2
	}
	logger.SetLevel(level)

	entry := logger.WithFields(log.Fields{
		"run":    uuid.NewString(),
		"width":  cfg.Width,
		"length": cfg.Length,
	})

	var opts []maze.Option
	if cfg.Seed != 0 {
		opts = append(opts, maze.WithSeed(cfg.Seed))
	}
	started := time.Now()
	m, err := maze.New(cfg.Width, cfg.Length, opts...)
	if err != nil {
		entry.WithError(err).Error("generating maze")
		return 1
	}
	entry.WithFields(log.Fields{
		"passages": m.Passages(),
		"elapsed":  time.Since(started),
	}).Debug("maze generated")

	if cli.verify {
		rep, err := verify.Perfect(m)
		if err != nil {
			entry.WithError(err).Error("maze failed verification")
			return 1
		}
		entry.WithFields(log.Fields{
			"passages":     rep.Passages,
			"dead_ends":    rep.DeadEnds,
			"longest_path": rep.LongestPath,
		}).Info("maze verified")
	}

	out, err := format(m, cfg.Format, cli.solve, cfg.Color && isTerminal(stdout))
	if err != nil {
		entry.WithError(err).Error("formatting maze")
		return 1
	}
	if _, err = io.WriteString(stdout, out); err != nil {
		entry.WithError(err).Error("writing output")
		return 1
	}

	return 0
}

// format renders m in the requested output format. The ASCII form marks the
// entrance (0,0) with S and the cell farthest from it with F.
func format(m *maze.Maze, kind string, solve, colored bool) (string, error) {
	switch kind {
	case config.FormatInts:
		return m.DumpAsText(false), nil
	case config.FormatLetters:
		return m.DumpAsText(true), nil
	case config.FormatASCII:
	default:
		return "", fmt.Errorf("unknown format %q", kind)
	}

	entrance := maze.Cell{X: 0, Y: 0}
	res, err := bfs.BFS(m, entrance)
	if err != nil {
		return "", err
	}
	finish := res.Farthest()
	opts := []render.Option{
		render.WithMarks(map[maze.Cell]rune{entrance: 'S', finish: 'F'}),
		render.WithColor(colored),
	}
	if solve {
		path, err := res.PathTo(finish)
		if err != nil {
			return "", err
		}
		opts = append(opts, render.WithPath(path))
	}

	return render.ASCII(m, opts...), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
