// Command tilepath loads a YAML tile map, searches for a path between two
// tiles and prints the map with the route drawn on it.
//
// Usage:
//
//	tilepath -map level.yaml [-from 0,0] [-to 4,2] [-diagonal] [-cost10]
//	         [-heuristic legacy|manhattan|octile|zero] [-max N -cap] [-v]
//
// -from, -to and -diagonal override the values stored in the map document.
// Exit status is 0 when a path is found, 2 when none exists and 1 on errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/mapfile"
	"github.com/katalvlaran/tilepath/tilemap"
)

const (
	exitFound  = 0
	exitError  = 1
	exitNoPath = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	mapPath   string
	from, to  string
	diagonal  bool
	cost10    bool
	heuristic string
	maxTiles  int
	capTiles  bool
	verbose   bool
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		logger.WithError(err).Error("bad arguments")
		return exitError
	}
	if cfg.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	m, err := mapfile.Load(cfg.mapPath)
	if err != nil {
		logger.WithError(err).Error("load map")
		return exitError
	}
	grid, err := m.Grid()
	if err != nil {
		logger.WithError(err).WithField("map", cfg.mapPath).Error("build grid")
		return exitError
	}

	req, err := buildRequest(cfg, m)
	if err != nil {
		logger.WithError(err).Error("bad request")
		return exitError
	}

	opts, err := finderOptions(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("bad options")
		return exitError
	}

	logger.WithFields(log.Fields{
		"map":      m.Name,
		"size":     fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"from":     req.Start,
		"to":       req.End,
		"diagonal": req.Diagonal,
	}).Info("searching")

	res, err := astar.NewFinder(grid, opts...).Search(req)
	if err != nil {
		logger.WithError(err).Error("search")
		return exitError
	}

	fmt.Fprint(stdout, mapfile.Overlay(grid, req.Start, req.End, res.Path))
	entry := logger.WithFields(log.Fields{
		"steps":    len(res.Path),
		"cost":     res.Cost,
		"expanded": res.Expanded,
	})
	if !res.Found {
		entry.Warn("no path")
		return exitNoPath
	}
	entry.Info("path found")

	return exitFound
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("tilepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapPath, "map", "", "YAML map document (required)")
	fs.StringVar(&cfg.from, "from", "", "start position x,y (default: map start)")
	fs.StringVar(&cfg.to, "to", "", "end position x,y (default: map end)")
	fs.BoolVar(&cfg.diagonal, "diagonal", false, "allow diagonal moves (also enabled by the map)")
	fs.BoolVar(&cfg.cost10, "cost10", false, "use 10 for orthogonal and 14 for diagonal steps")
	fs.StringVar(&cfg.heuristic, "heuristic", "legacy", "legacy, manhattan, octile or zero")
	fs.IntVar(&cfg.maxTiles, "max", 0, "maximum tiles to expand (needs -cap)")
	fs.BoolVar(&cfg.capTiles, "cap", false, "enforce -max as an expansion limit")
	fs.BoolVar(&cfg.verbose, "v", false, "log every expanded tile")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.mapPath == "" {
		return cfg, errors.New("-map is required")
	}

	return cfg, nil
}

func buildRequest(cfg config, m *mapfile.Map) (astar.Request, error) {
	req := astar.Request{
		Diagonal: cfg.diagonal || m.Diagonal,
		MaxTiles: cfg.maxTiles,
	}
	var err error
	if req.Start, err = pickPosition(cfg.from, m.Start, "start"); err != nil {
		return req, err
	}
	if req.End, err = pickPosition(cfg.to, m.End, "end"); err != nil {
		return req, err
	}

	return req, nil
}

// pickPosition prefers the flag value, falling back to the map document.
func pickPosition(flagValue string, fallback *mapfile.Point, what string) (tilemap.Position, error) {
	if flagValue != "" {
		var p tilemap.Position
		if _, err := fmt.Sscanf(flagValue, "%d,%d", &p.X, &p.Y); err != nil {
			return p, fmt.Errorf("%s %q: want x,y: %w", what, flagValue, err)
		}
		return p, nil
	}
	if fallback == nil {
		return tilemap.Position{}, fmt.Errorf("no %s position in flags or map", what)
	}

	return fallback.Position(), nil
}

func finderOptions(cfg config, logger *log.Logger) ([]astar.Option, error) {
	orth, diag := astar.LegacyCost, astar.LegacyCost
	if cfg.cost10 {
		orth = 10
	}
	opts := []astar.Option{astar.WithEdgeCosts(orth, diag)}

	switch cfg.heuristic {
	case "legacy":
	case "manhattan":
		opts = append(opts, astar.WithHeuristic(astar.ManhattanHeuristic(orth)))
	case "octile":
		opts = append(opts, astar.WithHeuristic(astar.OctileHeuristic(orth, diag)))
	case "zero":
		opts = append(opts, astar.WithHeuristic(astar.ZeroHeuristic()))
	default:
		return nil, fmt.Errorf("unknown heuristic %q", cfg.heuristic)
	}

	if cfg.capTiles {
		opts = append(opts, astar.WithMaxTilesCap())
	}
	if logger.IsLevelEnabled(log.DebugLevel) {
		opts = append(opts, astar.WithOnExpand(func(pos tilemap.Position, g, f int64) {
			logger.WithFields(log.Fields{"pos": pos, "g": g, "f": f}).Debug("expand")
		}))
	}

	return opts, nil
}
