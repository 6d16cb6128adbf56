// seehuhn.de/go/maxrect - largest rectangles in rectilinear polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/maxrect"
)

const (
	strategyAnalytic   = "analytic"
	strategyExhaustive = "exhaustive"
)

// config holds the settings shared by all subcommands.
type config struct {
	strategy      string
	parallel      bool
	workers       int
	progress      bool
	unconstrained bool
}

func (cfg *config) check() error {
	if _, err := cfg.validator(); err != nil {
		return err
	}
	if cfg.workers < 0 {
		return fmt.Errorf("invalid number of workers %d", cfg.workers)
	}
	return nil
}

func (cfg *config) validator() (maxrect.Validator, error) {
	switch cfg.strategy {
	case strategyAnalytic:
		return maxrect.Analytic, nil
	case strategyExhaustive:
		return maxrect.Exhaustive, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.strategy)
	}
}

// readInput reads the vertex list from the file named in args,
// or from standard input if args is empty.
func readInput(cmd *cobra.Command, args []string) ([]maxrect.Point, error) {
	var r io.Reader
	name := "<stdin>"
	if len(args) > 0 {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cmd.InOrStdin()
	}

	pts, err := maxrect.ReadPoints(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return pts, nil
}

// solve runs the search selected by cfg.  Inputs with fewer than two
// vertices have no candidates and give an empty result.
func solve(cmd *cobra.Command, pts []maxrect.Point, cfg *config) (maxrect.Result, error) {
	if len(pts) < 2 {
		return maxrect.Result{}, nil
	}
	if cfg.unconstrained {
		return maxrect.LargestPair(pts), nil
	}

	poly, err := maxrect.NewPolygon(pts)
	if err != nil {
		return maxrect.Result{}, err
	}
	return search(cmd, poly, cfg)
}

func search(cmd *cobra.Command, poly *maxrect.Polygon, cfg *config) (maxrect.Result, error) {
	v, err := cfg.validator()
	if err != nil {
		return maxrect.Result{}, err
	}
	if !cfg.parallel {
		return maxrect.Search(poly, v), nil
	}

	opts := maxrect.ParallelOptions{Workers: cfg.workers}
	if cfg.progress {
		stderr := cmd.ErrOrStderr()
		opts.OnChunkDone = func(chunk, chunks, valid int) {
			fmt.Fprintf(stderr, "chunk %d/%d: %d valid rectangles\n", chunk+1, chunks, valid)
		}
	}
	res, _, err := maxrect.SearchParallel(poly, v, opts)
	if err != nil {
		return maxrect.Result{}, fmt.Errorf("parallel search: %w", err)
	}
	return res, nil
}

// loadAndSolve reads the polygon and finds the rectangle to highlight.
// The returned candidate is nil if no rectangle was found.
func loadAndSolve(cmd *cobra.Command, args []string, cfg *config) (*maxrect.Polygon, *maxrect.Candidate, error) {
	pts, err := readInput(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	poly, err := maxrect.NewPolygon(pts)
	if err != nil {
		return nil, nil, err
	}

	var res maxrect.Result
	if cfg.unconstrained {
		res = maxrect.LargestPair(pts)
	} else {
		res, err = search(cmd, poly, cfg)
		if err != nil {
			return nil, nil, err
		}
	}
	if !res.Found {
		return poly, nil, nil
	}
	return poly, &res.Candidate, nil
}
