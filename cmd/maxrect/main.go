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

// Command maxrect prints the tile area of the largest rectangle which has
// two polygon vertices as opposite corners and lies inside the polygon.
//
// The polygon is read from the file given as the argument, or from
// standard input, as one "x,y" vertex per line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/maxrect"
	"seehuhn.de/go/maxrect/plot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "maxrect [file]",
		Short: "Find the largest vertex-anchored rectangle inside a rectilinear polygon",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				maxrect.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return cfg.check()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res, err := solve(cmd, pts, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Area)
			return nil
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.strategy, "strategy", "s", strategyAnalytic,
		"validator: "+strategyAnalytic+" or "+strategyExhaustive)
	flags.BoolVarP(&cfg.parallel, "parallel", "p", false, "validate all candidates on a pool of workers")
	flags.IntVarP(&cfg.workers, "workers", "w", 0, "number of workers (0 = GOMAXPROCS)")
	flags.BoolVar(&cfg.progress, "progress", false, "report finished chunks on stderr")
	flags.BoolVarP(&cfg.unconstrained, "unconstrained", "u", false, "ignore the polygon interior, use any two vertices")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log search statistics on stderr")

	rootCmd.AddCommand(renderCmd(cfg))
	rootCmd.AddCommand(plotCmd(cfg))

	return rootCmd
}

func renderCmd(cfg *config) *cobra.Command {
	opt := plot.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print a character map of the polygon and the selected rectangle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poly, best, err := loadAndSolve(cmd, args, cfg)
			if err != nil {
				return err
			}
			return plot.WriteASCII(cmd.OutOrStdout(), poly, best, opt)
		},
	}

	cmd.Flags().IntVarP(&opt.Margin, "margin", "m", opt.Margin, "empty tiles around the polygon")
	cmd.Flags().IntVar(&opt.MaxTiles, "max-tiles", opt.MaxTiles, "refuse to print larger maps")
	return cmd
}

func plotCmd(cfg *config) *cobra.Command {
	opt := plot.DefaultOptions()
	var output string

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Draw the polygon and the selected rectangle to a PDF or PNG file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poly, best, err := loadAndSolve(cmd, args, cfg)
			if err != nil {
				return err
			}
			switch strings.ToLower(filepath.Ext(output)) {
			case ".pdf":
				return plot.WritePDF(output, poly, best, opt)
			case ".png":
				return writePNG(output, poly, best, opt)
			default:
				return fmt.Errorf("output %q: file name must end in .pdf or .png", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "maxrect.pdf", "output file (.pdf or .png)")
	cmd.Flags().IntVarP(&opt.Margin, "margin", "m", opt.Margin, "empty tiles around the polygon")
	cmd.Flags().Float64Var(&opt.Size, "size", opt.Size, "length of the longer side in pixels or points")
	return cmd
}

func writePNG(fileName string, poly *maxrect.Polygon, best *maxrect.Candidate, opt *plot.Options) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return plot.DrawPNG(f, poly, best, opt)
}
