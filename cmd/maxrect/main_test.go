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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/maxrect"
)

const example = `7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
`

// execute runs the command line tool with the given arguments and input.
func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { maxrect.SetLogger(nil) })

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestArea(t *testing.T) {
	cases := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"default", example, nil, "24\n"},
		{"exhaustive", example, []string{"--strategy", "exhaustive"}, "24\n"},
		{"parallel", example, []string{"-p", "-w", "3"}, "24\n"},
		{"parallel_exhaustive", example, []string{"-p", "-s", "exhaustive"}, "24\n"},
		{"unconstrained", example, []string{"-u"}, "50\n"},
		{"empty", "", nil, "0\n"},
		{"blank", "\n\n\n", nil, "0\n"},
		{"single", "3,4\n", nil, "0\n"},
		{"single_unconstrained", "3,4\n", []string{"-u"}, "0\n"},
		{"two_unconstrained", "0,0\n2,3\n", []string{"-u"}, "12\n"},
		{"notched_analytic", "0,0\n0,3\n3,3\n3,2\n1,2\n1,1\n3,1\n3,0\n", nil, "8\n"},
		{"notched_exhaustive", "0,0\n0,3\n3,3\n3,2\n1,2\n1,1\n3,1\n3,0\n", []string{"-s", "exhaustive"}, "16\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.input, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestFileArgument(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "polygon.txt")
	require.NoError(t, os.WriteFile(fileName, []byte(example), 0o644))

	out, _, err := execute(t, "", fileName)
	require.NoError(t, err)
	require.Equal(t, "24\n", out)

	_, _, err = execute(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestErrors(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		_, _, err := execute(t, "1,2\n3;4\n")
		var parseErr *maxrect.ParseError
		require.True(t, errors.As(err, &parseErr))
		require.Equal(t, 2, parseErr.Line)
	})

	t.Run("two_points", func(t *testing.T) {
		_, _, err := execute(t, "0,0\n0,5\n")
		require.ErrorIs(t, err, maxrect.ErrInvalidPolygon)
	})

	t.Run("diagonal", func(t *testing.T) {
		_, _, err := execute(t, "0,0\n0,3\n3,3\n4,0\n")
		require.ErrorIs(t, err, maxrect.ErrInvalidPolygon)
	})

	t.Run("strategy", func(t *testing.T) {
		_, _, err := execute(t, example, "--strategy", "sampling")
		require.ErrorContains(t, err, "unknown strategy")
	})

	t.Run("workers", func(t *testing.T) {
		_, _, err := execute(t, example, "-p", "--workers=-1")
		require.Error(t, err)
	})

	t.Run("args", func(t *testing.T) {
		_, _, err := execute(t, example, "a.txt", "b.txt")
		require.Error(t, err)
	})
}

func TestProgress(t *testing.T) {
	out, stderr, err := execute(t, example, "-p", "-w", "3", "--progress")
	require.NoError(t, err)
	require.Equal(t, "24\n", out)
	require.Equal(t, 3, strings.Count(stderr, "valid rectangles\n"))
	require.Contains(t, stderr, "chunk 1/3: ")
	require.Contains(t, stderr, "chunk 3/3: ")
}

func TestVerbose(t *testing.T) {
	out, stderr, err := execute(t, example, "-v")
	require.NoError(t, err)
	require.Equal(t, "24\n", out)
	require.Contains(t, stderr, "sequential search done")
	require.Contains(t, stderr, "area=24")
}

func TestRender(t *testing.T) {
	out, _, err := execute(t, "0,0\n0,3\n3,3\n3,0\n", "render")
	require.NoError(t, err)
	want := "......\n" +
		".#OO#.\n" +
		".OOOO.\n" +
		".OOOO.\n" +
		".#OO#.\n" +
		"......\n"
	require.Equal(t, want, out)

	out, _, err = execute(t, "0,0\n0,3\n3,3\n3,0\n", "render", "--margin", "0", "-u")
	require.NoError(t, err)
	require.Equal(t, "#OO#\nOOOO\nOOOO\n#OO#\n", out)

	_, _, err = execute(t, "0,0\n0,3\n3,3\n3,0\n", "render", "--max-tiles", "10")
	require.Error(t, err)

	_, _, err = execute(t, "", "render")
	require.ErrorIs(t, err, maxrect.ErrInvalidPolygon)
}

func TestPlot(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.pdf", "out.png"} {
		fileName := filepath.Join(dir, name)
		_, _, err := execute(t, example, "plot", "-o", fileName, "--size", "100")
		require.NoError(t, err)
		info, err := os.Stat(fileName)
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}

	_, _, err := execute(t, example, "plot", "-o", filepath.Join(dir, "out.svg"))
	require.ErrorContains(t, err, ".pdf or .png")
}
