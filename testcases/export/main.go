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

// Command export writes the polygon test cases as vertex files, one "x,y"
// line per vertex, together with an index of the expected answers.
// Run from the module root directory.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/maxrect/testcases"
)

const outDir = "testdata"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fileName := name + ".txt"
			if err := writeVertices(filepath.Join(outDir, fileName), tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.TestCases = append(out.TestCases, jsonTestCase{
				Name:          name,
				File:          fileName,
				Vertices:      len(tc.Vertices),
				Analytic:      tc.Analytic,
				Exhaustive:    tc.Exhaustive,
				Unconstrained: tc.Unconstrained,
			})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name          string `json:"name"`
	File          string `json:"file"`
	Vertices      int    `json:"vertices"`
	Analytic      int64  `json:"analytic"`
	Exhaustive    int64  `json:"exhaustive"`
	Unconstrained int64  `json:"unconstrained"`
}

func writeVertices(fileName string, tc testcases.TestCase) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, v := range tc.Vertices {
		if _, err := fmt.Fprintf(w, "%d,%d\n", v.X, v.Y); err != nil {
			return err
		}
	}
	return w.Flush()
}
