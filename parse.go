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

package maxrect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed line in a vertex list.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", err.Line, err.Text, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

var errFieldCount = errors.New("want two comma-separated integers")

// ReadPoints reads one "x,y" point per line.  Blank lines are skipped and
// white space around the numbers is ignored.
func ReadPoints(r io.Reader) ([]Point, error) {
	var pts []Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pt, err := parsePoint(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		pts = append(pts, pt)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

func parsePoint(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return Point{}, errFieldCount
	}
	x, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}
