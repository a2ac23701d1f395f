// SPDX-License-Identifier: MIT

// Package distmat - plain-text loaders for city and distance data.
//
// Formats (whitespace-separated, blank lines ignored):
//
//	city file:     one "id x y" triple per line, IDs forming exactly 1..n;
//	distance file: n lines of n finite non-negative numbers each.
//
// Design:
//   - Strict by default: a non-blank line that does not parse is an error,
//     not a skip. The loaders are the validation boundary — consumers
//     receive a square matrix of finite non-negative reals.
//   - Sentinels only (errors.go); parse context (line number, token) is
//     attached via fmt.Errorf("...: %w", ErrMalformedInput).
package distmat

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// cityFieldCount is the exact number of tokens on a city line: id, x, y.
const cityFieldCount = 3

// ParseMatrix reads a whitespace-separated square matrix of finite
// non-negative numbers. Blank lines are skipped; every other line must
// contribute one full row.
//
// Errors: ErrMalformedInput (wrapped with line/token context) on unparsable
// tokens, NaN/Inf, negative distances, ragged rows, or non-square shape.
//
// Complexity: O(n²) time and space.
func ParseMatrix(r io.Reader) (*Dense, error) {
	var (
		rows [][]float64
		ln   int // 1-based physical line number for diagnostics
	)

	sc := bufio.NewScanner(r)
	// Rows of a few thousand cities exceed the default 64KiB token limit.
	sc.Buffer(make([]byte, 0, 64*1024), 1<<22)

	for sc.Scan() {
		ln++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}

		row := make([]float64, len(fields))

		var (
			k   int
			v   float64
			err error
		)
		for k = 0; k < len(fields); k++ {
			v, err = strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, fmt.Errorf("distmat: line %d: bad number %q: %w", ln, fields[k], ErrMalformedInput)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("distmat: line %d: non-finite distance %q: %w", ln, fields[k], ErrMalformedInput)
			}
			if v < 0 {
				return nil, fmt.Errorf("distmat: line %d: negative distance %v: %w", ln, v, ErrMalformedInput)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("distmat: read: %w", err)
	}

	// Shape (empty/ragged/non-square) is enforced by the constructor.
	return NewDense(rows)
}

// LoadMatrix reads a distance matrix from a file via ParseMatrix.
func LoadMatrix(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distmat: open matrix: %w", err)
	}
	defer f.Close()

	return ParseMatrix(f)
}

// ParseCities reads "id x y" lines and returns the cities sorted by ID.
// IDs must form exactly the contiguous set 1..n so that matrix index ID-1
// is well defined for every record; this is the convention of the data
// files and of all reporting output.
//
// Errors: ErrMalformedInput (wrapped with line context) on field-count or
// numeric failures and on non-contiguous IDs; ErrDuplicateCity on repeated
// IDs; ErrNoCities when no records are present.
//
// Complexity: O(n log n) time (sort), O(n) space.
func ParseCities(r io.Reader) ([]City, error) {
	var (
		cities []City
		ln     int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		if len(fields) != cityFieldCount {
			return nil, fmt.Errorf("distmat: line %d: want %d fields, got %d: %w", ln, cityFieldCount, len(fields), ErrMalformedInput)
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("distmat: line %d: bad city id %q: %w", ln, fields[0], ErrMalformedInput)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("distmat: line %d: bad x %q: %w", ln, fields[1], ErrMalformedInput)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("distmat: line %d: bad y %q: %w", ln, fields[2], ErrMalformedInput)
		}

		cities = append(cities, City{ID: id, X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("distmat: read: %w", err)
	}

	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	sort.Slice(cities, func(i, j int) bool { return cities[i].ID < cities[j].ID })

	// Enforce the 1..n contiguity contract after sorting: duplicates first
	// (the more specific failure), then gaps.
	var i int
	for i = 0; i < len(cities); i++ {
		if i > 0 && cities[i].ID == cities[i-1].ID {
			return nil, ErrDuplicateCity
		}
		if cities[i].ID != i+1 {
			return nil, fmt.Errorf("distmat: city ids must be 1..%d, got %d: %w", len(cities), cities[i].ID, ErrMalformedInput)
		}
	}

	return cities, nil
}

// LoadCities reads a city coordinate file via ParseCities.
func LoadCities(path string) ([]City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distmat: open cities: %w", err)
	}
	defer f.Close()

	return ParseCities(f)
}
