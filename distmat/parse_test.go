// Package distmat_test contains unit tests for the plain-text loaders.
package distmat_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/evotsp/distmat"
	"github.com/stretchr/testify/require"
)

// TestParseMatrixValid parses a matrix with blank lines and uneven spacing.
func TestParseMatrixValid(t *testing.T) {
	in := "0 1.5  2\n\n1.5\t0 3\n2 3 0\n\n"
	m, err := distmat.ParseMatrix(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, m.N())

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)
}

// TestParseMatrixBadToken ensures unparsable numbers are rejected with
// the malformed-input sentinel.
func TestParseMatrixBadToken(t *testing.T) {
	in := "0 1\nx 0\n"
	_, err := distmat.ParseMatrix(strings.NewReader(in))
	require.ErrorIs(t, err, distmat.ErrMalformedInput)
	require.Contains(t, err.Error(), "line 2") // parse context preserved
}

// TestParseMatrixRejectsNonFinite covers NaN and Inf tokens, which
// strconv.ParseFloat would otherwise accept.
func TestParseMatrixRejectsNonFinite(t *testing.T) {
	for _, in := range []string{"0 NaN\n1 0\n", "0 +Inf\n1 0\n"} {
		_, err := distmat.ParseMatrix(strings.NewReader(in))
		require.ErrorIs(t, err, distmat.ErrMalformedInput, "input %q", in)
	}
}

// TestParseMatrixRejectsNegative ensures negative distances are a loader
// error (the constructor itself is shape-only).
func TestParseMatrixRejectsNegative(t *testing.T) {
	in := "0 -1\n1 0\n"
	_, err := distmat.ParseMatrix(strings.NewReader(in))
	require.ErrorIs(t, err, distmat.ErrMalformedInput)
}

// TestParseMatrixBadShape covers ragged, non-square, and empty inputs.
func TestParseMatrixBadShape(t *testing.T) {
	for name, in := range map[string]string{
		"ragged":    "0 1 2\n1 0\n2 3 0\n",
		"nonsquare": "0 1 2\n1 0 3\n",
		"empty":     "\n\n",
	} {
		_, err := distmat.ParseMatrix(strings.NewReader(in))
		require.ErrorIs(t, err, distmat.ErrMalformedInput, "case %s", name)
	}
}

// TestParseCitiesValid checks parsing, blank-line skipping, and that the
// result comes back sorted by ID regardless of file order.
func TestParseCitiesValid(t *testing.T) {
	in := "2 10.5 20\n\n1 0 0\n3 -3 4\n"
	cities, err := distmat.ParseCities(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, cities, 3)

	require.Equal(t, []distmat.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 10.5, Y: 20},
		{ID: 3, X: -3, Y: 4},
	}, cities)
}

// TestParseCitiesFieldCount ensures a non-blank line with the wrong number
// of fields is an error, not a silent skip.
func TestParseCitiesFieldCount(t *testing.T) {
	in := "1 0 0\n2 5\n"
	_, err := distmat.ParseCities(strings.NewReader(in))
	require.ErrorIs(t, err, distmat.ErrMalformedInput)
}

// TestParseCitiesBadNumber covers unparsable id/x/y tokens.
func TestParseCitiesBadNumber(t *testing.T) {
	for _, in := range []string{"a 0 0\n", "1 b 0\n", "1 0 c\n"} {
		_, err := distmat.ParseCities(strings.NewReader(in))
		require.ErrorIs(t, err, distmat.ErrMalformedInput, "input %q", in)
	}
}

// TestParseCitiesDuplicateID ensures duplicate IDs fail with the specific
// duplicate sentinel.
func TestParseCitiesDuplicateID(t *testing.T) {
	in := "1 0 0\n1 1 1\n"
	_, err := distmat.ParseCities(strings.NewReader(in))
	require.ErrorIs(t, err, distmat.ErrDuplicateCity)
}

// TestParseCitiesGap ensures non-contiguous IDs break the 1..n contract.
func TestParseCitiesGap(t *testing.T) {
	in := "1 0 0\n3 1 1\n"
	_, err := distmat.ParseCities(strings.NewReader(in))
	require.ErrorIs(t, err, distmat.ErrMalformedInput)
}

// TestParseCitiesEmpty ensures an all-blank input yields ErrNoCities.
func TestParseCitiesEmpty(t *testing.T) {
	_, err := distmat.ParseCities(strings.NewReader("\n \n"))
	require.ErrorIs(t, err, distmat.ErrNoCities)
}

// TestLoadMissingFiles ensures the Load wrappers surface open errors.
func TestLoadMissingFiles(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, err := distmat.LoadMatrix(missing)
	require.Error(t, err)

	_, err = distmat.LoadCities(missing)
	require.Error(t, err)
}
