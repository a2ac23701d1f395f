// SPDX-License-Identifier: MIT

// Package distmat provides the immutable distance-matrix data layer for the
// evotsp solver, plus loaders for the plain-text city and distance formats.
//
// The package offers:
//
//   - Dense: a row-major N×N matrix of pairwise distances, immutable after
//     construction, with O(1) bounds-checked lookups.
//   - City: a 2D city record (1-indexed ID, x/y coordinates) as read from
//     data files.
//   - FromCities: a symmetric Euclidean matrix built from coordinates.
//   - ParseMatrix/ParseCities (and Load* file wrappers) for the
//     whitespace-separated data formats.
//
// Construction validates shape only (square, non-ragged, non-empty);
// symmetry and the zero diagonal are assumed properties of the data, not
// enforced invariants. The parsers are stricter: they reject NaN/Inf and
// negative distances so that downstream consumers receive a validated
// matrix.
package distmat
