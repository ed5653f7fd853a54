// SPDX-License-Identifier: MIT
// Package similarity: Pair and ResultSet.

package similarity

import (
	"cmp"
	"slices"
)

// Match is one similar target row.
type Match struct {
	Idx int     // target row index
	S   float64 // similarity score
}

// RowResult holds the matches of one source row, sorted by descending S,
// ties by ascending Idx.
type RowResult struct {
	Idx    int // source row index
	Values []Match
}

// ResultSet is the output of one engine call, ordered by RowResult.Idx
// ascending. Source rows without any match are omitted.
type ResultSet []RowResult

// Pairs returns the total number of matches across all rows.
func (rs ResultSet) Pairs() int {
	n := 0
	for _, r := range rs {
		n += len(r.Values)
	}

	return n
}

// Row returns the matches of source row idx, or nil when the row has none.
// Complexity: O(log len(rs)).
func (rs ResultSet) Row(idx int) []Match {
	k, ok := slices.BinarySearchFunc(rs, idx, func(r RowResult, t int) int {
		return cmp.Compare(r.Idx, t)
	})
	if !ok {
		return nil
	}

	return rs[k].Values
}

// compareMatches orders matches best-first: higher score, then lower index.
func compareMatches(a, b Match) int {
	if a.S > b.S {
		return -1
	}
	if a.S < b.S {
		return 1
	}

	return cmp.Compare(a.Idx, b.Idx)
}

// sortMatches sorts ms best-first in place.
func sortMatches(ms []Match) {
	slices.SortFunc(ms, compareMatches)
}
