/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Athroisma Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rollup

// Combination is an ordered, duplicate-free set of total specs in which no
// two specs bind the same column. Combinations are produced by the subset
// enumerator; callers never build them directly.
type Combination []*TotalSpec

// Columns returns the columns bound by the combination's specs, in spec order.
func (c Combination) Columns() []string {
	cols := make([]string, len(c))
	for i, spec := range c {
		cols[i] = spec.Column
	}
	return cols
}

// columnsDistinct reports whether no two specs bind the same column.
func (c Combination) columnsDistinct() bool {
	seen := make(map[string]struct{}, len(c))
	for _, spec := range c {
		if _, dup := seen[spec.Column]; dup {
			return false
		}
		seen[spec.Column] = struct{}{}
	}
	return true
}

// covers reports whether the combination binds every required column.
func (c Combination) covers(required []string) bool {
	for _, req := range required {
		found := false
		for _, spec := range c {
			if spec.Column == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// combinationIterator lazily enumerates every legal combination of total
// specs: all k-subsets of the registered specs for k = minK..maxK, where maxK
// is the count of distinct total-bearing columns, filtered down to subsets
// whose columns are pairwise distinct and cover the required columns.
//
// Subsets are chosen over spec identities, not columns, so two sub totals on
// one column produce candidate subsets that bind the column twice; the
// distinctness filter is what rejects them. That is also why maxK is the
// distinct-column count rather than the spec count.
//
// The iterator is single-use; create a new one to enumerate again.
type combinationIterator struct {
	specs    []*TotalSpec
	required []string
	k        int
	maxK     int
	idx      []int // current k-subset of specs; nil before the first of each k
}

// newCombinationIterator creates an iterator over the given specs. When
// required is non-empty the minimum subset size is 1+len(required), capped at
// the distinct-column count, since every yielded combination must bind all
// required columns.
func newCombinationIterator(specs []*TotalSpec, required []string) *combinationIterator {
	distinct := make(map[string]struct{})
	for _, spec := range specs {
		distinct[spec.Column] = struct{}{}
	}
	maxK := len(distinct)

	minK := 1
	if len(required) > 0 {
		minK = 1 + len(required)
		if minK > maxK {
			minK = maxK
		}
	}

	return &combinationIterator{
		specs:    specs,
		required: required,
		k:        minK,
		maxK:     maxK,
	}
}

// Next returns the next legal combination, or false when exhausted.
func (it *combinationIterator) Next() (Combination, bool) {
	for it.advance() {
		comb := make(Combination, it.k)
		for i, j := range it.idx {
			comb[i] = it.specs[j]
		}
		if comb.columnsDistinct() && comb.covers(it.required) {
			return comb, true
		}
	}
	return nil, false
}

// advance moves to the next k-subset in lexicographic order, rolling over to
// the next subset size when the current one is exhausted.
func (it *combinationIterator) advance() bool {
	n := len(it.specs)
	for {
		if it.k < 1 || it.k > it.maxK || it.k > n {
			return false
		}
		if it.idx == nil {
			it.idx = make([]int, it.k)
			for i := range it.idx {
				it.idx[i] = i
			}
			return true
		}

		// Find the rightmost index that can still move
		i := it.k - 1
		for i >= 0 && it.idx[i] == n-it.k+i {
			i--
		}
		if i < 0 {
			it.k++
			it.idx = nil
			continue
		}
		it.idx[i]++
		for j := i + 1; j < it.k; j++ {
			it.idx[j] = it.idx[j-1] + 1
		}
		return true
	}
}
