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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grand(column, alias string) *TotalSpec {
	return &TotalSpec{Alias: alias, Column: column, Kind: TotalKindGrand}
}

func sub(column, alias string, values []string, include bool) *TotalSpec {
	return &TotalSpec{
		Alias:    alias,
		Column:   column,
		Kind:     TotalKindSub,
		Selector: NewSelector(values, include),
	}
}

func collect(it *combinationIterator) []Combination {
	var out []Combination
	for {
		comb, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, comb)
	}
}

func TestCombinationsColumnsDistinct(t *testing.T) {
	specs := []*TotalSpec{
		grand("region", "ALL"),
		sub("region", "COAST", []string{"E", "W"}, true),
		grand("category", "ANY"),
	}
	combs := collect(newCombinationIterator(specs, nil))

	for _, comb := range combs {
		seen := make(map[string]int)
		for _, col := range comb.Columns() {
			seen[col]++
			assert.Equal(t, 1, seen[col], "column %q bound twice in %v", col, comb.Columns())
		}
	}

	// 3 singletons plus {ALL,ANY} and {COAST,ANY}; {ALL,COAST} collides on
	// region and is filtered out. maxK is 2 (distinct columns), so no
	// 3-subsets are attempted.
	require.Len(t, combs, 5)
}

func TestCombinationsSingleColumn(t *testing.T) {
	specs := []*TotalSpec{
		grand("region", "ALL"),
		sub("region", "COAST", []string{"E", "W"}, true),
	}
	combs := collect(newCombinationIterator(specs, nil))
	require.Len(t, combs, 2)
	assert.Equal(t, "ALL", combs[0][0].Alias)
	assert.Equal(t, "COAST", combs[1][0].Alias)
}

func TestCombinationsRequiredColumns(t *testing.T) {
	specs := []*TotalSpec{
		grand("region", "ALL"),
		grand("category", "ANY"),
		grand("channel", "EVERY"),
	}
	combs := collect(newCombinationIterator(specs, []string{"region"}))
	require.NotEmpty(t, combs)
	for _, comb := range combs {
		assert.Contains(t, comb.Columns(), "region")
		assert.GreaterOrEqual(t, len(comb), 2)
	}
	// Pairs {region,category}, {region,channel} and the full triple.
	assert.Len(t, combs, 3)
}

func TestCombinationsRequiredCappedAtDistinctColumns(t *testing.T) {
	specs := []*TotalSpec{grand("region", "ALL")}
	combs := collect(newCombinationIterator(specs, []string{"region"}))
	require.Len(t, combs, 1)
	assert.Equal(t, []string{"region"}, combs[0].Columns())
}

func TestCombinationsEmptySpecs(t *testing.T) {
	combs := collect(newCombinationIterator(nil, nil))
	assert.Empty(t, combs)
}
