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

	"github.com/google/athroisma/core/columns"
	"github.com/google/athroisma/core/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// salesTable builds the fixture used across the rollup tests: eight sales
// rows over four regions and two categories.
func salesTable(t *testing.T) *tables.DataTable {
	t.Helper()

	region := columns.NewStringColumn(columns.NewColumnDef("region", "Region"))
	category := columns.NewStringColumn(columns.NewColumnDef("category", "Category"))
	sales := columns.NewFloat64Column(columns.NewColumnDef("sales", "Sales"))
	quantity := columns.NewInt64Column(columns.NewColumnDef("quantity", "Quantity"))

	rows := []struct {
		region, category string
		sales            float64
		quantity         int64
	}{
		{"N", "gadgets", 100, 1},
		{"N", "widgets", 50, 2},
		{"S", "gadgets", 200, 3},
		{"S", "widgets", 25, 1},
		{"E", "gadgets", 75, 2},
		{"E", "widgets", 125, 4},
		{"W", "gadgets", 300, 5},
		{"W", "widgets", 10, 1},
	}
	for _, r := range rows {
		region.Append(r.region)
		category.Append(r.category)
		sales.Append(r.sales)
		quantity.Append(r.quantity)
	}

	table := tables.NewDataTable()
	table.AddColumn(region)
	table.AddColumn(category)
	table.AddColumn(sales)
	table.AddColumn(quantity)
	return table
}

func TestGrandTotalPreservesRowCount(t *testing.T) {
	base := salesTable(t)
	view, err := applyCombination(base, Combination{grand("region", "ALL")})
	require.NoError(t, err)

	assert.Equal(t, base.Length(), view.Len())
	for pos := 0; pos < view.Len(); pos++ {
		v, err := view.Value("region", pos)
		require.NoError(t, err)
		assert.Equal(t, "ALL", v)
	}
}

func TestSubTotalFiltersThenRenames(t *testing.T) {
	base := salesTable(t)
	view, err := applyCombination(base, Combination{
		sub("region", "COAST", []string{"E", "W"}, true),
	})
	require.NoError(t, err)

	require.Equal(t, 4, view.Len())
	for pos := 0; pos < view.Len(); pos++ {
		v, err := view.Value("region", pos)
		require.NoError(t, err)
		assert.Equal(t, "COAST", v)
	}
}

// An alias that happens to equal a real column value must not pull extra
// rows into the sub total: filters compare original values, never aliases.
func TestAliasCannotReMatchFilter(t *testing.T) {
	base := salesTable(t)
	view, err := applyCombination(base, Combination{
		sub("region", "S", []string{"N"}, true),
	})
	require.NoError(t, err)

	require.Equal(t, 2, view.Len())
	for pos := 0; pos < view.Len(); pos++ {
		v, err := view.Value("region", pos)
		require.NoError(t, err)
		assert.Equal(t, "S", v)
	}
}

func TestSubTotalExclude(t *testing.T) {
	base := salesTable(t)
	view, err := applyCombination(base, Combination{
		sub("region", "INLAND", []string{"E", "W"}, false),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, view.Len())
}

func TestMultipleSubTotalsIntersect(t *testing.T) {
	base := salesTable(t)
	view, err := applyCombination(base, Combination{
		sub("region", "COAST", []string{"E", "W"}, true),
		sub("category", "GADGETS", []string{"gadgets"}, true),
	})
	require.NoError(t, err)

	require.Equal(t, 2, view.Len())
	for pos := 0; pos < view.Len(); pos++ {
		r, err := view.Value("region", pos)
		require.NoError(t, err)
		c, err := view.Value("category", pos)
		require.NoError(t, err)
		assert.Equal(t, "COAST", r)
		assert.Equal(t, "GADGETS", c)
	}
}

func TestEmptySelectionYieldsEmptyView(t *testing.T) {
	base := salesTable(t)
	view, err := applyCombination(base, Combination{
		sub("region", "NONE", []string{"Z"}, true),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, view.Len())
}

func TestBaseTableUntouched(t *testing.T) {
	base := salesTable(t)
	_, err := applyCombination(base, Combination{
		grand("region", "ALL"),
		sub("category", "GADGETS", []string{"gadgets"}, true),
	})
	require.NoError(t, err)

	v, err := base.GetColumn("region").GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "N", v)
	assert.Equal(t, 8, base.Length())
}
