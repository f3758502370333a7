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

func stringAt(t *testing.T, table *tables.DataTable, column string, row int) string {
	t.Helper()
	v, err := table.GetColumn(column).GetString(uint32(row))
	require.NoError(t, err)
	return v
}

func floatAt(t *testing.T, table *tables.DataTable, column string, row int) float64 {
	t.Helper()
	v, err := table.GetColumn(column).(*columns.Float64Column).GetValue(uint32(row))
	require.NoError(t, err)
	return v
}

func TestComputeMeasuresGroupsFirstSeen(t *testing.T) {
	base := salesTable(t)
	measures := []*MeasureSpec{{Alias: "total", Column: "sales", Reducer: Sum()}}

	batch, err := computeMeasures(tables.NewRowView(base), []string{"region"}, measures)
	require.NoError(t, err)

	require.Equal(t, 4, batch.Length())
	assert.Equal(t, "N", stringAt(t, batch, "region", 0))
	assert.Equal(t, "S", stringAt(t, batch, "region", 1))
	assert.Equal(t, "E", stringAt(t, batch, "region", 2))
	assert.Equal(t, "W", stringAt(t, batch, "region", 3))

	assert.Equal(t, 150.0, floatAt(t, batch, "total", 0))
	assert.Equal(t, 225.0, floatAt(t, batch, "total", 1))
	assert.Equal(t, 200.0, floatAt(t, batch, "total", 2))
	assert.Equal(t, 310.0, floatAt(t, batch, "total", 3))
}

func TestComputeMeasuresAliasedValuesGroupTogether(t *testing.T) {
	base := salesTable(t)
	view, err := applyCombination(base, Combination{grand("region", "ALL")})
	require.NoError(t, err)

	measures := []*MeasureSpec{{Alias: "total", Column: "sales", Reducer: Sum()}}
	batch, err := computeMeasures(view, []string{"region"}, measures)
	require.NoError(t, err)

	require.Equal(t, 1, batch.Length())
	assert.Equal(t, "ALL", stringAt(t, batch, "region", 0))
	assert.Equal(t, 885.0, floatAt(t, batch, "total", 0))
}

func TestComputeMeasuresEmptyViewYieldsEmptyBatch(t *testing.T) {
	base := salesTable(t)
	view, err := applyCombination(base, Combination{
		sub("region", "NONE", []string{"Z"}, true),
	})
	require.NoError(t, err)

	measures := []*MeasureSpec{{Alias: "total", Column: "sales", Reducer: Sum()}}
	batch, err := computeMeasures(view, []string{"region"}, measures)
	require.NoError(t, err)

	assert.Equal(t, 0, batch.Length())
	assert.Equal(t, []string{"region", "total"}, batch.GetColumnNames())
}

func TestComputeMeasuresReducerZoo(t *testing.T) {
	base := salesTable(t)
	measures := []*MeasureSpec{
		{Alias: "total", Column: "sales", Reducer: Sum()},
		{Alias: "avg", Column: "sales", Reducer: Mean()},
		{Alias: "n", Column: "sales", Reducer: Count()},
		{Alias: "low", Column: "sales", Reducer: Min()},
		{Alias: "high", Column: "sales", Reducer: Max()},
		{Alias: "first_cat", Column: "category", Reducer: First()},
		{Alias: "last_cat", Column: "category", Reducer: Last()},
		{Alias: "spread", Column: "sales", Reducer: Custom("spread", func(vs []float64) float64 {
			lo, hi := vs[0], vs[0]
			for _, v := range vs[1:] {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			return hi - lo
		})},
	}

	batch, err := computeMeasures(tables.NewRowView(base), []string{"region"}, measures)
	require.NoError(t, err)
	require.Equal(t, 4, batch.Length())

	// Region N: sales 100 and 50, categories gadgets then widgets.
	assert.Equal(t, 150.0, floatAt(t, batch, "total", 0))
	assert.Equal(t, 75.0, floatAt(t, batch, "avg", 0))
	assert.Equal(t, 50.0, floatAt(t, batch, "low", 0))
	assert.Equal(t, 100.0, floatAt(t, batch, "high", 0))
	assert.Equal(t, 50.0, floatAt(t, batch, "spread", 0))
	assert.Equal(t, "gadgets", stringAt(t, batch, "first_cat", 0))
	assert.Equal(t, "widgets", stringAt(t, batch, "last_cat", 0))

	n, err := batch.GetColumn("n").(*columns.Int64Column).GetValue(0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestComputeMeasuresIntColumnSum(t *testing.T) {
	base := salesTable(t)
	measures := []*MeasureSpec{{Alias: "units", Column: "quantity", Reducer: Sum()}}

	batch, err := computeMeasures(tables.NewRowView(base), []string{"category"}, measures)
	require.NoError(t, err)
	require.Equal(t, 2, batch.Length())
	assert.Equal(t, "gadgets", stringAt(t, batch, "category", 0))
	assert.Equal(t, 11.0, floatAt(t, batch, "units", 0))
	assert.Equal(t, 8.0, floatAt(t, batch, "units", 1))
}
