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
	"strings"

	"github.com/google/athroisma/core/columns"
	"github.com/google/athroisma/core/tables"
)

// groupKeySep joins group values into a map key. Unit separator keeps
// composite keys unambiguous for any printable column values.
const groupKeySep = "\x1f"

// computeMeasures groups the view by the full tuple of grouping-column
// values and reduces every measure within each group. Values rewritten by a
// total alias participate in grouping, so aliased rows group under the alias.
//
// The result has one row per group, grouping-column values preserved as
// strings, and one column per measure named by its alias. Group order is the
// first-seen row order, which keeps output deterministic within a run. An
// empty view produces an empty batch with the full column set, not an error.
func computeMeasures(view *tables.RowView, groupCols []string, measures []*MeasureSpec) (*tables.DataTable, error) {
	type group struct {
		values    []string
		positions []int
	}

	byKey := make(map[string]*group)
	var order []*group

	keyParts := make([]string, len(groupCols))
	for pos := 0; pos < view.Len(); pos++ {
		for i, col := range groupCols {
			v, err := view.Value(col, pos)
			if err != nil {
				return nil, err
			}
			keyParts[i] = v
		}
		key := strings.Join(keyParts, groupKeySep)

		g, exists := byKey[key]
		if !exists {
			g = &group{values: append([]string(nil), keyParts...)}
			byKey[key] = g
			order = append(order, g)
		}
		g.positions = append(g.positions, pos)
	}

	batch := tables.NewDataTable()
	groupOut := make([]*columns.StringColumn, len(groupCols))
	for i, col := range groupCols {
		groupOut[i] = columns.NewStringColumn(columns.NewColumnDef(col, col))
		batch.AddColumn(groupOut[i])
	}

	for _, m := range measures {
		batch.AddColumn(newMeasureColumn(m))
	}

	for _, g := range order {
		for i, v := range g.values {
			groupOut[i].Append(v)
		}
		for _, m := range measures {
			if err := appendMeasureValue(batch, view, m, g.positions); err != nil {
				return nil, err
			}
		}
	}
	return batch, nil
}

// newMeasureColumn creates the output column for a measure, typed by its
// reducer: float64 for numeric reductions, int64 for count, string for
// first/last.
func newMeasureColumn(m *MeasureSpec) columns.IDataColumn {
	def := columns.NewColumnDef(m.Alias, m.Alias)
	switch m.Reducer.Kind() {
	case ReduceCount:
		return columns.NewInt64Column(def)
	case ReduceFirst, ReduceLast:
		return columns.NewStringColumn(def)
	default:
		return columns.NewFloat64Column(def)
	}
}

// appendMeasureValue reduces one measure over one group and appends the
// result to the measure's output column in batch.
func appendMeasureValue(batch *tables.DataTable, view *tables.RowView, m *MeasureSpec, positions []int) error {
	switch m.Reducer.Kind() {
	case ReduceCount:
		batch.GetColumn(m.Alias).(*columns.Int64Column).Append(int64(len(positions)))
		return nil

	case ReduceFirst, ReduceLast:
		pos := positions[0]
		if m.Reducer.Kind() == ReduceLast {
			pos = positions[len(positions)-1]
		}
		v, err := view.Value(m.Column, pos)
		if err != nil {
			return err
		}
		batch.GetColumn(m.Alias).(*columns.StringColumn).Append(v)
		return nil

	default:
		values := make([]float64, len(positions))
		for i, pos := range positions {
			v, err := view.Float(m.Column, pos)
			if err != nil {
				return err
			}
			values[i] = v
		}
		batch.GetColumn(m.Alias).(*columns.Float64Column).Append(m.Reducer.reduceFloats(values))
		return nil
	}
}
