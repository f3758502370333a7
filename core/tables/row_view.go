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

package tables

import (
	"fmt"

	"github.com/google/athroisma/core/columns"
)

// RowView is a read-only view of a DataTable: a subset of its rows plus
// per-column value overrides. Views are cheap; Filter and WithOverride return
// new views sharing the base table, which is never modified.
//
// Overrides replace the visible value of a column for every row in the view.
// Filter always compares against the base table's values, not overrides, so a
// row that was given an override cannot re-match a filter on its original
// value.
type RowView struct {
	table     *DataTable
	indices   []uint32
	overrides map[string]string
}

// NewRowView creates a view covering every row of the table with no overrides.
func NewRowView(table *DataTable) *RowView {
	indices := make([]uint32, table.Length())
	for i := range indices {
		indices[i] = uint32(i)
	}
	return &RowView{table: table, indices: indices}
}

// BaseTable returns the underlying immutable DataTable.
func (v *RowView) BaseTable() *DataTable {
	return v.table
}

// Len returns the number of rows in the view.
func (v *RowView) Len() int {
	return len(v.indices)
}

// Filter returns a new view keeping only rows whose base value in the given
// column satisfies keep. Overridden values are deliberately not consulted.
func (v *RowView) Filter(column string, keep func(string) bool) (*RowView, error) {
	col := v.table.GetColumn(column)
	if col == nil {
		return nil, fmt.Errorf("column %q not found", column)
	}

	kept := make([]uint32, 0, len(v.indices))
	for _, idx := range v.indices {
		s, err := col.GetString(idx)
		if err != nil {
			return nil, err
		}
		if keep(s) {
			kept = append(kept, idx)
		}
	}
	return &RowView{table: v.table, indices: kept, overrides: v.overrides}, nil
}

// WithOverride returns a new view in which every row's visible value in the
// given column is the override value.
func (v *RowView) WithOverride(column, value string) *RowView {
	overrides := make(map[string]string, len(v.overrides)+1)
	for k, val := range v.overrides {
		overrides[k] = val
	}
	overrides[column] = value
	return &RowView{table: v.table, indices: v.indices, overrides: overrides}
}

// Value returns the visible string value of the given column at view position
// pos, honoring overrides.
func (v *RowView) Value(column string, pos int) (string, error) {
	if pos < 0 || pos >= len(v.indices) {
		return "", fmt.Errorf("position %d out of bounds (length: %d)", pos, len(v.indices))
	}
	if value, ok := v.overrides[column]; ok {
		return value, nil
	}
	col := v.table.GetColumn(column)
	if col == nil {
		return "", fmt.Errorf("column %q not found", column)
	}
	return col.GetString(v.indices[pos])
}

// Float returns the numeric value of the given column at view position pos.
// Overrides never apply here: measures always reduce the base table's values.
func (v *RowView) Float(column string, pos int) (float64, error) {
	if pos < 0 || pos >= len(v.indices) {
		return 0, fmt.Errorf("position %d out of bounds (length: %d)", pos, len(v.indices))
	}
	col := v.table.GetColumn(column)
	if col == nil {
		return 0, fmt.Errorf("column %q not found", column)
	}
	num, ok := col.(columns.INumericColumn)
	if !ok {
		return 0, fmt.Errorf("column %q is not numeric", column)
	}
	return num.GetFloat(v.indices[pos])
}
