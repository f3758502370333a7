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

// Package tables provides the in-memory DataTable and read-only row views
// over it. A DataTable owns its columns; a RowView selects a subset of rows
// and may override the visible values of individual columns without touching
// the underlying table.
package tables

import (
	"fmt"

	"github.com/google/athroisma/core/columns"
)

// DataTable is a column-oriented table. Columns keep the order in which they
// were added; all columns must have the same length by the time the table is
// read.
type DataTable struct {
	columns map[string]columns.IDataColumn
	order   []string
}

func NewDataTable() *DataTable {
	return &DataTable{
		columns: make(map[string]columns.IDataColumn),
	}
}

// AddColumn adds a column to the table. Adding a column with a name that is
// already present replaces the previous column but keeps its position.
func (dt *DataTable) AddColumn(col columns.IDataColumn) {
	name := col.ColumnDef().Name()
	if _, exists := dt.columns[name]; !exists {
		dt.order = append(dt.order, name)
	}
	dt.columns[name] = col
}

// GetColumn returns the column with the given name, or nil.
func (dt *DataTable) GetColumn(name string) columns.IDataColumn {
	return dt.columns[name]
}

// HasColumn reports whether a column with the given name exists.
func (dt *DataTable) HasColumn(name string) bool {
	_, ok := dt.columns[name]
	return ok
}

// GetColumnNames returns the column names in the order they were added.
func (dt *DataTable) GetColumnNames() []string {
	names := make([]string, len(dt.order))
	copy(names, dt.order)
	return names
}

// Length returns the number of rows, taken from the first column.
func (dt *DataTable) Length() int {
	if len(dt.order) == 0 {
		return 0
	}
	return dt.columns[dt.order[0]].Length()
}

// CloneEmpty returns a new table with empty clones of every column, in order.
func (dt *DataTable) CloneEmpty() *DataTable {
	out := NewDataTable()
	for _, name := range dt.order {
		out.AddColumn(dt.columns[name].CloneEmpty())
	}
	return out
}

// Concat appends the rows of all batches into one table, columns aligned by
// name. Every batch must carry the same set of columns as the first one.
// Concatenating zero batches yields an empty table with no columns.
func Concat(batches []*DataTable) (*DataTable, error) {
	if len(batches) == 0 {
		return NewDataTable(), nil
	}

	out := batches[0].CloneEmpty()
	for _, batch := range batches {
		for _, name := range out.GetColumnNames() {
			src := batch.GetColumn(name)
			if src == nil {
				return nil, fmt.Errorf("batch is missing column %q", name)
			}
			dst := out.GetColumn(name)
			for i := 0; i < src.Length(); i++ {
				if err := dst.AppendFrom(src, uint32(i)); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}
