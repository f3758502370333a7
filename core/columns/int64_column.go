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

package columns

import (
	"fmt"
	"strconv"
)

// Int64Column stores int64 values.
type Int64Column struct {
	columnDef *ColumnDef
	data      []int64
}

// NewInt64Column creates a new int64 column.
func NewInt64Column(columnDef *ColumnDef) *Int64Column {
	return &Int64Column{
		columnDef: columnDef,
		data:      make([]int64, 0),
	}
}

// ColumnDef returns the column definition.
func (c *Int64Column) ColumnDef() *ColumnDef {
	return c.columnDef
}

// Length returns the number of rows in the column.
func (c *Int64Column) Length() int {
	return len(c.data)
}

// Append adds an int64 value to the column.
func (c *Int64Column) Append(value int64) {
	c.data = append(c.data, value)
}

// AppendString parses and adds an int64 from a string.
func (c *Int64Column) AppendString(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as int64: %w", s, err)
	}
	c.data = append(c.data, v)
	return nil
}

// GetValue returns the int64 value at the given index.
func (c *Int64Column) GetValue(i uint32) (int64, error) {
	if int(i) >= len(c.data) {
		return 0, outOfBounds(i, len(c.data))
	}
	return c.data[i], nil
}

// GetFloat returns the value at the given index for numeric reductions.
func (c *Int64Column) GetFloat(i uint32) (float64, error) {
	v, err := c.GetValue(i)
	if err != nil {
		return 0, err
	}
	return float64(v), nil
}

// GetString returns the string representation of the value at the given index.
func (c *Int64Column) GetString(i uint32) (string, error) {
	if int(i) >= len(c.data) {
		return "", outOfBounds(i, len(c.data))
	}
	return strconv.FormatInt(c.data[i], 10), nil
}

// CloneEmpty returns a new, empty int64 column with the same definition.
func (c *Int64Column) CloneEmpty() IDataColumn {
	return NewInt64Column(c.columnDef)
}

// AppendFrom appends the value at index i of src, which must be an Int64Column.
func (c *Int64Column) AppendFrom(src IDataColumn, i uint32) error {
	other, ok := src.(*Int64Column)
	if !ok {
		return fmt.Errorf("cannot append %T into int64 column %q", src, c.columnDef.Name())
	}
	v, err := other.GetValue(i)
	if err != nil {
		return err
	}
	c.data = append(c.data, v)
	return nil
}
