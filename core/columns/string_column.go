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

import "fmt"

// StringColumn stores string values directly.
type StringColumn struct {
	columnDef *ColumnDef
	data      []string
}

// NewStringColumn creates a new string column
func NewStringColumn(columnDef *ColumnDef) *StringColumn {
	return &StringColumn{
		columnDef: columnDef,
		data:      make([]string, 0),
	}
}

func (c *StringColumn) ColumnDef() *ColumnDef {
	return c.columnDef
}

func (c *StringColumn) Length() int {
	return len(c.data)
}

func (c *StringColumn) Append(value string) {
	c.data = append(c.data, value)
}

// AppendString appends the value verbatim.
func (c *StringColumn) AppendString(s string) error {
	c.data = append(c.data, s)
	return nil
}

func (c *StringColumn) GetValue(i uint32) (string, error) {
	if i >= uint32(len(c.data)) {
		return "", outOfBounds(i, len(c.data))
	}
	return c.data[i], nil
}

// GetString returns the string value at index i
func (c *StringColumn) GetString(i uint32) (string, error) {
	return c.GetValue(i)
}

// CloneEmpty returns a new, empty string column with the same definition.
func (c *StringColumn) CloneEmpty() IDataColumn {
	return NewStringColumn(c.columnDef)
}

// AppendFrom appends the value at index i of src, which must be a StringColumn.
func (c *StringColumn) AppendFrom(src IDataColumn, i uint32) error {
	other, ok := src.(*StringColumn)
	if !ok {
		return fmt.Errorf("cannot append %T into string column %q", src, c.columnDef.Name())
	}
	v, err := other.GetValue(i)
	if err != nil {
		return err
	}
	c.data = append(c.data, v)
	return nil
}
