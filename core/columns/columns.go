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

// Package columns provides typed columnar storage for in-memory tables.
// Each column stores values of a single scalar type and exposes a string
// view of every value; numeric columns additionally expose a float64 view
// used by measure reducers.
package columns

import "fmt"

type IColumnDef interface {
	Name() string // must not contain any of the following characters: & = : ,
	DisplayName() string
}

type ColumnDef struct {
	name        string // must not contain any of the following characters: & = : ,
	displayName string
}

// NewColumnDef creates a new ColumnDef with the given name and display name
func NewColumnDef(name, displayName string) *ColumnDef {
	return &ColumnDef{
		name:        name,
		displayName: displayName,
	}
}

func (cd *ColumnDef) Name() string {
	return cd.name
}

func (cd *ColumnDef) DisplayName() string {
	return cd.displayName
}

// IDataColumn is the common interface implemented by every column type.
type IDataColumn interface {
	ColumnDef() *ColumnDef
	Length() int
	// GetString returns the display representation of the value at index i.
	GetString(i uint32) (string, error)
	// AppendString parses s according to the column's type and appends it.
	AppendString(s string) error
	// CloneEmpty returns a new, empty column with the same definition.
	CloneEmpty() IDataColumn
	// AppendFrom appends the value at index i of src, which must be a
	// column of the same concrete type.
	AppendFrom(src IDataColumn, i uint32) error
}

// INumericColumn is implemented by columns whose values can be used in
// numeric reductions (sum, mean, min, max).
type INumericColumn interface {
	IDataColumn
	GetFloat(i uint32) (float64, error)
}

func outOfBounds(i uint32, length int) error {
	return fmt.Errorf("index %d out of bounds (length: %d)", i, length)
}
