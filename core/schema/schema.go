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

// Package schema maps symbolic column names to physical column names and
// declared scalar types. It is a configuration-time lookup structure: larger
// projects refer to columns by stable attribute names and resolve the
// physical names once, instead of spreading string literals around.
package schema

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// DType is a declared scalar column type.
type DType int

const (
	DTypeString DType = iota
	DTypeInt64
	DTypeFloat64
	DTypeBool
)

// String returns the canonical name of the dtype.
func (d DType) String() string {
	switch d {
	case DTypeString:
		return "string"
	case DTypeInt64:
		return "int64"
	case DTypeFloat64:
		return "float64"
	case DTypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseDType parses a dtype name. Accepts the canonical names plus a few
// common aliases ("str", "int", "float", "double", "boolean").
func ParseDType(s string) (DType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "str":
		return DTypeString, nil
	case "int64", "int":
		return DTypeInt64, nil
	case "float64", "float", "double":
		return DTypeFloat64, nil
	case "bool", "boolean":
		return DTypeBool, nil
	default:
		return DTypeString, fmt.Errorf("%q is not a known dtype", s)
	}
}

// ColumnSpec describes one column: the attribute used to look it up, the
// physical column name, its declared type, and an optional description.
type ColumnSpec struct {
	Attr  string
	Name  string
	DType DType
	Desc  string
}

// Enumerator resolves symbolic attribute names to physical column names.
// It is immutable after construction except for AddGroup, which registers
// named sub-groupings of its columns.
type Enumerator struct {
	specs  []ColumnSpec
	byAttr map[string]ColumnSpec
	byName map[string]ColumnSpec
	groups map[string]*Enumerator
}

// NewEnumerator creates an Enumerator from the given specs. Attribute and
// physical names must both be unique.
func NewEnumerator(specs []ColumnSpec) (*Enumerator, error) {
	e := &Enumerator{
		specs:  specs,
		byAttr: make(map[string]ColumnSpec, len(specs)),
		byName: make(map[string]ColumnSpec, len(specs)),
	}
	for _, spec := range specs {
		if _, exists := e.byAttr[spec.Attr]; exists {
			return nil, fmt.Errorf("duplicate attribute %q", spec.Attr)
		}
		if _, exists := e.byName[spec.Name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", spec.Name)
		}
		e.byAttr[spec.Attr] = spec
		e.byName[spec.Name] = spec
	}
	return e, nil
}

// Name resolves an attribute to its physical column name.
func (e *Enumerator) Name(attr string) (string, error) {
	spec, ok := e.byAttr[attr]
	if !ok {
		return "", fmt.Errorf("attribute %q not found", attr)
	}
	return spec.Name, nil
}

// DTypeOf returns the declared type of the column with the given physical name.
func (e *Enumerator) DTypeOf(name string) (DType, error) {
	spec, ok := e.byName[name]
	if !ok {
		return DTypeString, fmt.Errorf("column %q not found", name)
	}
	return spec.DType, nil
}

// Select returns the physical column names in the order given at construction.
func (e *Enumerator) Select() []string {
	names := make([]string, len(e.specs))
	for i, spec := range e.specs {
		names[i] = spec.Name
	}
	return names
}

// DTypeMapping returns a name -> dtype map for all columns.
func (e *Enumerator) DTypeMapping() map[string]DType {
	mapping := make(map[string]DType, len(e.specs))
	for _, spec := range e.specs {
		mapping[spec.Name] = spec.DType
	}
	return mapping
}

// AddGroup registers a named sub-grouping of this enumerator's columns.
// Members may be given by attribute or by physical name.
func (e *Enumerator) AddGroup(group string, members []string) error {
	specs := make([]ColumnSpec, 0, len(members))
	for _, m := range members {
		spec, ok := e.byAttr[m]
		if !ok {
			spec, ok = e.byName[m]
		}
		if !ok {
			return fmt.Errorf("%q is not a column of this enumerator", m)
		}
		specs = append(specs, spec)
	}
	sub, err := NewEnumerator(specs)
	if err != nil {
		return err
	}
	if e.groups == nil {
		e.groups = make(map[string]*Enumerator)
	}
	e.groups[group] = sub
	return nil
}

// Group returns a previously registered sub-grouping.
func (e *Enumerator) Group(group string) (*Enumerator, error) {
	sub, ok := e.groups[group]
	if !ok {
		return nil, fmt.Errorf("group %q not found", group)
	}
	return sub, nil
}

// FromCSV creates an Enumerator from CSV rows of the form attr,name,dtype
// with an optional trailing description field.
func FromCSV(r io.Reader, hasHeader bool) (*Enumerator, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}

	specs := make([]ColumnSpec, 0, len(records))
	for _, rec := range records {
		if len(rec) < 3 {
			return nil, fmt.Errorf("expected at least 3 fields (attr,name,dtype), got %d", len(rec))
		}
		dtype, err := ParseDType(rec[2])
		if err != nil {
			return nil, err
		}
		spec := ColumnSpec{
			Attr:  strings.TrimSpace(rec[0]),
			Name:  strings.TrimSpace(rec[1]),
			DType: dtype,
		}
		if len(rec) > 3 {
			spec.Desc = strings.TrimSpace(rec[3])
		}
		specs = append(specs, spec)
	}
	return NewEnumerator(specs)
}
