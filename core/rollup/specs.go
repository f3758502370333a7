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

// TotalKind distinguishes grand totals from sub totals.
type TotalKind int

const (
	// TotalKindGrand rewrites every row's value in the bound column to the
	// spec's alias, unconditionally.
	TotalKindGrand TotalKind = iota
	// TotalKindSub first filters rows by its selector, then rewrites the
	// survivors' value in the bound column to the spec's alias.
	TotalKindSub
)

// Selector decides which rows participate in a sub total. When Include is
// true only rows whose bound-column value is in Values are kept; when false
// those rows are dropped and everything else is kept.
type Selector struct {
	values  map[string]struct{}
	include bool
}

// NewSelector creates a selector over the given values.
func NewSelector(values []string, include bool) *Selector {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return &Selector{values: set, include: include}
}

// Matches reports whether a row with the given bound-column value survives
// the selector. The value compared is always the column's original value,
// never a total alias.
func (s *Selector) Matches(value string) bool {
	_, member := s.values[value]
	return member == s.include
}

// TotalSpec is one grand or sub total bound to a single grouping column.
// Selector is nil for grand totals.
type TotalSpec struct {
	Alias    string
	Column   string
	Kind     TotalKind
	Selector *Selector
}

// MeasureSpec is a named reduction of one source column's values within each
// group. The source column does not have to be a grouping column.
type MeasureSpec struct {
	Alias   string
	Column  string
	Reducer Reducer
}
