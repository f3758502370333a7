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
	"fmt"

	"github.com/google/athroisma/core/tables"
)

// Registry holds the declared grand totals, sub totals, and measures for one
// aggregation run. Alias uniqueness is enforced across all three namespaces
// with a single owned set; grand-total-per-column uniqueness with a per-column
// marker. Grouping columns keep first-seen order.
type Registry struct {
	groupCols     []string
	grandByColumn map[string]*TotalSpec
	grands        []*TotalSpec
	subs          []*TotalSpec
	measures      []*MeasureSpec
	aliases       map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		grandByColumn: make(map[string]*TotalSpec),
		aliases:       make(map[string]struct{}),
	}
}

// AddGroupByColumn includes a column in the groupby selection. Adding the
// same column twice is a no-op; order of first addition is preserved.
func (r *Registry) AddGroupByColumn(column string) {
	for _, c := range r.groupCols {
		if c == column {
			return
		}
	}
	r.groupCols = append(r.groupCols, column)
}

// AddGrandTotal registers a grand total on the given column and makes the
// column a grouping column if it is not one already.
func (r *Registry) AddGrandTotal(column, alias string) error {
	if _, exists := r.grandByColumn[column]; exists {
		return fmt.Errorf("%w: column %q already has a grand total assigned", ErrDuplicateGrandTotal, column)
	}
	if err := r.claimAlias(alias); err != nil {
		return err
	}
	spec := &TotalSpec{Alias: alias, Column: column, Kind: TotalKindGrand}
	r.grandByColumn[column] = spec
	r.grands = append(r.grands, spec)
	r.AddGroupByColumn(column)
	return nil
}

// AddSubTotal registers a sub total on the given column and makes the column
// a grouping column if it is not one already. A column may carry any number
// of sub totals.
func (r *Registry) AddSubTotal(column, alias string, values []string, include bool) error {
	if err := r.claimAlias(alias); err != nil {
		return err
	}
	spec := &TotalSpec{
		Alias:    alias,
		Column:   column,
		Kind:     TotalKindSub,
		Selector: NewSelector(values, include),
	}
	r.subs = append(r.subs, spec)
	r.AddGroupByColumn(column)
	return nil
}

// AddMeasure registers a measure. The source column is not required to be a
// grouping column.
func (r *Registry) AddMeasure(column, alias string, reducer Reducer) error {
	if err := r.claimAlias(alias); err != nil {
		return err
	}
	r.measures = append(r.measures, &MeasureSpec{Alias: alias, Column: column, Reducer: reducer})
	return nil
}

func (r *Registry) claimAlias(alias string) error {
	if _, used := r.aliases[alias]; used {
		return fmt.Errorf("%w: %q already in use", ErrDuplicateAlias, alias)
	}
	r.aliases[alias] = struct{}{}
	return nil
}

// GroupColumns returns the grouping columns in first-seen order.
func (r *Registry) GroupColumns() []string {
	cols := make([]string, len(r.groupCols))
	copy(cols, r.groupCols)
	return cols
}

// Totals returns all total specs, grand totals first, each group in
// registration order.
func (r *Registry) Totals() []*TotalSpec {
	totals := make([]*TotalSpec, 0, len(r.grands)+len(r.subs))
	totals = append(totals, r.grands...)
	totals = append(totals, r.subs...)
	return totals
}

// TotalColumns returns the distinct columns carrying at least one total.
func (r *Registry) TotalColumns() []string {
	seen := make(map[string]struct{})
	var cols []string
	for _, spec := range r.Totals() {
		if _, ok := seen[spec.Column]; ok {
			continue
		}
		seen[spec.Column] = struct{}{}
		cols = append(cols, spec.Column)
	}
	return cols
}

// Measures returns the registered measures in registration order.
func (r *Registry) Measures() []*MeasureSpec {
	measures := make([]*MeasureSpec, len(r.measures))
	copy(measures, r.measures)
	return measures
}

// Validate checks every registered grouping column and measure source against
// the table's schema. Used when a table is bound after registration started.
func (r *Registry) Validate(table *tables.DataTable) error {
	for _, col := range r.groupCols {
		if !table.HasColumn(col) {
			return fmt.Errorf("%w: %q was set to be aggregated but is not part of the given table", ErrUnknownColumn, col)
		}
	}
	for _, m := range r.measures {
		if !table.HasColumn(m.Column) {
			return fmt.Errorf("%w: %q was set to be aggregated but is not part of the given table", ErrUnknownColumn, m.Column)
		}
	}
	return nil
}
