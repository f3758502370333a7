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

// Package rollup computes grand-total and sub-total rollup reports over a
// DataTable. An Aggregator is configured with grouping columns, measures,
// and total definitions, bound to a table, and then run: it enumerates every
// legal combination of totals, derives a filtered and aliased view of the
// table for each, aggregates the view, and merges all batches through a
// sink.
//
// A run is single-threaded and synchronous; each combination is processed to
// completion before the next begins. The base table is shared read-only
// across combinations and must not be mutated by the caller during a run.
package rollup

import (
	"fmt"

	"github.com/google/athroisma/core/tables"
)

// State tracks the aggregator's lifecycle.
type State int

const (
	StateUnconfigured State = iota
	StateConfigured
	StateRunning
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Aggregator owns the spec registry and drives a rollup run over one bound
// table. Any registration or run violation moves it to StateFailed and is
// returned to the caller; batches already flushed to the sink stay flushed.
type Aggregator struct {
	friendlyName string
	table        *tables.DataTable
	registry     *Registry
	state        State
}

// New creates an Aggregator with no table bound. The friendly name only
// appears in String output.
func New(friendlyName string) *Aggregator {
	if friendlyName == "" {
		friendlyName = "Unnamed"
	}
	return &Aggregator{
		friendlyName: friendlyName,
		registry:     NewRegistry(),
		state:        StateUnconfigured,
	}
}

// State returns the aggregator's current lifecycle state.
func (a *Aggregator) State() State {
	return a.state
}

func (a *Aggregator) String() string {
	return fmt.Sprintf("Aggregator (%s) with: %d grand totals, %d sub totals, %d measures",
		a.friendlyName, len(a.registry.grands), len(a.registry.subs), len(a.registry.measures))
}

// BindTable attaches the table the aggregator will act upon and eagerly
// validates every previously registered spec against its schema.
func (a *Aggregator) BindTable(table *tables.DataTable) error {
	if err := a.registry.Validate(table); err != nil {
		a.state = StateFailed
		return err
	}
	a.table = table
	if a.state == StateUnconfigured {
		a.state = StateConfigured
	}
	return nil
}

// AddGroupByColumn includes a column in the groupby selection without making
// a total.
func (a *Aggregator) AddGroupByColumn(column string) error {
	if err := a.checkColumn(column); err != nil {
		return err
	}
	a.registry.AddGroupByColumn(column)
	return nil
}

// AddGrandTotal registers a grand total on the column under the given alias.
func (a *Aggregator) AddGrandTotal(column, alias string) error {
	if err := a.checkColumn(column); err != nil {
		return err
	}
	if err := a.registry.AddGrandTotal(column, alias); err != nil {
		a.state = StateFailed
		return err
	}
	return nil
}

// AddSubTotal registers a sub total on the column under the given alias.
// When include is true the sub total covers rows whose column value is in
// values; when false it covers every other row.
func (a *Aggregator) AddSubTotal(column, alias string, values []string, include bool) error {
	if err := a.checkColumn(column); err != nil {
		return err
	}
	if err := a.registry.AddSubTotal(column, alias, values, include); err != nil {
		a.state = StateFailed
		return err
	}
	return nil
}

// AddMeasure registers a measure reducing the given source column.
func (a *Aggregator) AddMeasure(column, alias string, reducer Reducer) error {
	if err := a.checkColumn(column); err != nil {
		return err
	}
	if err := a.registry.AddMeasure(column, alias, reducer); err != nil {
		a.state = StateFailed
		return err
	}
	return nil
}

// checkColumn validates a column reference against the bound table's schema.
// With no table bound yet, validation is deferred until BindTable.
func (a *Aggregator) checkColumn(column string) error {
	if a.table == nil {
		return nil
	}
	if !a.table.HasColumn(column) {
		a.state = StateFailed
		return fmt.Errorf("%w: %q is not a valid column within the bound table", ErrUnknownColumn, column)
	}
	return nil
}

// Aggregate performs all aggregations and returns them as one concatenated
// table, buffered in memory.
//
// totalsOnly optionally lists columns whose per-value breakdown should be
// suppressed: every emitted combination must then carry a total on each
// listed column, and the zero-totals baseline pass is skipped. A nil or
// empty totalsOnly emits the baseline pass plus every legal combination.
func (a *Aggregator) Aggregate(totalsOnly []string) (*tables.DataTable, error) {
	return a.run(NewBufferedSink(), totalsOnly)
}

// AggregateTo performs all aggregations, streaming every batch to dest as it
// is produced instead of buffering. The returned table is the untouched base
// table; the aggregated data exists only in dest.
func (a *Aggregator) AggregateTo(dest Destination, totalsOnly []string) (*tables.DataTable, error) {
	if a.table == nil {
		a.state = StateFailed
		return nil, fmt.Errorf("%w: no table has been bound, use BindTable first", ErrPrecondition)
	}
	return a.run(NewStreamingSink(dest, a.table), totalsOnly)
}

func (a *Aggregator) run(sink Sink, totalsOnly []string) (*tables.DataTable, error) {
	if err := a.checkPreconditions(); err != nil {
		a.state = StateFailed
		return nil, err
	}
	if err := a.checkTotalsOnly(totalsOnly); err != nil {
		a.state = StateFailed
		return nil, err
	}
	a.state = StateRunning

	groupCols := a.registry.GroupColumns()
	measures := a.registry.Measures()

	// Baseline pass over the untransformed table. Skipped when totalsOnly
	// is given: every output must then carry the required totals.
	if len(totalsOnly) == 0 {
		batch, err := computeMeasures(tables.NewRowView(a.table), groupCols, measures)
		if err != nil {
			return nil, a.fail(err)
		}
		if err := sink.Append(batch); err != nil {
			return nil, a.fail(err)
		}
	}

	it := newCombinationIterator(a.registry.Totals(), totalsOnly)
	for {
		comb, ok := it.Next()
		if !ok {
			break
		}
		view, err := applyCombination(a.table, comb)
		if err != nil {
			return nil, a.fail(err)
		}
		batch, err := computeMeasures(view, groupCols, measures)
		if err != nil {
			return nil, a.fail(err)
		}
		if err := sink.Append(batch); err != nil {
			return nil, a.fail(err)
		}
	}

	out, err := sink.Finalize()
	if err != nil {
		return nil, a.fail(err)
	}
	a.state = StateDone
	return out, nil
}

// fail records a mid-run failure. Batches already sent to the sink are not
// rolled back.
func (a *Aggregator) fail(err error) error {
	a.state = StateFailed
	return err
}

func (a *Aggregator) checkPreconditions() error {
	if a.table == nil {
		return fmt.Errorf("%w: no table has been bound, use BindTable first", ErrPrecondition)
	}
	if len(a.registry.groupCols) == 0 {
		return fmt.Errorf("%w: %s has no groupby columns", ErrPrecondition, a)
	}
	if len(a.registry.measures) == 0 {
		return fmt.Errorf("%w: %s has no aggregation measures to calculate", ErrPrecondition, a)
	}
	return nil
}

// checkTotalsOnly verifies that every totals-only column carries at least
// one registered total.
func (a *Aggregator) checkTotalsOnly(totalsOnly []string) error {
	if len(totalsOnly) == 0 {
		return nil
	}
	totalCols := a.registry.TotalColumns()
	lookup := make(map[string]struct{}, len(totalCols))
	for _, col := range totalCols {
		lookup[col] = struct{}{}
	}
	for _, col := range totalsOnly {
		if _, ok := lookup[col]; !ok {
			return fmt.Errorf("%w: %q has no grand/sub total set, expected one of %v",
				ErrUnknownTotalsOnlyColumn, col, totalCols)
		}
	}
	return nil
}
