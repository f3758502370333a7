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

import "github.com/google/athroisma/core/tables"

// applyCombination derives the view of the base table for one combination.
//
// Sub-total filters run first and sequentially, each narrowing the carried
// view (logical AND); they compare the column's original values. Only then
// is every bound column rewritten to its spec's alias. The order matters:
// filtering after aliasing would compare selector values against aliases.
// Grand totals never filter, they only rewrite.
//
// The base table is not modified; the result is an ephemeral view owned by
// the caller.
func applyCombination(base *tables.DataTable, comb Combination) (*tables.RowView, error) {
	view := tables.NewRowView(base)

	var err error
	for _, spec := range comb {
		if spec.Kind != TotalKindSub {
			continue
		}
		view, err = view.Filter(spec.Column, spec.Selector.Matches)
		if err != nil {
			return nil, err
		}
	}

	for _, spec := range comb {
		view = view.WithOverride(spec.Column, spec.Alias)
	}
	return view, nil
}
