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

import "errors"

// Sentinel errors returned by registration and aggregation. All of them
// signal a caller configuration mistake, never a transient condition; none
// are retried internally. Use errors.Is to test for them.
var (
	// ErrDuplicateGrandTotal is returned when a column already has a grand
	// total assigned.
	ErrDuplicateGrandTotal = errors.New("duplicate grand total")

	// ErrDuplicateAlias is returned when an alias is already in use by any
	// grand total, sub total, or measure.
	ErrDuplicateAlias = errors.New("duplicate alias")

	// ErrUnknownColumn is returned when a referenced column is not part of
	// the bound table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnknownTotalsOnlyColumn is returned when a totals-only column has
	// no grand or sub total registered.
	ErrUnknownTotalsOnlyColumn = errors.New("totals-only column has no total")

	// ErrPrecondition is returned when Aggregate is invoked without a bound
	// table, grouping columns, or measures.
	ErrPrecondition = errors.New("aggregation precondition not met")
)
