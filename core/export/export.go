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

// Package export delivers aggregated tables to external formats and stores:
// CSV writers, markdown rendering, and a BadgerDB-backed destination for
// streaming runs.
package export

import (
	"fmt"

	"github.com/google/athroisma/core/tables"
)

// tableRows flattens a table into row-major string values, columns in table
// order.
func tableRows(table *tables.DataTable) ([][]string, error) {
	names := table.GetColumnNames()
	rows := make([][]string, table.Length())
	for r := range rows {
		row := make([]string, len(names))
		for c, name := range names {
			v, err := table.GetColumn(name).GetString(uint32(r))
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", name, r, err)
			}
			row[c] = v
		}
		rows[r] = row
	}
	return rows, nil
}

// checkColumns verifies that a follow-up batch carries the same column set
// as the batch that opened the destination.
func checkColumns(want, got []string) error {
	if len(want) != len(got) {
		return fmt.Errorf("batch has %d columns, destination opened with %d", len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("batch column %d is %q, destination opened with %q", i, got[i], want[i])
		}
	}
	return nil
}
