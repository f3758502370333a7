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

package rendering

import (
	"fmt"

	"github.com/google/athroisma/core/tables"
)

// ReportViewModel contains an aggregated table formatted for template
// consumption.
type ReportViewModel struct {
	Title    string
	Headers  []string // Column display names
	Rows     []ReportRow
	RowCount int
}

// ReportRow is one rendered row. Total marks rows carrying a total alias so
// the template can style them.
type ReportRow struct {
	Values []string
	Total  bool
}

// NewReportViewModel flattens a table into a view model. totalAliases lists
// the alias values that mark a row as a total row; a row is a total row
// when any of its values matches one.
func NewReportViewModel(title string, table *tables.DataTable, totalAliases []string) (ReportViewModel, error) {
	names := table.GetColumnNames()

	vm := ReportViewModel{
		Title:    title,
		Headers:  make([]string, len(names)),
		RowCount: table.Length(),
	}
	for i, name := range names {
		vm.Headers[i] = table.GetColumn(name).ColumnDef().DisplayName()
	}

	aliases := make(map[string]struct{}, len(totalAliases))
	for _, a := range totalAliases {
		aliases[a] = struct{}{}
	}

	for r := 0; r < table.Length(); r++ {
		row := ReportRow{Values: make([]string, len(names))}
		for c, name := range names {
			v, err := table.GetColumn(name).GetString(uint32(r))
			if err != nil {
				return ReportViewModel{}, fmt.Errorf("column %q row %d: %w", name, r, err)
			}
			row.Values[c] = v
			if _, ok := aliases[v]; ok {
				row.Total = true
			}
		}
		vm.Rows = append(vm.Rows, row)
	}
	return vm, nil
}
