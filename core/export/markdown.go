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

package export

import (
	"strings"

	"github.com/google/athroisma/core/tables"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// MarkdownFormatter renders tables as markdown, suitable for dropping a
// rollup report into a doc or a terminal.
type MarkdownFormatter struct {
	// MaxWidth is the maximum width for a column value
	MaxWidth int
	// TruncateString is appended when a value is truncated
	TruncateString string
}

// NewMarkdownFormatter creates a formatter with default settings.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{
		MaxWidth:       50,
		TruncateString: "...",
	}
}

// Format renders the table as a markdown table, headers taken from column
// display names.
func (f *MarkdownFormatter) Format(table *tables.DataTable) (string, error) {
	names := table.GetColumnNames()
	if table.Length() == 0 {
		return "_No rows_", nil
	}

	rows, err := tableRows(table)
	if err != nil {
		return "", err
	}

	out := &strings.Builder{}

	alignment := make([]tw.Align, len(names))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}
	md := tablewriter.NewTable(out,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	headers := make([]string, len(names))
	for i, name := range names {
		headers[i] = table.GetColumn(name).ColumnDef().DisplayName()
	}
	md.Header(headers)

	for _, row := range rows {
		md.Append(f.truncateRow(row))
	}
	md.Render()
	return out.String(), nil
}

func (f *MarkdownFormatter) truncateRow(row []string) []string {
	if f.MaxWidth <= 0 {
		return row
	}
	out := make([]string, len(row))
	for i, v := range row {
		if len(v) > f.MaxWidth {
			v = v[:f.MaxWidth] + f.TruncateString
		}
		out[i] = v
	}
	return out
}
