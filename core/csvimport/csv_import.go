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

// Package csvimport reads CSV datasets into DataTables. Column types are
// detected by sampling unless pinned through ImportOptions; detection
// prefers the narrowest type that parses every sampled value, in the order
// int64, float64, bool, string.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/athroisma/core/columns"
	"github.com/google/athroisma/core/schema"
	"github.com/google/athroisma/core/tables"
)

// ColumnSource configures how one CSV column is imported, keyed by its
// header name.
type ColumnSource struct {
	// Name overrides the column name (defaults to the header)
	Name string
	// DisplayName overrides the display name
	DisplayName string
	// DType pins the column type instead of detecting it
	DType schema.DType
	// Pinned marks DType as authoritative; a zero DType otherwise means
	// auto-detect
	Pinned bool
}

// ImportOptions configures CSV import behavior.
type ImportOptions struct {
	// HasHeader indicates whether the first row contains column headers
	HasHeader bool
	// Delimiter is the field delimiter (defaults to comma)
	Delimiter rune
	// ColumnSources provides per-column configuration by header name
	ColumnSources map[string]ColumnSource
	// SampleSize is the number of rows sampled for type detection
	// (default: 100)
	SampleSize int
}

// DefaultOptions returns default import options.
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader:     true,
		Delimiter:     ',',
		ColumnSources: make(map[string]ColumnSource),
		SampleSize:    100,
	}
}

// ImportFromFile imports a CSV file and returns a DataTable.
func ImportFromFile(filepath string, options ImportOptions) (*tables.DataTable, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ImportFromReader(file, options)
}

// ImportFromReader imports CSV data from an io.Reader and returns a
// DataTable.
func ImportFromReader(reader io.Reader, options ImportOptions) (*tables.DataTable, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	var headers []string
	var dataRows [][]string
	if options.HasHeader {
		headers = records[0]
		dataRows = records[1:]
	} else {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
		dataRows = records
	}
	if len(dataRows) == 0 {
		return nil, fmt.Errorf("CSV file has no data rows")
	}

	dtypes := detectColumnTypes(headers, dataRows, options)

	table := tables.NewDataTable()
	cols := make([]columns.IDataColumn, len(headers))
	for i, header := range headers {
		source := options.ColumnSources[header]
		name := header
		if source.Name != "" {
			name = source.Name
		}
		displayName := name
		if source.DisplayName != "" {
			displayName = source.DisplayName
		}
		cols[i] = newColumn(dtypes[i], columns.NewColumnDef(name, displayName))
		table.AddColumn(cols[i])
	}

	for _, row := range dataRows {
		for i := range headers {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			if err := cols[i].AppendString(coerce(value, dtypes[i])); err != nil {
				return nil, fmt.Errorf("column %q: %w", headers[i], err)
			}
		}
	}
	return table, nil
}

// newColumn creates an empty column for the given dtype.
func newColumn(dt schema.DType, def *columns.ColumnDef) columns.IDataColumn {
	switch dt {
	case schema.DTypeInt64:
		return columns.NewInt64Column(def)
	case schema.DTypeFloat64:
		return columns.NewFloat64Column(def)
	case schema.DTypeBool:
		return columns.NewBoolColumn(def)
	default:
		return columns.NewStringColumn(def)
	}
}

// coerce substitutes a typed zero for values the column cannot parse, so a
// stray blank cell does not abort a multi-million row import.
func coerce(value string, dt schema.DType) string {
	switch dt {
	case schema.DTypeInt64:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return "0"
		}
	case schema.DTypeFloat64:
		if _, err := columns.ParseFloat64(value); err != nil {
			return "0"
		}
	case schema.DTypeBool:
		if _, err := columns.ParseBool(value); err != nil {
			return "false"
		}
	}
	return value
}

// detectColumnTypes samples data rows and picks each column's type. Blank
// cells do not vote; a column that is blank throughout stays string.
func detectColumnTypes(headers []string, dataRows [][]string, options ImportOptions) []schema.DType {
	sampleSize := options.SampleSize
	if sampleSize <= 0 {
		sampleSize = 100
	}
	if sampleSize > len(dataRows) {
		sampleSize = len(dataRows)
	}

	dtypes := make([]schema.DType, len(headers))
	for i, header := range headers {
		if source, ok := options.ColumnSources[header]; ok && source.Pinned {
			dtypes[i] = source.DType
			continue
		}

		allInt, allFloat, allBool := true, true, true
		sampled := 0
		for r := 0; r < sampleSize; r++ {
			if i >= len(dataRows[r]) {
				continue
			}
			value := strings.TrimSpace(dataRows[r][i])
			if value == "" {
				continue
			}
			sampled++
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				allInt = false
			}
			if _, err := columns.ParseFloat64(value); err != nil {
				allFloat = false
			}
			if _, err := columns.ParseBool(value); err != nil {
				allBool = false
			}
		}

		switch {
		case sampled == 0:
			dtypes[i] = schema.DTypeString
		case allInt:
			dtypes[i] = schema.DTypeInt64
		case allFloat:
			dtypes[i] = schema.DTypeFloat64
		case allBool:
			dtypes[i] = schema.DTypeBool
		default:
			dtypes[i] = schema.DTypeString
		}
	}
	return dtypes
}
