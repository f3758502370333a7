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
	"encoding/csv"
	"io"

	"github.com/google/athroisma/core/tables"
)

// CSVDestination streams aggregation batches to an io.Writer as CSV. The
// first batch supplies the header row; later batches must carry the same
// columns. Call Flush when the run is done.
type CSVDestination struct {
	writer  *csv.Writer
	columns []string
}

// NewCSVDestination creates a CSV destination writing to w.
func NewCSVDestination(w io.Writer) *CSVDestination {
	return &CSVDestination{writer: csv.NewWriter(w)}
}

// WriteHeaderAndRows writes the header row from the batch's columns, then
// the batch's rows.
func (d *CSVDestination) WriteHeaderAndRows(batch *tables.DataTable) error {
	d.columns = batch.GetColumnNames()
	if err := d.writer.Write(d.columns); err != nil {
		return err
	}
	return d.AppendRows(batch)
}

// AppendRows writes the batch's rows without a header.
func (d *CSVDestination) AppendRows(batch *tables.DataTable) error {
	if d.columns != nil {
		if err := checkColumns(d.columns, batch.GetColumnNames()); err != nil {
			return err
		}
	}
	rows, err := tableRows(batch)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := d.writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush forces buffered output to the underlying writer and reports any
// write error.
func (d *CSVDestination) Flush() error {
	d.writer.Flush()
	return d.writer.Error()
}

// WriteTable writes a whole table as CSV in one call, header included.
func WriteTable(w io.Writer, table *tables.DataTable) error {
	dest := NewCSVDestination(w)
	if err := dest.WriteHeaderAndRows(table); err != nil {
		return err
	}
	return dest.Flush()
}
