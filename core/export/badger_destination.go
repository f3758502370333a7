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
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/athroisma/core/tables"
)

// valueSep joins row values inside a stored record. Unit separator keeps
// the encoding unambiguous for printable values.
const valueSep = "\x1f"

// BadgerDestination persists aggregation batches in a BadgerDB store, one
// record per row under a per-report key prefix. Rows keep their arrival
// order via a monotonically increasing sequence in the key.
type BadgerDestination struct {
	db      *badger.DB
	report  string
	columns []string
	seq     uint64
}

// OpenBadgerDestination opens (or creates) a Badger store at path and
// scopes all writes under the given report name.
func OpenBadgerDestination(path, report string) (*BadgerDestination, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &BadgerDestination{db: db, report: report}, nil
}

// WriteHeaderAndRows records the batch's columns as the report header and
// appends the batch's rows.
func (d *BadgerDestination) WriteHeaderAndRows(batch *tables.DataTable) error {
	d.columns = batch.GetColumnNames()
	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.Set(d.headerKey(), []byte(strings.Join(d.columns, valueSep)))
	})
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return d.AppendRows(batch)
}

// AppendRows appends the batch's rows to the report.
func (d *BadgerDestination) AppendRows(batch *tables.DataTable) error {
	if d.columns != nil {
		if err := checkColumns(d.columns, batch.GetColumnNames()); err != nil {
			return err
		}
	}
	rows, err := tableRows(batch)
	if err != nil {
		return err
	}
	return d.db.Update(func(txn *badger.Txn) error {
		for _, row := range rows {
			key := d.rowKey(d.seq)
			if err := txn.Set(key, []byte(strings.Join(row, valueSep))); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
			d.seq++
		}
		return nil
	})
}

// Header reads back the stored column names for the report.
func (d *BadgerDestination) Header() ([]string, error) {
	var header []string
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(d.headerKey())
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			header = strings.Split(string(val), valueSep)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	return header, nil
}

// Rows reads back every stored row for the report in append order.
func (d *BadgerDestination) Rows() ([][]string, error) {
	var rows [][]string
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = d.rowPrefix()

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				rows = append(rows, strings.Split(string(val), valueSep))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// Close closes the underlying store.
func (d *BadgerDestination) Close() error {
	return d.db.Close()
}

func (d *BadgerDestination) headerKey() []byte {
	return []byte(fmt.Sprintf("%s!h", d.report))
}

func (d *BadgerDestination) rowPrefix() []byte {
	return []byte(fmt.Sprintf("%s!r!", d.report))
}

// rowKey encodes the sequence zero-padded so key order matches append
// order.
func (d *BadgerDestination) rowKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s!r!%016d", d.report, seq))
}
