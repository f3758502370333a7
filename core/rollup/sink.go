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

// Sink receives one aggregated batch per combination. A sink instance
// belongs to a single run; batches already appended are not rolled back if
// the run fails later.
type Sink interface {
	Append(batch *tables.DataTable) error
	Finalize() (*tables.DataTable, error)
}

// Destination is an external appendable receiver for streaming runs. The
// first batch of a run arrives via WriteHeaderAndRows; every subsequent batch
// via AppendRows.
type Destination interface {
	WriteHeaderAndRows(batch *tables.DataTable) error
	AppendRows(batch *tables.DataTable) error
}

// BufferedSink holds every batch in memory and concatenates them on
// Finalize. Callers needing all-or-nothing semantics use this sink and
// discard its result on failure.
type BufferedSink struct {
	batches []*tables.DataTable
}

func NewBufferedSink() *BufferedSink {
	return &BufferedSink{}
}

func (s *BufferedSink) Append(batch *tables.DataTable) error {
	s.batches = append(s.batches, batch)
	return nil
}

// Finalize concatenates the collected batches, columns aligned by name.
func (s *BufferedSink) Finalize() (*tables.DataTable, error) {
	return tables.Concat(s.batches)
}

// StreamingSink forwards every batch to an external destination as it is
// produced. Finalize returns the base table unchanged: the aggregated data
// lives only in the destination.
type StreamingSink struct {
	dest        Destination
	base        *tables.DataTable
	wroteHeader bool
}

func NewStreamingSink(dest Destination, base *tables.DataTable) *StreamingSink {
	return &StreamingSink{dest: dest, base: base}
}

func (s *StreamingSink) Append(batch *tables.DataTable) error {
	if !s.wroteHeader {
		s.wroteHeader = true
		return s.dest.WriteHeaderAndRows(batch)
	}
	return s.dest.AppendRows(batch)
}

func (s *StreamingSink) Finalize() (*tables.DataTable, error) {
	return s.base, nil
}
