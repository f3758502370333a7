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

// Package datasources resolves named datasets to DataTables through
// pluggable loaders. A Manager owns the source definitions, dispatches each
// load to the loader registered for the source's type, and caches the
// resulting tables so repeated rollup runs over one dataset import it once.
package datasources

import (
	"fmt"

	"github.com/google/athroisma/core/csvimport"
	"github.com/google/athroisma/core/protoloader"
	"github.com/google/athroisma/core/tables"
	"google.golang.org/protobuf/reflect/protoregistry"
)

// Source defines one named dataset: where it lives and how to load it.
type Source struct {
	// Name identifies the dataset to callers
	Name string
	// SourceType selects the loader (e.g. "csv", "proto")
	SourceType string
	// Path is the dataset file
	Path string
	// Config carries loader-specific settings
	Config map[string]string
}

// Loader turns a source definition into a DataTable.
type Loader interface {
	// SourceType returns the type identifier this loader handles.
	SourceType() string
	// Load reads the source and builds its table.
	Load(source *Source) (*tables.DataTable, error)
}

// CSVLoader loads "csv" sources through csvimport. The optional "options"
// config key holds a textproto import configuration.
type CSVLoader struct{}

func (l *CSVLoader) SourceType() string {
	return "csv"
}

func (l *CSVLoader) Load(source *Source) (*tables.DataTable, error) {
	options := csvimport.DefaultOptions()
	if text, ok := source.Config["options"]; ok {
		var err error
		options, err = csvimport.OptionsFromTextproto(text)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", source.Name, err)
		}
	}
	return csvimport.ImportFromFile(source.Path, options)
}

// ProtoLoader loads "proto" sources through protoloader. The "message"
// config key names the root message; the registry supplies its descriptor.
type ProtoLoader struct {
	registry *protoregistry.Files
}

// NewProtoLoader creates a proto loader resolving messages against the
// given registry.
func NewProtoLoader(registry *protoregistry.Files) *ProtoLoader {
	return &ProtoLoader{registry: registry}
}

func (l *ProtoLoader) SourceType() string {
	return "proto"
}

func (l *ProtoLoader) Load(source *Source) (*tables.DataTable, error) {
	message, ok := source.Config["message"]
	if !ok {
		return nil, fmt.Errorf("source %q: proto sources need a \"message\" config key", source.Name)
	}
	return protoloader.NewLoader(l.registry).LoadFile(source.Path, message)
}
