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

package datasources

import (
	"fmt"
	"sort"

	"github.com/google/athroisma/core/tables"
)

// Manager owns source definitions and loaders, and caches loaded tables by
// source name. Not safe for concurrent use.
type Manager struct {
	sources map[string]*Source
	loaders map[string]Loader
	cache   map[string]*tables.DataTable
}

// NewManager creates a Manager with the CSV loader pre-registered.
func NewManager() *Manager {
	m := &Manager{
		sources: make(map[string]*Source),
		loaders: make(map[string]Loader),
		cache:   make(map[string]*tables.DataTable),
	}
	m.RegisterLoader(&CSVLoader{})
	return m
}

// RegisterLoader adds a loader, replacing any previous loader for its
// source type.
func (m *Manager) RegisterLoader(loader Loader) {
	m.loaders[loader.SourceType()] = loader
}

// AddSource registers a source definition, replacing any previous source of
// the same name and dropping its cached table.
func (m *Manager) AddSource(source *Source) {
	m.sources[source.Name] = source
	delete(m.cache, source.Name)
}

// SourceNames lists the registered sources, sorted.
func (m *Manager) SourceNames() []string {
	names := make([]string, 0, len(m.sources))
	for name := range m.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadData returns the table for a named source, loading it on first use.
func (m *Manager) LoadData(name string) (*tables.DataTable, error) {
	if table, ok := m.cache[name]; ok {
		return table, nil
	}

	source, ok := m.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", name)
	}
	loader, ok := m.loaders[source.SourceType]
	if !ok {
		return nil, fmt.Errorf("no loader registered for source type %q", source.SourceType)
	}

	table, err := loader.Load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load source %q: %w", name, err)
	}
	m.cache[name] = table
	return table, nil
}

// IsLoaded reports whether a source's table is cached.
func (m *Manager) IsLoaded(name string) bool {
	_, ok := m.cache[name]
	return ok
}

// InvalidateCache drops one source's cached table.
func (m *Manager) InvalidateCache(name string) {
	delete(m.cache, name)
}

// InvalidateAllCaches drops every cached table.
func (m *Manager) InvalidateAllCaches() {
	m.cache = make(map[string]*tables.DataTable)
}
