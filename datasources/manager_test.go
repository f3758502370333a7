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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/athroisma/core/tables"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestManagerLoadsCSVSource(t *testing.T) {
	m := NewManager()
	m.AddSource(&Source{
		Name:       "sales",
		SourceType: "csv",
		Path:       writeTempCSV(t, "region,sales\nN,100\nS,200\n"),
	})

	table, err := m.LoadData("sales")
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if table.Length() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Length())
	}
	if !m.IsLoaded("sales") {
		t.Error("table not cached after load")
	}

	// Cached: second load returns the same table
	again, err := m.LoadData("sales")
	if err != nil {
		t.Fatal(err)
	}
	if again != table {
		t.Error("expected cached table instance")
	}
}

func TestManagerCSVOptionsConfig(t *testing.T) {
	m := NewManager()
	m.AddSource(&Source{
		Name:       "codes",
		SourceType: "csv",
		Path:       writeTempCSV(t, "code\n007\n"),
		Config: map[string]string{
			"options": `column { header: "code" dtype: "string" }`,
		},
	})

	table, err := m.LoadData("codes")
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	v, err := table.GetColumn("code").GetString(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != "007" {
		t.Errorf("expected 007, got %q", v)
	}
}

func TestManagerErrors(t *testing.T) {
	m := NewManager()
	if _, err := m.LoadData("missing"); err == nil {
		t.Error("expected error for unknown source")
	}

	m.AddSource(&Source{Name: "db", SourceType: "postgres", Path: "x"})
	if _, err := m.LoadData("db"); err == nil {
		t.Error("expected error for unregistered loader type")
	}
}

type staticLoader struct {
	loads int
}

func (l *staticLoader) SourceType() string { return "static" }

func (l *staticLoader) Load(*Source) (*tables.DataTable, error) {
	l.loads++
	return tables.NewDataTable(), nil
}

func TestManagerInvalidation(t *testing.T) {
	m := NewManager()
	loader := &staticLoader{}
	m.RegisterLoader(loader)
	m.AddSource(&Source{Name: "s", SourceType: "static"})

	if _, err := m.LoadData("s"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.LoadData("s"); err != nil {
		t.Fatal(err)
	}
	if loader.loads != 1 {
		t.Fatalf("expected 1 load, got %d", loader.loads)
	}

	m.InvalidateCache("s")
	if _, err := m.LoadData("s"); err != nil {
		t.Fatal(err)
	}
	if loader.loads != 2 {
		t.Fatalf("expected reload after invalidation, got %d loads", loader.loads)
	}

	names := m.SourceNames()
	if len(names) != 1 || names[0] != "s" {
		t.Errorf("unexpected source names %v", names)
	}
}
