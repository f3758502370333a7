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

package csvimport

import (
	"strings"
	"testing"

	"github.com/google/athroisma/core/columns"
	"github.com/google/athroisma/core/schema"
)

func TestOptionsFromTextproto(t *testing.T) {
	textproto := `
name: "sales"
column {
  header: "rgn"
  name: "region"
  display_name: "Region"
}
column {
  header: "code"
  dtype: "string"
}
`
	options, err := OptionsFromTextproto(textproto)
	if err != nil {
		t.Fatalf("failed to parse textproto: %v", err)
	}

	rgn, ok := options.ColumnSources["rgn"]
	if !ok {
		t.Fatal("missing column source for rgn")
	}
	if rgn.Name != "region" || rgn.DisplayName != "Region" {
		t.Errorf("unexpected source: %+v", rgn)
	}
	if rgn.Pinned {
		t.Error("rgn should stay on auto-detection")
	}

	code := options.ColumnSources["code"]
	if !code.Pinned || code.DType != schema.DTypeString {
		t.Errorf("code dtype not pinned: %+v", code)
	}
}

func TestOptionsFromTextprotoDrivesImport(t *testing.T) {
	options, err := OptionsFromTextproto(`
column {
  header: "code"
  dtype: "string"
}
`)
	if err != nil {
		t.Fatalf("failed to parse textproto: %v", err)
	}

	table, err := ImportFromReader(strings.NewReader("code\n007\n"), options)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	v, err := table.GetColumn("code").(*columns.StringColumn).GetValue(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != "007" {
		t.Errorf("expected 007, got %q", v)
	}
}

func TestOptionsFromTextprotoErrors(t *testing.T) {
	if _, err := OptionsFromTextproto("column { name: }"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := OptionsFromTextproto(`column { name: "x" }`); err == nil {
		t.Error("expected error for missing header")
	}
	if _, err := OptionsFromTextproto(`column { header: "x" dtype: "decimal" }`); err == nil {
		t.Error("expected error for unknown dtype")
	}
}
