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

package columns

import (
	"math"
	"testing"
)

func TestStringColumn(t *testing.T) {
	col := NewStringColumn(NewColumnDef("region", "Region"))
	col.Append("North")
	col.Append("South")

	if col.Length() != 2 {
		t.Errorf("expected length 2, got %d", col.Length())
	}

	v, err := col.GetString(1)
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if v != "South" {
		t.Errorf("expected South, got %q", v)
	}

	if _, err := col.GetString(2); err == nil {
		t.Error("expected out of bounds error, got nil")
	}
}

func TestFloat64ColumnParsing(t *testing.T) {
	col := NewFloat64Column(NewColumnDef("sales", "Sales"))

	cases := []struct {
		input string
		want  float64
	}{
		{"12.5", 12.5},
		{"-3", -3},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tc := range cases {
		if err := col.AppendString(tc.input); err != nil {
			t.Fatalf("AppendString(%q) failed: %v", tc.input, err)
		}
	}

	for i, tc := range cases {
		got, err := col.GetValue(uint32(i))
		if err != nil {
			t.Fatalf("GetValue(%d) failed: %v", i, err)
		}
		if got != tc.want {
			t.Errorf("value %d: expected %v, got %v", i, tc.want, got)
		}
	}

	if err := col.AppendString("NaN"); err != nil {
		t.Fatalf("AppendString(NaN) failed: %v", err)
	}
	got, _ := col.GetValue(uint32(len(cases)))
	if !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}

	if err := col.AppendString("not-a-number"); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestInt64ColumnGetFloat(t *testing.T) {
	col := NewInt64Column(NewColumnDef("quantity", "Quantity"))
	col.Append(7)

	f, err := col.GetFloat(0)
	if err != nil {
		t.Fatalf("GetFloat failed: %v", err)
	}
	if f != 7.0 {
		t.Errorf("expected 7.0, got %v", f)
	}

	s, err := col.GetString(0)
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if s != "7" {
		t.Errorf("expected \"7\", got %q", s)
	}
}

func TestBoolColumnParsing(t *testing.T) {
	col := NewBoolColumn(NewColumnDef("active", "Active"))

	for _, s := range []string{"true", "No", "1", "f"} {
		if err := col.AppendString(s); err != nil {
			t.Fatalf("AppendString(%q) failed: %v", s, err)
		}
	}

	want := []bool{true, false, true, false}
	for i, w := range want {
		got, err := col.GetValue(uint32(i))
		if err != nil {
			t.Fatalf("GetValue(%d) failed: %v", i, err)
		}
		if got != w {
			t.Errorf("value %d: expected %v, got %v", i, w, got)
		}
	}

	if err := col.AppendString("maybe"); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestAppendFrom(t *testing.T) {
	src := NewFloat64Column(NewColumnDef("sales", "Sales"))
	src.Append(10)
	src.Append(20)

	dst := src.CloneEmpty().(*Float64Column)
	if err := dst.AppendFrom(src, 1); err != nil {
		t.Fatalf("AppendFrom failed: %v", err)
	}
	v, _ := dst.GetValue(0)
	if v != 20 {
		t.Errorf("expected 20, got %v", v)
	}

	// Type mismatch must be rejected
	other := NewStringColumn(NewColumnDef("region", "Region"))
	other.Append("North")
	if err := dst.AppendFrom(other, 0); err == nil {
		t.Error("expected type mismatch error, got nil")
	}
}

func TestCloneEmptyKeepsDef(t *testing.T) {
	col := NewStringColumn(NewColumnDef("region", "Region"))
	col.Append("North")

	clone := col.CloneEmpty()
	if clone.Length() != 0 {
		t.Errorf("expected empty clone, got length %d", clone.Length())
	}
	if clone.ColumnDef().Name() != "region" {
		t.Errorf("expected def name region, got %q", clone.ColumnDef().Name())
	}
}
