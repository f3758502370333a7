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

// Package demo provides the embedded sample sales dataset used by the demo
// binary and end-to-end tests.
package demo

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/athroisma/core/csvimport"
	"github.com/google/athroisma/core/schema"
	"github.com/google/athroisma/core/tables"
)

//go:embed data/sales.csv
var salesCSV string

//go:embed data/sales.textproto
var salesConfig string

// CreateSalesTable imports the embedded sales dataset: sixteen rows of
// region x category x channel sales.
func CreateSalesTable() *tables.DataTable {
	options, err := csvimport.OptionsFromTextproto(salesConfig)
	if err != nil {
		panic(fmt.Sprintf("failed to parse sales config: %v", err))
	}

	table, err := csvimport.ImportFromReader(strings.NewReader(salesCSV), options)
	if err != nil {
		panic(fmt.Sprintf("failed to import sales CSV: %v", err))
	}
	return table
}

// SalesSchema enumerates the sales dataset's columns by symbolic attribute.
func SalesSchema() *schema.Enumerator {
	enum, err := schema.NewEnumerator([]schema.ColumnSpec{
		{Attr: "REGION", Name: "region", DType: schema.DTypeString, Desc: "sales region"},
		{Attr: "CATEGORY", Name: "category", DType: schema.DTypeString, Desc: "product category"},
		{Attr: "CHANNEL", Name: "channel", DType: schema.DTypeString, Desc: "sales channel"},
		{Attr: "SALES", Name: "sales", DType: schema.DTypeFloat64, Desc: "sale amount"},
		{Attr: "QUANTITY", Name: "quantity", DType: schema.DTypeInt64, Desc: "units sold"},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to build sales schema: %v", err))
	}
	return enum
}
