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

// Athroisma demo: runs a rollup report over the embedded sales dataset and
// prints it as a markdown table. Optionally writes the report as CSV or
// HTML.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/athroisma/core/export"
	"github.com/google/athroisma/core/rendering"
	"github.com/google/athroisma/core/rollup"
	"github.com/google/athroisma/demo"
)

var (
	csvOut     = flag.String("csv", "", "write the report as CSV to this file")
	htmlOut    = flag.String("html", "", "write the report as HTML to this file")
	totalsOnly = flag.String("totals_only", "", "comma-separated columns whose per-value breakdown is suppressed")
)

func main() {
	flag.Parse()

	heading := color.New(color.FgGreen, color.Bold)
	heading.Println("Athroisma sales rollup")

	table := demo.CreateSalesTable()
	fmt.Printf("Imported %d sales rows\n\n", table.Length())

	agg := rollup.New("sales")
	if err := agg.BindTable(table); err != nil {
		log.Fatalf("Failed to bind table: %v", err)
	}

	for _, step := range []error{
		agg.AddGrandTotal("region", "ALL"),
		agg.AddSubTotal("region", "COAST", []string{"E", "W"}, true),
		agg.AddGrandTotal("category", "ANY"),
		agg.AddMeasure("sales", "total_sales", rollup.Sum()),
		agg.AddMeasure("sales", "avg_sale", rollup.Mean()),
		agg.AddMeasure("quantity", "units", rollup.Sum()),
	} {
		if step != nil {
			log.Fatalf("Failed to configure aggregator: %v", step)
		}
	}

	var required []string
	if *totalsOnly != "" {
		required = strings.Split(*totalsOnly, ",")
	}

	report, err := agg.Aggregate(required)
	if err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}

	md, err := export.NewMarkdownFormatter().Format(report)
	if err != nil {
		log.Fatalf("Failed to format report: %v", err)
	}
	fmt.Println(md)
	fmt.Printf("\n%d report rows\n", report.Length())

	if *csvOut != "" {
		f, err := os.Create(*csvOut)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *csvOut, err)
		}
		if err := export.WriteTable(f, report); err != nil {
			log.Fatalf("Failed to write CSV: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close %s: %v", *csvOut, err)
		}
		fmt.Printf("Wrote CSV report to %s\n", *csvOut)
	}

	if *htmlOut != "" {
		renderer, err := rendering.NewReportRenderer()
		if err != nil {
			log.Fatalf("Failed to create renderer: %v", err)
		}
		vm, err := rendering.NewReportViewModel("Sales Rollup", report, []string{"ALL", "ANY", "COAST"})
		if err != nil {
			log.Fatalf("Failed to build view model: %v", err)
		}
		f, err := os.Create(*htmlOut)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *htmlOut, err)
		}
		if err := renderer.Render(f, vm); err != nil {
			log.Fatalf("Failed to render HTML: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close %s: %v", *htmlOut, err)
		}
		fmt.Printf("Wrote HTML report to %s\n", *htmlOut)
	}
}
