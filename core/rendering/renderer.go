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

package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"
)

//go:embed templates/*
var templateFS embed.FS

// ReportRenderer renders aggregated report view models to HTML.
type ReportRenderer struct {
	reportTemplate *template.Template
}

// NewReportRenderer creates a new report renderer.
func NewReportRenderer() (*ReportRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	reportTemplate, err := template.New("report.html").ParseFS(trustedFS, "templates/report.html")
	if err != nil {
		return nil, err
	}

	return &ReportRenderer{reportTemplate: reportTemplate}, nil
}

// Render renders a ReportViewModel to the provided writer.
func (r *ReportRenderer) Render(w io.Writer, vm ReportViewModel) error {
	return r.reportTemplate.Execute(w, vm)
}
