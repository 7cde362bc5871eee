// Copyright 2025 The ucs-config-report Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render turns a report document plus recommendation results into
// one self-contained offline file: HTML (default), plain text, or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ucstools/ucs-config-report/pkg/inventory"
	"github.com/ucstools/ucs-config-report/pkg/rules"
)

// Format selects the output document format.
type Format string

const (
	// FormatHTML is the browsable single-file report.
	FormatHTML Format = "html"
	// FormatText is a plain console-style rendering.
	FormatText Format = "text"
	// FormatJSON is the machine-readable rendering.
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "html":
		return FormatHTML, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported report format: %q", s)
	}
}

// Renderer writes reports in one format.
type Renderer struct {
	format Format
}

// NewRenderer creates a renderer for the given format.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// Render writes the document and recommendation results to w. Group and
// subtab nesting, section order, column order, and rule order all follow
// the input.
func (r *Renderer) Render(w io.Writer, doc *inventory.Document, results []rules.Result) error {
	switch r.format {
	case FormatHTML:
		return renderHTML(w, doc, results)
	case FormatText:
		return renderText(w, doc, results)
	case FormatJSON:
		return renderJSON(w, doc, results)
	default:
		return fmt.Errorf("unsupported report format: %q", r.format)
	}
}

// Extension returns the conventional file extension for the format.
func (r *Renderer) Extension() string {
	switch r.format {
	case FormatText:
		return ".txt"
	case FormatJSON:
		return ".json"
	default:
		return ".html"
	}
}

type jsonReport struct {
	Meta            inventory.Meta    `json:"meta"`
	Sections        []inventory.Table `json:"sections"`
	Recommendations []rules.Result    `json:"recommendations"`
}

func renderJSON(w io.Writer, doc *inventory.Document, results []rules.Result) error {
	data, err := json.MarshalIndent(jsonReport{
		Meta:            doc.Meta,
		Sections:        doc.Sections,
		Recommendations: results,
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func renderText(w io.Writer, doc *inventory.Document, results []rules.Result) error {
	var sb strings.Builder

	sb.WriteString("=== UCS CONFIGURATION REPORT ===\n")
	sb.WriteString(fmt.Sprintf("System: %s (%s)\n", doc.Meta.SystemName, doc.Meta.Endpoint))
	sb.WriteString(fmt.Sprintf("Version: %s\n", doc.Meta.Version))
	sb.WriteString(fmt.Sprintf("Collected: %s\n", doc.Meta.CollectedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", doc.Meta.RunID))

	group := ""
	for _, sec := range doc.Sections {
		if sec.TabGroup != group {
			group = sec.TabGroup
			sb.WriteString(fmt.Sprintf("== %s ==\n\n", group))
		}
		sb.WriteString(fmt.Sprintf("%s / %s\n", sec.Subtab, sec.Title))
		sb.WriteString("  " + strings.Join(sec.Headers, " | ") + "\n")
		if len(sec.Rows) == 0 {
			sb.WriteString("  (none)\n")
		}
		for _, row := range sec.Rows {
			sb.WriteString("  " + strings.Join(row, " | ") + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("== Recommendations ==\n\n")
	for _, res := range results {
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", strings.ToUpper(res.Verdict.Status.String()), res.Description))
		if res.Verdict.Detail != "" {
			sb.WriteString(fmt.Sprintf("        Detail: %s\n", res.Verdict.Detail))
		}
		if len(res.Verdict.Offenders) > 0 {
			sb.WriteString(fmt.Sprintf("        Affected: %s\n", strings.Join(res.Verdict.Offenders, ", ")))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
