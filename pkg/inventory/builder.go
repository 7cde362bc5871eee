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

// Package inventory walks the collection catalog against one management
// session and produces the report document for one target.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/ucstools/ucs-config-report/pkg/catalog"
	"github.com/ucstools/ucs-config-report/pkg/ucsm"
)

// Querier is the slice of the management client the builder needs.
// *ucsm.Session satisfies it; tests substitute fakes.
type Querier interface {
	Query(ctx context.Context, kind string) ([]ucsm.Record, error)
	QueryChildren(ctx context.Context, dn, kind string) ([]ucsm.Record, error)
}

// Builder produces report documents from a fixed catalog. One Builder may
// serve many sequential targets; it holds no per-target state.
type Builder struct {
	sections []catalog.Section
}

// NewBuilder creates a builder over the given catalog. The catalog must
// already have passed catalog.Validate.
func NewBuilder(sections []catalog.Section) *Builder {
	return &Builder{sections: sections}
}

// Build collects every catalog section from q and returns the finished
// document. Each entity kind is fetched at most once: sections sharing a
// kind, and rules reading retained datasets, observe one snapshot. Any
// query failure aborts the whole document; no partial document is returned.
func (b *Builder) Build(ctx context.Context, q Querier, meta Meta) (*Document, error) {
	doc := &Document{
		Meta:     meta,
		Sections: make([]Table, 0, len(b.sections)),
		Retained: make(map[string][]ucsm.Record),
	}
	cache := make(map[string][]ucsm.Record)

	for _, sec := range b.sections {
		records, err := fetch(ctx, q, cache, sec)
		if err != nil {
			return nil, err
		}

		records = applyFilters(records, sec.Filters)
		sortRecords(records, sec.Sort)

		if sec.RetainAs != "" {
			doc.Retained[sec.RetainAs] = records
		}

		doc.Sections = append(doc.Sections, Table{
			Title:    sec.Title,
			TabGroup: sec.TabGroup,
			Subtab:   sec.Subtab,
			Headers:  sec.Labels(),
			Rows:     project(records, sec.FieldNames()),
		})
	}

	// The catalog's topSystem query names the domain; surface it in the
	// document header without an extra fetch.
	if sys, ok := cache["topSystem"]; ok && len(sys) > 0 {
		doc.Meta.SystemName = sys[0].Field("name")
	}

	return doc, nil
}

// fetch resolves a section's record set, reusing any earlier fetch of the
// same key. Chained sections issue one child query per primary record and
// flatten the results in primary order.
func fetch(ctx context.Context, q Querier, cache map[string][]ucsm.Record, sec catalog.Section) ([]ucsm.Record, error) {
	key := sec.FetchKey()
	if cached, ok := cache[key]; ok {
		return cached, nil
	}

	if sec.ChildKind == "" {
		records, err := q.Query(ctx, sec.Kind)
		if err != nil {
			return nil, err
		}
		cache[key] = records
		return records, nil
	}

	primaries, ok := cache[sec.Kind]
	if !ok {
		var err error
		primaries, err = q.Query(ctx, sec.Kind)
		if err != nil {
			return nil, err
		}
		cache[sec.Kind] = primaries
	}

	var flattened []ucsm.Record
	for _, parent := range primaries {
		dn := parent.DN()
		if dn == "" {
			return nil, fmt.Errorf("record of kind %s has no dn for child query %s", sec.Kind, sec.ChildKind)
		}
		children, err := q.QueryChildren(ctx, dn, sec.ChildKind)
		if err != nil {
			return nil, err
		}
		flattened = append(flattened, children...)
	}
	cache[key] = flattened
	return flattened, nil
}

// applyFilters drops records failing any filter. A record missing a
// filtered field never matches. The input slice is not modified.
func applyFilters(records []ucsm.Record, filters []catalog.Filter) []ucsm.Record {
	if len(filters) == 0 {
		out := make([]ucsm.Record, len(records))
		copy(out, records)
		return out
	}
	out := make([]ucsm.Record, 0, len(records))
next:
	for _, r := range records {
		for _, f := range filters {
			if !f.Match(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// sortRecords stable-sorts in place by the given specs; ties keep fetch
// order. Values compare numerically when both sides parse as numbers,
// otherwise as exact strings; ranked fields compare by rank position with
// unlisted values last.
func sortRecords(records []ucsm.Record, specs []catalog.SortSpec) {
	if len(specs) == 0 {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		for _, spec := range specs {
			c := compareField(records[i], records[j], spec)
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
}

func compareField(a, b ucsm.Record, spec catalog.SortSpec) int {
	av, bv := a.Field(spec.Field), b.Field(spec.Field)

	var c int
	if len(spec.Rank) > 0 {
		c = rankOf(av, spec.Rank) - rankOf(bv, spec.Rank)
	} else {
		c = compareValues(av, bv)
	}
	if spec.Desc {
		c = -c
	}
	return c
}

func rankOf(v string, rank []string) int {
	for i, r := range rank {
		if v == r {
			return i
		}
	}
	return len(rank)
}

func compareValues(a, b string) int {
	if af, aerr := strconv.ParseFloat(a, 64); aerr == nil {
		if bf, berr := strconv.ParseFloat(b, 64); berr == nil {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// project builds display rows: one cell per requested field, in order,
// missing fields as empty cells.
func project(records []ucsm.Record, fields []string) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = r.Field(f)
		}
		rows[i] = row
	}
	return rows
}
