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

// Package catalog declares the collection catalog: the ordered list of
// report sections, each naming the managed-object class to fetch, the
// columns to display, and optional filter/sort/retention behavior.
// Adding a section or a retained dataset never touches builder or rule
// code.
package catalog

import (
	"github.com/ucstools/ucs-config-report/pkg/ucsm"
)

// Op is a filter comparison operator.
type Op int

const (
	// OpEq matches records whose field equals the value.
	OpEq Op = iota
	// OpNe matches records whose field is present and differs from the
	// value.
	OpNe
	// OpIn matches records whose field equals any of the values.
	OpIn
)

// Filter is one predicate over a record field. A section may carry several
// filters; they combine with AND. A record missing the field never matches,
// regardless of operator.
type Filter struct {
	Field  string
	Op     Op
	Value  string
	Values []string
}

// Match reports whether the record satisfies the filter.
func (f Filter) Match(r ucsm.Record) bool {
	v, ok := r[f.Field]
	if !ok {
		return false
	}
	switch f.Op {
	case OpEq:
		return v == f.Value
	case OpNe:
		return v != f.Value
	case OpIn:
		for _, want := range f.Values {
			if v == want {
				return true
			}
		}
		return false
	}
	return false
}

// SortSpec orders records by one field. When Rank is set, values sort by
// their position in Rank (unlisted values last) instead of by value; used
// for enumerated fields like fault severity, where the order is
// configuration-supplied rather than lexical.
type SortSpec struct {
	Field string
	Desc  bool
	Rank  []string
}

// Column maps a record field to a table column header.
type Column struct {
	Field string
	Label string
}

// Section is one entry of the collection catalog. Sections are static and
// immutable; Title doubles as the section's stable identifier.
type Section struct {
	Title    string
	TabGroup string
	Subtab   string

	// Kind is the managed-object class to resolve. When ChildKind is
	// set, a secondary child-resolve query is issued per primary record
	// and the flattened child records become the section's record set.
	Kind      string
	ChildKind string

	Columns []Column
	Filters []Filter
	Sort    []SortSpec

	// RetainAs names this section's filtered (pre-projection) record set
	// in the report document for rule evaluation.
	RetainAs string
}

// FetchKey identifies the query this section depends on. Two sections with
// the same key observe the same snapshot: the builder fetches each key at
// most once per target.
func (s Section) FetchKey() string {
	if s.ChildKind == "" {
		return s.Kind
	}
	return s.Kind + "/" + s.ChildKind
}

// FieldNames returns the projected field names in display order.
func (s Section) FieldNames() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Field
	}
	return out
}

// Labels returns the column headers in display order.
func (s Section) Labels() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Label
	}
	return out
}
