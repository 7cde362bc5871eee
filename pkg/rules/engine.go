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

// Package rules evaluates best-practice recommendations over the datasets
// retained while building a report. Rules never query the controller: they
// are pure functions of already-collected data, so recommendations and
// rendered tables always describe the same snapshot.
package rules

import (
	"github.com/ucstools/ucs-config-report/pkg/ucsm"
)

// Datasets gives rules read access to retained record sets by name.
// *inventory.Document satisfies it.
type Datasets interface {
	Dataset(name string) []ucsm.Record
}

// Rule is one recommendation check. Inputs names every retained dataset
// Evaluate reads; catalog validation guarantees each exists.
type Rule struct {
	Name        string
	Description string
	Inputs      []string
	Evaluate    func(ds Datasets) Verdict
}

// Result pairs a rule with its verdict for one target.
type Result struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Verdict     Verdict `json:"verdict"`
}

// Engine evaluates a fixed rule list. Like the catalog, the rule list is
// process-wide static configuration.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine over the given rules.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Inputs returns every retained-dataset name referenced by any rule, for
// startup catalog validation.
func (e *Engine) Inputs() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range e.rules {
		for _, in := range r.Inputs {
			if !seen[in] {
				seen[in] = true
				out = append(out, in)
			}
		}
	}
	return out
}

// Evaluate runs every rule against ds, in declared order. Empty datasets
// are legitimate inputs, never errors.
func (e *Engine) Evaluate(ds Datasets) []Result {
	results := make([]Result, 0, len(e.rules))
	for _, r := range e.rules {
		results = append(results, Result{
			Name:        r.Name,
			Description: r.Description,
			Verdict:     r.Evaluate(ds),
		})
	}
	return results
}
