package catalog

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a malformed catalog or an unsatisfiable rule
// input. It is a startup invariant violation: the process must refuse to
// run any target rather than produce reports from a broken catalog.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid collection catalog: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the catalog's internal consistency and that every name in
// ruleInputs is retained by exactly one section. Returns nil or a
// *ConfigurationError listing every problem found.
func Validate(sections []Section, ruleInputs []string) error {
	var problems []string

	titles := map[string]bool{}
	retained := map[string]string{}

	for i, s := range sections {
		where := fmt.Sprintf("section %d (%q)", i, s.Title)
		if s.Title == "" {
			problems = append(problems, fmt.Sprintf("section %d has no title", i))
		} else if titles[s.Title] {
			problems = append(problems, where+" duplicates a title")
		}
		titles[s.Title] = true

		if s.TabGroup == "" || s.Subtab == "" {
			problems = append(problems, where+" has no tab placement")
		}
		if s.Kind == "" {
			problems = append(problems, where+" names no entity kind")
		}
		if len(s.Columns) == 0 {
			problems = append(problems, where+" projects no fields")
		}
		for _, c := range s.Columns {
			if c.Field == "" {
				problems = append(problems, where+" has a column without a field")
			}
		}
		for _, f := range s.Filters {
			if f.Field == "" {
				problems = append(problems, where+" has a filter without a field")
			}
			if f.Op == OpIn && len(f.Values) == 0 {
				problems = append(problems, where+" has a membership filter without values")
			}
		}
		for _, ss := range s.Sort {
			if ss.Field == "" {
				problems = append(problems, where+" has a sort without a field")
			}
		}
		if s.RetainAs != "" {
			if prev, dup := retained[s.RetainAs]; dup {
				problems = append(problems, fmt.Sprintf("%s retains %q already retained by %q", where, s.RetainAs, prev))
			}
			retained[s.RetainAs] = s.Title
		}
	}

	for _, input := range ruleInputs {
		if _, ok := retained[input]; !ok {
			problems = append(problems, fmt.Sprintf("rule input %q is retained by no section", input))
		}
	}

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}
