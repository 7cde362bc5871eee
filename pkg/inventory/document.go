package inventory

import (
	"time"

	"github.com/ucstools/ucs-config-report/pkg/ucsm"
)

// Meta identifies one report run.
type Meta struct {
	RunID       string    `json:"run_id"`
	Endpoint    string    `json:"endpoint"`
	SystemName  string    `json:"system_name"`
	Version     string    `json:"version"`
	ToolVersion string    `json:"tool_version"`
	CollectedAt time.Time `json:"collected_at"`
}

// Table is one rendered report section: a fixed header plus projected rows
// in final display order.
type Table struct {
	Title    string     `json:"title"`
	TabGroup string     `json:"tab_group"`
	Subtab   string     `json:"subtab"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
}

// Document is the complete collected state for one target: every section
// table in catalog order, plus the retained (filtered, unprojected) record
// sets the recommendation engine reads. A Document is built once per target
// and never mutated afterwards.
type Document struct {
	Meta     Meta                     `json:"meta"`
	Sections []Table                  `json:"sections"`
	Retained map[string][]ucsm.Record `json:"-"`
}

// Dataset returns the retained record set stored under name. A missing or
// empty dataset returns nil, which every rule treats as a legitimate input.
func (d *Document) Dataset(name string) []ucsm.Record {
	return d.Retained[name]
}
