package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucstools/ucs-config-report/pkg/catalog"
	"github.com/ucstools/ucs-config-report/pkg/ucsm"
)

// fakeClient serves canned record sets and counts queries per kind.
type fakeClient struct {
	records  map[string][]ucsm.Record
	children map[string][]ucsm.Record // keyed dn|kind
	calls    map[string]int
	failKind string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		records:  map[string][]ucsm.Record{},
		children: map[string][]ucsm.Record{},
		calls:    map[string]int{},
	}
}

func (f *fakeClient) Query(_ context.Context, kind string) ([]ucsm.Record, error) {
	f.calls[kind]++
	if kind == f.failKind {
		return nil, &ucsm.QueryError{Endpoint: "fake", Kind: kind, Err: fmt.Errorf("boom")}
	}
	return f.records[kind], nil
}

func (f *fakeClient) QueryChildren(_ context.Context, dn, kind string) ([]ucsm.Record, error) {
	key := dn + "|" + kind
	f.calls[key]++
	if kind == f.failKind {
		return nil, &ucsm.QueryError{Endpoint: "fake", Kind: kind, Err: fmt.Errorf("boom")}
	}
	return f.children[key], nil
}

func col(fields ...string) []catalog.Column {
	out := make([]catalog.Column, len(fields))
	for i, f := range fields {
		out[i] = catalog.Column{Field: f, Label: f}
	}
	return out
}

func TestBuildFilterExcludesNonMatching(t *testing.T) {
	client := newFakeClient()
	client.records["lsServer"] = []ucsm.Record{
		{"name": "SP1", "assocState": "associated"},
		{"name": "SP2", "assocState": "unassociated"},
		{"name": "SP3"}, // missing field: never matches
		{"name": "SP4", "assocState": "associated"},
	}

	b := NewBuilder([]catalog.Section{{
		Title: "Profiles", TabGroup: "Servers", Subtab: "SP", Kind: "lsServer",
		Columns: col("name"),
		Filters: []catalog.Filter{{Field: "assocState", Op: catalog.OpEq, Value: "associated"}},
	}})

	doc, err := b.Build(context.Background(), client, Meta{})
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, [][]string{{"SP1"}, {"SP4"}}, doc.Sections[0].Rows)
}

func TestBuildRetainsUnprojectedRecords(t *testing.T) {
	client := newFakeClient()
	client.records["licenseInstance"] = []ucsm.Record{
		{"scope": "A", "absQuant": "10", "usedQuant": "4", "feature": "ETH_PORT"},
	}

	b := NewBuilder([]catalog.Section{{
		Title: "Licenses", TabGroup: "Admin", Subtab: "Licenses", Kind: "licenseInstance",
		Columns:  col("scope"), // projection is narrower than the record
		RetainAs: "ucs_licenses",
	}})

	doc, err := b.Build(context.Background(), client, Meta{})
	require.NoError(t, err)

	retained := doc.Dataset("ucs_licenses")
	require.Len(t, retained, 1)
	// Retention keeps every field, independent of projection.
	assert.Equal(t, "4", retained[0].Field("usedQuant"))
	assert.Equal(t, "ETH_PORT", retained[0].Field("feature"))
	assert.Equal(t, [][]string{{"A"}}, doc.Sections[0].Rows)
}

func TestBuildFetchesEachKindOnce(t *testing.T) {
	client := newFakeClient()
	client.records["fabricEthLanPc"] = []ucsm.Record{
		{"dn": "fabric/lan/A/pc-1", "switchId": "A"},
	}

	// Two sections over the same kind, one of them retaining.
	b := NewBuilder([]catalog.Section{
		{
			Title: "Port-Channels", TabGroup: "LAN", Subtab: "PC", Kind: "fabricEthLanPc",
			Columns: col("switchId"), RetainAs: "uplink_portchannels",
		},
		{
			Title: "Port-Channels Again", TabGroup: "LAN", Subtab: "PC", Kind: "fabricEthLanPc",
			Columns: col("dn"),
		},
	})

	doc, err := b.Build(context.Background(), client, Meta{})
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls["fabricEthLanPc"], "same kind must be fetched once")
	assert.Len(t, doc.Sections, 2)
	assert.Len(t, doc.Dataset("uplink_portchannels"), 1)
}

func TestBuildChainedChildQueries(t *testing.T) {
	client := newFakeClient()
	client.records["fabricEthLanPc"] = []ucsm.Record{
		{"dn": "fabric/lan/A/pc-1"},
		{"dn": "fabric/lan/B/pc-2"},
	}
	client.children["fabric/lan/A/pc-1|fabricEthLanPcEp"] = []ucsm.Record{
		{"dn": "fabric/lan/A/pc-1/ep-1", "portId": "17"},
		{"dn": "fabric/lan/A/pc-1/ep-2", "portId": "18"},
	}
	client.children["fabric/lan/B/pc-2|fabricEthLanPcEp"] = []ucsm.Record{
		{"dn": "fabric/lan/B/pc-2/ep-1", "portId": "17"},
	}

	b := NewBuilder([]catalog.Section{{
		Title: "PC Members", TabGroup: "LAN", Subtab: "PC",
		Kind: "fabricEthLanPc", ChildKind: "fabricEthLanPcEp",
		Columns: col("dn"),
	}})

	doc, err := b.Build(context.Background(), client, Meta{})
	require.NoError(t, err)
	// Flattened in primary-record order.
	assert.Equal(t, [][]string{
		{"fabric/lan/A/pc-1/ep-1"},
		{"fabric/lan/A/pc-1/ep-2"},
		{"fabric/lan/B/pc-2/ep-1"},
	}, doc.Sections[0].Rows)
}

func TestBuildChainedReusesPrimaryFetch(t *testing.T) {
	client := newFakeClient()
	client.records["equipmentChassis"] = []ucsm.Record{{"dn": "sys/chassis-1"}}
	client.children["sys/chassis-1|equipmentChassisStats"] = []ucsm.Record{
		{"dn": "sys/chassis-1/stats", "inputPower": "1200"},
	}

	b := NewBuilder([]catalog.Section{
		{Title: "Chassis", TabGroup: "E", Subtab: "C", Kind: "equipmentChassis", Columns: col("dn")},
		{Title: "Chassis Power", TabGroup: "E", Subtab: "C", Kind: "equipmentChassis",
			ChildKind: "equipmentChassisStats", Columns: col("inputPower")},
	})

	_, err := b.Build(context.Background(), client, Meta{})
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls["equipmentChassis"])
}

func TestBuildStableSortWithRankAndNumbers(t *testing.T) {
	client := newFakeClient()
	client.records["faultInst"] = []ucsm.Record{
		{"severity": "minor", "created": "2026-01-02", "code": "F1"},
		{"severity": "critical", "created": "2026-01-01", "code": "F2"},
		{"severity": "critical", "created": "2026-01-03", "code": "F3"},
		{"severity": "exotic", "created": "2026-01-04", "code": "F4"}, // unranked: last
	}
	client.records["fabricVlan"] = []ucsm.Record{
		{"id": "100", "name": "v100"},
		{"id": "2", "name": "v2"},
		{"id": "30", "name": "v30"},
	}

	b := NewBuilder([]catalog.Section{
		{
			Title: "Faults", TabGroup: "S", Subtab: "F", Kind: "faultInst",
			Columns: col("code"),
			Sort: []catalog.SortSpec{
				{Field: "severity", Rank: []string{"critical", "major", "minor"}},
				{Field: "created", Desc: true},
			},
		},
		{
			Title: "VLANs", TabGroup: "L", Subtab: "V", Kind: "fabricVlan",
			Columns: col("id"),
			Sort:    []catalog.SortSpec{{Field: "id"}},
		},
	})

	doc, err := b.Build(context.Background(), client, Meta{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"F3"}, {"F2"}, {"F1"}, {"F4"}}, doc.Sections[0].Rows)
	// Numeric-aware: 2 < 30 < 100, not "100" < "2".
	assert.Equal(t, [][]string{{"2"}, {"30"}, {"100"}}, doc.Sections[1].Rows)
}

func TestBuildMissingProjectedFieldIsEmptyCell(t *testing.T) {
	client := newFakeClient()
	client.records["computeBlade"] = []ucsm.Record{
		{"chassisId": "1", "slotId": "1"},
	}

	b := NewBuilder([]catalog.Section{{
		Title: "Blades", TabGroup: "Servers", Subtab: "Blades", Kind: "computeBlade",
		Columns: col("chassisId", "serial", "slotId"),
	}})

	doc, err := b.Build(context.Background(), client, Meta{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "", "1"}}, doc.Sections[0].Rows)
}

func TestBuildQueryFailureYieldsNoDocument(t *testing.T) {
	client := newFakeClient()
	client.records["commDnsProvider"] = []ucsm.Record{{"name": "10.0.0.53"}}
	client.failKind = "commNtpProvider"

	b := NewBuilder([]catalog.Section{
		{Title: "DNS", TabGroup: "Admin", Subtab: "DNS", Kind: "commDnsProvider", Columns: col("name")},
		{Title: "NTP", TabGroup: "Admin", Subtab: "NTP", Kind: "commNtpProvider", Columns: col("name")},
		{Title: "Telnet", TabGroup: "Admin", Subtab: "Services", Kind: "commTelnet", Columns: col("adminState")},
	})

	doc, err := b.Build(context.Background(), client, Meta{})
	require.Error(t, err)
	assert.Nil(t, doc, "a failed query must not yield a partial document")

	var qErr *ucsm.QueryError
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, "commNtpProvider", qErr.Kind)
	// The walk stops at the failure.
	assert.Zero(t, client.calls["commTelnet"])
}

func TestBuildSectionOrderMatchesCatalog(t *testing.T) {
	client := newFakeClient()
	sections := make([]catalog.Section, 0, 10)
	for i := 0; i < 10; i++ {
		kind := fmt.Sprintf("kind%d", i)
		client.records[kind] = nil
		sections = append(sections, catalog.Section{
			Title: fmt.Sprintf("Section %d", i), TabGroup: "G", Subtab: "S",
			Kind: kind, Columns: col("dn"),
		})
	}

	doc, err := NewBuilder(sections).Build(context.Background(), client, Meta{})
	require.NoError(t, err)
	require.Len(t, doc.Sections, len(sections))
	for i, s := range doc.Sections {
		assert.Equal(t, fmt.Sprintf("Section %d", i), s.Title)
	}
}

func TestBuildDeterministic(t *testing.T) {
	client := newFakeClient()
	client.records["fabricVlan"] = []ucsm.Record{
		{"id": "10", "name": "b"},
		{"id": "10", "name": "a"},
		{"id": "2", "name": "c"},
	}

	b := NewBuilder([]catalog.Section{{
		Title: "VLANs", TabGroup: "LAN", Subtab: "VLANs", Kind: "fabricVlan",
		Columns: col("id", "name"),
		Sort:    []catalog.SortSpec{{Field: "id"}},
	}})

	meta := Meta{RunID: "fixed", CollectedAt: time.Unix(0, 0).UTC()}

	first, err := b.Build(context.Background(), client, meta)
	require.NoError(t, err)
	second, err := b.Build(context.Background(), client, meta)
	require.NoError(t, err)

	fj, err := json.Marshal(first)
	require.NoError(t, err)
	sj, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, fj, sj, "unchanged input must reproduce the document byte for byte")

	// Stable sort: equal ids keep fetch order.
	assert.Equal(t, [][]string{{"2", "c"}, {"10", "b"}, {"10", "a"}}, first.Sections[0].Rows)
}

func TestBuildPicksUpSystemName(t *testing.T) {
	client := newFakeClient()
	client.records["topSystem"] = []ucsm.Record{{"name": "prod-ucs", "address": "10.0.0.10"}}

	b := NewBuilder([]catalog.Section{{
		Title: "System Information", TabGroup: "System", Subtab: "General",
		Kind: "topSystem", Columns: col("name"),
	}})

	doc, err := b.Build(context.Background(), client, Meta{Endpoint: "10.0.0.10"})
	require.NoError(t, err)
	assert.Equal(t, "prod-ucs", doc.Meta.SystemName)
}
