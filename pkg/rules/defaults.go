package rules

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/blang/semver/v4"

	"github.com/ucstools/ucs-config-report/pkg/catalog"
	"github.com/ucstools/ucs-config-report/pkg/ucsm"
)

// Defaults returns the built-in recommendation rules, in report order.
func Defaults() []Rule {
	rules := []Rule{
		{
			Name:        "dns-configured",
			Description: "At least one DNS server should be configured",
			Inputs:      []string{catalog.RetainDNSServers},
			Evaluate: func(ds Datasets) Verdict {
				if len(ds.Dataset(catalog.RetainDNSServers)) == 0 {
					return Fail()
				}
				return Pass()
			},
		},
		{
			Name:        "ntp-configured",
			Description: "At least one NTP server should be configured",
			Inputs:      []string{catalog.RetainNTPServers},
			Evaluate: func(ds Datasets) Verdict {
				if len(ds.Dataset(catalog.RetainNTPServers)) == 0 {
					return Fail()
				}
				return Pass()
			},
		},
		{
			Name:        "telnet-disabled",
			Description: "The telnet management service should be disabled",
			Inputs:      []string{catalog.RetainTelnetState},
			Evaluate: func(ds Datasets) Verdict {
				for _, r := range ds.Dataset(catalog.RetainTelnetState) {
					if r.Field("adminState") == "enabled" {
						return Fail()
					}
				}
				return Pass()
			},
		},
		{
			Name:        "callhome-configured",
			Description: "Call Home should be enabled for proactive support",
			Inputs:      []string{catalog.RetainCallhomeState},
			Evaluate: func(ds Datasets) Verdict {
				state := ds.Dataset(catalog.RetainCallhomeState)
				if len(state) == 0 {
					return Fail()
				}
				for _, r := range state {
					if r.Field("adminState") == "off" {
						return Fail()
					}
				}
				return Pass()
			},
		},
	}

	for _, fabric := range []string{"A", "B"} {
		fabric := fabric
		rules = append(rules, Rule{
			Name:        "license-sufficiency-" + fabric,
			Description: fmt.Sprintf("Fabric %s should have enough port licenses for its used ports", fabric),
			Inputs:      []string{catalog.RetainLicenses},
			Evaluate: func(ds Datasets) Verdict {
				return checkLicenses(ds.Dataset(catalog.RetainLicenses), fabric)
			},
		})
	}

	rules = append(rules,
		Rule{
			Name:        "chassis-discovery-port-channel",
			Description: "Chassis/FEX discovery should aggregate links as a port-channel",
			Inputs:      []string{catalog.RetainChassisDiscovery},
			Evaluate: func(ds Datasets) Verdict {
				for _, r := range ds.Dataset(catalog.RetainChassisDiscovery) {
					if r.Field("linkAggregationPref") == "port-channel" {
						return Pass()
					}
				}
				return Fail()
			},
		},
	)

	for _, fabric := range []string{"A", "B"} {
		fabric := fabric
		rules = append(rules, Rule{
			Name:        "uplink-port-channel-" + fabric,
			Description: fmt.Sprintf("Fabric %s uplinks should be configured as a port-channel", fabric),
			Inputs:      []string{catalog.RetainUplinkPortChannels},
			Evaluate: func(ds Datasets) Verdict {
				for _, r := range ds.Dataset(catalog.RetainUplinkPortChannels) {
					if r.Field("switchId") == fabric {
						return Pass()
					}
				}
				return Fail()
			},
		})
	}

	rules = append(rules,
		Rule{
			Name:        "chassis-power-redundancy",
			Description: "Chassis power should run with a redundancy policy",
			Inputs:      []string{catalog.RetainPowerRedundancy},
			Evaluate: func(ds Datasets) Verdict {
				policy := ds.Dataset(catalog.RetainPowerRedundancy)
				if len(policy) == 0 {
					return Fail()
				}
				mode := policy[0].Field("redundancy")
				if mode == "non-redundant" {
					return Fail()
				}
				return PassDetail(mode)
			},
		},
		Rule{
			Name:        "maintenance-user-ack",
			Description: "Service profiles should not use maintenance policies with immediate reboot",
			Inputs:      []string{catalog.RetainMaintenancePolicies, catalog.RetainAssociatedProfiles},
			Evaluate: func(ds Datasets) Verdict {
				immediate := map[string]bool{}
				for _, p := range ds.Dataset(catalog.RetainMaintenancePolicies) {
					if p.Field("uptimeDisr") == "immediate" {
						immediate[p.Field("name")] = true
					}
				}
				var offenders []string
				for _, sp := range ds.Dataset(catalog.RetainAssociatedProfiles) {
					if immediate[sp.Field("maintPolicyName")] {
						offenders = append(offenders, sp.Field("name"))
					}
				}
				if len(offenders) > 0 {
					return FailOffenders(offenders)
				}
				return Pass()
			},
		},
		templateRule("vnic-templates-updating",
			"vNIC templates should be updating templates", catalog.RetainVnicTemplates),
		templateRule("vhba-templates-updating",
			"vHBA templates should be updating templates", catalog.RetainVhbaTemplates),
		Rule{
			Name:        "host-firmware-consistent",
			Description: "All servers should run the firmware package of the default host firmware pack",
			Inputs:      []string{catalog.RetainRunningFirmware, catalog.RetainHostFirmwarePacks},
			Evaluate: func(ds Datasets) Verdict {
				return checkFirmware(ds.Dataset(catalog.RetainRunningFirmware), ds.Dataset(catalog.RetainHostFirmwarePacks))
			},
		},
	)

	return rules
}

// templateRule builds the shared "every template is an updating template"
// check over one retained template set.
func templateRule(name, description, input string) Rule {
	return Rule{
		Name:        name,
		Description: description,
		Inputs:      []string{input},
		Evaluate: func(ds Datasets) Verdict {
			var offenders []string
			for _, t := range ds.Dataset(input) {
				if t.Field("templType") != "updating-template" {
					offenders = append(offenders, t.Field("name"))
				}
			}
			if len(offenders) > 0 {
				return FailOffenders(offenders)
			}
			return Pass()
		},
	}
}

// checkLicenses sums used and absolute quantities across every license
// record of one fabric scope. Quantities that fail to parse count as zero.
func checkLicenses(licenses []ucsm.Record, scope string) Verdict {
	var used, absolute int
	for _, l := range licenses {
		if l.Field("scope") != scope {
			continue
		}
		used += atoiOrZero(l.Field("usedQuant"))
		absolute += atoiOrZero(l.Field("absQuant"))
	}
	if absolute < used {
		return Fail()
	}
	return PassDetail(strconv.Itoa(absolute - used))
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// checkFirmware verifies every running system firmware package matches the
// default host firmware pack's blade bundle. Versions compare semantically
// when both normalize to a semver, exactly as strings otherwise.
func checkFirmware(running, packs []ucsm.Record) Verdict {
	expected := ""
	for _, p := range packs {
		if p.Field("name") == "default" {
			expected = p.Field("bladeBundleVersion")
			break
		}
	}
	if expected == "" && len(running) > 0 {
		expected = running[0].Field("packageVersion")
	}
	if expected == "" {
		return Pass()
	}

	var offenders []string
	for _, r := range running {
		if !sameVersion(r.Field("packageVersion"), expected) {
			offenders = append(offenders, r.DN())
		}
	}
	if len(offenders) > 0 {
		return FailOffenders(offenders)
	}
	return PassDetail(expected)
}

var versionDigits = regexp.MustCompile(`^(\d+)\.(\d+)\((\d+)[a-z]?\)`)

// sameVersion compares two UCS bundle versions. Bundle strings like
// "4.2(3d)B" normalize to 4.2.3 for a semantic comparison; strings that do
// not normalize compare exactly.
func sameVersion(a, b string) bool {
	if a == b {
		return true
	}
	av, aok := normalizeVersion(a)
	bv, bok := normalizeVersion(b)
	if !aok || !bok {
		return false
	}
	return av.EQ(bv)
}

func normalizeVersion(v string) (semver.Version, bool) {
	m := versionDigits.FindStringSubmatch(v)
	if m == nil {
		parsed, err := semver.ParseTolerant(v)
		return parsed, err == nil
	}
	parsed, err := semver.Parse(fmt.Sprintf("%s.%s.%s", m[1], m[2], m[3]))
	return parsed, err == nil
}
