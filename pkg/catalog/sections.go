package catalog

// Retained dataset names. Rule definitions reference these; Validate
// guarantees each is produced by exactly one section.
const (
	RetainDNSServers          = "dns_servers"
	RetainNTPServers          = "ntp_servers"
	RetainTelnetState         = "telnet_state"
	RetainCallhomeState       = "callhome_state"
	RetainLicenses            = "ucs_licenses"
	RetainChassisDiscovery    = "chassis_discovery_policy"
	RetainPowerRedundancy     = "power_redundancy_policy"
	RetainUplinkPortChannels  = "uplink_portchannels"
	RetainMaintenancePolicies = "maintenance_policies"
	RetainAssociatedProfiles  = "associated_service_profiles"
	RetainVnicTemplates       = "vnic_templates"
	RetainVhbaTemplates       = "vhba_templates"
	RetainHostFirmwarePacks   = "host_firmware_packs"
	RetainRunningFirmware     = "running_firmware"
)

// DefaultSeverityOrder ranks fault severities from most to least urgent.
// Overridable through the tool configuration.
var DefaultSeverityOrder = []string{
	"critical", "major", "minor", "warning", "info", "condition", "cleared",
}

// Options carries the configuration-supplied pieces of the catalog.
type Options struct {
	// SeverityOrder ranks fault severities for the fault table sort.
	// Empty means DefaultSeverityOrder.
	SeverityOrder []string
}

// Sections returns the full collection catalog in report order. The slice
// and its elements are treated as immutable by all callers.
func Sections(opts Options) []Section {
	sevOrder := opts.SeverityOrder
	if len(sevOrder) == 0 {
		sevOrder = DefaultSeverityOrder
	}

	return []Section{
		// ---- System ----
		{
			Title: "System Information", TabGroup: "System", Subtab: "General",
			Kind: "topSystem",
			Columns: []Column{
				{"name", "Name"}, {"address", "Virtual IP"}, {"mode", "Mode"},
				{"systemUpTime", "Uptime"}, {"descr", "Description"},
			},
		},
		{
			Title: "Management Interfaces", TabGroup: "System", Subtab: "General",
			Kind: "mgmtIf",
			Columns: []Column{
				{"dn", "DN"}, {"extIp", "IP"}, {"extGw", "Gateway"}, {"extNet", "Netmask"},
			},
			Filters: []Filter{{Field: "subject", Op: OpEq, Value: "management"}},
		},
		{
			Title: "Faults", TabGroup: "System", Subtab: "Faults",
			Kind: "faultInst",
			Columns: []Column{
				{"severity", "Severity"}, {"code", "Code"}, {"created", "Created"},
				{"cause", "Cause"}, {"dn", "Affected Object"}, {"descr", "Description"},
			},
			Sort: []SortSpec{
				{Field: "severity", Rank: sevOrder},
				{Field: "created", Desc: true},
			},
		},

		// ---- Equipment ----
		{
			Title: "Fabric Interconnects", TabGroup: "Equipment", Subtab: "Fabric Interconnects",
			Kind: "networkElement",
			Columns: []Column{
				{"id", "Fabric"}, {"model", "Model"}, {"serial", "Serial"},
				{"oobIfIp", "Mgmt IP"}, {"totalMemory", "Memory (MB)"}, {"thermal", "Thermal"},
			},
			Sort: []SortSpec{{Field: "id"}},
		},
		{
			Title: "Fabric Interconnect Modules", TabGroup: "Equipment", Subtab: "Fabric Interconnects",
			Kind: "equipmentSwitchCard",
			Columns: []Column{
				{"dn", "DN"}, {"id", "Slot"}, {"model", "Model"},
				{"numPorts", "Ports"}, {"state", "State"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "Chassis", TabGroup: "Equipment", Subtab: "Chassis",
			Kind: "equipmentChassis",
			Columns: []Column{
				{"id", "ID"}, {"model", "Model"}, {"serial", "Serial"},
				{"operState", "Status"}, {"power", "Power"}, {"thermal", "Thermal"},
				{"configState", "Config State"},
			},
			Sort: []SortSpec{{Field: "id"}},
		},
		{
			Title: "Chassis Power", TabGroup: "Equipment", Subtab: "Chassis",
			Kind: "equipmentChassis", ChildKind: "equipmentChassisStats",
			Columns: []Column{
				{"dn", "DN"}, {"inputPower", "Input Power (W)"},
				{"inputPowerAvg", "Input Power Avg (W)"}, {"outputPower", "Output Power (W)"},
			},
		},
		{
			Title: "Chassis Slots", TabGroup: "Equipment", Subtab: "Chassis",
			Kind: "computeBlade",
			Columns: []Column{
				{"chassisId", "Chassis"}, {"slotId", "Slot"}, {"presence", "Presence"},
				{"association", "Association"}, {"assignedToDn", "Service Profile"},
			},
			Sort: []SortSpec{{Field: "chassisId"}, {Field: "slotId"}},
		},
		{
			Title: "IO Modules", TabGroup: "Equipment", Subtab: "IO Modules",
			Kind: "equipmentIOCard",
			Columns: []Column{
				{"chassisId", "Chassis"}, {"id", "Slot"}, {"side", "Side"},
				{"model", "Model"}, {"serial", "Serial"}, {"operState", "Status"},
			},
			Sort: []SortSpec{{Field: "chassisId"}, {Field: "id"}},
		},
		{
			Title: "Fabric Extenders", TabGroup: "Equipment", Subtab: "FEX",
			Kind: "equipmentFex",
			Columns: []Column{
				{"id", "ID"}, {"model", "Model"}, {"serial", "Serial"}, {"operState", "Status"},
			},
			Sort: []SortSpec{{Field: "id"}},
		},
		{
			Title: "Fans", TabGroup: "Equipment", Subtab: "Fans",
			Kind: "equipmentFan",
			Columns: []Column{
				{"dn", "DN"}, {"model", "Model"}, {"operState", "Status"}, {"thermal", "Thermal"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "Power Supplies", TabGroup: "Equipment", Subtab: "PSUs",
			Kind: "equipmentPsu",
			Columns: []Column{
				{"dn", "DN"}, {"model", "Model"}, {"serial", "Serial"},
				{"operState", "Status"}, {"thermal", "Thermal"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},

		// ---- Servers ----
		{
			Title: "Blade Servers", TabGroup: "Servers", Subtab: "Blades",
			Kind: "computeBlade",
			Columns: []Column{
				{"chassisId", "Chassis"}, {"slotId", "Slot"}, {"model", "Model"},
				{"serial", "Serial"}, {"numOfCpus", "CPUs"}, {"numOfCores", "Cores"},
				{"totalMemory", "Memory (MB)"}, {"operState", "Status"},
				{"association", "Association"}, {"assignedToDn", "Service Profile"},
			},
			Sort: []SortSpec{{Field: "chassisId"}, {Field: "slotId"}},
		},
		{
			Title: "Rack Servers", TabGroup: "Servers", Subtab: "Rack Units",
			Kind: "computeRackUnit",
			Columns: []Column{
				{"id", "ID"}, {"model", "Model"}, {"serial", "Serial"},
				{"numOfCpus", "CPUs"}, {"totalMemory", "Memory (MB)"},
				{"operState", "Status"}, {"association", "Association"},
			},
			Sort: []SortSpec{{Field: "id"}},
		},
		{
			Title: "CPUs", TabGroup: "Servers", Subtab: "CPUs",
			Kind: "processorUnit",
			Columns: []Column{
				{"dn", "DN"}, {"socketDesignation", "Socket"}, {"model", "Model"},
				{"cores", "Cores"}, {"speed", "Speed (GHz)"}, {"operState", "Status"},
			},
			Filters: []Filter{{Field: "presence", Op: OpNe, Value: "missing"}},
			Sort:    []SortSpec{{Field: "dn"}},
		},
		{
			Title: "Memory Units", TabGroup: "Servers", Subtab: "Memory",
			Kind: "memoryUnit",
			Columns: []Column{
				{"dn", "DN"}, {"location", "Location"}, {"capacity", "Capacity (MB)"},
				{"clock", "Clock (MHz)"}, {"operState", "Status"},
			},
			Filters: []Filter{{Field: "presence", Op: OpNe, Value: "missing"}},
			Sort:    []SortSpec{{Field: "dn"}},
		},
		{
			Title: "Adapters", TabGroup: "Servers", Subtab: "Adapters",
			Kind: "adaptorUnit",
			Columns: []Column{
				{"dn", "DN"}, {"id", "ID"}, {"model", "Model"},
				{"serial", "Serial"}, {"operState", "Status"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "Service Profiles", TabGroup: "Servers", Subtab: "Service Profiles",
			Kind: "lsServer",
			Columns: []Column{
				{"name", "Name"}, {"srcTemplName", "Template"}, {"assocState", "Association"},
				{"operState", "Status"}, {"pnDn", "Server"}, {"maintPolicyName", "Maintenance Policy"},
			},
			Filters: []Filter{
				{Field: "type", Op: OpEq, Value: "instance"},
				{Field: "assocState", Op: OpEq, Value: "associated"},
			},
			Sort:     []SortSpec{{Field: "name"}},
			RetainAs: RetainAssociatedProfiles,
		},
		{
			Title: "Unassociated Service Profiles", TabGroup: "Servers", Subtab: "Service Profiles",
			Kind: "lsServer",
			Columns: []Column{
				{"name", "Name"}, {"srcTemplName", "Template"},
				{"assocState", "Association"}, {"configState", "Config State"},
			},
			Filters: []Filter{
				{Field: "type", Op: OpEq, Value: "instance"},
				{Field: "assocState", Op: OpNe, Value: "associated"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Service Profile Templates", TabGroup: "Servers", Subtab: "Service Profiles",
			Kind: "lsServer",
			Columns: []Column{
				{"name", "Name"}, {"type", "Type"}, {"descr", "Description"},
			},
			Filters: []Filter{
				{Field: "type", Op: OpIn, Values: []string{"initial-template", "updating-template"}},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Maintenance Policies", TabGroup: "Servers", Subtab: "Policies",
			Kind: "lsmaintMaintPolicy",
			Columns: []Column{
				{"name", "Name"}, {"uptimeDisr", "Reboot Policy"}, {"descr", "Description"},
			},
			Sort:     []SortSpec{{Field: "name"}},
			RetainAs: RetainMaintenancePolicies,
		},
		{
			Title: "Boot Policies", TabGroup: "Servers", Subtab: "Policies",
			Kind: "lsbootPolicy",
			Columns: []Column{
				{"name", "Name"}, {"purpose", "Purpose"},
				{"rebootOnUpdate", "Reboot on Update"}, {"enforceVnicName", "Enforce vNIC Name"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Host Firmware Packages", TabGroup: "Servers", Subtab: "Firmware",
			Kind: "firmwareComputeHostPack",
			Columns: []Column{
				{"name", "Name"}, {"bladeBundleVersion", "Blade Bundle"},
				{"rackBundleVersion", "Rack Bundle"}, {"mode", "Mode"},
			},
			Sort:     []SortSpec{{Field: "name"}},
			RetainAs: RetainHostFirmwarePacks,
		},

		// ---- LAN ----
		{
			Title: "VLANs", TabGroup: "LAN", Subtab: "VLANs",
			Kind: "fabricVlan",
			Columns: []Column{
				{"name", "Name"}, {"id", "ID"}, {"switchId", "Fabric"},
				{"sharing", "Sharing"}, {"defaultNet", "Default"},
			},
			Sort: []SortSpec{{Field: "id"}},
		},
		{
			Title: "VLAN Groups", TabGroup: "LAN", Subtab: "VLANs",
			Kind: "fabricNetGroup",
			Columns: []Column{
				{"name", "Name"}, {"nativeNet", "Native VLAN"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "vNIC Templates", TabGroup: "LAN", Subtab: "vNIC Templates",
			Kind: "vnicLanConnTempl",
			Columns: []Column{
				{"name", "Name"}, {"templType", "Type"}, {"switchId", "Fabric"},
				{"mtu", "MTU"}, {"identPoolName", "MAC Pool"}, {"nwCtrlPolicyName", "Network Control Policy"},
			},
			Sort:     []SortSpec{{Field: "name"}},
			RetainAs: RetainVnicTemplates,
		},
		{
			Title: "vNICs", TabGroup: "LAN", Subtab: "vNICs",
			Kind: "vnicEther",
			Columns: []Column{
				{"dn", "DN"}, {"name", "Name"}, {"addr", "MAC"},
				{"switchId", "Fabric"}, {"mtu", "MTU"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "Uplink Ports", TabGroup: "LAN", Subtab: "Uplinks",
			Kind: "etherPIo",
			Columns: []Column{
				{"switchId", "Fabric"}, {"slotId", "Slot"}, {"portId", "Port"},
				{"operState", "Status"}, {"operSpeed", "Speed"},
			},
			Filters: []Filter{{Field: "ifRole", Op: OpEq, Value: "network"}},
			Sort:    []SortSpec{{Field: "switchId"}, {Field: "slotId"}, {Field: "portId"}},
		},
		{
			Title: "Server Ports", TabGroup: "LAN", Subtab: "Server Ports",
			Kind: "etherPIo",
			Columns: []Column{
				{"switchId", "Fabric"}, {"slotId", "Slot"}, {"portId", "Port"},
				{"operState", "Status"}, {"peerDn", "Peer"},
			},
			Filters: []Filter{{Field: "ifRole", Op: OpEq, Value: "server"}},
			Sort:    []SortSpec{{Field: "switchId"}, {Field: "slotId"}, {Field: "portId"}},
		},
		{
			Title: "Appliance Ports", TabGroup: "LAN", Subtab: "Appliance Ports",
			Kind: "etherPIo",
			Columns: []Column{
				{"switchId", "Fabric"}, {"slotId", "Slot"}, {"portId", "Port"},
				{"operState", "Status"}, {"operSpeed", "Speed"},
			},
			Filters: []Filter{{Field: "ifRole", Op: OpEq, Value: "storage"}},
			Sort:    []SortSpec{{Field: "switchId"}, {Field: "slotId"}, {Field: "portId"}},
		},
		{
			Title: "Uplink Port-Channels", TabGroup: "LAN", Subtab: "Port-Channels",
			Kind: "fabricEthLanPc",
			Columns: []Column{
				{"switchId", "Fabric"}, {"portId", "ID"}, {"name", "Name"},
				{"adminState", "Admin State"}, {"operState", "Status"}, {"operSpeed", "Speed"},
			},
			Sort:     []SortSpec{{Field: "switchId"}, {Field: "portId"}},
			RetainAs: RetainUplinkPortChannels,
		},
		{
			Title: "Uplink Port-Channel Members", TabGroup: "LAN", Subtab: "Port-Channels",
			Kind: "fabricEthLanPc", ChildKind: "fabricEthLanPcEp",
			Columns: []Column{
				{"dn", "DN"}, {"slotId", "Slot"}, {"portId", "Port"}, {"membership", "Membership"},
			},
		},
		{
			Title: "QoS System Classes", TabGroup: "LAN", Subtab: "QoS",
			Kind: "qosclassEthClassified",
			Columns: []Column{
				{"priority", "Priority"}, {"adminState", "Admin State"}, {"cos", "CoS"},
				{"weight", "Weight"}, {"mtu", "MTU"},
			},
		},
		{
			Title: "Network Control Policies", TabGroup: "LAN", Subtab: "Policies",
			Kind: "nwctrlDefinition",
			Columns: []Column{
				{"name", "Name"}, {"cdp", "CDP"}, {"macRegisterMode", "MAC Register Mode"},
				{"uplinkFailAction", "Uplink Fail Action"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "LAN Pin Groups", TabGroup: "LAN", Subtab: "Pin Groups",
			Kind: "fabricLanPinGroup",
			Columns: []Column{
				{"name", "Name"}, {"descr", "Description"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},

		// ---- SAN ----
		{
			Title: "VSANs", TabGroup: "SAN", Subtab: "VSANs",
			Kind: "fabricVsan",
			Columns: []Column{
				{"name", "Name"}, {"id", "ID"}, {"switchId", "Fabric"},
				{"fcoeVlan", "FCoE VLAN"}, {"zoningState", "Zoning"},
			},
			Sort: []SortSpec{{Field: "id"}},
		},
		{
			Title: "vHBA Templates", TabGroup: "SAN", Subtab: "vHBA Templates",
			Kind: "vnicSanConnTempl",
			Columns: []Column{
				{"name", "Name"}, {"templType", "Type"}, {"switchId", "Fabric"},
				{"identPoolName", "WWPN Pool"}, {"maxDataFieldSize", "Max Data Field Size"},
			},
			Sort:     []SortSpec{{Field: "name"}},
			RetainAs: RetainVhbaTemplates,
		},
		{
			Title: "vHBAs", TabGroup: "SAN", Subtab: "vHBAs",
			Kind: "vnicFc",
			Columns: []Column{
				{"dn", "DN"}, {"name", "Name"}, {"addr", "WWPN"}, {"switchId", "Fabric"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "FC Uplink Ports", TabGroup: "SAN", Subtab: "Uplinks",
			Kind: "fcPIo",
			Columns: []Column{
				{"switchId", "Fabric"}, {"slotId", "Slot"}, {"portId", "Port"},
				{"operState", "Status"}, {"operSpeed", "Speed"},
			},
			Sort: []SortSpec{{Field: "switchId"}, {Field: "slotId"}, {Field: "portId"}},
		},
		{
			Title: "FC Port-Channels", TabGroup: "SAN", Subtab: "Port-Channels",
			Kind: "fabricFcSanPc",
			Columns: []Column{
				{"switchId", "Fabric"}, {"portId", "ID"}, {"name", "Name"}, {"operState", "Status"},
			},
			Sort: []SortSpec{{Field: "switchId"}, {Field: "portId"}},
		},
		{
			Title: "SAN Pin Groups", TabGroup: "SAN", Subtab: "Pin Groups",
			Kind: "fabricSanPinGroup",
			Columns: []Column{
				{"name", "Name"}, {"descr", "Description"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},

		// ---- Pools ----
		{
			Title: "UUID Pools", TabGroup: "Pools", Subtab: "UUID",
			Kind: "uuidpoolPool",
			Columns: []Column{
				{"name", "Name"}, {"prefix", "Prefix"}, {"size", "Size"}, {"assigned", "Assigned"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "UUID Pool Blocks", TabGroup: "Pools", Subtab: "UUID",
			Kind: "uuidpoolBlock",
			Columns: []Column{
				{"dn", "DN"}, {"from", "From"}, {"to", "To"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "MAC Pools", TabGroup: "Pools", Subtab: "MAC",
			Kind: "macpoolPool",
			Columns: []Column{
				{"name", "Name"}, {"size", "Size"}, {"assigned", "Assigned"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "MAC Pool Blocks", TabGroup: "Pools", Subtab: "MAC",
			Kind: "macpoolBlock",
			Columns: []Column{
				{"dn", "DN"}, {"from", "From"}, {"to", "To"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "IP Pools", TabGroup: "Pools", Subtab: "IP",
			Kind: "ippoolPool",
			Columns: []Column{
				{"name", "Name"}, {"size", "Size"}, {"assigned", "Assigned"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "IP Pool Blocks", TabGroup: "Pools", Subtab: "IP",
			Kind: "ippoolBlock",
			Columns: []Column{
				{"dn", "DN"}, {"from", "From"}, {"to", "To"}, {"subnet", "Subnet"}, {"defGw", "Gateway"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "WWNN Pools", TabGroup: "Pools", Subtab: "WWNN",
			Kind: "fcpoolInitiators",
			Columns: []Column{
				{"name", "Name"}, {"size", "Size"}, {"assigned", "Assigned"},
			},
			Filters: []Filter{{Field: "purpose", Op: OpEq, Value: "node-wwn-assignment"}},
			Sort:    []SortSpec{{Field: "name"}},
		},
		{
			Title: "WWPN Pools", TabGroup: "Pools", Subtab: "WWPN",
			Kind: "fcpoolInitiators",
			Columns: []Column{
				{"name", "Name"}, {"size", "Size"}, {"assigned", "Assigned"},
			},
			Filters: []Filter{{Field: "purpose", Op: OpEq, Value: "port-wwn-assignment"}},
			Sort:    []SortSpec{{Field: "name"}},
		},
		{
			Title: "WWN Pool Blocks", TabGroup: "Pools", Subtab: "WWN Blocks",
			Kind: "fcpoolBlock",
			Columns: []Column{
				{"dn", "DN"}, {"from", "From"}, {"to", "To"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},
		{
			Title: "IQN Pools", TabGroup: "Pools", Subtab: "IQN",
			Kind: "iqnpoolPool",
			Columns: []Column{
				{"name", "Name"}, {"prefix", "Prefix"}, {"size", "Size"}, {"assigned", "Assigned"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Server Pools", TabGroup: "Pools", Subtab: "Server",
			Kind: "computePool",
			Columns: []Column{
				{"name", "Name"}, {"size", "Size"}, {"assigned", "Assigned"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},

		// ---- Policies ----
		{
			Title: "Chassis Discovery Policy", TabGroup: "Policies", Subtab: "Equipment",
			Kind: "computeChassisDiscPolicy",
			Columns: []Column{
				{"action", "Action"}, {"linkAggregationPref", "Link Grouping"}, {"rebalance", "Rebalance"},
			},
			RetainAs: RetainChassisDiscovery,
		},
		{
			Title: "Power Redundancy Policy", TabGroup: "Policies", Subtab: "Equipment",
			Kind: "computePsuPolicy",
			Columns: []Column{
				{"redundancy", "Redundancy"}, {"descr", "Description"},
			},
			RetainAs: RetainPowerRedundancy,
		},
		{
			Title: "Power Control Policies", TabGroup: "Policies", Subtab: "Power",
			Kind: "powerPolicy",
			Columns: []Column{
				{"name", "Name"}, {"prio", "Priority"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "BIOS Policies", TabGroup: "Policies", Subtab: "BIOS",
			Kind: "biosVProfile",
			Columns: []Column{
				{"name", "Name"}, {"rebootOnUpdate", "Reboot on Update"}, {"descr", "Description"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Scrub Policies", TabGroup: "Policies", Subtab: "Scrub",
			Kind: "computeScrubPolicy",
			Columns: []Column{
				{"name", "Name"}, {"diskScrub", "Disk Scrub"}, {"biosSettingsScrub", "BIOS Settings Scrub"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Local Disk Policies", TabGroup: "Policies", Subtab: "Local Disk",
			Kind: "storageLocalDiskConfigPolicy",
			Columns: []Column{
				{"name", "Name"}, {"mode", "Mode"}, {"protectConfig", "Protect Config"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Serial over LAN Policies", TabGroup: "Policies", Subtab: "SoL",
			Kind: "solPolicy",
			Columns: []Column{
				{"name", "Name"}, {"speed", "Speed"}, {"adminState", "Admin State"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "vNIC/vHBA Placement Policies", TabGroup: "Policies", Subtab: "Placement",
			Kind: "fabricVConProfile",
			Columns: []Column{
				{"dn", "DN"}, {"name", "Name"}, {"descr", "Description"},
				{"mezzMapping", "Mezzanine Mapping"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Organizations", TabGroup: "Policies", Subtab: "Organizations",
			Kind: "orgOrg",
			Columns: []Column{
				{"dn", "DN"}, {"name", "Name"}, {"descr", "Description"},
			},
			Sort: []SortSpec{{Field: "dn"}},
		},

		// ---- Admin ----
		{
			Title: "DNS Servers", TabGroup: "Admin", Subtab: "DNS",
			Kind: "commDnsProvider",
			Columns: []Column{
				{"name", "Server"}, {"descr", "Description"},
			},
			Sort:     []SortSpec{{Field: "name"}},
			RetainAs: RetainDNSServers,
		},
		{
			Title: "NTP Servers", TabGroup: "Admin", Subtab: "NTP",
			Kind: "commNtpProvider",
			Columns: []Column{
				{"name", "Server"}, {"descr", "Description"},
			},
			Sort:     []SortSpec{{Field: "name"}},
			RetainAs: RetainNTPServers,
		},
		{
			Title: "Timezone", TabGroup: "Admin", Subtab: "NTP",
			Kind: "commDateTime",
			Columns: []Column{
				{"timezone", "Timezone"},
			},
		},
		{
			Title: "SNMP", TabGroup: "Admin", Subtab: "SNMP",
			Kind: "commSnmp",
			Columns: []Column{
				{"adminState", "Admin State"}, {"sysContact", "Contact"}, {"sysLocation", "Location"},
			},
		},
		{
			Title: "Syslog Remote Destinations", TabGroup: "Admin", Subtab: "Syslog",
			Kind: "commSyslogClient",
			Columns: []Column{
				{"hostname", "Host"}, {"adminState", "Admin State"},
				{"severity", "Severity"}, {"forwardingFacility", "Facility"},
			},
		},
		{
			Title: "Call Home", TabGroup: "Admin", Subtab: "Call Home",
			Kind: "callhomeEp",
			Columns: []Column{
				{"adminState", "Admin State"},
			},
			RetainAs: RetainCallhomeState,
		},
		{
			Title: "Telnet Service", TabGroup: "Admin", Subtab: "Services",
			Kind: "commTelnet",
			Columns: []Column{
				{"adminState", "Admin State"},
			},
			RetainAs: RetainTelnetState,
		},
		{
			Title: "SSH Service", TabGroup: "Admin", Subtab: "Services",
			Kind: "commSsh",
			Columns: []Column{
				{"adminState", "Admin State"},
			},
		},
		{
			Title: "HTTP Service", TabGroup: "Admin", Subtab: "Services",
			Kind: "commHttp",
			Columns: []Column{
				{"adminState", "Admin State"}, {"redirectState", "Redirect to HTTPS"},
			},
		},
		{
			Title: "HTTPS Service", TabGroup: "Admin", Subtab: "Services",
			Kind: "commHttps",
			Columns: []Column{
				{"adminState", "Admin State"}, {"port", "Port"},
			},
		},
		{
			Title: "CIM-XML Service", TabGroup: "Admin", Subtab: "Services",
			Kind: "commCimxml",
			Columns: []Column{
				{"adminState", "Admin State"},
			},
		},
		{
			Title: "Local Users", TabGroup: "Admin", Subtab: "Users",
			Kind: "aaaUser",
			Columns: []Column{
				{"name", "Name"}, {"firstName", "First Name"}, {"lastName", "Last Name"},
				{"email", "Email"}, {"accountStatus", "Status"}, {"expiration", "Expiration"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Roles", TabGroup: "Admin", Subtab: "Users",
			Kind: "aaaRole",
			Columns: []Column{
				{"name", "Name"}, {"priv", "Privileges"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "LDAP Providers", TabGroup: "Admin", Subtab: "Authentication",
			Kind: "aaaLdapProvider",
			Columns: []Column{
				{"name", "Name"}, {"rootdn", "Root DN"}, {"port", "Port"}, {"timeout", "Timeout"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "TACACS+ Providers", TabGroup: "Admin", Subtab: "Authentication",
			Kind: "aaaTacacsPlusProvider",
			Columns: []Column{
				{"name", "Name"}, {"port", "Port"}, {"timeout", "Timeout"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "RADIUS Providers", TabGroup: "Admin", Subtab: "Authentication",
			Kind: "aaaRadiusProvider",
			Columns: []Column{
				{"name", "Name"}, {"authPort", "Auth Port"}, {"timeout", "Timeout"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Licenses", TabGroup: "Admin", Subtab: "Licenses",
			Kind: "licenseInstance",
			Columns: []Column{
				{"scope", "Fabric"}, {"feature", "Feature"}, {"absQuant", "Total"},
				{"defQuant", "Default"}, {"usedQuant", "Used"}, {"operState", "Status"},
			},
			Sort:     []SortSpec{{Field: "scope"}, {Field: "feature"}},
			RetainAs: RetainLicenses,
		},
		{
			Title: "Running Firmware", TabGroup: "Admin", Subtab: "Firmware",
			Kind: "firmwareRunning",
			Columns: []Column{
				{"dn", "DN"}, {"type", "Type"}, {"version", "Version"}, {"packageVersion", "Package"},
			},
			Filters:  []Filter{{Field: "deployment", Op: OpEq, Value: "system"}},
			Sort:     []SortSpec{{Field: "dn"}},
			RetainAs: RetainRunningFirmware,
		},
		{
			Title: "Firmware Bundles", TabGroup: "Admin", Subtab: "Firmware",
			Kind: "firmwareDistributable",
			Columns: []Column{
				{"name", "Name"}, {"type", "Type"}, {"version", "Version"},
			},
			Sort: []SortSpec{{Field: "name"}},
		},
		{
			Title: "Backup Operations", TabGroup: "Admin", Subtab: "Backup",
			Kind: "mgmtBackup",
			Columns: []Column{
				{"hostname", "Host"}, {"type", "Type"}, {"adminState", "Admin State"},
			},
		},
		{
			Title: "Config Export Policy", TabGroup: "Admin", Subtab: "Backup",
			Kind: "mgmtCfgExportPolicy",
			Columns: []Column{
				{"hostname", "Host"}, {"adminState", "Admin State"}, {"schedule", "Schedule"},
			},
		},
		{
			Title: "User Sessions", TabGroup: "Admin", Subtab: "Sessions",
			Kind: "aaaSession",
			Columns: []Column{
				{"user", "User"}, {"host", "Host"}, {"ui", "Interface"},
			},
			Sort: []SortSpec{{Field: "user"}},
		},
	}
}
