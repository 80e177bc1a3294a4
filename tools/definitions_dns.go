package tools

// ==========================================================================
// DNS TOOLS
// ==========================================================================
var dnsTools = []ToolSpec{
	{
		Name:     "set_dns_servers",
		Method:   "SetDNSServers",
		Title:    "Set DNS Servers",
		Category: "dns",
		Preset:   Write,
		Description: `Set the router's upstream DNS servers and resolver options.

USE WHEN: User says "use 1.1.1.1 for DNS", "change the DNS servers", "enable DNS over HTTPS", "let clients use the router as resolver".

NOT FOR: Adding host records (use add_dns_static).

PARAMETERS:
- servers: List of IPv4/IPv6 addresses (required)
- allow_remote_requests: Answer queries from other hosts (default false, always sent)
- max_udp_packet_size, max_concurrent_queries, cache_size, cache_max_ttl: Optional tuning
- use_doh + doh_server: Resolve through DNS over HTTPS
- verify_doh_cert: Verify the DoH certificate (default true)

RETURNS: The resulting DNS settings, or the device's failure text.`,
	},
	{
		Name:     "get_dns_settings",
		Method:   "GetDNSSettings",
		Title:    "Get DNS Settings",
		Category: "dns",
		Preset:   Read,
		Description: `Show the resolver configuration (/ip dns print).

USE WHEN: User asks "which DNS servers does the router use", "is remote DNS enabled", "what is the DNS cache size".

RETURNS: Raw RouterOS settings output.`,
	},
	{
		Name:     "add_dns_static",
		Method:   "AddDNSStatic",
		Title:    "Add Static DNS Entry",
		Category: "dns",
		Preset:   Write,
		Description: `Add a static DNS record served by the router.

USE WHEN: User says "make nas.lan resolve to 192.168.88.10", "add a CNAME", "add an MX/TXT/SRV record".

NOT FOR: Regex based blocking (use add_dns_regexp).

PARAMETERS:
- name: Host name (required)
- address: A/AAAA target
- cname, text: CNAME or TXT content
- mx_preference + mx_exchange: MX record (both needed)
- srv_priority, srv_weight, srv_port, srv_target: SRV record (all needed)
- ttl, comment, disabled, regexp: Optional

RETURNS: The new entry's details.`,
	},
	{
		Name:     "list_dns_static",
		Method:   "ListDNSStatic",
		Title:    "List Static DNS Entries",
		Category: "dns",
		Preset:   Read,
		Description: `List static DNS entries with optional filters.

USE WHEN: User asks "show my local DNS records", "which hosts are defined", "find the entry for nas".

PARAMETERS:
- name_filter, address_filter: Partial matches
- type_filter: Exact record type (A, AAAA, CNAME, MX, TXT, SRV)
- disabled_only, regexp_only: Narrow the list

RETURNS: Matching entries, or a "no entries" message.`,
	},
	{
		Name:     "get_dns_static",
		Method:   "GetDNSStatic",
		Title:    "Get Static DNS Entry",
		Category: "dns",
		Preset:   Read,
		Description: `Show one static DNS entry by row id.

USE WHEN: User asks for the details of a specific entry from list_dns_static.

PARAMETERS:
- entry_id: RouterOS row id such as *1A (required)

RETURNS: Entry details or a not-found message.`,
	},
	{
		Name:     "update_dns_static",
		Method:   "UpdateDNSStatic",
		Title:    "Update Static DNS Entry",
		Category: "dns",
		Preset:   WriteIdempotent,
		Description: `Change fields of a static DNS entry.

USE WHEN: User says "point nas.lan to a new address", "change the TTL", "remove the CNAME from that entry".

PARAMETERS:
- entry_id: Row id (required)
- Any field of add_dns_static. Omitted fields stay unchanged; an empty string clears address, cname, mx_exchange, text, srv_target, ttl and regexp.

RETURNS: Updated entry details, or "No updates specified." when nothing was given.`,
	},
	{
		Name:     "remove_dns_static",
		Method:   "RemoveDNSStatic",
		Title:    "Remove Static DNS Entry",
		Category: "dns",
		Preset:   Destructive,
		Description: `Delete a static DNS entry.

USE WHEN: User says "delete the record for nas.lan".

NOT FOR: Temporarily turning a record off (use disable_dns_static).

PARAMETERS:
- entry_id: Row id (required)

RETURNS: Confirmation or a not-found message.`,
	},
	{
		Name:     "enable_dns_static",
		Method:   "EnableDNSStatic",
		Title:    "Enable Static DNS Entry",
		Category: "dns",
		Preset:   WriteIdempotent,
		Description: `Enable a disabled static DNS entry.

PARAMETERS:
- entry_id: Row id (required)

RETURNS: Updated entry details.`,
	},
	{
		Name:     "disable_dns_static",
		Method:   "DisableDNSStatic",
		Title:    "Disable Static DNS Entry",
		Category: "dns",
		Preset:   WriteIdempotent,
		Description: `Disable a static DNS entry without deleting it.

PARAMETERS:
- entry_id: Row id (required)

RETURNS: Updated entry details.`,
	},
	{
		Name:     "get_dns_cache",
		Method:   "GetDNSCache",
		Title:    "Get DNS Cache",
		Category: "dns",
		Preset:   Read,
		Description: `Show the resolver cache contents.

USE WHEN: User asks "what has the router resolved recently", "is example.com cached".

RETURNS: Cached records, or "DNS cache is empty.".`,
	},
	{
		Name:     "flush_dns_cache",
		Method:   "FlushDNSCache",
		Title:    "Flush DNS Cache",
		Category: "dns",
		Preset:   Destructive,
		Description: `Empty the resolver cache.

USE WHEN: User says "clear the DNS cache", "a record changed but clients still get the old one".

RETURNS: Confirmation.`,
	},
	{
		Name:     "get_dns_cache_statistics",
		Method:   "GetDNSCacheStatistics",
		Title:    "Get DNS Cache Statistics",
		Category: "dns",
		Preset:   Read,
		Description: `Show resolver cache statistics (/ip dns cache print stats).

RETURNS: Raw statistics output.`,
	},
	{
		Name:     "add_dns_regexp",
		Method:   "AddDNSRegexp",
		Title:    "Add DNS Regexp Entry",
		Category: "dns",
		Preset:   Write,
		Description: `Add a static entry that answers every name matching a regular expression.

USE WHEN: User says "block all *.ads.com", "send every name under lab to 10.0.0.5".

NOT FOR: A single host name (use add_dns_static).

PARAMETERS:
- regexp: Pattern matched against query names (required)
- address: Answer address, 0.0.0.0 to block (required)
- ttl: Default 1d
- comment, disabled: Optional

RETURNS: The new entry's details.`,
	},
	{
		Name:     "test_dns_query",
		Method:   "TestDNSQuery",
		Title:    "Test DNS Query",
		Category: "dns",
		Preset:   Read,
		Description: `Resolve a name from the router itself.

USE WHEN: User asks "can the router resolve google.com", "what does nas.lan resolve to".

PARAMETERS:
- name: Name to resolve (required)
- server: Ask this resolver instead of the configured ones
- type: Record type (default A)

RETURNS: The resolved address or a failure message.`,
	},
	{
		Name:     "export_dns_config",
		Method:   "ExportDNSConfig",
		Title:    "Export DNS Configuration",
		Category: "dns",
		Preset:   Read,
		Description: `Write the DNS configuration to an .rsc file on the router.

PARAMETERS:
- filename: File name without extension (default dns_config)

RETURNS: The file name written.`,
	},
}
