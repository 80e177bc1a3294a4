package dns

// SetServersArgs contains parameters for set_dns_servers
type SetServersArgs struct {
	Servers              []string `json:"servers" jsonschema:"Upstream DNS server addresses"`
	AllowRemoteRequests  bool     `json:"allow_remote_requests,omitempty" jsonschema:"Answer queries from other hosts (default false)"`
	MaxUDPPacketSize     *int     `json:"max_udp_packet_size,omitempty" jsonschema:"Maximum UDP packet size in bytes"`
	MaxConcurrentQueries *int     `json:"max_concurrent_queries,omitempty" jsonschema:"Maximum number of concurrent queries"`
	CacheSize            *int     `json:"cache_size,omitempty" jsonschema:"Cache size in KiB"`
	CacheMaxTTL          string   `json:"cache_max_ttl,omitempty" jsonschema:"Maximum cache TTL, e.g. 1w"`
	UseDoH               bool     `json:"use_doh,omitempty" jsonschema:"Resolve through DNS over HTTPS"`
	DoHServer            string   `json:"doh_server,omitempty" jsonschema:"DoH server URL, used with use_doh"`
	VerifyDoHCert        *bool    `json:"verify_doh_cert,omitempty" jsonschema:"Verify the DoH server certificate (default true)"`
}

// GetSettingsArgs contains parameters for get_dns_settings
type GetSettingsArgs struct{}

// AddStaticArgs contains parameters for add_dns_static
type AddStaticArgs struct {
	Name         string `json:"name" jsonschema:"Host name the entry answers for"`
	Address      string `json:"address,omitempty" jsonschema:"IPv4 or IPv6 address (A/AAAA record)"`
	CNAME        string `json:"cname,omitempty" jsonschema:"Canonical name (CNAME record)"`
	MXPreference *int   `json:"mx_preference,omitempty" jsonschema:"MX preference, used with mx_exchange"`
	MXExchange   string `json:"mx_exchange,omitempty" jsonschema:"MX exchange host"`
	Text         string `json:"text,omitempty" jsonschema:"TXT record content"`
	SRVPriority  *int   `json:"srv_priority,omitempty" jsonschema:"SRV priority"`
	SRVWeight    *int   `json:"srv_weight,omitempty" jsonschema:"SRV weight"`
	SRVPort      *int   `json:"srv_port,omitempty" jsonschema:"SRV port"`
	SRVTarget    string `json:"srv_target,omitempty" jsonschema:"SRV target host"`
	TTL          string `json:"ttl,omitempty" jsonschema:"Record TTL, e.g. 1d"`
	Comment      string `json:"comment,omitempty" jsonschema:"Free-form comment"`
	Disabled     bool   `json:"disabled,omitempty" jsonschema:"Create the entry disabled"`
	Regexp       string `json:"regexp,omitempty" jsonschema:"Regular expression matched against query names"`
}

// ListStaticArgs contains parameters for list_dns_static
type ListStaticArgs struct {
	NameFilter    string `json:"name_filter,omitempty" jsonschema:"Partial match on name"`
	AddressFilter string `json:"address_filter,omitempty" jsonschema:"Partial match on address"`
	TypeFilter    string `json:"type_filter,omitempty" jsonschema:"Exact record type such as A, CNAME or MX"`
	DisabledOnly  bool   `json:"disabled_only,omitempty" jsonschema:"Only disabled entries"`
	RegexpOnly    bool   `json:"regexp_only,omitempty" jsonschema:"Only regexp entries"`
}

// EntryArgs addresses one static entry
type EntryArgs struct {
	EntryID string `json:"entry_id" jsonschema:"RouterOS row id, e.g. *1A"`
}

// UpdateStaticArgs contains parameters for update_dns_static. An empty string
// clears a clearable field; an omitted field is left unchanged.
type UpdateStaticArgs struct {
	EntryID      string  `json:"entry_id" jsonschema:"RouterOS row id, e.g. *1A"`
	Name         *string `json:"name,omitempty" jsonschema:"New host name"`
	Address      *string `json:"address,omitempty" jsonschema:"New address, empty string clears it"`
	CNAME        *string `json:"cname,omitempty" jsonschema:"New canonical name, empty string clears it"`
	MXPreference *int    `json:"mx_preference,omitempty" jsonschema:"New MX preference"`
	MXExchange   *string `json:"mx_exchange,omitempty" jsonschema:"New MX exchange, empty string clears it"`
	Text         *string `json:"text,omitempty" jsonschema:"New TXT content, empty string clears it"`
	SRVPriority  *int    `json:"srv_priority,omitempty" jsonschema:"New SRV priority"`
	SRVWeight    *int    `json:"srv_weight,omitempty" jsonschema:"New SRV weight"`
	SRVPort      *int    `json:"srv_port,omitempty" jsonschema:"New SRV port"`
	SRVTarget    *string `json:"srv_target,omitempty" jsonschema:"New SRV target, empty string clears it"`
	TTL          *string `json:"ttl,omitempty" jsonschema:"New TTL, empty string clears it"`
	Comment      *string `json:"comment,omitempty" jsonschema:"New comment"`
	Disabled     *bool   `json:"disabled,omitempty" jsonschema:"Disable or enable the entry"`
	Regexp       *string `json:"regexp,omitempty" jsonschema:"New regexp, empty string clears it"`
}

// CacheArgs is the empty argument set of the cache tools
type CacheArgs struct{}

// AddRegexpArgs contains parameters for add_dns_regexp
type AddRegexpArgs struct {
	Regexp   string `json:"regexp" jsonschema:"Regular expression matched against query names"`
	Address  string `json:"address" jsonschema:"Address returned for matching names"`
	TTL      string `json:"ttl,omitempty" jsonschema:"Record TTL (default 1d)"`
	Comment  string `json:"comment,omitempty" jsonschema:"Free-form comment"`
	Disabled bool   `json:"disabled,omitempty" jsonschema:"Create the entry disabled"`
}

// TestQueryArgs contains parameters for test_dns_query
type TestQueryArgs struct {
	Name   string `json:"name" jsonschema:"Name to resolve"`
	Server string `json:"server,omitempty" jsonschema:"Resolver to ask instead of the configured servers"`
	Type   string `json:"type,omitempty" jsonschema:"Record type (default A)"`
}

// ExportConfigArgs contains parameters for export_dns_config
type ExportConfigArgs struct {
	Filename string `json:"filename,omitempty" jsonschema:"Export file name without extension (default dns_config)"`
}
