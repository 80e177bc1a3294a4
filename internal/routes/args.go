package routes

// AddRouteArgs contains parameters for add_route
type AddRouteArgs struct {
	DstAddress   string `json:"dst_address" jsonschema:"Destination prefix, e.g. 10.10.0.0/16"`
	Gateway      string `json:"gateway" jsonschema:"Gateway address or interface name"`
	Distance     *int   `json:"distance,omitempty" jsonschema:"Administrative distance"`
	Scope        *int   `json:"scope,omitempty" jsonschema:"Route scope"`
	TargetScope  *int   `json:"target_scope,omitempty" jsonschema:"Target scope for recursive next-hop lookup"`
	RoutingMark  string `json:"routing_mark,omitempty" jsonschema:"Routing mark (v6) or routing table"`
	Comment      string `json:"comment,omitempty" jsonschema:"Free-form comment"`
	Disabled     bool   `json:"disabled,omitempty" jsonschema:"Create the route disabled"`
	VRFInterface string `json:"vrf_interface,omitempty" jsonschema:"VRF interface"`
	PrefSrc      string `json:"pref_src,omitempty" jsonschema:"Preferred source address"`
	CheckGateway string `json:"check_gateway,omitempty" jsonschema:"Gateway check method: ping, arp, bfd or none"`
}

// ListRoutesArgs contains parameters for list_routes
type ListRoutesArgs struct {
	DstFilter         string `json:"dst_filter,omitempty" jsonschema:"Partial match on destination"`
	GatewayFilter     string `json:"gateway_filter,omitempty" jsonschema:"Partial match on gateway"`
	RoutingMarkFilter string `json:"routing_mark_filter,omitempty" jsonschema:"Exact routing mark"`
	DistanceFilter    *int   `json:"distance_filter,omitempty" jsonschema:"Exact distance"`
	ActiveOnly        bool   `json:"active_only,omitempty" jsonschema:"Only active routes"`
	DisabledOnly      bool   `json:"disabled_only,omitempty" jsonschema:"Only disabled routes"`
	DynamicOnly       bool   `json:"dynamic_only,omitempty" jsonschema:"Only dynamic routes"`
	StaticOnly        bool   `json:"static_only,omitempty" jsonschema:"Only static routes"`
}

// RouteArgs addresses one route
type RouteArgs struct {
	RouteID string `json:"route_id" jsonschema:"RouterOS row id, e.g. *1A"`
}

// UpdateRouteArgs contains parameters for update_route. Omitted fields are
// left unchanged; an empty routing_mark, vrf_interface or pref_src clears it.
type UpdateRouteArgs struct {
	RouteID      string  `json:"route_id" jsonschema:"RouterOS row id, e.g. *1A"`
	DstAddress   *string `json:"dst_address,omitempty" jsonschema:"New destination prefix"`
	Gateway      *string `json:"gateway,omitempty" jsonschema:"New gateway"`
	Distance     *int    `json:"distance,omitempty" jsonschema:"New distance"`
	Scope        *int    `json:"scope,omitempty" jsonschema:"New scope"`
	TargetScope  *int    `json:"target_scope,omitempty" jsonschema:"New target scope"`
	RoutingMark  *string `json:"routing_mark,omitempty" jsonschema:"New routing mark, empty string clears it"`
	Comment      *string `json:"comment,omitempty" jsonschema:"New comment"`
	Disabled     *bool   `json:"disabled,omitempty" jsonschema:"Disable or enable the route"`
	VRFInterface *string `json:"vrf_interface,omitempty" jsonschema:"New VRF interface, empty string clears it"`
	PrefSrc      *string `json:"pref_src,omitempty" jsonschema:"New preferred source, empty string clears it"`
	CheckGateway *string `json:"check_gateway,omitempty" jsonschema:"New gateway check method"`
}

// RoutingTableArgs contains parameters for get_routing_table
type RoutingTableArgs struct {
	TableName      string `json:"table_name,omitempty" jsonschema:"Routing table name (default main)"`
	ProtocolFilter string `json:"protocol_filter,omitempty" jsonschema:"Only routes learned from this protocol"`
	ActiveOnly     *bool  `json:"active_only,omitempty" jsonschema:"Only active routes (default true)"`
}

// CheckPathArgs contains parameters for check_route_path
type CheckPathArgs struct {
	Destination string `json:"destination" jsonschema:"Destination address to look up"`
	Source      string `json:"source,omitempty" jsonschema:"Source address"`
	RoutingMark string `json:"routing_mark,omitempty" jsonschema:"Routing mark to use"`
}

// CacheArgs is the empty argument set of the route cache tools
type CacheArgs struct{}

// DefaultRouteArgs contains parameters for add_default_route
type DefaultRouteArgs struct {
	Gateway      string `json:"gateway" jsonschema:"Gateway address or interface name"`
	Distance     *int   `json:"distance,omitempty" jsonschema:"Administrative distance (default 1)"`
	Comment      string `json:"comment,omitempty" jsonschema:"Comment (default Default route)"`
	CheckGateway string `json:"check_gateway,omitempty" jsonschema:"Gateway check method (default ping)"`
}

// BlackholeArgs contains parameters for add_blackhole_route
type BlackholeArgs struct {
	DstAddress string `json:"dst_address" jsonschema:"Destination prefix to drop"`
	Distance   *int   `json:"distance,omitempty" jsonschema:"Administrative distance (default 1)"`
	Comment    string `json:"comment,omitempty" jsonschema:"Free-form comment"`
}

// StatisticsArgs is the empty argument set of get_route_statistics
type StatisticsArgs struct{}
