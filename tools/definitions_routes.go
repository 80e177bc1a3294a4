package tools

// ==========================================================================
// ROUTING TOOLS
// ==========================================================================
var routeTools = []ToolSpec{
	{
		Name:     "add_route",
		Method:   "AddRoute",
		Title:    "Add Route",
		Category: "routes",
		Preset:   Write,
		Description: `Add a static IPv4 route.

USE WHEN: User says "route 10.10.0.0/16 via 192.168.1.2", "send traffic for the office subnet through the VPN".

NOT FOR: The default route (use add_default_route) or dropping traffic (use add_blackhole_route).

PARAMETERS:
- dst_address: Destination prefix (required)
- gateway: Next hop address or interface (required)
- distance, scope, target_scope: Optional integers
- routing_mark, vrf_interface, pref_src, comment, disabled: Optional
- check_gateway: ping, arp, bfd, bfd-multihop or none

RETURNS: The new route's details.`,
	},
	{
		Name:     "list_routes",
		Method:   "ListRoutes",
		Title:    "List Routes",
		Category: "routes",
		Preset:   Read,
		Description: `List routes with optional filters.

USE WHEN: User asks "show the routing table", "which routes go via 192.168.1.1", "list static routes".

NOT FOR: One routing table with active routes only (use get_routing_table).

PARAMETERS:
- dst_filter, gateway_filter: Partial matches
- routing_mark_filter, distance_filter: Exact matches
- active_only, disabled_only, dynamic_only, static_only: Narrow the list

RETURNS: Matching routes, or a "no routes" message.`,
	},
	{
		Name:     "get_route",
		Method:   "GetRoute",
		Title:    "Get Route",
		Category: "routes",
		Preset:   Read,
		Description: `Show one route by row id.

PARAMETERS:
- route_id: RouterOS row id such as *3 (required)

RETURNS: Route details or a not-found message.`,
	},
	{
		Name:     "update_route",
		Method:   "UpdateRoute",
		Title:    "Update Route",
		Category: "routes",
		Preset:   WriteIdempotent,
		Description: `Change fields of an existing route.

USE WHEN: User says "change the gateway of that route", "raise the distance to 10".

PARAMETERS:
- route_id: Row id (required)
- Any field of add_route. Omitted fields stay unchanged; an empty string clears routing_mark, vrf_interface and pref_src.

RETURNS: Updated route details, or "No updates specified.".`,
	},
	{
		Name:     "remove_route",
		Method:   "RemoveRoute",
		Title:    "Remove Route",
		Category: "routes",
		Preset:   Destructive,
		Description: `Delete a route.

NOT FOR: Temporarily turning a route off (use disable_route).

PARAMETERS:
- route_id: Row id (required)

RETURNS: Confirmation or a not-found message.`,
	},
	{
		Name:     "enable_route",
		Method:   "EnableRoute",
		Title:    "Enable Route",
		Category: "routes",
		Preset:   WriteIdempotent,
		Description: `Enable a disabled route.

PARAMETERS:
- route_id: Row id (required)

RETURNS: Updated route details.`,
	},
	{
		Name:     "disable_route",
		Method:   "DisableRoute",
		Title:    "Disable Route",
		Category: "routes",
		Preset:   WriteIdempotent,
		Description: `Disable a route without deleting it.

PARAMETERS:
- route_id: Row id (required)

RETURNS: Updated route details.`,
	},
	{
		Name:     "get_routing_table",
		Method:   "GetRoutingTable",
		Title:    "Get Routing Table",
		Category: "routes",
		Preset:   Read,
		Description: `Show the routes of one routing table.

USE WHEN: User asks "what is in the main table", "show active routes", "which routes came from OSPF".

PARAMETERS:
- table_name: Table (default main)
- protocol_filter: Only routes learned from this protocol
- active_only: Default true

RETURNS: Routes of the table, or a "no routes" message.`,
	},
	{
		Name:     "check_route_path",
		Method:   "CheckRoutePath",
		Title:    "Check Route Path",
		Category: "routes",
		Preset:   Read,
		Description: `Ask the router which route a destination would take.

USE WHEN: User asks "how does the router reach 8.8.8.8", "which gateway is used for 10.1.2.3".

PARAMETERS:
- destination: Address to look up (required)
- source, routing_mark: Optional

RETURNS: The device's route check output.`,
	},
	{
		Name:     "get_route_cache",
		Method:   "GetRouteCache",
		Title:    "Get Route Cache",
		Category: "routes",
		Preset:   Read,
		Description: `Show the route cache.

RETURNS: Cache contents, or a message that it is empty.`,
	},
	{
		Name:     "flush_route_cache",
		Method:   "FlushRouteCache",
		Title:    "Flush Route Cache",
		Category: "routes",
		Preset:   Destructive,
		Description: `Flush the route cache.

RETURNS: Confirmation.`,
	},
	{
		Name:     "add_default_route",
		Method:   "AddDefaultRoute",
		Title:    "Add Default Route",
		Category: "routes",
		Preset:   Write,
		Description: `Add a 0.0.0.0/0 route.

USE WHEN: User says "set the default gateway to 192.168.1.1", "add an internet route via the LTE interface".

PARAMETERS:
- gateway: Next hop (required)
- distance: Default 1
- comment: Default "Default route"
- check_gateway: Default ping

RETURNS: The new route's details.`,
	},
	{
		Name:     "add_blackhole_route",
		Method:   "AddBlackholeRoute",
		Title:    "Add Blackhole Route",
		Category: "routes",
		Preset:   Write,
		Description: `Add a route that silently drops traffic for a prefix.

USE WHEN: User says "blackhole 198.51.100.0/24", "null-route this network".

PARAMETERS:
- dst_address: Prefix to drop (required)
- distance: Default 1
- comment: Optional

RETURNS: Confirmation with the new row id.`,
	},
	{
		Name:     "get_route_statistics",
		Method:   "GetRouteStatistics",
		Title:    "Get Route Statistics",
		Category: "routes",
		Preset:   Read,
		Description: `Count routes: total, active, static, dynamic and disabled.

USE WHEN: User asks "how many routes does the router have".

RETURNS: A short statistics report.`,
	},
}
