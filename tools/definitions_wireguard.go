package tools

// ==========================================================================
// WIREGUARD TOOLS
// ==========================================================================
var wireguardTools = []ToolSpec{
	{
		Name:     "create_wireguard_interface",
		Method:   "CreateWireGuardInterface",
		Title:    "Create WireGuard Interface",
		Category: "wireguard",
		Preset:   Write,
		Description: `Create a WireGuard interface.

USE WHEN: User says "set up a WireGuard server", "create wg0 listening on 51820".

NOT FOR: Adding a remote side (use add_wireguard_peer).

PARAMETERS:
- name: Interface name (required)
- listen_port: UDP port (device default 13231)
- private_key: Base64 key, generated by the device when omitted
- mtu, comment, disabled: Optional

RETURNS: The new interface's details, including its public key.`,
	},
	{
		Name:     "list_wireguard_interfaces",
		Method:   "ListWireGuardInterfaces",
		Title:    "List WireGuard Interfaces",
		Category: "wireguard",
		Preset:   Read,
		Description: `List WireGuard interfaces.

PARAMETERS:
- name_filter: Partial match
- disabled_only, running_only: Narrow the list

RETURNS: Matching interfaces, or a "no interfaces" message.`,
	},
	{
		Name:     "get_wireguard_interface",
		Method:   "GetWireGuardInterface",
		Title:    "Get WireGuard Interface",
		Category: "wireguard",
		Preset:   Read,
		Description: `Show one WireGuard interface by name.

USE WHEN: User asks "what is the public key of wg0", "which port does wg0 listen on".

PARAMETERS:
- name: Interface name (required)

RETURNS: Interface details or a not-found message.`,
	},
	{
		Name:     "update_wireguard_interface",
		Method:   "UpdateWireGuardInterface",
		Title:    "Update WireGuard Interface",
		Category: "wireguard",
		Preset:   WriteIdempotent,
		Description: `Change a WireGuard interface.

PARAMETERS:
- name: Current name (required)
- new_name, listen_port, private_key, mtu, comment, disabled: Optional

RETURNS: Updated interface details.`,
	},
	{
		Name:     "remove_wireguard_interface",
		Method:   "RemoveWireGuardInterface",
		Title:    "Remove WireGuard Interface",
		Category: "wireguard",
		Preset:   Destructive,
		Description: `Delete a WireGuard interface.

PARAMETERS:
- name: Interface name (required)

RETURNS: Confirmation or a not-found message.`,
	},
	{
		Name:     "enable_wireguard_interface",
		Method:   "EnableWireGuardInterface",
		Title:    "Enable WireGuard Interface",
		Category: "wireguard",
		Preset:   WriteIdempotent,
		Description: `Enable a WireGuard interface.

PARAMETERS:
- name: Interface name (required)

RETURNS: Updated interface details.`,
	},
	{
		Name:     "disable_wireguard_interface",
		Method:   "DisableWireGuardInterface",
		Title:    "Disable WireGuard Interface",
		Category: "wireguard",
		Preset:   WriteIdempotent,
		Description: `Disable a WireGuard interface.

PARAMETERS:
- name: Interface name (required)

RETURNS: Updated interface details.`,
	},
	{
		Name:     "add_wireguard_peer",
		Method:   "AddWireGuardPeer",
		Title:    "Add WireGuard Peer",
		Category: "wireguard",
		Preset:   Write,
		Description: `Add a peer to a WireGuard interface.

USE WHEN: User says "add my laptop as a WireGuard client", "connect wg0 to the office endpoint".

PARAMETERS:
- interface: WireGuard interface (required)
- public_key: Peer's base64 public key (required)
- allowed_address: Comma separated prefixes (required)
- endpoint_address, endpoint_port: Remote side, for outgoing tunnels
- preshared_key, persistent_keepalive, comment, disabled: Optional

RETURNS: The new peer's details.`,
	},
	{
		Name:     "list_wireguard_peers",
		Method:   "ListWireGuardPeers",
		Title:    "List WireGuard Peers",
		Category: "wireguard",
		Preset:   Read,
		Description: `List WireGuard peers.

USE WHEN: User asks "who is connected to wg0", "show the last handshakes".

PARAMETERS:
- interface_filter: Exact interface
- disabled_only: Narrow the list

RETURNS: Matching peers, or a "no peers" message.`,
	},
	{
		Name:     "get_wireguard_peer",
		Method:   "GetWireGuardPeer",
		Title:    "Get WireGuard Peer",
		Category: "wireguard",
		Preset:   Read,
		Description: `Show one WireGuard peer by row id.

PARAMETERS:
- peer_id: Row id such as *1 (required)

RETURNS: Peer details or a not-found message.`,
	},
	{
		Name:     "update_wireguard_peer",
		Method:   "UpdateWireGuardPeer",
		Title:    "Update WireGuard Peer",
		Category: "wireguard",
		Preset:   WriteIdempotent,
		Description: `Change a WireGuard peer.

PARAMETERS:
- peer_id: Row id (required)
- allowed_address, endpoint_address, endpoint_port, preshared_key, persistent_keepalive, comment, disabled: Optional. An empty endpoint_address or preshared_key clears it.

RETURNS: Updated peer details, or "No updates specified.".`,
	},
	{
		Name:     "remove_wireguard_peer",
		Method:   "RemoveWireGuardPeer",
		Title:    "Remove WireGuard Peer",
		Category: "wireguard",
		Preset:   Destructive,
		Description: `Delete a WireGuard peer.

PARAMETERS:
- peer_id: Row id (required)

RETURNS: Confirmation or a not-found message.`,
	},
	{
		Name:     "enable_wireguard_peer",
		Method:   "EnableWireGuardPeer",
		Title:    "Enable WireGuard Peer",
		Category: "wireguard",
		Preset:   WriteIdempotent,
		Description: `Enable a WireGuard peer.

PARAMETERS:
- peer_id: Row id (required)

RETURNS: Updated peer details.`,
	},
	{
		Name:     "disable_wireguard_peer",
		Method:   "DisableWireGuardPeer",
		Title:    "Disable WireGuard Peer",
		Category: "wireguard",
		Preset:   WriteIdempotent,
		Description: `Disable a WireGuard peer, cutting its tunnel without deleting it.

PARAMETERS:
- peer_id: Row id (required)

RETURNS: Updated peer details.`,
	},
}
