package tools

// ==========================================================================
// VLAN TOOLS
// ==========================================================================
var vlanTools = []ToolSpec{
	{
		Name:     "create_vlan_interface",
		Method:   "CreateVLAN",
		Title:    "Create VLAN Interface",
		Category: "vlan",
		Preset:   Write,
		Description: `Create an 802.1Q VLAN interface on a parent interface.

USE WHEN: User says "add VLAN 100 on ether2", "create a guest VLAN on the bridge".

PARAMETERS:
- name: Interface name (required)
- vlan_id: 1-4094 (required)
- interface: Parent interface (required)
- mtu, arp, arp_timeout, use_service_tag, comment, disabled: Optional
- arp: enabled (default), disabled, proxy-arp or reply-only

RETURNS: The new interface's details.`,
	},
	{
		Name:     "list_vlan_interfaces",
		Method:   "ListVLANs",
		Title:    "List VLAN Interfaces",
		Category: "vlan",
		Preset:   Read,
		Description: `List VLAN interfaces.

USE WHEN: User asks "which VLANs exist", "what VLANs are on ether2".

PARAMETERS:
- name_filter: Partial match
- vlan_id_filter, interface_filter: Exact matches
- disabled_only: Narrow the list

RETURNS: Matching interfaces, or a "no VLAN interfaces" message.`,
	},
	{
		Name:     "get_vlan_interface",
		Method:   "GetVLAN",
		Title:    "Get VLAN Interface",
		Category: "vlan",
		Preset:   Read,
		Description: `Show one VLAN interface by name.

PARAMETERS:
- name: Interface name (required)

RETURNS: Interface details or a not-found message.`,
	},
	{
		Name:     "update_vlan_interface",
		Method:   "UpdateVLAN",
		Title:    "Update VLAN Interface",
		Category: "vlan",
		Preset:   WriteIdempotent,
		Description: `Change a VLAN interface, including renaming it.

USE WHEN: User says "rename vlan100 to guest", "move VLAN 20 to bridge1", "change the VLAN ID".

PARAMETERS:
- name: Current name (required)
- new_name, vlan_id, interface, mtu, arp, arp_timeout, use_service_tag, comment, disabled: Optional

RETURNS: Updated interface details, fetched by the new name after a rename.`,
	},
	{
		Name:     "remove_vlan_interface",
		Method:   "RemoveVLAN",
		Title:    "Remove VLAN Interface",
		Category: "vlan",
		Preset:   Destructive,
		Description: `Delete a VLAN interface.

PARAMETERS:
- name: Interface name (required)

RETURNS: Confirmation or a not-found message.`,
	},
	{
		Name:     "enable_vlan_interface",
		Method:   "EnableVLAN",
		Title:    "Enable VLAN Interface",
		Category: "vlan",
		Preset:   WriteIdempotent,
		Description: `Enable a disabled VLAN interface.

PARAMETERS:
- name: Interface name (required)

RETURNS: Updated interface details.`,
	},
	{
		Name:     "disable_vlan_interface",
		Method:   "DisableVLAN",
		Title:    "Disable VLAN Interface",
		Category: "vlan",
		Preset:   WriteIdempotent,
		Description: `Disable a VLAN interface without deleting it.

PARAMETERS:
- name: Interface name (required)

RETURNS: Updated interface details.`,
	},
}

// ==========================================================================
// IP ADDRESS TOOLS
// ==========================================================================
var ipAddressTools = []ToolSpec{
	{
		Name:     "add_ip_address",
		Method:   "AddIPAddress",
		Title:    "Add IP Address",
		Category: "ip_address",
		Preset:   Write,
		Description: `Assign an IPv4 address to an interface.

USE WHEN: User says "give vlan100 the address 10.0.100.1/24", "add 192.168.2.1/24 to ether3".

PARAMETERS:
- address: Address with prefix length (required)
- interface: Interface name (required)
- network, broadcast: Derived by the device when omitted
- comment, disabled: Optional

RETURNS: The new address's details.`,
	},
	{
		Name:     "list_ip_addresses",
		Method:   "ListIPAddresses",
		Title:    "List IP Addresses",
		Category: "ip_address",
		Preset:   Read,
		Description: `List configured IP addresses.

USE WHEN: User asks "which addresses does the router have", "what is the address of ether1".

PARAMETERS:
- interface_filter, network_filter: Exact matches
- address_filter: Partial match
- disabled_only, dynamic_only: Narrow the list

RETURNS: Matching addresses, or a "no addresses" message.`,
	},
	{
		Name:     "get_ip_address",
		Method:   "GetIPAddress",
		Title:    "Get IP Address",
		Category: "ip_address",
		Preset:   Read,
		Description: `Show one IP address by row id or by address value.

PARAMETERS:
- address_id: Row id such as *3, or an address such as 10.0.0.1/24 (required)

RETURNS: Address details or a not-found message.`,
	},
	{
		Name:     "update_ip_address",
		Method:   "UpdateIPAddress",
		Title:    "Update IP Address",
		Category: "ip_address",
		Preset:   WriteIdempotent,
		Description: `Change an IP address entry.

USE WHEN: User says "move 10.0.0.1/24 to ether4", "change the prefix to /23".

PARAMETERS:
- address_id: Row id or address (required)
- address, interface, network, broadcast, comment, disabled: Optional. An empty network or broadcast lets the device derive it.

RETURNS: Updated address details, or "No updates specified.".`,
	},
	{
		Name:     "remove_ip_address",
		Method:   "RemoveIPAddress",
		Title:    "Remove IP Address",
		Category: "ip_address",
		Preset:   Destructive,
		Description: `Remove an IP address from its interface.

PARAMETERS:
- address_id: Row id or address (required)

RETURNS: Confirmation or a not-found message.`,
	},
	{
		Name:     "enable_ip_address",
		Method:   "EnableIPAddress",
		Title:    "Enable IP Address",
		Category: "ip_address",
		Preset:   WriteIdempotent,
		Description: `Enable a disabled IP address.

PARAMETERS:
- address_id: Row id or address (required)

RETURNS: Updated address details.`,
	},
	{
		Name:     "disable_ip_address",
		Method:   "DisableIPAddress",
		Title:    "Disable IP Address",
		Category: "ip_address",
		Preset:   WriteIdempotent,
		Description: `Disable an IP address without removing it.

PARAMETERS:
- address_id: Row id or address (required)

RETURNS: Updated address details.`,
	},
}
