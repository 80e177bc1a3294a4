package tools

// ==========================================================================
// WIRELESS TOOLS
// ==========================================================================
var wirelessTools = []ToolSpec{
	{
		Name:     "create_wireless_interface",
		Method:   "CreateWireless",
		Title:    "Create Wireless Interface",
		Category: "wireless",
		Preset:   Write,
		Description: `Create a wireless interface on whichever wireless menu the device has (wifi, wifiwave2, wireless or wlan).

USE WHEN: User says "create a guest SSID", "add a virtual AP".

PARAMETERS:
- name: Interface name (required)
- ssid, comment, disabled: Optional
- radio_name: Required on legacy /interface wireless
- mode, frequency, band, channel_width, security_profile: Legacy options (mode defaults to ap-bridge)

RETURNS: The new interface's details and the menu used, or a no-support message.`,
	},
	{
		Name:     "list_wireless_interfaces",
		Method:   "ListWireless",
		Title:    "List Wireless Interfaces",
		Category: "wireless",
		Preset:   Read,
		Description: `List wireless interfaces across every supported wireless menu.

USE WHEN: User asks "which SSIDs does the router broadcast", "list Wi-Fi interfaces".

PARAMETERS:
- name_filter: Partial match
- disabled_only, running_only: Narrow the list

RETURNS: Interfaces grouped by menu. When none are found, a report of all interfaces to help diagnose.`,
	},
	{
		Name:     "get_wireless_interface",
		Method:   "GetWireless",
		Title:    "Get Wireless Interface",
		Category: "wireless",
		Preset:   Read,
		Description: `Show one wireless interface by name.

PARAMETERS:
- name: Interface name (required)

RETURNS: Interface details or a not-found message.`,
	},
	{
		Name:     "update_wireless_interface",
		Method:   "UpdateWireless",
		Title:    "Update Wireless Interface",
		Category: "wireless",
		Preset:   WriteIdempotent,
		Description: `Change a wireless interface.

USE WHEN: User says "rename the SSID", "rename wifi2 to guest".

PARAMETERS:
- name: Current name (required)
- new_name, ssid, comment, disabled: Optional

RETURNS: Updated interface details.`,
	},
	{
		Name:     "remove_wireless_interface",
		Method:   "RemoveWireless",
		Title:    "Remove Wireless Interface",
		Category: "wireless",
		Preset:   Destructive,
		Description: `Delete a wireless interface.

PARAMETERS:
- name: Interface name (required)

RETURNS: Confirmation or a not-found message.`,
	},
	{
		Name:     "enable_wireless_interface",
		Method:   "EnableWireless",
		Title:    "Enable Wireless Interface",
		Category: "wireless",
		Preset:   WriteIdempotent,
		Description: `Enable a wireless interface.

PARAMETERS:
- name: Interface name (required)

RETURNS: Updated interface details.`,
	},
	{
		Name:     "disable_wireless_interface",
		Method:   "DisableWireless",
		Title:    "Disable Wireless Interface",
		Category: "wireless",
		Preset:   WriteIdempotent,
		Description: `Disable a wireless interface.

PARAMETERS:
- name: Interface name (required)

RETURNS: Updated interface details.`,
	},
	{
		Name:     "scan_wireless_networks",
		Method:   "ScanWireless",
		Title:    "Scan Wireless Networks",
		Category: "wireless",
		Preset:   Read,
		Description: `Scan for nearby wireless networks.

USE WHEN: User asks "which networks are around", "is channel 6 crowded".

PARAMETERS:
- interface: Interface used for the scan (required)
- duration: Seconds, default 5, at most 60

RETURNS: Scan results. Clients on that interface may disconnect during the scan.`,
	},
	{
		Name:     "get_wireless_registration_table",
		Method:   "WirelessRegistrationTable",
		Title:    "Get Wireless Registration Table",
		Category: "wireless",
		Preset:   Read,
		Description: `Show the clients associated with the access points.

USE WHEN: User asks "who is on the Wi-Fi", "what is the signal of my laptop".

PARAMETERS:
- interface: Only clients of this interface

RETURNS: Registered clients, or a message that none are registered.`,
	},
	{
		Name:     "check_wireless_support",
		Method:   "CheckWirelessSupport",
		Title:    "Check Wireless Support",
		Category: "wireless",
		Preset:   Read,
		Description: `Report which wireless menu, if any, the device supports.

USE WHEN: Wireless tools report no support, or before configuring Wi-Fi on an unknown device.

RETURNS: The detected menu and interface count, or a no-support message.`,
	},
	{
		Name:     "create_wireless_security_profile",
		Method:   "CreateSecurityProfile",
		Title:    "Create Wireless Security Profile",
		Category: "wireless",
		Preset:   Write,
		Description: `Create a security profile on legacy /interface wireless (RouterOS v6).

NOT FOR: RouterOS v7 wifi menus, which configure security on the interface; the tool explains this instead.

PARAMETERS:
- name: Profile name (required)
- mode, authentication_types, unicast_ciphers, group_ciphers: Optional
- wpa_pre_shared_key, wpa2_pre_shared_key: Passphrases
- comment: Optional

RETURNS: The new profile's details.`,
	},
	{
		Name:     "list_wireless_security_profiles",
		Method:   "ListSecurityProfiles",
		Title:    "List Wireless Security Profiles",
		Category: "wireless",
		Preset:   Read,
		Description: `List legacy wireless security profiles.

PARAMETERS:
- name_filter: Partial match

RETURNS: Matching profiles, or v7 guidance.`,
	},
	{
		Name:     "get_wireless_security_profile",
		Method:   "GetSecurityProfile",
		Title:    "Get Wireless Security Profile",
		Category: "wireless",
		Preset:   Read,
		Description: `Show one legacy wireless security profile.

PARAMETERS:
- name: Profile name (required)

RETURNS: Profile details, a not-found message, or v7 guidance.`,
	},
	{
		Name:     "remove_wireless_security_profile",
		Method:   "RemoveSecurityProfile",
		Title:    "Remove Wireless Security Profile",
		Category: "wireless",
		Preset:   Destructive,
		Description: `Delete a legacy wireless security profile.

PARAMETERS:
- name: Profile name (required)

RETURNS: Confirmation, a not-found message, or v7 guidance.`,
	},
	{
		Name:     "set_wireless_security_profile",
		Method:   "SetSecurityProfile",
		Title:    "Set Wireless Security Profile",
		Category: "wireless",
		Preset:   Write,
		Description: `Assign a security profile to a legacy wireless interface.

USE WHEN: User says "use the guest-wpa2 profile on wlan2".

PARAMETERS:
- interface_name: Wireless interface (required)
- security_profile: Profile to assign (required)

RETURNS: Updated interface details, or v7 guidance.`,
	},
	{
		Name:     "create_wireless_access_list",
		Method:   "CreateAccessList",
		Title:    "Create Wireless Access List Entry",
		Category: "wireless",
		Preset:   Write,
		Description: `Add a legacy wireless access-list rule.

USE WHEN: User says "only allow my phone on wlan1", "block this MAC from the Wi-Fi".

PARAMETERS:
- mac_address: Client MAC, any client when omitted
- interface: Wireless interface, all when omitted
- authentication, forwarding: Default true
- signal_range, comment: Optional

RETURNS: The new entry's details, or v7 guidance.`,
	},
	{
		Name:     "list_wireless_access_list",
		Method:   "ListAccessList",
		Title:    "List Wireless Access List",
		Category: "wireless",
		Preset:   Read,
		Description: `List legacy wireless access-list rules.

PARAMETERS:
- interface: Only entries for this interface

RETURNS: Matching entries, or v7 guidance.`,
	},
	{
		Name:     "remove_wireless_access_list_entry",
		Method:   "RemoveAccessListEntry",
		Title:    "Remove Wireless Access List Entry",
		Category: "wireless",
		Preset:   Destructive,
		Description: `Delete a legacy wireless access-list rule.

PARAMETERS:
- entry_id: Row id (required)

RETURNS: Confirmation, a not-found message, or v7 guidance.`,
	},
}
