package wireless

// CreateArgs contains parameters for create_wireless_interface. The radio
// settings only apply to the legacy wireless menu.
type CreateArgs struct {
	Name            string `json:"name" jsonschema:"Name of the wireless interface"`
	SSID            string `json:"ssid,omitempty" jsonschema:"Network name"`
	Disabled        bool   `json:"disabled,omitempty" jsonschema:"Create the interface disabled"`
	Comment         string `json:"comment,omitempty" jsonschema:"Free-form comment"`
	RadioName       string `json:"radio_name,omitempty" jsonschema:"Radio interface, required on legacy wireless"`
	Mode            string `json:"mode,omitempty" jsonschema:"Legacy mode such as ap-bridge (default) or station"`
	Frequency       string `json:"frequency,omitempty" jsonschema:"Legacy operating frequency in MHz"`
	Band            string `json:"band,omitempty" jsonschema:"Legacy band such as 2ghz-b/g/n or 5ghz-a/n/ac"`
	ChannelWidth    string `json:"channel_width,omitempty" jsonschema:"Legacy channel width such as 20mhz or 20/40mhz-Ce"`
	SecurityProfile string `json:"security_profile,omitempty" jsonschema:"Legacy security profile name"`
}

// ListArgs contains parameters for list_wireless_interfaces
type ListArgs struct {
	NameFilter   string `json:"name_filter,omitempty" jsonschema:"Partial match on name"`
	DisabledOnly bool   `json:"disabled_only,omitempty" jsonschema:"Only disabled interfaces"`
	RunningOnly  bool   `json:"running_only,omitempty" jsonschema:"Only running interfaces"`
}

// NameArgs addresses one wireless interface by name
type NameArgs struct {
	Name string `json:"name" jsonschema:"Name of the wireless interface"`
}

// UpdateArgs contains parameters for update_wireless_interface
type UpdateArgs struct {
	Name     string  `json:"name" jsonschema:"Current name of the wireless interface"`
	NewName  *string `json:"new_name,omitempty" jsonschema:"New name"`
	SSID     *string `json:"ssid,omitempty" jsonschema:"New network name"`
	Disabled *bool   `json:"disabled,omitempty" jsonschema:"Disable or enable the interface"`
	Comment  *string `json:"comment,omitempty" jsonschema:"New comment"`
}

// ScanArgs contains parameters for scan_wireless_networks
type ScanArgs struct {
	Interface string `json:"interface" jsonschema:"Wireless interface used for the scan"`
	Duration  *int   `json:"duration,omitempty" jsonschema:"Scan duration in seconds (default 5, max 60)"`
}

// RegistrationArgs contains parameters for get_wireless_registration_table
type RegistrationArgs struct {
	Interface string `json:"interface,omitempty" jsonschema:"Only clients of this interface"`
}

// SupportArgs is the empty argument set of check_wireless_support
type SupportArgs struct{}

// CreateProfileArgs contains parameters for create_wireless_security_profile
type CreateProfileArgs struct {
	Name                string `json:"name" jsonschema:"Profile name"`
	Mode                string `json:"mode,omitempty" jsonschema:"none, dynamic-keys, static-keys-required or static-keys-optional"`
	AuthenticationTypes string `json:"authentication_types,omitempty" jsonschema:"Comma separated list such as wpa2-psk,wpa3-psk"`
	UnicastCiphers      string `json:"unicast_ciphers,omitempty" jsonschema:"Comma separated list such as aes-ccm"`
	GroupCiphers        string `json:"group_ciphers,omitempty" jsonschema:"Comma separated list such as aes-ccm"`
	WPAPreSharedKey     string `json:"wpa_pre_shared_key,omitempty" jsonschema:"WPA passphrase"`
	WPA2PreSharedKey    string `json:"wpa2_pre_shared_key,omitempty" jsonschema:"WPA2 passphrase"`
	Comment             string `json:"comment,omitempty" jsonschema:"Free-form comment"`
}

// ListProfilesArgs contains parameters for list_wireless_security_profiles
type ListProfilesArgs struct {
	NameFilter string `json:"name_filter,omitempty" jsonschema:"Partial match on name"`
}

// ProfileArgs addresses one security profile by name
type ProfileArgs struct {
	Name string `json:"name" jsonschema:"Profile name"`
}

// SetProfileArgs contains parameters for set_wireless_security_profile
type SetProfileArgs struct {
	InterfaceName   string `json:"interface_name" jsonschema:"Wireless interface"`
	SecurityProfile string `json:"security_profile" jsonschema:"Profile to assign"`
}

// CreateAccessListArgs contains parameters for create_wireless_access_list
type CreateAccessListArgs struct {
	MACAddress     string `json:"mac_address,omitempty" jsonschema:"Client MAC address, any client when omitted"`
	Interface      string `json:"interface,omitempty" jsonschema:"Wireless interface, all when omitted"`
	Authentication *bool  `json:"authentication,omitempty" jsonschema:"Allow the client to authenticate (default true)"`
	Forwarding     *bool  `json:"forwarding,omitempty" jsonschema:"Allow client to client forwarding (default true)"`
	SignalRange    string `json:"signal_range,omitempty" jsonschema:"Accepted signal range, e.g. -79..120"`
	Comment        string `json:"comment,omitempty" jsonschema:"Free-form comment"`
}

// ListAccessListArgs contains parameters for list_wireless_access_list
type ListAccessListArgs struct {
	Interface string `json:"interface,omitempty" jsonschema:"Only entries for this interface"`
}

// AccessListEntryArgs addresses one access list entry
type AccessListEntryArgs struct {
	EntryID string `json:"entry_id" jsonschema:"RouterOS row id, e.g. *1"`
}
