package ipaddr

// AddArgs contains parameters for add_ip_address
type AddArgs struct {
	Address   string `json:"address" jsonschema:"Address with prefix length, e.g. 192.168.1.1/24"`
	Interface string `json:"interface" jsonschema:"Interface name, e.g. ether1 or vlan100"`
	Network   string `json:"network,omitempty" jsonschema:"Network address (derived by the device when omitted)"`
	Broadcast string `json:"broadcast,omitempty" jsonschema:"Broadcast address (derived by the device when omitted)"`
	Comment   string `json:"comment,omitempty" jsonschema:"Free-form comment"`
	Disabled  bool   `json:"disabled,omitempty" jsonschema:"Create the address disabled"`
}

// ListArgs contains parameters for list_ip_addresses
type ListArgs struct {
	InterfaceFilter string `json:"interface_filter,omitempty" jsonschema:"Exact interface name"`
	AddressFilter   string `json:"address_filter,omitempty" jsonschema:"Partial match on address"`
	NetworkFilter   string `json:"network_filter,omitempty" jsonschema:"Exact network address"`
	DisabledOnly    bool   `json:"disabled_only,omitempty" jsonschema:"Only disabled addresses"`
	DynamicOnly     bool   `json:"dynamic_only,omitempty" jsonschema:"Only dynamic addresses"`
}

// AddressArgs addresses one entry by row id or by address value
type AddressArgs struct {
	AddressID string `json:"address_id" jsonschema:"RouterOS row id such as *3, or the address value"`
}

// UpdateArgs contains parameters for update_ip_address
type UpdateArgs struct {
	AddressID string  `json:"address_id" jsonschema:"RouterOS row id such as *3, or the address value"`
	Address   *string `json:"address,omitempty" jsonschema:"New address with prefix length"`
	Interface *string `json:"interface,omitempty" jsonschema:"New interface"`
	Network   *string `json:"network,omitempty" jsonschema:"New network, empty string lets the device derive it"`
	Broadcast *string `json:"broadcast,omitempty" jsonschema:"New broadcast, empty string lets the device derive it"`
	Comment   *string `json:"comment,omitempty" jsonschema:"New comment"`
	Disabled  *bool   `json:"disabled,omitempty" jsonschema:"Disable or enable the address"`
}
