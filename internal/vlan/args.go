package vlan

// CreateArgs contains parameters for create_vlan_interface
type CreateArgs struct {
	Name          string `json:"name" jsonschema:"Name of the VLAN interface"`
	VLANID        int    `json:"vlan_id" jsonschema:"VLAN ID (1-4094)"`
	Interface     string `json:"interface" jsonschema:"Parent interface, e.g. ether1 or bridge1"`
	Comment       string `json:"comment,omitempty" jsonschema:"Free-form comment"`
	Disabled      bool   `json:"disabled,omitempty" jsonschema:"Create the interface disabled"`
	MTU           *int   `json:"mtu,omitempty" jsonschema:"MTU in bytes"`
	UseServiceTag bool   `json:"use_service_tag,omitempty" jsonschema:"Use the 802.1ad service tag (QinQ)"`
	ARP           string `json:"arp,omitempty" jsonschema:"ARP mode: enabled (default), disabled, proxy-arp or reply-only"`
	ARPTimeout    string `json:"arp_timeout,omitempty" jsonschema:"ARP timeout, e.g. 30s"`
}

// ListArgs contains parameters for list_vlan_interfaces
type ListArgs struct {
	NameFilter      string `json:"name_filter,omitempty" jsonschema:"Partial match on name"`
	VLANIDFilter    *int   `json:"vlan_id_filter,omitempty" jsonschema:"Exact VLAN ID"`
	InterfaceFilter string `json:"interface_filter,omitempty" jsonschema:"Exact parent interface"`
	DisabledOnly    bool   `json:"disabled_only,omitempty" jsonschema:"Only disabled interfaces"`
}

// NameArgs addresses one VLAN interface by name
type NameArgs struct {
	Name string `json:"name" jsonschema:"Name of the VLAN interface"`
}

// UpdateArgs contains parameters for update_vlan_interface
type UpdateArgs struct {
	Name          string  `json:"name" jsonschema:"Current name of the VLAN interface"`
	NewName       *string `json:"new_name,omitempty" jsonschema:"New name"`
	VLANID        *int    `json:"vlan_id,omitempty" jsonschema:"New VLAN ID (1-4094)"`
	Interface     *string `json:"interface,omitempty" jsonschema:"New parent interface"`
	Comment       *string `json:"comment,omitempty" jsonschema:"New comment"`
	Disabled      *bool   `json:"disabled,omitempty" jsonschema:"Disable or enable the interface"`
	MTU           *int    `json:"mtu,omitempty" jsonschema:"New MTU"`
	UseServiceTag *bool   `json:"use_service_tag,omitempty" jsonschema:"Use the 802.1ad service tag"`
	ARP           *string `json:"arp,omitempty" jsonschema:"New ARP mode"`
	ARPTimeout    *string `json:"arp_timeout,omitempty" jsonschema:"New ARP timeout"`
}
