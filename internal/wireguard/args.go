package wireguard

// CreateInterfaceArgs contains parameters for create_wireguard_interface
type CreateInterfaceArgs struct {
	Name       string `json:"name" jsonschema:"Interface name, e.g. wg0"`
	ListenPort *int   `json:"listen_port,omitempty" jsonschema:"UDP listen port (device default 13231)"`
	PrivateKey string `json:"private_key,omitempty" jsonschema:"Base64 private key, generated by the device when omitted"`
	MTU        *int   `json:"mtu,omitempty" jsonschema:"MTU (device default 1420)"`
	Comment    string `json:"comment,omitempty" jsonschema:"Free-form comment"`
	Disabled   bool   `json:"disabled,omitempty" jsonschema:"Create the interface disabled"`
}

// ListInterfacesArgs contains parameters for list_wireguard_interfaces
type ListInterfacesArgs struct {
	NameFilter   string `json:"name_filter,omitempty" jsonschema:"Partial match on name"`
	DisabledOnly bool   `json:"disabled_only,omitempty" jsonschema:"Only disabled interfaces"`
	RunningOnly  bool   `json:"running_only,omitempty" jsonschema:"Only running interfaces"`
}

// InterfaceArgs addresses one interface by name
type InterfaceArgs struct {
	Name string `json:"name" jsonschema:"Interface name"`
}

// UpdateInterfaceArgs contains parameters for update_wireguard_interface
type UpdateInterfaceArgs struct {
	Name       string  `json:"name" jsonschema:"Current interface name"`
	NewName    *string `json:"new_name,omitempty" jsonschema:"New interface name"`
	ListenPort *int    `json:"listen_port,omitempty" jsonschema:"New UDP listen port"`
	PrivateKey *string `json:"private_key,omitempty" jsonschema:"New base64 private key"`
	MTU        *int    `json:"mtu,omitempty" jsonschema:"New MTU"`
	Comment    *string `json:"comment,omitempty" jsonschema:"New comment"`
	Disabled   *bool   `json:"disabled,omitempty" jsonschema:"Disable or enable the interface"`
}

// AddPeerArgs contains parameters for add_wireguard_peer
type AddPeerArgs struct {
	Interface           string `json:"interface" jsonschema:"WireGuard interface the peer belongs to"`
	PublicKey           string `json:"public_key" jsonschema:"Base64 public key of the remote peer"`
	AllowedAddress      string `json:"allowed_address" jsonschema:"Comma separated allowed prefixes, e.g. 10.0.0.2/32"`
	EndpointAddress     string `json:"endpoint_address,omitempty" jsonschema:"Remote peer address or host name"`
	EndpointPort        *int   `json:"endpoint_port,omitempty" jsonschema:"Remote peer UDP port"`
	PresharedKey        string `json:"preshared_key,omitempty" jsonschema:"Base64 preshared key"`
	PersistentKeepalive string `json:"persistent_keepalive,omitempty" jsonschema:"Keepalive interval, e.g. 25s"`
	Comment             string `json:"comment,omitempty" jsonschema:"Free-form comment"`
	Disabled            bool   `json:"disabled,omitempty" jsonschema:"Create the peer disabled"`
}

// ListPeersArgs contains parameters for list_wireguard_peers
type ListPeersArgs struct {
	InterfaceFilter string `json:"interface_filter,omitempty" jsonschema:"Exact interface name"`
	DisabledOnly    bool   `json:"disabled_only,omitempty" jsonschema:"Only disabled peers"`
}

// PeerArgs addresses one peer by row id
type PeerArgs struct {
	PeerID string `json:"peer_id" jsonschema:"RouterOS row id, e.g. *1"`
}

// UpdatePeerArgs contains parameters for update_wireguard_peer
type UpdatePeerArgs struct {
	PeerID              string  `json:"peer_id" jsonschema:"RouterOS row id, e.g. *1"`
	AllowedAddress      *string `json:"allowed_address,omitempty" jsonschema:"New comma separated allowed prefixes"`
	EndpointAddress     *string `json:"endpoint_address,omitempty" jsonschema:"New endpoint address, empty string clears it"`
	EndpointPort        *int    `json:"endpoint_port,omitempty" jsonschema:"New endpoint port"`
	PresharedKey        *string `json:"preshared_key,omitempty" jsonschema:"New preshared key, empty string removes it"`
	PersistentKeepalive *string `json:"persistent_keepalive,omitempty" jsonschema:"New keepalive interval, 0s disables it"`
	Comment             *string `json:"comment,omitempty" jsonschema:"New comment"`
	Disabled            *bool   `json:"disabled,omitempty" jsonschema:"Disable or enable the peer"`
}
