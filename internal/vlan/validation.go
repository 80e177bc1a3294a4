package vlan

import "github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"

const (
	minVLANID = 1
	maxVLANID = 4094
)

var arpModes = []string{"enabled", "disabled", "proxy-arp", "reply-only"}

func validateCreate(args CreateArgs) error {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return err
	}
	if err := routeros.ValidateRequired("interface", args.Interface); err != nil {
		return err
	}
	if err := routeros.ValidateRange("vlan_id", &args.VLANID, minVLANID, maxVLANID); err != nil {
		return err
	}
	return routeros.ValidateOneOf("arp", args.ARP, arpModes...)
}

func validateUpdate(args UpdateArgs) error {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return err
	}
	if err := routeros.ValidateRange("vlan_id", args.VLANID, minVLANID, maxVLANID); err != nil {
		return err
	}
	if args.ARP != nil {
		return routeros.ValidateOneOf("arp", *args.ARP, arpModes...)
	}
	return nil
}
