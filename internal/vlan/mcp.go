// Package vlan manages 802.1Q interfaces under /interface vlan. Interfaces
// are addressed by name.
package vlan

import (
	"context"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

var vlanIface = routeros.Entity{
	Path:      "/interface vlan",
	Noun:      "VLAN interface",
	Title:     "VLAN INTERFACE",
	Plural:    "VLAN INTERFACES",
	Verb:      "create",
	EmptyList: "No VLAN interfaces found matching the criteria.",
}

// Service exposes the VLAN tools.
type Service struct {
	run routeros.Runner
}

// NewService returns a Service that sends commands through r.
func NewService(r routeros.Runner) *Service {
	return &Service{run: r}
}

// CreateMCP creates a VLAN interface on a parent interface.
func (s *Service) CreateMCP(ctx context.Context, args CreateArgs) (string, error) {
	if err := validateCreate(args); err != nil {
		return "", err
	}
	add := vlanIface.Add().
		Ident("name", args.Name).
		Int("vlan-id", args.VLANID).
		Ident("interface", args.Interface).
		OptQuoted("comment", args.Comment).
		YesIf("disabled", args.Disabled).
		OptInt("mtu", args.MTU).
		YesIf("use-service-tag", args.UseServiceTag)
	if args.ARP != "" && args.ARP != "enabled" {
		add.Ident("arp", args.ARP)
	}
	add.OptIdent("arp-timeout", args.ARPTimeout)

	return vlanIface.Create(ctx, s.run, add, routeros.NewWhere().Eq("name", args.Name)), nil
}

// ListMCP lists VLAN interfaces.
func (s *Service) ListMCP(ctx context.Context, args ListArgs) (string, error) {
	where := routeros.NewWhere().
		Match("name", args.NameFilter).
		EqInt("vlan-id", args.VLANIDFilter).
		Eq("interface", args.InterfaceFilter).
		Yes("disabled", args.DisabledOnly)
	return vlanIface.List(ctx, s.run, where), nil
}

// GetMCP shows one VLAN interface.
func (s *Service) GetMCP(ctx context.Context, args NameArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return vlanIface.Get(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// UpdateMCP changes a VLAN interface. After a rename the interface is
// re-read under its new name.
func (s *Service) UpdateMCP(ctx context.Context, args UpdateArgs) (string, error) {
	if err := validateUpdate(args); err != nil {
		return "", err
	}
	ref := routeros.ByKey("name", args.Name)
	set := vlanIface.Set(ref).
		Field("name", routeros.NonEmptyIdent(args.NewName)).
		Field("vlan-id", routeros.IntValue(args.VLANID)).
		Field("interface", routeros.NonEmptyIdent(args.Interface)).
		Field("comment", routeros.QuotedText(args.Comment)).
		Field("disabled", routeros.BoolValue(args.Disabled)).
		Field("mtu", routeros.IntValue(args.MTU)).
		Field("use-service-tag", routeros.BoolValue(args.UseServiceTag)).
		Field("arp", routeros.NonEmptyIdent(args.ARP)).
		Field("arp-timeout", routeros.NonEmptyIdent(args.ARPTimeout))

	refetch := ref
	if args.NewName != nil && *args.NewName != "" {
		refetch = routeros.ByKey("name", *args.NewName)
	}
	return vlanIface.Update(ctx, s.run, set, refetch), nil
}

// RemoveMCP removes a VLAN interface.
func (s *Service) RemoveMCP(ctx context.Context, args NameArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return vlanIface.Remove(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// EnableMCP enables a VLAN interface.
func (s *Service) EnableMCP(ctx context.Context, args NameArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return vlanIface.Enable(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// DisableMCP disables a VLAN interface.
func (s *Service) DisableMCP(ctx context.Context, args NameArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return vlanIface.Disable(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}
