// Package ipaddr manages interface addresses under /ip address. Entries can
// be addressed by row id or by their address value.
package ipaddr

import (
	"context"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

var address = routeros.Entity{
	Path:      "/ip address",
	Noun:      "IP address",
	Title:     "IP ADDRESS",
	Plural:    "IP ADDRESSES",
	EmptyList: "No IP addresses found matching the criteria.",
}

// Service exposes the IP address tools.
type Service struct {
	run routeros.Runner
}

// NewService returns a Service that sends commands through r.
func NewService(r routeros.Runner) *Service {
	return &Service{run: r}
}

// AddMCP assigns an address to an interface.
func (s *Service) AddMCP(ctx context.Context, args AddArgs) (string, error) {
	if err := validateAddress("address", args.Address); err != nil {
		return "", err
	}
	if err := routeros.ValidateRequired("interface", args.Interface); err != nil {
		return "", err
	}
	add := address.Add().
		Ident("address", args.Address).
		Ident("interface", args.Interface).
		OptIdent("network", args.Network).
		OptIdent("broadcast", args.Broadcast).
		OptQuoted("comment", args.Comment).
		YesIf("disabled", args.Disabled)
	return address.Create(ctx, s.run, add, routeros.NewWhere().Eq("address", args.Address)), nil
}

// ListMCP lists addresses.
func (s *Service) ListMCP(ctx context.Context, args ListArgs) (string, error) {
	where := routeros.NewWhere().
		Eq("interface", args.InterfaceFilter).
		Match("address", args.AddressFilter).
		Eq("network", args.NetworkFilter).
		Yes("disabled", args.DisabledOnly).
		Yes("dynamic", args.DynamicOnly)
	return address.List(ctx, s.run, where), nil
}

// GetMCP shows one address, looked up by row id and then by address value.
func (s *Service) GetMCP(ctx context.Context, args AddressArgs) (string, error) {
	if err := routeros.ValidateRequired("address_id", args.AddressID); err != nil {
		return "", err
	}
	for _, ref := range refs(args.AddressID) {
		out := s.run.Run(ctx, address.Print().Flag("detail").Where(ref.Predicate()).String())
		if !routeros.IsBlank(out) {
			return address.Title + " DETAILS:\n\n" + out, nil
		}
	}
	return address.NotFound(routeros.ByKey("address", args.AddressID)), nil
}

// RemoveMCP removes an address, looked up by row id and then by address value.
func (s *Service) RemoveMCP(ctx context.Context, args AddressArgs) (string, error) {
	if err := routeros.ValidateRequired("address_id", args.AddressID); err != nil {
		return "", err
	}
	byValue := routeros.ByKey("address", args.AddressID)
	for _, ref := range refs(args.AddressID) {
		count := s.run.Run(ctx, address.Print().Flag("count-only").Where(ref.Predicate()).String())
		if routeros.CountIsZero(count) {
			continue
		}
		out := s.run.Run(ctx, routeros.NewCommand(address.Path, "remove").Target(ref).String())
		if routeros.IsFailure(out) {
			return "Failed to remove " + address.Noun + ": " + out, nil
		}
		return address.Removed(byValue), nil
	}
	return address.NotFound(byValue), nil
}

// UpdateMCP changes an address entry.
func (s *Service) UpdateMCP(ctx context.Context, args UpdateArgs) (string, error) {
	if err := routeros.ValidateRequired("address_id", args.AddressID); err != nil {
		return "", err
	}
	if args.Address != nil && *args.Address != "" {
		if err := validateAddress("address", *args.Address); err != nil {
			return "", err
		}
	}
	ref := refs(args.AddressID)[0]
	set := address.Set(ref).
		Field("address", routeros.NonEmptyIdent(args.Address)).
		Field("interface", routeros.NonEmptyIdent(args.Interface)).
		Field("network", routeros.IdentOrClear(args.Network)).
		Field("broadcast", routeros.IdentOrClear(args.Broadcast)).
		Field("comment", routeros.QuotedText(args.Comment)).
		Field("disabled", routeros.BoolValue(args.Disabled))

	refetch := ref
	if !ref.IsID() && args.Address != nil && *args.Address != "" {
		refetch = routeros.ByKey("address", *args.Address)
	}
	return address.Update(ctx, s.run, set, refetch), nil
}

// EnableMCP enables an address entry.
func (s *Service) EnableMCP(ctx context.Context, args AddressArgs) (string, error) {
	if err := routeros.ValidateRequired("address_id", args.AddressID); err != nil {
		return "", err
	}
	return address.Enable(ctx, s.run, refs(args.AddressID)[0]), nil
}

// DisableMCP disables an address entry.
func (s *Service) DisableMCP(ctx context.Context, args AddressArgs) (string, error) {
	if err := routeros.ValidateRequired("address_id", args.AddressID); err != nil {
		return "", err
	}
	return address.Disable(ctx, s.run, refs(args.AddressID)[0]), nil
}
