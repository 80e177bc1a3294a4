// Package wireguard manages /interface wireguard and its peers. Interfaces
// are addressed by name, peers by row id. Key material passes through the
// executor's log redaction.
package wireguard

import (
	"context"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

var (
	wgIface = routeros.Entity{
		Path:      "/interface wireguard",
		Noun:      "WireGuard interface",
		Title:     "WIREGUARD INTERFACE",
		Plural:    "WIREGUARD INTERFACES",
		Verb:      "create",
		EmptyList: "No WireGuard interfaces found.",
	}
	wgPeer = routeros.Entity{
		Path:      "/interface wireguard peers",
		Noun:      "WireGuard peer",
		Title:     "WIREGUARD PEER",
		Plural:    "WIREGUARD PEERS",
		EmptyList: "No WireGuard peers found.",
	}
)

// Service exposes the WireGuard tools.
type Service struct {
	run routeros.Runner
}

// NewService returns a Service that sends commands through r.
func NewService(r routeros.Runner) *Service {
	return &Service{run: r}
}

// CreateInterfaceMCP creates a WireGuard interface.
func (s *Service) CreateInterfaceMCP(ctx context.Context, args CreateInterfaceArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	if err := validateKey("private_key", args.PrivateKey); err != nil {
		return "", err
	}
	add := wgIface.Add().
		Ident("name", args.Name).
		OptInt("listen-port", args.ListenPort).
		OptQuoted("private-key", args.PrivateKey).
		OptInt("mtu", args.MTU).
		OptQuoted("comment", args.Comment).
		YesIf("disabled", args.Disabled)
	return wgIface.Create(ctx, s.run, add, routeros.NewWhere().Eq("name", args.Name)), nil
}

// ListInterfacesMCP lists WireGuard interfaces.
func (s *Service) ListInterfacesMCP(ctx context.Context, args ListInterfacesArgs) (string, error) {
	where := routeros.NewWhere().
		Match("name", args.NameFilter).
		Yes("disabled", args.DisabledOnly).
		Yes("running", args.RunningOnly)
	return wgIface.List(ctx, s.run, where), nil
}

// GetInterfaceMCP shows one interface.
func (s *Service) GetInterfaceMCP(ctx context.Context, args InterfaceArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return wgIface.Get(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// UpdateInterfaceMCP changes an interface, re-reading it under its new name
// after a rename.
func (s *Service) UpdateInterfaceMCP(ctx context.Context, args UpdateInterfaceArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	if err := validateKeyPtr("private_key", args.PrivateKey); err != nil {
		return "", err
	}
	ref := routeros.ByKey("name", args.Name)
	set := wgIface.Set(ref).
		Field("name", routeros.NonEmptyIdent(args.NewName)).
		Field("listen-port", routeros.IntValue(args.ListenPort)).
		Field("private-key", routeros.NonEmptyQuoted(args.PrivateKey)).
		Field("mtu", routeros.IntValue(args.MTU)).
		Field("comment", routeros.QuotedText(args.Comment)).
		Field("disabled", routeros.BoolValue(args.Disabled))

	refetch := ref
	if args.NewName != nil && *args.NewName != "" {
		refetch = routeros.ByKey("name", *args.NewName)
	}
	return wgIface.Update(ctx, s.run, set, refetch), nil
}

// RemoveInterfaceMCP removes an interface.
func (s *Service) RemoveInterfaceMCP(ctx context.Context, args InterfaceArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return wgIface.Remove(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// EnableInterfaceMCP enables an interface.
func (s *Service) EnableInterfaceMCP(ctx context.Context, args InterfaceArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return wgIface.Enable(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// DisableInterfaceMCP disables an interface.
func (s *Service) DisableInterfaceMCP(ctx context.Context, args InterfaceArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return wgIface.Disable(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// AddPeerMCP adds a peer. A silent add is verified by interface and public
// key, which together identify a peer.
func (s *Service) AddPeerMCP(ctx context.Context, args AddPeerArgs) (string, error) {
	if err := validatePeer(args); err != nil {
		return "", err
	}
	add := wgPeer.Add().
		Quoted("interface", args.Interface).
		Quoted("public-key", args.PublicKey).
		Quoted("allowed-address", args.AllowedAddress).
		OptQuoted("endpoint-address", args.EndpointAddress).
		OptInt("endpoint-port", args.EndpointPort).
		OptQuoted("preshared-key", args.PresharedKey).
		OptIdent("persistent-keepalive", args.PersistentKeepalive).
		OptQuoted("comment", args.Comment).
		YesIf("disabled", args.Disabled)
	lookup := routeros.NewWhere().
		Eq("interface", args.Interface).
		Eq("public-key", args.PublicKey)
	return wgPeer.Create(ctx, s.run, add, lookup), nil
}

// ListPeersMCP lists peers.
func (s *Service) ListPeersMCP(ctx context.Context, args ListPeersArgs) (string, error) {
	where := routeros.NewWhere().
		Eq("interface", args.InterfaceFilter).
		Yes("disabled", args.DisabledOnly)
	return wgPeer.List(ctx, s.run, where), nil
}

// GetPeerMCP shows one peer.
func (s *Service) GetPeerMCP(ctx context.Context, args PeerArgs) (string, error) {
	if err := routeros.ValidateID("peer_id", args.PeerID); err != nil {
		return "", err
	}
	return wgPeer.Get(ctx, s.run, routeros.ByID(args.PeerID)), nil
}

// UpdatePeerMCP changes a peer.
func (s *Service) UpdatePeerMCP(ctx context.Context, args UpdatePeerArgs) (string, error) {
	if err := routeros.ValidateID("peer_id", args.PeerID); err != nil {
		return "", err
	}
	if err := validateKeyPtr("preshared_key", args.PresharedKey); err != nil {
		return "", err
	}
	ref := routeros.ByID(args.PeerID)
	set := wgPeer.Set(ref).
		Field("allowed-address", routeros.QuotedText(args.AllowedAddress)).
		Field("endpoint-address", routeros.QuotedOrClear(args.EndpointAddress)).
		Field("endpoint-port", routeros.IntValue(args.EndpointPort)).
		Field("preshared-key", routeros.QuotedOrClear(args.PresharedKey)).
		Field("persistent-keepalive", routeros.NonEmptyIdent(args.PersistentKeepalive)).
		Field("comment", routeros.QuotedText(args.Comment)).
		Field("disabled", routeros.BoolValue(args.Disabled))
	return wgPeer.Update(ctx, s.run, set, ref), nil
}

// RemovePeerMCP removes a peer.
func (s *Service) RemovePeerMCP(ctx context.Context, args PeerArgs) (string, error) {
	if err := routeros.ValidateID("peer_id", args.PeerID); err != nil {
		return "", err
	}
	return wgPeer.Remove(ctx, s.run, routeros.ByID(args.PeerID)), nil
}

// EnablePeerMCP enables a peer.
func (s *Service) EnablePeerMCP(ctx context.Context, args PeerArgs) (string, error) {
	if err := routeros.ValidateID("peer_id", args.PeerID); err != nil {
		return "", err
	}
	return wgPeer.Enable(ctx, s.run, routeros.ByID(args.PeerID)), nil
}

// DisablePeerMCP disables a peer.
func (s *Service) DisablePeerMCP(ctx context.Context, args PeerArgs) (string, error) {
	if err := routeros.ValidateID("peer_id", args.PeerID); err != nil {
		return "", err
	}
	return wgPeer.Disable(ctx, s.run, routeros.ByID(args.PeerID)), nil
}
