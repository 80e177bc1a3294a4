package wireless

import (
	"context"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

// Guidance returned by the legacy tools on RouterOS v7 drivers, where
// security lives on the interface itself and access control moved elsewhere.
const (
	profilesConfigureV7 = "Security profiles are not used in RouterOS v7.x. Configure security directly on the wireless interface."
	profilesListV7      = "Security profiles are not used in RouterOS v7.x. Security is configured directly on wireless interfaces."
	profilesGetV7       = "Security profiles are not used in RouterOS v7.x. Check security configuration on wireless interfaces directly."
	accessCreateV7      = "Access lists are configured differently in RouterOS v7.x. Use firewall rules or other access control methods."
	accessListV7        = "Access lists are configured differently in RouterOS v7.x. Check firewall rules or other access control configurations."
	accessRemoveV7      = "Access lists are configured differently in RouterOS v7.x."
)

func profiles(menu string) routeros.Entity {
	return routeros.Entity{
		Path:      menu + " security-profiles",
		Noun:      "security profile",
		Title:     "SECURITY PROFILE",
		Plural:    "SECURITY PROFILES",
		Verb:      "create",
		EmptyList: "No security profiles found.",
	}
}

func accessList(menu string) routeros.Entity {
	return routeros.Entity{
		Path:      menu + " access-list",
		Noun:      "access list entry",
		Title:     "ACCESS LIST ENTRY",
		Plural:    "WIRELESS ACCESS LIST",
		Verb:      "create",
		EmptyList: "No access list entries found.",
	}
}

// legacyMenu detects the driver and returns it when it is a legacy one.
// Otherwise reply holds the text to return: the v7 guidance or a detection
// failure.
func (s *Service) legacyMenu(ctx context.Context, v7 string) (menu, reply string) {
	menu, failure := s.detect(ctx)
	switch {
	case failure != "":
		return "", failure
	case !isLegacy(menu):
		return "", v7
	default:
		return menu, ""
	}
}

// CreateProfileMCP creates a legacy security profile.
func (s *Service) CreateProfileMCP(ctx context.Context, args CreateProfileArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	if err := routeros.ValidateOneOf("mode", args.Mode, profileModes...); err != nil {
		return "", err
	}
	menu, reply := s.legacyMenu(ctx, profilesConfigureV7)
	if reply != "" {
		return reply, nil
	}
	p := profiles(menu)
	add := p.Add().
		Ident("name", args.Name).
		OptIdent("mode", args.Mode).
		OptIdent("authentication-types", args.AuthenticationTypes).
		OptIdent("unicast-ciphers", args.UnicastCiphers).
		OptIdent("group-ciphers", args.GroupCiphers).
		OptQuoted("wpa-pre-shared-key", args.WPAPreSharedKey).
		OptQuoted("wpa2-pre-shared-key", args.WPA2PreSharedKey).
		OptQuoted("comment", args.Comment)
	return p.Create(ctx, s.run, add, routeros.NewWhere().Eq("name", args.Name)), nil
}

// ListProfilesMCP lists legacy security profiles.
func (s *Service) ListProfilesMCP(ctx context.Context, args ListProfilesArgs) (string, error) {
	menu, reply := s.legacyMenu(ctx, profilesListV7)
	if reply != "" {
		return reply, nil
	}
	return profiles(menu).List(ctx, s.run, routeros.NewWhere().Match("name", args.NameFilter)), nil
}

// GetProfileMCP shows one legacy security profile.
func (s *Service) GetProfileMCP(ctx context.Context, args ProfileArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	menu, reply := s.legacyMenu(ctx, profilesGetV7)
	if reply != "" {
		return reply, nil
	}
	return profiles(menu).Get(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// RemoveProfileMCP removes a legacy security profile.
func (s *Service) RemoveProfileMCP(ctx context.Context, args ProfileArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	menu, reply := s.legacyMenu(ctx, profilesListV7)
	if reply != "" {
		return reply, nil
	}
	return profiles(menu).Remove(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// SetProfileMCP assigns a security profile to a legacy interface.
func (s *Service) SetProfileMCP(ctx context.Context, args SetProfileArgs) (string, error) {
	if err := routeros.ValidateRequired("interface_name", args.InterfaceName); err != nil {
		return "", err
	}
	if err := routeros.ValidateRequired("security_profile", args.SecurityProfile); err != nil {
		return "", err
	}
	menu, reply := s.legacyMenu(ctx, profilesConfigureV7)
	if reply != "" {
		return reply, nil
	}
	iface := interfaces(menu)
	ref := routeros.ByKey("name", args.InterfaceName)
	set := iface.Set(ref).Ident("security-profile", args.SecurityProfile)
	return iface.Update(ctx, s.run, set, ref), nil
}

// CreateAccessListMCP adds a legacy access list entry.
func (s *Service) CreateAccessListMCP(ctx context.Context, args CreateAccessListArgs) (string, error) {
	if err := validateMAC(args.MACAddress); err != nil {
		return "", err
	}
	menu, reply := s.legacyMenu(ctx, accessCreateV7)
	if reply != "" {
		return reply, nil
	}
	acl := accessList(menu)
	add := acl.Add().
		OptIdent("mac-address", args.MACAddress).
		OptIdent("interface", args.Interface)
	if args.Authentication != nil {
		add.Bool("authentication", *args.Authentication)
	}
	if args.Forwarding != nil {
		add.Bool("forwarding", *args.Forwarding)
	}
	add.OptIdent("signal-range", args.SignalRange).
		OptQuoted("comment", args.Comment)

	lookup := routeros.NewWhere().
		Eq("mac-address", args.MACAddress).
		Eq("interface", args.Interface).
		Eq("comment", args.Comment)
	return acl.Create(ctx, s.run, add, lookup), nil
}

// ListAccessListMCP lists legacy access list entries.
func (s *Service) ListAccessListMCP(ctx context.Context, args ListAccessListArgs) (string, error) {
	menu, reply := s.legacyMenu(ctx, accessListV7)
	if reply != "" {
		return reply, nil
	}
	return accessList(menu).List(ctx, s.run, routeros.NewWhere().Eq("interface", args.Interface)), nil
}

// RemoveAccessListEntryMCP removes a legacy access list entry.
func (s *Service) RemoveAccessListEntryMCP(ctx context.Context, args AccessListEntryArgs) (string, error) {
	if err := routeros.ValidateID("entry_id", args.EntryID); err != nil {
		return "", err
	}
	menu, reply := s.legacyMenu(ctx, accessRemoveV7)
	if reply != "" {
		return reply, nil
	}
	return accessList(menu).Remove(ctx, s.run, routeros.ByID(args.EntryID)), nil
}
