// Package wireless manages wireless interfaces on whichever driver the device
// runs: /interface wifi or wifiwave2 on RouterOS v7, /interface wireless or
// wlan on older releases. The driver is detected on every call.
package wireless

import (
	"context"
	"fmt"
	"strings"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

// Service exposes the wireless tools.
type Service struct {
	run routeros.Runner
}

// NewService returns a Service that sends commands through r.
func NewService(r routeros.Runner) *Service {
	return &Service{run: r}
}

// CreateMCP creates a wireless interface on the detected driver. Legacy
// drivers need a radio and take the radio settings; v7 drivers take only
// name, SSID, comment and state.
func (s *Service) CreateMCP(ctx context.Context, args CreateArgs) (string, error) {
	if err := validateCreate(args); err != nil {
		return "", err
	}
	menu, failure := s.detect(ctx)
	if failure != "" {
		return failure, nil
	}

	add := routeros.NewCommand(menu, "add").Ident("name", args.Name)
	if isLegacy(menu) {
		if args.RadioName == "" {
			return "Error: radio_name is required for legacy wireless systems. Please specify the radio interface (e.g., 'wlan1').", nil
		}
		mode := args.Mode
		if mode == "" {
			mode = "ap-bridge"
		}
		add.Ident("radio-name", args.RadioName).Ident("mode", mode)
	}
	add.OptQuoted("ssid", args.SSID).
		YesIf("disabled", args.Disabled).
		OptQuoted("comment", args.Comment)
	if isLegacy(menu) {
		add.OptIdent("frequency", args.Frequency).
			OptIdent("band", args.Band).
			OptIdent("channel-width", args.ChannelWidth).
			OptIdent("security-profile", args.SecurityProfile)
	}

	out := s.run.Run(ctx, add.String())
	if routeros.IsFailure(out) {
		return "Failed to create wireless interface: " + out, nil
	}

	ref := routeros.ByKey("name", args.Name)
	details := s.run.Run(ctx, interfaces(menu).Print().Flag("detail").Where(ref.Predicate()).String())
	return "Wireless interface created successfully using " + menu + ":\n\n" + details, nil
}

// ListMCP lists wireless interfaces on every driver that answers, so a device
// running both wifi and a legacy package shows all of them. When nothing is
// found the full interface list is returned to help spot misnamed drivers.
func (s *Service) ListMCP(ctx context.Context, args ListArgs) (string, error) {
	where := routeros.NewWhereAnd().
		Match("name", args.NameFilter).
		Yes("disabled", args.DisabledOnly).
		Yes("running", args.RunningOnly)

	var sections, working []string
	for _, m := range menus {
		out := s.run.Run(ctx, routeros.NewCommand(m, "print").Where(where).String())
		if routeros.IsExecutorError(out) {
			return out, nil
		}
		if rejected(out) {
			continue
		}
		working = append(working, m)
		if routeros.IsEmptyListing(out) {
			continue
		}
		sections = append(sections, "=== "+strings.ToUpper(m)+" ===\n"+out)
	}
	if len(sections) > 0 {
		return "WIRELESS INTERFACES:\n\n" + strings.Join(sections, "\n\n"), nil
	}

	all := s.run.Run(ctx, "/interface print")
	detected := "None detected"
	if len(working) > 0 {
		detected = strings.Join(working, ", ")
	}
	return fmt.Sprintf(`No wireless interfaces found matching the criteria.

DEBUGGING INFO:
Working interface types: %s

ALL INTERFACES ON DEVICE:
%s

NOTE: If you see wireless interfaces above, they might be using a different command structure.`, detected, all), nil
}

// GetMCP shows one wireless interface.
func (s *Service) GetMCP(ctx context.Context, args NameArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	menu, failure := s.detect(ctx)
	if failure != "" {
		return failure, nil
	}
	return interfaces(menu).Get(ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// UpdateMCP changes a wireless interface after checking that it exists.
func (s *Service) UpdateMCP(ctx context.Context, args UpdateArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	menu, failure := s.detect(ctx)
	if failure != "" {
		return failure, nil
	}
	iface := interfaces(menu)
	ref := routeros.ByKey("name", args.Name)

	count := s.run.Run(ctx, iface.Print().Flag("count-only").Where(ref.Predicate()).String())
	if routeros.CountIsZero(count) {
		return iface.NotFound(ref), nil
	}

	set := iface.Set(ref).
		Field("name", routeros.NonEmptyIdent(args.NewName)).
		Field("ssid", routeros.NonEmptyQuoted(args.SSID)).
		Field("disabled", routeros.BoolValue(args.Disabled)).
		Field("comment", routeros.QuotedText(args.Comment))

	refetch := ref
	if args.NewName != nil && *args.NewName != "" {
		refetch = routeros.ByKey("name", *args.NewName)
	}
	return iface.Update(ctx, s.run, set, refetch), nil
}

// RemoveMCP removes a wireless interface.
func (s *Service) RemoveMCP(ctx context.Context, args NameArgs) (string, error) {
	return s.byName(ctx, args, routeros.Entity.Remove)
}

// EnableMCP enables a wireless interface.
func (s *Service) EnableMCP(ctx context.Context, args NameArgs) (string, error) {
	return s.byName(ctx, args, routeros.Entity.Enable)
}

// DisableMCP disables a wireless interface.
func (s *Service) DisableMCP(ctx context.Context, args NameArgs) (string, error) {
	return s.byName(ctx, args, routeros.Entity.Disable)
}

type rowOp func(routeros.Entity, context.Context, routeros.Runner, routeros.Ref) string

func (s *Service) byName(ctx context.Context, args NameArgs, op rowOp) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	menu, failure := s.detect(ctx)
	if failure != "" {
		return failure, nil
	}
	return op(interfaces(menu), ctx, s.run, routeros.ByKey("name", args.Name)), nil
}

// ScanMCP runs a site survey on one interface.
func (s *Service) ScanMCP(ctx context.Context, args ScanArgs) (string, error) {
	if err := routeros.ValidateRequired("interface", args.Interface); err != nil {
		return "", err
	}
	if err := routeros.ValidateRange("duration", args.Duration, 1, maxScanSeconds); err != nil {
		return "", err
	}
	duration := defaultScanSeconds
	if args.Duration != nil {
		duration = *args.Duration
	}
	menu, failure := s.detect(ctx)
	if failure != "" {
		return failure, nil
	}

	cmd := routeros.NewCommand(menu, "scan").
		Positional(args.Interface).
		Int("duration", duration)
	out := s.run.Run(ctx, cmd.String())
	if routeros.IsFailure(out) {
		return "Failed to scan wireless networks: " + out, nil
	}
	return "WIRELESS NETWORK SCAN RESULTS:\n\n" + out, nil
}

// RegistrationTableMCP lists connected wireless clients.
func (s *Service) RegistrationTableMCP(ctx context.Context, args RegistrationArgs) (string, error) {
	menu, failure := s.detect(ctx)
	if failure != "" {
		return failure, nil
	}
	cmd := routeros.NewCommand(menu+" registration-table", "print").
		Where(routeros.NewWhere().Eq("interface", args.Interface))
	out := s.run.Run(ctx, cmd.String())
	if routeros.IsBlank(out) {
		return "No wireless clients registered.", nil
	}
	return "WIRELESS REGISTRATION TABLE:\n\n" + out, nil
}

// CheckSupportMCP reports version, packages, interfaces and the detected
// wireless driver.
func (s *Service) CheckSupportMCP(ctx context.Context, _ SupportArgs) (string, error) {
	version := s.run.Run(ctx, "/system resource print")
	packages := s.run.Run(ctx, "/system package print")
	ifaces := s.run.Run(ctx, "/interface print")

	detected := "None detected"
	if menu, failure := s.detect(ctx); failure == "" {
		detected = menu
	}

	return fmt.Sprintf(`WIRELESS SUPPORT CHECK:

RouterOS Version:
%s

Installed Packages:
%s

Available Interfaces:
%s

Detected Wireless Interface Type: %s

Compatibility Notes:
- RouterOS v7.x uses '/interface wifi' (newest system)
- RouterOS v7.x also supports '/interface wifiwave2' (alternative)
- RouterOS v6.x uses '/interface wireless' (legacy system)
- Older versions may use '/interface wlan'

USAGE EXAMPLES:
For RouterOS v7.x:
  create_wireless_interface(name="wlan1", ssid="MyNetwork")

For legacy systems:
  create_wireless_interface(name="wlan1", radio_name="wlan1", ssid="MyNetwork")
`, version, packages, ifaces, detected), nil
}
