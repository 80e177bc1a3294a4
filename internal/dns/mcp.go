// Package dns manages the RouterOS resolver: /ip dns settings, static
// entries and the cache.
package dns

import (
	"context"
	"strings"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

var static = routeros.Entity{
	Path:      "/ip dns static",
	Noun:      "static DNS entry",
	Title:     "STATIC DNS ENTRY",
	Plural:    "STATIC DNS ENTRIES",
	EmptyList: "No static DNS entries found matching the criteria.",
}

// Service exposes the DNS tools.
type Service struct {
	run routeros.Runner
}

// NewService returns a Service that sends commands through r.
func NewService(r routeros.Runner) *Service {
	return &Service{run: r}
}

// SetServersMCP sets the upstream servers and resolver options.
func (s *Service) SetServersMCP(ctx context.Context, args SetServersArgs) (string, error) {
	if err := validateServers(args.Servers); err != nil {
		return "", err
	}

	servers := make([]string, len(args.Servers))
	for i, srv := range args.Servers {
		servers[i] = strings.TrimSpace(srv)
	}

	cmd := routeros.NewCommand("/ip dns", "set").
		Ident("servers", strings.Join(servers, ",")).
		Bool("allow-remote-requests", args.AllowRemoteRequests).
		OptInt("max-udp-packet-size", args.MaxUDPPacketSize).
		OptInt("max-concurrent-queries", args.MaxConcurrentQueries).
		OptInt("cache-size", args.CacheSize).
		OptIdent("cache-max-ttl", args.CacheMaxTTL)

	if args.UseDoH && args.DoHServer != "" {
		verify := args.VerifyDoHCert == nil || *args.VerifyDoHCert
		cmd.Quoted("use-doh-server", args.DoHServer).Bool("verify-doh-cert", verify)
	}

	out := s.run.Run(ctx, cmd.String())
	if routeros.IsFailure(out) {
		return "Failed to update DNS settings: " + out, nil
	}

	details := s.run.Run(ctx, "/ip dns print")
	return "DNS settings updated successfully:\n\n" + details, nil
}

// GetSettingsMCP prints the resolver configuration.
func (s *Service) GetSettingsMCP(ctx context.Context, _ GetSettingsArgs) (string, error) {
	out := s.run.Run(ctx, "/ip dns print")
	if routeros.IsBlank(out) {
		return "Unable to retrieve DNS settings.", nil
	}
	return "DNS SETTINGS:\n\n" + out, nil
}

// AddStaticMCP adds a static entry.
func (s *Service) AddStaticMCP(ctx context.Context, args AddStaticArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	return static.Create(ctx, s.run, addStaticCommand(args), routeros.NewWhere().Eq("name", args.Name)), nil
}

func addStaticCommand(args AddStaticArgs) *routeros.Command {
	cmd := static.Add().
		Quoted("name", args.Name).
		OptIdent("address", args.Address).
		OptQuoted("cname", args.CNAME)

	if args.MXPreference != nil && args.MXExchange != "" {
		cmd.Int("mx-preference", *args.MXPreference).Quoted("mx-exchange", args.MXExchange)
	}

	cmd.OptQuoted("text", args.Text)

	if args.SRVPriority != nil && args.SRVWeight != nil && args.SRVPort != nil && args.SRVTarget != "" {
		cmd.Int("srv-priority", *args.SRVPriority).
			Int("srv-weight", *args.SRVWeight).
			Int("srv-port", *args.SRVPort).
			Quoted("srv-target", args.SRVTarget)
	}

	return cmd.
		OptIdent("ttl", args.TTL).
		OptQuoted("comment", args.Comment).
		YesIf("disabled", args.Disabled).
		OptQuoted("regexp", args.Regexp)
}

// ListStaticMCP lists static entries.
func (s *Service) ListStaticMCP(ctx context.Context, args ListStaticArgs) (string, error) {
	where := routeros.NewWhere().
		Match("name", args.NameFilter).
		Match("address", args.AddressFilter).
		Eq("type", args.TypeFilter).
		Yes("disabled", args.DisabledOnly)
	if args.RegexpOnly {
		where.Expr(`regexp!=""`)
	}
	return static.List(ctx, s.run, where), nil
}

// GetStaticMCP shows one static entry.
func (s *Service) GetStaticMCP(ctx context.Context, args EntryArgs) (string, error) {
	if err := routeros.ValidateID("entry_id", args.EntryID); err != nil {
		return "", err
	}
	return static.Get(ctx, s.run, routeros.ByID(args.EntryID)), nil
}

// UpdateStaticMCP changes a static entry.
func (s *Service) UpdateStaticMCP(ctx context.Context, args UpdateStaticArgs) (string, error) {
	if err := routeros.ValidateID("entry_id", args.EntryID); err != nil {
		return "", err
	}
	ref := routeros.ByID(args.EntryID)
	set := static.Set(ref).
		Field("name", routeros.NonEmptyQuoted(args.Name)).
		Field("address", routeros.IdentOrClear(args.Address)).
		Field("cname", routeros.QuotedOrClear(args.CNAME)).
		Field("mx-preference", routeros.IntValue(args.MXPreference)).
		Field("mx-exchange", routeros.QuotedOrClear(args.MXExchange)).
		Field("text", routeros.QuotedOrClear(args.Text)).
		Field("srv-priority", routeros.IntValue(args.SRVPriority)).
		Field("srv-weight", routeros.IntValue(args.SRVWeight)).
		Field("srv-port", routeros.IntValue(args.SRVPort)).
		Field("srv-target", routeros.QuotedOrClear(args.SRVTarget)).
		Field("ttl", routeros.IdentOrClear(args.TTL)).
		Field("comment", routeros.QuotedText(args.Comment)).
		Field("disabled", routeros.BoolValue(args.Disabled)).
		Field("regexp", routeros.QuotedOrClear(args.Regexp))
	return static.Update(ctx, s.run, set, ref), nil
}

// RemoveStaticMCP removes a static entry.
func (s *Service) RemoveStaticMCP(ctx context.Context, args EntryArgs) (string, error) {
	if err := routeros.ValidateID("entry_id", args.EntryID); err != nil {
		return "", err
	}
	return static.Remove(ctx, s.run, routeros.ByID(args.EntryID)), nil
}

// EnableStaticMCP enables a static entry.
func (s *Service) EnableStaticMCP(ctx context.Context, args EntryArgs) (string, error) {
	if err := routeros.ValidateID("entry_id", args.EntryID); err != nil {
		return "", err
	}
	return static.Enable(ctx, s.run, routeros.ByID(args.EntryID)), nil
}

// DisableStaticMCP disables a static entry.
func (s *Service) DisableStaticMCP(ctx context.Context, args EntryArgs) (string, error) {
	if err := routeros.ValidateID("entry_id", args.EntryID); err != nil {
		return "", err
	}
	return static.Disable(ctx, s.run, routeros.ByID(args.EntryID)), nil
}

// GetCacheMCP prints the resolver cache.
func (s *Service) GetCacheMCP(ctx context.Context, _ CacheArgs) (string, error) {
	out := s.run.Run(ctx, "/ip dns cache print")
	if routeros.IsBlank(out) {
		return "DNS cache is empty.", nil
	}
	return "DNS CACHE:\n\n" + out, nil
}

// FlushCacheMCP empties the resolver cache.
func (s *Service) FlushCacheMCP(ctx context.Context, _ CacheArgs) (string, error) {
	out := s.run.Run(ctx, "/ip dns cache flush")
	if routeros.IsBlank(out) {
		return "DNS cache flushed successfully.", nil
	}
	return "Flush result: " + out, nil
}

// GetCacheStatisticsMCP prints cache statistics.
func (s *Service) GetCacheStatisticsMCP(ctx context.Context, _ CacheArgs) (string, error) {
	out := s.run.Run(ctx, "/ip dns cache print stats")
	if routeros.IsBlank(out) {
		return "Unable to retrieve DNS cache statistics.", nil
	}
	return "DNS CACHE STATISTICS:\n\n" + out, nil
}

// AddRegexpMCP adds a static entry matched by regular expression. RouterOS
// still wants a name, so the entry is created as "dummy".
func (s *Service) AddRegexpMCP(ctx context.Context, args AddRegexpArgs) (string, error) {
	if err := routeros.ValidateRequired("regexp", args.Regexp); err != nil {
		return "", err
	}
	if err := routeros.ValidateRequired("address", args.Address); err != nil {
		return "", err
	}
	ttl := args.TTL
	if ttl == "" {
		ttl = "1d"
	}
	return s.AddStaticMCP(ctx, AddStaticArgs{
		Name:     "dummy",
		Address:  args.Address,
		Regexp:   args.Regexp,
		TTL:      ttl,
		Comment:  args.Comment,
		Disabled: args.Disabled,
	})
}

// TestQueryMCP resolves a name on the device.
func (s *Service) TestQueryMCP(ctx context.Context, args TestQueryArgs) (string, error) {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return "", err
	}
	cmd := routeros.NewCommand("/resolve", "").
		Positional(args.Name).
		OptIdent("server", args.Server)
	if args.Type != "" && args.Type != "A" {
		cmd.Ident("type", args.Type)
	}

	out := s.run.Run(ctx, cmd.String())
	if routeros.IsBlank(out) {
		return "Failed to resolve " + args.Name, nil
	}
	return "DNS QUERY RESULT for " + args.Name + ":\n\n" + out, nil
}

// ExportConfigMCP writes the DNS configuration to an .rsc file on the device.
func (s *Service) ExportConfigMCP(ctx context.Context, args ExportConfigArgs) (string, error) {
	filename := args.Filename
	if filename == "" {
		filename = "dns_config"
	}
	out := s.run.Run(ctx, routeros.NewCommand("/ip dns", "export").Ident("file", filename).String())
	if routeros.IsBlank(out) {
		return "DNS configuration exported to " + filename + ".rsc", nil
	}
	return "Export result: " + out, nil
}
