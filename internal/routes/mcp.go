// Package routes manages the IPv4 routing table under /ip route.
package routes

import (
	"context"
	"strings"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

var route = routeros.Entity{
	Path:      "/ip route",
	Noun:      "route",
	Title:     "ROUTE",
	Plural:    "ROUTES",
	EmptyList: "No routes found matching the criteria.",
}

// Service exposes the routing tools.
type Service struct {
	run routeros.Runner
}

// NewService returns a Service that sends commands through r.
func NewService(r routeros.Runner) *Service {
	return &Service{run: r}
}

// AddRouteMCP adds a route and shows it.
func (s *Service) AddRouteMCP(ctx context.Context, args AddRouteArgs) (string, error) {
	if err := validateAdd(args); err != nil {
		return "", err
	}
	add := route.Add().
		Ident("dst-address", args.DstAddress).
		Ident("gateway", args.Gateway).
		OptInt("distance", args.Distance).
		OptInt("scope", args.Scope).
		OptInt("target-scope", args.TargetScope).
		OptQuoted("routing-mark", args.RoutingMark).
		OptQuoted("comment", args.Comment).
		YesIf("disabled", args.Disabled).
		OptQuoted("vrf-interface", args.VRFInterface).
		OptIdent("pref-src", args.PrefSrc).
		OptIdent("check-gateway", args.CheckGateway)
	lookup := routeros.NewWhereAnd().
		Eq("dst-address", args.DstAddress).
		Eq("gateway", args.Gateway)
	return route.Create(ctx, s.run, add, lookup), nil
}

// ListRoutesMCP lists routes matching the filters.
func (s *Service) ListRoutesMCP(ctx context.Context, args ListRoutesArgs) (string, error) {
	where := routeros.NewWhere().
		Match("dst-address", args.DstFilter).
		Match("gateway", args.GatewayFilter).
		Eq("routing-mark", args.RoutingMarkFilter).
		EqInt("distance", args.DistanceFilter).
		Yes("active", args.ActiveOnly).
		Yes("disabled", args.DisabledOnly).
		Yes("dynamic", args.DynamicOnly).
		Yes("static", args.StaticOnly)
	return route.List(ctx, s.run, where), nil
}

// GetRouteMCP shows one route.
func (s *Service) GetRouteMCP(ctx context.Context, args RouteArgs) (string, error) {
	if err := routeros.ValidateID("route_id", args.RouteID); err != nil {
		return "", err
	}
	return route.Get(ctx, s.run, routeros.ByID(args.RouteID)), nil
}

// UpdateRouteMCP changes a route.
func (s *Service) UpdateRouteMCP(ctx context.Context, args UpdateRouteArgs) (string, error) {
	if err := validateUpdate(args); err != nil {
		return "", err
	}
	ref := routeros.ByID(args.RouteID)
	set := route.Set(ref).
		Field("dst-address", routeros.NonEmptyIdent(args.DstAddress)).
		Field("gateway", routeros.NonEmptyIdent(args.Gateway)).
		Field("distance", routeros.IntValue(args.Distance)).
		Field("scope", routeros.IntValue(args.Scope)).
		Field("target-scope", routeros.IntValue(args.TargetScope)).
		Field("routing-mark", routeros.QuotedOrClear(args.RoutingMark)).
		Field("comment", routeros.QuotedText(args.Comment)).
		Field("disabled", routeros.BoolValue(args.Disabled)).
		Field("vrf-interface", routeros.QuotedOrClear(args.VRFInterface)).
		Field("pref-src", routeros.IdentOrClear(args.PrefSrc)).
		Field("check-gateway", routeros.NonEmptyIdent(args.CheckGateway))
	return route.Update(ctx, s.run, set, ref), nil
}

// RemoveRouteMCP removes a route.
func (s *Service) RemoveRouteMCP(ctx context.Context, args RouteArgs) (string, error) {
	if err := routeros.ValidateID("route_id", args.RouteID); err != nil {
		return "", err
	}
	return route.Remove(ctx, s.run, routeros.ByID(args.RouteID)), nil
}

// EnableRouteMCP enables a route.
func (s *Service) EnableRouteMCP(ctx context.Context, args RouteArgs) (string, error) {
	if err := routeros.ValidateID("route_id", args.RouteID); err != nil {
		return "", err
	}
	return route.Enable(ctx, s.run, routeros.ByID(args.RouteID)), nil
}

// DisableRouteMCP disables a route.
func (s *Service) DisableRouteMCP(ctx context.Context, args RouteArgs) (string, error) {
	if err := routeros.ValidateID("route_id", args.RouteID); err != nil {
		return "", err
	}
	return route.Disable(ctx, s.run, routeros.ByID(args.RouteID)), nil
}

// GetRoutingTableMCP prints one routing table. The main table is the default
// view of /ip route print and gets no table filter.
func (s *Service) GetRoutingTableMCP(ctx context.Context, args RoutingTableArgs) (string, error) {
	table := args.TableName
	if table == "" {
		table = "main"
	}
	where := routeros.NewWhere()
	if table != "main" {
		where.Eq("routing-table", table)
	}
	where.Eq("protocol", args.ProtocolFilter).
		Yes("active", args.ActiveOnly == nil || *args.ActiveOnly)

	out := s.run.Run(ctx, route.Print().Where(where).String())
	if routeros.IsBlank(out) {
		return "No routes found in table '" + table + "'.", nil
	}
	return "ROUTING TABLE (" + table + "):\n\n" + out, nil
}

// CheckRoutePathMCP asks the device which route a destination would take.
func (s *Service) CheckRoutePathMCP(ctx context.Context, args CheckPathArgs) (string, error) {
	if err := routeros.ValidateRequired("destination", args.Destination); err != nil {
		return "", err
	}
	cmd := routeros.NewCommand("/ip route", "check").
		Positional(args.Destination).
		OptIdent("src-address", args.Source).
		OptQuoted("routing-mark", args.RoutingMark)

	out := s.run.Run(ctx, cmd.String())
	if out == "" {
		return "Unable to check route to " + args.Destination, nil
	}
	return "ROUTE PATH TO " + args.Destination + ":\n\n" + out, nil
}

// GetRouteCacheMCP prints the route cache.
func (s *Service) GetRouteCacheMCP(ctx context.Context, _ CacheArgs) (string, error) {
	out := s.run.Run(ctx, "/ip route cache print")
	if routeros.IsBlank(out) {
		return "Route cache is empty.", nil
	}
	return "ROUTE CACHE:\n\n" + out, nil
}

// FlushRouteCacheMCP empties the route cache.
func (s *Service) FlushRouteCacheMCP(ctx context.Context, _ CacheArgs) (string, error) {
	out := s.run.Run(ctx, "/ip route cache flush")
	if routeros.IsBlank(out) {
		return "Route cache flushed successfully.", nil
	}
	return "Flush result: " + out, nil
}

// AddDefaultRouteMCP adds 0.0.0.0/0 through gateway.
func (s *Service) AddDefaultRouteMCP(ctx context.Context, args DefaultRouteArgs) (string, error) {
	distance := 1
	if args.Distance != nil {
		distance = *args.Distance
	}
	comment := args.Comment
	if comment == "" {
		comment = "Default route"
	}
	check := args.CheckGateway
	if check == "" {
		check = "ping"
	}
	return s.AddRouteMCP(ctx, AddRouteArgs{
		DstAddress:   "0.0.0.0/0",
		Gateway:      args.Gateway,
		Distance:     &distance,
		Comment:      comment,
		CheckGateway: check,
	})
}

// AddBlackholeRouteMCP adds a route that silently drops matching traffic.
func (s *Service) AddBlackholeRouteMCP(ctx context.Context, args BlackholeArgs) (string, error) {
	if err := routeros.ValidateRequired("dst_address", args.DstAddress); err != nil {
		return "", err
	}
	distance := 1
	if args.Distance != nil {
		distance = *args.Distance
	}
	cmd := route.Add().
		Ident("dst-address", args.DstAddress).
		Ident("type", "blackhole").
		Int("distance", distance).
		OptQuoted("comment", args.Comment)

	out := s.run.Run(ctx, cmd.String())
	if routeros.IsBlank(out) {
		return "Blackhole route added successfully.", nil
	}
	if _, ok := routeros.RowID(out); ok {
		return "Blackhole route added successfully. ID: " + out, nil
	}
	return "Failed to add blackhole route: " + out, nil
}

var statisticProbes = []struct {
	label string
	where string
}{
	{"Total routes", ""},
	{"Active routes", "active"},
	{"Dynamic routes", "dynamic"},
	{"Static routes", "static"},
	{"Disabled routes", "disabled"},
}

// GetRouteStatisticsMCP counts routes by state, one probe per line.
func (s *Service) GetRouteStatisticsMCP(ctx context.Context, _ StatisticsArgs) (string, error) {
	lines := make([]string, 0, len(statisticProbes))
	for _, p := range statisticProbes {
		where := routeros.NewWhere().Yes(p.where, p.where != "")
		count := s.run.Run(ctx, route.Print().Flag("count-only").Where(where).String())
		lines = append(lines, p.label+": "+strings.TrimSpace(count))
	}
	return "ROUTE STATISTICS:\n\n" + strings.Join(lines, "\n"), nil
}
