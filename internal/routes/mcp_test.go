package routes

import (
	"context"
	"testing"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros/routerostest"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestAddRouteMCP(t *testing.T) {
	tests := []struct {
		name    string
		outputs []string
		want    []string
		result  string
	}{
		{
			name:    "silent add verified by lookup",
			outputs: []string{"", " 0 A S dst-address=10.10.0.0/16 gateway=192.168.88.2"},
			want: []string{
				`/ip route add dst-address=10.10.0.0/16 gateway=192.168.88.2 distance=2 comment="branch office"`,
				`/ip route print detail where dst-address="10.10.0.0/16" and gateway="192.168.88.2"`,
			},
			result: "Route added successfully:\n\n 0 A S dst-address=10.10.0.0/16 gateway=192.168.88.2",
		},
		{
			name:    "id printed",
			outputs: []string{"*7", ""},
			want: []string{
				`/ip route add dst-address=10.10.0.0/16 gateway=192.168.88.2 distance=2 comment="branch office"`,
				`/ip route print detail where .id=*7`,
			},
			result: "Route added with ID: *7",
		},
		{
			name:    "device failure",
			outputs: []string{"failure: gateway unreachable"},
			want: []string{
				`/ip route add dst-address=10.10.0.0/16 gateway=192.168.88.2 distance=2 comment="branch office"`,
			},
			result: "Failed to add route: failure: gateway unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New(tt.outputs...)
			got, err := NewService(r).AddRouteMCP(context.Background(), AddRouteArgs{
				DstAddress: "10.10.0.0/16",
				Gateway:    "192.168.88.2",
				Distance:   intPtr(2),
				Comment:    "branch office",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			r.ExpectCommands(t, tt.want...)
			if got != tt.result {
				t.Errorf("result = %q, want %q", got, tt.result)
			}
		})
	}
}

func TestAddRouteMCP_Validation(t *testing.T) {
	tests := []struct {
		name string
		args AddRouteArgs
	}{
		{"missing destination", AddRouteArgs{Gateway: "ether1"}},
		{"missing gateway", AddRouteArgs{DstAddress: "10.0.0.0/8"}},
		{"bad check mode", AddRouteArgs{DstAddress: "10.0.0.0/8", Gateway: "ether1", CheckGateway: "icmp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New()
			if _, err := NewService(r).AddRouteMCP(context.Background(), tt.args); !apierrors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			r.ExpectNone(t)
		})
	}
}

func TestListRoutesMCP(t *testing.T) {
	tests := []struct {
		name string
		args ListRoutesArgs
		want string
	}{
		{"no filters", ListRoutesArgs{}, "/ip route print"},
		{
			name: "all filters",
			args: ListRoutesArgs{
				DstFilter:         "10.",
				GatewayFilter:     "ether",
				RoutingMarkFilter: "vpn",
				DistanceFilter:    intPtr(1),
				ActiveOnly:        true,
				StaticOnly:        true,
			},
			want: `/ip route print where dst-address~"10." gateway~"ether" routing-mark="vpn" distance=1 active=yes static=yes`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New("no such item")
			got, _ := NewService(r).ListRoutesMCP(context.Background(), tt.args)
			r.ExpectCommands(t, tt.want)
			if got != "No routes found matching the criteria." {
				t.Errorf("result = %q", got)
			}
		})
	}
}

func TestUpdateRouteMCP(t *testing.T) {
	r := routerostest.New("", " 0 dst-address=10.0.0.0/8")
	got, err := NewService(r).UpdateRouteMCP(context.Background(), UpdateRouteArgs{
		RouteID:      "*A",
		Gateway:      strPtr("10.1.1.1"),
		RoutingMark:  strPtr(""),
		PrefSrc:      strPtr(""),
		VRFInterface: strPtr("vrf-blue"),
		Disabled:     boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.ExpectCommands(t,
		`/ip route set *A gateway=10.1.1.1 !routing-mark disabled=no vrf-interface="vrf-blue" !pref-src`,
		"/ip route print detail where .id=*A",
	)
	if got != "Route updated successfully:\n\n 0 dst-address=10.0.0.0/8" {
		t.Errorf("result = %q", got)
	}
}

func TestUpdateRouteMCP_Empty(t *testing.T) {
	r := routerostest.New()
	got, _ := NewService(r).UpdateRouteMCP(context.Background(), UpdateRouteArgs{RouteID: "*A", DstAddress: strPtr("")})
	if got != "No updates specified." {
		t.Errorf("result = %q", got)
	}
	r.ExpectNone(t)
}

func TestRemoveRouteMCP_NotFound(t *testing.T) {
	r := routerostest.New("0")
	got, _ := NewService(r).RemoveRouteMCP(context.Background(), RouteArgs{RouteID: "*99"})
	r.ExpectCommands(t, "/ip route print count-only where .id=*99")
	if got != "Route with ID '*99' not found." {
		t.Errorf("result = %q", got)
	}
}

func TestEnableDisableRouteMCP(t *testing.T) {
	r := routerostest.New()
	svc := NewService(r)
	ctx := context.Background()
	_, _ = svc.EnableRouteMCP(ctx, RouteArgs{RouteID: "*3"})
	_, _ = svc.DisableRouteMCP(ctx, RouteArgs{RouteID: "*3"})
	r.ExpectCommands(t,
		"/ip route set *3 disabled=no",
		"/ip route print detail where .id=*3",
		"/ip route set *3 disabled=yes",
		"/ip route print detail where .id=*3",
	)
}

func TestGetRoutingTableMCP(t *testing.T) {
	tests := []struct {
		name   string
		args   RoutingTableArgs
		want   string
		result string
	}{
		{"main defaults", RoutingTableArgs{}, "/ip route print where active=yes", "ROUTING TABLE (main):\n\nrows"},
		{"main all routes", RoutingTableArgs{TableName: "main", ActiveOnly: boolPtr(false)}, "/ip route print", "ROUTING TABLE (main):\n\nrows"},
		{
			"named table with protocol",
			RoutingTableArgs{TableName: "vpn", ProtocolFilter: "bgp"},
			`/ip route print where routing-table="vpn" protocol="bgp" active=yes`,
			"ROUTING TABLE (vpn):\n\nrows",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New("rows")
			got, _ := NewService(r).GetRoutingTableMCP(context.Background(), tt.args)
			r.ExpectCommands(t, tt.want)
			if got != tt.result {
				t.Errorf("result = %q, want %q", got, tt.result)
			}
		})
	}

	r := routerostest.New("")
	if got, _ := NewService(r).GetRoutingTableMCP(context.Background(), RoutingTableArgs{TableName: "vpn"}); got != "No routes found in table 'vpn'." {
		t.Errorf("empty result = %q", got)
	}
}

func TestCheckRoutePathMCP(t *testing.T) {
	r := routerostest.New("status: ok")
	got, _ := NewService(r).CheckRoutePathMCP(context.Background(), CheckPathArgs{
		Destination: "8.8.8.8",
		Source:      "192.168.88.1",
		RoutingMark: "vpn",
	})
	r.ExpectCommands(t, `/ip route check 8.8.8.8 src-address=192.168.88.1 routing-mark="vpn"`)
	if got != "ROUTE PATH TO 8.8.8.8:\n\nstatus: ok" {
		t.Errorf("result = %q", got)
	}
}

func TestRouteCacheMCP(t *testing.T) {
	ctx := context.Background()

	r := routerostest.New("")
	if got, _ := NewService(r).GetRouteCacheMCP(ctx, CacheArgs{}); got != "Route cache is empty." {
		t.Errorf("GetRouteCacheMCP = %q", got)
	}

	r = routerostest.New("bad command name cache")
	if got, _ := NewService(r).FlushRouteCacheMCP(ctx, CacheArgs{}); got != "Flush result: bad command name cache" {
		t.Errorf("FlushRouteCacheMCP = %q", got)
	}
	r.ExpectCommands(t, "/ip route cache flush")
}

func TestAddDefaultRouteMCP(t *testing.T) {
	r := routerostest.New("*1", "detail")
	if _, err := NewService(r).AddDefaultRouteMCP(context.Background(), DefaultRouteArgs{Gateway: "192.168.1.1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `/ip route add dst-address=0.0.0.0/0 gateway=192.168.1.1 distance=1 comment="Default route" check-gateway=ping`
	if got := r.Commands()[0]; got != want {
		t.Errorf("command = %s\nwant      %s", got, want)
	}
}

func TestAddBlackholeRouteMCP(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"", "Blackhole route added successfully."},
		{"*2", "Blackhole route added successfully. ID: *2"},
		{"failure: already have such route", "Failed to add blackhole route: failure: already have such route"},
	}
	for _, tt := range tests {
		r := routerostest.New(tt.out)
		got, _ := NewService(r).AddBlackholeRouteMCP(context.Background(), BlackholeArgs{DstAddress: "203.0.113.0/24", Comment: "bogons"})
		r.ExpectCommands(t, `/ip route add dst-address=203.0.113.0/24 type=blackhole distance=1 comment="bogons"`)
		if got != tt.want {
			t.Errorf("out %q: result = %q, want %q", tt.out, got, tt.want)
		}
	}
}

func TestGetRouteStatisticsMCP(t *testing.T) {
	r := routerostest.New("12\n", "10", "4", "8", "0")
	got, _ := NewService(r).GetRouteStatisticsMCP(context.Background(), StatisticsArgs{})
	r.ExpectCommands(t,
		"/ip route print count-only",
		"/ip route print count-only where active=yes",
		"/ip route print count-only where dynamic=yes",
		"/ip route print count-only where static=yes",
		"/ip route print count-only where disabled=yes",
	)
	want := "ROUTE STATISTICS:\n\nTotal routes: 12\nActive routes: 10\nDynamic routes: 4\nStatic routes: 8\nDisabled routes: 0"
	if got != want {
		t.Errorf("result = %q", got)
	}
}
