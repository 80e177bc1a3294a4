package dns

import (
	"context"
	"strings"
	"testing"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros/routerostest"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestSetServersMCP(t *testing.T) {
	r := routerostest.New("", "servers: 1.1.1.1,9.9.9.9")
	svc := NewService(r)

	got, err := svc.SetServersMCP(context.Background(), SetServersArgs{
		Servers:     []string{"1.1.1.1", " 9.9.9.9"},
		CacheSize:   intPtr(4096),
		UseDoH:      true,
		DoHServer:   "https://cloudflare-dns.com/dns-query",
		CacheMaxTTL: "1w",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.ExpectCommands(t,
		`/ip dns set servers=1.1.1.1,9.9.9.9 allow-remote-requests=no cache-size=4096 cache-max-ttl=1w use-doh-server="https://cloudflare-dns.com/dns-query" verify-doh-cert=yes`,
		"/ip dns print",
	)
	if !strings.HasPrefix(got, "DNS settings updated successfully:\n\n") {
		t.Errorf("result = %q", got)
	}
}

func TestSetServersMCP_DoHWithoutServerIgnored(t *testing.T) {
	r := routerostest.New("", "")
	svc := NewService(r)

	_, _ = svc.SetServersMCP(context.Background(), SetServersArgs{
		Servers:             []string{"8.8.8.8"},
		AllowRemoteRequests: true,
		UseDoH:              true,
		VerifyDoHCert:       boolPtr(false),
	})
	if got := r.Commands()[0]; got != "/ip dns set servers=8.8.8.8 allow-remote-requests=yes" {
		t.Errorf("command = %s", got)
	}
}

func TestSetServersMCP_Failure(t *testing.T) {
	r := routerostest.New("failure: invalid value for argument servers")
	got, _ := NewService(r).SetServersMCP(context.Background(), SetServersArgs{Servers: []string{"8.8.8.8"}})
	if got != "Failed to update DNS settings: failure: invalid value for argument servers" {
		t.Errorf("result = %q", got)
	}
	if len(r.Commands()) != 1 {
		t.Error("settings fetched after failure")
	}
}

func TestSetServersMCP_Validation(t *testing.T) {
	tests := []struct {
		name    string
		servers []string
	}{
		{"empty", nil},
		{"not an address", []string{"dns.google"}},
		{"injection", []string{"1.1.1.1 allow-remote-requests=yes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New()
			_, err := NewService(r).SetServersMCP(context.Background(), SetServersArgs{Servers: tt.servers})
			if !apierrors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			r.ExpectNone(t)
		})
	}
}

func TestAddStaticMCP(t *testing.T) {
	tests := []struct {
		name string
		args AddStaticArgs
		want string
	}{
		{
			name: "address only",
			args: AddStaticArgs{Name: "nas.lan", Address: "192.168.88.10"},
			want: `/ip dns static add name="nas.lan" address=192.168.88.10`,
		},
		{
			name: "mx pair requires both halves",
			args: AddStaticArgs{Name: "example.lan", MXPreference: intPtr(10)},
			want: `/ip dns static add name="example.lan"`,
		},
		{
			name: "mx record",
			args: AddStaticArgs{Name: "example.lan", MXPreference: intPtr(10), MXExchange: "mail.example.lan"},
			want: `/ip dns static add name="example.lan" mx-preference=10 mx-exchange="mail.example.lan"`,
		},
		{
			name: "srv record",
			args: AddStaticArgs{Name: "_sip._udp.lan", SRVPriority: intPtr(1), SRVWeight: intPtr(5), SRVPort: intPtr(5060), SRVTarget: "pbx.lan"},
			want: `/ip dns static add name="_sip._udp.lan" srv-priority=1 srv-weight=5 srv-port=5060 srv-target="pbx.lan"`,
		},
		{
			name: "all flags",
			args: AddStaticArgs{Name: "tv.lan", CNAME: "media.lan", TTL: "1h", Comment: "living room", Disabled: true},
			want: `/ip dns static add name="tv.lan" cname="media.lan" ttl=1h comment="living room" disabled=yes`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New("", " 0 name=x")
			if _, err := NewService(r).AddStaticMCP(context.Background(), tt.args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.Commands()[0]; got != tt.want {
				t.Errorf("command = %s\nwant      %s", got, tt.want)
			}
			if got := r.Commands()[1]; got != `/ip dns static print detail where name="`+tt.args.Name+`"` {
				t.Errorf("lookup = %s", got)
			}
		})
	}
}

func TestAddStaticMCP_AlreadyExists(t *testing.T) {
	r := routerostest.New("failure: entry already exists")
	got, _ := NewService(r).AddStaticMCP(context.Background(), AddStaticArgs{Name: "nas.lan", Address: "10.0.0.1"})
	if got != "Failed to add static DNS entry: failure: entry already exists" {
		t.Errorf("result = %q", got)
	}
}

func TestListStaticMCP(t *testing.T) {
	r := routerostest.New("")
	got, _ := NewService(r).ListStaticMCP(context.Background(), ListStaticArgs{
		NameFilter: "lan",
		TypeFilter: "A",
		RegexpOnly: true,
	})
	if want := `/ip dns static print where name~"lan" type="A" regexp!=""`; r.Last() != want {
		t.Errorf("command = %s, want %s", r.Last(), want)
	}
	if got != "No static DNS entries found matching the criteria." {
		t.Errorf("result = %q", got)
	}
}

func TestUpdateStaticMCP(t *testing.T) {
	r := routerostest.New("", " 0 name=nas.lan")
	_, err := NewService(r).UpdateStaticMCP(context.Background(), UpdateStaticArgs{
		EntryID: "*3",
		Address: strPtr(""),
		TTL:     strPtr("5m"),
		Comment: strPtr(""),
		Regexp:  strPtr(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.ExpectCommands(t,
		`/ip dns static set *3 !address ttl=5m comment="" !regexp`,
		"/ip dns static print detail where .id=*3",
	)
}

func TestUpdateStaticMCP_NoFields(t *testing.T) {
	r := routerostest.New()
	got, err := NewService(r).UpdateStaticMCP(context.Background(), UpdateStaticArgs{EntryID: "*3", Name: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "No updates specified." {
		t.Errorf("result = %q", got)
	}
	r.ExpectNone(t)
}

func TestEntryTools_RejectBadID(t *testing.T) {
	svc := NewService(routerostest.New())
	ctx := context.Background()
	bad := EntryArgs{EntryID: "*1 ; /system reboot"}

	calls := map[string]func() (string, error){
		"get":     func() (string, error) { return svc.GetStaticMCP(ctx, bad) },
		"remove":  func() (string, error) { return svc.RemoveStaticMCP(ctx, bad) },
		"enable":  func() (string, error) { return svc.EnableStaticMCP(ctx, bad) },
		"disable": func() (string, error) { return svc.DisableStaticMCP(ctx, bad) },
	}
	for name, call := range calls {
		if _, err := call(); !apierrors.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestEnableDisableStaticMCP(t *testing.T) {
	r := routerostest.New("", " 0 name=x", "", " 0 X name=x")
	svc := NewService(r)
	ctx := context.Background()

	if _, err := svc.EnableStaticMCP(ctx, EntryArgs{EntryID: "*2"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.DisableStaticMCP(ctx, EntryArgs{EntryID: "*2"}); err != nil {
		t.Fatal(err)
	}
	r.ExpectCommands(t,
		"/ip dns static set *2 disabled=no",
		"/ip dns static print detail where .id=*2",
		"/ip dns static set *2 disabled=yes",
		"/ip dns static print detail where .id=*2",
	)
}

func TestRemoveStaticMCP(t *testing.T) {
	r := routerostest.New("1", "")
	got, _ := NewService(r).RemoveStaticMCP(context.Background(), EntryArgs{EntryID: "*4"})
	r.ExpectCommands(t,
		"/ip dns static print count-only where .id=*4",
		"/ip dns static remove *4",
	)
	if got != "Static DNS entry with ID '*4' removed successfully." {
		t.Errorf("result = %q", got)
	}
}

func TestCacheTools(t *testing.T) {
	ctx := context.Background()

	r := routerostest.New("")
	svc := NewService(r)
	if got, _ := svc.GetCacheMCP(ctx, CacheArgs{}); got != "DNS cache is empty." {
		t.Errorf("GetCacheMCP = %q", got)
	}

	r = routerostest.New("")
	if got, _ := NewService(r).FlushCacheMCP(ctx, CacheArgs{}); got != "DNS cache flushed successfully." {
		t.Errorf("FlushCacheMCP = %q", got)
	}
	r.ExpectCommands(t, "/ip dns cache flush")

	r = routerostest.New("cache-used: 12KiB")
	if got, _ := NewService(r).GetCacheStatisticsMCP(ctx, CacheArgs{}); got != "DNS CACHE STATISTICS:\n\ncache-used: 12KiB" {
		t.Errorf("GetCacheStatisticsMCP = %q", got)
	}
	r.ExpectCommands(t, "/ip dns cache print stats")
}

func TestAddRegexpMCP(t *testing.T) {
	r := routerostest.New("", " 0 name=dummy")
	_, err := NewService(r).AddRegexpMCP(context.Background(), AddRegexpArgs{Regexp: `.*\.ads\.com`, Address: "0.0.0.0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `/ip dns static add name="dummy" address=0.0.0.0 ttl=1d regexp=".*\\.ads\\.com"`
	if got := r.Commands()[0]; got != want {
		t.Errorf("command = %s, want %s", got, want)
	}
}

func TestTestQueryMCP(t *testing.T) {
	tests := []struct {
		name string
		args TestQueryArgs
		want string
	}{
		{"default type", TestQueryArgs{Name: "mikrotik.com"}, "/resolve mikrotik.com"},
		{"explicit A", TestQueryArgs{Name: "mikrotik.com", Type: "A"}, "/resolve mikrotik.com"},
		{"server and type", TestQueryArgs{Name: "mikrotik.com", Server: "1.1.1.1", Type: "AAAA"}, "/resolve mikrotik.com server=1.1.1.1 type=AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New("159.148.147.196")
			got, _ := NewService(r).TestQueryMCP(context.Background(), tt.args)
			r.ExpectCommands(t, tt.want)
			if got != "DNS QUERY RESULT for mikrotik.com:\n\n159.148.147.196" {
				t.Errorf("result = %q", got)
			}
		})
	}

	r := routerostest.New("")
	if got, _ := NewService(r).TestQueryMCP(context.Background(), TestQueryArgs{Name: "nx.lan"}); got != "Failed to resolve nx.lan" {
		t.Errorf("result = %q", got)
	}
}

func TestExportConfigMCP(t *testing.T) {
	r := routerostest.New("")
	got, _ := NewService(r).ExportConfigMCP(context.Background(), ExportConfigArgs{})
	r.ExpectCommands(t, "/ip dns export file=dns_config")
	if got != "DNS configuration exported to dns_config.rsc" {
		t.Errorf("result = %q", got)
	}
}
