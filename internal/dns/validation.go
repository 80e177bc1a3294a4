package dns

import (
	"net/netip"
	"strings"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
)

// validateServers requires at least one server and rejects entries that are
// not IP addresses, since the list is sent unquoted.
func validateServers(servers []string) error {
	if len(servers) == 0 {
		return apierrors.Required("servers")
	}
	for _, s := range servers {
		if _, err := netip.ParseAddr(strings.TrimSpace(s)); err != nil {
			return apierrors.NewValidationError("servers", s, "must be an IPv4 or IPv6 address")
		}
	}
	return nil
}
