package ipaddr

import (
	"net/netip"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

// validateAddress accepts a prefix such as 10.0.0.1/24 or a bare address,
// which RouterOS stores as /32.
func validateAddress(field, v string) error {
	if err := routeros.ValidateRequired(field, v); err != nil {
		return err
	}
	if _, err := netip.ParsePrefix(v); err == nil {
		return nil
	}
	if _, err := netip.ParseAddr(v); err == nil {
		return nil
	}
	return apierrors.NewValidationError(field, v, "must be an IP address with optional prefix length")
}

// refs returns the row addresses tried for an id-or-address argument, row id
// first when the value looks like one.
func refs(v string) []routeros.Ref {
	byAddress := routeros.ByKey("address", v)
	if routeros.ValidateID("address_id", v) == nil {
		return []routeros.Ref{routeros.ByID(v), byAddress}
	}
	return []routeros.Ref{byAddress}
}
