package wireless

import (
	"context"
	"strings"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

// Wireless menus in order of preference. wifi and wifiwave2 are the RouterOS
// v7 drivers; wireless and wlan are the legacy ones.
const (
	menuWifi      = "/interface wifi"
	menuWifiwave2 = "/interface wifiwave2"
	menuWireless  = "/interface wireless"
	menuWLAN      = "/interface wlan"
)

var menus = []string{menuWifi, menuWifiwave2, menuWireless, menuWLAN}

// NoSupport is returned when no wireless menu answers.
const NoSupport = "Error: No wireless interface support detected on this device."

var unsupportedMarkers = []string{
	"bad command name",
	"failure:",
	"no such command prefix",
	"invalid command name",
}

// unsupported reports whether a probe's output means the menu does not exist.
func unsupported(out string) bool {
	return routeros.IsBlank(out) || rejected(out)
}

// rejected reports whether the device refused the menu itself. A print on a
// menu that exists but has no rows is not a rejection.
func rejected(out string) bool {
	lower := strings.ToLower(out)
	for _, m := range unsupportedMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// isLegacy reports whether menu is a pre-v7 driver.
func isLegacy(menu string) bool {
	return menu == menuWireless || menu == menuWLAN
}

// detect probes the menus with print count-only and returns the first one the
// device accepts. Nothing is remembered between calls. When the device cannot
// be reached the executor's failure text is returned instead and probing
// stops; when no menu answers the failure is NoSupport.
func (s *Service) detect(ctx context.Context) (menu, failure string) {
	for _, m := range menus {
		out := s.run.Run(ctx, routeros.NewCommand(m, "print").Flag("count-only").String())
		if routeros.IsExecutorError(out) {
			return "", out
		}
		if !unsupported(out) {
			return m, ""
		}
	}
	return "", NoSupport
}

// interfaces returns the entity for the interface list under menu.
func interfaces(menu string) routeros.Entity {
	return routeros.Entity{
		Path:      menu,
		Noun:      "wireless interface",
		Title:     "WIRELESS INTERFACE",
		Plural:    "WIRELESS INTERFACES",
		Verb:      "create",
		EmptyList: "No wireless interfaces found matching the criteria.",
	}
}
