package wireless

import (
	"regexp"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

var (
	modes = []string{
		"ap-bridge", "bridge", "station", "station-pseudobridge",
		"station-bridge", "station-wds", "ap-bridge-wds", "alignment-only",
	}
	bands = []string{
		"2ghz-b", "2ghz-b/g", "2ghz-b/g/n", "5ghz-a", "5ghz-a/n",
		"5ghz-a/n/ac", "2ghz-g", "2ghz-n", "5ghz-n", "5ghz-ac",
	}
	channelWidths = []string{"20mhz", "40mhz", "80mhz", "160mhz", "20/40mhz-eC", "20/40mhz-Ce"}
	profileModes  = []string{"none", "dynamic-keys", "static-keys-required", "static-keys-optional"}

	macPattern = regexp.MustCompile(`^[0-9A-Fa-f]{2}(:[0-9A-Fa-f]{2}){5}$`)
)

const (
	defaultScanSeconds = 5
	maxScanSeconds     = 60
)

func validateCreate(args CreateArgs) error {
	if err := routeros.ValidateRequired("name", args.Name); err != nil {
		return err
	}
	if err := routeros.ValidateOneOf("mode", args.Mode, modes...); err != nil {
		return err
	}
	if err := routeros.ValidateOneOf("band", args.Band, bands...); err != nil {
		return err
	}
	return routeros.ValidateOneOf("channel_width", args.ChannelWidth, channelWidths...)
}

func validateMAC(mac string) error {
	if mac == "" || macPattern.MatchString(mac) {
		return nil
	}
	return apierrors.NewValidationError("mac_address", mac, "must look like AA:BB:CC:DD:EE:FF")
}
