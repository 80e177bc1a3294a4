package routes

import "github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"

var checkGatewayModes = []string{"ping", "arp", "bfd", "bfd-multihop", "none"}

func validateAdd(args AddRouteArgs) error {
	if err := routeros.ValidateRequired("dst_address", args.DstAddress); err != nil {
		return err
	}
	if err := routeros.ValidateRequired("gateway", args.Gateway); err != nil {
		return err
	}
	return routeros.ValidateOneOf("check_gateway", args.CheckGateway, checkGatewayModes...)
}

func validateUpdate(args UpdateRouteArgs) error {
	if err := routeros.ValidateID("route_id", args.RouteID); err != nil {
		return err
	}
	if args.CheckGateway != nil {
		return routeros.ValidateOneOf("check_gateway", *args.CheckGateway, checkGatewayModes...)
	}
	return nil
}
