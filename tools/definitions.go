package tools

// AllTools contains all tool specifications for the MikroTik MCP server, in
// catalog order. Each subsystem keeps its specs in its own file.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = concat(
	dnsTools,
	routeTools,
	vlanTools,
	ipAddressTools,
	wireguardTools,
	wirelessTools,
	backupTools,
	logTools,
)

func concat(groups ...[]ToolSpec) []ToolSpec {
	var out []ToolSpec
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
