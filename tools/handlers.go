package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/backup"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/dns"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/ipaddr"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/logs"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routes"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/vlan"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/wireguard"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/wireless"
	"github.com/olgasafonova/mikrotik-mcp-server/metrics"
	"github.com/olgasafonova/mikrotik-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool methods to the domain services that implement them.
type HandlerRegistry struct {
	dns       *dns.Service
	routes    *routes.Service
	vlan      *vlan.Service
	ipaddr    *ipaddr.Service
	wireguard *wireguard.Service
	wireless  *wireless.Service
	backup    *backup.Service
	logs      *logs.Service
	logger    *slog.Logger
}

// NewHandlerRegistry creates a registry whose services all send their
// commands through run.
func NewHandlerRegistry(run routeros.Runner, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		dns:       dns.NewService(run),
		routes:    routes.NewService(run),
		vlan:      vlan.NewService(run),
		ipaddr:    ipaddr.NewService(run),
		wireguard: wireguard.NewService(run),
		wireless:  wireless.NewService(run),
		backup:    backup.NewService(run),
		logs:      logs.NewService(run),
		logger:    logger,
	}
}

// binder adds one tool to a server.
type binder func(server *mcp.Server, tool *mcp.Tool, spec ToolSpec)

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	methods := h.methods()
	registered := 0
	for _, spec := range AllTools {
		bind, ok := methods[spec.Method]
		if !ok {
			h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
			continue
		}
		bind(server, h.buildTool(spec), spec)
		registered++
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// methods maps every ToolSpec.Method to its service method.
func (h *HandlerRegistry) methods() map[string]binder {
	return map[string]binder{
		// DNS
		"SetDNSServers":         bind(h, h.dns.SetServersMCP),
		"GetDNSSettings":        bind(h, h.dns.GetSettingsMCP),
		"AddDNSStatic":          bind(h, h.dns.AddStaticMCP),
		"ListDNSStatic":         bind(h, h.dns.ListStaticMCP),
		"GetDNSStatic":          bind(h, h.dns.GetStaticMCP),
		"UpdateDNSStatic":       bind(h, h.dns.UpdateStaticMCP),
		"RemoveDNSStatic":       bind(h, h.dns.RemoveStaticMCP),
		"EnableDNSStatic":       bind(h, h.dns.EnableStaticMCP),
		"DisableDNSStatic":      bind(h, h.dns.DisableStaticMCP),
		"GetDNSCache":           bind(h, h.dns.GetCacheMCP),
		"FlushDNSCache":         bind(h, h.dns.FlushCacheMCP),
		"GetDNSCacheStatistics": bind(h, h.dns.GetCacheStatisticsMCP),
		"AddDNSRegexp":          bind(h, h.dns.AddRegexpMCP),
		"TestDNSQuery":          bind(h, h.dns.TestQueryMCP),
		"ExportDNSConfig":       bind(h, h.dns.ExportConfigMCP),

		// Routes
		"AddRoute":           bind(h, h.routes.AddRouteMCP),
		"ListRoutes":         bind(h, h.routes.ListRoutesMCP),
		"GetRoute":           bind(h, h.routes.GetRouteMCP),
		"UpdateRoute":        bind(h, h.routes.UpdateRouteMCP),
		"RemoveRoute":        bind(h, h.routes.RemoveRouteMCP),
		"EnableRoute":        bind(h, h.routes.EnableRouteMCP),
		"DisableRoute":       bind(h, h.routes.DisableRouteMCP),
		"GetRoutingTable":    bind(h, h.routes.GetRoutingTableMCP),
		"CheckRoutePath":     bind(h, h.routes.CheckRoutePathMCP),
		"GetRouteCache":      bind(h, h.routes.GetRouteCacheMCP),
		"FlushRouteCache":    bind(h, h.routes.FlushRouteCacheMCP),
		"AddDefaultRoute":    bind(h, h.routes.AddDefaultRouteMCP),
		"AddBlackholeRoute":  bind(h, h.routes.AddBlackholeRouteMCP),
		"GetRouteStatistics": bind(h, h.routes.GetRouteStatisticsMCP),

		// VLAN
		"CreateVLAN":  bind(h, h.vlan.CreateMCP),
		"ListVLANs":   bind(h, h.vlan.ListMCP),
		"GetVLAN":     bind(h, h.vlan.GetMCP),
		"UpdateVLAN":  bind(h, h.vlan.UpdateMCP),
		"RemoveVLAN":  bind(h, h.vlan.RemoveMCP),
		"EnableVLAN":  bind(h, h.vlan.EnableMCP),
		"DisableVLAN": bind(h, h.vlan.DisableMCP),

		// IP addresses
		"AddIPAddress":     bind(h, h.ipaddr.AddMCP),
		"ListIPAddresses":  bind(h, h.ipaddr.ListMCP),
		"GetIPAddress":     bind(h, h.ipaddr.GetMCP),
		"UpdateIPAddress":  bind(h, h.ipaddr.UpdateMCP),
		"RemoveIPAddress":  bind(h, h.ipaddr.RemoveMCP),
		"EnableIPAddress":  bind(h, h.ipaddr.EnableMCP),
		"DisableIPAddress": bind(h, h.ipaddr.DisableMCP),

		// WireGuard
		"CreateWireGuardInterface":  bind(h, h.wireguard.CreateInterfaceMCP),
		"ListWireGuardInterfaces":   bind(h, h.wireguard.ListInterfacesMCP),
		"GetWireGuardInterface":     bind(h, h.wireguard.GetInterfaceMCP),
		"UpdateWireGuardInterface":  bind(h, h.wireguard.UpdateInterfaceMCP),
		"RemoveWireGuardInterface":  bind(h, h.wireguard.RemoveInterfaceMCP),
		"EnableWireGuardInterface":  bind(h, h.wireguard.EnableInterfaceMCP),
		"DisableWireGuardInterface": bind(h, h.wireguard.DisableInterfaceMCP),
		"AddWireGuardPeer":          bind(h, h.wireguard.AddPeerMCP),
		"ListWireGuardPeers":        bind(h, h.wireguard.ListPeersMCP),
		"GetWireGuardPeer":          bind(h, h.wireguard.GetPeerMCP),
		"UpdateWireGuardPeer":       bind(h, h.wireguard.UpdatePeerMCP),
		"RemoveWireGuardPeer":       bind(h, h.wireguard.RemovePeerMCP),
		"EnableWireGuardPeer":       bind(h, h.wireguard.EnablePeerMCP),
		"DisableWireGuardPeer":      bind(h, h.wireguard.DisablePeerMCP),

		// Wireless
		"CreateWireless":            bind(h, h.wireless.CreateMCP),
		"ListWireless":              bind(h, h.wireless.ListMCP),
		"GetWireless":               bind(h, h.wireless.GetMCP),
		"UpdateWireless":            bind(h, h.wireless.UpdateMCP),
		"RemoveWireless":            bind(h, h.wireless.RemoveMCP),
		"EnableWireless":            bind(h, h.wireless.EnableMCP),
		"DisableWireless":           bind(h, h.wireless.DisableMCP),
		"ScanWireless":              bind(h, h.wireless.ScanMCP),
		"WirelessRegistrationTable": bind(h, h.wireless.RegistrationTableMCP),
		"CheckWirelessSupport":      bind(h, h.wireless.CheckSupportMCP),
		"CreateSecurityProfile":     bind(h, h.wireless.CreateProfileMCP),
		"ListSecurityProfiles":      bind(h, h.wireless.ListProfilesMCP),
		"GetSecurityProfile":        bind(h, h.wireless.GetProfileMCP),
		"RemoveSecurityProfile":     bind(h, h.wireless.RemoveProfileMCP),
		"SetSecurityProfile":        bind(h, h.wireless.SetProfileMCP),
		"CreateAccessList":          bind(h, h.wireless.CreateAccessListMCP),
		"ListAccessList":            bind(h, h.wireless.ListAccessListMCP),
		"RemoveAccessListEntry":     bind(h, h.wireless.RemoveAccessListEntryMCP),

		// Backup and files
		"CreateBackup":        bind(h, h.backup.CreateBackupMCP),
		"ListBackups":         bind(h, h.backup.ListBackupsMCP),
		"CreateExport":        bind(h, h.backup.CreateExportMCP),
		"ExportSection":       bind(h, h.backup.ExportSectionMCP),
		"DownloadFile":        bind(h, h.backup.DownloadFileMCP),
		"UploadFile":          bind(h, h.backup.UploadFileMCP),
		"RestoreBackup":       bind(h, h.backup.RestoreBackupMCP),
		"ImportConfiguration": bind(h, h.backup.ImportConfigurationMCP),
		"RemoveFile":          bind(h, h.backup.RemoveFileMCP),
		"BackupInfo":          bind(h, h.backup.BackupInfoMCP),

		// Logs
		"GetLogs":           bind(h, h.logs.GetLogsMCP),
		"GetLogsBySeverity": bind(h, h.logs.GetLogsBySeverityMCP),
		"GetLogsByTopic":    bind(h, h.logs.GetLogsByTopicMCP),
		"SearchLogs":        bind(h, h.logs.SearchLogsMCP),
		"GetSystemEvents":   bind(h, h.logs.GetSystemEventsMCP),
		"GetSecurityLogs":   bind(h, h.logs.GetSecurityLogsMCP),
		"ClearLogs":         bind(h, h.logs.ClearLogsMCP),
		"GetLogStatistics":  bind(h, h.logs.GetLogStatisticsMCP),
		"ExportLogs":        bind(h, h.logs.ExportLogsMCP),
		"MonitorLogs":       bind(h, h.logs.MonitorLogsMCP),
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: spec.Preset.Annotations(spec.Title),
	}
}

// bind closes over a service method so it can be registered later.
func bind[Args any](h *HandlerRegistry, method func(context.Context, Args) (string, error)) binder {
	return func(server *mcp.Server, tool *mcp.Tool, spec ToolSpec) {
		mcp.AddTool(server, tool, handler(h, spec, method))
	}
}

// handler wraps a service method with panic recovery, metrics, tracing, and
// logging. The device's text is returned as a single text content block.
func handler[Args any](
	h *HandlerRegistry,
	spec ToolSpec,
	method func(context.Context, Args) (string, error),
) mcp.ToolHandlerFor[Args, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args Args) (result *mcp.CallToolResult, _ any, err error) {
		defer h.recoverPanic(spec.Name, &err)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category, spec.Preset.String())

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		text, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		tracing.RecordError(span, err)
		if err != nil {
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool rejected arguments", "tool", spec.Name, "error", err)
			return nil, nil, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, text, duration)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// recoverPanic recovers from panics in tool handlers and turns them into a
// tool error.
func (h *HandlerRegistry) recoverPanic(toolName string, err *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		*err = fmt.Errorf("%s failed: internal error", toolName)
	}
}

// logExecution logs tool execution details. Arguments are not logged since
// several tools take keys and passwords.
func (h *HandlerRegistry) logExecution(spec ToolSpec, text string, duration float64) {
	h.logger.Info("Tool executed",
		"tool", spec.Name,
		"category", spec.Category,
		"outcome", routeros.Classify(text).String(),
		"bytes", len(text),
		"duration_seconds", duration)
}
