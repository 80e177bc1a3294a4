// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are declared as ToolSpec values and bound to typed service methods,
// so main.go only has to hand the registry a device runner.
package tools

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a service method that takes an Args struct and returns text.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "add_dns_static")
	Name string

	// Method is the handler key (e.g., "AddDNSStatic")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools by RouterOS subsystem (dns, routes, vlan, ...)
	Category string

	// Preset selects the behavior hints advertised to clients
	Preset Preset
}

// Preset is a named set of tool annotations.
type Preset int

const (
	// Read only inspects the device.
	Read Preset = iota
	// Write adds configuration; repeating it adds again.
	Write
	// WriteIdempotent changes configuration to a fixed state.
	WriteIdempotent
	// Destructive removes configuration or state.
	Destructive
	// Dangerous can replace the whole configuration or reboot the device.
	Dangerous
)

var presetNames = map[Preset]string{
	Read:            "read",
	Write:           "write",
	WriteIdempotent: "write_idempotent",
	Destructive:     "destructive",
	Dangerous:       "dangerous",
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return "unknown"
}

// Annotations returns the hints for p. No tool reaches beyond the one
// configured device, so OpenWorldHint is always false.
func (p Preset) Annotations(title string) *mcp.ToolAnnotations {
	a := &mcp.ToolAnnotations{
		Title:         title,
		OpenWorldHint: ptr(false),
	}
	switch p {
	case Read:
		a.ReadOnlyHint = true
		a.IdempotentHint = true
	case Write:
		a.DestructiveHint = ptr(false)
	case WriteIdempotent:
		a.DestructiveHint = ptr(false)
		a.IdempotentHint = true
	case Destructive:
		a.DestructiveHint = ptr(true)
		a.IdempotentHint = true
	case Dangerous:
		a.DestructiveHint = ptr(true)
	}
	return a
}

// ToolsByCategory returns the specs of one category, in catalog order.
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// Categories lists the categories in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, spec := range AllTools {
		if !seen[spec.Category] {
			seen[spec.Category] = true
			out = append(out, spec.Category)
		}
	}
	return out
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
