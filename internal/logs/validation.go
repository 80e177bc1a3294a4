package logs

import (
	"regexp"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

const (
	defaultMonitorSeconds = 10
	maxMonitorSeconds     = 60
	monitorLimit          = 100
	defaultMemoryLines    = 1000
)

var (
	printFormats = []string{"value", "detail", "terse"}
	severities   = []string{"debug", "info", "warning", "error", "critical"}

	// windowPattern matches a RouterOS duration. The window is spliced into
	// an expression unquoted.
	windowPattern = regexp.MustCompile(`^[0-9]+(ms|s|m|h|d|w)$`)
)

// severityTopics maps a severity to the topics that carry it.
var severityTopics = map[string][]string{
	"debug":    {"debug"},
	"info":     {"info"},
	"warning":  {"warning"},
	"error":    {"error", "critical"},
	"critical": {"critical"},
}

// eventPatterns maps get_system_events shorthands to message fragments.
var eventPatterns = map[string]string{
	"login":         "logged in",
	"logout":        "logged out",
	"reboot":        "reboot",
	"config-change": "config changed",
	"backup":        "backup",
	"restore":       "restore",
	"upgrade":       "upgrade",
}

func validateWindow(window string) error {
	if window == "" || windowPattern.MatchString(window) {
		return nil
	}
	return apierrors.NewValidationError("time_filter", window, "must be a duration such as 30s, 5m, 1h or 1d")
}

func validateLimit(limit *int) error {
	if limit != nil && *limit < 1 {
		return apierrors.NewValidationError("limit", "", "must be at least 1")
	}
	return nil
}

func validateQuery(args GetLogsArgs) error {
	if err := routeros.ValidateOneOf("print_as", args.PrintAs, printFormats...); err != nil {
		return err
	}
	if err := validateWindow(args.TimeFilter); err != nil {
		return err
	}
	return validateLimit(args.Limit)
}
