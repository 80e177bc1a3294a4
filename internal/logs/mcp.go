// Package logs reads and manages the device log under /log.
package logs

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

var (
	entries = routeros.Entity{
		Path:      "/log",
		Plural:    "LOG ENTRIES",
		EmptyList: "No log entries found matching the criteria.",
	}
	securityEntries = routeros.Entity{
		Path:      "/log",
		Plural:    "SECURITY LOG ENTRIES",
		EmptyList: "No security-related log entries found.",
	}
)

// securityKeywords is the message pattern get_security_logs looks for.
const securityKeywords = "(login|logout|failed|denied|blocked|attack|invalid|unauthorized)"

// statisticTopics are counted by get_log_statistics, in report order.
var statisticTopics = []string{"info", "warning", "error", "system", "dhcp", "firewall", "interface"}

// Service exposes the log tools.
type Service struct {
	run routeros.Runner
	now func() time.Time
}

// NewService returns a Service that sends commands through r.
func NewService(r routeros.Runner) *Service {
	return &Service{run: r, now: time.Now}
}

// since is the predicate for entries newer than window.
func since(window string) string {
	if window == "" {
		return ""
	}
	return "time > ([:timestamp] - " + window + ")"
}

func splitTopics(topics string) []string {
	if topics == "" {
		return nil
	}
	return strings.Split(topics, ",")
}

// GetLogsMCP prints log entries matching every given filter.
func (s *Service) GetLogsMCP(ctx context.Context, args GetLogsArgs) (string, error) {
	if err := validateQuery(args); err != nil {
		return "", err
	}

	cmd := entries.Print()
	if args.PrintAs != "" && args.PrintAs != "value" {
		cmd.Flag(args.PrintAs)
	}

	where := routeros.NewWhereAnd().
		Any("topics", splitTopics(args.Topics)...).
		Eq("action", args.Action).
		Match("message", args.MessageFilter)
	if args.PrefixFilter != "" {
		where.Match("message", "^"+args.PrefixFilter)
	}
	where.Expr(since(args.TimeFilter))

	cmd.Where(where).OptInt("limit", args.Limit)
	return entries.ListWith(ctx, s.run, cmd), nil
}

// GetLogsBySeverityMCP prints entries whose topics carry a severity.
func (s *Service) GetLogsBySeverityMCP(ctx context.Context, args SeverityArgs) (string, error) {
	if err := routeros.ValidateRequired("severity", args.Severity); err != nil {
		return "", err
	}
	if err := routeros.ValidateOneOf("severity", args.Severity, severities...); err != nil {
		return "", err
	}
	return s.GetLogsMCP(ctx, GetLogsArgs{
		Topics:     strings.Join(severityTopics[args.Severity], ","),
		TimeFilter: args.TimeFilter,
		Limit:      args.Limit,
	})
}

// GetLogsByTopicMCP prints entries for one topic.
func (s *Service) GetLogsByTopicMCP(ctx context.Context, args TopicArgs) (string, error) {
	if err := routeros.ValidateRequired("topic", args.Topic); err != nil {
		return "", err
	}
	return s.GetLogsMCP(ctx, GetLogsArgs{Topics: args.Topic, TimeFilter: args.TimeFilter, Limit: args.Limit})
}

// SearchLogsMCP prints entries whose message matches a term.
func (s *Service) SearchLogsMCP(ctx context.Context, args SearchArgs) (string, error) {
	if err := routeros.ValidateRequired("search_term", args.SearchTerm); err != nil {
		return "", err
	}
	return s.GetLogsMCP(ctx, GetLogsArgs{MessageFilter: args.SearchTerm, TimeFilter: args.TimeFilter, Limit: args.Limit})
}

// GetSystemEventsMCP prints system topic entries, optionally narrowed to one
// kind of event.
func (s *Service) GetSystemEventsMCP(ctx context.Context, args SystemEventsArgs) (string, error) {
	message := args.EventType
	if pattern, ok := eventPatterns[strings.ToLower(args.EventType)]; ok {
		message = pattern
	}
	return s.GetLogsMCP(ctx, GetLogsArgs{
		Topics:        "system",
		MessageFilter: message,
		TimeFilter:    args.TimeFilter,
		Limit:         args.Limit,
	})
}

// GetSecurityLogsMCP prints entries that look security relevant.
func (s *Service) GetSecurityLogsMCP(ctx context.Context, args SecurityArgs) (string, error) {
	if err := validateWindow(args.TimeFilter); err != nil {
		return "", err
	}
	if err := validateLimit(args.Limit); err != nil {
		return "", err
	}
	where := routeros.NewWhereAnd().
		Any("topics", "system", "firewall", "warning", "error").
		Match("message", securityKeywords).
		Expr(since(args.TimeFilter))
	return securityEntries.ListWith(ctx, s.run, securityEntries.Print().Where(where).OptInt("limit", args.Limit)), nil
}

// ClearLogsMCP empties the memory log by shrinking it to one line and
// growing it back.
func (s *Service) ClearLogsMCP(ctx context.Context, args ClearArgs) (string, error) {
	if err := routeros.ValidateRange("restore_lines", args.RestoreLines, 1, 65535); err != nil {
		return "", err
	}
	restore := defaultMemoryLines
	if args.RestoreLines != nil {
		restore = *args.RestoreLines
	}

	memory := routeros.ByKey("name", "memory")
	shrink := routeros.NewCommand("/system logging action", "set").Target(memory).Int("memory-lines", 1)
	if out := s.run.Run(ctx, shrink.String()); routeros.IsFailure(out) {
		return "Failed to clear logs: " + out, nil
	}

	grow := routeros.NewCommand("/system logging action", "set").Target(memory).Int("memory-lines", restore)
	if out := s.run.Run(ctx, grow.String()); routeros.IsFailure(out) {
		return "Logs cleared, but restoring memory-lines failed: " + out, nil
	}
	return "Logs cleared successfully.", nil
}

// GetLogStatisticsMCP counts entries overall, per common topic and over the
// last hour and day.
func (s *Service) GetLogStatisticsMCP(ctx context.Context, _ StatisticsArgs) (string, error) {
	count := func(where *routeros.Where) string {
		return strings.TrimSpace(s.run.Run(ctx, entries.Print().Flag("count-only").Where(where).String()))
	}

	total := count(nil)
	if routeros.IsExecutorError(total) {
		return total, nil
	}
	stats := []string{"Total log entries: " + total}

	for _, topic := range statisticTopics {
		n, err := strconv.Atoi(count(routeros.NewWhere().Match("topics", topic)))
		if err != nil || n == 0 {
			continue
		}
		stats = append(stats, strings.ToUpper(topic[:1])+topic[1:]+": "+strconv.Itoa(n))
	}

	stats = append(stats,
		"\nEntries in last hour: "+count(routeros.NewWhere().Expr(since("1h"))),
		"Entries in last 24 hours: "+count(routeros.NewWhere().Expr(since("1d"))),
	)
	return "LOG STATISTICS:\n\n" + strings.Join(stats, "\n"), nil
}

// ExportLogsMCP writes matching entries to a file on the device.
func (s *Service) ExportLogsMCP(ctx context.Context, args ExportArgs) (string, error) {
	if err := validateWindow(args.TimeFilter); err != nil {
		return "", err
	}
	filename := args.Filename
	if filename == "" {
		filename = "logs_export_" + strconv.FormatInt(s.now().Unix(), 10)
	}

	where := routeros.NewWhereAnd().
		Match("topics", args.Topics).
		Expr(since(args.TimeFilter))
	cmd := entries.Print().Ident("file", filename).Where(where)

	out := s.run.Run(ctx, cmd.String())
	if routeros.IsBlank(out) {
		return "Logs exported to file: " + filename + ".txt", nil
	}
	return "Export result: " + out, nil
}

// MonitorLogsMCP prints entries from the last few seconds. A one-shot
// session cannot follow the log, so this looks back instead of waiting.
func (s *Service) MonitorLogsMCP(ctx context.Context, args MonitorArgs) (string, error) {
	seconds := defaultMonitorSeconds
	if args.Duration != nil && *args.Duration > 0 {
		seconds = min(*args.Duration, maxMonitorSeconds)
	}
	window := strconv.Itoa(seconds) + "s"

	where := routeros.NewWhereAnd().
		Expr(since(window)).
		Match("topics", args.Topics).
		Eq("action", args.Action)
	out := s.run.Run(ctx, entries.Print().Where(where).Int("limit", monitorLimit).String())

	switch {
	case routeros.IsExecutorError(out):
		return out, nil
	case routeros.IsEmptyListing(out):
		return "No log entries in the last " + strconv.Itoa(seconds) + " seconds.", nil
	default:
		return "LOG MONITOR (last " + strconv.Itoa(seconds) + " seconds):\n\n" + out, nil
	}
}
