package logs

// GetLogsArgs contains parameters for get_logs
type GetLogsArgs struct {
	Topics        string `json:"topics,omitempty" jsonschema:"Comma separated topics, any of which may match"`
	Action        string `json:"action,omitempty" jsonschema:"Exact log action"`
	TimeFilter    string `json:"time_filter,omitempty" jsonschema:"Look-back window such as 5m, 1h or 1d"`
	MessageFilter string `json:"message_filter,omitempty" jsonschema:"Partial match on the message"`
	PrefixFilter  string `json:"prefix_filter,omitempty" jsonschema:"Message prefix"`
	Limit         *int   `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
	PrintAs       string `json:"print_as,omitempty" jsonschema:"value (default), detail or terse"`
}

// SeverityArgs contains parameters for get_logs_by_severity
type SeverityArgs struct {
	Severity   string `json:"severity" jsonschema:"debug, info, warning, error or critical"`
	TimeFilter string `json:"time_filter,omitempty" jsonschema:"Look-back window such as 5m, 1h or 1d"`
	Limit      *int   `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
}

// TopicArgs contains parameters for get_logs_by_topic
type TopicArgs struct {
	Topic      string `json:"topic" jsonschema:"Topic such as system, dhcp or interface"`
	TimeFilter string `json:"time_filter,omitempty" jsonschema:"Look-back window such as 5m, 1h or 1d"`
	Limit      *int   `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
}

// SearchArgs contains parameters for search_logs
type SearchArgs struct {
	SearchTerm string `json:"search_term" jsonschema:"Text or regular expression to look for in messages"`
	TimeFilter string `json:"time_filter,omitempty" jsonschema:"Look-back window such as 5m, 1h or 1d"`
	Limit      *int   `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
}

// SystemEventsArgs contains parameters for get_system_events
type SystemEventsArgs struct {
	EventType  string `json:"event_type,omitempty" jsonschema:"login, logout, reboot, config-change, backup, restore, upgrade or free text"`
	TimeFilter string `json:"time_filter,omitempty" jsonschema:"Look-back window such as 5m, 1h or 1d"`
	Limit      *int   `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
}

// SecurityArgs contains parameters for get_security_logs
type SecurityArgs struct {
	TimeFilter string `json:"time_filter,omitempty" jsonschema:"Look-back window such as 5m, 1h or 1d"`
	Limit      *int   `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
}

// ClearArgs contains parameters for clear_logs
type ClearArgs struct {
	RestoreLines *int `json:"restore_lines,omitempty" jsonschema:"memory-lines to restore after clearing (default 1000)"`
}

// StatisticsArgs is the empty argument set of get_log_statistics
type StatisticsArgs struct{}

// ExportArgs contains parameters for export_logs
type ExportArgs struct {
	Filename   string `json:"filename,omitempty" jsonschema:"File name without extension (default logs_export_<unix time>)"`
	Topics     string `json:"topics,omitempty" jsonschema:"Partial match on topics"`
	TimeFilter string `json:"time_filter,omitempty" jsonschema:"Look-back window such as 5m, 1h or 1d"`
}

// MonitorArgs contains parameters for monitor_logs
type MonitorArgs struct {
	Topics   string `json:"topics,omitempty" jsonschema:"Partial match on topics"`
	Action   string `json:"action,omitempty" jsonschema:"Exact log action"`
	Duration *int   `json:"duration,omitempty" jsonschema:"Seconds to look back (default 10, at most 60)"`
}
