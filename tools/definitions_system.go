package tools

// ==========================================================================
// BACKUP AND FILE TOOLS
// ==========================================================================
var backupTools = []ToolSpec{
	{
		Name:     "create_backup",
		Method:   "CreateBackup",
		Title:    "Create Backup",
		Category: "backup",
		Preset:   Write,
		Description: `Save a binary system backup on the router.

USE WHEN: User says "back up the router", "save the config before I change things".

NOT FOR: A readable script of the configuration (use create_export).

PARAMETERS:
- name: File name without extension (default backup_<unix time>)
- dont_encrypt: Save unencrypted (default false)
- include_password: Include the password file (default true)

RETURNS: The backup file's details.`,
	},
	{
		Name:     "list_backups",
		Method:   "ListBackups",
		Title:    "List Backups",
		Category: "backup",
		Preset:   Read,
		Description: `List backup files on the router.

PARAMETERS:
- name_filter: Partial match
- include_exports: Also list .rsc scripts

RETURNS: Matching files, or "No backup files found.".`,
	},
	{
		Name:     "create_export",
		Method:   "CreateExport",
		Title:    "Create Configuration Export",
		Category: "backup",
		Preset:   Read,
		Description: `Export the full configuration as a script file.

USE WHEN: User says "export the config", "give me the config as text".

NOT FOR: One menu only (use export_section).

PARAMETERS:
- name: File name without extension (default export_<unix time>)
- file_format: rsc (default), json or xml
- export_type: full (default), compact or verbose
- hide_sensitive: Default true
- verbose, compact: Same as the matching export_type

RETURNS: The export file's details.`,
	},
	{
		Name:     "export_section",
		Method:   "ExportSection",
		Title:    "Export Configuration Section",
		Category: "backup",
		Preset:   Read,
		Description: `Export one configuration menu as a script file.

USE WHEN: User says "export the firewall rules", "save the DHCP config to a file".

PARAMETERS:
- section: Menu path such as "ip firewall filter" (required)
- name: File name without extension (default export_<section>_<unix time>)
- hide_sensitive: Default true
- compact: Only non-default values

RETURNS: The export file's details.`,
	},
	{
		Name:     "download_file",
		Method:   "DownloadFile",
		Title:    "Download File",
		Category: "backup",
		Preset:   Read,
		Description: `Read a text file from the router.

USE WHEN: User says "show me the export I just made", "fetch cfg.rsc".

PARAMETERS:
- filename: File name with extension (required)

RETURNS: FILE_CONTENT_BASE64:<base64 of the content>. Only small text files can be read this way.`,
	},
	{
		Name:     "upload_file",
		Method:   "UploadFile",
		Title:    "Upload File",
		Category: "backup",
		Preset:   Write,
		Description: `Create a text file on the router.

USE WHEN: User wants to put a script on the router before import_configuration.

PARAMETERS:
- filename: Name for the file (required)
- content_base64: Base64 of UTF-8 text, at most 64 KiB decoded (required)

RETURNS: Confirmation with the byte count.`,
	},
	{
		Name:     "restore_backup",
		Method:   "RestoreBackup",
		Title:    "Restore Backup",
		Category: "backup",
		Preset:   Dangerous,
		Description: `Load a binary backup. The router REBOOTS and its current configuration is replaced.

USE WHEN: User explicitly asks to restore a named backup.

PARAMETERS:
- filename: Backup file (required)
- password: Password of an encrypted backup

RETURNS: Confirmation that the restore started, or the failure text.`,
	},
	{
		Name:     "import_configuration",
		Method:   "ImportConfiguration",
		Title:    "Import Configuration",
		Category: "backup",
		Preset:   Dangerous,
		Description: `Run an .rsc script on the router. Every command in the file is applied.

USE WHEN: User explicitly asks to apply an uploaded or exported script.

PARAMETERS:
- filename: Script file (required)
- run_after_reset: Run after a configuration reset
- verbose: Echo each command

RETURNS: Confirmation, or the device's import output.`,
	},
	{
		Name:     "remove_file",
		Method:   "RemoveFile",
		Title:    "Remove File",
		Category: "backup",
		Preset:   Dangerous,
		Description: `Delete a file from the router's storage.

PARAMETERS:
- filename: File name with extension (required)

RETURNS: Confirmation or a not-found message.`,
	},
	{
		Name:     "backup_info",
		Method:   "BackupInfo",
		Title:    "Backup Info",
		Category: "backup",
		Preset:   Read,
		Description: `Show size, type and creation time of a file.

PARAMETERS:
- filename: File name with extension (required)

RETURNS: File details or a not-found message.`,
	},
}

// ==========================================================================
// LOG TOOLS
// ==========================================================================
var logTools = []ToolSpec{
	{
		Name:     "get_logs",
		Method:   "GetLogs",
		Title:    "Get Logs",
		Category: "logs",
		Preset:   Read,
		Description: `Read the device log with filters.

USE WHEN: User asks "show the logs", "what happened in the last hour", "any dhcp warnings".

NOT FOR: Counts only (use get_log_statistics).

PARAMETERS:
- topics: Comma separated topics, any may match
- action: Exact log action
- message_filter, prefix_filter: Message match
- time_filter: Look-back window such as 5m, 1h or 1d
- limit: Maximum entries
- print_as: value (default), detail or terse

RETURNS: Matching entries, or a "no entries" message.`,
	},
	{
		Name:     "get_logs_by_severity",
		Method:   "GetLogsBySeverity",
		Title:    "Get Logs by Severity",
		Category: "logs",
		Preset:   Read,
		Description: `Read log entries of one severity.

USE WHEN: User asks "show errors", "any warnings today".

PARAMETERS:
- severity: debug, info, warning, error or critical (required). error also includes critical.
- time_filter, limit: Optional

RETURNS: Matching entries.`,
	},
	{
		Name:     "get_logs_by_topic",
		Method:   "GetLogsByTopic",
		Title:    "Get Logs by Topic",
		Category: "logs",
		Preset:   Read,
		Description: `Read log entries of one topic.

PARAMETERS:
- topic: Topic such as system, dhcp or interface (required)
- time_filter, limit: Optional

RETURNS: Matching entries.`,
	},
	{
		Name:     "search_logs",
		Method:   "SearchLogs",
		Title:    "Search Logs",
		Category: "logs",
		Preset:   Read,
		Description: `Search log messages for a term or regular expression.

USE WHEN: User asks "did anything mention ether1", "search the logs for 'link down'".

PARAMETERS:
- search_term: Text to find (required)
- time_filter, limit: Optional

RETURNS: Matching entries.`,
	},
	{
		Name:     "get_system_events",
		Method:   "GetSystemEvents",
		Title:    "Get System Events",
		Category: "logs",
		Preset:   Read,
		Description: `Read system topic events such as logins and reboots.

USE WHEN: User asks "who logged in", "when did the router last reboot".

PARAMETERS:
- event_type: login, logout, reboot, config-change, backup, restore, upgrade, or free text
- time_filter, limit: Optional

RETURNS: Matching entries.`,
	},
	{
		Name:     "get_security_logs",
		Method:   "GetSecurityLogs",
		Title:    "Get Security Logs",
		Category: "logs",
		Preset:   Read,
		Description: `Read security-relevant entries: logins, failures, denials and attacks.

USE WHEN: User asks "any failed logins", "is someone attacking the router".

PARAMETERS:
- time_filter, limit: Optional

RETURNS: Matching entries, or "No security-related log entries found.".`,
	},
	{
		Name:     "clear_logs",
		Method:   "ClearLogs",
		Title:    "Clear Logs",
		Category: "logs",
		Preset:   Destructive,
		Description: `Clear the in-memory log. This cannot be undone.

PARAMETERS:
- restore_lines: memory-lines to restore afterwards (default 1000)

RETURNS: Confirmation.`,
	},
	{
		Name:     "get_log_statistics",
		Method:   "GetLogStatistics",
		Title:    "Get Log Statistics",
		Category: "logs",
		Preset:   Read,
		Description: `Count log entries overall, per common topic, and over the last hour and day.

USE WHEN: User asks "how noisy is the log", "how many errors are there".

RETURNS: A short statistics report.`,
	},
	{
		Name:     "export_logs",
		Method:   "ExportLogs",
		Title:    "Export Logs",
		Category: "logs",
		Preset:   Read,
		Description: `Write log entries to a file on the router.

PARAMETERS:
- filename: Without extension (default logs_export_<unix time>)
- topics, time_filter: Optional filters

RETURNS: The file name written.`,
	},
	{
		Name:     "monitor_logs",
		Method:   "MonitorLogs",
		Title:    "Monitor Logs",
		Category: "logs",
		Preset:   Read,
		Description: `Show the newest log entries from the last few seconds.

USE WHEN: User asks "what is being logged right now".

PARAMETERS:
- topics, action: Optional filters
- duration: Seconds to look back (default 10, at most 60)

RETURNS: Up to 100 entries.`,
	},
}
