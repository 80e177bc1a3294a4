// Package backup creates, moves and restores configuration files: binary
// backups under /system backup, text exports and the files in /file.
package backup

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

var (
	files = routeros.Entity{
		Path:      "/file",
		Noun:      "file",
		Title:     "FILE",
		Plural:    "BACKUP FILES",
		EmptyList: "No backup files found.",
	}
	backupFile = routeros.Entity{
		Path:  "/file",
		Noun:  "backup file",
		Title: "BACKUP FILE",
	}
)

// Service exposes the backup and file tools.
type Service struct {
	run routeros.Runner
	now func() time.Time
}

// NewService returns a Service that sends commands through r.
func NewService(r routeros.Runner) *Service {
	return &Service{run: r, now: time.Now}
}

func (s *Service) stamp() string {
	return strconv.FormatInt(s.now().Unix(), 10)
}

// fileDetails prints one file, or "" when it does not exist.
func (s *Service) fileDetails(ctx context.Context, name string) string {
	return s.run.Run(ctx, files.Print().Flag("detail").Where(routeros.NewWhere().Eq("name", name)).String())
}

// exists reports whether a file is present. Only a count of zero counts as
// missing, so an unreachable device falls through to the real command.
func (s *Service) exists(ctx context.Context, name string) bool {
	count := s.run.Run(ctx, files.Print().Flag("count-only").Where(routeros.NewWhere().Eq("name", name)).String())
	return !routeros.CountIsZero(count)
}

// CreateBackupMCP saves a binary backup.
func (s *Service) CreateBackupMCP(ctx context.Context, args CreateBackupArgs) (string, error) {
	name := args.Name
	if name == "" {
		name = "backup_" + s.stamp()
	}
	cmd := routeros.NewCommand("/system backup", "save").Ident("name", name)
	if args.DontEncrypt {
		cmd.Bool("dont-encrypt", true)
	} else {
		cmd.Ident("password", "")
	}
	if args.IncludePassword != nil && !*args.IncludePassword {
		cmd.Bool("password-file", false)
	}

	out := s.run.Run(ctx, cmd.String())
	if !routeros.IsBlank(out) && !strings.Contains(out, "saved") {
		return "Failed to create backup: " + out, nil
	}
	if details := s.fileDetails(ctx, name+".backup"); details != "" {
		return "Backup created successfully:\n\n" + details, nil
	}
	return "Backup '" + name + ".backup' created successfully.", nil
}

// ListBackupsMCP lists backup files and, optionally, export scripts.
func (s *Service) ListBackupsMCP(ctx context.Context, args ListBackupsArgs) (string, error) {
	where := routeros.NewWhereAnd()
	if args.IncludeExports {
		where.Expr("(type=backup or type=script)")
	} else {
		where.Expr("type=backup")
	}
	where.Match("name", args.NameFilter)
	return files.List(ctx, s.run, where), nil
}

// CreateExportMCP writes the configuration as a script file.
func (s *Service) CreateExportMCP(ctx context.Context, args CreateExportArgs) (string, error) {
	if err := routeros.ValidateOneOf("file_format", args.FileFormat, fileFormats...); err != nil {
		return "", err
	}
	if err := routeros.ValidateOneOf("export_type", args.ExportType, exportTypes...); err != nil {
		return "", err
	}
	name := args.Name
	if name == "" {
		name = "export_" + s.stamp()
	}
	ext := args.FileFormat
	if ext == "" {
		ext = "rsc"
	}

	cmd := routeros.NewCommand("/export", "").
		FlagIf(args.Verbose || args.ExportType == "verbose", "verbose").
		FlagIf(args.Compact || args.ExportType == "compact", "compact").
		FlagIf(args.HideSensitive != nil && !*args.HideSensitive, "show-sensitive").
		Ident("file", name)

	out := s.run.Run(ctx, cmd.String())
	if routeros.IsFailure(out) {
		return "Failed to create export: " + out, nil
	}
	full := name + "." + ext
	if details := s.fileDetails(ctx, full); details != "" {
		return "Export created successfully:\n\n" + details, nil
	}
	return "Export '" + full + "' created successfully.", nil
}

// ExportSectionMCP exports one menu to a script file.
func (s *Service) ExportSectionMCP(ctx context.Context, args ExportSectionArgs) (string, error) {
	if err := validateSection(args.Section); err != nil {
		return "", err
	}
	section := strings.TrimPrefix(args.Section, "/")
	name := args.Name
	if name == "" {
		clean := strings.NewReplacer(" ", "_", "/", "_").Replace(section)
		name = "export_" + clean + "_" + s.stamp()
	}

	cmd := routeros.NewCommand("/"+section, "export").
		Ident("file", name).
		FlagIf(args.HideSensitive != nil && !*args.HideSensitive, "show-sensitive").
		FlagIf(args.Compact, "compact")

	out := s.run.Run(ctx, cmd.String())
	if routeros.IsFailure(out) {
		return "Failed to export section: " + out, nil
	}
	if details := s.fileDetails(ctx, name+".rsc"); details != "" {
		return "Section export created successfully:\n\n" + details, nil
	}
	return "Section export '" + name + ".rsc' created successfully.", nil
}

// DownloadFileMCP returns a file's contents base64 encoded. RouterOS only
// exposes the contents of small text files this way.
func (s *Service) DownloadFileMCP(ctx context.Context, args FileArgs) (string, error) {
	if err := routeros.ValidateRequired("filename", args.Filename); err != nil {
		return "", err
	}
	if !s.exists(ctx, args.Filename) {
		return "File '" + args.Filename + "' not found.", nil
	}

	content := s.run.Run(ctx, ":put [/file get [find name="+routeros.Quote(args.Filename)+"] contents]")
	switch {
	case routeros.IsExecutorError(content):
		return content, nil
	case content == "":
		return "Failed to download file '" + args.Filename + "'.", nil
	default:
		return "FILE_CONTENT_BASE64:" + base64.StdEncoding.EncodeToString([]byte(content)), nil
	}
}

// UploadFileMCP creates a text file from base64 content.
func (s *Service) UploadFileMCP(ctx context.Context, args UploadArgs) (string, error) {
	if err := routeros.ValidateRequired("filename", args.Filename); err != nil {
		return "", err
	}
	content, err := decodeUpload(args.ContentBase64)
	if err != nil {
		return "", err
	}

	cmd := routeros.NewCommand("/file", "add").
		Quoted("name", args.Filename).
		Quoted("contents", content)
	out := s.run.Run(ctx, cmd.String())
	if routeros.IsFailure(out) {
		return "Failed to upload file: " + out, nil
	}
	return "File '" + args.Filename + "' uploaded successfully (" + strconv.Itoa(len(content)) + " bytes).", nil
}

// RestoreBackupMCP loads a backup. The device reboots on success.
func (s *Service) RestoreBackupMCP(ctx context.Context, args RestoreArgs) (string, error) {
	if err := routeros.ValidateRequired("filename", args.Filename); err != nil {
		return "", err
	}
	if !s.exists(ctx, args.Filename) {
		return "Backup file '" + args.Filename + "' not found.", nil
	}

	cmd := routeros.NewCommand("/system backup", "load").
		Ident("name", args.Filename).
		OptQuoted("password", args.Password)
	out := s.run.Run(ctx, cmd.String())
	if routeros.IsBlank(out) || strings.Contains(out, "Restoring system configuration") {
		return "Backup '" + args.Filename + "' restored successfully. System will reboot.", nil
	}
	return "Failed to restore backup: " + out, nil
}

// ImportConfigurationMCP runs an .rsc script.
func (s *Service) ImportConfigurationMCP(ctx context.Context, args ImportArgs) (string, error) {
	if err := routeros.ValidateRequired("filename", args.Filename); err != nil {
		return "", err
	}
	if !s.exists(ctx, args.Filename) {
		return "Configuration file '" + args.Filename + "' not found.", nil
	}

	cmd := routeros.NewCommand("/import", "").
		Ident("file", args.Filename).
		YesIf("run-after-reset", args.RunAfterReset).
		YesIf("verbose", args.Verbose)
	out := s.run.Run(ctx, cmd.String())
	if routeros.IsBlank(out) || strings.Contains(out, "Script file loaded and executed successfully") {
		return "Configuration '" + args.Filename + "' imported successfully.", nil
	}
	return "Import result:\n" + out, nil
}

// RemoveFileMCP deletes a file.
func (s *Service) RemoveFileMCP(ctx context.Context, args FileArgs) (string, error) {
	if err := routeros.ValidateRequired("filename", args.Filename); err != nil {
		return "", err
	}
	return files.Remove(ctx, s.run, routeros.ByKey("name", args.Filename)), nil
}

// BackupInfoMCP shows a file's details.
func (s *Service) BackupInfoMCP(ctx context.Context, args FileArgs) (string, error) {
	if err := routeros.ValidateRequired("filename", args.Filename); err != nil {
		return "", err
	}
	return backupFile.Get(ctx, s.run, routeros.ByKey("name", args.Filename)), nil
}
