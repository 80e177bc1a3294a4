package backup

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"
	"testing"
	"time"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros/routerostest"
)

func boolPtr(b bool) *bool { return &b }

// fixedService returns a Service whose clock reads 1700000000.
func fixedService(r routeros.Runner) *Service {
	svc := NewService(r)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }
	return svc
}

func TestCreateBackupMCP(t *testing.T) {
	tests := []struct {
		name    string
		args    CreateBackupArgs
		outputs []string
		want    []string
		result  string
	}{
		{
			name:    "default name with details",
			args:    CreateBackupArgs{},
			outputs: []string{"Configuration backup saved", " 0 name=backup_1700000000.backup"},
			want: []string{
				`/system backup save name=backup_1700000000 password=""`,
				`/file print detail where name="backup_1700000000.backup"`,
			},
			result: "Backup created successfully:\n\n 0 name=backup_1700000000.backup",
		},
		{
			name:    "unencrypted without details",
			args:    CreateBackupArgs{Name: "nightly", DontEncrypt: true},
			outputs: []string{"", ""},
			want: []string{
				"/system backup save name=nightly dont-encrypt=yes",
				`/file print detail where name="nightly.backup"`,
			},
			result: "Backup 'nightly.backup' created successfully.",
		},
		{
			name:    "without password file",
			args:    CreateBackupArgs{Name: "shared", IncludePassword: boolPtr(false)},
			outputs: []string{"", ""},
			want: []string{
				`/system backup save name=shared password="" password-file=no`,
				`/file print detail where name="shared.backup"`,
			},
			result: "Backup 'shared.backup' created successfully.",
		},
		{
			name:    "failure skips lookup",
			args:    CreateBackupArgs{Name: "full"},
			outputs: []string{"failure: not enough space"},
			want:    []string{`/system backup save name=full password=""`},
			result:  "Failed to create backup: failure: not enough space",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New(tt.outputs...)
			got, err := fixedService(r).CreateBackupMCP(context.Background(), tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			r.ExpectCommands(t, tt.want...)
			if got != tt.result {
				t.Errorf("result = %q, want %q", got, tt.result)
			}
		})
	}
}

func TestListBackupsMCP(t *testing.T) {
	r := routerostest.New("")
	got, _ := NewService(r).ListBackupsMCP(context.Background(), ListBackupsArgs{})
	r.ExpectCommands(t, "/file print where type=backup")
	if got != "No backup files found." {
		t.Errorf("result = %q", got)
	}

	r = routerostest.New(" 0 nightly.backup")
	got, _ = NewService(r).ListBackupsMCP(context.Background(), ListBackupsArgs{NameFilter: "night", IncludeExports: true})
	r.ExpectCommands(t, `/file print where (type=backup or type=script) and name~"night"`)
	if !strings.HasPrefix(got, "BACKUP FILES:\n\n") {
		t.Errorf("result = %q", got)
	}
}

func TestCreateExportMCP(t *testing.T) {
	tests := []struct {
		name string
		args CreateExportArgs
		want string
		file string
	}{
		{"defaults", CreateExportArgs{}, "/export file=export_1700000000", "export_1700000000.rsc"},
		{"compact type", CreateExportArgs{Name: "cfg", ExportType: "compact"}, "/export compact file=cfg", "cfg.rsc"},
		{
			"verbose with secrets",
			CreateExportArgs{Name: "cfg", FileFormat: "json", Verbose: true, HideSensitive: boolPtr(false)},
			"/export verbose show-sensitive file=cfg",
			"cfg.json",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New("", "")
			got, err := fixedService(r).CreateExportMCP(context.Background(), tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			r.ExpectCommands(t, tt.want, `/file print detail where name="`+tt.file+`"`)
			if got != "Export '"+tt.file+"' created successfully." {
				t.Errorf("result = %q", got)
			}
		})
	}
}

func TestCreateExportMCP_Validation(t *testing.T) {
	svc := NewService(routerostest.New())
	ctx := context.Background()
	if _, err := svc.CreateExportMCP(ctx, CreateExportArgs{FileFormat: "yaml"}); !apierrors.IsValidation(err) {
		t.Errorf("file_format: got %v", err)
	}
	if _, err := svc.CreateExportMCP(ctx, CreateExportArgs{ExportType: "tiny"}); !apierrors.IsValidation(err) {
		t.Errorf("export_type: got %v", err)
	}
}

func TestExportSectionMCP(t *testing.T) {
	r := routerostest.New("", " 0 name=export_ip_firewall_filter_1700000000.rsc")
	got, err := fixedService(r).ExportSectionMCP(context.Background(), ExportSectionArgs{
		Section: "/ip firewall filter",
		Compact: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.ExpectCommands(t,
		"/ip firewall filter export file=export_ip_firewall_filter_1700000000 compact",
		`/file print detail where name="export_ip_firewall_filter_1700000000.rsc"`,
	)
	if !strings.HasPrefix(got, "Section export created successfully:\n\n") {
		t.Errorf("result = %q", got)
	}
}

func TestExportSectionMCP_RejectsInjection(t *testing.T) {
	for _, section := range []string{"", "ip address; /system reboot", "ip  address", "IP"} {
		r := routerostest.New()
		if _, err := NewService(r).ExportSectionMCP(context.Background(), ExportSectionArgs{Section: section}); !apierrors.IsValidation(err) {
			t.Errorf("section %q: got %v", section, err)
		}
		r.ExpectNone(t)
	}
}

func TestDownloadFileMCP(t *testing.T) {
	r := routerostest.New("1", "/ip address add address=10.0.0.1/24 interface=ether1")
	got, err := NewService(r).DownloadFileMCP(context.Background(), FileArgs{Filename: "cfg.rsc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.ExpectCommands(t,
		`/file print count-only where name="cfg.rsc"`,
		`:put [/file get [find name="cfg.rsc"] contents]`,
	)
	want := "FILE_CONTENT_BASE64:" + base64.StdEncoding.EncodeToString([]byte("/ip address add address=10.0.0.1/24 interface=ether1"))
	if got != want {
		t.Errorf("result = %q, want %q", got, want)
	}
}

func TestDownloadFileMCP_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		outputs []string
		want    string
	}{
		{"missing", []string{"0"}, "File 'cfg.rsc' not found."},
		{"empty contents", []string{"1", ""}, "Failed to download file 'cfg.rsc'."},
		{"unreachable", []string{routeros.ConnectFailed, routeros.ConnectFailed}, routeros.ConnectFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New(tt.outputs...)
			got, _ := NewService(r).DownloadFileMCP(context.Background(), FileArgs{Filename: "cfg.rsc"})
			if got != tt.want {
				t.Errorf("result = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUploadFileMCP(t *testing.T) {
	content := "/system identity set name=\"edge $site\"\n:log info done\\"
	r := routerostest.New("")
	got, err := NewService(r).UploadFileMCP(context.Background(), UploadArgs{
		Filename:      "setup.rsc",
		ContentBase64: base64.StdEncoding.EncodeToString([]byte(content)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.ExpectCommands(t,
		`/file add name="setup.rsc" contents="/system identity set name=\"edge \$site\"\n:log info done\\"`,
	)
	if want := "File 'setup.rsc' uploaded successfully (" + strconv.Itoa(len(content)) + " bytes)."; got != want {
		t.Errorf("result = %q, want %q", got, want)
	}
}

func TestUploadFileMCP_Validation(t *testing.T) {
	tests := []struct {
		name string
		args UploadArgs
	}{
		{"no filename", UploadArgs{ContentBase64: "YQ=="}},
		{"not base64", UploadArgs{Filename: "a.rsc", ContentBase64: "%%%"}},
		{"binary", UploadArgs{Filename: "a.rsc", ContentBase64: base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe})}},
		{"too large", UploadArgs{Filename: "a.rsc", ContentBase64: base64.StdEncoding.EncodeToString(make([]byte, maxUploadBytes+1))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New()
			if _, err := NewService(r).UploadFileMCP(context.Background(), tt.args); !apierrors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			r.ExpectNone(t)
		})
	}
}

func TestRestoreBackupMCP(t *testing.T) {
	tests := []struct {
		name    string
		args    RestoreArgs
		outputs []string
		last    string
		want    string
	}{
		{
			name:    "missing",
			args:    RestoreArgs{Filename: "old.backup"},
			outputs: []string{"0"},
			last:    `/file print count-only where name="old.backup"`,
			want:    "Backup file 'old.backup' not found.",
		},
		{
			name:    "encrypted",
			args:    RestoreArgs{Filename: "old.backup", Password: "s3cret"},
			outputs: []string{"1", "Restoring system configuration"},
			last:    `/system backup load name=old.backup password="s3cret"`,
			want:    "Backup 'old.backup' restored successfully. System will reboot.",
		},
		{
			name:    "wrong password",
			args:    RestoreArgs{Filename: "old.backup"},
			outputs: []string{"1", "failure: wrong password"},
			last:    "/system backup load name=old.backup",
			want:    "Failed to restore backup: failure: wrong password",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerostest.New(tt.outputs...)
			got, err := NewService(r).RestoreBackupMCP(context.Background(), tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Last() != tt.last {
				t.Errorf("last command = %s, want %s", r.Last(), tt.last)
			}
			if got != tt.want {
				t.Errorf("result = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImportConfigurationMCP(t *testing.T) {
	r := routerostest.New("1", "Script file loaded and executed successfully")
	got, _ := NewService(r).ImportConfigurationMCP(context.Background(), ImportArgs{
		Filename:      "setup.rsc",
		RunAfterReset: true,
		Verbose:       true,
	})
	r.ExpectCommands(t,
		`/file print count-only where name="setup.rsc"`,
		"/import file=setup.rsc run-after-reset=yes verbose=yes",
	)
	if got != "Configuration 'setup.rsc' imported successfully." {
		t.Errorf("result = %q", got)
	}

	r = routerostest.New("1", "expected end of command (line 3 column 5)")
	got, _ = NewService(r).ImportConfigurationMCP(context.Background(), ImportArgs{Filename: "setup.rsc"})
	if got != "Import result:\nexpected end of command (line 3 column 5)" {
		t.Errorf("result = %q", got)
	}

	r = routerostest.New("0")
	got, _ = NewService(r).ImportConfigurationMCP(context.Background(), ImportArgs{Filename: "gone.rsc"})
	if got != "Configuration file 'gone.rsc' not found." {
		t.Errorf("result = %q", got)
	}
}

func TestRemoveFileMCP(t *testing.T) {
	r := routerostest.New("1", "")
	got, _ := NewService(r).RemoveFileMCP(context.Background(), FileArgs{Filename: "old.backup"})
	r.ExpectCommands(t,
		`/file print count-only where name="old.backup"`,
		`/file remove [find name="old.backup"]`,
	)
	if got != "File 'old.backup' removed successfully." {
		t.Errorf("result = %q", got)
	}
}

func TestBackupInfoMCP(t *testing.T) {
	r := routerostest.New("")
	got, _ := NewService(r).BackupInfoMCP(context.Background(), FileArgs{Filename: "x.backup"})
	if got != "Backup file 'x.backup' not found." {
		t.Errorf("result = %q", got)
	}

	r = routerostest.New(" 0 name=x.backup size=20.1KiB")
	got, _ = NewService(r).BackupInfoMCP(context.Background(), FileArgs{Filename: "x.backup"})
	r.ExpectCommands(t, `/file print detail where name="x.backup"`)
	if got != "BACKUP FILE DETAILS:\n\n 0 name=x.backup size=20.1KiB" {
		t.Errorf("result = %q", got)
	}
}

func TestFileTools_RequireFilename(t *testing.T) {
	svc := NewService(routerostest.New())
	ctx := context.Background()
	calls := map[string]func() (string, error){
		"download": func() (string, error) { return svc.DownloadFileMCP(ctx, FileArgs{}) },
		"restore":  func() (string, error) { return svc.RestoreBackupMCP(ctx, RestoreArgs{}) },
		"import":   func() (string, error) { return svc.ImportConfigurationMCP(ctx, ImportArgs{}) },
		"remove":   func() (string, error) { return svc.RemoveFileMCP(ctx, FileArgs{}) },
		"info":     func() (string, error) { return svc.BackupInfoMCP(ctx, FileArgs{}) },
	}
	for name, call := range calls {
		if _, err := call(); !apierrors.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}
