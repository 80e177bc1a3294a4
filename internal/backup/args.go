package backup

// CreateBackupArgs contains parameters for create_backup
type CreateBackupArgs struct {
	Name        string `json:"name,omitempty" jsonschema:"File name without extension (default backup_<unix time>)"`
	DontEncrypt bool   `json:"dont_encrypt,omitempty" jsonschema:"Save the backup unencrypted"`
	// IncludePassword defaults to true; false adds password-file=no.
	IncludePassword *bool `json:"include_password,omitempty" jsonschema:"Include the user password file in the backup (default true)"`
}

// ListBackupsArgs contains parameters for list_backups
type ListBackupsArgs struct {
	NameFilter     string `json:"name_filter,omitempty" jsonschema:"Partial match on file name"`
	IncludeExports bool   `json:"include_exports,omitempty" jsonschema:"Also list .rsc export scripts"`
}

// CreateExportArgs contains parameters for create_export
type CreateExportArgs struct {
	Name          string `json:"name,omitempty" jsonschema:"File name without extension (default export_<unix time>)"`
	FileFormat    string `json:"file_format,omitempty" jsonschema:"rsc (default), json or xml"`
	ExportType    string `json:"export_type,omitempty" jsonschema:"full (default), compact or verbose"`
	HideSensitive *bool  `json:"hide_sensitive,omitempty" jsonschema:"Hide passwords and keys (default true)"`
	Verbose       bool   `json:"verbose,omitempty" jsonschema:"Include default values"`
	Compact       bool   `json:"compact,omitempty" jsonschema:"Only values changed from defaults"`
}

// ExportSectionArgs contains parameters for export_section
type ExportSectionArgs struct {
	Section       string `json:"section" jsonschema:"Menu to export, e.g. ip address or interface wireguard"`
	Name          string `json:"name,omitempty" jsonschema:"File name without extension (default export_<section>_<unix time>)"`
	HideSensitive *bool  `json:"hide_sensitive,omitempty" jsonschema:"Hide passwords and keys (default true)"`
	Compact       bool   `json:"compact,omitempty" jsonschema:"Only values changed from defaults"`
}

// FileArgs addresses one file by name
type FileArgs struct {
	Filename string `json:"filename" jsonschema:"File name including extension"`
}

// UploadArgs contains parameters for upload_file
type UploadArgs struct {
	Filename      string `json:"filename" jsonschema:"Name for the uploaded file"`
	ContentBase64 string `json:"content_base64" jsonschema:"Base64 encoded UTF-8 text content"`
}

// RestoreArgs contains parameters for restore_backup
type RestoreArgs struct {
	Filename string `json:"filename" jsonschema:"Backup file to load"`
	Password string `json:"password,omitempty" jsonschema:"Password of an encrypted backup"`
}

// ImportArgs contains parameters for import_configuration
type ImportArgs struct {
	Filename      string `json:"filename" jsonschema:"Script file to run"`
	RunAfterReset bool   `json:"run_after_reset,omitempty" jsonschema:"Run the script after a configuration reset"`
	Verbose       bool   `json:"verbose,omitempty" jsonschema:"Echo each command while importing"`
}
