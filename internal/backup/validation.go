package backup

import (
	"encoding/base64"
	"regexp"
	"unicode/utf8"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

// maxUploadBytes bounds a single /file add. RouterOS rejects longer CLI
// string values.
const maxUploadBytes = 64*1024 - 1

var (
	fileFormats = []string{"rsc", "json", "xml"}
	exportTypes = []string{"full", "compact", "verbose"}

	sectionPattern = regexp.MustCompile(`^/?[a-z0-9-]+( [a-z0-9-]+)*$`)
)

func validateSection(section string) error {
	if err := routeros.ValidateRequired("section", section); err != nil {
		return err
	}
	if !sectionPattern.MatchString(section) {
		return apierrors.NewValidationError("section", section, "must be a menu path such as 'ip address'")
	}
	return nil
}

// decodeUpload returns the text carried by an upload.
func decodeUpload(content string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", apierrors.NewValidationError("content_base64", "", "is not valid base64: "+err.Error())
	}
	if !utf8.Valid(raw) {
		return "", apierrors.NewValidationError("content_base64", "", "must decode to UTF-8 text")
	}
	if len(raw) > maxUploadBytes {
		return "", apierrors.NewValidationError("content_base64", "", "decodes to more than 65535 bytes")
	}
	return string(raw), nil
}
