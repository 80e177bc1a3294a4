package routeros

import (
	"regexp"
	"slices"
	"strings"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
)

// rowIDPattern matches RouterOS .id values. The leading '*' is optional since
// some callers pass the bare hex number.
var rowIDPattern = regexp.MustCompile(`^\*?[0-9A-Fa-f]+$`)

// ValidateID checks a row identifier before it is spliced into a command.
func ValidateID(field, id string) error {
	if id == "" {
		return apierrors.Required(field)
	}
	if !rowIDPattern.MatchString(id) {
		return apierrors.NewValidationError(field, id, "must be a RouterOS row id such as *1A")
	}
	return nil
}

// ValidateRequired checks that a string argument is not blank.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apierrors.Required(field)
	}
	return nil
}

// ValidateOneOf checks value against an enumeration. An empty value passes;
// callers decide whether the argument is required.
func ValidateOneOf(field, value string, allowed ...string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return apierrors.NotOneOf(field, value, allowed)
}

// ValidateRange checks an optional integer against [lo, hi].
func ValidateRange(field string, n *int, lo, hi int) error {
	if n == nil || (*n >= lo && *n <= hi) {
		return nil
	}
	return apierrors.OutOfRange(field, *n, lo, hi)
}
