package routeros

import "strings"

// Outcome is the classification of one raw command result.
type Outcome int

const (
	// OutcomeEmpty is silent success (RouterOS prints nothing on success).
	OutcomeEmpty Outcome = iota
	// OutcomePayload is success with output.
	OutcomePayload
	// OutcomeFailure is device-reported or transport failure text.
	OutcomeFailure
	// OutcomeNotFound is a lookup that matched no rows.
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomePayload:
		return "payload"
	case OutcomeFailure:
		return "failure"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// noSuchItem is printed by some RouterOS versions for an empty filtered print.
const noSuchItem = "no such item"

// Classify maps raw output to an Outcome. It is a pure function of the text.
//
// The substring rules are deliberately crude: any output mentioning "error"
// counts as a failure, including log lines that merely contain the word.
func Classify(out string) Outcome {
	switch {
	case IsBlank(out):
		return OutcomeEmpty
	case IsFailure(out):
		return OutcomeFailure
	case IsNoSuchItem(out):
		return OutcomeNotFound
	default:
		return OutcomePayload
	}
}

// IsBlank reports whether out is empty or whitespace only.
func IsBlank(out string) bool {
	return strings.TrimSpace(out) == ""
}

// IsFailure reports whether out contains "failure:" or "error", ignoring case.
func IsFailure(out string) bool {
	lower := strings.ToLower(out)
	return strings.Contains(lower, "failure:") || strings.Contains(lower, "error")
}

// IsNoSuchItem reports whether out is the literal "no such item" answer.
func IsNoSuchItem(out string) bool {
	return strings.TrimSpace(out) == noSuchItem
}

// RowID returns the row identifier printed by an add command. The output
// must start with '*' or consist only of digits.
func RowID(out string) (string, bool) {
	id := strings.TrimSpace(out)
	if id == "" {
		return "", false
	}
	if strings.HasPrefix(id, "*") {
		return id, true
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}

// CountIsZero reports whether a count-only probe found no rows.
func CountIsZero(out string) bool {
	return strings.TrimSpace(out) == "0"
}

// IsExecutorError reports whether out is one of the Executor's sentinel strings.
func IsExecutorError(out string) bool {
	return strings.HasPrefix(out, ConnectFailed) || strings.HasPrefix(out, execFailedPrefix)
}

// IsEmptyListing reports whether a print produced nothing worth showing.
func IsEmptyListing(out string) bool {
	return IsBlank(out) || IsNoSuchItem(out)
}
