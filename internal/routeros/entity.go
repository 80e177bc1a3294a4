package routeros

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entity describes one RouterOS menu whose rows are managed with the usual
// create, list, get, update, remove, enable and disable operations.
type Entity struct {
	// Path is the menu, e.g. "/ip dns static".
	Path string
	// Noun is the mid-sentence name, e.g. "static DNS entry".
	Noun string
	// Title heads detail output, e.g. "STATIC DNS ENTRY".
	Title string
	// Plural heads list output, e.g. "STATIC DNS ENTRIES".
	Plural string
	// Verb is "add" (default) or "create" and only affects messages.
	Verb string
	// EmptyList is returned when a list finds nothing.
	EmptyList string
}

func (e Entity) verb() string {
	if e.Verb == "" {
		return "add"
	}
	return e.Verb
}

func (e Entity) past() string {
	v := e.verb()
	if strings.HasSuffix(v, "e") {
		return v + "d"
	}
	return v + "ed"
}

// Subject is Noun with its first letter capitalized.
func (e Entity) Subject() string {
	r, size := utf8.DecodeRuneInString(e.Noun)
	if r == utf8.RuneError {
		return e.Noun
	}
	return string(unicode.ToUpper(r)) + e.Noun[size:]
}

// Add starts an add command for this menu.
func (e Entity) Add() *Command {
	return NewCommand(e.Path, "add")
}

// Set starts a set command addressing ref.
func (e Entity) Set(ref Ref) *Command {
	return NewCommand(e.Path, "set").Target(ref)
}

// Print starts a print command for this menu.
func (e Entity) Print() *Command {
	return NewCommand(e.Path, "print")
}

// NotFound is the message for a missing row.
func (e Entity) NotFound(ref Ref) string {
	if ref.IsID() {
		return e.Subject() + " with ID '" + ref.Value() + "' not found."
	}
	return e.Subject() + " '" + ref.Value() + "' not found."
}

// Removed is the message for a removed row.
func (e Entity) Removed(ref Ref) string {
	if ref.IsID() {
		return e.Subject() + " with ID '" + ref.Value() + "' removed successfully."
	}
	return e.Subject() + " '" + ref.Value() + "' removed successfully."
}

// Create runs add, then fetches the new row by the id the device printed or,
// when it printed nothing, by lookup. Any other output is a rejection:
// RouterOS answers a successful add with nothing or the new row id only.
func (e Entity) Create(ctx context.Context, r Runner, add *Command, lookup *Where) string {
	out := r.Run(ctx, add.String())
	if !IsBlank(out) {
		id, ok := RowID(out)
		if !ok {
			return "Failed to " + e.verb() + " " + e.Noun + ": " + out
		}
		details := e.detail(ctx, r, NewWhere().EqIdent(".id", id))
		if IsBlank(details) {
			return e.Subject() + " " + e.past() + " with ID: " + id
		}
		return e.created(details)
	}

	details := e.detail(ctx, r, lookup)
	if IsBlank(details) {
		return e.Subject() + " " + e.past() + " but unable to verify."
	}
	return e.created(details)
}

func (e Entity) created(details string) string {
	return e.Subject() + " " + e.past() + " successfully:\n\n" + details
}

func (e Entity) detail(ctx context.Context, r Runner, where *Where) string {
	return r.Run(ctx, e.Print().Flag("detail").Where(where).String())
}

// List prints rows matching where, which may be nil.
func (e Entity) List(ctx context.Context, r Runner, where *Where) string {
	return e.ListWith(ctx, r, e.Print().Where(where))
}

// ListWith runs a prepared print command and labels the output.
func (e Entity) ListWith(ctx context.Context, r Runner, print *Command) string {
	out := r.Run(ctx, print.String())
	switch {
	case IsEmptyListing(out):
		return e.EmptyList
	case IsExecutorError(out):
		return out
	default:
		return e.Plural + ":\n\n" + out
	}
}

// Get prints the detail view of one row.
func (e Entity) Get(ctx context.Context, r Runner, ref Ref) string {
	out := e.detail(ctx, r, ref.Predicate())
	if IsBlank(out) {
		return e.NotFound(ref)
	}
	return e.Title + " DETAILS:\n\n" + out
}

// Update runs set and re-fetches the row by refetch. A set command without
// field tokens is not sent.
func (e Entity) Update(ctx context.Context, r Runner, set *Command, refetch Ref) string {
	if set.Args() == 0 {
		return "No updates specified."
	}

	out := r.Run(ctx, set.String())
	if IsFailure(out) {
		return "Failed to update " + e.Noun + ": " + out
	}

	details := e.detail(ctx, r, refetch.Predicate())
	return e.Subject() + " updated successfully:\n\n" + details
}

// Remove checks that the row exists and removes it.
func (e Entity) Remove(ctx context.Context, r Runner, ref Ref) string {
	count := r.Run(ctx, e.Print().Flag("count-only").Where(ref.Predicate()).String())
	if CountIsZero(count) {
		return e.NotFound(ref)
	}

	out := r.Run(ctx, NewCommand(e.Path, "remove").Target(ref).String())
	if IsFailure(out) {
		return "Failed to remove " + e.Noun + ": " + out
	}
	return e.Removed(ref)
}

// Enable sets disabled=no on the row.
func (e Entity) Enable(ctx context.Context, r Runner, ref Ref) string {
	return e.Update(ctx, r, e.Set(ref).Bool("disabled", false), ref)
}

// Disable sets disabled=yes on the row.
func (e Entity) Disable(ctx context.Context, r Runner, ref Ref) string {
	return e.Update(ctx, r, e.Set(ref).Bool("disabled", true), ref)
}
