// Package routerostest provides a scripted Runner for tests.
package routerostest

import (
	"context"
	"strings"
	"sync"
	"testing"
)

// Runner replays queued responses and records every command it receives.
// Responses keyed by a command prefix take precedence over the queue.
type Runner struct {
	mu       sync.Mutex
	queue    []string
	byPrefix []prefixResponse
	commands []string
}

type prefixResponse struct {
	prefix string
	out    string
}

// New returns a Runner that answers commands with outputs, in order. Once the
// queue is drained, commands get an empty string.
func New(outputs ...string) *Runner {
	return &Runner{queue: outputs}
}

// Respond answers every command starting with prefix with out.
func (r *Runner) Respond(prefix, out string) *Runner {
	r.mu.Lock()
	r.byPrefix = append(r.byPrefix, prefixResponse{prefix, out})
	r.mu.Unlock()
	return r
}

// Run implements routeros.Runner.
func (r *Runner) Run(_ context.Context, command string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, command)

	for _, p := range r.byPrefix {
		if strings.HasPrefix(command, p.prefix) {
			return p.out
		}
	}
	if len(r.queue) == 0 {
		return ""
	}
	out := r.queue[0]
	r.queue = r.queue[1:]
	return out
}

// Commands returns the commands received so far.
func (r *Runner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.commands...)
}

// Last returns the most recent command, or "" when none was run.
func (r *Runner) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commands) == 0 {
		return ""
	}
	return r.commands[len(r.commands)-1]
}

// ExpectCommands fails the test unless exactly want was run, in order.
func (r *Runner) ExpectCommands(t testing.TB, want ...string) {
	t.Helper()
	got := r.Commands()
	if len(got) != len(want) {
		t.Fatalf("ran %d commands, want %d:\n got: %q\nwant: %q", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d:\n got: %s\nwant: %s", i, got[i], want[i])
		}
	}
}

// ExpectNone fails the test if any command was run.
func (r *Runner) ExpectNone(t testing.TB) {
	t.Helper()
	if got := r.Commands(); len(got) != 0 {
		t.Fatalf("expected no device contact, ran %q", got)
	}
}
