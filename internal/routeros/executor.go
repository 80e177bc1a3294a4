package routeros

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/semaphore"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/infra"
	"github.com/olgasafonova/mikrotik-mcp-server/metrics"
	"github.com/olgasafonova/mikrotik-mcp-server/tracing"
)

// Executor sentinels. Callers treat these strings as the device's answer.
const (
	ConnectFailed    = "Error: Failed to connect to MikroTik device"
	execFailedPrefix = "Error executing command: "
)

// Executor defaults.
const (
	DefaultCommandTimeout = 30 * time.Second
	DefaultMaxSessions    = 4
	DefaultBreakerReset   = 30 * time.Second
	DefaultBreakerTrips   = 5
)

// Runner runs one RouterOS command and returns its text. Implementations never
// return an error; failures come back as sentinel text.
type Runner interface {
	Run(ctx context.Context, command string) string
}

// Executor runs each command on a fresh session: connect, execute, close.
// It is safe for concurrent use.
type Executor struct {
	target     Target
	logger     *slog.Logger
	newSession SessionFactory
	timeout    time.Duration
	sem        *semaphore.Weighted
	breaker    *infra.Breaker
}

// Option configures an Executor.
type Option func(*Executor)

// WithSessionFactory replaces the SSH session constructor.
func WithSessionFactory(f SessionFactory) Option {
	return func(e *Executor) { e.newSession = f }
}

// WithTimeout bounds connect plus execute. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) { e.timeout = d }
}

// WithMaxSessions bounds the number of SSH sessions open at once.
func WithMaxSessions(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// WithBreaker replaces the connect circuit breaker.
func WithBreaker(b *infra.Breaker) Option {
	return func(e *Executor) { e.breaker = b }
}

// NewExecutor returns an Executor bound to target.
func NewExecutor(target Target, logger *slog.Logger, opts ...Option) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Executor{
		target:     target,
		logger:     logger,
		newSession: NewSSHSession,
		timeout:    DefaultCommandTimeout,
		sem:        semaphore.NewWeighted(DefaultMaxSessions),
		breaker:    infra.NewBreaker(DefaultBreakerTrips, DefaultBreakerReset),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Target returns the device this executor talks to.
func (e *Executor) Target() Target {
	return e.target
}

// Run executes command and returns the device output or a sentinel string.
func (e *Executor) Run(ctx context.Context, command string) string {
	execID := uuid.NewString()
	menu, verb := splitCommand(command)

	ctx, span := tracing.StartSpan(ctx, "routeros.exec")
	defer span.End()
	tracing.AddDeviceAttributes(span, e.target.Host, menu, verb, execID)

	logger := e.logger.With("exec_id", execID, "host", e.target.Host)
	logger.Info("Executing RouterOS command", "command", Redact(command))

	start := time.Now()
	out := e.run(ctx, logger, command)
	duration := time.Since(start)

	outcome := Classify(out).String()
	if IsExecutorError(out) {
		outcome = "error"
		span.SetStatus(codes.Error, out)
		logger.Error("RouterOS command failed", "result", out, "duration", duration)
	} else {
		span.SetStatus(codes.Ok, "")
		logger.Info("RouterOS command result", "result", out, "duration", duration)
	}
	tracing.AddOutcome(span, outcome)
	metrics.RecordCommand(verb, outcome, duration.Seconds())
	return out
}

type execResult struct {
	out        string
	err        error
	connectErr error
}

func (e *Executor) run(ctx context.Context, logger *slog.Logger, command string) string {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	if !e.sem.TryAcquire(1) {
		metrics.SessionWaits.Inc()
		if err := e.sem.Acquire(ctx, 1); err != nil {
			return execFailedPrefix + e.describe(err)
		}
	}
	defer e.sem.Release(1)

	if !e.breaker.Allow() {
		logger.Warn("Skipping connect", "error", e.breaker.Rejection())
		metrics.RecordConnectError("circuit_open")
		return ConnectFailed
	}

	// The session closes itself on the worker goroutine, so an abandoned
	// call still releases its connection once the transport gives up.
	done := make(chan execResult, 1)
	go func() {
		done <- e.exec(ctx, command)
	}()

	var res execResult
	select {
	case <-ctx.Done():
		return execFailedPrefix + e.describe(ctx.Err())
	case res = <-done:
	}

	switch {
	case res.connectErr != nil:
		logger.Warn("Failed to connect to device", "address", e.target.Address(), "error", res.connectErr)
		return ConnectFailed
	case res.err != nil:
		return execFailedPrefix + e.describe(res.err)
	default:
		return res.out
	}
}

func (e *Executor) exec(ctx context.Context, command string) execResult {
	sess := e.newSession(e.target)
	defer sess.Close()

	if err := sess.Connect(ctx); err != nil {
		if ctx.Err() == nil {
			e.breaker.Failure()
		} else {
			e.breaker.Cancel()
		}
		metrics.RecordConnectError(connectReason(err))
		return execResult{connectErr: err}
	}
	e.breaker.Success()

	metrics.ActiveSessions.Inc()
	defer metrics.ActiveSessions.Dec()

	out, err := sess.Execute(ctx, command)
	return execResult{out: out, err: err}
}

func (e *Executor) describe(err error) string {
	if errors.Is(err, context.DeadlineExceeded) && e.timeout > 0 {
		return fmt.Sprintf("command timed out after %s", e.timeout)
	}
	return err.Error()
}

func connectReason(err error) string {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	case strings.Contains(err.Error(), "unable to authenticate"):
		return "auth"
	case strings.Contains(err.Error(), "private key"), strings.Contains(err.Error(), "known hosts"):
		return "config"
	default:
		return "dial"
	}
}

// knownVerbs are the RouterOS command words reported as the metric verb.
var knownVerbs = map[string]bool{
	"add": true, "set": true, "remove": true, "print": true, "enable": true,
	"disable": true, "export": true, "import": true, "check": true, "flush": true,
	"save": true, "load": true, "scan": true, "monitor": true, "get": true,
	"put": true, "unset": true, "reset": true, "resolve": true,
}

// splitCommand returns the menu path and verb of a command line, for labels.
func splitCommand(command string) (menu, verb string) {
	var path []string
	for _, tok := range strings.Fields(command) {
		word := strings.TrimPrefix(tok, ":")
		if knownVerbs[word] {
			return strings.Join(path, " "), word
		}
		if strings.ContainsAny(tok, `="[`) {
			break
		}
		path = append(path, tok)
	}
	if len(path) == 0 {
		return "", ""
	}
	last := path[len(path)-1]
	return strings.Join(path, " "), strings.TrimLeft(last, "/:")
}
