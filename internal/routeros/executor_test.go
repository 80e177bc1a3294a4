package routeros

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/infra"
)

// fakeSession is a scripted Session.
type fakeSession struct {
	connectErr error
	out        string
	execErr    error
	block      bool

	mu       sync.Mutex
	executed []string
	closed   int
}

func (f *fakeSession) Connect(ctx context.Context) error {
	return f.connectErr
}

func (f *fakeSession) Execute(ctx context.Context, command string) (string, error) {
	f.mu.Lock()
	f.executed = append(f.executed, command)
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.out, f.execErr
}

func (f *fakeSession) Close() error {
	f.mu.Lock()
	f.closed++
	f.mu.Unlock()
	return nil
}

func (f *fakeSession) counts() (executed, closed int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.executed), f.closed
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestExecutor(sess *fakeSession, opts ...Option) *Executor {
	opts = append([]Option{WithSessionFactory(func(Target) Session { return sess })}, opts...)
	return NewExecutor(Target{Host: "192.0.2.1", Username: "admin"}, quietLogger(), opts...)
}

func TestExecutor_Success(t *testing.T) {
	sess := &fakeSession{out: "Flags: X - disabled\n 0 name=\"a\""}
	e := newTestExecutor(sess)

	got := e.Run(context.Background(), "/ip dns static print")
	if got != sess.out {
		t.Errorf("Run() = %q, want %q", got, sess.out)
	}
	executed, closed := sess.counts()
	if executed != 1 {
		t.Errorf("executed %d commands, want 1", executed)
	}
	if closed != 1 {
		t.Errorf("closed %d times, want 1", closed)
	}
}

func TestExecutor_ConnectFailure(t *testing.T) {
	sess := &fakeSession{connectErr: errors.New("ssh: unable to authenticate")}
	e := newTestExecutor(sess)

	got := e.Run(context.Background(), "/ip route print")
	if got != ConnectFailed {
		t.Errorf("Run() = %q, want %q", got, ConnectFailed)
	}
	executed, closed := sess.counts()
	if executed != 0 {
		t.Errorf("Execute called %d times after failed connect", executed)
	}
	if closed != 1 {
		t.Errorf("closed %d times, want 1", closed)
	}
}

func TestExecutor_ExecuteError(t *testing.T) {
	sess := &fakeSession{execErr: io.ErrUnexpectedEOF}
	e := newTestExecutor(sess)

	got := e.Run(context.Background(), "/system backup save")
	want := "Error executing command: unexpected EOF"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
	if _, closed := sess.counts(); closed != 1 {
		t.Errorf("closed %d times, want 1", closed)
	}
}

func TestExecutor_Timeout(t *testing.T) {
	sess := &fakeSession{block: true}
	e := newTestExecutor(sess, WithTimeout(20*time.Millisecond))

	got := e.Run(context.Background(), "/log print")
	want := "Error executing command: command timed out after 20ms"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
	if !IsExecutorError(got) {
		t.Error("timeout result should be an executor sentinel")
	}
}

func TestExecutor_CallerCancel(t *testing.T) {
	sess := &fakeSession{block: true}
	e := newTestExecutor(sess, WithTimeout(0))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	got := e.Run(ctx, "/log print")
	if got != "Error executing command: context canceled" {
		t.Errorf("Run() = %q", got)
	}
}

func TestExecutor_BreakerFailsFast(t *testing.T) {
	var sessions atomic.Int32
	factory := func(Target) Session {
		sessions.Add(1)
		return &fakeSession{connectErr: errors.New("dial tcp 192.0.2.1:22: connection refused")}
	}
	e := NewExecutor(Target{Host: "192.0.2.1"}, quietLogger(),
		WithSessionFactory(factory),
		WithBreaker(infra.NewBreaker(2, time.Hour)),
	)

	for range 5 {
		if got := e.Run(context.Background(), "/ip dns print"); got != ConnectFailed {
			t.Fatalf("Run() = %q, want %q", got, ConnectFailed)
		}
	}
	if n := sessions.Load(); n != 2 {
		t.Errorf("dialed %d times, want 2 before the breaker opened", n)
	}
}

// ctxSession fails Connect with the context error when ctx is already done.
type ctxSession struct {
	connectErr error
	out        string
}

func (c *ctxSession) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.connectErr
}

func (c *ctxSession) Execute(context.Context, string) (string, error) { return c.out, nil }
func (c *ctxSession) Close() error                                    { return nil }

func TestExecutor_CancelledProbeDoesNotWedgeBreaker(t *testing.T) {
	var calls atomic.Int32
	factory := func(Target) Session {
		if calls.Add(1) == 1 {
			return &ctxSession{connectErr: errors.New("dial tcp 192.0.2.1:22: connection refused")}
		}
		return &ctxSession{out: "ok"}
	}
	breaker := infra.NewBreaker(1, 10*time.Millisecond)
	e := NewExecutor(Target{Host: "192.0.2.1"}, quietLogger(),
		WithSessionFactory(factory),
		WithBreaker(breaker),
		WithTimeout(0),
	)

	if got := e.Run(context.Background(), "/ip dns print"); got != ConnectFailed {
		t.Fatalf("first Run() = %q, want %q", got, ConnectFailed)
	}
	time.Sleep(20 * time.Millisecond)

	// The half-open probe is admitted, then abandoned by its caller before
	// the connect completes. This is the tail of run with the ctx already done.
	if !breaker.Allow() {
		t.Fatal("probe should be allowed after the reset window")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if res := e.exec(ctx, "/ip dns print"); !errors.Is(res.connectErr, context.Canceled) {
		t.Fatalf("connectErr = %v, want context.Canceled", res.connectErr)
	}
	if breaker.State() != infra.CircuitHalfOpen {
		t.Fatalf("state = %v, want half-open", breaker.State())
	}

	for i := range 3 {
		if got := e.Run(context.Background(), "/ip dns print"); got != "ok" {
			t.Fatalf("Run() #%d = %q, want ok (breaker %v)", i, got, breaker.State())
		}
	}
	if breaker.State() != infra.CircuitClosed {
		t.Errorf("state = %v, want closed", breaker.State())
	}
}

func TestExecutor_MaxSessions(t *testing.T) {
	var active, peak atomic.Int32
	release := make(chan struct{})
	factory := func(Target) Session {
		return &gateSession{active: &active, peak: &peak, release: release}
	}
	e := NewExecutor(Target{Host: "192.0.2.1"}, quietLogger(),
		WithSessionFactory(factory),
		WithMaxSessions(2),
	)

	var wg sync.WaitGroup
	for range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Run(context.Background(), "/ip route print")
		}()
	}
	time.Sleep(30 * time.Millisecond)
	close(release)
	wg.Wait()

	if p := peak.Load(); p > 2 {
		t.Errorf("peak concurrent sessions = %d, want <= 2", p)
	}
}

type gateSession struct {
	active, peak *atomic.Int32
	release      chan struct{}
}

func (g *gateSession) Connect(context.Context) error {
	n := g.active.Add(1)
	for {
		p := g.peak.Load()
		if n <= p || g.peak.CompareAndSwap(p, n) {
			break
		}
	}
	return nil
}

func (g *gateSession) Execute(ctx context.Context, _ string) (string, error) {
	select {
	case <-g.release:
	case <-ctx.Done():
	}
	return "", nil
}

func (g *gateSession) Close() error {
	g.active.Add(-1)
	return nil
}

func TestExecutor_LogsRedactedCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sess := &fakeSession{}
	e := NewExecutor(Target{Host: "192.0.2.1"}, logger, WithSessionFactory(func(Target) Session { return sess }))

	e.Run(context.Background(), `/interface wireguard add name=wg0 private-key="c2VjcmV0"`)

	logs := buf.String()
	if strings.Contains(logs, "c2VjcmV0") {
		t.Errorf("private key leaked into logs: %s", logs)
	}
	if !strings.Contains(logs, "exec_id=") {
		t.Errorf("logs missing exec_id: %s", logs)
	}
}

func TestExecutor_SentinelLoggedAtError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sess := &fakeSession{connectErr: errors.New("refused")}
	e := NewExecutor(Target{Host: "192.0.2.1"}, logger, WithSessionFactory(func(Target) Session { return sess }))

	e.Run(context.Background(), "/ip dns print")

	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("sentinel result not logged at error level: %s", buf.String())
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		command  string
		wantMenu string
		wantVerb string
	}{
		{`/ip dns static add name="x"`, "/ip dns static", "add"},
		{"/ip route print count-only where .id=*5", "/ip route", "print"},
		{"/interface wifi registration-table print", "/interface wifi registration-table", "print"},
		{`:put [/file get [find name="a.rsc"] contents]`, "", "put"},
		{"/ip dns cache flush", "/ip dns cache", "flush"},
		{"/system logging action set [find name=memory] memory-lines=1", "/system logging action", "set"},
		{"", "", ""},
	}

	for _, tt := range tests {
		menu, verb := splitCommand(tt.command)
		if menu != tt.wantMenu || verb != tt.wantVerb {
			t.Errorf("splitCommand(%q) = (%q, %q), want (%q, %q)", tt.command, menu, verb, tt.wantMenu, tt.wantVerb)
		}
	}
}
