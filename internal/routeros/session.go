package routeros

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// ErrNotConnected is returned by Execute before a successful Connect.
var ErrNotConnected = errors.New("not connected")

// Session is one authenticated channel to a device. A session is used for a
// single command and then closed; it is never reused.
type Session interface {
	// Connect establishes the transport. Errors cover dial, handshake and auth.
	Connect(ctx context.Context) error
	// Execute runs exactly one command and returns stdout, or stderr when
	// stdout is empty.
	Execute(ctx context.Context, command string) (string, error)
	// Close releases the transport. It is safe to call more than once.
	Close() error
}

// SessionFactory creates a fresh, unconnected session for a target.
type SessionFactory func(Target) Session

// NewSSHSession is the production SessionFactory.
func NewSSHSession(target Target) Session {
	return &SSHSession{target: target}
}

// SSHSession implements Session over golang.org/x/crypto/ssh.
type SSHSession struct {
	target Target

	mu     sync.Mutex
	client *ssh.Client
}

// Connect dials the target and performs the SSH handshake.
func (s *SSHSession) Connect(ctx context.Context) error {
	cfg, err := s.target.clientConfig()
	if err != nil {
		return err
	}

	addr := s.target.Address()
	dialer := net.Dialer{Timeout: cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	// The handshake has no context of its own; bound it with a deadline.
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		conn.Close()
		return fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Time{})

	s.mu.Lock()
	s.client = ssh.NewClient(c, chans, reqs)
	s.mu.Unlock()
	return nil
}

// Execute runs command on a new channel of the connected client.
func (s *SSHSession) Execute(ctx context.Context, command string) (string, error) {
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()
	if client == nil {
		return "", ErrNotConnected
	}

	sess, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("open channel: %w", err)
	}
	defer sess.Close()

	var stdout, stderr bytes.Buffer
	sess.Stdout = &stdout
	sess.Stderr = &stderr

	done := make(chan error, 1)
	go func() { done <- sess.Run(command) }()

	select {
	case <-ctx.Done():
		sess.Close()
		return "", ctx.Err()
	case err = <-done:
	}

	if err != nil && !isExitStatus(err) {
		return "", err
	}

	if out := stdout.String(); out != "" {
		return out, nil
	}
	return stderr.String(), nil
}

// Close closes the client connection if one is open.
func (s *SSHSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

// isExitStatus reports errors that only carry the remote exit status. RouterOS
// output is the answer either way.
func isExitStatus(err error) bool {
	var exitErr *ssh.ExitError
	var missing *ssh.ExitMissingError
	return errors.As(err, &exitErr) || errors.As(err, &missing)
}
