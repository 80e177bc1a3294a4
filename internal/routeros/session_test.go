package routeros

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// testDevice is an in-process SSH server that answers exec requests the way
// a RouterOS device would: output on stdout, errors on stderr, and an exit
// status that carries no meaning for the caller.
type testDevice struct {
	addr   string
	hostID ssh.Signer
}

func newSigner(t *testing.T) ssh.Signer {
	t.Helper()
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate host key: %v", err)
	}
	signer, err := ssh.NewSignerFromKey(key)
	if err != nil {
		t.Fatalf("host signer: %v", err)
	}
	return signer
}

func startTestDevice(t *testing.T) *testDevice {
	t.Helper()

	dev := &testDevice{hostID: newSigner(t)}
	cfg := &ssh.ServerConfig{
		PasswordCallback: func(c ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
			if c.User() == "admin" && string(pass) == "secret" {
				return nil, nil
			}
			return nil, errors.New("access denied")
		},
	}
	cfg.AddHostKey(dev.hostID)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	dev.addr = ln.Addr().String()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go dev.serve(conn, cfg)
		}
	}()
	return dev
}

func (d *testDevice) serve(conn net.Conn, cfg *ssh.ServerConfig) {
	defer conn.Close()
	_, chans, reqs, err := ssh.NewServerConn(conn, cfg)
	if err != nil {
		return
	}
	go ssh.DiscardRequests(reqs)

	for newCh := range chans {
		if newCh.ChannelType() != "session" {
			_ = newCh.Reject(ssh.UnknownChannelType, "session only")
			continue
		}
		ch, chReqs, err := newCh.Accept()
		if err != nil {
			continue
		}
		go func() {
			for req := range chReqs {
				if req.Type != "exec" {
					_ = req.Reply(false, nil)
					continue
				}
				var payload struct{ Command string }
				if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
					_ = req.Reply(false, nil)
					continue
				}
				_ = req.Reply(true, nil)
				go d.exec(ch, payload.Command)
			}
		}()
	}
}

func exitStatus(ch ssh.Channel, code uint32) {
	_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{code}))
}

func (d *testDevice) exec(ch ssh.Channel, command string) {
	defer ch.Close()
	switch command {
	case "/system identity print":
		_, _ = io.WriteString(ch, "  name: edge-router\n")
		exitStatus(ch, 0)
	case "/bogus":
		_, _ = io.WriteString(ch.Stderr(), "bad command name bogus (line 1 column 2)\n")
		exitStatus(ch, 1)
	case "/ip dns cache flush":
		exitStatus(ch, 0)
	case "/partial":
		_, _ = io.WriteString(ch, "partial")
	case "/tool sniffer quick":
		// Never answers; returns once the client closes the channel.
		_, _ = io.Copy(io.Discard, ch)
	}
}

func (d *testDevice) target(t *testing.T) Target {
	t.Helper()
	host, port, err := net.SplitHostPort(d.addr)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := strconv.Atoi(port)
	return Target{
		Host:           host,
		Port:           p,
		Username:       "admin",
		Password:       "secret",
		ConnectTimeout: 5 * time.Second,
	}
}

func connected(t *testing.T, target Target) Session {
	t.Helper()
	sess := NewSSHSession(target)
	if err := sess.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { sess.Close() })
	return sess
}

func TestSSHSession_Execute(t *testing.T) {
	dev := startTestDevice(t)

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"stdout", "/system identity print", "  name: edge-router\n"},
		{"stderr when stdout is empty", "/bogus", "bad command name bogus (line 1 column 2)\n"},
		{"silent success", "/ip dns cache flush", ""},
		{"missing exit status", "/partial", "partial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := connected(t, dev.target(t))
			got, err := sess.Execute(context.Background(), tt.command)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Execute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSSHSession_ExecuteBeforeConnect(t *testing.T) {
	sess := NewSSHSession(Target{Host: "192.0.2.1"})
	_, err := sess.Execute(context.Background(), "/system identity print")
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Execute() error = %v, want ErrNotConnected", err)
	}
	if err.Error() != "not connected" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestSSHSession_CloseIsIdempotent(t *testing.T) {
	if err := NewSSHSession(Target{Host: "192.0.2.1"}).Close(); err != nil {
		t.Errorf("Close() on a never-connected session = %v", err)
	}

	dev := startTestDevice(t)
	sess := NewSSHSession(dev.target(t))
	if err := sess.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if err := sess.Close(); err != nil {
		t.Errorf("first Close() = %v", err)
	}
	if err := sess.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if _, err := sess.Execute(context.Background(), "/system identity print"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Execute() after Close = %v, want ErrNotConnected", err)
	}
}

func TestSSHSession_ExecuteCancelled(t *testing.T) {
	dev := startTestDevice(t)
	sess := connected(t, dev.target(t))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := sess.Execute(ctx, "/tool sniffer quick")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Execute() error = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Execute() returned after %v, want prompt return on cancel", elapsed)
	}
}

func TestSSHSession_ConnectFailures(t *testing.T) {
	dev := startTestDevice(t)

	wrongPassword := dev.target(t)
	wrongPassword.Password = "guess"

	closed, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	refused := dev.target(t)
	refused.Port = closed.Addr().(*net.TCPAddr).Port
	closed.Close()

	missingKey := dev.target(t)
	missingKey.KeyFile = filepath.Join(t.TempDir(), "id_ed25519")

	tests := []struct {
		name       string
		target     Target
		wantErr    string
		wantReason string
	}{
		{"wrong password", wrongPassword, "unable to authenticate", "auth"},
		{"refused", refused, "dial ", "dial"},
		{"unreadable key", missingKey, "read private key", "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSSHSession(tt.target)
			defer sess.Close()

			err := sess.Connect(context.Background())
			if err == nil {
				t.Fatal("Connect() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Connect() error = %v, want it to contain %q", err, tt.wantErr)
			}
			if got := connectReason(err); got != tt.wantReason {
				t.Errorf("connectReason() = %q, want %q", got, tt.wantReason)
			}
		})
	}
}

func TestSSHSession_KnownHosts(t *testing.T) {
	dev := startTestDevice(t)

	write := func(t *testing.T, key ssh.PublicKey) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "known_hosts")
		line := knownhosts.Line([]string{dev.addr}, key) + "\n"
		if err := os.WriteFile(path, []byte(line), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("matching key", func(t *testing.T) {
		target := dev.target(t)
		target.KnownHostsFile = write(t, dev.hostID.PublicKey())
		connected(t, target)
	})

	t.Run("changed key", func(t *testing.T) {
		target := dev.target(t)
		target.KnownHostsFile = write(t, newSigner(t).PublicKey())
		sess := NewSSHSession(target)
		defer sess.Close()
		if err := sess.Connect(context.Background()); err == nil {
			t.Error("Connect() accepted a host key that does not match known_hosts")
		}
	})
}
