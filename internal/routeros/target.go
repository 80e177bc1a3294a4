package routeros

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// DefaultPort is the SSH port used when a Target does not set one.
const DefaultPort = 22

// DefaultConnectTimeout bounds TCP dial plus SSH handshake.
const DefaultConnectTimeout = 10 * time.Second

// Target identifies the SSH endpoint of one device. It is immutable once built
// and safe to share between goroutines.
type Target struct {
	Host     string
	Port     int
	Username string
	Password string

	// KeyFile is a path to a PEM private key. KeyPassphrase unlocks it when set.
	KeyFile       string
	KeyPassphrase string

	// KnownHostsFile enables host key verification. Empty accepts any key.
	KnownHostsFile string

	ConnectTimeout time.Duration
}

// Address returns host:port.
func (t Target) Address() string {
	port := t.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(t.Host, strconv.Itoa(port))
}

func (t Target) connectTimeout() time.Duration {
	if t.ConnectTimeout <= 0 {
		return DefaultConnectTimeout
	}
	return t.ConnectTimeout
}

// VerifiesHostKey reports whether a known_hosts file is configured.
func (t Target) VerifiesHostKey() bool {
	return t.KnownHostsFile != ""
}

// clientConfig builds the SSH client configuration for this target.
func (t Target) clientConfig() (*ssh.ClientConfig, error) {
	auth, err := t.authMethods()
	if err != nil {
		return nil, err
	}

	hostKey := ssh.InsecureIgnoreHostKey()
	if t.KnownHostsFile != "" {
		hostKey, err = knownhosts.New(t.KnownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("load known hosts %s: %w", t.KnownHostsFile, err)
		}
	}

	return &ssh.ClientConfig{
		User:            t.Username,
		Auth:            auth,
		HostKeyCallback: hostKey,
		Timeout:         t.connectTimeout(),
	}, nil
}

func (t Target) authMethods() ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if t.KeyFile != "" {
		pem, err := os.ReadFile(t.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("read private key: %w", err)
		}
		var signer ssh.Signer
		if t.KeyPassphrase != "" {
			signer, err = ssh.ParsePrivateKeyWithPassphrase(pem, []byte(t.KeyPassphrase))
		} else {
			signer, err = ssh.ParsePrivateKey(pem)
		}
		if err != nil {
			return nil, fmt.Errorf("parse private key %s: %w", t.KeyFile, err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	// RouterOS answers both plain password and keyboard-interactive auth.
	password := t.Password
	methods = append(methods,
		ssh.Password(password),
		ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
			answers := make([]string, len(questions))
			for i := range answers {
				answers[i] = password
			}
			return answers, nil
		}),
	)
	return methods, nil
}
