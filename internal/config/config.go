// Package config loads server settings from flags, MIKROTIK_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
)

// EnvPrefix is prepended to every environment variable. Nested keys use a
// double underscore, so mcp.port is read from MIKROTIK_MCP__PORT.
const EnvPrefix = "MIKROTIK"

// Transports accepted by mcp.transport.
const (
	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

var (
	transports = []string{TransportStdio, TransportSSE, TransportStreamableHTTP}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// Config is the merged server configuration.
type Config struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	KeyFilename   string `mapstructure:"key_filename"`
	KeyPassphrase string `mapstructure:"key_passphrase"`
	KnownHosts    string `mapstructure:"known_hosts"`

	ConnectTimeout   time.Duration `mapstructure:"connect_timeout"`
	CommandTimeout   time.Duration `mapstructure:"command_timeout"`
	MaxSessions      int           `mapstructure:"max_sessions"`
	BreakerThreshold int           `mapstructure:"breaker_threshold"`

	LogLevel string `mapstructure:"log_level"`

	MCP MCP `mapstructure:"mcp"`
}

// MCP holds the client-facing transport settings.
type MCP struct {
	Transport   string `mapstructure:"transport"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	AuthToken   string `mapstructure:"auth_token"`
	RateLimit   int    `mapstructure:"rate_limit"`
	MaxBodySize int64  `mapstructure:"max_body_size"`
}

// option describes one configuration key and the flag that sets it.
type option struct {
	key   string
	flag  string
	def   any
	usage string
}

var options = []option{
	{"host", "host", "127.0.0.1", "MikroTik device address"},
	{"port", "port", routeros.DefaultPort, "SSH port"},
	{"username", "username", "admin", "SSH username"},
	{"password", "password", "", "SSH password"},
	{"key_filename", "key-filename", "", "path to an SSH private key"},
	{"key_passphrase", "key-passphrase", "", "passphrase for the private key"},
	{"known_hosts", "known-hosts", "", "known_hosts file for host key verification (empty accepts any key)"},
	{"connect_timeout", "connect-timeout", routeros.DefaultConnectTimeout, "TCP dial plus SSH handshake timeout"},
	{"command_timeout", "command-timeout", routeros.DefaultCommandTimeout, "per-command timeout, 0 disables it"},
	{"max_sessions", "max-sessions", routeros.DefaultMaxSessions, "maximum concurrent SSH sessions"},
	{"breaker_threshold", "breaker-threshold", routeros.DefaultBreakerTrips, "consecutive connect failures before failing fast, 0 disables"},
	{"log_level", "log-level", "info", "log level: debug, info, warn, error"},
	{"mcp.transport", "mcp.transport", TransportStdio, "MCP transport: stdio, sse, streamable-http"},
	{"mcp.host", "mcp.host", "0.0.0.0", "HTTP listen address"},
	{"mcp.port", "mcp.port", 8000, "HTTP listen port"},
	{"mcp.auth_token", "mcp.auth-token", "", "bearer token required on HTTP transports"},
	{"mcp.rate_limit", "mcp.rate-limit", 60, "requests per minute per client IP, 0 disables"},
	{"mcp.max_body_size", "mcp.max-body-size", int64(1 << 20), "maximum HTTP request body in bytes"},
}

// RegisterFlags adds one flag per configuration key to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	for _, o := range options {
		switch def := o.def.(type) {
		case string:
			fs.String(o.flag, def, o.usage)
		case int:
			fs.Int(o.flag, def, o.usage)
		case int64:
			fs.Int64(o.flag, def, o.usage)
		case time.Duration:
			fs.Duration(o.flag, def, o.usage)
		}
	}
}

// Load merges defaults, the YAML file at path (if any), the environment and
// the flags that were set on fs. fs may be nil.
func Load(fs *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	for _, o := range options {
		v.SetDefault(o.key, o.def)
		if fs != nil {
			if f := fs.Lookup(o.flag); f != nil {
				if err := v.BindPFlag(o.key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", o.flag, err)
				}
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Host) == "" {
		errs = append(errs, errors.New("host is required"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range 1-65535", c.Port))
	}
	if c.Username == "" {
		errs = append(errs, errors.New("username is required"))
	}
	if c.KeyFilename != "" {
		if f, err := os.Open(c.KeyFilename); err != nil {
			errs = append(errs, fmt.Errorf("key_filename: %w", err))
		} else {
			_ = f.Close()
		}
	}
	if c.ConnectTimeout <= 0 {
		errs = append(errs, fmt.Errorf("connect_timeout must be positive, got %s", c.ConnectTimeout))
	}
	if c.CommandTimeout < 0 {
		errs = append(errs, fmt.Errorf("command_timeout must not be negative, got %s", c.CommandTimeout))
	}
	if c.MaxSessions < 1 {
		errs = append(errs, fmt.Errorf("max_sessions must be at least 1, got %d", c.MaxSessions))
	}
	if c.BreakerThreshold < 0 {
		errs = append(errs, fmt.Errorf("breaker_threshold must not be negative, got %d", c.BreakerThreshold))
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level %q must be one of %s", c.LogLevel, strings.Join(logLevels, ", ")))
	}

	if !slices.Contains(transports, c.MCP.Transport) {
		errs = append(errs, fmt.Errorf("mcp.transport %q must be one of %s", c.MCP.Transport, strings.Join(transports, ", ")))
	}
	if c.MCP.Port < 1 || c.MCP.Port > 65535 {
		errs = append(errs, fmt.Errorf("mcp.port %d out of range 1-65535", c.MCP.Port))
	}
	if c.MCP.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("mcp.rate_limit must not be negative, got %d", c.MCP.RateLimit))
	}
	if c.MCP.MaxBodySize <= 0 {
		errs = append(errs, fmt.Errorf("mcp.max_body_size must be positive, got %d", c.MCP.MaxBodySize))
	}
	return errors.Join(errs...)
}

// Target returns the device endpoint described by c.
func (c *Config) Target() routeros.Target {
	return routeros.Target{
		Host:           c.Host,
		Port:           c.Port,
		Username:       c.Username,
		Password:       c.Password,
		KeyFile:        c.KeyFilename,
		KeyPassphrase:  c.KeyPassphrase,
		KnownHostsFile: c.KnownHosts,
		ConnectTimeout: c.ConnectTimeout,
	}
}

// Level maps log_level to a slog level. Unknown names fall back to info.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// HTTPAddr is the listen address for the HTTP transports.
func (c *Config) HTTPAddr() string {
	return net.JoinHostPort(c.MCP.Host, strconv.Itoa(c.MCP.Port))
}

// Remote reports whether the transport serves over HTTP.
func (c *Config) Remote() bool {
	return c.MCP.Transport != TransportStdio
}
