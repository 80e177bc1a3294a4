// MikroTik MCP Server - A Model Context Protocol server for MikroTik RouterOS
// Exposes DNS, routing, VLAN, addressing, WireGuard, wireless, backup and log
// administration of one device as MCP tools, executed over SSH.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/config"
	"github.com/olgasafonova/mikrotik-mcp-server/metrics"
	"github.com/olgasafonova/mikrotik-mcp-server/tracing"
)

// recoverPanic logs a panic with its stack instead of crashing the process.
// onPanic, if given, receives the recovered value.
func recoverPanic(logger *slog.Logger, operation string, onPanic ...func(any)) {
	if r := recover(); r != nil {
		metrics.PanicsRecovered.WithLabelValues(operation).Inc()
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
		for _, fn := range onPanic {
			fn(r)
		}
	}
}

const (
	ServerName    = "mikrotik-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newLogger writes text logs to stderr; stdout belongs to the stdio transport.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   ServerName,
		Short: "MCP server for MikroTik RouterOS devices",
		Long: `Serves MikroTik RouterOS administration tools over the Model Context Protocol.

Every setting can come from a flag, a MIKROTIK_* environment variable
(nested keys use a double underscore, e.g. MIKROTIK_MCP__TRANSPORT) or
a YAML file given with --config. Flags win over the environment, which
wins over the file.`,
		Version:       ServerVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return reportError(cmd, err)
			}
			if err := cfg.Validate(); err != nil {
				return reportError(cmd, fmt.Errorf("invalid configuration:\n%w", err))
			}

			logger := newLogger(cfg.Level())

			// Initialize tracing (OTEL_* environment variables)
			traceCfg := tracing.DefaultConfig()
			traceCfg.ServiceVersion = ServerVersion
			shutdown, err := tracing.Setup(cmd.Context(), traceCfg)
			if err != nil {
				logger.Warn("Tracing disabled", "error", err)
			} else {
				defer func() {
					if err := shutdown(context.Background()); err != nil {
						logger.Warn("Tracing shutdown failed", "error", err)
					}
				}()
			}

			if err := serve(cmd.Context(), cfg, logger); err != nil {
				logger.Error("Server error", "error", err)
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file")
	config.RegisterFlags(root.Flags())

	root.AddCommand(newToolsCmd(), newEvalsCmd())
	return root
}

func newToolsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := writeCatalog(cmd.OutOrStdout(), category); err != nil {
				return reportError(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category (dns, routes, vlan, ...)")
	return cmd
}

func newEvalsCmd() *cobra.Command {
	var suite string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "evals",
		Short: "Summarize the tool selection eval suites and check them against the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := writeEvalReport(cmd.OutOrStdout(), suite, verbose); err != nil {
				return reportError(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&suite, "suite", "all", "suite to show: tool_selection, confusion_pairs or all")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "list every test case")
	return cmd
}

// reportError prints err on the command's error stream and returns it.
func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	return err
}
