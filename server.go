package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/mikrotik-mcp-server/internal/config"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/infra"
	"github.com/olgasafonova/mikrotik-mcp-server/internal/routeros"
	"github.com/olgasafonova/mikrotik-mcp-server/tools"
)

// shutdownTimeout bounds the graceful stop of the HTTP listener.
const shutdownTimeout = 10 * time.Second

const instructions = `MikroTik MCP Server manages one RouterOS device over SSH.

Tool groups: dns, routes, vlan, ip_address, wireguard, wireless, backup, logs.
Every tool returns the device's own text output. Row ids look like *1A and
come from the matching list tool. Tools marked destructive remove
configuration; restore_backup and import_configuration replace it.`

// newExecutor builds the command executor for the configured device.
func newExecutor(cfg *config.Config, logger *slog.Logger) *routeros.Executor {
	return routeros.NewExecutor(cfg.Target(), logger,
		routeros.WithTimeout(cfg.CommandTimeout),
		routeros.WithMaxSessions(cfg.MaxSessions),
		routeros.WithBreaker(infra.NewBreaker(cfg.BreakerThreshold, routeros.DefaultBreakerReset)),
	)
}

// newMCPServer creates the MCP server with every tool bound to run.
func newMCPServer(run routeros.Runner, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})
	tools.NewHandlerRegistry(run, logger).RegisterAll(server)
	return server
}

// healthHandler answers liveness probes without touching the device.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// newHTTPHandler routes /health, /metrics and the MCP endpoint of the
// configured transport: /sse for sse, /mcp for streamable-http.
func newHTTPHandler(cfg *config.Config, server *mcp.Server, logger *slog.Logger) *SecurityMiddleware {
	getServer := func(*http.Request) *mcp.Server { return server }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	switch cfg.MCP.Transport {
	case config.TransportSSE:
		sse := mcp.NewSSEHandler(getServer, nil)
		mux.Handle("/sse", sse)
		mux.Handle("/sse/", sse)
	case config.TransportStreamableHTTP:
		mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(getServer, &mcp.StreamableHTTPOptions{
			Logger: logger,
		}))
	}

	return NewSecurityMiddleware(mux, logger, SecurityConfig{
		RateLimit:   cfg.MCP.RateLimit,
		MaxBodySize: cfg.MCP.MaxBodySize,
		AuthToken:   cfg.MCP.AuthToken,
	})
}

// serveHTTP runs the HTTP transports until ctx is cancelled.
func serveHTTP(ctx context.Context, cfg *config.Config, server *mcp.Server, logger *slog.Logger) error {
	handler := newHTTPHandler(cfg, server, logger)
	defer handler.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if cfg.MCP.AuthToken == "" {
		logger.Warn("HTTP transport has no auth token; any client that can reach it controls the device",
			"addr", srv.Addr)
	}

	errCh := goListen(logger, "http server", func() error {
		logger.Info("Listening", "transport", cfg.MCP.Transport, "addr", srv.Addr)
		return srv.ListenAndServe()
	})

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// goListen runs listen on its own goroutine. The channel receives listen's
// result, or an error when it panics, so the caller never waits on a dead
// listener.
func goListen(logger *slog.Logger, operation string, listen func() error) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer recoverPanic(logger, operation, func(r any) {
			errCh <- fmt.Errorf("%s panicked: %v", operation, r)
		})
		errCh <- listen()
	}()
	return errCh
}

// serve runs the MCP server on the configured transport.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	target := cfg.Target()
	if !target.VerifiesHostKey() {
		logger.Warn("Host key verification disabled; set known_hosts to enable it", "host", target.Host)
	}

	server := newMCPServer(newExecutor(cfg, logger), logger)

	logger.Info("Starting MikroTik MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"device", target.Address(),
		"transport", cfg.MCP.Transport,
	)

	if cfg.Remote() {
		return serveHTTP(ctx, cfg, server, logger)
	}
	err := server.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
