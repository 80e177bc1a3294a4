package main

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/olgasafonova/mikrotik-mcp-server/metrics"
	"github.com/olgasafonova/mikrotik-mcp-server/tracing"
)

// SecurityConfig configures the HTTP transport guard.
type SecurityConfig struct {
	// RateLimit is requests per minute per client IP. Zero disables limiting.
	RateLimit int
	// MaxBodySize caps request bodies in bytes. Zero disables the cap.
	MaxBodySize int64
	// AuthToken, when set, must be presented as "Authorization: Bearer <token>".
	AuthToken string
}

// bucket is one client's token bucket.
type bucket struct {
	tokens float64
	last   time.Time
}

// RateLimiter is a per-IP token bucket limiter. Each IP may burst up to rate
// requests and regains rate tokens per interval.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rate      int
	interval  time.Duration
	stopCh    chan struct{}
	closeOnce sync.Once
}

// NewRateLimiter starts a limiter and its idle-bucket sweeper.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Allow reports whether ip may make another request now.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{tokens: float64(rl.rate), last: now}
		rl.buckets[ip] = b
	}

	elapsed := now.Sub(b.last)
	b.last = now
	b.tokens += float64(rl.rate) * elapsed.Seconds() / rl.interval.Seconds()
	if b.tokens > float64(rl.rate) {
		b.tokens = float64(rl.rate)
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Close stops the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.stopCh) })
}

// sweep drops buckets that have been idle long enough to be full again.
func (rl *RateLimiter) sweep() {
	every := rl.interval
	if every < time.Minute {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, b := range rl.buckets {
				if now.Sub(b.last) > rl.interval {
					delete(rl.buckets, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// SecurityMiddleware guards the HTTP transports: panic recovery, rate
// limiting, bearer auth, body size limits, tracing and request metrics.
type SecurityMiddleware struct {
	next    http.Handler
	logger  *slog.Logger
	config  SecurityConfig
	limiter *RateLimiter
	prop    propagation.TextMapPropagator
}

// NewSecurityMiddleware wraps next.
func NewSecurityMiddleware(next http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	sm := &SecurityMiddleware{
		next:   next,
		logger: logger,
		config: config,
		prop:   propagation.TraceContext{},
	}
	if config.RateLimit > 0 {
		sm.limiter = NewRateLimiter(config.RateLimit, time.Minute)
	}
	return sm
}

// Close releases the rate limiter.
func (sm *SecurityMiddleware) Close() {
	if sm.limiter != nil {
		sm.limiter.Close()
	}
}

// statusRecorder captures the status written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps server-sent events streaming through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (sm *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	ctx := sm.prop.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := tracing.StartSpan(ctx, "HTTP "+r.Method+" "+routeLabel(r.URL.Path),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("url.path", r.URL.Path),
		),
	)
	defer span.End()
	r = r.WithContext(ctx)

	defer func() {
		if rv := recover(); rv != nil {
			metrics.PanicsRecovered.WithLabelValues("http").Inc()
			sm.logger.Error("Panic recovered",
				"path", r.URL.Path,
				"panic", rv,
				"stack", string(debug.Stack()))
			span.SetStatus(codes.Error, "panic")
			http.Error(rec, "internal server error", http.StatusInternalServerError)
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, routeLabel(r.URL.Path)).Observe(time.Since(start).Seconds())
		span.SetAttributes(attribute.Int("http.response.status_code", rec.status))
	}()

	if sm.limiter != nil && !sm.limiter.Allow(clientIP(r)) {
		metrics.RateLimitRejections.Inc()
		sm.logger.Warn("Rate limit exceeded", "ip", clientIP(r), "path", r.URL.Path)
		rec.Header().Set("Retry-After", "60")
		http.Error(rec, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	if sm.config.AuthToken != "" && r.URL.Path != "/health" {
		if reason := sm.authorize(r); reason != "" {
			metrics.AuthFailures.WithLabelValues(reason).Inc()
			sm.logger.Warn("Authentication failed", "ip", clientIP(r), "reason", reason)
			rec.Header().Set("WWW-Authenticate", `Bearer realm="mikrotik-mcp-server"`)
			http.Error(rec, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	if sm.config.MaxBodySize > 0 {
		if r.ContentLength > sm.config.MaxBodySize {
			http.Error(rec, fmt.Sprintf("request body exceeds %d bytes", sm.config.MaxBodySize), http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(rec, r.Body, sm.config.MaxBodySize)
	}

	sm.next.ServeHTTP(rec, r)
}

// authorize returns the failure reason, or "" when the bearer token matches.
func (sm *SecurityMiddleware) authorize(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "missing"
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "scheme"
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(sm.config.AuthToken)) != 1 {
		return "invalid"
	}
	return ""
}

// clientIP is the remote host without its port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// routeLabel keeps the path label set small.
func routeLabel(path string) string {
	switch {
	case path == "/health", path == "/metrics", path == "/mcp", path == "/sse":
		return path
	case strings.HasPrefix(path, "/mcp/"):
		return "/mcp"
	case strings.HasPrefix(path, "/sse/"):
		return "/sse"
	default:
		return "other"
	}
}
