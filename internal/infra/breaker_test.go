package infra

import (
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestBreaker(threshold int, reset time.Duration) (*Breaker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewBreaker(threshold, reset).WithClock(clock.Now), clock
}

func TestNewBreaker(t *testing.T) {
	b := NewBreaker(5, 30*time.Second)
	if b.threshold != 5 {
		t.Errorf("threshold = %d, want 5", b.threshold)
	}
	if b.reset != 30*time.Second {
		t.Errorf("reset = %v, want 30s", b.reset)
	}
	if b.State() != CircuitClosed {
		t.Errorf("state = %v, want closed", b.State())
	}
}

func TestBreaker_ClosedAllows(t *testing.T) {
	b, _ := newTestBreaker(3, time.Second)
	for range 50 {
		if !b.Allow() {
			t.Fatal("closed breaker should allow")
		}
	}
}

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b, _ := newTestBreaker(3, time.Second)

	b.Failure()
	b.Failure()
	if b.State() != CircuitClosed {
		t.Fatal("should still be closed after 2 failures")
	}

	b.Failure()
	if b.State() != CircuitOpen {
		t.Fatalf("state = %v, want open", b.State())
	}
	if b.Allow() {
		t.Error("open breaker should reject")
	}
}

func TestBreaker_HalfOpenAfterReset(t *testing.T) {
	b, clock := newTestBreaker(2, 10*time.Second)
	b.Failure()
	b.Failure()

	clock.Advance(9 * time.Second)
	if b.Allow() {
		t.Error("should reject before reset window")
	}

	clock.Advance(time.Second)
	if !b.Allow() {
		t.Fatal("should allow a probe after reset window")
	}
	if b.State() != CircuitHalfOpen {
		t.Errorf("state = %v, want half-open", b.State())
	}
	if b.Allow() {
		t.Error("only one probe allowed while half-open")
	}
}

func TestBreaker_HalfOpenTransitions(t *testing.T) {
	tests := []struct {
		name    string
		succeed bool
		want    CircuitState
	}{
		{"probe succeeds", true, CircuitClosed},
		{"probe fails", false, CircuitOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, clock := newTestBreaker(1, time.Second)
			b.Failure()
			clock.Advance(time.Second)
			if !b.Allow() {
				t.Fatal("probe should be allowed")
			}
			if tt.succeed {
				b.Success()
			} else {
				b.Failure()
			}
			if b.State() != tt.want {
				t.Errorf("state = %v, want %v", b.State(), tt.want)
			}
		})
	}
}

func TestBreaker_CancelReleasesProbe(t *testing.T) {
	b, clock := newTestBreaker(1, time.Second)
	b.Failure()
	clock.Advance(time.Second)
	if !b.Allow() {
		t.Fatal("probe should be allowed")
	}

	b.Cancel()
	if b.State() != CircuitHalfOpen {
		t.Errorf("state = %v, want half-open", b.State())
	}
	if !b.Allow() {
		t.Fatal("cancelled probe should free the slot for the next call")
	}
	if b.Allow() {
		t.Error("only one probe allowed while half-open")
	}
	b.Success()
	if b.State() != CircuitClosed {
		t.Errorf("state = %v, want closed", b.State())
	}
}

func TestBreaker_CancelWhileClosed(t *testing.T) {
	b, _ := newTestBreaker(2, time.Second)
	b.Failure()
	b.Cancel()
	b.Failure()
	if b.State() != CircuitOpen {
		t.Errorf("state = %v, want open (cancel must not reset failures)", b.State())
	}
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	b, _ := newTestBreaker(3, time.Second)
	b.Failure()
	b.Failure()
	b.Success()
	b.Failure()
	b.Failure()
	if b.State() != CircuitClosed {
		t.Errorf("state = %v, want closed (count should reset on success)", b.State())
	}
}

func TestBreaker_DisabledNeverOpens(t *testing.T) {
	b, _ := newTestBreaker(0, time.Second)
	for range 20 {
		b.Failure()
	}
	if !b.Allow() {
		t.Error("disabled breaker should always allow")
	}
	if b.State() != CircuitClosed {
		t.Errorf("state = %v, want closed", b.State())
	}
}

func TestBreaker_Rejection(t *testing.T) {
	b, clock := newTestBreaker(2, 30*time.Second)
	b.Failure()
	b.Failure()

	rej := b.Rejection()
	if rej.Failures != 2 {
		t.Errorf("Failures = %d, want 2", rej.Failures)
	}
	if want := clock.Now().Add(30 * time.Second); !rej.RetryAt.Equal(want) {
		t.Errorf("RetryAt = %v, want %v", rej.RetryAt, want)
	}
	if !strings.Contains(rej.Error(), "2 consecutive connect failures") {
		t.Errorf("Error() = %q", rej.Error())
	}
}

func TestCircuitState_String(t *testing.T) {
	tests := []struct {
		state CircuitState
		want  string
	}{
		{CircuitClosed, "closed"},
		{CircuitOpen, "open"},
		{CircuitHalfOpen, "half-open"},
		{CircuitState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("CircuitState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestBreaker_ConcurrencySafety(t *testing.T) {
	b := NewBreaker(10, time.Millisecond)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 100 {
				b.Allow()
				if i%2 == 0 {
					b.Failure()
				} else {
					b.Success()
				}
				_ = b.State()
			}
		}(i)
	}
	wg.Wait()
}
