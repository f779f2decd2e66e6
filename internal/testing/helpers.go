package testing

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

// ============================================================================
// Context Helpers
// ============================================================================

// ContextWithTimeout creates a context with timeout for testing.
// The context is automatically cancelled when the test completes.
func ContextWithTimeout(t testing.TB, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx, cancel
}

// ContextWithCancel creates a cancellable context for testing.
// The context is automatically cancelled when the test completes.
func ContextWithCancel(t testing.TB) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx, cancel
}

// TestContext creates a context suitable for most tests.
// Uses a default timeout of 30 seconds.
func TestContext(t testing.TB) context.Context {
	t.Helper()
	ctx, _ := ContextWithTimeout(t, 30*time.Second)
	return ctx
}

// ShortContext creates a context with a short timeout (5 seconds).
func ShortContext(t testing.TB) context.Context {
	t.Helper()
	ctx, _ := ContextWithTimeout(t, 5*time.Second)
	return ctx
}

// ExpiredContext creates a context that is already past its deadline, for
// exercising cancellation paths.
func ExpiredContext(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// ============================================================================
// Skip Helpers
// ============================================================================

// SkipShort skips the test in short mode.
func SkipShort(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}
}

// SkipOnCI skips the test when running in CI environment.
func SkipOnCI(t testing.TB) {
	t.Helper()
	if os.Getenv("CI") != "" {
		t.Skip("skipping test in CI environment")
	}
}

// ============================================================================
// Filesystem Helpers
// ============================================================================

// WriteFile writes content to a path, creating parent directories, and fails
// the test on error.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

// ============================================================================
// Timing Helpers
// ============================================================================

// WaitFor polls condition until it returns true or the timeout elapses.
// Fails the test on timeout.
func WaitFor(t testing.TB, timeout time.Duration, condition func() bool, msgAndArgs ...interface{}) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Fatalf("%s: condition not met within %v", msg, timeout)
	} else {
		t.Fatalf("condition not met within %v", timeout)
	}
}

// formatMessage formats optional message arguments the way testify does.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) > 1 {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return format
	}
	return fmt.Sprint(msgAndArgs...)
}
