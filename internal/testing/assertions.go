package testing

import (
	"strings"
	"testing"

	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/tradein"
)

// ============================================================================
// Error Assertions
// ============================================================================

// AssertErrorCode checks if an error has a specific error code.
func AssertErrorCode(t testing.TB, err error, expectedCode errors.Code) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error with code %s, but got nil", expectedCode)
		return
	}

	actualCode := errors.GetCode(err)
	if actualCode != expectedCode {
		t.Errorf("expected error code %s, but got %s (error: %v)", expectedCode, actualCode, err)
	}
}

// AssertErrorContains checks if error message contains a substring.
func AssertErrorContains(t testing.TB, err error, substring string) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error containing %q, but got nil", substring)
		return
	}

	if !strings.Contains(err.Error(), substring) {
		t.Errorf("expected error to contain %q, but got: %v", substring, err)
	}
}

// ============================================================================
// Estimate Assertions
// ============================================================================

// AssertEstimateOrdered checks that a value range is internally consistent:
// low <= mid <= high and every leg positive.
func AssertEstimateOrdered(t testing.TB, est tradein.Estimate) {
	t.Helper()

	if est.Low <= 0 || est.Mid <= 0 || est.High <= 0 {
		t.Errorf("estimate has non-positive leg: low=%v mid=%v high=%v", est.Low, est.Mid, est.High)
		return
	}
	if est.Low > est.Mid || est.Mid > est.High {
		t.Errorf("estimate out of order: low=%v mid=%v high=%v", est.Low, est.Mid, est.High)
	}
}

// ============================================================================
// Log Assertions
// ============================================================================

// AssertLogged checks that the mock logger recorded a message containing the
// substring.
func AssertLogged(t testing.TB, logger *MockLogger, substring string) {
	t.Helper()

	if !logger.HasMessage(substring) {
		t.Errorf("expected a log message containing %q, recorded %d messages", substring, len(logger.Messages()))
	}
}

// AssertNotLogged checks that no recorded message contains the substring.
func AssertNotLogged(t testing.TB, logger *MockLogger, substring string) {
	t.Helper()

	if logger.HasMessage(substring) {
		t.Errorf("expected no log message containing %q", substring)
	}
}
