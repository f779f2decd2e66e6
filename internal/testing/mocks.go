// Package testing provides centralized test infrastructure for the Showroom
// project. It includes mock implementations, fixtures, helpers, and custom
// assertions that can be used across all test packages.
package testing

import (
	"context"
	"strings"
	"sync"

	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/logging"
	"github.com/crestline/showroom/internal/tradein"
)

// ============================================================================
// MockLogger - Implements logging.Logger for testing
// ============================================================================

// LogMessage represents a recorded log message.
type LogMessage struct {
	Level   logging.Level
	Prefix  string
	Message string
	Fields  []interface{}
}

// MockLogger implements logging.Logger for testing purposes.
// It records all log messages for later inspection.
type MockLogger struct {
	mu       sync.Mutex
	messages []LogMessage
	level    logging.Level
}

// NewMockLogger creates a new MockLogger with default settings.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: make([]LogMessage, 0),
		level:    logging.LevelDebug,
	}
}

// Debug logs a debug message.
func (m *MockLogger) Debug(msg string, keyvals ...interface{}) {
	m.record(logging.LevelDebug, "", msg, keyvals)
}

// Info logs an info message.
func (m *MockLogger) Info(msg string, keyvals ...interface{}) {
	m.record(logging.LevelInfo, "", msg, keyvals)
}

// Warn logs a warning message.
func (m *MockLogger) Warn(msg string, keyvals ...interface{}) {
	m.record(logging.LevelWarn, "", msg, keyvals)
}

// Error logs an error message.
func (m *MockLogger) Error(msg string, keyvals ...interface{}) {
	m.record(logging.LevelError, "", msg, keyvals)
}

// WithPrefix returns a new Logger with the given prefix.
// The new logger shares the message storage with the parent.
func (m *MockLogger) WithPrefix(prefix string) logging.Logger {
	return &childMockLogger{parent: m, prefix: prefix}
}

// SetLevel records the requested level. The mock records every message
// regardless so tests can assert on suppressed output too.
func (m *MockLogger) SetLevel(level logging.Level) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = level
}

// Level returns the last level passed to SetLevel.
func (m *MockLogger) Level() logging.Level {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// Messages returns a copy of all recorded messages.
func (m *MockLogger) Messages() []LogMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

// MessagesAt returns recorded messages at the given level.
func (m *MockLogger) MessagesAt(level logging.Level) []LogMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogMessage
	for _, msg := range m.messages {
		if msg.Level == level {
			out = append(out, msg)
		}
	}
	return out
}

// HasMessage reports whether any recorded message contains the substring.
func (m *MockLogger) HasMessage(substring string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if strings.Contains(msg.Message, substring) {
			return true
		}
	}
	return false
}

// Clear discards all recorded messages.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = m.messages[:0]
}

func (m *MockLogger) record(level logging.Level, prefix, msg string, keyvals []interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, LogMessage{
		Level:   level,
		Prefix:  prefix,
		Message: msg,
		Fields:  append([]interface{}{}, keyvals...),
	})
}

// childMockLogger is a logger that shares message storage with a parent MockLogger.
type childMockLogger struct {
	parent *MockLogger
	prefix string
}

func (c *childMockLogger) Debug(msg string, keyvals ...interface{}) {
	c.parent.record(logging.LevelDebug, c.prefix, msg, keyvals)
}

func (c *childMockLogger) Info(msg string, keyvals ...interface{}) {
	c.parent.record(logging.LevelInfo, c.prefix, msg, keyvals)
}

func (c *childMockLogger) Warn(msg string, keyvals ...interface{}) {
	c.parent.record(logging.LevelWarn, c.prefix, msg, keyvals)
}

func (c *childMockLogger) Error(msg string, keyvals ...interface{}) {
	c.parent.record(logging.LevelError, c.prefix, msg, keyvals)
}

func (c *childMockLogger) WithPrefix(prefix string) logging.Logger {
	return &childMockLogger{parent: c.parent, prefix: prefix}
}

func (c *childMockLogger) SetLevel(level logging.Level) {
	c.parent.SetLevel(level)
}

// ============================================================================
// MockDealer - Implements the dealer gateway surface for testing
// ============================================================================

// MockDealer is a scriptable dealer gateway. It satisfies both dealer.Dealer
// and tradein.Estimator, so it can stand in anywhere the kiosk needs the
// dealer system. Zero value behavior: empty lot, no decode data, zero
// estimate, appraisal id "mock-appraisal".
type MockDealer struct {
	mu sync.Mutex

	Vehicles     []dealer.Vehicle
	InventoryErr error

	Decoded   map[string]tradein.DecodedVehicle
	DecodeErr error

	Estimate    tradein.Estimate
	EstimateErr error

	AppraisalID  string
	AppraisalErr error

	calls         []string
	lastEstimate  dealer.EstimateRequest
	lastAppraisal dealer.AppraisalRequest
	lastTradeData tradein.TradeData
}

// NewMockDealer creates a MockDealer with an empty script.
func NewMockDealer() *MockDealer {
	return &MockDealer{
		Decoded:     make(map[string]tradein.DecodedVehicle),
		AppraisalID: "mock-appraisal",
	}
}

// GetInventory returns the scripted lot.
func (m *MockDealer) GetInventory(ctx context.Context, filters dealer.InventoryFilters) ([]dealer.Vehicle, error) {
	m.recordCall("GetInventory")
	if m.InventoryErr != nil {
		return nil, m.InventoryErr
	}
	return m.Vehicles, nil
}

// DecodeVin returns the scripted decode for the VIN, or a not-found error.
func (m *MockDealer) DecodeVin(ctx context.Context, vin string) (*tradein.DecodedVehicle, error) {
	m.recordCall("DecodeVin")
	if m.DecodeErr != nil {
		return nil, m.DecodeErr
	}
	if d, ok := m.Decoded[vin]; ok {
		return &d, nil
	}
	return nil, errors.Newf(errors.Validation, "unknown vin %s", vin)
}

// GetTradeInEstimate returns the scripted estimate.
func (m *MockDealer) GetTradeInEstimate(ctx context.Context, req dealer.EstimateRequest) (tradein.Estimate, error) {
	m.recordCall("GetTradeInEstimate")
	m.mu.Lock()
	m.lastEstimate = req
	m.mu.Unlock()
	if m.EstimateErr != nil {
		return tradein.Estimate{}, m.EstimateErr
	}
	return m.Estimate, nil
}

// EstimateTradeIn returns the scripted estimate.
func (m *MockDealer) EstimateTradeIn(ctx context.Context, data tradein.TradeData) (tradein.Estimate, error) {
	m.recordCall("EstimateTradeIn")
	m.mu.Lock()
	m.lastTradeData = data
	m.mu.Unlock()
	if m.EstimateErr != nil {
		return tradein.Estimate{}, m.EstimateErr
	}
	return m.Estimate, nil
}

// RequestAppraisal returns the scripted confirmation.
func (m *MockDealer) RequestAppraisal(ctx context.Context, req dealer.AppraisalRequest) (dealer.AppraisalConfirmation, error) {
	m.recordCall("RequestAppraisal")
	m.mu.Lock()
	m.lastAppraisal = req
	m.mu.Unlock()
	if m.AppraisalErr != nil {
		return dealer.AppraisalConfirmation{}, m.AppraisalErr
	}
	return dealer.AppraisalConfirmation{AppraisalID: m.AppraisalID}, nil
}

// Calls returns the method names invoked, in order.
func (m *MockDealer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times the named method was invoked.
func (m *MockDealer) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == method {
			n++
		}
	}
	return n
}

// LastEstimateRequest returns the most recent GetTradeInEstimate payload.
func (m *MockDealer) LastEstimateRequest() dealer.EstimateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastEstimate
}

// LastAppraisalRequest returns the most recent RequestAppraisal payload.
func (m *MockDealer) LastAppraisalRequest() dealer.AppraisalRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastAppraisal
}

// LastTradeData returns the most recent EstimateTradeIn payload.
func (m *MockDealer) LastTradeData() tradein.TradeData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTradeData
}

func (m *MockDealer) recordCall(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

// ============================================================================
// MockCamera - Implements tradein.Camera for testing
// ============================================================================

// MockCamera is a scriptable kiosk camera. Captures return synthetic photo
// paths without touching the filesystem.
type MockCamera struct {
	mu sync.Mutex

	AcquireErr error
	CaptureErr error

	acquired bool
	captures []tradein.PhotoSlot
	releases int
}

// NewMockCamera creates a MockCamera.
func NewMockCamera() *MockCamera {
	return &MockCamera{}
}

// Acquire claims the mock device.
func (m *MockCamera) Acquire(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AcquireErr != nil {
		return m.AcquireErr
	}
	if m.acquired {
		return errors.ErrCameraBusy
	}
	m.acquired = true
	return nil
}

// Capture records the slot and returns a synthetic photo.
func (m *MockCamera) Capture(ctx context.Context, slot tradein.PhotoSlot) (tradein.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.acquired {
		return tradein.Photo{}, errors.New(errors.Camera, "camera not acquired")
	}
	if m.CaptureErr != nil {
		return tradein.Photo{}, m.CaptureErr
	}
	m.captures = append(m.captures, slot)
	return tradein.Photo{Slot: slot, Path: "/tmp/mock-" + string(slot) + ".jpg"}, nil
}

// Release frees the mock device. Safe to call more than once.
func (m *MockCamera) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acquired = false
	m.releases++
	return nil
}

// Captures returns the slots captured, in order.
func (m *MockCamera) Captures() []tradein.PhotoSlot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]tradein.PhotoSlot, len(m.captures))
	copy(out, m.captures)
	return out
}

// IsAcquired reports whether the device is currently claimed.
func (m *MockCamera) IsAcquired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acquired
}

// ReleaseCount returns how many times Release was called.
func (m *MockCamera) ReleaseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.releases
}
