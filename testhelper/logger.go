package testhelper

import (
	"fmt"
	"sync"
)

// TestLogger provides a logger implementation for testing with debug capabilities.
// It records every entry per level so tests can assert on logging side effects.
type TestLogger struct {
	mu            sync.RWMutex
	infoMessages  []LogEntry
	errorMessages []LogEntry
	warnMessages  []LogEntry
	debugMessages []LogEntry
	debugEnabled  bool
}

// LogEntry represents a log entry with its message and fields
type LogEntry struct {
	Message string
	Fields  map[string]interface{}
}

// NewTestLogger creates a new test logger instance
func NewTestLogger(debugEnabled bool) *TestLogger {
	return &TestLogger{debugEnabled: debugEnabled}
}

// LogInfo implements the logger interface
func (t *TestLogger) LogInfo(msg string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.infoMessages = append(t.infoMessages, LogEntry{Message: msg, Fields: fields})
}

// LogError implements the logger interface
func (t *TestLogger) LogError(err error, msg string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fields := map[string]interface{}{}
	if err != nil {
		fields["error"] = err.Error()
	}
	t.errorMessages = append(t.errorMessages, LogEntry{Message: msg, Fields: fields})
	return err
}

// LogErrorf implements the logger interface
func (t *TestLogger) LogErrorf(err error, format string, args ...interface{}) error {
	return t.LogError(err, fmt.Sprintf(format, args...))
}

// LogFatal implements the logger interface. In test mode it records the entry
// instead of exiting.
func (t *TestLogger) LogFatal(err error, context string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fields := map[string]interface{}{"context": context}
	if err != nil {
		fields["error"] = err.Error()
	}
	t.errorMessages = append(t.errorMessages, LogEntry{Message: "FATAL: " + context, Fields: fields})
}

// LogDebug implements the logger interface
func (t *TestLogger) LogDebug(message string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.debugEnabled {
		return
	}
	t.debugMessages = append(t.debugMessages, LogEntry{Message: message, Fields: fields})
}

// LogWarn implements the logger interface
func (t *TestLogger) LogWarn(message string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.warnMessages = append(t.warnMessages, LogEntry{Message: message, Fields: fields})
}

// GetInfoMessages returns all info level messages
func (t *TestLogger) GetInfoMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.infoMessages...)
}

// GetErrorMessages returns all error level messages
func (t *TestLogger) GetErrorMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.errorMessages...)
}

// GetWarnMessages returns all warning level messages
func (t *TestLogger) GetWarnMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.warnMessages...)
}

// GetDebugMessages returns all debug level messages
func (t *TestLogger) GetDebugMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.debugMessages...)
}

// ClearMessages clears all logged messages
func (t *TestLogger) ClearMessages() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.infoMessages = nil
	t.errorMessages = nil
	t.warnMessages = nil
	t.debugMessages = nil
}
