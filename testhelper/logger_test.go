package testhelper

import (
	"errors"
	"testing"
)

func TestTestLogger_RecordsPerLevel(t *testing.T) {
	log := NewTestLogger(true)

	log.LogInfo("info msg", map[string]interface{}{"k": "v"})
	log.LogDebug("debug msg", nil)
	log.LogWarn("warn msg", nil)
	log.LogError(errors.New("boom"), "error msg")

	if got := len(log.GetInfoMessages()); got != 1 {
		t.Errorf("expected 1 info message, got %d", got)
	}
	if got := len(log.GetDebugMessages()); got != 1 {
		t.Errorf("expected 1 debug message, got %d", got)
	}
	if got := len(log.GetWarnMessages()); got != 1 {
		t.Errorf("expected 1 warn message, got %d", got)
	}
	errs := log.GetErrorMessages()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error message, got %d", len(errs))
	}
	if errs[0].Fields["error"] != "boom" {
		t.Errorf("expected error field to carry the cause, got %v", errs[0].Fields["error"])
	}
}

func TestTestLogger_DebugDisabled(t *testing.T) {
	log := NewTestLogger(false)

	log.LogDebug("hidden", nil)
	if got := len(log.GetDebugMessages()); got != 0 {
		t.Errorf("expected debug messages to be suppressed, got %d", got)
	}
}

func TestTestLogger_ClearMessages(t *testing.T) {
	log := NewTestLogger(true)
	log.LogInfo("a", nil)
	log.ClearMessages()

	if got := len(log.GetInfoMessages()); got != 0 {
		t.Errorf("expected no messages after clear, got %d", got)
	}
}
