package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func resetState() {
	mutex.Lock()
	moduleLoggers = make(map[string]*slog.Logger)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	logBuffer = nil
	isInitialized = false
	mutex.Unlock()
}

func TestModuleLevelOverride(t *testing.T) {
	resetState()

	// Global info level, vulkan at debug, va at warn
	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"vulkan": "debug",
			"va":     "warn",
		},
	})

	tests := []struct {
		module    string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"vulkan", true, true, true},
		{"va", false, false, true},
		{"backend", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			handler := GetLogger(tt.module).Handler()

			gotDebug := handler.Enabled(context.Background(), slog.LevelDebug)
			gotInfo := handler.Enabled(context.Background(), slog.LevelInfo)
			gotWarn := handler.Enabled(context.Background(), slog.LevelWarn)

			if gotDebug != tt.wantDebug {
				t.Errorf("module %q: Debug enabled = %v, want %v", tt.module, gotDebug, tt.wantDebug)
			}
			if gotInfo != tt.wantInfo {
				t.Errorf("module %q: Info enabled = %v, want %v", tt.module, gotInfo, tt.wantInfo)
			}
			if gotWarn != tt.wantWarn {
				t.Errorf("module %q: Warn enabled = %v, want %v", tt.module, gotWarn, tt.wantWarn)
			}
		})
	}
}

func TestReinitializeRetunesExistingLoggers(t *testing.T) {
	resetState()

	Initialize(Config{Level: "info", Format: "text"})
	logger := GetLogger("driver")
	if logger.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("driver logger should start at info")
	}

	// Second Initialize (config reload) must affect the existing logger
	Initialize(Config{Level: "info", Format: "text", Modules: map[string]string{"driver": "debug"}})
	if !GetLogger("driver").Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("reload did not retune existing module logger to debug")
	}
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	resetState()

	// Must not panic, defaults to info
	logger := GetLogger("early")
	if logger == nil {
		t.Fatal("GetLogger returned nil before Initialize")
	}
	if logger.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("uninitialized logger should default to info level")
	}
}

func TestRingBuffer(t *testing.T) {
	rb := NewRingBuffer(3)

	if rb.Count() != 0 {
		t.Fatalf("empty buffer Count() = %d", rb.Count())
	}
	if rb.ReadAll() != nil {
		t.Fatal("empty buffer ReadAll() should be nil")
	}

	for i := 0; i < 5; i++ {
		rb.Write(LogEntry{Message: string(rune('a' + i)), Timestamp: time.Now()})
	}

	if rb.Count() != 3 {
		t.Errorf("Count() = %d, want 3 after wraparound", rb.Count())
	}

	entries := rb.ReadAll()
	want := []string{"c", "d", "e"}
	for i, w := range want {
		if entries[i].Message != w {
			t.Errorf("entries[%d].Message = %q, want %q", i, entries[i].Message, w)
		}
	}
}

func TestBufferHandlerCapturesModule(t *testing.T) {
	resetState()
	Initialize(Config{Level: "debug", Format: "text"})

	GetLogger("backend").Info("selected physical device", "name", "test-gpu")

	entries := GetBuffer().ReadAll()
	if len(entries) == 0 {
		t.Fatal("no entries captured")
	}
	last := entries[len(entries)-1]
	if last.Module != "backend" {
		t.Errorf("Module = %q, want backend", last.Module)
	}
	if last.Attributes["name"] != "test-gpu" {
		t.Errorf("Attributes[name] = %v, want test-gpu", last.Attributes["name"])
	}
}

func TestFormatLogLine(t *testing.T) {
	entry := LogEntry{
		Timestamp:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:      "warn",
		Module:     "drm",
		Message:    "not a character device",
		Attributes: map[string]any{"fd": 5},
	}
	got := FormatLogLine(entry)
	want := "2026-01-02T03:04:05Z [WARN] [drm] not a character device fd=5"
	if got != want {
		t.Errorf("FormatLogLine() = %q, want %q", got, want)
	}
}
