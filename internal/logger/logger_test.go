package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSafe(t *testing.T) {
	Replace(nil)
	// Must not panic before Init.
	Debug("debug before init")
	Warn("warn before init")
	Sync()
}

func TestLevelFiltering(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{`"level":"error"`}, []string{`"level":"warn"`, `"level":"info"`, `"level":"debug"`}},
		{"warn", []string{`"level":"error"`, `"level":"warn"`}, []string{`"level":"info"`, `"level":"debug"`}},
		{"info", []string{`"level":"error"`, `"level":"warn"`, `"level":"info"`}, []string{`"level":"debug"`}},
		{"DEBUG", []string{`"level":"error"`, `"level":"warn"`, `"level":"info"`, `"level":"debug"`}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, strings.ToLower(tt.level)+".log")
			cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}

			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}
			defer Replace(nil)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestNamedConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	Replace(New("info", FileConfig{}, &buf))
	defer Replace(nil)

	Named("scene").Info("loaded world")
	Sync()

	out := buf.String()
	if !strings.Contains(out, "scene") || !strings.Contains(out, "loaded world") {
		t.Errorf("console output missing name or message: %q", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("caller should point at the test file: %q", out)
	}
}

func TestNewWithoutSinksIsNop(t *testing.T) {
	l := New("debug", FileConfig{}, nil)
	if l.Core().Enabled(-1) {
		t.Error("logger without sinks should be disabled")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/scenery.log")

	if cfg.Path != "/tmp/scenery.log" {
		t.Errorf("expected path /tmp/scenery.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
