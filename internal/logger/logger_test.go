package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/var/log/allrgb.log")

	if cfg.Path != "/var/log/allrgb.log" {
		t.Errorf("Expected path /var/log/allrgb.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("Expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("Expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("Expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("Expected Compress true")
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "debug",
			expected: []string{"DEBUG", "INFO", "WARN", "ERROR"},
		},
		{
			level:    "info",
			expected: []string{"INFO", "WARN", "ERROR"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"WARN", "ERROR"},
			excluded: []string{"DEBUG", "INFO"},
		},
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"DEBUG", "INFO", "WARN"},
		},
		{
			level:    "bogus", // unknown levels fall back to info
			expected: []string{"INFO"},
			excluded: []string{"DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "test.log")
			if err := InitWithFileConfig(tt.level, DefaultFileConfig(logFile), false); err != nil {
				t.Fatalf("InitWithFileConfig failed: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			data, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("Reading log file failed: %v", err)
			}
			content := string(data)

			for _, want := range tt.expected {
				if !strings.Contains(content, want) {
					t.Errorf("Level %s: expected %s entries in log", tt.level, want)
				}
			}
			for _, unwanted := range tt.excluded {
				if strings.Contains(content, unwanted) {
					t.Errorf("Level %s: unexpected %s entries in log", tt.level, unwanted)
				}
			}
		})
	}
}

func TestStructuredFields(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	if err := InitWithFileConfig("info", DefaultFileConfig(logFile), false); err != nil {
		t.Fatalf("InitWithFileConfig failed: %v", err)
	}

	Info("generation finished", zap.String("algorithm", "greedy"), zap.Int("points", 32768))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Reading log file failed: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "generation finished") {
		t.Error("Expected log message in file")
	}
	if !strings.Contains(content, "greedy") || !strings.Contains(content, "32768") {
		t.Errorf("Expected structured fields in log, got: %s", content)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init("info", ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Log == nil || Sugar == nil {
		t.Error("Expected global loggers to be set")
	}
}
