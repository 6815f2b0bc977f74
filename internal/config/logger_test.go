package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/simp-lee/logger"
)

func boolPtr(b bool) *bool { return &b }

func TestSetupLogger_LevelMapping(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"mixed case Info", "Info", slog.LevelInfo},
		{"invalid defaults to info", "invalid", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := SetupLogger(&LogConfig{Level: tt.level, Format: "text"})
			if err != nil {
				t.Fatalf("SetupLogger error: %v", err)
			}
			defer log.Close()

			if log == nil {
				t.Fatal("SetupLogger returned nil")
			}
			if !log.Enabled(context.TODO(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			// Verify that levels below the configured level are disabled.
			if tt.wantLevel > slog.LevelDebug {
				belowLevel := tt.wantLevel - 1
				if log.Enabled(context.TODO(), belowLevel) {
					t.Errorf("expected level %v to be disabled (configured: %v)", belowLevel, tt.wantLevel)
				}
			}
		})
	}
}

func TestSetupLogger_NilConfig(t *testing.T) {
	if _, err := SetupLogger(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	log, err := SetupLogger(&LogConfig{Level: "info", Format: "text"})
	if err != nil {
		t.Fatalf("SetupLogger error: %v", err)
	}
	defer log.Close()

	if log == nil {
		t.Fatal("SetupLogger returned nil")
	}
}

func TestSetupLogger_ConsoleAndFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test.log")

	log, err := SetupLogger(&LogConfig{
		Level:    "info",
		Format:   "json",
		FilePath: filePath,
	})
	if err != nil {
		t.Fatalf("SetupLogger error: %v", err)
	}
	defer log.Close()

	if log == nil {
		t.Fatal("SetupLogger returned nil")
	}
}

func TestSetupLogger_ColorDisabled(t *testing.T) {
	log, err := SetupLogger(&LogConfig{
		Level:  "info",
		Format: "text",
		Color:  boolPtr(false),
	})
	if err != nil {
		t.Fatalf("SetupLogger error: %v", err)
	}
	defer log.Close()

	if log == nil {
		t.Fatal("SetupLogger returned nil")
	}
}

func TestSetupLogger_SetsDefault(t *testing.T) {
	log, err := SetupLogger(&LogConfig{Level: "warn", Format: "text"})
	if err != nil {
		t.Fatalf("SetupLogger error: %v", err)
	}
	defer log.Close()

	defaultLogger := slog.Default()
	// The default logger should be the one we just set.
	if defaultLogger.Handler() != log.Handler() {
		t.Error("SetupLogger did not set slog.Default()")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want logger.OutputFormat
	}{
		{"text", logger.FormatText},
		{"TEXT", logger.FormatText},
		{"json", logger.FormatJSON},
		{"Json", logger.FormatJSON},
		{"whatever", logger.FormatCustom},
		{"", logger.FormatCustom},
	}
	for _, tt := range tests {
		if got := parseFormat(tt.in); got != tt.want {
			t.Errorf("parseFormat(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileOptions(t *testing.T) {
	// FilePath + FileFormat are always present; each non-zero rotation
	// field adds one option.
	const base = 2

	tests := []struct {
		name      string
		cfg       *LogConfig
		wantCount int
	}{
		{
			name:      "path only",
			cfg:       &LogConfig{Format: "text", FilePath: "/tmp/test.log"},
			wantCount: base,
		},
		{
			name: "with MaxSizeMB",
			cfg: &LogConfig{
				Format: "text", FilePath: "/tmp/test.log", MaxSizeMB: 10,
			},
			wantCount: base + 1,
		},
		{
			name: "with RetentionDays",
			cfg: &LogConfig{
				Format: "text", FilePath: "/tmp/test.log", RetentionDays: 7,
			},
			wantCount: base + 1,
		},
		{
			name: "with MaxBackups",
			cfg: &LogConfig{
				Format: "text", FilePath: "/tmp/test.log", MaxBackups: 3,
			},
			wantCount: base + 1,
		},
		{
			name: "with CompressRotated false",
			cfg: &LogConfig{
				Format: "text", FilePath: "/tmp/test.log", CompressRotated: boolPtr(false),
			},
			wantCount: base + 1,
		},
		{
			name: "all rotation fields",
			cfg: &LogConfig{
				Format: "json", FilePath: "/tmp/test.log",
				MaxSizeMB: 50, RetentionDays: 30, MaxBackups: 5,
				CompressRotated: boolPtr(true),
			},
			wantCount: base + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := fileOptions(tt.cfg)
			if len(opts) != tt.wantCount {
				t.Errorf("option count = %d, want %d", len(opts), tt.wantCount)
			}
		})
	}
}

func TestSetupLogger_FullFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "rotated.log")

	log, err := SetupLogger(&LogConfig{
		Level: "info", Format: "json", FilePath: filePath,
		MaxSizeMB: 10, RetentionDays: 7, MaxBackups: 3,
		CompressRotated: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("SetupLogger error: %v", err)
	}
	defer log.Close()

	if log == nil {
		t.Fatal("SetupLogger returned nil")
	}
}
