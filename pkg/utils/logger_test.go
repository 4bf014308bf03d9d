package utils

import (
	"testing"
)

// ============================================================
// Тесты InitLogger
// ============================================================

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		expectErr bool
	}{
		{"defaults", "", "", false},
		{"json info", "info", "json", false},
		{"text debug", "debug", "text", false},
		{"console alias", "warn", "console", false},
		{"warning alias", "warning", "json", false},
		{"error level", "error", "json", false},
		{"uppercase level", "INFO", "json", false},
		{"unknown level", "verbose", "json", true},
		{"unknown format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := InitLogger(tt.level, tt.format)

			if tt.expectErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("InitLogger failed: %v", err)
			}
			if logger == nil {
				t.Fatal("InitLogger returned nil logger")
			}
		})
	}
}
