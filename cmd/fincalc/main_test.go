package main

import (
	"testing"

	"github.com/finwerk/fincalc/internal/config"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logging   config.LoggingConfig
		override  string
		expectErr bool
	}{
		{
			name:    "Defaults",
			logging: config.LoggingConfig{},
		},
		{
			name:    "Console debug",
			logging: config.LoggingConfig{Level: "debug", Format: "console"},
		},
		{
			name:    "Warning alias",
			logging: config.LoggingConfig{Level: "warning", Format: "json"},
		},
		{
			name:     "Override takes precedence",
			logging:  config.LoggingConfig{Level: "debug"},
			override: "error",
		},
		{
			name:      "Invalid level",
			logging:   config.LoggingConfig{Level: "verbose"},
			expectErr: true,
		},
		{
			name:      "Invalid override",
			logging:   config.LoggingConfig{Level: "info"},
			override:  "loud",
			expectErr: true,
		},
		{
			name:      "Invalid format",
			logging:   config.LoggingConfig{Level: "info", Format: "xml"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.logging, tt.override)
			if (err != nil) != tt.expectErr {
				t.Fatalf("initializeLogger() error = %v, expectErr %v", err, tt.expectErr)
			}
			if !tt.expectErr && logger == nil {
				t.Error("initializeLogger() returned nil logger without error")
			}
		})
	}
}
