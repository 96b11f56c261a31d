package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "all fields present",
			env: map[string]string{
				"CODEPOST_API_KEY":              "cp-test-key",
				"CODEPOST_API_URL":              "https://codepost.example.edu",
				"CODEPOST_HTTP_TIMEOUT_SECONDS": "10",
			},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				if cfg.APIKey != "cp-test-key" {
					t.Errorf("APIKey = %s, want cp-test-key", cfg.APIKey)
				}
				if cfg.BaseURL != "https://codepost.example.edu" {
					t.Errorf("BaseURL = %s, want https://codepost.example.edu", cfg.BaseURL)
				}
				if cfg.HTTPTimeout != 10*time.Second {
					t.Errorf("HTTPTimeout = %s, want 10s", cfg.HTTPTimeout)
				}
			},
		},
		{
			name: "defaults applied",
			env: map[string]string{
				"CODEPOST_API_KEY": "cp-test-key",
			},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				if cfg.BaseURL != "https://api.codepost.io" {
					t.Errorf("BaseURL = %s, want https://api.codepost.io", cfg.BaseURL)
				}
				if cfg.HTTPTimeout != 30*time.Second {
					t.Errorf("HTTPTimeout = %s, want 30s", cfg.HTTPTimeout)
				}
			},
		},
		{
			name:    "missing api key",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "invalid timeout falls back to default",
			env: map[string]string{
				"CODEPOST_API_KEY":              "cp-test-key",
				"CODEPOST_HTTP_TIMEOUT_SECONDS": "not-a-number",
			},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				if cfg.HTTPTimeout != 30*time.Second {
					t.Errorf("HTTPTimeout = %s, want 30s", cfg.HTTPTimeout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"CODEPOST_API_KEY", "CODEPOST_API_URL", "CODEPOST_HTTP_TIMEOUT_SECONDS"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
