package blazebook

import (
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"BLAZE_BASE_URL", "BLAZE_BROWSER", "BLAZE_DEVICE", "BLAZE_HEADLESS",
		"BLAZE_ARTIFACT_DIR", "BLAZE_ACTION_TIMEOUT_MS", "BLAZE_NAV_TIMEOUT_MS",
	} {
		t.Setenv(key, "")
	}

	cfg := ConfigFromEnv()
	if cfg.BaseURL != "https://blazedemo.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Browser != "chromium" {
		t.Errorf("Browser = %q", cfg.Browser)
	}
	if !cfg.Headless {
		t.Error("Headless should default to true")
	}
	if cfg.ArtifactDir != "test-results" {
		t.Errorf("ArtifactDir = %q", cfg.ArtifactDir)
	}
	if cfg.ActionTimeout != 10*time.Second {
		t.Errorf("ActionTimeout = %v", cfg.ActionTimeout)
	}
	if cfg.NavTimeout != 30*time.Second {
		t.Errorf("NavTimeout = %v", cfg.NavTimeout)
	}
}

func TestConfigOverrides(t *testing.T) {
	t.Setenv("BLAZE_BASE_URL", "http://localhost:8080")
	t.Setenv("BLAZE_BROWSER", "firefox")
	t.Setenv("BLAZE_DEVICE", "iPhone 13")
	t.Setenv("BLAZE_HEADLESS", "false")
	t.Setenv("BLAZE_ARTIFACT_DIR", "/tmp/artifacts")
	t.Setenv("BLAZE_ACTION_TIMEOUT_MS", "2500")
	t.Setenv("BLAZE_NAV_TIMEOUT_MS", "45000")

	cfg := ConfigFromEnv()
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Browser != "firefox" {
		t.Errorf("Browser = %q", cfg.Browser)
	}
	if cfg.Device != "iPhone 13" {
		t.Errorf("Device = %q", cfg.Device)
	}
	if cfg.Headless {
		t.Error("Headless should be false")
	}
	if cfg.ActionTimeout != 2500*time.Millisecond {
		t.Errorf("ActionTimeout = %v", cfg.ActionTimeout)
	}
	if cfg.NavTimeout != 45*time.Second {
		t.Errorf("NavTimeout = %v", cfg.NavTimeout)
	}
}

func TestEnvMillisRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "soon"},
		{"negative", "-100"},
		{"zero", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLAZE_ACTION_TIMEOUT_MS", tt.value)
			cfg := ConfigFromEnv()
			if cfg.ActionTimeout != 10*time.Second {
				t.Errorf("ActionTimeout = %v, want default", cfg.ActionTimeout)
			}
		})
	}
}
