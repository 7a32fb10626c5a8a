package blazebook

import (
	"os"
	"strconv"
	"time"
)

// Config controls the browser runtime. Every field maps to a BLAZE_*
// environment variable so a suite can be pointed at another deployment or
// engine without code changes.
type Config struct {
	BaseURL     string // BLAZE_BASE_URL
	Browser     string // BLAZE_BROWSER: chromium, firefox or webkit
	Device      string // BLAZE_DEVICE: device profile name, empty for desktop
	Headless    bool   // BLAZE_HEADLESS
	ArtifactDir string // BLAZE_ARTIFACT_DIR

	ActionTimeout time.Duration // BLAZE_ACTION_TIMEOUT_MS
	NavTimeout    time.Duration // BLAZE_NAV_TIMEOUT_MS
}

const (
	defaultBaseURL       = "https://blazedemo.com"
	defaultArtifactDir   = "test-results"
	defaultActionTimeout = 10 * time.Second
	defaultNavTimeout    = 30 * time.Second
)

// ConfigFromEnv builds a Config from BLAZE_* variables, falling back to the
// blazedemo defaults.
func ConfigFromEnv() Config {
	return Config{
		BaseURL:       envStr("BLAZE_BASE_URL", defaultBaseURL),
		Browser:       envStr("BLAZE_BROWSER", "chromium"),
		Device:        envStr("BLAZE_DEVICE", ""),
		Headless:      envBool("BLAZE_HEADLESS", true),
		ArtifactDir:   envStr("BLAZE_ARTIFACT_DIR", defaultArtifactDir),
		ActionTimeout: envMillis("BLAZE_ACTION_TIMEOUT_MS", defaultActionTimeout),
		NavTimeout:    envMillis("BLAZE_NAV_TIMEOUT_MS", defaultNavTimeout),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envMillis(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
