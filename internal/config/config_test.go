package config

import (
	"testing"
	"time"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "hello")
	t.Setenv("X_BOOL", "yes")
	t.Setenv("X_INT", "42")
	t.Setenv("X_DUR", "250ms")
	t.Setenv("X_BAD_INT", "forty")

	if got := envStr("X_STR", "d"); got != "hello" {
		t.Errorf("envStr = %q, want hello", got)
	}
	if got := envStr("X_MISSING", "d"); got != "d" {
		t.Errorf("envStr default = %q, want d", got)
	}
	if !envBool("X_BOOL", false) {
		t.Error("envBool(yes) = false, want true")
	}
	if envBool("X_MISSING", false) {
		t.Error("envBool default = true, want false")
	}
	if got := envInt("X_INT", 0); got != 42 {
		t.Errorf("envInt = %d, want 42", got)
	}
	if got := envInt("X_BAD_INT", 7); got != 7 {
		t.Errorf("envInt fallback = %d, want 7", got)
	}
	if got := envDur("X_DUR", time.Second); got != 250*time.Millisecond {
		t.Errorf("envDur = %v, want 250ms", got)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-1")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("Capacity = %d, want 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Errorf("RefillTokens = %d, want 1", cfg.RefillTokens)
	}
	if want := 10 * time.Second; cfg.TTL != want {
		t.Errorf("TTL = %v, want %v (5x refill interval)", cfg.TTL, want)
	}
}
