package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bot.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMergesFileAndEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_CHAT_ID", "-100200300")

	path := writeConfig(t, `
telegram:
  run_mode: longpoll
  longpoll_timeout_seconds: 25
session:
  idle_ttl_minutes: 30
rate_limit:
  interval_ms: 500
  exclude_updates: [callback]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.Token != "123:abc" {
		t.Errorf("token = %q", cfg.Telegram.Token)
	}
	if cfg.Operator.ChatID != -100200300 {
		t.Errorf("operator chat = %d", cfg.Operator.ChatID)
	}
	if cfg.Telegram.LongPollTimeoutSeconds != 25 {
		t.Errorf("longpoll timeout = %d", cfg.Telegram.LongPollTimeoutSeconds)
	}
	if cfg.Session.IdleTTLMinutes != 30 {
		t.Errorf("idle ttl = %d", cfg.Session.IdleTTLMinutes)
	}
}

func TestNormalizeRequiresTokenAndOperator(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"no token", Config{Operator: OperatorConfig{ChatID: 1}}},
		{"no operator", Config{Telegram: TelegramConfig{Token: "t"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Normalize(&tc.cfg); err == nil {
				t.Error("Normalize accepted incomplete config")
			}
		})
	}
}

func TestNormalizeRunModes(t *testing.T) {
	base := func() *Config {
		return &Config{
			Telegram: TelegramConfig{Token: "t"},
			Operator: OperatorConfig{ChatID: 1},
		}
	}

	cfg := base()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("default mode: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("default run mode = %q", cfg.Telegram.RunMode)
	}

	cfg = base()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("polling alias: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("alias not normalized: %q", cfg.Telegram.RunMode)
	}

	cfg = base()
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Error("webhook mode accepted without url/listen/port")
	}

	cfg = base()
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook = WebhookConfig{URL: "https://example.org/hook", Listen: "0.0.0.0", Port: 8443}
	if err := Normalize(cfg); err != nil {
		t.Errorf("valid webhook config rejected: %v", err)
	}

	cfg = base()
	cfg.Telegram.RunMode = "carrier-pigeon"
	if err := Normalize(cfg); err == nil {
		t.Error("unknown run mode accepted")
	}
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := &Config{
		Telegram:  TelegramConfig{Token: "t"},
		Operator:  OperatorConfig{ChatID: 1},
		RateLimit: RateLimitConfig{ExcludeUpdates: []string{" Callback ", "message"}},
	}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Errorf("exclusion not canonicalized: %q", cfg.RateLimit.ExcludeUpdates[0])
	}

	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg); err == nil {
		t.Error("unknown exclusion accepted")
	}
}
