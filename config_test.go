package main

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATA_DIR", "DEFAULT_BUILD", "OUTPUT_PATH", "DB_PATH",
		"SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "REBUILD_SCHEDULE",
		"TIMEZONE", "LLM_MODEL", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing-config.yaml"))
	clearConfigEnv(t)

	cfg := LoadConfig()

	if cfg.DataDir != "./data" {
		t.Fatalf("unexpected data dir default: %q", cfg.DataDir)
	}
	if cfg.DefaultBuild != "monk-sunwuko-tr" {
		t.Fatalf("unexpected default build: %q", cfg.DefaultBuild)
	}
	if cfg.OutputPath != "./index.html" {
		t.Fatalf("unexpected output path default: %q", cfg.OutputPath)
	}
	if cfg.DBPath != "./seasonguide.db" {
		t.Fatalf("unexpected db path default: %q", cfg.DBPath)
	}
	if cfg.Location == nil {
		t.Fatalf("location not resolved")
	}
	if cfg.SlackConfigured() {
		t.Fatalf("SlackConfigured must be false without token and channel")
	}
}

func TestLoadConfigYAMLAndEnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_dir: "./yaml-data"
default_build: "barb-ww"
slack_bot_token: "yaml-bot"
slack_channel_id: "C123"
timezone: "UTC"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", cfgPath)
	clearConfigEnv(t)
	t.Setenv("DEFAULT_BUILD", "monk-inna")

	cfg := LoadConfig()

	if cfg.DataDir != "./yaml-data" {
		t.Fatalf("yaml data dir not applied: %q", cfg.DataDir)
	}
	if cfg.DefaultBuild != "monk-inna" {
		t.Fatalf("env must override yaml, got %q", cfg.DefaultBuild)
	}
	if !cfg.SlackConfigured() {
		t.Fatalf("SlackConfigured must be true with token and channel")
	}
	if cfg.Location == nil || cfg.Location.String() != "UTC" {
		t.Fatalf("unexpected location: %v", cfg.Location)
	}
}
