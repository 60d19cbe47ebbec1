package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.NotificationInterval != 30*time.Second {
		t.Errorf("expected 30s notification interval, got %s", cfg.NotificationInterval)
	}
	if cfg.ActivityInterval != 15*time.Second {
		t.Errorf("expected 15s activity interval, got %s", cfg.ActivityInterval)
	}
	if !cfg.SimulatorsEnabled {
		t.Error("simulators should default on")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Environment:          "development",
		MaxBodyBytes:         1048576,
		RateLimitPerMinute:   120,
		SimulatorsEnabled:    true,
		NotificationInterval: 30 * time.Second,
		ActivityInterval:     15 * time.Second,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	prod := valid
	prod.Environment = "production"
	if err := prod.Validate(); err == nil {
		t.Fatal("production without JWT_SECRET must fail validation")
	}

	noBody := valid
	noBody.MaxBodyBytes = 10
	if err := noBody.Validate(); err == nil {
		t.Fatal("tiny body limit must fail validation")
	}

	badTicker := valid
	badTicker.NotificationInterval = 0
	if err := badTicker.Validate(); err == nil {
		t.Fatal("zero ticker with simulators enabled must fail validation")
	}
}
