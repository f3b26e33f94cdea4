package shardqueue

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"SQ_SHARDS", "SQ_QUEUE_SIZE", "SQ_ENQUEUE_TIMEOUT", "SQ_MAX_ATTEMPTS", "SQ_BASE_BACKOFF", "SQ_MAX_INTERVAL"} {
		t.Setenv(k, "") // register restore, then clear for real
		_ = os.Unsetenv(k)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Shards != 4 || cfg.QueueSize != 128 {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.EnqueueTimeout != 100*time.Millisecond || cfg.MaxAttempts != 8 {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.BaseBackoff != 100*time.Millisecond || cfg.MaxInterval != 20*time.Second {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SQ_SHARDS", "8")
	t.Setenv("SQ_QUEUE_SIZE", "256")
	t.Setenv("SQ_ENQUEUE_TIMEOUT", "250ms")
	t.Setenv("SQ_MAX_ATTEMPTS", "5")
	t.Setenv("SQ_BASE_BACKOFF", "200ms")
	t.Setenv("SQ_MAX_INTERVAL", "5s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Shards != 8 || cfg.QueueSize != 256 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.EnqueueTimeout != 250*time.Millisecond || cfg.MaxAttempts != 5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.BaseBackoff != 200*time.Millisecond || cfg.MaxInterval != 5*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	t.Setenv("SQ_SHARDS", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for malformed SQ_SHARDS")
	}
}

func TestLabelFor(t *testing.T) {
	t.Parallel()
	if got := labelFor(7); got != "7" {
		t.Fatalf("labelFor(7) = %q, want 7", got)
	}
}
