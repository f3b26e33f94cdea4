package shardqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes a ShardExecutor. The zero value is usable; NewShardExecutor
// fills in defaults for unset fields.
type Config struct {
	// Shards is the number of worker goroutines / queues.
	Shards int `split_words:"true" default:"4"`
	// QueueSize is the buffered capacity of each shard queue.
	QueueSize int `split_words:"true" default:"128"`
	// EnqueueTimeout bounds how long Submit waits for space on a full shard
	// before returning a QueueFullError.
	EnqueueTimeout time.Duration `split_words:"true" default:"100ms"`
	// MaxAttempts caps job executions including the first one. 1 disables
	// retries entirely.
	MaxAttempts int `split_words:"true" default:"8"`
	// BaseBackoff is the initial retry interval; MaxInterval caps its
	// exponential growth.
	BaseBackoff time.Duration `split_words:"true" default:"100ms"`
	MaxInterval time.Duration `split_words:"true" default:"20s"`

	// ErrorHandler, when non-nil, receives terminal job errors (after
	// irrecoverable classification or retry exhaustion). It must not block.
	ErrorHandler func(error) `ignored:"true"`
}

// LoadConfig reads the SQ_* environment variables (SQ_SHARDS, SQ_QUEUE_SIZE,
// SQ_ENQUEUE_TIMEOUT, SQ_MAX_ATTEMPTS, SQ_BASE_BACKOFF, SQ_MAX_INTERVAL)
// into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("sq", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
