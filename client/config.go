package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the SDK settings read from the environment. The base API
// URL is the only required piece of configuration; everything else has a
// sensible default.
type Config struct {
	// APIURL is the backend base URL (SEGMINT_API_URL).
	APIURL string `envconfig:"API_URL" default:"https://segmint-ujsx.onrender.com"`
	// HTTPTimeout bounds every SDK HTTP request (SEGMINT_HTTP_TIMEOUT).
	HTTPTimeout time.Duration `split_words:"true" default:"30s"`
	// SessionFile overrides the session store location (SEGMINT_SESSION_FILE).
	// Empty means the per-user default under the OS config directory.
	SessionFile string `split_words:"true"`
	// SessionTTLHours is how long a stored persona id stays valid
	// (SEGMINT_SESSION_TTL_HOURS).
	SessionTTLHours int `envconfig:"SESSION_TTL_HOURS" default:"4"`
}

// LoadConfig reads the SEGMINT_* environment variables into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("segmint", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
