package gravityzone

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by NewFromEnv.
const (
	EnvAccessURL    = "GRAVITYZONE_ACCESS_URL"
	EnvAPIKey       = "GRAVITYZONE_API_KEY"
	EnvItemsPerPage = "GRAVITYZONE_ITEMS_PER_PAGE"
	EnvTimeout      = "GRAVITYZONE_TIMEOUT"
)

// NewFromEnv builds a Client from the environment, loading a .env file first
// when one exists in the working directory.
//
// GRAVITYZONE_ACCESS_URL and GRAVITYZONE_API_KEY are required.
// GRAVITYZONE_ITEMS_PER_PAGE and GRAVITYZONE_TIMEOUT (plain seconds such as
// "30", or a duration string such as "45s") are optional. Explicit opts win
// over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	var envOpts []Option
	if v := os.Getenv(EnvItemsPerPage); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("gravityzone: invalid %s %q", EnvItemsPerPage, v)
		}
		envOpts = append(envOpts, WithItemsPerPage(n))
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return nil, fmt.Errorf("gravityzone: invalid %s %q: %w", EnvTimeout, v, err)
		}
		envOpts = append(envOpts, WithTimeout(d))
	}

	return New(os.Getenv(EnvAccessURL), os.Getenv(EnvAPIKey), append(envOpts, opts...)...)
}

func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, errors.New("timeout must be positive")
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, errors.New("timeout must be positive")
	}
	return d, nil
}
