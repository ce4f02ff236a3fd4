package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed     = "ARENABRAWL_SEED"
	EnvTickRate = "ARENABRAWL_TICK_RATE"
	EnvLogFile  = "ARENABRAWL_LOG_FILE"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible waves.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TickRate is the number of simulation steps per second.
	TickRate int

	// LogFile receives log output while the terminal is in use.
	LogFile string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		LogFile:  "arenabrawl.log",
	}
}

// ConfigFromEnv builds a Config from the environment on top of DefaultConfig.
// Call it after godotenv has loaded .env.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvTickRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvTickRate, v, err)
		}
		if rate <= 0 || rate > 1000 {
			return cfg, fmt.Errorf("%s must be between 1 and 1000, got %d", EnvTickRate, rate)
		}
		cfg.TickRate = rate
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	return cfg, nil
}

// TickInterval returns the wall-clock time between simulation steps.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// NewRand returns the random source for a session, seeded from Seed or from
// the clock when Seed is 0.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
