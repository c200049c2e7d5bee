package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/etnz/gbce"
	"github.com/joho/godotenv"
)

const (
	EnvPrecision  = "GBCE_PRECISION"
	EnvWindow     = "GBCE_WINDOW"
	EnvCurrency   = "GBCE_CURRENCY"
	EnvTestingNow = "GBCE_TESTING_NOW"
)

// envFile is the optional dotenv file read before the environment overrides.
var envFile = ".env"

// LoadConfig returns the configuration: the defaults, then the -config file if any,
// then the environment overrides, possibly set in a .env file.
func LoadConfig() (gbce.Config, error) {
	cfg := gbce.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = gbce.LoadConfig(*configFile, cfg); err != nil {
			return cfg, err
		}
	}

	// variables already in the environment win over the file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("cannot load %s: %w", envFile, err)
	}
	cfg, err := applyEnv(cfg)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides cfg with the values set in the environment.
func applyEnv(cfg gbce.Config) (gbce.Config, error) {
	if v, ok := os.LookupEnv(EnvPrecision); ok {
		p, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvPrecision, v, err)
		}
		cfg.Precision = int32(p)
	}
	if v, ok := os.LookupEnv(EnvWindow); ok {
		w, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvWindow, v, err)
		}
		cfg.Window = w
	}
	if v, ok := os.LookupEnv(EnvCurrency); ok {
		cfg.Currency = v
	}
	return cfg, nil
}
