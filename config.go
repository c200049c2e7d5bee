package gbce

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of the market calculations.
type Config struct {
	// Precision is the number of fractional digits results are rounded to (half up).
	// The all share index is computed in float64, so it is capped to 12 digits.
	Precision int32 `yaml:"precision" validate:"gte=0,lte=12"`
	// Window is the trailing duration of trades used for the recent volume weighted stock price.
	Window time.Duration `yaml:"window" validate:"gt=0"`
	// Currency is the ISO 4217 code prices are displayed in.
	Currency string `yaml:"currency" validate:"required,len=3,uppercase"`
}

// DefaultConfig returns the exchange default configuration.
func DefaultConfig() Config {
	return Config{
		Precision: 2,
		Window:    5 * time.Minute,
		Currency:  "GBP",
	}
}

// LoadConfig reads a YAML configuration file on top of base.
// Fields missing from the file keep their base value.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the configuration values are in range.
func (c Config) Validate() error {
	return validate.Struct(c)
}
