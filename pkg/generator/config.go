package generator

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultMaxCombinations       = 50000
	DefaultCompatibilityPosition = 3 // The 4th character of a component id tags its section
)

type Config struct {
	MaxCombinations       int // Ceiling shared by per-course and cross-course expansion
	CompatibilityPosition int // Id position compared by the positional compatibility rule
}

func DefaultConfig() Config {
	return Config{
		MaxCombinations:       DefaultMaxCombinations,
		CompatibilityPosition: DefaultCompatibilityPosition,
	}
}

// ConfigFromJson reads a config.json file; missing keys keep their default values
func ConfigFromJson(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	config := DefaultConfig()
	if err := mapstructure.Decode(configJson, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file: %w", err)
	}
	return config, config.Validate()
}

func (config Config) Validate() error {
	if config.MaxCombinations <= 0 {
		return fmt.Errorf("maxCombinations must be greater than 0: %v", config.MaxCombinations)
	} else if config.CompatibilityPosition < 0 {
		return fmt.Errorf("compatibilityPosition must not be negative: %v", config.CompatibilityPosition)
	}
	return nil
}
