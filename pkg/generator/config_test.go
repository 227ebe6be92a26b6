package generator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromJson(t *testing.T) {
	config, err := ConfigFromJson(filepath.Join("testdata", "config.json"))

	assert.Nil(t, err)
	assert.Equal(t, 1200, config.MaxCombinations)
	assert.Equal(t, DefaultCompatibilityPosition, config.CompatibilityPosition)
}

func TestConfigFromJsonRejectsInvalidValues(t *testing.T) {
	_, err := ConfigFromJson(filepath.Join("testdata", "invalid_config.json"))
	assert.ErrorContains(t, err, "maxCombinations")

	_, err = ConfigFromJson(filepath.Join("testdata", "missing.json"))
	assert.ErrorContains(t, err, "cannot read config file")
}

func TestConfigValidate(t *testing.T) {
	assert.Nil(t, DefaultConfig().Validate())
	assert.NotNil(t, Config{MaxCombinations: 10, CompatibilityPosition: -1}.Validate())
	assert.NotNil(t, Config{MaxCombinations: -1}.Validate())
}
