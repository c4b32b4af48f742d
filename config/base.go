package config

import (
	"fmt"

	"github.com/kbukum/synthkit/logger"
)

// ToolConfig contains the essential configuration fields every synthkit
// tool needs. Tools extend it by embedding it in their own config structs.
//
// Example:
//
//	type Config struct {
//	    config.ToolConfig `yaml:",inline" mapstructure:",squash"`
//	    Output            sink.Config `yaml:"output" mapstructure:"output"`
//	}
type ToolConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetToolConfig returns the base ToolConfig. When embedded in a larger
// config struct this method is promoted, so the embedding struct
// automatically satisfies the Config interface.
func (c *ToolConfig) GetToolConfig() *ToolConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call c.ToolConfig.ApplyDefaults() first.
func (c *ToolConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ToolName == "" && c.Name != "" {
		c.Logging.ToolName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call c.ToolConfig.Validate() first.
func (c *ToolConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// Config is the interface tool config structs satisfy by embedding ToolConfig.
type Config interface {
	GetToolConfig() *ToolConfig
	ApplyDefaults()
	Validate() error
}
