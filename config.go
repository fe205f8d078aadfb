package ticksim

import (
	"fmt"

	"github.com/viant/ticksim/service/driver"
)

// Config is a serialisable representation of the simulator configuration.
// It can be populated from JSON or YAML; the zero value inherits package
// defaults.
type Config struct {
	Driver  driver.Config `json:"driver" yaml:"driver"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

// TracingConfig controls the OpenTelemetry stdout exporter.
type TracingConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	OutputFile string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a Config populated with package defaults.
func DefaultConfig() *Config {
	return &Config{Driver: driver.DefaultConfig()}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Driver.MaxTicks < 0 {
		return fmt.Errorf("driver.maxTicks must be >= 0")
	}
	return nil
}
