package main

import (
	"github.com/kbukum/pushgen/config"
	"github.com/kbukum/pushgen/errors"
	"github.com/kbukum/pushgen/scenario"
	"github.com/kbukum/pushgen/validation"
)

// Config is the pushgen command configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Workload  scenario.Workload `yaml:"workload" mapstructure:"workload"`
	Scenarios []string          `yaml:"scenarios" mapstructure:"scenarios"`
	RunID     string            `yaml:"run_id" mapstructure:"run_id"`
	FailFast  bool              `yaml:"fail_fast" mapstructure:"fail_fast"`
}

// ApplyDefaults applies defaults to the service and workload sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Workload.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Workload.Validate(); err != nil {
		return err
	}
	v := validation.New().OptionalUUID("run_id", c.RunID)
	for _, name := range c.Scenarios {
		v.OneOf("scenarios", name, scenario.Names())
	}
	if appErr := v.Validate(); appErr != nil {
		return errors.InvalidConfig(appErr.Message, appErr).WithDetails(appErr.Details)
	}
	return nil
}
