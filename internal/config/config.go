// Package config loads the alarmgap policy file and delivery settings.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/mikkoval/alarmgap/internal/audit"
	"github.com/mikkoval/alarmgap/pkg/model"
)

// Config is the policy file structure. Both sections are optional;
// an empty config means no requirements and no filter.
type Config struct {
	Required map[string][]string `yaml:"required,omitempty"`
	Filter   FilterConfig        `yaml:"filter,omitempty"`
}

// FilterConfig is the optional tag scope for enforcement.
type FilterConfig struct {
	TagKey   string `yaml:"tag_key,omitempty"`
	TagValue string `yaml:"tag_value,omitempty"`
}

var knownTypes = map[string]bool{
	string(model.TypeEC2):    true,
	string(model.TypeRDS):    true,
	string(model.TypeALB):    true,
	string(model.TypeNLB):    true,
	string(model.TypeLambda): true,
}

// Load reads and parses the policy file. A missing file is not an error:
// it yields an empty config, logged as a warning, so a bare deployment
// still runs and reports nothing missing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("policy file not found, using empty config")
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}

	for rtype := range cfg.Required {
		if !knownTypes[rtype] {
			log.Warn().Str("type", rtype).Msg("required section names unknown resource type, it will never match")
		}
	}

	return cfg, nil
}

// Policy converts the required section into the detector's policy.
func (c *Config) Policy() audit.Policy {
	policy := make(audit.Policy, len(c.Required))
	for rtype, metrics := range c.Required {
		policy[model.ResourceType(rtype)] = metrics
	}
	return policy
}

// TagFilter converts the filter section into the detector's tag filter.
func (c *Config) TagFilter() audit.TagFilter {
	return audit.TagFilter{Key: c.Filter.TagKey, Value: c.Filter.TagValue}
}
