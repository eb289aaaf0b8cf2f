// Package config loads rule configuration files. A file maps rule names to
// either a bool, a list whose first element enables the rule and whose
// remaining elements are the rule arguments, or a map with "severity" and
// "options" keys:
//
//	rules:
//	  grouped-imports: [true, {firstVsThirdPartyOrder: third-party-modules-first}]
//
// JSON files in the tslint.json layout are read by the same decoder.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/errors"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/utils"
)

// FileNames are the config file names searched for, in order of preference
var FileNames = []string{"layoutlint.yaml", "layoutlint.yml", "tslint.yaml", "tslint.json"}

const (
	severityOff  = "off"
	severityNone = "none"
)

// RuleConfig is the configuration of a single rule
type RuleConfig struct {
	Enabled   bool
	Severity  string
	Arguments []any
}

// Config is a loaded configuration file
type Config struct {
	Path  string
	Rules map[string]RuleConfig
}

// Rule returns the configuration of the named rule. ok is false when the
// rule is not mentioned in the file.
func (c *Config) Rule(name string) (RuleConfig, bool) {
	if c == nil {
		return RuleConfig{}, false
	}
	rc, ok := c.Rules[name]
	return rc, ok
}

type rawConfig struct {
	Rules map[string]any `yaml:"rules"`
}

// Find returns the config file closest to dir, or "" when there is none
func Find(dir string) string {
	return utils.FindUp(dir, FileNames...)
}

// Load reads and parses a config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes YAML or JSON config content
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}

	cfg := &Config{Rules: make(map[string]RuleConfig, len(raw.Rules))}
	for name, value := range raw.Rules {
		rc, err := parseRule(value)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", errors.ErrMsgInvalidRuleConfig, name, err)
		}
		cfg.Rules[name] = rc
	}
	return cfg, nil
}

func parseRule(value any) (RuleConfig, error) {
	switch v := value.(type) {
	case nil:
		return RuleConfig{Enabled: false}, nil
	case bool:
		return RuleConfig{Enabled: v}, nil
	case []any:
		if len(v) == 0 {
			return RuleConfig{Enabled: true}, nil
		}
		if enabled, ok := v[0].(bool); ok {
			return RuleConfig{Enabled: enabled, Arguments: v[1:]}, nil
		}
		return RuleConfig{Enabled: true, Arguments: v}, nil
	case map[string]any:
		rc := RuleConfig{Enabled: true}
		if severity, ok := v["severity"].(string); ok {
			rc.Severity = severity
			rc.Enabled = severity != severityOff && severity != severityNone
		}
		switch opts := v["options"].(type) {
		case nil:
		case []any:
			rc.Arguments = opts
		default:
			rc.Arguments = []any{opts}
		}
		return rc, nil
	default:
		return RuleConfig{}, fmt.Errorf("unexpected value of type %T", value)
	}
}
