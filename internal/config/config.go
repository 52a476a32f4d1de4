// Package config loads query profiles from YAML.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProfileFile = "queries.yaml"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Duration wraps time.Duration for YAML unmarshaling from strings like "90m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// Time wraps time.Time for YAML unmarshaling from RFC 3339 strings.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parse time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

func applyDefaults(p *Profile) {
	if p.Log.Level == "" {
		p.Log.Level = DefaultLogLevel
	}
	if p.Log.Format == "" {
		p.Log.Format = DefaultLogFormat
	}
}

func validateLog(l LogConfig) error {
	switch l.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("log.level: unknown level %q (want debug, info, warn or error)", l.Level)
	}

	switch l.Format {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("log.format: unknown format %q (want text or json)", l.Format)
	}

	return nil
}
