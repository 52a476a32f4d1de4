package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/umairgosal/Software-Construction-lab-04/twitter"
	"gopkg.in/yaml.v3"
)

// Profile is a set of named queries plus logging settings.
type Profile struct {
	Log     LogConfig     `yaml:"log"`
	Queries []QueryConfig `yaml:"queries"`
}

// QueryConfig describes one query. Omitted fields skip the matching filter;
// an explicit empty words list matches nothing.
type QueryConfig struct {
	Name   string        `yaml:"name"`
	Author string        `yaml:"author"`
	Window *WindowConfig `yaml:"window"`
	Words  []string      `yaml:"words"`
}

// WindowConfig is a closed time window given either by start and end or by
// start and length.
type WindowConfig struct {
	Start  Time      `yaml:"start"`
	End    Time      `yaml:"end"`
	Length *Duration `yaml:"length"` // nil when omitted; 0s is a single instant
}

// Timespan converts the window to a twitter.Timespan.
func (w WindowConfig) Timespan() (twitter.Timespan, error) {
	if w.Start.IsZero() {
		return twitter.Timespan{}, errors.New("start is required")
	}

	hasEnd := !w.End.IsZero()
	hasLength := w.Length != nil
	switch {
	case hasEnd && hasLength:
		return twitter.Timespan{}, errors.New("end and length are mutually exclusive")
	case hasLength:
		if w.Length.Duration < 0 {
			return twitter.Timespan{}, fmt.Errorf("length %s must not be negative", w.Length.Duration)
		}
		return twitter.NewTimespan(w.Start.Time, w.Start.Add(w.Length.Duration))
	case hasEnd:
		return twitter.NewTimespan(w.Start.Time, w.End.Time)
	default:
		return twitter.Timespan{}, errors.New("end or length is required")
	}
}

// LoadProfile reads a query profile YAML file, applies defaults, and validates it.
func LoadProfile(path string) (*Profile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("profile path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	return ParseProfile(data)
}

// ParseProfile decodes, defaults, and validates a profile held in memory.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	applyDefaults(&p)

	if err := validateProfile(&p); err != nil {
		return nil, fmt.Errorf("validate profile: %w", err)
	}

	return &p, nil
}

func validateProfile(p *Profile) error {
	if err := validateLog(p.Log); err != nil {
		return err
	}

	if len(p.Queries) == 0 {
		return errors.New("queries: at least one query is required")
	}

	seen := make(map[string]bool, len(p.Queries))
	for i, q := range p.Queries {
		name := strings.TrimSpace(q.Name)
		if name == "" {
			return fmt.Errorf("queries[%d]: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("queries[%d]: duplicate name %q", i, name)
		}
		seen[name] = true

		if q.Author != "" {
			if err := twitter.ValidateUsername(q.Author); err != nil {
				return fmt.Errorf("queries[%d] %s: author: %w", i, name, err)
			}
		}
		if q.Window != nil {
			if _, err := q.Window.Timespan(); err != nil {
				return fmt.Errorf("queries[%d] %s: window: %w", i, name, err)
			}
		}
	}

	return nil
}
