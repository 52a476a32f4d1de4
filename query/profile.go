package query

import (
	"fmt"

	"github.com/umairgosal/Software-Construction-lab-04/internal/config"
	"github.com/umairgosal/Software-Construction-lab-04/internal/logging"
)

// Open loads the profile at path and returns its queries together with a
// Runner that logs according to the profile's log section.
func Open(path string) (*Runner, []Query, error) {
	p, err := config.LoadProfile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load profile: %w", err)
	}

	logger, err := logging.FromConfig(p.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	queries, err := FromProfile(p)
	if err != nil {
		return nil, nil, err
	}

	return NewRunner(logger), queries, nil
}
