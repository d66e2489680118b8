package template

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinitions reads template definitions from a YAML file.
//
// Expected format:
//
//   - key: follow_up
//     instruction: Write a short follow-up email referencing the last conversation.
//     placeholders: [topic, deadline]
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadDefinitions, err)
	}

	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.Join(ErrFailedToLoadDefinitions, err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no definitions in %s", ErrFailedToLoadDefinitions, path)
	}

	return defs, nil
}
